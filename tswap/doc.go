// Package tswap writes instance files for and reads result logs of the
// TSWAP anonymous multi-agent pathfinding solver
// (https://github.com/Kei18/tswap).
//
// What:
//
//	Instance files are key=value headers (map_file, agents, seed,
//	random_problem, max_timestep, max_comp_time, flocking_blocks)
//	followed by one "sx,sy,gx,gy" row per agent. Logs carry
//	solved/soc/makespan/comp_time/agents indicators and, after a
//	"solution=" marker, one "step:(x,y),(x,y),..." line per timestep.
//
// TSWAP coordinates are (x, y) with x running along grid columns and y
// along rows, so converting from a grid Cell swaps the components.
// FromPoint and ToPoint additionally flip the y axis against the
// Cartesian frame used elsewhere in this module.
package tswap
