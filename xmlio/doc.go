// Package xmlio reads and writes the XML files of a navigation
// experiment: maps, agent configurations, experiment configs, and
// result logs.
//
// What:
//
//	Four file kinds share a common <root> envelope:
//
//	  - map files: an <occupancy_grid> block (width, height, cell_size,
//	    and <row> lines of 0/1 flags) plus an optional
//	    <polygon_obstacles> block of traced obstacle boundaries;
//	  - agents files: a <default_agent> parameter set and an <agents>
//	    list with per-agent start/goal states and optional parameter
//	    overrides;
//	  - config files: an <experiment> parameter block and one
//	    <algorithm> block per algorithm;
//	  - log files: a <summary> line and optional per-step agent
//	    positions.
//
// Why:
//
//	The XML layout is the interchange format between instance
//	generators and external simulators. Agent and algorithm parameter
//	sets are open-ended, so encoding relies on the params registry to
//	construct the right concrete type from the model name found in a
//	file.
//
// Discrete agent models store grid coordinates (s.i/s.j, g.i/g.j);
// continuous models store Cartesian poses (s.x/s.y/s.th, g.x/g.y/g.th).
// The default agent's model decides which layout a file uses; one file
// never mixes both.
package xmlio
