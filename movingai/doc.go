// Package movingai reads and writes occupancy grids in the MovingAI .map
// benchmark format.
//
// What:
//
//	A map file carries a four-line header (type octile / height H /
//	width W / map) followed by H rows of W terrain characters. This
//	package supports the passable/impassable subset: '.' is free, '@'
//	and 'T' are blocked. Extended terrains (swamp, water) are not
//	handled.
//
// Why:
//
//	The MovingAI benchmark suite is the de-facto interchange format for
//	grid pathfinding maps; reading it lets instances built elsewhere be
//	loaded straight into a gridmap.GridMap.
//
// Errors:
//
//	ReadMap returns ErrBadHeader for files whose header lines do not
//	match the format and ErrBadDimensions when the body does not supply
//	height×width terrain characters.
package movingai
