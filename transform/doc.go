// Package transform converts between grid indices (i, j) and Cartesian
// coordinates (x, y).
//
// The grid origin is the top-left cell (0,0) with i growing downward;
// Cartesian coordinates place the origin at the bottom-left map corner
// with y growing upward. A cell maps to the Cartesian point at its
// center: x = (j+0.5)·cs, y = (H−i−0.5)·cs, where H is the grid height
// in cells and cs the cell size.
//
// Shared by the instance generators, the XML map writer, and the TSWAP
// converters, which all mix the two coordinate systems.
package transform
