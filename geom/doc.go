// Package geom provides the primitive value types shared by every other
// package in this module:
//
//   - Point  - a single (X, Y) coordinate.
//   - Rect   - an axis-aligned rectangle, (X, Y) meaning top-left or
//     center depending on the surrounding coordinate frame.
//   - Polyline - an ordered list of interior routing vertices for an edge.
//
// It also owns the two numeric conventions every conversion in this module
// depends on: Round (round-half-away-from-zero) and the sub-1e-6
// snap-to-zero hygiene applied after an inverse coordinate transform.
//
// Point addition and subtraction are built on github.com/golang/geo/r2
// rather than hand-rolled, the same way the rest of this module prefers an
// ecosystem type over a bespoke one wherever one fits.
package geom
