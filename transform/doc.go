// Package transform is the coordinate-frame conversion engine:
//
//   - ConvertDocument moves an entire Document between node frames
//     (Absolute/LeftTop/LocalCenter) and edge attachments (Center/Border)
//     by first normalizing to absolute, rebuilding the bounding rect from
//     that absolute geometry, then converting out to the requested
//     target frames.
//   - The node pass is depth-first; the forward and inverse traversals
//     deliberately visit nodes in a different order (convert-then-recurse
//     forward, recurse-then-convert inverse) so a child always measures
//     itself against its parent's rect while that rect is still absolute.
//   - The edge pass runs in three phases going to absolute (points,
//     border re-attachment, labels) and two coming back (labels, points).
//   - A single, narrowly-scoped compatibility heuristic (yEdLabelException)
//     reproduces one specific editor's label placement quirk.
package transform
