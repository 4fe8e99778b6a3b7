// Package htree defines the document model the rest of this module
// operates on:
//
//   - Document - a set of Trees plus the coordinate conventions (NodeFrame,
//     EdgeFrame, EdgePolyFrame, Attachment) its geometry is currently
//     expressed in, and its overall BoundingRect.
//   - Tree     - a root forest of Nodes plus the Edges connecting them.
//   - Node     - a tagged-variant tree node: NodePoint carries a Point,
//     every other NodeType carries a Rect. A node is promoted to
//     NodeComposite the moment its first child is attached.
//   - Edge     - a directed connection between two Nodes of the same Tree,
//     with optional endpoint/label/polyline geometry.
//
// Construction never panics on caller-supplied data (IDs, parent/child
// wiring): invalid input returns one of this package's sentinel errors.
// Deep copy (CopyTree/CopyDocument) is all-or-nothing - if any edge fails
// to re-resolve against the copied forest, the whole copy is discarded.
package htree
