package htree

import "errors"

// Sentinel errors returned by this package, and also by transform,
// reconstruct and the root facade wherever they surface a failure rooted
// in the document model itself.
var (
	// ErrNilDocument is returned when a required *Document argument is nil.
	ErrNilDocument = errors.New("htree: nil document")
	// ErrNilTree is returned when a required *Tree argument is nil.
	ErrNilTree = errors.New("htree: nil tree")
	// ErrNilNode is returned when a required *Node argument is nil.
	ErrNilNode = errors.New("htree: nil node")
	// ErrNodeNotFound is returned when an ID does not resolve within the
	// searched scope (a tree's forest, or a whole document).
	ErrNodeNotFound = errors.New("htree: node not found")
	// ErrCrossTreeEdge is returned when an edge's source and target
	// resolve to nodes in different trees.
	ErrCrossTreeEdge = errors.New("htree: edge endpoints belong to different trees")
	// ErrEdgeResolutionFailed is returned when a copy could not
	// re-resolve every edge in the source against the copied forest.
	ErrEdgeResolutionFailed = errors.New("htree: edge failed to re-resolve after copy")
	// ErrInvalidNodeGeometry is returned when geometry is assigned to a
	// node in a way inconsistent with its Type (a Point on a rect node,
	// or a Rect on a NodePoint node).
	ErrInvalidNodeGeometry = errors.New("htree: geometry inconsistent with node type")
	// ErrInvalidFrame is returned when a conversion target frame is None,
	// or when an internal helper that only accepts a relative frame
	// (LeftTop/LocalCenter) is invoked with None or Absolute.
	ErrInvalidFrame = errors.New("htree: invalid coordinate frame for this operation")
	// ErrGeometryTransform is the catch-all for an internal invariant
	// failure during a transform pass. It should be unreachable; it
	// exists so the root package's Code() has something to map
	// GEOMETRY_TRANSFORM_ERROR onto.
	ErrGeometryTransform = errors.New("htree: geometry transform failed")
)
