package htreegeom

import (
	"errors"
	"fmt"
	"io"

	"github.com/kruzhok-team/libhtreegeom/bounding"
	"github.com/kruzhok-team/libhtreegeom/collect"
	"github.com/kruzhok-team/libhtreegeom/geom"
	"github.com/kruzhok-team/libhtreegeom/htree"
	"github.com/kruzhok-team/libhtreegeom/reconstruct"
	"github.com/kruzhok-team/libhtreegeom/transform"
)

// Return codes matching the original C library's HTResult table, for
// callers bridging to or from code written against it.
const (
	OK                     = 0
	BadParameter           = 1
	NotFound               = 2
	GeometryTransformError = 3
)

// Re-exported model types, so a caller only needs this one import path for
// ordinary use.
type (
	Document       = htree.Document
	Tree           = htree.Tree
	Node           = htree.Node
	Edge           = htree.Edge
	NodeType       = htree.NodeType
	CoordFrame     = htree.CoordFrame
	EdgeAttachment = htree.EdgeAttachment
)

// Re-exported node type / frame / attachment constants.
const (
	NodeTree      = htree.NodeTree
	NodeSimple    = htree.NodeSimple
	NodeComposite = htree.NodeComposite
	NodePoint     = htree.NodePoint

	FrameNone        = htree.FrameNone
	FrameAbsolute    = htree.FrameAbsolute
	FrameLeftTop     = htree.FrameLeftTop
	FrameLocalCenter = htree.FrameLocalCenter

	AttachNone   = htree.AttachNone
	AttachCenter = htree.AttachCenter
	AttachBorder = htree.AttachBorder
)

// NewDocument returns an empty Document recording the given node frame,
// edge frame, edge-polyline frame, and edge attachment conventions.
func NewDocument(nodeFrame, edgeFrame, edgePolyFrame htree.CoordFrame, attachment htree.EdgeAttachment) *htree.Document {
	return htree.NewDocument(nodeFrame, edgeFrame, edgePolyFrame, attachment)
}

// CopyDocument returns a deep copy of doc, with every edge re-resolved
// against the copied forest. It fails atomically: if any edge in any tree
// cannot be re-resolved, no partial copy is returned.
func CopyDocument(doc *htree.Document) (*htree.Document, error) {
	return htree.CopyDocument(doc)
}

// BuildBoundingRect computes doc's smallest enclosing rect from its
// current geometry without modifying doc.
func BuildBoundingRect(doc *htree.Document) (geom.Rect, error) {
	if doc == nil {
		return geom.Rect{}, htree.ErrNilDocument
	}
	return bounding.Bound(collect.Collect(doc)), nil
}

// ConvertDocumentGeometry moves doc's entire node and edge geometry from
// its current coordinate frames into the requested ones.
func ConvertDocumentGeometry(doc *htree.Document, nodeFrame, edgeFrame, edgePolyFrame htree.CoordFrame, attachment htree.EdgeAttachment) error {
	return transform.ConvertDocument(doc, nodeFrame, edgeFrame, edgePolyFrame, attachment)
}

// ReconstructDocumentGeometry fills in any missing node geometry
// throughout doc and rebuilds its bounding rect. reconstructTopLevel
// controls whether a root node lacking its own rect gets one synthesized
// from its children's bounds.
func ReconstructDocumentGeometry(doc *htree.Document, reconstructTopLevel bool) error {
	return reconstruct.Document(doc, reconstructTopLevel)
}

// PrintDocument writes a human-readable dump of doc's trees, nodes, and
// edges to w, for debugging. The exact format is unspecified and may
// change between releases; callers must not parse it.
func PrintDocument(w io.Writer, doc *htree.Document) error {
	if doc == nil {
		return htree.ErrNilDocument
	}
	bw := func(format string, args ...any) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	}
	if err := bw("document: frames=(node=%d edge=%d poly=%d attach=%d)\n",
		doc.NodeFrame, doc.EdgeFrame, doc.EdgePolyFrame, doc.Attachment); err != nil {
		return err
	}
	if doc.BoundingRect != nil {
		if err := bw("  bounding: %+v\n", *doc.BoundingRect); err != nil {
			return err
		}
	}
	for ti, tree := range doc.Trees {
		if err := bw("tree[%d]:\n", ti); err != nil {
			return err
		}
		for _, n := range tree.Nodes {
			if err := printNode(bw, n, 1); err != nil {
				return err
			}
		}
		for _, e := range tree.Edges {
			if err := bw("  edge %s: %s -> %s\n", e.ID, e.SourceID, e.TargetID); err != nil {
				return err
			}
		}
	}
	return nil
}

func printNode(bw func(string, ...any) error, n *htree.Node, depth int) error {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	switch {
	case n.Point != nil:
		if err := bw("%snode %s (point) %+v\n", indent, n.ID, *n.Point); err != nil {
			return err
		}
	case n.Rect != nil:
		if err := bw("%snode %s (rect) %+v\n", indent, n.ID, *n.Rect); err != nil {
			return err
		}
	default:
		if err := bw("%snode %s (no geometry)\n", indent, n.ID); err != nil {
			return err
		}
	}
	for _, child := range n.Children {
		if err := printNode(bw, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Code maps an error returned by this module onto the original C
// library's four-value return code table. A nil error maps to OK; an
// error this module never produces maps to GeometryTransformError, the
// catch-all the original reserved for internal invariant failures.
func Code(err error) int {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, htree.ErrNilDocument),
		errors.Is(err, htree.ErrNilTree),
		errors.Is(err, htree.ErrNilNode),
		errors.Is(err, htree.ErrInvalidNodeGeometry),
		errors.Is(err, htree.ErrInvalidFrame),
		errors.Is(err, htree.ErrCrossTreeEdge):
		return BadParameter
	case errors.Is(err, htree.ErrNodeNotFound):
		return NotFound
	case errors.Is(err, htree.ErrEdgeResolutionFailed),
		errors.Is(err, htree.ErrGeometryTransform):
		return GeometryTransformError
	default:
		return GeometryTransformError
	}
}
