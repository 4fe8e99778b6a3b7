// Package collect flattens a document's geometry into buffers of points,
// rects, and fully-synthesized polylines, the shape the bounding-rectangle
// engine (package bounding) consumes.
package collect

import (
	"github.com/kruzhok-team/libhtreegeom/geom"
	"github.com/kruzhok-team/libhtreegeom/htree"
)

// Buffers holds every piece of geometry collected from a Document, flat
// and frame-agnostic: the caller is responsible for having already put
// the document in whatever frame it wants these buffers expressed in.
type Buffers struct {
	Points    []geom.Point
	Rects     []geom.Rect
	Polylines []geom.Polyline
}

// Collect walks every tree in doc and returns the flattened geometry:
//
//   - every node's Point or Rect,
//   - every edge's LabelPoint/LabelRect, unconditionally (a label needs no
//     resolved endpoint to exist),
//   - for each edge that has a recorded polyline, the full vertex
//     sequence including a synthesized start/end derived from the edge's
//     resolved source/target. An edge whose source or target (or that
//     node's derivable center) is missing contributes no polyline, since
//     there is nothing to synthesize an endpoint from.
func Collect(doc *htree.Document) Buffers {
	var b Buffers
	if doc == nil {
		return b
	}
	for _, tree := range doc.Trees {
		collectNodes(tree.Nodes, &b)
		for _, e := range tree.Edges {
			collectEdge(e, &b)
		}
	}
	return b
}

func collectNodes(nodes []*htree.Node, b *Buffers) {
	for _, n := range nodes {
		if n.Point != nil {
			b.Points = append(b.Points, *n.Point)
		}
		if n.Rect != nil {
			b.Rects = append(b.Rects, *n.Rect)
		}
		collectNodes(n.Children, b)
	}
}

func collectEdge(e *htree.Edge, b *Buffers) {
	if e.LabelPoint != nil {
		b.Points = append(b.Points, *e.LabelPoint)
	}
	if e.LabelRect != nil {
		b.Rects = append(b.Rects, *e.LabelRect)
	}
	if e.Polyline == nil || e.Source == nil || e.Target == nil {
		return
	}
	start, ok := endpointCenter(e.SourcePoint, e.Source)
	if !ok {
		return
	}
	end, ok := endpointCenter(e.TargetPoint, e.Target)
	if !ok {
		return
	}
	full := make(geom.Polyline, 0, len(e.Polyline)+2)
	full = append(full, start)
	full = append(full, e.Polyline...)
	full = append(full, end)
	b.Polylines = append(b.Polylines, full)
}

// endpointCenter returns the effective anchor point for one end of an
// edge: the explicit point if recorded, otherwise the resolved node's own
// center. It reports false if neither is available.
func endpointCenter(explicit *geom.Point, node *htree.Node) (geom.Point, bool) {
	if explicit != nil {
		return *explicit, true
	}
	if node == nil {
		return geom.Point{}, false
	}
	if node.Point != nil {
		return *node.Point, true
	}
	if node.Rect != nil {
		return node.Rect.CenterAbsolute(), true
	}
	return geom.Point{}, false
}
