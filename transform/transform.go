// Package transform converts a Document's node and edge geometry between
// coordinate frames: LeftTop/LocalCenter (relative to a node's nesting
// parent) and Absolute. It is the hub the rest of this module is built
// around - reconstruct drives it to normalize a document before filling
// in missing geometry, and the root facade exposes it directly as the
// public conversion entry point.
package transform

import (
	"github.com/kruzhok-team/libhtreegeom/attach"
	"github.com/kruzhok-team/libhtreegeom/bounding"
	"github.com/kruzhok-team/libhtreegeom/collect"
	"github.com/kruzhok-team/libhtreegeom/geom"
	"github.com/kruzhok-team/libhtreegeom/htree"
)

// parentRef is the absolute reference a point/rect's relative coordinates
// are measured against: either a point (an edge's endpoint measured
// against a Point-typed source/target node) or a rect (the ordinary
// case). At most one of the two is non-nil. Only the edge pass ever uses
// the Point form - the node pass's parent is always a rect, since a node
// with no rect of its own cannot parent geometry children (see
// childParentRef).
type parentRef struct {
	Point *geom.Point
	Rect  *geom.Rect
}

// asParent is the edge pass's view of a resolved source/target node as a
// parent reference: its point if it is a Point node, its rect otherwise.
func asParent(n *htree.Node) parentRef {
	return parentRef{Point: n.Point, Rect: n.Rect}
}

var zeroParent = parentRef{Rect: &geom.Rect{}}

func parentOrigin(p parentRef) (float64, float64) {
	if p.Rect != nil {
		return p.Rect.X, p.Rect.Y
	}
	if p.Point != nil {
		return p.Point.X, p.Point.Y
	}
	return 0, 0
}

// pointToAbsolute converts p from frame, relative to parent, to absolute.
func pointToAbsolute(p geom.Point, parent parentRef, frame htree.CoordFrame) geom.Point {
	switch frame {
	case htree.FrameLeftTop:
		ox, oy := parentOrigin(parent)
		return geom.Point{X: p.X + ox, Y: p.Y + oy}
	case htree.FrameLocalCenter:
		if parent.Rect != nil {
			return geom.Point{X: p.X + parent.Rect.X + parent.Rect.W/2, Y: p.Y + parent.Rect.Y + parent.Rect.H/2}
		}
		if parent.Point != nil {
			return geom.Point{X: p.X + parent.Point.X, Y: p.Y + parent.Point.Y}
		}
		return p
	default:
		return p
	}
}

// pointToFormat converts absolute point p into frame, relative to parent
// (itself already absolute), applying small-value snap-to-zero hygiene.
func pointToFormat(p geom.Point, parent parentRef, frame htree.CoordFrame) geom.Point {
	switch frame {
	case htree.FrameLeftTop:
		ox, oy := parentOrigin(parent)
		return geom.Point{X: p.X - ox, Y: p.Y - oy}.SnapSmall()
	case htree.FrameLocalCenter:
		if parent.Rect != nil {
			return geom.Point{X: p.X - parent.Rect.X - parent.Rect.W/2, Y: p.Y - parent.Rect.Y - parent.Rect.H/2}.SnapSmall()
		}
		if parent.Point != nil {
			return geom.Point{X: p.X - parent.Point.X, Y: p.Y - parent.Point.Y}.SnapSmall()
		}
		return p
	default:
		return p
	}
}

// rectToAbsolute converts r from frame, relative to parent, to absolute.
// Width/height never change.
func rectToAbsolute(r geom.Rect, parent parentRef, frame htree.CoordFrame) geom.Rect {
	switch frame {
	case htree.FrameLeftTop:
		ox, oy := parentOrigin(parent)
		return r.Translate(ox, oy)
	case htree.FrameLocalCenter:
		if parent.Rect != nil {
			return geom.Rect{
				X: r.X + parent.Rect.X + parent.Rect.W/2 - r.W/2,
				Y: r.Y + parent.Rect.Y + parent.Rect.H/2 - r.H/2,
				W: r.W, H: r.H,
			}
		}
		if parent.Point != nil {
			return geom.Rect{X: r.X + parent.Point.X - r.W/2, Y: r.Y + parent.Point.Y - r.H/2, W: r.W, H: r.H}
		}
		return r
	default:
		return r
	}
}

// rectToFormat converts absolute rect r into frame, relative to parent
// (itself already absolute), snapping small position residue to zero.
func rectToFormat(r geom.Rect, parent parentRef, frame htree.CoordFrame) geom.Rect {
	switch frame {
	case htree.FrameLeftTop:
		ox, oy := parentOrigin(parent)
		return geom.Rect{X: r.X - ox, Y: r.Y - oy, W: r.W, H: r.H}.SnapSmall()
	case htree.FrameLocalCenter:
		if parent.Rect != nil {
			return geom.Rect{
				X: r.X - parent.Rect.X - parent.Rect.W/2 + r.W/2,
				Y: r.Y - parent.Rect.Y - parent.Rect.H/2 + r.H/2,
				W: r.W, H: r.H,
			}.SnapSmall()
		}
		if parent.Point != nil {
			return geom.Rect{X: r.X - parent.Point.X + r.W/2, Y: r.Y - parent.Point.Y + r.H/2, W: r.W, H: r.H}.SnapSmall()
		}
		return r
	default:
		return r
	}
}

// hasTopLevelGeometry reports whether exactly one node in this forest -
// found either directly among the siblings, or, failing that, by
// recursing into exactly one sibling's children - carries its own
// geometry. Two or more such nodes (a tie) report false.
func hasTopLevelGeometry(nodes []*htree.Node) bool {
	found := false
	for _, n := range nodes {
		if n.HasGeometry() {
			if found {
				return false
			}
			found = true
		}
	}
	if found {
		return true
	}
	for _, n := range nodes {
		if len(n.Children) > 0 && hasTopLevelGeometry(n.Children) {
			if found {
				return false
			}
			found = true
		}
	}
	return found
}

// hasTopLevelRect reports whether exactly one tree in doc has top-level
// node geometry. A tie across trees reports false the same way a tie
// within one tree does, which leaves the outer-parent rule in effect.
func hasTopLevelRect(doc *htree.Document) bool {
	found := false
	for _, tree := range doc.Trees {
		if len(tree.Nodes) > 0 && hasTopLevelGeometry(tree.Nodes) {
			if found {
				return false
			}
			found = true
		}
	}
	return found
}

// outerParentAbsolute computes the implicit parent for top-level (root-forest)
// nodes. Under LocalCenter, when no tree has an unambiguous top-level
// geometry node, the document's bounding rect stands in as the outer
// parent - reinterpreted, via the ordinary rect-in-parent formula with a
// zero parent, so that its own (X, Y) plays the role of its LocalCenter
// center. Every other case uses a zero parent, equivalent to the node
// already being absolute.
func outerParentAbsolute(doc *htree.Document, nodeFrame htree.CoordFrame) parentRef {
	if nodeFrame == htree.FrameLocalCenter && doc.BoundingRect != nil && !hasTopLevelRect(doc) {
		outer := rectToAbsolute(*doc.BoundingRect, zeroParent, htree.FrameLocalCenter)
		return parentRef{Rect: &outer}
	}
	return zeroParent
}

// outerParentFormat is outerParentAbsolute's inverse-pass counterpart: the
// bounding rect is already absolute at the point nodes are converted back
// to a relative frame, so it is used directly, with no re-transformation.
func outerParentFormat(doc *htree.Document, nodeFrame htree.CoordFrame) parentRef {
	if nodeFrame == htree.FrameLocalCenter && doc.BoundingRect != nil && !hasTopLevelRect(doc) {
		return parentRef{Rect: doc.BoundingRect}
	}
	return zeroParent
}

// childParentRef returns the absolute reference n's own children are
// measured against: n's own rect when it has one, otherwise the parent n
// itself was measured against is inherited unchanged. A node with no rect
// - in particular a Point node, even one that owns children - cannot
// parent geometry children; only a rect-bearing node can.
func childParentRef(parent parentRef, n *htree.Node) parentRef {
	if n.Rect != nil {
		return parentRef{Rect: n.Rect}
	}
	return parent
}

func convertNodesToAbsolute(nodes []*htree.Node, parent parentRef, frame htree.CoordFrame) {
	for _, n := range nodes {
		if n.Point != nil {
			p := pointToAbsolute(*n.Point, parent, frame)
			n.Point = &p
		}
		if n.Rect != nil {
			r := rectToAbsolute(*n.Rect, parent, frame)
			n.Rect = &r
		}
		convertNodesToAbsolute(n.Children, childParentRef(parent, n), frame)
	}
}

// convertNodesToFormat recurses into a node's children before converting
// the node's own geometry, so children always see their parent's rect
// while it is still absolute. Converting the parent first would corrupt
// the reference every descendant still needs.
func convertNodesToFormat(nodes []*htree.Node, parent parentRef, frame htree.CoordFrame) {
	for _, n := range nodes {
		convertNodesToFormat(n.Children, childParentRef(parent, n), frame)
		if n.Point != nil {
			p := pointToFormat(*n.Point, parent, frame)
			n.Point = &p
		}
		if n.Rect != nil {
			r := rectToFormat(*n.Rect, parent, frame)
			n.Rect = &r
		}
	}
}

func nodeAbsoluteCenter(n *htree.Node) geom.Point {
	if n == nil {
		return geom.Point{}
	}
	if n.Point != nil {
		return *n.Point
	}
	if n.Rect != nil {
		return n.Rect.CenterAbsolute()
	}
	return geom.Point{}
}

func dropOptionalGeometry(e *htree.Edge) {
	e.SourcePoint = nil
	e.TargetPoint = nil
	e.LabelPoint = nil
	e.LabelRect = nil
	e.Polyline = nil
}

func edgeHasResolvedEndpoints(e *htree.Edge) bool {
	return e.Source != nil && e.Target != nil && e.Source.HasGeometry() && e.Target.HasGeometry()
}

// convertEdgePointsToAbsolute is phase 1 of the forward edge pass: it
// fills in SourcePoint/TargetPoint (defaulting to the resolved node's
// center when absent) and converts every polyline vertex. An edge whose
// endpoints cannot both be resolved has all of its optional geometry
// discarded instead of partially converted.
func convertEdgePointsToAbsolute(e *htree.Edge, edgeFrame, edgePolyFrame htree.CoordFrame) {
	if !edgeHasResolvedEndpoints(e) {
		dropOptionalGeometry(e)
		return
	}
	srcParent := asParent(e.Source)
	dstParent := asParent(e.Target)

	if e.SourcePoint != nil {
		sp := pointToAbsolute(*e.SourcePoint, srcParent, edgeFrame)
		e.SourcePoint = &sp
	} else {
		sp := nodeAbsoluteCenter(e.Source)
		e.SourcePoint = &sp
	}
	if e.TargetPoint != nil {
		tp := pointToAbsolute(*e.TargetPoint, dstParent, edgeFrame)
		e.TargetPoint = &tp
	} else {
		tp := nodeAbsoluteCenter(e.Target)
		e.TargetPoint = &tp
	}
	if e.Polyline != nil {
		converted := make(geom.Polyline, len(e.Polyline))
		for i, v := range e.Polyline {
			converted[i] = pointToAbsolute(v, srcParent, edgePolyFrame)
		}
		e.Polyline = converted
	}
}

// convertEdgeBordersToAbsolute is phase 2: it re-anchors each already-
// converted endpoint onto its node's border, when that node has a rect to
// snap against. An endpoint whose segment never crosses the border is
// left unchanged.
func convertEdgeBordersToAbsolute(e *htree.Edge) {
	if e.Source == nil || e.Target == nil || e.SourcePoint == nil || e.TargetPoint == nil {
		return
	}
	if e.Source.Rect != nil {
		toward := *e.TargetPoint
		if len(e.Polyline) > 0 {
			toward = e.Polyline[0]
		}
		if crossings := attach.Intersect(*e.SourcePoint, toward, *e.Source.Rect); len(crossings) > 0 {
			e.SourcePoint = &crossings[0]
		}
	}
	if e.Target.Rect != nil {
		from := *e.SourcePoint
		if len(e.Polyline) > 0 {
			from = e.Polyline[len(e.Polyline)-1]
		}
		if crossings := attach.Intersect(from, *e.TargetPoint, *e.Target.Rect); len(crossings) > 0 {
			e.TargetPoint = &crossings[0]
		}
	}
}

// yEdLabelException reports whether the specific 4-tuple of conventions
// that makes yEd-produced labels anchor against the edge's own source
// point (instead of the source node) is in effect. Preserved verbatim as
// a documented compatibility heuristic, not a general rule.
func yEdLabelException(nodeFrame, edgeFrame, edgePolyFrame htree.CoordFrame, attachment htree.EdgeAttachment) bool {
	return nodeFrame == htree.FrameAbsolute &&
		edgeFrame == htree.FrameLocalCenter &&
		edgePolyFrame == htree.FrameAbsolute &&
		attachment == htree.AttachCenter
}

// convertEdgeLabelsToAbsolute is phase 3.
func convertEdgeLabelsToAbsolute(e *htree.Edge, edgeFrame, edgePolyFrame, nodeFrame htree.CoordFrame, attachment htree.EdgeAttachment) {
	if e.LabelPoint == nil && e.LabelRect == nil {
		return
	}
	if e.Source == nil {
		return
	}
	parent := asParent(e.Source)
	if yEdLabelException(nodeFrame, edgeFrame, edgePolyFrame, attachment) && e.SourcePoint != nil {
		parent = parentRef{Point: e.SourcePoint}
	}
	if e.LabelPoint != nil {
		lp := pointToAbsolute(*e.LabelPoint, parent, edgeFrame)
		e.LabelPoint = &lp
	}
	if e.LabelRect != nil {
		lr := rectToAbsolute(*e.LabelRect, parent, edgeFrame)
		e.LabelRect = &lr
	}
}

func convertEdgeLabelsToFormat(e *htree.Edge, edgeFrame, edgePolyFrame, nodeFrame htree.CoordFrame, attachment htree.EdgeAttachment) {
	if e.LabelPoint == nil && e.LabelRect == nil {
		return
	}
	if e.Source == nil {
		return
	}
	parent := asParent(e.Source)
	if yEdLabelException(nodeFrame, edgeFrame, edgePolyFrame, attachment) && e.SourcePoint != nil {
		parent = parentRef{Point: e.SourcePoint}
	}
	if e.LabelPoint != nil {
		lp := pointToFormat(*e.LabelPoint, parent, edgeFrame)
		e.LabelPoint = &lp
	}
	if e.LabelRect != nil {
		lr := rectToFormat(*e.LabelRect, parent, edgeFrame)
		e.LabelRect = &lr
	}
}

func convertEdgePointsToFormat(e *htree.Edge, edgeFrame, edgePolyFrame htree.CoordFrame) {
	if e.Source == nil || e.Target == nil {
		return
	}
	srcParent := asParent(e.Source)
	dstParent := asParent(e.Target)
	if e.SourcePoint != nil {
		sp := pointToFormat(*e.SourcePoint, srcParent, edgeFrame)
		e.SourcePoint = &sp
	}
	if e.TargetPoint != nil {
		tp := pointToFormat(*e.TargetPoint, dstParent, edgeFrame)
		e.TargetPoint = &tp
	}
	if e.Polyline != nil {
		converted := make(geom.Polyline, len(e.Polyline))
		for i, v := range e.Polyline {
			converted[i] = pointToFormat(v, srcParent, edgePolyFrame)
		}
		e.Polyline = converted
	}
}

func forEachEdge(doc *htree.Document, fn func(*htree.Edge)) {
	for _, tree := range doc.Trees {
		for _, e := range tree.Edges {
			fn(e)
		}
	}
}

// toAbsolute converts doc's entire node and edge geometry to absolute, in
// place, using doc's currently-recorded frames. It does not touch doc's
// frame/attachment fields or its bounding rect; callers rebuild the
// bounding rect and update the recorded frames themselves.
func toAbsolute(doc *htree.Document) {
	nodeFrame, edgeFrame, edgePolyFrame, attachment := doc.NodeFrame, doc.EdgeFrame, doc.EdgePolyFrame, doc.Attachment

	if nodeFrame != htree.FrameAbsolute {
		parent := outerParentAbsolute(doc, nodeFrame)
		for _, tree := range doc.Trees {
			convertNodesToAbsolute(tree.Nodes, parent, nodeFrame)
		}
	}

	forEachEdge(doc, func(e *htree.Edge) { convertEdgePointsToAbsolute(e, edgeFrame, edgePolyFrame) })
	if attachment != htree.AttachBorder {
		forEachEdge(doc, convertEdgeBordersToAbsolute)
	}
	forEachEdge(doc, func(e *htree.Edge) {
		convertEdgeLabelsToAbsolute(e, edgeFrame, edgePolyFrame, nodeFrame, attachment)
	})
}

// toFormat converts doc's already-absolute geometry to the requested
// frames, in place: edges (labels then points) before nodes, then the
// bounding rect itself is re-expressed in the target node frame.
func toFormat(doc *htree.Document, nodeFrame, edgeFrame, edgePolyFrame htree.CoordFrame, attachment htree.EdgeAttachment) error {
	if doc.BoundingRect == nil {
		return htree.ErrInvalidFrame
	}

	forEachEdge(doc, func(e *htree.Edge) {
		convertEdgeLabelsToFormat(e, edgeFrame, edgePolyFrame, nodeFrame, attachment)
	})
	forEachEdge(doc, func(e *htree.Edge) { convertEdgePointsToFormat(e, edgeFrame, edgePolyFrame) })

	if nodeFrame != htree.FrameAbsolute {
		parent := outerParentFormat(doc, nodeFrame)
		for _, tree := range doc.Trees {
			convertNodesToFormat(tree.Nodes, parent, nodeFrame)
		}
	}

	br := rectToFormat(*doc.BoundingRect, zeroParent, nodeFrame)
	doc.BoundingRect = &br
	return nil
}

func rebuildBoundingRect(doc *htree.Document) {
	box := bounding.Bound(collect.Collect(doc))
	doc.BoundingRect = &box
}

// ConvertDocument moves doc's entire node and edge geometry from its
// current coordinate frames into the requested ones: it normalizes to
// absolute, rebuilds the bounding rect from the now-absolute geometry,
// converts to the target frames (edges strictly before nodes), and
// records the new frames on doc.
func ConvertDocument(doc *htree.Document, nodeFrame, edgeFrame, edgePolyFrame htree.CoordFrame, attachment htree.EdgeAttachment) error {
	if doc == nil {
		return htree.ErrNilDocument
	}
	if nodeFrame == htree.FrameNone || edgeFrame == htree.FrameNone || edgePolyFrame == htree.FrameNone {
		return htree.ErrInvalidFrame
	}

	toAbsolute(doc)
	rebuildBoundingRect(doc)
	if err := toFormat(doc, nodeFrame, edgeFrame, edgePolyFrame, attachment); err != nil {
		return err
	}

	doc.NodeFrame = nodeFrame
	doc.EdgeFrame = edgeFrame
	doc.EdgePolyFrame = edgePolyFrame
	doc.Attachment = attachment
	return nil
}
