// Package reconstruct fills in missing node geometry with sensible
// defaults and rebuilds bounding rects bottom-up, so a partially
// specified document (e.g. one the caller only recorded a hierarchy and
// a handful of node positions for) becomes fully geometric.
package reconstruct

import (
	"github.com/kruzhok-team/libhtreegeom/geom"
	"github.com/kruzhok-team/libhtreegeom/htree"
	"github.com/kruzhok-team/libhtreegeom/transform"
)

// Default placement/sizing for synthesized node geometry, matching the
// reference implementation's constants.
const (
	Padding    = 10.0
	NodeWidth  = 300.0
	NodeHeight = 200.0
)

// Document normalizes doc to absolute coordinates, fills in missing node
// geometry throughout every tree, rebuilds the bounding rect, and
// converts back to doc's original frames. reconstructTopLevel controls
// whether a root node lacking its own rect gets one synthesized for it
// from its children's bounds (the same rule applied to every other node);
// when false, such a root's rect is left unset.
func Document(doc *htree.Document, reconstructTopLevel bool) error {
	if doc == nil {
		return htree.ErrNilDocument
	}

	nodeFrame, edgeFrame, edgePolyFrame, attachment := doc.NodeFrame, doc.EdgeFrame, doc.EdgePolyFrame, doc.Attachment

	if err := transform.ConvertDocument(doc, htree.FrameAbsolute, htree.FrameAbsolute, htree.FrameAbsolute, htree.AttachBorder); err != nil {
		return err
	}

	origin := geom.Rect{}
	for _, tree := range doc.Trees {
		reconstructForest(tree.Nodes, origin, reconstructTopLevel)
	}

	if err := transform.ConvertDocument(doc, nodeFrame, edgeFrame, edgePolyFrame, attachment); err != nil {
		return err
	}
	return nil
}

// reconstructForest applies reconstructNode to every node in a root
// forest, using origin as the synthetic parent offset for a root lacking
// its own geometry.
func reconstructForest(nodes []*htree.Node, origin geom.Rect, reconstructSelf bool) {
	for _, n := range nodes {
		reconstructNode(n, origin, reconstructSelf)
	}
}

// reconstructNode fills in n's geometry if absent, recurses into n's
// children first (their defaults are offset from n's own rect, which
// must exist before they run), then - if reconstructSelf is set and n had
// no rect of its own before this call - rebuilds n's rect as the bounding
// box of its children, inflated by Padding on every side.
func reconstructNode(n *htree.Node, parent geom.Rect, reconstructSelf bool) {
	hadOwnRect := n.Rect != nil || n.Type == htree.NodePoint

	if n.Type == htree.NodePoint {
		if n.Point == nil {
			p := geom.Point{X: parent.X + Padding, Y: parent.Y + Padding}
			n.Point = &p
		}
	} else if n.Rect == nil {
		r := geom.Rect{X: parent.X + Padding, Y: parent.Y + Padding, W: NodeWidth, H: NodeHeight}
		n.Rect = &r
	}

	selfRect := geom.Rect{}
	if n.Rect != nil {
		selfRect = *n.Rect
	}
	for _, child := range n.Children {
		reconstructNode(child, selfRect, true)
	}

	if !hadOwnRect && reconstructSelf && len(n.Children) > 0 {
		box := childrenBoundingBox(n.Children)
		box = geom.Rect{
			X: box.X - Padding, Y: box.Y - Padding,
			W: box.W + 2*Padding, H: box.H + 2*Padding,
		}
		n.Rect = &box
	}
}

func childrenBoundingBox(children []*htree.Node) geom.Rect {
	first := true
	var minX, minY, maxX, maxY float64
	for _, c := range children {
		var r geom.Rect
		switch {
		case c.Rect != nil:
			r = *c.Rect
		case c.Point != nil:
			r = geom.Rect{X: c.Point.X, Y: c.Point.Y}
		default:
			continue
		}
		if first {
			minX, minY, maxX, maxY = r.X, r.Y, r.X+r.W, r.Y+r.H
			first = false
			continue
		}
		if r.X < minX {
			minX = r.X
		}
		if r.Y < minY {
			minY = r.Y
		}
		if r.X+r.W > maxX {
			maxX = r.X + r.W
		}
		if r.Y+r.H > maxY {
			maxY = r.Y + r.H
		}
	}
	if first {
		return geom.Rect{}
	}
	return geom.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
