package htree

import (
	"fmt"

	"github.com/kruzhok-team/libhtreegeom/geom"
)

// CopyNode deep-copies n and its entire subtree. Parent back-references
// in the copy point within the copy (the returned node's Parent is always
// nil; callers attach it to a parent the same way AddChild does).
func CopyNode(n *Node) *Node {
	if n == nil {
		return nil
	}
	cp := &Node{ID: n.ID, Type: n.Type}
	if n.Point != nil {
		p := *n.Point
		cp.Point = &p
	}
	if n.Rect != nil {
		r := *n.Rect
		cp.Rect = &r
	}
	for _, child := range n.Children {
		childCopy := CopyNode(child)
		childCopy.Parent = cp
		cp.Children = append(cp.Children, childCopy)
	}
	return cp
}

func copyEdgeShallow(e *Edge) *Edge {
	cp := &Edge{ID: e.ID, SourceID: e.SourceID, TargetID: e.TargetID}
	if e.SourcePoint != nil {
		p := *e.SourcePoint
		cp.SourcePoint = &p
	}
	if e.TargetPoint != nil {
		p := *e.TargetPoint
		cp.TargetPoint = &p
	}
	if e.LabelPoint != nil {
		p := *e.LabelPoint
		cp.LabelPoint = &p
	}
	if e.LabelRect != nil {
		r := *e.LabelRect
		cp.LabelRect = &r
	}
	if e.Polyline != nil {
		cp.Polyline = append(geom.Polyline{}, e.Polyline...)
	}
	return cp
}

// CopyTree deep-copies tree's node forest, then re-resolves every edge's
// Source/Target by ID against the copied forest. If any edge fails to
// resolve, the entire copy is discarded and ErrEdgeResolutionFailed is
// returned — there is no partially-resolved result.
func CopyTree(tree *Tree) (*Tree, error) {
	if tree == nil {
		return nil, ErrNilTree
	}
	cp := &Tree{}
	for _, root := range tree.Nodes {
		cp.Nodes = append(cp.Nodes, CopyNode(root))
	}
	for _, e := range tree.Edges {
		ec := copyEdgeShallow(e)
		ec.Source = FindNodeByID(cp.Nodes, e.SourceID)
		ec.Target = FindNodeByID(cp.Nodes, e.TargetID)
		if ec.Source == nil || ec.Target == nil {
			return nil, fmt.Errorf("htree: copy tree: edge %q: %w", e.ID, ErrEdgeResolutionFailed)
		}
		cp.Edges = append(cp.Edges, ec)
	}
	return cp, nil
}

// CopyDocument deep-copies every tree in doc via CopyTree. If any tree's
// edges fail to re-resolve, the whole document copy is discarded.
func CopyDocument(doc *Document) (*Document, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	cp := &Document{
		NodeFrame:     doc.NodeFrame,
		EdgeFrame:     doc.EdgeFrame,
		EdgePolyFrame: doc.EdgePolyFrame,
		Attachment:    doc.Attachment,
	}
	if doc.BoundingRect != nil {
		r := *doc.BoundingRect
		cp.BoundingRect = &r
	}
	for _, tree := range doc.Trees {
		treeCopy, err := CopyTree(tree)
		if err != nil {
			return nil, err
		}
		cp.Trees = append(cp.Trees, treeCopy)
	}
	return cp, nil
}
