// Package htree defines the hierarchical diagram model this module
// operates on: a Document of Trees, each a root forest of typed Nodes
// connected by Edges, plus the three coordinate/attachment enums whose
// numeric values are part of this module's storage-compatibility
// contract and must never change.
package htree

import "github.com/kruzhok-team/libhtreegeom/geom"

// NodeType tags which kind of geometry a Node carries. Values match the
// original C library's HTNodeType exactly.
type NodeType int

const (
	// NodeTree marks the synthetic root of a Tree when the tree itself
	// needs to be addressed as a node (e.g. nested diagrams).
	NodeTree NodeType = 0
	// NodeSimple is an ordinary rectangular node with no children.
	NodeSimple NodeType = 1
	// NodeComposite is a rectangular node containing children. A node is
	// promoted to NodeComposite automatically the moment its first child
	// is attached, regardless of its previous type.
	NodeComposite NodeType = 2
	// NodePoint is a zero-size node carrying a single Point instead of a
	// Rect.
	NodePoint NodeType = 4
)

// CoordFrame identifies a node coordinate convention. Values match the
// original C library's HTCoordFormat exactly.
type CoordFrame int

const (
	FrameNone        CoordFrame = 0
	FrameAbsolute    CoordFrame = 1
	FrameLeftTop     CoordFrame = 2
	FrameLocalCenter CoordFrame = 4
)

// EdgeAttachment identifies how an edge's endpoints are anchored to their
// nodes. Values match the original C library's HTEdgeFormat exactly.
type EdgeAttachment int

const (
	AttachNone   EdgeAttachment = 0
	AttachCenter EdgeAttachment = 1
	AttachBorder EdgeAttachment = 2
)

// Node is one entry in a Tree's hierarchy. Exactly one of Point/Rect is
// meaningful depending on Type: NodePoint carries Point, every other type
// carries Rect. Parent is a non-owning back-reference maintained by
// AddChild; it is nil for a root-forest node.
type Node struct {
	ID       string
	Type     NodeType
	Point    *geom.Point
	Rect     *geom.Rect
	Parent   *Node
	Children []*Node
}

// NewPointNode returns a new, childless NodePoint with no geometry set.
func NewPointNode(id string) *Node {
	return &Node{ID: id, Type: NodePoint}
}

// NewRectNode returns a new, childless rect-carrying node of the given
// type with no geometry set. t must be NodeTree, NodeSimple, or
// NodeComposite.
func NewRectNode(id string, t NodeType) *Node {
	return &Node{ID: id, Type: t}
}

// HasGeometry reports whether the node carries a Point or a Rect.
func (n *Node) HasGeometry() bool {
	return n.Point != nil || n.Rect != nil
}

// SetPoint assigns p to a NodePoint node. It returns ErrInvalidNodeGeometry
// for any other node type.
func (n *Node) SetPoint(p geom.Point) error {
	if n.Type != NodePoint {
		return ErrInvalidNodeGeometry
	}
	v := p
	n.Point = &v
	return nil
}

// SetRect assigns r to a rect-carrying node. It returns
// ErrInvalidNodeGeometry for a NodePoint node.
func (n *Node) SetRect(r geom.Rect) error {
	if n.Type == NodePoint {
		return ErrInvalidNodeGeometry
	}
	v := r
	n.Rect = &v
	return nil
}

// AddChild attaches child to parent's children, setting child.Parent.
// Attaching a node's first child promotes parent.Type to NodeComposite.
func AddChild(parent, child *Node) error {
	if parent == nil || child == nil {
		return ErrNilNode
	}
	if len(parent.Children) == 0 {
		parent.Type = NodeComposite
	}
	parent.Children = append(parent.Children, child)
	child.Parent = parent
	return nil
}

// FindNodeByID searches roots depth-first, pre-order, and returns the
// first node whose ID matches, or nil if none does.
func FindNodeByID(roots []*Node, id string) *Node {
	for _, n := range roots {
		if n.ID == id {
			return n
		}
		if found := FindNodeByID(n.Children, id); found != nil {
			return found
		}
	}
	return nil
}

// Edge connects two nodes within the same Tree. SourceID/TargetID are the
// authored identifiers; Source/Target are resolved, non-owning handles
// filled in by Tree.AddEdge (or by CopyTree's re-resolution pass).
// SourcePoint/TargetPoint/LabelPoint/LabelRect/Polyline are all optional:
// a nil Polyline means no polyline was ever recorded for this edge, as
// opposed to a non-nil, zero-length one meaning "recorded, straight line".
type Edge struct {
	ID                   string
	SourceID, TargetID   string
	Source, Target       *Node
	SourcePoint          *geom.Point
	TargetPoint          *geom.Point
	LabelPoint           *geom.Point
	LabelRect            *geom.Rect
	Polyline             geom.Polyline
}

// Tree is a root forest of Nodes plus the Edges connecting nodes within
// it. An edge may only connect nodes that belong to the same Tree.
type Tree struct {
	Nodes []*Node
	Edges []*Edge
}

// NewTree returns an empty Tree.
func NewTree() *Tree {
	return &Tree{}
}

// AddRoot appends n to the tree's root forest.
func (t *Tree) AddRoot(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	t.Nodes = append(t.Nodes, n)
	return nil
}

// AddEdge resolves sourceID/targetID against the tree's own forest and
// appends a new Edge connecting them. It returns ErrNodeNotFound if either
// ID does not resolve within this tree.
func (t *Tree) AddEdge(id, sourceID, targetID string) (*Edge, error) {
	src := FindNodeByID(t.Nodes, sourceID)
	if src == nil {
		return nil, ErrNodeNotFound
	}
	dst := FindNodeByID(t.Nodes, targetID)
	if dst == nil {
		return nil, ErrNodeNotFound
	}
	e := &Edge{ID: id, SourceID: sourceID, TargetID: targetID, Source: src, Target: dst}
	t.Edges = append(t.Edges, e)
	return e, nil
}

// Document is the top-level geometry container: a set of Trees plus the
// coordinate conventions every node/edge in it is currently expressed in,
// and the document's overall bounding rect.
type Document struct {
	Trees                            []*Tree
	BoundingRect                     *geom.Rect
	NodeFrame, EdgeFrame, EdgePolyFrame CoordFrame
	Attachment                       EdgeAttachment
}

// NewDocument returns an empty Document recording the given conventions.
func NewDocument(nodeFrame, edgeFrame, edgePolyFrame CoordFrame, attachment EdgeAttachment) *Document {
	return &Document{
		NodeFrame:    nodeFrame,
		EdgeFrame:    edgeFrame,
		EdgePolyFrame: edgePolyFrame,
		Attachment:   attachment,
	}
}

// AddTree appends tree to the document.
func (d *Document) AddTree(tree *Tree) error {
	if tree == nil {
		return ErrNilTree
	}
	d.Trees = append(d.Trees, tree)
	return nil
}

// FindNode searches every tree's forest and returns the first node whose
// ID matches, or ErrNodeNotFound if none does.
func (d *Document) FindNode(id string) (*Node, error) {
	for _, tree := range d.Trees {
		if n := FindNodeByID(tree.Nodes, id); n != nil {
			return n, nil
		}
	}
	return nil, ErrNodeNotFound
}
