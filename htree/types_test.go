package htree

import (
	"testing"

	"github.com/kruzhok-team/libhtreegeom/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddChild_PromotesToComposite(t *testing.T) {
	parent := NewRectNode("p", NodeSimple)
	child := NewRectNode("c", NodeSimple)

	require.NoError(t, AddChild(parent, child))

	assert.Equal(t, NodeComposite, parent.Type)
	assert.Same(t, parent, child.Parent)
	require.Len(t, parent.Children, 1)
	assert.Same(t, child, parent.Children[0])
}

func TestAddChild_NilArguments(t *testing.T) {
	n := NewRectNode("n", NodeSimple)
	assert.ErrorIs(t, AddChild(nil, n), ErrNilNode)
	assert.ErrorIs(t, AddChild(n, nil), ErrNilNode)
}

func TestSetPoint_WrongNodeType(t *testing.T) {
	n := NewRectNode("n", NodeSimple)
	assert.ErrorIs(t, n.SetPoint(geom.Point{X: 1, Y: 2}), ErrInvalidNodeGeometry)
}

func TestSetRect_WrongNodeType(t *testing.T) {
	n := NewPointNode("n")
	assert.ErrorIs(t, n.SetRect(geom.Rect{W: 1, H: 1}), ErrInvalidNodeGeometry)
}

func TestFindNodeByID_DepthFirstPreOrderFirstMatch(t *testing.T) {
	root := NewRectNode("root", NodeSimple)
	a := NewRectNode("a", NodeSimple)
	b := NewRectNode("dup", NodeSimple)
	c := NewRectNode("dup", NodeSimple)
	require.NoError(t, AddChild(root, a))
	require.NoError(t, AddChild(a, b))
	require.NoError(t, AddChild(root, c))

	found := FindNodeByID([]*Node{root}, "dup")
	assert.Same(t, b, found, "pre-order search must return the first match, under a before a's sibling c")
}

func TestTree_AddEdge_NotFound(t *testing.T) {
	tree := NewTree()
	require.NoError(t, tree.AddRoot(NewRectNode("a", NodeSimple)))
	_, err := tree.AddEdge("e", "a", "missing")
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestDocument_FindNode(t *testing.T) {
	doc := NewDocument(FrameAbsolute, FrameAbsolute, FrameAbsolute, AttachBorder)
	tree := NewTree()
	require.NoError(t, tree.AddRoot(NewRectNode("root", NodeSimple)))
	require.NoError(t, doc.AddTree(tree))

	n, err := doc.FindNode("root")
	require.NoError(t, err)
	assert.Equal(t, "root", n.ID)

	_, err = doc.FindNode("nope")
	assert.ErrorIs(t, err, ErrNodeNotFound)
}
