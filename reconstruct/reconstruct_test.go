package reconstruct

import (
	"testing"

	"github.com/kruzhok-team/libhtreegeom/geom"
	"github.com/kruzhok-team/libhtreegeom/htree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_FillsMissingChildGeometry(t *testing.T) {
	doc := htree.NewDocument(htree.FrameAbsolute, htree.FrameAbsolute, htree.FrameAbsolute, htree.AttachBorder)
	tree := htree.NewTree()
	parent := htree.NewRectNode("parent", htree.NodeComposite)
	require.NoError(t, parent.SetRect(geom.Rect{X: 0, Y: 0, W: 500, H: 500}))
	child := htree.NewRectNode("child", htree.NodeSimple)
	pointChild := htree.NewPointNode("pt")
	require.NoError(t, htree.AddChild(parent, child))
	require.NoError(t, htree.AddChild(parent, pointChild))
	require.NoError(t, tree.AddRoot(parent))
	require.NoError(t, doc.AddTree(tree))

	require.NoError(t, Document(doc, false))

	require.NotNil(t, child.Rect)
	assert.InDelta(t, Padding, child.Rect.X, 1e-4)
	assert.InDelta(t, Padding, child.Rect.Y, 1e-4)
	assert.InDelta(t, NodeWidth, child.Rect.W, 1e-4)
	assert.InDelta(t, NodeHeight, child.Rect.H, 1e-4)

	require.NotNil(t, pointChild.Point)
	assert.InDelta(t, Padding, pointChild.Point.X, 1e-4)
	assert.InDelta(t, Padding, pointChild.Point.Y, 1e-4)
}

func TestDocument_SynthesizesParentRectFromChildren(t *testing.T) {
	doc := htree.NewDocument(htree.FrameAbsolute, htree.FrameAbsolute, htree.FrameAbsolute, htree.AttachBorder)
	tree := htree.NewTree()
	parent := htree.NewRectNode("parent", htree.NodeComposite)
	child := htree.NewRectNode("child", htree.NodeSimple)
	require.NoError(t, child.SetRect(geom.Rect{X: 20, Y: 20, W: 50, H: 50}))
	require.NoError(t, htree.AddChild(parent, child))
	require.NoError(t, tree.AddRoot(parent))
	require.NoError(t, doc.AddTree(tree))

	require.NoError(t, Document(doc, true))

	require.NotNil(t, parent.Rect)
	assert.True(t, parent.Rect.Equal(geom.Rect{X: 10, Y: 10, W: 70, H: 70}, 1e-4), "got %+v", parent.Rect)
}

func TestDocument_NilDocument(t *testing.T) {
	assert.ErrorIs(t, Document(nil, true), htree.ErrNilDocument)
}
