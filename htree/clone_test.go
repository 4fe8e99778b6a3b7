package htree

import (
	"testing"

	"github.com/kruzhok-team/libhtreegeom/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSampleTree(t *testing.T) *Tree {
	t.Helper()
	tree := NewTree()
	root := NewRectNode("root", NodeSimple)
	require.NoError(t, root.SetRect(geom.Rect{X: 0, Y: 0, W: 10, H: 10}))
	child := NewPointNode("child")
	require.NoError(t, child.SetPoint(geom.Point{X: 1, Y: 2}))
	require.NoError(t, AddChild(root, child))
	require.NoError(t, tree.AddRoot(root))
	_, err := tree.AddEdge("e1", "root", "child")
	require.NoError(t, err)
	return tree
}

func TestCopyTree_DeepCopyIsIndependent(t *testing.T) {
	tree := buildSampleTree(t)
	cp, err := CopyTree(tree)
	require.NoError(t, err)

	cp.Nodes[0].Rect.X = 999
	assert.Equal(t, 0.0, tree.Nodes[0].Rect.X, "mutating the copy must not affect the source")

	require.Len(t, cp.Edges, 1)
	assert.Same(t, cp.Nodes[0], cp.Edges[0].Source)
	assert.Same(t, cp.Nodes[0].Children[0], cp.Edges[0].Target)
}

func TestCopyTree_DiscardsWholeCopyOnUnresolvedEdge(t *testing.T) {
	tree := buildSampleTree(t)
	tree.Edges[0].TargetID = "ghost"

	cp, err := CopyTree(tree)
	assert.ErrorIs(t, err, ErrEdgeResolutionFailed)
	assert.Nil(t, cp)
}

func TestCopyDocument_PropagatesTreeFailure(t *testing.T) {
	doc := NewDocument(FrameAbsolute, FrameAbsolute, FrameAbsolute, AttachBorder)
	tree := buildSampleTree(t)
	tree.Edges[0].SourceID = "ghost"
	require.NoError(t, doc.AddTree(tree))

	cp, err := CopyDocument(doc)
	assert.Error(t, err)
	assert.Nil(t, cp)
}
