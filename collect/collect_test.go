package collect

import (
	"testing"

	"github.com/kruzhok-team/libhtreegeom/geom"
	"github.com/kruzhok-team/libhtreegeom/htree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect_NodesAndLabels(t *testing.T) {
	doc := htree.NewDocument(htree.FrameAbsolute, htree.FrameAbsolute, htree.FrameAbsolute, htree.AttachBorder)
	tree := htree.NewTree()
	root := htree.NewRectNode("root", htree.NodeSimple)
	require.NoError(t, root.SetRect(geom.Rect{X: 0, Y: 0, W: 100, H: 50}))
	pt := htree.NewPointNode("pt")
	require.NoError(t, pt.SetPoint(geom.Point{X: 5, Y: 5}))
	require.NoError(t, htree.AddChild(root, pt))
	require.NoError(t, tree.AddRoot(root))

	e, err := tree.AddEdge("e", "root", "pt")
	require.NoError(t, err)
	label := geom.Point{X: 50, Y: 25}
	e.LabelPoint = &label

	require.NoError(t, doc.AddTree(tree))

	b := Collect(doc)
	assert.ElementsMatch(t, []geom.Point{{X: 5, Y: 5}, label}, b.Points)
	assert.ElementsMatch(t, []geom.Rect{{X: 0, Y: 0, W: 100, H: 50}}, b.Rects)
	assert.Empty(t, b.Polylines)
}

func TestCollect_PolylineSynthesizesEndpoints(t *testing.T) {
	doc := htree.NewDocument(htree.FrameAbsolute, htree.FrameAbsolute, htree.FrameAbsolute, htree.AttachCenter)
	tree := htree.NewTree()
	src := htree.NewRectNode("src", htree.NodeSimple)
	require.NoError(t, src.SetRect(geom.Rect{X: 0, Y: 0, W: 10, H: 10}))
	dst := htree.NewRectNode("dst", htree.NodeSimple)
	require.NoError(t, dst.SetRect(geom.Rect{X: 100, Y: 0, W: 10, H: 10}))
	require.NoError(t, tree.AddRoot(src))
	require.NoError(t, tree.AddRoot(dst))

	e, err := tree.AddEdge("e", "src", "dst")
	require.NoError(t, err)
	e.Polyline = geom.Polyline{{X: 50, Y: 50}}
	require.NoError(t, doc.AddTree(tree))

	b := Collect(doc)
	require.Len(t, b.Polylines, 1)
	assert.Equal(t, geom.Polyline{{X: 5, Y: 5}, {X: 50, Y: 50}, {X: 105, Y: 5}}, b.Polylines[0])
}

func TestCollect_SkipsPolylineWithoutResolvedEndpoints(t *testing.T) {
	doc := htree.NewDocument(htree.FrameAbsolute, htree.FrameAbsolute, htree.FrameAbsolute, htree.AttachCenter)
	tree := htree.NewTree()
	src := htree.NewRectNode("src", htree.NodeSimple)
	require.NoError(t, src.SetRect(geom.Rect{X: 0, Y: 0, W: 10, H: 10}))
	require.NoError(t, tree.AddRoot(src))
	require.NoError(t, doc.AddTree(tree))

	e := &htree.Edge{ID: "dangling", SourceID: "src", TargetID: "missing", Source: src, Polyline: geom.Polyline{}}
	tree.Edges = append(tree.Edges, e)

	b := Collect(doc)
	assert.Empty(t, b.Polylines)
}
