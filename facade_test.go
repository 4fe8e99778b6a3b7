package htreegeom

import (
	"bytes"
	"errors"
	"testing"

	"github.com/kruzhok-team/libhtreegeom/geom"
	"github.com/kruzhok-team/libhtreegeom/htree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_Mapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, OK},
		{"nil document", htree.ErrNilDocument, BadParameter},
		{"nil node", htree.ErrNilNode, BadParameter},
		{"invalid frame", htree.ErrInvalidFrame, BadParameter},
		{"cross tree edge", htree.ErrCrossTreeEdge, BadParameter},
		{"node not found", htree.ErrNodeNotFound, NotFound},
		{"edge resolution failed", htree.ErrEdgeResolutionFailed, GeometryTransformError},
		{"geometry transform", htree.ErrGeometryTransform, GeometryTransformError},
		{"wrapped not found", errWrap(htree.ErrNodeNotFound), NotFound},
		{"unknown", errors.New("boom"), GeometryTransformError},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Code(c.err))
		})
	}
}

func errWrap(err error) error {
	return &wrappedErr{err}
}

type wrappedErr struct{ inner error }

func (w *wrappedErr) Error() string { return "wrapped: " + w.inner.Error() }
func (w *wrappedErr) Unwrap() error { return w.inner }

func TestEndToEnd_BuildReconstructConvertPrint(t *testing.T) {
	doc := NewDocument(FrameAbsolute, FrameAbsolute, FrameAbsolute, AttachBorder)
	tree := htree.NewTree()
	parent := htree.NewRectNode("root", NodeComposite)
	require.NoError(t, parent.SetRect(geom.Rect{X: 0, Y: 0, W: 400, H: 300}))
	child := htree.NewRectNode("child", NodeSimple)
	require.NoError(t, htree.AddChild(parent, child))
	require.NoError(t, tree.AddRoot(parent))
	require.NoError(t, doc.AddTree(tree))

	require.NoError(t, ReconstructDocumentGeometry(doc, false))
	require.NotNil(t, child.Rect)

	rect, err := BuildBoundingRect(doc)
	require.NoError(t, err)
	assert.False(t, rect.IsEmpty())

	require.NoError(t, ConvertDocumentGeometry(doc, FrameLeftTop, FrameLeftTop, FrameLeftTop, AttachBorder))
	assert.Equal(t, FrameLeftTop, doc.NodeFrame)

	cp, err := CopyDocument(doc)
	require.NoError(t, err)
	assert.NotSame(t, doc, cp)

	var buf bytes.Buffer
	require.NoError(t, PrintDocument(&buf, doc))
	assert.Contains(t, buf.String(), "root")
	assert.Contains(t, buf.String(), "child")

	assert.Equal(t, OK, Code(nil))
}

func TestBuildBoundingRect_NilDocument(t *testing.T) {
	_, err := BuildBoundingRect(nil)
	assert.ErrorIs(t, err, htree.ErrNilDocument)
}

func TestPrintDocument_NilDocument(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, PrintDocument(&buf, nil), htree.ErrNilDocument)
}
