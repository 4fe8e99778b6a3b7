package bounding

import (
	"testing"

	"github.com/kruzhok-team/libhtreegeom/collect"
	"github.com/kruzhok-team/libhtreegeom/geom"
	"github.com/stretchr/testify/assert"
)

func TestBound_Empty(t *testing.T) {
	assert.Equal(t, geom.Rect{}, Bound(collect.Buffers{}))
}

func TestBound_RectsOnly(t *testing.T) {
	b := collect.Buffers{Rects: []geom.Rect{
		{X: 10, Y: 10, W: 100, H: 50},
		{X: 200, Y: 0, W: 10, H: 10},
	}}
	got := Bound(b)
	assert.Equal(t, geom.Rect{X: 10, Y: 0, W: 200, H: 60}, got)
}

func TestBound_FullTreeScenario(t *testing.T) {
	// Matches the reference "full tree" scenario: parent (10,10,500,300)
	// plus descendants and edge geometry all fall within it.
	b := collect.Buffers{
		Rects: []geom.Rect{
			{X: 10, Y: 10, W: 500, H: 300},
			{X: 60, Y: 160, W: 150, H: 100},
			{X: 310, Y: 60, W: 200, H: 150},
			{X: 330, Y: 80, W: 110, H: 70},
			{X: 330, Y: 170, W: 110, H: 70},
		},
		Points: []geom.Point{{X: 110, Y: 60}},
		Polylines: []geom.Polyline{
			{{X: 110, Y: 60}, {X: 110, Y: 160}},
			{{X: 210, Y: 210}, {X: 330, Y: 115}},
		},
	}
	got := Bound(b)
	assert.Equal(t, geom.Rect{X: 10, Y: 10, W: 500, H: 300}, got)
}

func TestBound_SinglePointFoldsInRectCorner(t *testing.T) {
	b := collect.Buffers{
		Points: []geom.Point{{X: -5, Y: -5}},
		Rects:  []geom.Rect{{X: 0, Y: 0, W: 10, H: 10}},
	}
	got := Bound(b)
	assert.Equal(t, geom.Rect{X: -5, Y: -5, W: 15, H: 15}, got)
}
