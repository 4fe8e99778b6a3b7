// Package bounding computes the smallest rect enclosing a flattened
// geometry buffer (package collect), tolerating an empty or degenerate
// buffer instead of erroring.
package bounding

import (
	"github.com/golang/geo/r2"
	"github.com/kruzhok-team/libhtreegeom/collect"
	"github.com/kruzhok-team/libhtreegeom/geom"
)

// Bound computes the smallest rect enclosing every point, rect, and
// polyline vertex in b:
//
//  1. If there is exactly one point and at least one rect, the first
//     rect's top-left corner is folded in as a second point, so a lone
//     point still participates meaningfully in the union.
//  2. If there are any points, their bounding box joins the working set.
//  3. If there are any polylines, the bounding box of all their vertices
//     combined joins the working set.
//  4. If the working set ends up empty, the result is the zero Rect.
//  5. Otherwise the result is the union of the working set.
func Bound(b collect.Buffers) geom.Rect {
	points := b.Points
	if len(points) == 1 && len(b.Rects) > 0 {
		points = append(append([]geom.Point{}, points...), b.Rects[0].TopLeft())
	}

	working := append([]geom.Rect{}, b.Rects...)

	if len(points) > 0 {
		working = append(working, pointsBox(points))
	}

	if len(b.Polylines) > 0 {
		if box, ok := polylinesBox(b.Polylines); ok {
			working = append(working, box)
		}
	}

	if len(working) == 0 {
		return geom.Rect{}
	}
	return unionRects(working)
}

func pointsBox(points []geom.Point) geom.Rect {
	acc := r2.EmptyRect()
	for _, p := range points {
		acc = acc.AddPoint(r2.Point{X: p.X, Y: p.Y})
	}
	return fromR2(acc)
}

func polylinesBox(polylines []geom.Polyline) (geom.Rect, bool) {
	acc := r2.EmptyRect()
	any := false
	for _, pl := range polylines {
		for _, p := range pl {
			acc = acc.AddPoint(r2.Point{X: p.X, Y: p.Y})
			any = true
		}
	}
	if !any {
		return geom.Rect{}, false
	}
	return fromR2(acc), true
}

func unionRects(rects []geom.Rect) geom.Rect {
	acc := r2.EmptyRect()
	for _, r := range rects {
		acc = acc.Union(toR2(r))
	}
	return fromR2(acc)
}

func toR2(r geom.Rect) r2.Rect {
	return r2.RectFromPoints(
		r2.Point{X: r.X, Y: r.Y},
		r2.Point{X: r.X + r.W, Y: r.Y + r.H},
	)
}

func fromR2(r r2.Rect) geom.Rect {
	if r.IsEmpty() {
		return geom.Rect{}
	}
	return geom.Rect{
		X: r.X.Lo, Y: r.Y.Lo,
		W: r.X.Hi - r.X.Lo, H: r.Y.Hi - r.Y.Lo,
	}
}
