// Package attach computes where a line segment crosses the border of an
// axis-aligned rect, the primitive the coordinate-frame transformer uses
// to snap an edge's endpoint onto its node's border.
package attach

import (
	"github.com/golang/geo/r1"
	"github.com/kruzhok-team/libhtreegeom/geom"
)

// Intersect returns the ordered list of points where the segment a->b
// crosses rect's border, restricted to the segment itself (a crossing on
// the infinite line extension but outside [a, b] is not reported). The
// result is empty - never an error, never a panic - when the segment does
// not cross the border at all: fully interior, fully exterior, or a
// zero-length segment. Other degenerate input (a zero-area rect, a segment
// running exactly along a border) never panics either, but can yield one
// or two crossings.
//
// This is a standard Liang-Barsky parametric line clip: the clip
// parameter range is accumulated as an r1.Interval, shrinking clip each
// time one of the rect's four half-planes constrains it further.
func Intersect(a, b geom.Point, rect geom.Rect) []geom.Point {
	dx := b.X - a.X
	dy := b.Y - a.Y

	clip := r1.Interval{Lo: 0, Hi: 1}
	ok := clipAxis(&clip, -dx, a.X-rect.X) &&
		clipAxis(&clip, dx, rect.X+rect.W-a.X) &&
		clipAxis(&clip, -dy, a.Y-rect.Y) &&
		clipAxis(&clip, dy, rect.Y+rect.H-a.Y)

	if !ok || clip.IsEmpty() {
		return nil
	}

	var crossings []geom.Point
	if clip.Lo > 0 {
		crossings = append(crossings, pointAt(a, dx, dy, clip.Lo))
	}
	if clip.Hi < 1 {
		crossings = append(crossings, pointAt(a, dx, dy, clip.Hi))
	}
	return crossings
}

// clipAxis applies one Liang-Barsky half-plane test (p, q) to the
// accumulated clip range, shrinking clip.Lo or clip.Hi as appropriate. It
// returns false when the test proves the segment cannot intersect the
// rect at all, independent of the other three axes.
func clipAxis(clip *r1.Interval, p, q float64) bool {
	if p == 0 {
		// Segment is parallel to this boundary; it only matters whether
		// the segment is on the inside (q >= 0) or outside (q < 0) of it.
		return q >= 0
	}
	r := q / p
	if p < 0 {
		if r > clip.Hi {
			return false
		}
		if r > clip.Lo {
			clip.Lo = r
		}
		return true
	}
	if r < clip.Lo {
		return false
	}
	if r < clip.Hi {
		clip.Hi = r
	}
	return true
}

func pointAt(a geom.Point, dx, dy, t float64) geom.Point {
	return geom.Point{X: a.X + dx*t, Y: a.Y + dy*t}
}
