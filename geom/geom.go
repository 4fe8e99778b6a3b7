// Package geom defines the value types the rest of this module moves
// around: points, axis-aligned rects, and polylines, plus the handful of
// numeric conventions (rounding, small-value hygiene, frame-aware centers)
// every other package relies on so they don't each reinvent them slightly
// differently.
package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// SnapTolerance is the magnitude below which a non-zero coordinate is
// treated as numerical noise left over from an inverse transform and
// snapped to exactly zero.
const SnapTolerance = 1e-6

// Point is a single 2D coordinate.
type Point struct {
	X, Y float64
}

// Add returns p translated by o.
func (p Point) Add(o Point) Point {
	v := toVec(p).Add(toVec(o))
	return fromVec(v)
}

// Sub returns the vector difference p-o.
func (p Point) Sub(o Point) Point {
	v := toVec(p).Sub(toVec(o))
	return fromVec(v)
}

// Translate returns p shifted by (dx, dy).
func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Round returns p with each coordinate rounded to signs decimal digits,
// round-half-away-from-zero.
func (p Point) Round(signs int) Point {
	return Point{X: Round(p.X, signs), Y: Round(p.Y, signs)}
}

// SnapSmall zeroes any coordinate whose magnitude is non-zero but below
// SnapTolerance.
func (p Point) SnapSmall() Point {
	return Point{X: snap(p.X), Y: snap(p.Y)}
}

// Equal reports whether p and o are within tol of each other on both axes.
func (p Point) Equal(o Point, tol float64) bool {
	return math.Abs(p.X-o.X) <= tol && math.Abs(p.Y-o.Y) <= tol
}

func toVec(p Point) r2.Point  { return r2.Point{X: p.X, Y: p.Y} }
func fromVec(v r2.Point) Point { return Point{X: v.X, Y: v.Y} }

// Rect is an axis-aligned rectangle anchored at (X, Y) with size (W, H).
// Depending on the surrounding CoordFrame, (X, Y) is either the rect's
// top-left corner or its own center; Rect itself carries no frame tag, the
// interpretation is always supplied by the caller.
type Rect struct {
	X, Y, W, H float64
}

// IsEmpty reports whether r is the zero Rect, the engine's convention for
// "no geometry recorded".
func (r Rect) IsEmpty() bool {
	return r == Rect{}
}

// TopLeft returns the rect's top-left corner, treating (X, Y) as a
// top-left anchor regardless of frame. Used internally by frame-aware code
// that has already decided which convention applies.
func (r Rect) TopLeft() Point { return Point{X: r.X, Y: r.Y} }

// CenterAbsolute returns the rect's center, treating (X, Y) as a top-left
// anchor (Absolute or LeftTop convention).
func (r Rect) CenterAbsolute() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// CenterLocal returns the rect's center under the LocalCenter convention,
// where (X, Y) already IS the center.
func (r Rect) CenterLocal() Point {
	return Point{X: r.X, Y: r.Y}
}

// Translate returns r shifted by (dx, dy); size is unchanged.
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// ContainsPoint reports whether p lies within r, treating (X, Y) as a
// top-left anchor.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Round returns r with each field rounded to signs decimal digits,
// round-half-away-from-zero.
func (r Rect) Round(signs int) Rect {
	return Rect{
		X: Round(r.X, signs), Y: Round(r.Y, signs),
		W: Round(r.W, signs), H: Round(r.H, signs),
	}
}

// SnapSmall zeroes any field whose magnitude is non-zero but below
// SnapTolerance. Width/height are left alone: the hygiene rule only
// applies to the conversion-sensitive position fields, per the original
// implementation this module follows.
func (r Rect) SnapSmall() Rect {
	return Rect{X: snap(r.X), Y: snap(r.Y), W: r.W, H: r.H}
}

// Equal reports whether r and o are within tol on every field.
func (r Rect) Equal(o Rect, tol float64) bool {
	return math.Abs(r.X-o.X) <= tol && math.Abs(r.Y-o.Y) <= tol &&
		math.Abs(r.W-o.W) <= tol && math.Abs(r.H-o.H) <= tol
}

// Polyline is an ordered sequence of interior vertices for an edge's
// routing. A nil Polyline means "no polyline recorded"; a non-nil,
// possibly zero-length, Polyline means "recorded, no interior vertices"
// (a straight line between the edge's endpoints). Callers that need to
// record an explicit empty polyline must use make(Polyline, 0), not nil.
type Polyline []Point

// Round returns a new Polyline with every vertex rounded to signs decimal
// digits. A nil receiver stays nil.
func (pl Polyline) Round(signs int) Polyline {
	if pl == nil {
		return nil
	}
	out := make(Polyline, len(pl))
	for i, p := range pl {
		out[i] = p.Round(signs)
	}
	return out
}

// Round rounds v to signs decimal digits using round-half-away-from-zero:
// round(v, k) = sign(v) * floor(|v|*10^k + 0.5) / 10^k.
func Round(v float64, signs int) float64 {
	if v == 0 {
		return 0
	}
	factor := math.Pow(10, float64(signs))
	sign := 1.0
	if v < 0 {
		sign = -1.0
	}
	return sign * math.Floor(math.Abs(v)*factor+0.5) / factor
}

func snap(v float64) float64 {
	if v != 0 && math.Abs(v) < SnapTolerance {
		return 0
	}
	return v
}
