package segment

import (
	"math"

	"github.com/brightmoor/proxsweep/point"
)

// PointEq reports whether p and q are indistinguishable within tol, per
// §4.1's point_eq: the Chebyshev ball of radius tol.
func PointEq(p, q point.Point, tol float64) bool {
	return p.Eq(q, tol)
}

// OnSegment reports whether p lies within s's tolerance tube: its
// perpendicular distance to s's infinite line is <= tol, and it lies
// within s's axis-aligned extent extended by tol on each end (the
// "squared-end" proximal tube of §4.1).
func OnSegment(p point.Point, s Segment, tol float64) bool {
	dir := s.Direction()
	length := s.Length()
	if length == 0 {
		return PointEq(p, s.Left, tol)
	}

	rel := p.Sub(s.Left)

	// Perpendicular distance to the infinite line through s.
	perp := math.Abs(rel.CrossProduct(dir)) / length
	if perp > tol {
		return false
	}

	// Axis-aligned extent of s, extended by tol on each end.
	minX, maxX := math.Min(s.Left.X, s.Right.X), math.Max(s.Left.X, s.Right.X)
	minY, maxY := math.Min(s.Left.Y, s.Right.Y), math.Max(s.Left.Y, s.Right.Y)
	return p.X >= minX-tol && p.X <= maxX+tol && p.Y >= minY-tol && p.Y <= maxY+tol
}

// lerp returns the point at parameter t along the line through s.Left with
// direction s.Direction().
func lerp(s Segment, t float64) point.Point {
	dir := s.Direction()
	return point.New(s.Left.X+t*dir.X, s.Left.Y+t*dir.Y)
}

// OrderAt returns -1, 0, or +1 indicating whether segment a is strictly
// above, indistinguishable from, or below segment b at sweep position x,
// per §4.1's order_at, under the module's standard Cartesian convention
// (y increases upward, so "above" means the strictly greater y). Indis-
// tinguishable (|Δy| <= tol) is resolved by comparing slope: the segment
// with the greater slope sorts above, since for x just past the tie it
// will have the greater y, consistently ordering segments about to swap
// through a crossing.
func OrderAt(a, b Segment, x, tol float64) int {
	ya, yb := YAt(a, x), YAt(b, x)
	if math.Abs(ya-yb) > tol {
		if ya > yb {
			return -1
		}
		return 1
	}
	sa, sb := Slope(a), Slope(b)
	switch {
	case sa > sb:
		return -1
	case sa < sb:
		return 1
	default:
		return 0
	}
}

// YAt returns the y-coordinate of s at sweep position x, clamping to the
// nearer endpoint outside s's own x-extent (matters for segments that have
// already left the sweep but are still being compared transiently). For a
// vertical segment, which spans a y-range at a single x, it returns the
// bottom endpoint's y; the status tree ranks verticals against the current
// event's y instead (see statustree).
func YAt(s Segment, x float64) float64 {
	if s.IsVertical() {
		return s.Left.Y
	}
	if x <= s.Left.X {
		return s.Left.Y
	}
	if x >= s.Right.X {
		return s.Right.Y
	}
	dir := s.Direction()
	return s.Left.Y + (x-s.Left.X)*dir.Y/dir.X
}

// Slope returns s's slope, or +Inf for a vertical segment, so that vertical
// segments always sort above every finite slope in OrderAt's tie-break.
func Slope(s Segment) float64 {
	if s.IsVertical() {
		return math.Inf(1)
	}
	dir := s.Direction()
	return dir.Y / dir.X
}
