package segment

import (
	"math"

	"github.com/brightmoor/proxsweep/point"
)

// IntersectKind classifies the result of Intersect.
type IntersectKind int

const (
	// IntersectNone indicates the segments are disjoint.
	IntersectNone IntersectKind = iota
	// IntersectPoint indicates a single crossing or tangency.
	IntersectPoint
	// IntersectOverlap indicates a collinear overlap segment.
	IntersectOverlap
)

// IntersectResult is the outcome of Intersect. For IntersectPoint, Point is
// populated. For IntersectOverlap, Start and End (the overlap's endpoints,
// ordered by point.Less) are populated.
type IntersectResult struct {
	Kind       IntersectKind
	Point      point.Point
	Start, End point.Point
}

// Intersect implements §4.1's segment_intersect: pure crossings are
// computed by standard line-line intersection; near-parallel segments
// whose tolerance tubes overlap along a non-trivial range are reported as
// a collinear overlap; a computed crossing point within tol of any of the
// four endpoints is replaced by that endpoint's exact coordinate. An
// endpoint is not projected onto the other segment's line.
func Intersect(a, b Segment, tol float64) IntersectResult {
	dir1, dir2 := a.Direction(), b.Direction()
	len1, len2 := a.Length(), b.Length()
	denom := dir1.CrossProduct(dir2)

	// Treat as parallel when the cross product is small relative to the
	// segments' lengths: |dir1 x dir2| == |dir1||dir2|sin(theta), so this
	// approximates a small angle between the two lines.
	parallelThreshold := tol * (len1 + len2)
	if math.Abs(denom) <= parallelThreshold {
		return intersectParallel(a, b, dir1, len1, tol)
	}

	ac := b.Left.Sub(a.Left)
	t := ac.CrossProduct(dir2) / denom
	u := ac.CrossProduct(dir1) / denom

	tolT, tolU := tolParam(tol, len1), tolParam(tol, len2)
	if t < -tolT || t > 1+tolT || u < -tolU || u > 1+tolU {
		return IntersectResult{Kind: IntersectNone}
	}
	t = clamp(t, 0, 1)

	p := lerp(a, t)
	p = snapToNearestEndpoint(p, a, b, tol)
	return IntersectResult{Kind: IntersectPoint, Point: p}
}

func intersectParallel(a, b Segment, dir1 point.Point, len1, tol float64) IntersectResult {
	if len1 == 0 {
		return IntersectResult{Kind: IntersectNone}
	}
	rel := b.Left.Sub(a.Left)
	perp := math.Abs(rel.CrossProduct(dir1)) / len1
	if perp > tol {
		return IntersectResult{Kind: IntersectNone}
	}

	denomSq := dir1.DotProduct(dir1)
	tStart := b.Left.Sub(a.Left).DotProduct(dir1) / denomSq
	tEnd := b.Right.Sub(a.Left).DotProduct(dir1) / denomSq
	if tStart > tEnd {
		tStart, tEnd = tEnd, tStart
	}

	tolT := tolParam(tol, len1)
	overlapStart := math.Max(-tolT, tStart)
	overlapEnd := math.Min(1+tolT, tEnd)
	if overlapStart > overlapEnd {
		return IntersectResult{Kind: IntersectNone}
	}

	// A merely-touching tube (overlap narrower than tolerance) is a
	// tangency, not a true collinear overlap.
	if (overlapEnd-overlapStart)*len1 <= tol {
		mid := clamp((overlapStart+overlapEnd)/2, 0, 1)
		p := snapToNearestEndpoint(lerp(a, mid), a, b, tol)
		return IntersectResult{Kind: IntersectPoint, Point: p}
	}

	start := lerp(a, clamp(overlapStart, 0, 1))
	end := lerp(a, clamp(overlapEnd, 0, 1))
	if end.Less(start) {
		start, end = end, start
	}
	return IntersectResult{Kind: IntersectOverlap, Start: start, End: end}
}

// snapToNearestEndpoint replaces p with whichever of a's and b's four
// endpoints is within tol of it, if any, preferring an exact endpoint
// coordinate over a computed line-crossing coordinate. The endpoint itself
// keeps its coordinate; it is not moved onto the other segment's line.
// Final event-key coalescing still happens in the event tree.
func snapToNearestEndpoint(p point.Point, a, b Segment, tol float64) point.Point {
	for _, candidate := range [...]point.Point{a.Left, a.Right, b.Left, b.Right} {
		if p.Eq(candidate, tol) {
			return candidate
		}
	}
	return p
}

func tolParam(tol, length float64) float64 {
	if length == 0 {
		return 0
	}
	return tol / length
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
