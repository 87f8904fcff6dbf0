// Package proxsweep computes all pairwise intersections among a finite set
// of planar line segments using a left-to-right vertical sweep line in the
// style of Bentley-Ottmann, generalized to handle segments not in general
// position (shared endpoints, T-junctions, collinear overlaps, multiple
// segments meeting at one point, vertical and horizontal segments) and
// *proximal* intersections — points that are not mathematically coincident
// but lie within a caller-chosen tolerance. Proximal points are glommed
// (snapped) to a single representative coordinate, and segments are
// treated as piecewise approximations passing through the glommed points.
//
// # Coordinate system
//
// proxsweep assumes a standard Cartesian coordinate system where the
// x-axis increases to the right and the y-axis increases upward.
//
// # Pipeline
//
// A run has three phases, each its own package: preprocess nudges
// near-vertical segments to vertical and seeds an event tree with every
// endpoint (coalescing endpoints that land within tolerance of each
// other); sweep drains that event tree left to right, maintaining a
// status tree of currently active segments and discovering new
// intersections as newly adjacent segments are compared; the result is
// the segment list (endpoints possibly rewritten) and the ordered event
// sequence.
//
// # Tolerance
//
// Every geometric predicate in this module is parameterized by a single
// tolerance radius, applied under the Chebyshev metric for point
// equality and a perpendicular-distance-plus-extent tube for
// point-on-segment. See package options.
package proxsweep

import (
	"github.com/brightmoor/proxsweep/event"
	"github.com/brightmoor/proxsweep/options"
	"github.com/brightmoor/proxsweep/point"
	"github.com/brightmoor/proxsweep/preprocess"
	"github.com/brightmoor/proxsweep/segment"
	"github.com/brightmoor/proxsweep/sweep"
	"github.com/brightmoor/proxsweep/sweeperr"
)

func init() {
	logDebugf("debug logging enabled")
}

// Re-exported so callers never need to import the internal packages
// directly.
type (
	Point     = point.Point
	Segment   = segment.Segment
	Role      = event.Role
	Incidence = event.Incidence
	Event     = event.Entry
	Observer  = sweep.Observer
)

const (
	Left     = event.Left
	Right    = event.Right
	Interior = event.Interior
)

var (
	// ErrInvalidInput is returned for a zero-length segment or a
	// non-finite coordinate.
	ErrInvalidInput = sweeperr.ErrInvalidInput
	// ErrVerticalCollision is returned when two distinct vertical
	// segments are within tolerance in x and overlap in y-extent.
	ErrVerticalCollision = sweeperr.ErrVerticalCollision
	// ErrStatusInvariant is returned on an internal inconsistency: the
	// status tree non-empty at termination, or a removal of an absent
	// segment.
	ErrStatusInvariant = sweeperr.ErrStatusInvariant
)

// Result is the output of a run: the input segments (endpoints possibly
// rewritten by glomming and vertical nudging, in original order), and an
// ordered sequence of events carrying a coordinate and the set of
// (segment-index, role) pairs incident on it.
type Result struct {
	Segments []Segment
	Events   []Event
}

// NewSegment builds a Segment from an unordered endpoint pair, assigning it
// stable identity id. Preprocessing and glomming may later rewrite its
// endpoints in place by index.
func NewSegment(id int, a, b Point) Segment {
	return segment.New(id, a, b)
}

// NewPoint constructs a Point from coordinates.
func NewPoint(x, y float64) Point {
	return point.New(x, y)
}

// Run preprocesses segs and drives the sweep to completion, returning the
// (possibly rewritten) segments and the ordered event sequence. segs is
// copied internally; the caller's slice is left untouched.
//
// obs, if non-nil, receives a notification after every processed event —
// an optional debug visualization hook, not part of the core contract.
func Run(segs []Segment, obs Observer, opts ...options.Option) (Result, error) {
	cfg := options.Apply(options.Options{Tolerance: options.DefaultTolerance}, opts...)

	working := make([]Segment, len(segs))
	copy(working, segs)

	tree, err := preprocess.Run(working, cfg.Tolerance)
	if err != nil {
		return Result{}, err
	}

	result, err := sweep.Run(working, tree, cfg.Tolerance, obs)
	if err != nil {
		return Result{}, err
	}

	return Result{Segments: result.Segments, Events: result.Events}, nil
}

// RunNaive computes the same event set as Run using a brute-force O(n^2)
// pairwise comparison instead of the sweep-line engine. It exists as a
// testing and validation oracle: Run and RunNaive must agree on every
// input, and RunNaive's simplicity makes it easy to trust independently.
func RunNaive(segs []Segment, opts ...options.Option) (Result, error) {
	cfg := options.Apply(options.Options{Tolerance: options.DefaultTolerance}, opts...)

	working := make([]Segment, len(segs))
	copy(working, segs)

	tree, err := preprocess.Run(working, cfg.Tolerance)
	if err != nil {
		return Result{}, err
	}

	insertNaiveInterior := func(p point.Point, i, j int) {
		// A T-junction lands exactly on one segment's own endpoint: that
		// segment already carries a Left/Right incidence there from
		// preprocessing, so only the other segment needs an Interior
		// incidence (mirrors sweep.testPair's dedup against endpoints).
		if !naiveIsOwnEndpoint(working[i], p, cfg.Tolerance) {
			tree.Insert(p, event.Incidence{SegmentIndex: working[i].ID, Role: event.Interior}, working)
		}
		if !naiveIsOwnEndpoint(working[j], p, cfg.Tolerance) {
			tree.Insert(p, event.Incidence{SegmentIndex: working[j].ID, Role: event.Interior}, working)
		}
	}

	for i := 0; i < len(working); i++ {
		for j := i + 1; j < len(working); j++ {
			result := segment.Intersect(working[i], working[j], cfg.Tolerance)
			switch result.Kind {
			case segment.IntersectPoint:
				insertNaiveInterior(result.Point, i, j)
			case segment.IntersectOverlap:
				insertNaiveInterior(result.Start, i, j)
				insertNaiveInterior(result.End, i, j)
			}
		}
	}

	var events []Event
	for !tree.IsEmpty() {
		entry, ok := tree.PopMin()
		if !ok {
			break
		}
		events = append(events, *entry)
	}

	return Result{Segments: working, Events: events}, nil
}

// naiveIsOwnEndpoint reports whether p coincides with s's own Left or
// Right endpoint, within tolerance.
func naiveIsOwnEndpoint(s Segment, p Point, tol float64) bool {
	return segment.PointEq(p, s.Left, tol) || segment.PointEq(p, s.Right, tol)
}
