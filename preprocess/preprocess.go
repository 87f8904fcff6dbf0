// Package preprocess implements §4.4's four-step pipeline that turns a raw
// segment slice into a segment slice obeying the module's geometric
// invariants, plus an event tree seeded with every endpoint.
//
// segs is mutated in place throughout: Run assumes the caller constructed
// each segment with segment.New(i, ...) where i is the segment's index in
// segs, and relies on that ID-equals-index invariant to rewrite endpoints
// by index.
package preprocess

import (
	"fmt"
	"math"

	"github.com/brightmoor/proxsweep/event"
	"github.com/brightmoor/proxsweep/eventtree"
	"github.com/brightmoor/proxsweep/point"
	"github.com/brightmoor/proxsweep/segment"
	"github.com/brightmoor/proxsweep/sweeperr"
)

// Run executes the preprocessing pipeline over segs and returns the seeded
// event tree. segs is mutated in place: near-vertical segments are nudged
// to exactly vertical, and endpoints are rewritten wherever glomming or
// vertical-projection snapping requires it.
func Run(segs []segment.Segment, tol float64) (*eventtree.Tree, error) {
	if err := validate(segs, tol); err != nil {
		return nil, err
	}

	nudgeNearVertical(segs, tol)

	if err := detectVerticalCollisions(segs, tol); err != nil {
		return nil, err
	}

	tree := eventtree.New(tol)
	insertEndpoints(tree, segs, true, tol)
	insertEndpoints(tree, segs, false, tol)
	snapVerticalProjection(segs, tree, tol)

	return tree, nil
}

// validate checks the §7 InvalidInput conditions: non-finite coordinates
// and zero-length (within tolerance) segments.
func validate(segs []segment.Segment, tol float64) error {
	for _, s := range segs {
		for _, p := range [...]point.Point{s.Left, s.Right} {
			if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
				return fmt.Errorf("%w: segment %d has a non-finite coordinate %s", sweeperr.ErrInvalidInput, s.ID, p)
			}
		}
		if segment.PointEq(s.Left, s.Right, tol) {
			return fmt.Errorf("%w: segment %d has zero length within tolerance", sweeperr.ErrInvalidInput, s.ID)
		}
	}
	return nil
}

// nudgeNearVertical implements §4.4 step 1: any segment whose angle to
// vertical is <= arctan(tol/length) is rewritten to be exactly vertical,
// with both endpoints' x set to their mean.
func nudgeNearVertical(segs []segment.Segment, tol float64) {
	for i, s := range segs {
		if s.IsVertical() {
			continue
		}
		dir := s.Direction()
		length := s.Length()
		angleToVertical := math.Atan2(math.Abs(dir.X), math.Abs(dir.Y))
		threshold := math.Atan(tol / length)
		if angleToVertical > threshold {
			continue
		}
		meanX := (s.Left.X + s.Right.X) / 2
		left := point.New(meanX, s.Left.Y)
		right := point.New(meanX, s.Right.Y)
		if right.Y < left.Y {
			left, right = right, left
		}
		segs[i].Left, segs[i].Right = left, right
	}
}

// detectVerticalCollisions implements §7's VerticalCollision check: two
// distinct vertical segments within tolerance in x whose y-extents overlap
// by more than tolerance would glom to the same event key with ambiguous
// ordering.
func detectVerticalCollisions(segs []segment.Segment, tol float64) error {
	for i := 0; i < len(segs); i++ {
		if !segs[i].IsVertical() {
			continue
		}
		for j := i + 1; j < len(segs); j++ {
			if !segs[j].IsVertical() {
				continue
			}
			if math.Abs(segs[i].Left.X-segs[j].Left.X) > tol {
				continue
			}
			overlap := math.Min(segs[i].Right.Y, segs[j].Right.Y) - math.Max(segs[i].Left.Y, segs[j].Left.Y)
			if overlap > tol {
				return fmt.Errorf("%w: vertical segments %d and %d overlap within tolerance", sweeperr.ErrVerticalCollision, segs[i].ID, segs[j].ID)
			}
		}
	}
	return nil
}

// insertEndpoints implements §4.4 steps 2 and 3: every endpoint of every
// segment matching wantVertical is inserted into tree, glomming onto any
// existing key within tolerance and rewriting the segment's endpoint to
// the resulting key.
func insertEndpoints(tree *eventtree.Tree, segs []segment.Segment, wantVertical bool, tol float64) {
	for i := range segs {
		if segs[i].IsVertical() != wantVertical {
			continue
		}
		// Read endpoints through the slice: an earlier segment's insert
		// can glom this segment's endpoints before its own turn comes.
		segs[i].Left = tree.Insert(segs[i].Left, event.Incidence{SegmentIndex: segs[i].ID, Role: event.Left}, segs)
		segs[i].Right = tree.Insert(segs[i].Right, event.Incidence{SegmentIndex: segs[i].ID, Role: event.Right}, segs)
	}
}

// snapVerticalProjection implements §4.4 step 4: walk every non-vertical
// endpoint and, if it lies within tolerance of a vertical segment's x-line
// within that vertical's y-extent, rewrite its x to the vertical's x and
// reglom it into the event tree.
func snapVerticalProjection(segs []segment.Segment, tree *eventtree.Tree, tol float64) {
	verticals := make([]segment.Segment, 0)
	for _, s := range segs {
		if s.IsVertical() {
			verticals = append(verticals, s)
		}
	}
	if len(verticals) == 0 {
		return
	}

	for i := range segs {
		if segs[i].IsVertical() {
			continue
		}
		segs[i].Left = snapEndpoint(segs, i, segs[i].Left, event.Left, verticals, tree, tol)
		segs[i].Right = snapEndpoint(segs, i, segs[i].Right, event.Right, verticals, tree, tol)
	}
}

func snapEndpoint(segs []segment.Segment, i int, endpoint point.Point, role event.Role, verticals []segment.Segment, tree *eventtree.Tree, tol float64) point.Point {
	for _, v := range verticals {
		if v.ID == segs[i].ID {
			continue
		}
		if math.Abs(endpoint.X-v.Left.X) > tol {
			continue
		}
		if endpoint.Y < v.Left.Y-tol || endpoint.Y > v.Right.Y+tol {
			continue
		}
		projected := point.New(v.Left.X, endpoint.Y)
		if projected == endpoint {
			return endpoint
		}
		tree.RemoveIncidence(endpoint, segs[i].ID, role)
		return tree.Insert(projected, event.Incidence{SegmentIndex: segs[i].ID, Role: role}, segs)
	}
	return endpoint
}
