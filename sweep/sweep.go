// Package sweep implements the §4.5 driver: the state machine that
// consumes events left to right, maintains the status tree, and discovers
// new intersections between segments newly made adjacent by an event.
//
// Grounded on GregoryKogan-benott's benott.go loop shape (left-to-right
// pop-min, status update, neighbor intersection test, bundle reinsertion
// at x+ε to reflect post-crossing order) blended with mikenye-geom2d's
// U(p)/L(p)/C(p) event-payload partition, renamed here to the left/right/
// interior vocabulary.
package sweep

import (
	"fmt"

	"github.com/brightmoor/proxsweep/event"
	"github.com/brightmoor/proxsweep/eventtree"
	"github.com/brightmoor/proxsweep/point"
	"github.com/brightmoor/proxsweep/segment"
	"github.com/brightmoor/proxsweep/statustree"
	"github.com/brightmoor/proxsweep/sweeperr"
)

// Observer receives a notification after every processed event, for
// optional debug visualization. It is not part of the core contract.
type Observer interface {
	OnStep(x float64, active []segment.Segment, current event.Entry)
}

// Result is the outcome of a run: every event produced, in increasing
// lexicographic order, plus the (possibly endpoint-rewritten) segments.
type Result struct {
	Segments []segment.Segment
	Events   []event.Entry
}

// bundleInsertEpsilon offsets the sweep position used only to compute the
// post-crossing reinsertion order of a bundle; it is never recorded as an
// event coordinate.
const bundleInsertEpsilon = 1e-9

// Run drives the sweep to completion over segs (already preprocessed) and
// tree (already seeded with every endpoint). segs is mutated in place by
// glomming as interior events are discovered and inserted.
func Run(segs []segment.Segment, tree *eventtree.Tree, tol float64, obs Observer) (Result, error) {
	status := statustree.New(tol, segs)
	var events []event.Entry

	for !tree.IsEmpty() {
		entry, ok := tree.PopMin()
		if !ok {
			break
		}

		left, right, interior := entry.Partition()
		left, right = dropCollapsed(left, right)
		removed := append(append([]int{}, right...), interior...)
		inserted := append(append([]int{}, left...), interior...)

		// Removals run before the sweep position advances: the stored
		// order was last reconciled at the previous position, and the
		// tree navigates by recomputed ranks, so removing at the event's
		// own x would compare a crossing bundle in post-crossing order
		// while it is still stored pre-crossing.
		var formerAbove, formerBelow int
		var hasFormerAbove, hasFormerBelow bool
		if len(removed) > 0 {
			formerAbove, formerBelow, hasFormerAbove, hasFormerBelow = status.BundleNeighbors(removed)
			for _, id := range removed {
				if !status.Remove(id) {
					return Result{}, fmt.Errorf("%w: removal of segment %d not in the status tree", sweeperr.ErrStatusInvariant, id)
				}
			}
		}

		if len(inserted) == 0 {
			if hasFormerAbove && hasFormerBelow {
				if err := testPair(segs, formerAbove, formerBelow, entry, tree, tol); err != nil {
					return Result{}, err
				}
			}
		} else {
			// Reinsert the bundle infinitesimally to the right of the
			// event so ranks come out in post-crossing stacking order. A
			// vertical segment ranks at the event's own y, which walks it
			// up through its crossings as same-x events pop in
			// increasing y.
			status.SetPosition(entry.Point.X+bundleInsertEpsilon, entry.Point.Y)
			for _, id := range inserted {
				status.Insert(id)
			}

			top, bottom := status.Extremes(inserted)
			above, below, hasAbove, hasBelow := status.BundleNeighbors(inserted)
			if hasAbove {
				if err := testPair(segs, above, top, entry, tree, tol); err != nil {
					return Result{}, err
				}
			}
			if hasBelow {
				if err := testPair(segs, bottom, below, entry, tree, tol); err != nil {
					return Result{}, err
				}
			}
		}

		// Appended only now: a collinear overlap discovered at this event
		// starts right here, and its incidences land in the current entry
		// rather than in a future one.
		events = append(events, *entry)

		if obs != nil {
			obs.OnStep(entry.Point.X, activeSegments(segs, status), *entry)
		}
	}

	if !status.IsEmpty() {
		return Result{}, fmt.Errorf("%w: status tree non-empty at termination (%d segments remain)", sweeperr.ErrStatusInvariant, status.Len())
	}

	return Result{Segments: segs, Events: events}, nil
}

// dropCollapsed filters out segments that appear in both the left and the
// right set of one event: a glomming cascade has rewritten both endpoints
// to the same key, so the segment starts and ends here and never enters
// the status tree.
func dropCollapsed(left, right []int) (l, r []int) {
	inLeft := make(map[int]bool, len(left))
	for _, id := range left {
		inLeft[id] = true
	}
	collapsed := make(map[int]bool)
	for _, id := range right {
		if inLeft[id] {
			collapsed[id] = true
		}
	}
	if len(collapsed) == 0 {
		return left, right
	}
	for _, id := range left {
		if !collapsed[id] {
			l = append(l, id)
		}
	}
	for _, id := range right {
		if !collapsed[id] {
			r = append(r, id)
		}
	}
	return l, r
}

// testPair checks segment_intersect(a, b) and inserts any intersection
// strictly to the right of the current event (lexicographically) into
// tree, per §4.5 steps 3-4. An overlap result is translated into two
// interior events, one at each overlap endpoint.
func testPair(segs []segment.Segment, aID, bID int, current *event.Entry, tree *eventtree.Tree, tol float64) error {
	a, b := segs[aID], segs[bID]
	result := segment.Intersect(a, b, tol)

	switch result.Kind {
	case segment.IntersectNone:
		return nil
	case segment.IntersectPoint:
		insertInterior(tree, segs, result.Point, current, aID, bID, tol)
	case segment.IntersectOverlap:
		insertInterior(tree, segs, result.Start, current, aID, bID, tol)
		insertInterior(tree, segs, result.End, current, aID, bID, tol)
	}
	return nil
}

func insertInterior(tree *eventtree.Tree, segs []segment.Segment, p point.Point, current *event.Entry, aID, bID int, tol float64) {
	atCurrent := segment.PointEq(p, current.Point, tol)
	if !atCurrent && !isFuture(p, current.Point) {
		return
	}
	// A T-junction lands exactly on one segment's own endpoint: that
	// segment already carries a Left/Right incidence there from
	// preprocessing, so only the other segment needs an Interior
	// incidence. Recording both would duplicate the endpoint-holder.
	for _, id := range [...]int{aID, bID} {
		if isOwnEndpoint(segs[id], p, tol) {
			continue
		}
		inc := event.Incidence{SegmentIndex: id, Role: event.Interior}
		if atCurrent {
			// A collinear overlap starts at the event that revealed it:
			// the point is this very event, already popped, so its
			// incidence is recorded directly instead of re-queued.
			current.Union(inc)
			continue
		}
		tree.Insert(p, inc, segs)
	}
}

// isOwnEndpoint reports whether p coincides with s's own Left or Right
// endpoint, within tolerance.
func isOwnEndpoint(s segment.Segment, p point.Point, tol float64) bool {
	return segment.PointEq(p, s.Left, tol) || segment.PointEq(p, s.Right, tol)
}

// isFuture reports whether p is strictly after current in lexicographic
// (x, y) order — the future-event test of §4.5 step 3.
func isFuture(p, current point.Point) bool {
	if p.X != current.X {
		return p.X > current.X
	}
	return p.Y > current.Y
}

func activeSegments(segs []segment.Segment, status *statustree.Tree) []segment.Segment {
	ids := status.Ids()
	out := make([]segment.Segment, len(ids))
	for i, id := range ids {
		out[i] = segs[id]
	}
	return out
}
