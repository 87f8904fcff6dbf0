package event

import "github.com/brightmoor/proxsweep/point"

// Incidence records that a segment touches an event point with a given
// role. SegmentIndex refers into the caller's original segment slice.
type Incidence struct {
	SegmentIndex int
	Role         Role
}

// Entry is a single event: a coordinate together with every segment
// incident on it. Per the event set's invariant, a given SegmentIndex
// appears at most once with Role Left and at most once with Role Right
// across an entire run, but may appear any number of times with Role
// Interior (across distinct entries).
type Entry struct {
	Point      point.Point
	Incidences []Incidence
}

// Has reports whether idx appears in e's incidence list with role.
func (e Entry) Has(idx int, role Role) bool {
	for _, inc := range e.Incidences {
		if inc.SegmentIndex == idx && inc.Role == role {
			return true
		}
	}
	return false
}

// Union adds inc to e's incidence set. The payload is a set: an incidence
// already present is not added twice.
func (e *Entry) Union(inc Incidence) {
	if !e.Has(inc.SegmentIndex, inc.Role) {
		e.Incidences = append(e.Incidences, inc)
	}
}

// Prune drops Interior incidences for segments that also carry a Left or
// Right incidence at this entry. A segment whose own endpoint sits on the
// event point is fully described by that endpoint incidence; an Interior
// entry alongside it would double-count the segment. Glomming cascades are
// the only way such a pair arises.
func (e *Entry) Prune() {
	kept := e.Incidences[:0]
	for _, inc := range e.Incidences {
		if inc.Role == Interior && (e.Has(inc.SegmentIndex, Left) || e.Has(inc.SegmentIndex, Right)) {
			continue
		}
		kept = append(kept, inc)
	}
	e.Incidences = kept
}

// Partition splits e's incidences by role into left/right/interior segment
// index sets, matching the sweep driver's L/R/I partition at each event.
func (e Entry) Partition() (left, right, interior []int) {
	for _, inc := range e.Incidences {
		switch inc.Role {
		case Left:
			left = append(left, inc.SegmentIndex)
		case Right:
			right = append(right, inc.SegmentIndex)
		case Interior:
			interior = append(interior, inc.SegmentIndex)
		}
	}
	return left, right, interior
}
