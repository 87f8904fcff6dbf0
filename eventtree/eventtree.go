// Package eventtree implements the ordered event set of §4.2: a balanced
// container keyed by planar point under lexicographic (x, then y) order,
// supporting tolerance-aware coalescing insertion and pop-minimum
// extraction. It is built on github.com/emirpasic/gods/trees/redblacktree,
// the same dependency the donor repository uses for its own event queue.
package eventtree

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/brightmoor/proxsweep/event"
	"github.com/brightmoor/proxsweep/point"
	"github.com/brightmoor/proxsweep/segment"
)

// Tree is the ordered event set. It is not safe for concurrent use — the
// sweep driver is the sole owner of a Tree for the duration of a run.
type Tree struct {
	tree *rbt.Tree
	tol  float64
}

func pointComparator(a, b interface{}) int {
	p, q := a.(point.Point), b.(point.Point)
	switch {
	case p.X < q.X:
		return -1
	case p.X > q.X:
		return 1
	case p.Y < q.Y:
		return -1
	case p.Y > q.Y:
		return 1
	default:
		return 0
	}
}

// New creates an empty event tree with the given tolerance radius.
func New(tol float64) *Tree {
	return &Tree{tree: rbt.NewWith(pointComparator), tol: tol}
}

// IsEmpty reports whether the tree holds no events.
func (t *Tree) IsEmpty() bool {
	return t.tree.Empty()
}

// Len returns the number of distinct event keys currently held.
func (t *Tree) Len() int {
	return t.tree.Size()
}

// PopMin removes and returns the lexicographically smallest event.
func (t *Tree) PopMin() (*event.Entry, bool) {
	node := t.tree.Left()
	if node == nil {
		return nil, false
	}
	entry := node.Value.(*event.Entry)
	t.tree.Remove(node.Key)
	return entry, true
}

// FindNear returns every existing key whose x-coordinate is within
// tolerance of p.X — the x-band range search of §4.2 — together with p's
// immediate lexicographic floor and ceiling keys, which may lie outside
// that band. It does not filter by y; Insert performs the exact
// tolerance filter itself.
func (t *Tree) FindNear(p point.Point) []point.Point {
	var candidates []point.Point

	probe := point.New(p.X, p.Y)
	floor, floorFound := t.tree.Floor(probe)
	if floorFound {
		candidates = append(candidates, floor.Key.(point.Point))
		iter := t.tree.IteratorAt(floor)
		for iter.Prev() {
			k := iter.Key().(point.Point)
			if p.X-k.X > t.tol {
				break
			}
			candidates = append(candidates, k)
		}
	}

	ceiling, ceilingFound := t.tree.Ceiling(probe)
	if ceilingFound && (!floorFound || ceiling.Key.(point.Point) != floor.Key.(point.Point)) {
		candidates = append(candidates, ceiling.Key.(point.Point))
		iter := t.tree.IteratorAt(ceiling)
		for iter.Next() {
			k := iter.Key().(point.Point)
			if k.X-p.X > t.tol {
				break
			}
			candidates = append(candidates, k)
		}
	}

	return candidates
}

// Insert implements §4.2's coalescing insert. If an existing key lies
// within tolerance of p, inc is unioned into that key's payload and the
// existing key is returned unchanged; any other existing keys within
// tolerance of p are merged into the same winning key (a glomming cascade,
// accepted per §9's open-question resolution). Otherwise a new node is
// created at p.
//
// segs supplies the segment geometry needed to classify candidates by the
// snap-target priority of §4.2 (vertical-top > vertical-bottom > other
// endpoint > interior).
func (t *Tree) Insert(p point.Point, inc event.Incidence, segs []segment.Segment) point.Point {
	var candidates []point.Point
	for _, k := range t.FindNear(p) {
		if p.Eq(k, t.tol) {
			candidates = append(candidates, k)
		}
	}

	if len(candidates) == 0 {
		t.tree.Put(p, &event.Entry{Point: p, Incidences: []event.Incidence{inc}})
		return p
	}

	winner := pickWinner(candidates, t, segs)
	winnerIface, _ := t.tree.Get(winner)
	winnerEntry := winnerIface.(*event.Entry)

	for _, c := range candidates {
		if c == winner {
			continue
		}
		cIface, _ := t.tree.Get(c)
		cEntry := cIface.(*event.Entry)
		for _, merged := range cEntry.Incidences {
			glomEndpoint(segs, merged, winner)
			winnerEntry.Union(merged)
		}
		t.tree.Remove(c)
	}
	winnerEntry.Union(inc)
	winnerEntry.Prune()
	return winner
}

// glomEndpoint rewrites the segment endpoint behind an endpoint incidence
// whose key was merged away, so that every segment endpoint stays equal to
// some live event-tree key by coordinate identity. Interior incidences
// carry no endpoint and pass through untouched.
func glomEndpoint(segs []segment.Segment, inc event.Incidence, to point.Point) {
	switch inc.Role {
	case event.Left:
		segs[inc.SegmentIndex].Left = to
	case event.Right:
		segs[inc.SegmentIndex].Right = to
	}
}

// RemoveIncidence removes a single (segment, role) incidence from the
// entry stored at key, deleting the node entirely if it becomes empty.
// Used by the preprocessor's vertical-projection snap, which must relocate
// an endpoint that was already inserted under its pre-snap coordinate.
func (t *Tree) RemoveIncidence(key point.Point, segIdx int, role event.Role) {
	iface, ok := t.tree.Get(key)
	if !ok {
		return
	}
	entry := iface.(*event.Entry)
	filtered := entry.Incidences[:0]
	for _, inc := range entry.Incidences {
		if inc.SegmentIndex == segIdx && inc.Role == role {
			continue
		}
		filtered = append(filtered, inc)
	}
	entry.Incidences = filtered
	if len(entry.Incidences) == 0 {
		t.tree.Remove(key)
	}
}

// pickWinner selects the highest-priority existing candidate per §4.2's
// snap-target rule, breaking ties lexicographically.
func pickWinner(candidates []point.Point, t *Tree, segs []segment.Segment) point.Point {
	best := candidates[0]
	bestClass := classifyKey(best, t, segs)
	for _, c := range candidates[1:] {
		class := classifyKey(c, t, segs)
		if class < bestClass || (class == bestClass && c.Less(best)) {
			best, bestClass = c, class
		}
	}
	return best
}

// classifyKey returns the best (lowest-numbered, highest-priority) class
// among every incidence stored at key p.
func classifyKey(p point.Point, t *Tree, segs []segment.Segment) int {
	iface, found := t.tree.Get(p)
	if !found {
		return classInterior
	}
	entry := iface.(*event.Entry)
	best := classInterior
	for _, inc := range entry.Incidences {
		if c := classifyIncidence(inc, segs); c < best {
			best = c
		}
	}
	return best
}

const (
	classVerticalTop = iota
	classVerticalBottom
	classEndpoint
	classInterior
)

// classifyIncidence returns inc's snap-priority class: the top endpoint of
// a vertical segment is Right per the segment package's Left/Right
// invariant (vertical segments have Left.Y < Right.Y).
func classifyIncidence(inc event.Incidence, segs []segment.Segment) int {
	if inc.Role == event.Interior {
		return classInterior
	}
	seg := segs[inc.SegmentIndex]
	if !seg.IsVertical() {
		return classEndpoint
	}
	if inc.Role == event.Right {
		return classVerticalTop
	}
	return classVerticalBottom
}
