// Package segment defines the Segment type and the tolerance-aware
// geometric predicates of the sweep (point equality, on-segment tube
// tests, segment-segment intersection, sweep-line ordering). Every
// downstream structural decision in the event tree, the status tree, and
// the sweep driver reduces to one of these predicates: they are the single
// source of numerical truth for the whole module.
package segment

import (
	"encoding/json"
	"fmt"

	"github.com/brightmoor/proxsweep/point"
)

// Segment is a line segment carrying a stable integer identity preserved
// across a run. Endpoints are mutable: preprocessing and glomming rewrite
// them in place.
//
// Invariant (established by New, re-established after every glomming
// rewrite): a non-vertical segment has Left.X < Right.X; an exactly
// vertical segment has Left.X == Right.X and Left.Y < Right.Y.
type Segment struct {
	ID    int
	Left  point.Point
	Right point.Point
}

// New builds a Segment from an unordered endpoint pair, orienting them per
// the Left/Right invariant: the point with smaller X is Left, ties on X
// (including the vertical case) broken by smaller Y.
func New(id int, a, b point.Point) Segment {
	if b.Less(a) {
		a, b = b, a
	}
	return Segment{ID: id, Left: a, Right: b}
}

// IsVertical reports whether the segment's endpoints share an X coordinate
// exactly. Near-vertical segments are nudged to exactly vertical by the
// preprocessor before this is ever consulted by the sweep.
func (s Segment) IsVertical() bool {
	return s.Left.X == s.Right.X
}

// Direction returns the vector from Left to Right.
func (s Segment) Direction() point.Point {
	return s.Right.Sub(s.Left)
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.Left.DistanceToPoint(s.Right)
}

func (s Segment) String() string {
	return fmt.Sprintf("segment#%d[%s -> %s]", s.ID, s.Left, s.Right)
}

// MarshalJSON serializes Segment as JSON.
func (s Segment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID    int         `json:"id"`
		Left  point.Point `json:"left"`
		Right point.Point `json:"right"`
	}{ID: s.ID, Left: s.Left, Right: s.Right})
}

// UnmarshalJSON deserializes JSON into a Segment. The result's Left/Right
// orientation is re-established via New, so a segment marshaled after
// preprocessing round-trips its identity and geometry, not necessarily
// the field order it was encoded with.
func (s *Segment) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID    int         `json:"id"`
		Left  point.Point `json:"left"`
		Right point.Point `json:"right"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*s = New(temp.ID, temp.Left, temp.Right)
	return nil
}
