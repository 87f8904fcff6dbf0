// Package point defines the foundational geometric primitive used throughout
// this module: a two-dimensional point with floating-point coordinates.
//
// # Overview
//
// Point provides the small set of vector operations the sweep-line engine
// and its geometry predicates need: translation, dot/cross product, distance,
// and tolerance-aware equality. It intentionally omits rotation, scaling, and
// angle measurement — none of that is exercised by a segment-intersection
// sweep.
package point

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/brightmoor/proxsweep/numeric"
)

// Point represents a point in two-dimensional space.
type Point struct {
	X float64
	Y float64
}

// New creates a new Point with the specified x and y coordinates.
func New(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points as if they were vectors.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// CrossProduct returns the 2D cross product (determinant) of two vectors:
//
//	a × b = a.X*b.Y - a.Y*b.X
//
// A positive result indicates a counterclockwise turn, a negative result a
// clockwise turn, and zero indicates the vectors are collinear.
func (p Point) CrossProduct(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// DotProduct calculates the dot product of p and q.
func (p Point) DotProduct(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// DistanceSquaredToPoint calculates the squared Euclidean distance between p
// and q, avoiding the cost of a square root where only comparisons matter.
func (p Point) DistanceSquaredToPoint(q Point) float64 {
	dx, dy := q.X-p.X, q.Y-p.Y
	return dx*dx + dy*dy
}

// DistanceToPoint calculates the Euclidean distance between p and q.
func (p Point) DistanceToPoint(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredToPoint(q))
}

// Eq reports whether p and q are indistinguishable within tol under the
// Chebyshev metric: max(|p.X-q.X|, |p.Y-q.Y|) <= tol.
func (p Point) Eq(q Point, tol float64) bool {
	return numeric.Chebyshev(p.X-q.X, p.Y-q.Y) <= tol
}

// Less reports whether p sorts strictly before q under lexicographic (X,
// then Y) order. This is the ordering the event tree's keys obey.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// String returns a string representation of p in the format "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// MarshalJSON serializes Point as JSON.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{X: p.X, Y: p.Y})
}

// UnmarshalJSON deserializes JSON into a Point.
func (p *Point) UnmarshalJSON(data []byte) error {
	var temp struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.X, p.Y = temp.X, temp.Y
	return nil
}
