package numeric

import "math"

// FloatEquals reports whether a and b are indistinguishable within
// epsilon: |a-b| <= epsilon. This is the scalar building block point_eq
// and the status tree's rank comparisons reduce to.
func FloatEquals(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

// FloatGreaterThan reports whether a is greater than b by more than
// epsilon (not merely indistinguishably so).
func FloatGreaterThan(a, b, epsilon float64) bool {
	return a > b && !FloatEquals(a, b, epsilon)
}

// FloatGreaterThanOrEqualTo reports whether a is greater than b, or
// within epsilon of it.
func FloatGreaterThanOrEqualTo(a, b, epsilon float64) bool {
	return a > b || FloatEquals(a, b, epsilon)
}

// FloatLessThan reports whether a is less than b by more than epsilon.
func FloatLessThan(a, b, epsilon float64) bool {
	return a < b && !FloatEquals(a, b, epsilon)
}

// FloatLessThanOrEqualTo reports whether a is less than b, or within
// epsilon of it.
func FloatLessThanOrEqualTo(a, b, epsilon float64) bool {
	return a < b || FloatEquals(a, b, epsilon)
}

// SnapToEpsilon rounds value to the nearest whole number when it is
// within epsilon of one, absorbing the accumulated floating-point drift
// that arithmetic on glommed coordinates tends to produce. Values not
// close to an integer are returned unchanged.
func SnapToEpsilon(value, epsilon float64) float64 {
	rounded := math.Round(value)
	if math.Abs(value-rounded) < epsilon {
		return rounded
	}
	return value
}
