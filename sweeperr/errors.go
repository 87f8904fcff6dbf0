// Package sweeperr defines the sentinel errors a sweep run can fail with.
// All three are fatal: none has a local recovery, since the numeric and
// structural assumptions the sweep relies on cannot be restored mid-run.
package sweeperr

import "errors"

var (
	// ErrInvalidInput is returned for a zero-length segment (endpoints
	// within tolerance of each other) or a non-finite coordinate.
	ErrInvalidInput = errors.New("sweeperr: invalid input")

	// ErrVerticalCollision is returned when two distinct vertical segments
	// are within tolerance in x and overlap in y-extent by more than
	// tolerance: they would glom to the same event key with ambiguous
	// ordering.
	ErrVerticalCollision = errors.New("sweeperr: vertical collision")

	// ErrStatusInvariant is returned when the status tree is non-empty at
	// termination, or a removal targeted an absent segment.
	ErrStatusInvariant = errors.New("sweeperr: status invariant violated")
)
