// Package matrix: sentinel error set.
// All constructors return these sentinels and tests match them via errors.Is.
// No function in this package panics on user-triggered conditions; panics are
// reserved for programmer errors (out-of-range IDs on the hot-path accessor,
// documented at Distance).
package matrix

import "errors"

var (
	// ErrTooFewNodes is returned when fewer than two nodes are supplied;
	// an instance needs at least the origin/destination pair.
	ErrTooFewNodes = errors.New("matrix: need at least two nodes")

	// ErrNonContiguousIDs is returned when node IDs are not exactly 0..n-1.
	// The depot conventions (origin 0, destination n-1) depend on it.
	ErrNonContiguousIDs = errors.New("matrix: node IDs must be contiguous from 0")

	// ErrNonFinite is returned when a coordinate or derived distance is NaN
	// or ±Inf. This is fatal by design: it signals malformed input data, not
	// a recoverable search-time condition.
	ErrNonFinite = errors.New("matrix: non-finite coordinate or distance")

	// ErrNegativeDistance is returned when a supplied distance function
	// yields a negative value (unreachable for Euclidean construction).
	ErrNegativeDistance = errors.New("matrix: negative distance")
)
