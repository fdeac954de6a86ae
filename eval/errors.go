// Package eval: feasibility error reporting.
// One sentinel for class matching via errors.Is, one typed error carrying the
// violated invariant and its location for diagnostics.
package eval

import (
	"errors"
	"fmt"
)

// ErrInfeasible is the class sentinel every *FeasibilityError unwraps to.
var ErrInfeasible = errors.New("eval: infeasible route")

// Violation names the broken feasibility invariant.
type Violation uint8

const (
	// WrongLength: route length differs from the instance node count.
	WrongLength Violation = iota
	// UnknownNode: an ID outside 0..n-1 appears in the sequence.
	UnknownNode
	// DuplicateNode: some node appears more than once (another is missing).
	DuplicateNode
	// WrongOrigin: route[0] is not the origin depot.
	WrongOrigin
	// WrongDestination: route[last] is not the destination depot.
	WrongDestination
	// ForbiddenTransition: an interior consecutive pair violates the parity rule.
	ForbiddenTransition
)

// String returns a stable diagnostic name for the violation.
func (v Violation) String() string {
	switch v {
	case WrongLength:
		return "wrong length"
	case UnknownNode:
		return "unknown node"
	case DuplicateNode:
		return "duplicate node"
	case WrongOrigin:
		return "wrong origin"
	case WrongDestination:
		return "wrong destination"
	case ForbiddenTransition:
		return "forbidden transition"
	default:
		return "unknown violation"
	}
}

// FeasibilityError reports which invariant a route breaks and where.
// Index is the position of the offending element (for transitions, the
// position of the pair's first node); From/To carry the pair's IDs when the
// violation is a forbidden transition.
type FeasibilityError struct {
	Violation Violation
	Index     int
	From, To  int
}

// Error implements error.
func (e *FeasibilityError) Error() string {
	if e.Violation == ForbiddenTransition {
		return fmt.Sprintf("eval: forbidden transition %d→%d at position %d", e.From, e.To, e.Index)
	}

	return fmt.Sprintf("eval: %s at position %d", e.Violation, e.Index)
}

// Unwrap lets errors.Is(err, ErrInfeasible) match any feasibility failure.
func (e *FeasibilityError) Unwrap() error { return ErrInfeasible }
