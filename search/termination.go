// Package search - the shared stopping-condition evaluator.
//
// One TerminationPolicy instance serves whichever driver is running. The
// check is a composite OR over wall-clock, iteration count, and proximity to
// the lower bound, evaluated once per iteration boundary. The cost per check
// is one monotonic clock read plus two comparisons, cheap enough that no
// driver needs to batch it.
package search

import "time"

// TerminationPolicy decides when a driver must stop and reports which
// condition fired. Immutable after construction except for the implicit
// clock; one instance per Improve call (the stopwatch starts at New).
type TerminationPolicy struct {
	maxIterations int
	maxDuration   time.Duration
	boundEps      float64
	lower         float64
	start         time.Time
}

// NewTerminationPolicy starts the stopwatch now. lower is the instance lower
// bound the bound-proximity condition compares against.
func NewTerminationPolicy(opts Options, lower float64) *TerminationPolicy {
	return &TerminationPolicy{
		maxIterations: opts.MaxIterations,
		maxDuration:   opts.MaxDuration,
		boundEps:      opts.BoundEps,
		lower:         lower,
		start:         time.Now(),
	}
}

// Check evaluates the composite condition for the given iteration count and
// best objective. Condition priority when several hold at once: time limit,
// iteration limit, bound proximity.
//
// Complexity: O(1).
func (p *TerminationPolicy) Check(iterations int, best float64) (StopReason, bool) {
	if p.maxDuration > 0 && time.Since(p.start) >= p.maxDuration {
		return StopTimeLimit, true
	}
	if p.maxIterations > 0 && iterations >= p.maxIterations {
		return StopIterationLimit, true
	}
	if best <= p.lower+p.boundEps {
		return StopBoundReached, true
	}

	return StopNoImprovement, false
}

// Elapsed returns the wall-clock time since the policy was created.
func (p *TerminationPolicy) Elapsed() time.Duration {
	return time.Since(p.start)
}
