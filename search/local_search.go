// Package search - deterministic first-improvement local search.
//
// State machine: Active → Improved → Active, cycling until NoImprovement or
// the termination policy fires. Each iteration applies one operator from the
// fixed cycle (2-opt, 3-opt, relocate); within an operator, candidates are
// enumerated until the FIRST improving one, which is applied immediately and
// restarts the cycle from 2-opt. A full cycle with no improving candidate is
// the natural fixed point.
//
// The objective sequence is monotone non-increasing by construction - an
// iteration either applies a strictly improving move or applies nothing.
package search

import (
	"github.com/katalvlaran/routespan/core"
	"github.com/katalvlaran/routespan/eval"
	"github.com/katalvlaran/routespan/matrix"
)

// LocalSearch is the deterministic first-improvement driver. One instance
// per run; safe to rebuild cheaply.
type LocalSearch struct {
	ev    *eval.Evaluator
	lower float64
	opts  Options
	ops   []Operator
}

// NewLocalSearch validates options and binds the driver to an instance.
func NewLocalSearch(ev *eval.Evaluator, bounds matrix.Bounds, opts Options) (*LocalSearch, error) {
	if err := opts.validateCommon(); err != nil {
		return nil, err
	}

	return &LocalSearch{
		ev:    ev,
		lower: bounds.Lower,
		opts:  opts,
		ops:   defaultOperators(opts.MaxSegment),
	}, nil
}

// Improve runs the cycle from seed until no operator improves or the
// termination policy fires. The seed must be feasible; an infeasible seed is
// the caller's precondition failure and is returned as the eval error.
func (s *LocalSearch) Improve(seed core.Route, progress Progress) (Result, error) {
	cur := seed.Clone()
	m, err := s.ev.Evaluate(&cur)
	if err != nil {
		return Result{}, err
	}

	var (
		term    = NewTerminationPolicy(s.opts, s.lower)
		iter    int
		reason  = StopNoImprovement
		stopped bool
	)

	for !stopped {
		improvedInCycle := false

		for _, op := range s.ops {
			if r, stop := term.Check(iter, m.Objective); stop {
				reason = r
				stopped = true
				break
			}

			cand, _, ok := op.FirstImprovement(cur, s.ev, s.opts.Eps)
			iter++
			if ok {
				cur = cand
				m = mustMetrics(cur)
			}
			emit(progress, Iteration{
				Index:    iter - 1,
				Current:  m.Objective,
				Best:     m.Objective, // monotone: current IS best
				Improved: ok,
				Route:    cur.Clone(),
			})
			if ok {
				improvedInCycle = true
				break // restart the cycle from 2-opt
			}
		}

		if !stopped && !improvedInCycle {
			reason = StopNoImprovement
			break
		}
	}

	return Result{
		Route:      cur,
		Metrics:    m,
		Iterations: iter,
		Duration:   term.Elapsed(),
		Stopped:    reason,
	}, nil
}
