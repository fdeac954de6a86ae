// Package search - simulated annealing driver.
//
// Per iteration: pick one operator uniformly at random, draw one random
// feasible candidate from it (bounded resampling; an exhausted budget skips
// the iteration WITHOUT cooling), then apply the Metropolis criterion:
// accept unconditionally when Δobj ≤ 0, otherwise with probability
// exp(−Δobj/T). Cooling is geometric (T ← T·r) after every completed
// iteration, accepted or not. Best-so-far is tracked independently of the
// possibly-worse current route. The run ends when T falls below the floor or
// the termination policy fires.
package search

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/routespan/core"
	"github.com/katalvlaran/routespan/eval"
	"github.com/katalvlaran/routespan/matrix"
)

// Annealer is the Metropolis-acceptance driver. Owns a private RNG stream;
// not safe for concurrent Improve calls on one instance.
type Annealer struct {
	ev    *eval.Evaluator
	lower float64
	opts  Options
	ops   []Operator
	rng   *rand.Rand
}

// NewAnnealer validates the schedule and derives the driver's RNG stream.
func NewAnnealer(ev *eval.Evaluator, bounds matrix.Bounds, opts Options) (*Annealer, error) {
	if err := opts.validateAnnealing(); err != nil {
		return nil, err
	}

	return &Annealer{
		ev:    ev,
		lower: bounds.Lower,
		opts:  opts,
		ops:   defaultOperators(opts.MaxSegment),
		rng:   rngForStream(opts.Seed, streamAnnealer),
	}, nil
}

// metropolisAccept decides acceptance of a worsening move: true with
// probability exp(−delta/temp). Improving and equal moves (delta ≤ 0) are
// accepted unconditionally.
func metropolisAccept(delta, temp float64, rng *rand.Rand) bool {
	if delta <= 0 {
		return true
	}

	return rng.Float64() < math.Exp(-delta/temp)
}

// Improve runs the annealing schedule from seed.
func (s *Annealer) Improve(seed core.Route, progress Progress) (Result, error) {
	cur := seed.Clone()
	mCur, err := s.ev.Evaluate(&cur)
	if err != nil {
		return Result{}, err
	}

	var (
		best   = cur.Clone()
		mBest  = mCur
		temp   = s.opts.InitTemp
		term   = NewTerminationPolicy(s.opts, s.lower)
		iter   int
		reason = StopTemperatureFloor
	)

	for temp >= s.opts.MinTemp {
		if r, stop := term.Check(iter, mBest.Objective); stop {
			reason = r
			break
		}

		op := s.ops[s.rng.Intn(len(s.ops))]
		cand, mv, ok := op.Random(cur, s.ev, s.rng, s.opts.RandomRetries)
		iter++

		if !ok {
			// Resampling budget exhausted: skip this iteration, no cooling.
			emit(progress, Iteration{
				Index:   iter - 1,
				Current: mCur.Objective,
				Best:    mBest.Objective,
				Route:   cur.Clone(),
			})
			continue
		}

		improvedBest := false
		if metropolisAccept(mv.Delta, temp, s.rng) {
			cur = cand
			mCur = mustMetrics(cur)
			if mCur.Objective < mBest.Objective {
				best = cur.Clone()
				mBest = mCur
				improvedBest = true
			}
		}

		emit(progress, Iteration{
			Index:    iter - 1,
			Current:  mCur.Objective,
			Best:     mBest.Objective,
			Improved: improvedBest,
			Route:    cur.Clone(),
		})

		temp *= s.opts.CoolingRate
	}

	return Result{
		Route:      best,
		Metrics:    mBest,
		Iterations: iter,
		Duration:   term.Elapsed(),
		Stopped:    reason,
	}, nil
}
