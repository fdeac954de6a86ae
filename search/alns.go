// Package search - adaptive large-neighbourhood search.
//
// Per iteration:
//
//  1. Select a destroy operator by roulette-wheel sampling over the adaptive
//     weight vector (initialized uniform, always normalized to sum 1).
//  2. Destroy: remove k interior nodes (fixed count or interior fraction).
//  3. Repair: greedily reinsert each removed node at the feasible position
//     with the smallest marginal objective increase. A node with no feasible
//     position anywhere invalidates the whole attempt: the current route is
//     kept unchanged and the iteration still counts.
//  4. Acceptance: late-acceptance hill climbing - the repaired route is
//     accepted when its objective is ≤ the trajectory objective recorded H
//     iterations ago; the history ring always records the post-decision
//     trajectory value.
//  5. Weight update: EMA with the configured decay (full reward for a new
//     best, partial for a mere acceptance, zero otherwise), then
//     renormalize.
//
// ALNS has no natural fixed point; it stops only on the termination policy.
package search

import (
	"math/rand"

	"github.com/katalvlaran/routespan/core"
	"github.com/katalvlaran/routespan/eval"
	"github.com/katalvlaran/routespan/matrix"
)

// Operator selection rewards: a new global best earns the full reward, an
// accepted-but-not-best repair a partial one, a rejected repair nothing.
const (
	rewardBest     = 1.0
	rewardAccepted = 0.4
	rewardRejected = 0.0
)

// ALNS is the destroy/repair driver. Owns a private RNG stream; not safe
// for concurrent Improve calls on one instance.
type ALNS struct {
	ev       *eval.Evaluator
	m        *matrix.DistanceMatrix
	lower    float64
	opts     Options
	destroys []DestroyOperator
	weights  []float64
	rng      *rand.Rand
}

// NewALNS validates options and binds the driver to an instance.
func NewALNS(ev *eval.Evaluator, bounds matrix.Bounds, opts Options) (*ALNS, error) {
	if err := opts.validateALNS(); err != nil {
		return nil, err
	}

	return &ALNS{
		ev:    ev,
		m:     ev.Matrix(),
		lower: bounds.Lower,
		opts:  opts,
		destroys: []DestroyOperator{
			NewRandomRemoval(),
			NewPathRemoval(),
			NewWorstRemoval(ev.Matrix()),
		},
		weights: uniformWeights(3),
		rng:     rngForStream(opts.Seed, streamALNS),
	}, nil
}

// Weights returns a copy of the current destroy-operator weight vector,
// indexed by DestroyKind. Weights persist across Improve calls on the same
// instance (adaptive memory); they always sum to 1.
func (s *ALNS) Weights() []float64 {
	out := make([]float64, len(s.weights))
	copy(out, s.weights)

	return out
}

// removalSize resolves k for the current instance.
func (s *ALNS) removalSize(interior int) int {
	k := s.opts.RemovalCount
	if k == 0 {
		k = int(s.opts.RemovalFraction * float64(interior))
	}
	if k < 1 {
		k = 1
	}
	if k > interior {
		k = interior
	}

	return k
}

// Improve runs destroy/repair from seed until the termination policy fires.
func (s *ALNS) Improve(seed core.Route, progress Progress) (Result, error) {
	cur := seed.Clone()
	mCur, err := s.ev.Evaluate(&cur)
	if err != nil {
		return Result{}, err
	}

	var (
		best    = cur.Clone()
		mBest   = mCur
		term    = NewTerminationPolicy(s.opts, s.lower)
		iter    int
		reason  StopReason
		k       = s.removalSize(cur.Len() - 2)
		history = newHistoryRing(s.opts.HistoryLength, mCur.Objective)
	)

	for {
		r, stop := term.Check(iter, mBest.Objective)
		if stop {
			reason = r
			break
		}

		di := rouletteSelect(s.weights, s.rng)
		removed := s.destroys[di].Propose(cur, k, s.rng)
		cand, repairErr := s.repair(cur, removed)
		iter++

		reward := rewardRejected
		improvedBest := false

		if repairErr == nil {
			mCand := mustMetrics(cand)
			if mCand.Objective <= history.lookback(iter) {
				cur = cand
				mCur = mCand
				reward = rewardAccepted
				if mCand.Objective < mBest.Objective {
					best = cur.Clone()
					mBest = mCand
					improvedBest = true
					reward = rewardBest
				}
			}
		}
		// The ring always reflects the accepted trajectory: on rejection (or
		// a discarded repair) the unchanged current objective is recorded.
		history.push(iter, mCur.Objective)

		updateWeights(s.weights, di, s.opts.WeightDecay, reward)

		emit(progress, Iteration{
			Index:    iter - 1,
			Current:  mCur.Objective,
			Best:     mBest.Objective,
			Improved: improvedBest,
			Route:    cur.Clone(),
		})
	}

	return Result{
		Route:      best,
		Metrics:    mBest,
		Iterations: iter,
		Duration:   term.Elapsed(),
		Stopped:    reason,
	}, nil
}

// repair excises the given positions and greedily reinserts the removed
// nodes. Returns ErrRepairFailed when any node has no feasible slot; the
// caller then discards the whole attempt.
func (s *ALNS) repair(cur core.Route, removePos []int) (core.Route, error) {
	if len(removePos) == 0 {
		return core.Route{}, ErrRepairFailed
	}

	var (
		interior = core.InteriorCount(cur.Len())
		drop     = make(map[int]bool, len(removePos))
		removed  = make([]int, 0, len(removePos))
		partial  = make([]int, 0, cur.Len()-len(removePos))
	)
	for _, p := range removePos {
		drop[p] = true
	}
	var i int
	for i = 0; i < cur.Len(); i++ {
		if drop[i] {
			removed = append(removed, cur.At(i))
		} else {
			partial = append(partial, cur.At(i))
		}
	}

	// Reinsertion order follows the destroy proposal (route order); each
	// node goes to the feasible slot with the smallest objective increase,
	// priced on the partial sequence with the same L constant.
	for _, id := range removed {
		baseCost := s.partialObjective(partial)
		bestPos := -1
		bestCost := 0.0

		var p int
		for p = 1; p <= len(partial)-1; p++ {
			if !s.insertionFeasible(partial, id, p, interior) {
				continue
			}
			trial := insertAt(partial, id, p)
			c := s.partialObjective(trial) - baseCost
			if bestPos == -1 || c < bestCost {
				bestPos = p
				bestCost = c
			}
		}
		if bestPos == -1 {
			return core.Route{}, ErrRepairFailed
		}
		partial = insertAt(partial, id, bestPos)
	}

	cand := core.NewRoute(partial)
	if _, err := s.ev.Evaluate(&cand); err != nil {
		// Full-route validation is authoritative; a slipped-through
		// violation means the attempt is discarded like any other failure.
		return core.Route{}, ErrRepairFailed
	}

	return cand, nil
}

// insertionFeasible checks the parity rule for the two transitions an
// insertion at position p would create. Depot endpoints are exempt.
func (s *ALNS) insertionFeasible(partial []int, id, p, interior int) bool {
	prev := partial[p-1]
	next := partial[p]

	if prev != core.OriginID && prev != core.DestinationID(s.ev.NodeCount()) {
		if core.ForbiddenTransition(prev, id, interior) {
			return false
		}
	}
	if next != core.OriginID && next != core.DestinationID(s.ev.NodeCount()) {
		if core.ForbiddenTransition(id, next, interior) {
			return false
		}
	}

	return true
}

// partialObjective prices an incomplete sequence with the instance L:
// L·(maxEdge−minEdge) + ΣD over the present consecutive edges. Used only to
// rank insertion slots; full routes are always re-priced by eval.
func (s *ALNS) partialObjective(seq []int) float64 {
	if len(seq) < 2 {
		return 0
	}

	var (
		sum, w   float64
		minE     float64
		maxE     float64
		i        int
		lastPair = len(seq) - 2
	)
	for i = 0; i <= lastPair; i++ {
		w = s.m.Distance(seq[i], seq[i+1])
		sum += w
		if i == 0 || w < minE {
			minE = w
		}
		if i == 0 || w > maxE {
			maxE = w
		}
	}

	return s.ev.ScaleL()*(maxE-minE) + sum
}

// insertAt returns a fresh slice with id inserted so it occupies position p.
func insertAt(seq []int, id, p int) []int {
	out := make([]int, 0, len(seq)+1)
	out = append(out, seq[:p]...)
	out = append(out, id)
	out = append(out, seq[p:]...)

	return out
}

// --- adaptive weights ---

// uniformWeights initializes n weights summing to 1.
func uniformWeights(n int) []float64 {
	w := make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		w[i] = 1.0 / float64(n)
	}

	return w
}

// rouletteSelect samples an index proportionally to its weight.
func rouletteSelect(w []float64, rng *rand.Rand) int {
	var total float64
	for _, v := range w {
		total += v
	}

	r := rng.Float64() * total
	var i int
	for i = 0; i < len(w)-1; i++ {
		r -= w[i]
		if r < 0 {
			return i
		}
	}

	return len(w) - 1
}

// updateWeights applies the EMA update to the selected index and
// renormalizes the vector to sum 1. A fully-decayed vector (all zeros)
// resets to uniform rather than dividing by zero.
func updateWeights(w []float64, selected int, decay, reward float64) {
	w[selected] = (1-decay)*w[selected] + decay*reward

	var total float64
	for _, v := range w {
		total += v
	}
	if total <= 0 {
		copy(w, uniformWeights(len(w)))

		return
	}
	var i int
	for i = 0; i < len(w); i++ {
		w[i] /= total
	}
}

// --- late-acceptance history ---

// historyRing is the fixed-size buffer of trajectory objectives used by
// late-acceptance hill climbing.
type historyRing struct {
	buf []float64
}

// newHistoryRing fills the ring with the seed objective so early iterations
// compare against the starting point.
func newHistoryRing(h int, seedObjective float64) *historyRing {
	buf := make([]float64, h)
	var i int
	for i = 0; i < h; i++ {
		buf[i] = seedObjective
	}

	return &historyRing{buf: buf}
}

// lookback returns the trajectory objective recorded H iterations ago.
func (r *historyRing) lookback(iter int) float64 {
	return r.buf[iter%len(r.buf)]
}

// push records the post-decision trajectory objective for this iteration.
func (r *historyRing) push(iter int, objective float64) {
	r.buf[iter%len(r.buf)] = objective
}
