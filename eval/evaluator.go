// Package eval - the route evaluator.
//
// Evaluator binds a shared read-only DistanceMatrix to the instance constants
// (L, depot IDs) and exposes two operations:
//
//   - Feasible: invariant check only, O(n), allocation-light.
//   - Evaluate: feasibility + metrics {D, Δ, objective}, O(n); stamps the
//     route's metrics cache so repeated evaluation of an unchanged route is
//     free.
//
// Design principles follow the rest of the library: deterministic,
// side-effect free beyond the cache stamp, no logging, typed errors only.
package eval

import (
	"github.com/katalvlaran/routespan/core"
	"github.com/katalvlaran/routespan/matrix"
)

// Metrics is one route evaluation: total length D, edge spread Δ, and the
// combined objective L·Δ + D that all improvers minimize.
type Metrics struct {
	Distance  float64
	Delta     float64
	Objective float64
}

// Evaluator computes feasibility and objective values against one instance.
// Safe for concurrent use: all state is immutable after construction.
type Evaluator struct {
	m        *matrix.DistanceMatrix
	scaleL   float64
	n        int // total node count
	interior int // nodes strictly between depots
	dest     int
}

// New binds an evaluator to a distance matrix, deriving the L constant once.
func New(m *matrix.DistanceMatrix) *Evaluator {
	return &Evaluator{
		m:        m,
		scaleL:   matrix.ScaleL(m),
		n:        m.Len(),
		interior: core.InteriorCount(m.Len()),
		dest:     core.DestinationID(m.Len()),
	}
}

// ScaleL returns the instance constant L = maxD · interior.
func (e *Evaluator) ScaleL() float64 { return e.scaleL }

// Matrix returns the shared read-only distance matrix the evaluator is bound
// to, for components that price partial sequences (ALNS repair, worst
// removal) against the same distances.
func (e *Evaluator) Matrix() *matrix.DistanceMatrix { return e.m }

// NodeCount returns the total node count of the bound instance.
func (e *Evaluator) NodeCount() int { return e.n }

// Feasible verifies the three route invariants:
//  1. the sequence is a permutation of all node IDs (length + uniqueness);
//  2. fixed endpoints (origin first, destination last);
//  3. no interior consecutive pair violates the parity transition rule.
//
// Returns nil or a *FeasibilityError naming the first violation found.
//
// Complexity: O(n) time, O(n) space for the seen-set.
func (e *Evaluator) Feasible(r core.Route) error {
	if r.Len() != e.n {
		return &FeasibilityError{Violation: WrongLength, Index: r.Len()}
	}
	if r.At(0) != core.OriginID {
		return &FeasibilityError{Violation: WrongOrigin, Index: 0}
	}
	if r.At(r.Len()-1) != e.dest {
		return &FeasibilityError{Violation: WrongDestination, Index: r.Len() - 1}
	}

	seen := make([]bool, e.n)

	var i, id int
	for i = 0; i < r.Len(); i++ {
		id = r.At(i)
		if id < 0 || id >= e.n {
			return &FeasibilityError{Violation: UnknownNode, Index: i}
		}
		if seen[id] {
			return &FeasibilityError{Violation: DuplicateNode, Index: i}
		}
		seen[id] = true
	}

	// Parity rule over interior consecutive pairs; depot endpoints exempt.
	var from, to int
	for i = 1; i < r.Len()-2; i++ {
		from = r.At(i)
		to = r.At(i + 1)
		if core.ForbiddenTransition(from, to, e.interior) {
			return &FeasibilityError{Violation: ForbiddenTransition, Index: i, From: from, To: to}
		}
	}

	return nil
}

// Evaluate checks feasibility and computes the route metrics.
//
// D sums the traversed consecutive edges plus the forced-zero closing edge;
// Δ is max−min over the traversed consecutive edges (closing edge excluded,
// see the package comment). On success the route's cache is stamped, so a
// second Evaluate of the same value returns the cached metrics without
// rescanning.
//
// Complexity: O(n) time, O(n) space (feasibility seen-set).
func (e *Evaluator) Evaluate(r *core.Route) (Metrics, error) {
	if d, delta, obj, ok := r.Metrics(); ok {
		return Metrics{Distance: d, Delta: delta, Objective: obj}, nil
	}
	if err := e.Feasible(*r); err != nil {
		return Metrics{}, err
	}

	var (
		sum      float64
		minEdge  float64
		maxEdge  float64
		w        float64
		i        int
		lastEdge = r.Len() - 2 // index of the last traversed pair's first node
	)
	for i = 0; i <= lastEdge; i++ {
		w = e.m.Distance(r.At(i), r.At(i+1))
		sum += w
		if i == 0 || w < minEdge {
			minEdge = w
		}
		if i == 0 || w > maxEdge {
			maxEdge = w
		}
	}
	// Closing edge destination→origin: forced to 0 by the matrix, kept
	// explicit so D's definition (full loop) is visible in code.
	sum += e.m.Distance(r.At(r.Len()-1), core.OriginID)

	m := Metrics{
		Distance:  sum,
		Delta:     maxEdge - minEdge,
		Objective: e.scaleL*(maxEdge-minEdge) + sum,
	}
	r.SetMetrics(m.Distance, m.Delta, m.Objective)

	return m, nil
}
