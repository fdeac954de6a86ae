// Package core - Route value type with copy-on-propose semantics.
//
// A Route is an ordered sequence of node IDs plus a small metrics cache.
// The sequence is private: the only ways to obtain a Route are NewRoute (which
// copies its input) and Clone, so no two Routes ever alias a backing array
// that one of them could mutate. Operators build candidate ID slices and wrap
// them with NewRoute; drivers adopt a candidate by assignment.
//
// The cache holds the last evaluation (D, Δ, objective). It starts invalid,
// is stamped exclusively by the eval package, and - because Routes are never
// mutated in place - can never go stale while set.
package core

import (
	"strconv"
	"strings"
)

// Route is an ordered visiting sequence over node IDs.
// The zero value is an empty route with an invalid metrics cache.
type Route struct {
	ids []int

	// Cached evaluation results; meaningful only while evaluated is true.
	distance  float64
	delta     float64
	objective float64
	evaluated bool
}

// NewRoute builds a Route over a copy of ids. The metrics cache starts
// invalid; eval stamps it on the first successful evaluation.
//
// Complexity: O(n) time and space.
func NewRoute(ids []int) Route {
	cp := make([]int, len(ids))
	copy(cp, ids)

	return Route{ids: cp}
}

// Len returns the number of nodes in the sequence.
func (r Route) Len() int { return len(r.ids) }

// At returns the node ID at position i. Positions outside [0,Len) are a
// programmer error and panic via the slice bounds check.
func (r Route) At(i int) int { return r.ids[i] }

// IDs returns an independent copy of the full sequence.
//
// Complexity: O(n).
func (r Route) IDs() []int {
	cp := make([]int, len(r.ids))
	copy(cp, r.ids)

	return cp
}

// Clone returns an independent copy of the route, including its cache.
// Cloning is how a driver hands a private working route to an operator or a
// snapshot to a progress callback.
//
// Complexity: O(n).
func (r Route) Clone() Route {
	out := r
	out.ids = make([]int, len(r.ids))
	copy(out.ids, r.ids)

	return out
}

// Metrics reports the cached evaluation. ok is false until eval has stamped
// the route; callers must not use the numeric results when ok is false.
func (r Route) Metrics() (distance, delta, objective float64, ok bool) {
	return r.distance, r.delta, r.objective, r.evaluated
}

// SetMetrics stamps the evaluation cache. Intended for the eval package only;
// any other writer would break the single-source-of-truth contract.
func (r *Route) SetMetrics(distance, delta, objective float64) {
	r.distance = distance
	r.delta = delta
	r.objective = objective
	r.evaluated = true
}

// String renders the sequence as dash-joined IDs, e.g. "0-3-1-2".
//
// Complexity: O(n).
func (r Route) String() string {
	var b strings.Builder

	var i int
	for i = 0; i < len(r.ids); i++ {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(strconv.Itoa(r.ids[i]))
	}

	return b.String()
}
