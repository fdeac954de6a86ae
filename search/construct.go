// Package search - construction heuristics.
//
// Both sequencers build a candidate route cheaply; neither one's output is
// trusted. Feasibility always comes from eval afterwards: the naive
// sequencer's constraint avoidance depends on node IDs being assigned in
// increasing input-position order, and the greedy chain can dead-end.
package search

import (
	"sort"

	"github.com/katalvlaran/routespan/core"
	"github.com/katalvlaran/routespan/matrix"
)

// NaiveRoute builds the deterministic parity-split sequence:
// origin, even-position interior nodes sorted by ID descending,
// odd-position interior nodes sorted by ID ascending, destination.
//
// Grouping all even-origin transitions before the parity threshold and all
// odd-origin transitions after it structurally avoids the forbidden
// patterns - for inputs whose IDs follow input position. Callers verify the
// result through eval rather than assuming that correspondence.
//
// Complexity: O(n log n).
func NaiveRoute(nodes []core.Node) core.Route {
	if len(nodes) < 2 {
		return core.NewRoute(nil)
	}

	interior := nodes[1 : len(nodes)-1]

	var evens, odds []int
	var i int
	for i = 0; i < len(interior); i++ {
		if i%2 == 0 {
			evens = append(evens, interior[i].ID)
		} else {
			odds = append(odds, interior[i].ID)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(evens)))
	sort.Ints(odds)

	ids := make([]int, 0, len(nodes))
	ids = append(ids, nodes[0].ID)
	ids = append(ids, evens...)
	ids = append(ids, odds...)
	ids = append(ids, nodes[len(nodes)-1].ID)

	// A two-node interior is the one size the split cannot cover: it yields
	// the single checked pair in split order, and when that transition is
	// forbidden the swapped order is the legal one (with two interior nodes
	// at most one of the two orders can trip the rule).
	if len(interior) == 2 && core.ForbiddenTransition(ids[1], ids[2], len(interior)) {
		ids[1], ids[2] = ids[2], ids[1]
	}

	return core.NewRoute(ids)
}

// GreedyRoute chains nearest feasible neighbors from the origin and appends
// the destination. "Feasible" here means the parity rule between interior
// pairs; if the chain dead-ends the remaining nodes are simply missing and
// the route fails evaluation - by design, the caller decides what to do with
// an infeasible greedy seed.
//
// Complexity: O(n²).
func GreedyRoute(nodes []core.Node, m *matrix.DistanceMatrix) core.Route {
	if len(nodes) < 2 {
		return core.NewRoute(nil)
	}

	var (
		n         = len(nodes)
		interiorN = core.InteriorCount(n)
		origin    = nodes[0].ID
		dest      = nodes[n-1].ID
		unvisited = make(map[int]bool, interiorN)
		ids       = make([]int, 0, n)
	)
	var i int
	for i = 1; i < n-1; i++ {
		unvisited[nodes[i].ID] = true
	}

	ids = append(ids, origin)
	cur := origin
	for len(unvisited) > 0 {
		next := -1
		bestDist := 0.0
		for cand := range unvisited {
			// The origin is exempt from the parity rule; interior pairs
			// must respect it.
			if cur != origin && core.ForbiddenTransition(cur, cand, interiorN) {
				continue
			}
			d := m.Distance(cur, cand)
			if next == -1 || d < bestDist || (d == bestDist && cand < next) {
				next = cand
				bestDist = d
			}
		}
		if next == -1 {
			break // dead end; remaining nodes stay unplaced
		}
		ids = append(ids, next)
		delete(unvisited, next)
		cur = next
	}
	ids = append(ids, dest)

	return core.NewRoute(ids)
}
