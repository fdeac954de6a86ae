// Package search - unified dispatcher.
//
// Canonical entry points:
//
//   - NewImprover: validate options and construct the requested driver.
//   - Solve: full pipeline for callers that just want a result - build the
//     evaluator and bounds, construct a seed (best feasible of naive and
//     greedy), run the driver.
//
// Both are conveniences; the individual drivers remain public for callers
// that manage seeds and instances themselves (e.g. running all three drivers
// concurrently on private clones).
package search

import (
	"strings"

	"github.com/katalvlaran/routespan/core"
	"github.com/katalvlaran/routespan/eval"
	"github.com/katalvlaran/routespan/matrix"
)

// Algorithm selects an improvement driver.
type Algorithm uint8

const (
	// AlgoLocalSearch: deterministic first-improvement cycle.
	AlgoLocalSearch Algorithm = iota
	// AlgoAnnealing: Metropolis acceptance with geometric cooling.
	AlgoAnnealing
	// AlgoALNS: adaptive destroy/repair with late acceptance.
	AlgoALNS
)

// String returns the selector's canonical name.
func (a Algorithm) String() string {
	switch a {
	case AlgoLocalSearch:
		return "local"
	case AlgoAnnealing:
		return "anneal"
	case AlgoALNS:
		return "alns"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a selector string (case-insensitive) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "local", "localsearch", "local-search":
		return AlgoLocalSearch, nil
	case "anneal", "annealing", "sa":
		return AlgoAnnealing, nil
	case "alns":
		return AlgoALNS, nil
	default:
		return 0, ErrUnknownAlgorithm
	}
}

// Improver is the common driver contract: one seed in, best-known route out.
// Non-convergence is a normal outcome, not an error.
type Improver interface {
	Improve(seed core.Route, progress Progress) (Result, error)
}

// NewImprover constructs the requested driver against one instance.
func NewImprover(algo Algorithm, ev *eval.Evaluator, bounds matrix.Bounds, opts Options) (Improver, error) {
	switch algo {
	case AlgoLocalSearch:
		return NewLocalSearch(ev, bounds, opts)
	case AlgoAnnealing:
		return NewAnnealer(ev, bounds, opts)
	case AlgoALNS:
		return NewALNS(ev, bounds, opts)
	default:
		return nil, ErrUnknownAlgorithm
	}
}

// Solve runs the whole pipeline: evaluator + bounds from the matrix, seed
// from the construction heuristics (best feasible of naive and greedy; the
// naive route is the fallback of record), then the requested driver.
func Solve(nodes []core.Node, m *matrix.DistanceMatrix, algo Algorithm, opts Options, progress Progress) (Result, error) {
	if err := core.ValidateNodeSet(nodes); err != nil {
		return Result{}, err
	}

	ev := eval.New(m)
	bounds := matrix.EstimateBounds(m)

	seed := NaiveRoute(nodes)
	seedM, err := ev.Evaluate(&seed)
	if err != nil {
		return Result{}, err
	}

	// A feasible greedy seed that beats the naive one is adopted; an
	// infeasible greedy chain is silently ignored.
	greedy := GreedyRoute(nodes, m)
	if gm, gErr := ev.Evaluate(&greedy); gErr == nil && gm.Objective < seedM.Objective {
		seed = greedy
	}

	imp, err := NewImprover(algo, ev, bounds, opts)
	if err != nil {
		return Result{}, err
	}

	return imp.Improve(seed, progress)
}
