// Package search: shared result/move types and sentinel errors.
package search

import (
	"errors"
	"time"

	"github.com/katalvlaran/routespan/core"
	"github.com/katalvlaran/routespan/eval"
)

// Sentinel errors. Tests match them via errors.Is.
var (
	// ErrBadOptions is returned by constructors on an invalid Options field.
	ErrBadOptions = errors.New("search: invalid options")

	// ErrUnknownAlgorithm is returned by the dispatcher for an unrecognized
	// algorithm selector.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrRepairFailed signals that an ALNS repair could not place a removed
	// node feasibly anywhere. The whole destroy/repair attempt is discarded;
	// the error never escapes the improver.
	ErrRepairFailed = errors.New("search: repair could not rebuild a feasible route")
)

// OperatorKind tags the move family that produced a candidate.
type OperatorKind uint8

const (
	// KindTwoOpt reverses one interior segment.
	KindTwoOpt OperatorKind = iota
	// KindThreeOpt removes three edges and reconnects the segments.
	KindThreeOpt
	// KindRelocate excises a short segment and reinserts it elsewhere.
	KindRelocate
	// KindDestroyRepair is the ALNS compound move.
	KindDestroyRepair
)

// String returns the operator name used in diagnostics and progress traces.
func (k OperatorKind) String() string {
	switch k {
	case KindTwoOpt:
		return "2-opt"
	case KindThreeOpt:
		return "3-opt"
	case KindRelocate:
		return "relocate"
	case KindDestroyRepair:
		return "destroy-repair"
	default:
		return "unknown"
	}
}

// Move describes one candidate transformation. Moves are transient: produced
// and consumed within a single improvement iteration, never persisted.
type Move struct {
	Kind OperatorKind

	// I, J, K are the positions the move touches. 2-opt uses I..J; 3-opt
	// uses the cuts I<J<K; relocate uses I (source) and J (target).
	I, J, K int

	// Reconnect selects the 3-opt reconnection variant (1..7; 0 is the
	// identity and is never proposed).
	Reconnect int

	// SegLen and Reversed describe the relocated segment.
	SegLen   int
	Reversed bool

	// Delta is objective(candidate) − objective(current), filled once the
	// candidate has been evaluated.
	Delta float64
}

// StopReason reports why an improver returned. Diagnostic only; independent
// of the numeric result.
type StopReason uint8

const (
	// StopNoImprovement: a full operator cycle produced no improving move
	// (local search's natural fixed point).
	StopNoImprovement StopReason = iota
	// StopTimeLimit: wall-clock budget exhausted.
	StopTimeLimit
	// StopIterationLimit: iteration budget exhausted.
	StopIterationLimit
	// StopBoundReached: best objective within epsilon of the lower bound.
	StopBoundReached
	// StopTemperatureFloor: annealing temperature fell below the minimum.
	StopTemperatureFloor
)

// String returns a stable diagnostic name.
func (r StopReason) String() string {
	switch r {
	case StopNoImprovement:
		return "no improvement"
	case StopTimeLimit:
		return "time limit"
	case StopIterationLimit:
		return "iteration limit"
	case StopBoundReached:
		return "lower bound reached"
	case StopTemperatureFloor:
		return "temperature floor"
	default:
		return "unknown"
	}
}

// Result is the outcome of one improver run. Non-convergence is a normal
// outcome: the route is the best known, possibly the seed itself.
type Result struct {
	// Route is the best feasible route found.
	Route core.Route

	// Metrics are the evaluated D, Δ and objective of Route.
	Metrics eval.Metrics

	// Iterations is the number of iteration boundaries passed.
	Iterations int

	// Duration is the wall-clock time spent inside Improve.
	Duration time.Duration

	// Stopped names the condition that ended the run.
	Stopped StopReason
}
