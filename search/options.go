// Package search - one explicit configuration record for all drivers.
//
// Every tunable lives here and is passed into constructors by value; no
// process-wide mutable state. Loading (env, flags) is the binary's business -
// the library only consumes the values. Validation is split per concern so a
// driver rejects exactly the fields it reads.
package search

import "time"

// Options collects all search tunables. The zero value is NOT usable; start
// from DefaultOptions and override.
type Options struct {
	// MaxIterations stops a driver after this many iteration boundaries.
	// 0 means unlimited (ALNS then requires MaxDuration > 0).
	MaxIterations int

	// MaxDuration is the wall-clock budget. 0 means unlimited. Checked only
	// at iteration boundaries; an in-flight candidate always completes.
	MaxDuration time.Duration

	// BoundEps: stop once best ≤ lower bound + BoundEps.
	BoundEps float64

	// Eps is the strict-improvement tolerance: a candidate improves only if
	// its objective is below current − Eps. Guards against FP noise cycling.
	Eps float64

	// Annealing schedule: start temperature, geometric cooling factor in
	// (0,1), and the floor that ends the run.
	InitTemp    float64
	CoolingRate float64
	MinTemp     float64

	// ALNS removal sizing: a fixed count, or - when RemovalCount is 0 - a
	// fraction of the interior node count (at least one node).
	RemovalCount    int
	RemovalFraction float64

	// HistoryLength is the late-acceptance ring size H.
	HistoryLength int

	// WeightDecay is the EMA factor for destroy-operator weights, in (0,1].
	WeightDecay float64

	// MaxSegment bounds the contiguous segment length used by relocate and
	// by ALNS path removal.
	MaxSegment int

	// RandomRetries bounds resampling when a random candidate draw keeps
	// hitting infeasible moves.
	RandomRetries int

	// Seed drives every random stream. 0 selects a fixed default seed, so
	// the zero value is still deterministic.
	Seed int64
}

// DefaultOptions returns conservative defaults suitable for instances in the
// low hundreds of nodes.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 10_000,
		MaxDuration:   0,
		BoundEps:      1e-6,
		Eps:           1e-9,

		InitTemp:    1_000.0,
		CoolingRate: 0.995,
		MinTemp:     1e-3,

		RemovalCount:    0,
		RemovalFraction: 0.2,
		HistoryLength:   50,
		WeightDecay:     0.1,

		MaxSegment:    3,
		RandomRetries: 30,

		Seed: 0,
	}
}

// validateCommon checks the fields every driver reads.
func (o Options) validateCommon() error {
	if o.MaxIterations < 0 || o.MaxDuration < 0 {
		return ErrBadOptions
	}
	if o.BoundEps < 0 || o.Eps < 0 {
		return ErrBadOptions
	}
	if o.MaxSegment < 1 || o.RandomRetries < 1 {
		return ErrBadOptions
	}

	return nil
}

// validateAnnealing checks the Metropolis schedule.
func (o Options) validateAnnealing() error {
	if err := o.validateCommon(); err != nil {
		return err
	}
	if o.InitTemp <= 0 || o.MinTemp <= 0 || o.MinTemp >= o.InitTemp {
		return ErrBadOptions
	}
	if o.CoolingRate <= 0 || o.CoolingRate >= 1 {
		return ErrBadOptions
	}

	return nil
}

// validateALNS checks destroy/repair bookkeeping. ALNS has no natural fixed
// point, so at least one hard budget must be set.
func (o Options) validateALNS() error {
	if err := o.validateCommon(); err != nil {
		return err
	}
	if o.MaxIterations == 0 && o.MaxDuration == 0 {
		return ErrBadOptions
	}
	if o.RemovalCount < 0 {
		return ErrBadOptions
	}
	if o.RemovalCount == 0 && (o.RemovalFraction <= 0 || o.RemovalFraction > 1) {
		return ErrBadOptions
	}
	if o.HistoryLength < 1 {
		return ErrBadOptions
	}
	if o.WeightDecay <= 0 || o.WeightDecay > 1 {
		return ErrBadOptions
	}

	return nil
}
