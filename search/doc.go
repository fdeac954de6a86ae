// Package search contains everything iterative: construction heuristics, the
// three neighborhood operators, and the three improvement drivers that share
// one evaluation substrate.
//
// Structure of a run:
//
//	construct (naive / greedy)  →  seed Route
//	seed Route  →  Improver (LocalSearch | Annealer | ALNS)
//	Improver loop: propose via operators → eval → accept/reject → progress
//	TerminationPolicy checked once per iteration boundary
//
// Drivers:
//
//   - LocalSearch: deterministic first-improvement over a fixed operator
//     cycle (2-opt, 3-opt, relocate); restarts the cycle after every accepted
//     move; stops on a fruitless full cycle or on the termination policy.
//     Monotone non-increasing by construction.
//   - Annealer: Metropolis acceptance with geometric cooling; uniform random
//     operator choice; one random feasible candidate per iteration with a
//     bounded resampling budget.
//   - ALNS: destroy/repair with roulette-wheel selection over an adaptive
//     weight vector {random, path, worst removal}, greedy feasible
//     reinsertion, and late-acceptance hill climbing over a fixed history.
//
// Design principles shared with the rest of the library:
//
//   - Deterministic: all randomness flows from Options.Seed through
//     independent per-driver streams; no time-based sources.
//   - Copy-on-propose: operators never mutate the route they are given; an
//     infeasible candidate is discarded inside the operator, never surfaced.
//   - Single evaluation authority: objective and feasibility come from the
//     eval package only. Δ makes textbook O(1) move deltas unsound, so every
//     candidate is evaluated by a full edge rescan.
//   - No logging; progress is a synchronous single-method observer that
//     receives route snapshots it may keep but must not treat as live.
package search
