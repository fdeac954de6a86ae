// Package routespan is a route optimizer for open tours with
// parity-coupled transition constraints: build an instance, pick a
// metaheuristic, and solve for the shortest low-variance route.
//
// 🚀 What is routespan?
//
//	A deterministic, library-first solver that brings together:
//		• Core primitives: nodes, depot conventions, immutable routes
//		• Distance matrices: rounded-up Euclidean, O(1) lookup, instance bounds
//		• Evaluation: feasibility invariants + the L·Δ + D objective
//		• Neighborhoods: 2-opt, 3-opt, segment relocate
//		• Drivers: first-improvement local search, simulated annealing,
//		  adaptive large-neighbourhood search with late acceptance
//		• I/O: CSV node loading, canonical text reports
//
// ✨ Why choose routespan?
//
//   - Reproducible – every random decision flows from one seed
//   - Feasibility-safe – candidates are re-validated before they are offered
//   - Observable – per-iteration progress callbacks on every driver
//   - Composable – drivers, operators and evaluators are plain values
//
// Under the hood, everything is organized under six subpackages:
//
//	core/   — Node, Route, depot conventions, the parity transition rule
//	matrix/ — DistanceMatrix construction, extremes, bounds, the L constant
//	eval/   — feasibility checking and objective evaluation
//	search/ — construction heuristics, operators, the three drivers
//	dataio/ — CSV node input
//	report/ — canonical result rendering and export
//
// Quick objective sketch:
//
//	objective(R) = L·Δ(R) + D(R)
//
//	where D is the total route length, Δ the spread (max−min) of its
//	traversed edges, and L = maxD·interior scales Δ to the instance.
//
// Dive into the cmd/routespan binary for the end-to-end pipeline: load
// nodes, solve with the chosen algorithm, write the report.
//
//	go get github.com/katalvlaran/routespan
package routespan
