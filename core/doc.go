// Package core provides the value types shared by every routespan component:
// Node, Route, and the parity transition rule that shapes the feasible search
// space.
//
// The model is deliberately small and copy-friendly:
//
//   - Node is an immutable {ID, X, Y} value; identity is the ID alone.
//     Node 0 is the origin depot; the highest ID is the destination depot.
//     IDs are contiguous 0..n-1 (the data layer validates this precondition).
//   - Route is an ordered ID sequence with value semantics: operators never
//     mutate a caller's Route, they build modified copies and propose them.
//     A Route carries a cache of its last evaluation (D, Δ, objective) that is
//     only readable after eval has stamped it.
//   - ForbiddenTransition encodes the parity rule: traveling i→j between
//     interior nodes is forbidden when i is even, j is odd and i < n/2, or
//     when i is odd, j is even and i ≥ n/2 (n = interior node count).
//
// Why value semantics?
//
// Three structurally different improvement drivers (local search, annealing,
// ALNS) share one evaluation substrate and may run concurrently on clones of
// the same instance. Copy-on-propose Routes eliminate aliasing between a
// driver's accepted route and the candidates its operators are still holding.
//
// The package has no dependencies and performs no I/O or logging.
package core
