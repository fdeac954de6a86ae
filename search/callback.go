// Package search - the progress observer interface.
//
// A Progress implementation is invoked synchronously once per iteration of
// whichever driver is active. The core makes no assumption about what the
// callback does (render, persist, ignore) and the callback must not block
// indefinitely - it runs on the driver's goroutine. The route it receives is
// an independent snapshot; keeping it is fine, mutating it affects nothing.
package search

import "github.com/katalvlaran/routespan/core"

// Iteration is the per-boundary progress record handed to observers.
type Iteration struct {
	// Index counts iteration boundaries from 0.
	Index int

	// Current is the objective of the driver's working route after this
	// iteration; Best is the best-so-far objective.
	Current float64
	Best    float64

	// Improved reports whether this iteration lowered Best.
	Improved bool

	// Route is a snapshot clone of the working route.
	Route core.Route
}

// Progress observes iterations. Implementations run synchronously on the
// driver's goroutine.
type Progress interface {
	OnIteration(it Iteration)
}

// ProgressFunc adapts a plain function to Progress.
type ProgressFunc func(Iteration)

// OnIteration implements Progress.
func (f ProgressFunc) OnIteration(it Iteration) { f(it) }

// emit guards against nil observers so drivers can call it unconditionally.
func emit(p Progress, it Iteration) {
	if p != nil {
		p.OnIteration(it)
	}
}
