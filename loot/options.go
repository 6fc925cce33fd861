// SPDX-License-Identifier: MIT

package loot

import (
	"github.com/go-logr/logr"

	"github.com/katalvlaran/rpgsack/knapsack"
)

// ReconcilerOption configures a Reconciler.
type ReconcilerOption func(*Reconciler)

// WithLogger sets the logger; cycles are logged at V(1).
func WithLogger(l logr.Logger) ReconcilerOption {
	return func(r *Reconciler) {
		r.log = l
	}
}

// WithObserver registers a hook called after every successful cycle.
// Panics on nil.
func WithObserver(o Observer) ReconcilerOption {
	if o == nil {
		panic("loot: WithObserver(nil)")
	}
	return func(r *Reconciler) {
		r.observers = append(r.observers, o)
	}
}

// WithSolverOptions forwards options to every knapsack.Solve call,
// e.g. knapsack.WithMaxCells as a backpressure ceiling.
func WithSolverOptions(opts ...knapsack.Option) ReconcilerOption {
	return func(r *Reconciler) {
		r.solverOpts = append(r.solverOpts, opts...)
	}
}

// WithRescoreKept re-scores the kept items for the active persona before
// merging. Without it, kept items keep the score they were kept with.
func WithRescoreKept() ReconcilerOption {
	return func(r *Reconciler) {
		r.rescoreKept = true
	}
}
