// SPDX-License-Identifier: MIT

package loot

import (
	"time"

	"github.com/katalvlaran/rpgsack/item"
	"github.com/katalvlaran/rpgsack/persona"
)

// Result is the outcome of one reconciliation cycle.
// Kept and Discarded partition kept ++ loot exactly: every pool entry
// appears in one of them, once.
type Result struct {
	Kept       []item.ScoredItem
	Discarded  []item.ScoredItem
	TotalScore int

	// Loot is the new loot as it entered the pool: scored and stamped.
	Loot []item.ScoredItem

	// Overcarry is the pool weight before optimization.
	Overcarry int
}

// Weight is the total weight of the kept items.
func (r Result) Weight() int {
	return item.TotalWeight(r.Kept)
}

// Cycle summarizes a finished reconciliation for observers.
type Cycle struct {
	Persona    persona.Persona
	Capacity   int
	PoolSize   int
	Kept       int
	Discarded  int
	TotalScore int
	Overcarry  int
	Duration   time.Duration
}

// Observer receives a Cycle after every successful Reconcile.
type Observer interface {
	ObserveReconcile(Cycle)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Cycle)

// ObserveReconcile calls f.
func (f ObserverFunc) ObserveReconcile(c Cycle) {
	f(c)
}
