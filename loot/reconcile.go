// SPDX-License-Identifier: MIT

package loot

import (
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/katalvlaran/rpgsack/item"
	"github.com/katalvlaran/rpgsack/knapsack"
	"github.com/katalvlaran/rpgsack/persona"
)

// Reconciler merges newly found loot into a kept set and re-optimizes.
// The zero value is not usable; call NewReconciler.
type Reconciler struct {
	log         logr.Logger
	observers   []Observer
	solverOpts  []knapsack.Option
	rescoreKept bool
}

// NewReconciler returns a Reconciler with a discarding logger and no observers.
func NewReconciler(opts ...ReconcilerOption) *Reconciler {
	r := &Reconciler{log: logr.Discard()}
	for _, fn := range opts {
		if fn != nil {
			fn(r)
		}
	}
	return r
}

// Reconcile scores loot for p, merges it after kept, solves the knapsack at
// capacity and partitions the pool into Kept and Discarded.
//
// Contracts:
//   - capacity ≥ 0, otherwise knapsack.ErrInvalidCapacity.
//   - every kept and loot item is valid, otherwise item.ErrInvalidItem.
//   - pool instances are unique, otherwise ErrDuplicateInstance; entries
//     without an instance get a fresh one.
//   - the inputs are never modified; on error nothing is returned.
//
// Complexity: O((k+l)·capacity) for k kept and l loot items.
func (r *Reconciler) Reconcile(kept []item.ScoredItem, loot []item.Item, p persona.Persona, capacity int) (Result, error) {
	start := time.Now()

	if capacity < 0 {
		return Result{}, fmt.Errorf("reconcile: %w: got %d", knapsack.ErrInvalidCapacity, capacity)
	}

	// --- 1. Build the pool: kept first, then scored loot ---
	pool := make([]item.ScoredItem, 0, len(kept)+len(loot))
	for i, k := range kept {
		if r.rescoreKept {
			rescored, err := persona.ScoreItem(k.Item, p)
			if err != nil {
				return Result{}, fmt.Errorf("reconcile: kept[%d]: %w", i, err)
			}
			k = rescored
		} else if err := k.Validate(); err != nil {
			return Result{}, fmt.Errorf("reconcile: kept[%d]: %w", i, err)
		}
		pool = append(pool, k)
	}
	scoredLoot, err := persona.ScoreAll(loot, p)
	if err != nil {
		return Result{}, fmt.Errorf("reconcile: loot: %w", err)
	}
	pool = append(pool, scoredLoot...)

	// --- 2. Give every copy its own identity ---
	item.Stamp(pool)
	if err := uniqueInstances(pool); err != nil {
		return Result{}, err
	}

	// --- 3. Optimize ---
	sel, err := knapsack.Solve(pool, capacity, r.solverOpts...)
	if err != nil {
		return Result{}, fmt.Errorf("reconcile: %w", err)
	}

	// --- 4. Partition by pool index ---
	res := Result{
		Kept:       sel.Chosen,
		Discarded:  make([]item.ScoredItem, 0, len(pool)-len(sel.Chosen)),
		TotalScore: sel.TotalScore,
		Loot:       append([]item.ScoredItem(nil), pool[len(kept):]...),
		Overcarry:  item.TotalWeight(pool),
	}
	next := 0
	for i := range pool {
		if next < len(sel.Indices) && sel.Indices[next] == i {
			next++
			continue
		}
		res.Discarded = append(res.Discarded, pool[i])
	}

	cycle := Cycle{
		Persona:    p,
		Capacity:   capacity,
		PoolSize:   len(pool),
		Kept:       len(res.Kept),
		Discarded:  len(res.Discarded),
		TotalScore: res.TotalScore,
		Overcarry:  res.Overcarry,
		Duration:   time.Since(start),
	}
	r.log.V(1).Info("reconciled loot",
		"persona", p.String(),
		"capacity", capacity,
		"pool", cycle.PoolSize,
		"kept", cycle.Kept,
		"discarded", cycle.Discarded,
		"score", cycle.TotalScore,
		"overcarry", cycle.Overcarry)
	for _, o := range r.observers {
		o.ObserveReconcile(cycle)
	}

	return res, nil
}

func uniqueInstances(pool []item.ScoredItem) error {
	seen := make(map[uuid.UUID]int, len(pool))
	for i, it := range pool {
		if j, dup := seen[it.Instance]; dup {
			return fmt.Errorf("%w: pool[%d] and pool[%d] share %s", ErrDuplicateInstance, j, i, it.Instance)
		}
		seen[it.Instance] = i
	}
	return nil
}
