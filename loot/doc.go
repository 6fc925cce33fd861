// SPDX-License-Identifier: MIT

// Package loot runs the loot-and-reconcile loop on top of persona and
// knapsack.
//
// One cycle:
//
//	loot ──score(persona)──┐
//	                       ├─ pool = kept ++ loot ─ knapsack.Solve ─┬─ Kept
//	kept (already scored) ─┘                                        └─ Discarded
//
// Every pool element gets a per-copy uuid (item.Instance) on entry, and the
// kept/discarded partition is taken from the optimizer's chosen pool
// indices. Two copies with identical fields are therefore never confused:
// exactly the copy the optimizer skipped is reported as discarded.
//
// The Reconciler is stateless and safe for concurrent use. The "current
// backpack" belongs to the caller; Session is a small helper that carries
// it from one cycle to the next.
//
// Randomness is injected: CatalogSource draws with a caller-supplied
// *rand.Rand (or a fixed default seed), so a cycle with a given loot list
// is fully deterministic.
package loot
