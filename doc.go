// Package rpgsack is a backpack planner for dungeon-crawling RPGs.
//
// A hero carries a backpack with a weight limit. Every trip into the
// dungeon turns up loot, and the hero must decide what to keep. rpgsack
// answers that with an exact 0/1 knapsack over persona-weighted scores.
//
// What is inside:
//
//	item/      — Item and ScoredItem value types, weight/score totals
//	persona/   — five play styles and the scoring rules that rank items for them
//	knapsack/  — exact 0/1 knapsack DP (Solve, SolveValue) with a table cap
//	loot/      — Reconciler (kept ++ loot → kept/discarded), loot sources, Session
//	catalog/   — item catalogs from JSON or YAML, lookup with "did you mean"
//	backpack/  — SQLite save slots
//	metrics/   — Prometheus collectors for reconciliation cycles
//	config/    — flags, RPGSACK_* env and YAML config for the binaries
//
// Quick example:
//
//	rec := loot.NewReconciler()
//	res, err := rec.Reconcile(kept, found, persona.Ranged, 15)
//	// res.Kept fits in 15, res.Discarded is everything else
//
// Binaries:
//
//	cmd/rpgsack         — CLI: solve, loot, catalog, slots
//	cmd/rpgsack-lambda  — the Reconciler behind an AWS Lambda function URL
//
//	go install github.com/katalvlaran/rpgsack/cmd/rpgsack@latest
package rpgsack
