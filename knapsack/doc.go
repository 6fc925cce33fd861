// SPDX-License-Identifier: MIT

// Package knapsack selects an optimal subset of scored items under a single
// integer weight budget (exact 0/1 knapsack).
//
// What it does:
//
//	Given items with integer Weight and Score and a capacity W, Solve finds
//	the maximum total score of a subset whose total weight is ≤ W, and
//	returns that subset in original index order.
//
// Algorithm (bounded-weight dynamic program):
//
//	dp[0][w] = 0
//	dp[i][w] = dp[i-1][w]                                  if weight(i-1) > w
//	dp[i][w] = max(dp[i-1][w], dp[i-1][w-weight]+score)    otherwise
//
//	best = dp[n][W]; reconstruction walks i = n..1 and takes item i-1 only
//	when dp[i][w] != dp[i-1][w]. Ties therefore resolve toward NOT taking
//	the later-indexed item, deterministically for a fixed item order.
//
// Memory:
//   - Solve keeps the full (n+1)×(W+1) table (needed for reconstruction)
//     and drops it before returning unless WithTable() is given.
//   - SolveValue keeps a single row, O(W) memory, and returns only the score.
//   - WithMaxCells(limit) lets callers refuse oversized tables up front.
//
// Complexity:
//
//	Time   = O(n·W)
//	Memory = O(n·W) (Solve) or O(W) (SolveValue)
//
// Errors:
//   - ErrInvalidCapacity — capacity < 0 (checked before any allocation).
//   - ErrInvalidItem     — negative weight or score (same sentinel as package item).
//   - ErrTableTooLarge   — the table would exceed WithMaxCells.
//
// Solve and SolveValue share no state and are safe to call concurrently.
package knapsack
