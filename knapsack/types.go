// SPDX-License-Identifier: MIT

package knapsack

import "github.com/katalvlaran/rpgsack/item"

// Result is the outcome of Solve.
type Result struct {
	// TotalScore is dp[n][capacity], the best achievable sum of Score.
	TotalScore int

	// Chosen holds the selected items in original index order.
	// Never nil; empty when nothing fits.
	Chosen []item.ScoredItem

	// Indices are the pool positions of Chosen, ascending.
	Indices []int

	// Weight is the total weight of Chosen (≤ capacity).
	Weight int

	// Table is the (n+1)×(capacity+1) dp matrix, only with WithTable().
	Table [][]int
}
