// SPDX-License-Identifier: MIT

package knapsack

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rpgsack/item"
)

// Solve returns the maximum-score subset of items whose total weight does
// not exceed capacity.
//
// Contracts:
//   - capacity ≥ 0, otherwise ErrInvalidCapacity.
//   - every item has Weight ≥ 0 and Score ≥ 0, otherwise ErrInvalidItem.
//   - an item heavier than capacity is never chosen.
//   - on error the zero Result is returned; there are no partial results.
//
// Complexity: O(n·capacity) time and memory.
func Solve(items []item.ScoredItem, capacity int, opts ...Option) (Result, error) {
	o := gatherOptions(opts)

	// --- 1. Validate inputs before allocating anything ---
	if err := validate(items, capacity); err != nil {
		return Result{}, err
	}
	if err := checkCells(int64(len(items))+1, capacity, o.MaxCells); err != nil {
		return Result{}, err
	}

	// --- 2. Fill the table ---
	n := len(items)
	dp := newTable(n+1, capacity+1)
	for i := 1; i <= n; i++ {
		wi, si := items[i-1].Weight, items[i-1].Score
		prev, cur := dp[i-1], dp[i]
		for w := 0; w <= capacity; w++ {
			cur[w] = prev[w] // skip item i-1
			if wi <= w {
				if take := prev[w-wi] + si; take > cur[w] {
					cur[w] = take
				}
			}
		}
	}

	// --- 3. Walk back from (n, capacity) ---
	var indices []int
	w := capacity
	for i := n; i > 0; i-- {
		if dp[i][w] != dp[i-1][w] {
			indices = append(indices, i-1)
			w -= items[i-1].Weight
		}
	}
	reverseInts(indices)

	res := Result{
		TotalScore: dp[n][capacity],
		Chosen:     make([]item.ScoredItem, 0, len(indices)),
		Indices:    indices,
	}
	for _, idx := range indices {
		res.Chosen = append(res.Chosen, items[idx])
		res.Weight += items[idx].Weight
	}
	if res.Indices == nil {
		res.Indices = []int{}
	}
	if o.KeepTable {
		res.Table = dp
	}

	return res, nil
}

// SolveValue returns only the optimal score, using a single row of
// capacity+1 cells. It agrees with Solve(items, capacity).TotalScore.
//
// Complexity: O(n·capacity) time, O(capacity) memory.
func SolveValue(items []item.ScoredItem, capacity int, opts ...Option) (int, error) {
	o := gatherOptions(opts)
	if err := validate(items, capacity); err != nil {
		return 0, err
	}
	if err := checkCells(1, capacity, o.MaxCells); err != nil {
		return 0, err
	}

	row := make([]int, capacity+1)
	for _, it := range items {
		// descending w so each item is used at most once
		for w := capacity; w >= it.Weight; w-- {
			if take := row[w-it.Weight] + it.Score; take > row[w] {
				row[w] = take
			}
		}
	}
	return row[capacity], nil
}

func validate(items []item.ScoredItem, capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	for i, it := range items {
		if it.Weight < 0 {
			return fmt.Errorf("%w: items[%d] weight %d < 0", ErrInvalidItem, i, it.Weight)
		}
		if it.Score < 0 {
			return fmt.Errorf("%w: items[%d] score %d < 0", ErrInvalidItem, i, it.Score)
		}
	}
	return nil
}

// checkCells rejects rows×(capacity+1) tables that overflow int or exceed maxCells.
func checkCells(rows int64, capacity int, maxCells int64) error {
	if int64(capacity) > math.MaxInt/rows-1 {
		return fmt.Errorf("%w: %d rows × capacity %d overflows", ErrTableTooLarge, rows, capacity)
	}
	if cells := rows * (int64(capacity) + 1); maxCells > 0 && cells > maxCells {
		return fmt.Errorf("%w: %d cells > %d", ErrTableTooLarge, cells, maxCells)
	}
	return nil
}

// newTable allocates rows×cols ints on one backing array.
func newTable(rows, cols int) [][]int {
	backing := make([]int, rows*cols)
	t := make([][]int, rows)
	for i := range t {
		t[i] = backing[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return t
}

func reverseInts(a []int) {
	for l, r := 0, len(a)-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}
}
