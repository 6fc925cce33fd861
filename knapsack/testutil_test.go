package knapsack_test

import (
	"math/rand"

	"github.com/katalvlaran/rpgsack/item"
)

// scored builds anonymous scored items from (weight, score) pairs.
func scored(pairs ...[2]int) []item.ScoredItem {
	out := make([]item.ScoredItem, len(pairs))
	for i, p := range pairs {
		out[i] = item.ScoredItem{Item: item.Item{Weight: p[0], Value: p[1]}, Score: p[1], EffectiveValue: p[1]}
	}
	return out
}

// randomItems draws n items with weights in [0,maxW] and scores in [0,maxS].
func randomItems(rng *rand.Rand, n, maxW, maxS int) []item.ScoredItem {
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{rng.Intn(maxW + 1), rng.Intn(maxS + 1)}
	}
	return scored(pairs...)
}

// bruteForce enumerates every subset and returns the best feasible score.
func bruteForce(items []item.ScoredItem, capacity int) int {
	best := 0
	n := len(items)
	for mask := 0; mask < 1<<n; mask++ {
		w, s := 0, 0
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				w += items[i].Weight
				s += items[i].Score
			}
		}
		if w <= capacity && s > best {
			best = s
		}
	}
	return best
}
