// SPDX-License-Identifier: MIT

package item

import "github.com/google/uuid"

// Weighted is satisfied by Item and ScoredItem (through embedding).
type Weighted interface {
	weight() int
}

func (it Item) weight() int { return it.Weight }

// TotalWeight sums the weights of items.
func TotalWeight[T Weighted](items []T) int {
	total := 0
	for _, it := range items {
		total += it.weight()
	}
	return total
}

// TotalScore sums Score over scored items.
func TotalScore(items []ScoredItem) int {
	total := 0
	for _, it := range items {
		total += it.Score
	}
	return total
}

// TotalValue sums the preserved base values over scored items.
func TotalValue(items []ScoredItem) int {
	total := 0
	for _, it := range items {
		total += it.EffectiveValue
	}
	return total
}

// Stamp gives every zero-instance item a fresh uuid, in place.
// Items that already carry an instance keep it.
func Stamp(items []ScoredItem) {
	for i := range items {
		if items[i].Instance == uuid.Nil {
			items[i].Instance = uuid.New()
		}
	}
}

// Raw strips scores and returns the underlying items in the same order.
func Raw(items []ScoredItem) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it.Item
	}
	return out
}
