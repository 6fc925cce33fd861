// SPDX-License-Identifier: MIT

package persona

import (
	"strings"

	"github.com/katalvlaran/rpgsack/item"
)

// Score returns the utility of it for persona p: never negative, truncated.
// An out-of-range p is scored as Balanced.
//
// Score does not validate it; ScoreItem does.
func Score(it item.Item, p Persona) int {
	if !p.Valid() {
		p = Balanced
	}
	prof := profiles[p]
	name := strings.ToLower(it.Name)

	s := prof.base.apply(it)
	for _, r := range prof.rules {
		if r.class.matches(name) {
			s += r.add.apply(it)
		}
	}
	if it.IsConsumable() || classHealing.matches(name) {
		s += consumableBonus
	}

	if s < 0 {
		return 0
	}
	return int(s)
}

func (c coeffs) apply(it item.Item) float64 {
	return c.attack*float64(it.Attack) +
		c.defense*float64(it.Defense) +
		c.value*float64(it.Value) +
		c.flat
}

// ScoreItem validates it and returns it scored for p.
// Preferred is set when the score exceeds twice the base value.
func ScoreItem(it item.Item, p Persona) (item.ScoredItem, error) {
	if err := it.Validate(); err != nil {
		return item.ScoredItem{}, err
	}
	score := Score(it, p)
	return item.ScoredItem{
		Item:           it,
		Score:          score,
		EffectiveValue: it.Value,
		Preferred:      score > 2*it.Value,
	}, nil
}

// ScoreAll scores every item for p, preserving order.
// The first invalid item aborts the whole call; no partial slice is returned.
func ScoreAll(items []item.Item, p Persona) ([]item.ScoredItem, error) {
	out := make([]item.ScoredItem, len(items))
	for i, it := range items {
		s, err := ScoreItem(it, p)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
