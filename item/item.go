// SPDX-License-Identifier: MIT

package item

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CategoryConsumable tags items that are always somewhat useful (potions, food).
const CategoryConsumable = "consumable"

// ErrInvalidItem indicates an item with a negative weight, value, combat stat or score.
// Callers branch with errors.Is; the wrapping message names the field.
var ErrInvalidItem = errors.New("item: invalid item")

// Item is a raw catalog entry. Treat it as immutable.
type Item struct {
	ID       string    `json:"id" yaml:"id"`
	Instance uuid.UUID `json:"instance,omitempty" yaml:"instance,omitempty"`
	Name     string    `json:"name" yaml:"name"`
	Category string    `json:"category,omitempty" yaml:"category,omitempty"`
	Weight   int       `json:"weight" yaml:"weight"`
	Value    int       `json:"value" yaml:"value"`
	Attack   int       `json:"attack,omitempty" yaml:"attack,omitempty"`
	Defense  int       `json:"defense,omitempty" yaml:"defense,omitempty"`
	Image    string    `json:"image,omitempty" yaml:"image,omitempty"`
}

// Validate rejects negative weight, value, attack or defense.
func (it Item) Validate() error {
	switch {
	case it.Weight < 0:
		return fmt.Errorf("%w: %q weight %d < 0", ErrInvalidItem, it.Name, it.Weight)
	case it.Value < 0:
		return fmt.Errorf("%w: %q value %d < 0", ErrInvalidItem, it.Name, it.Value)
	case it.Attack < 0:
		return fmt.Errorf("%w: %q attack %d < 0", ErrInvalidItem, it.Name, it.Attack)
	case it.Defense < 0:
		return fmt.Errorf("%w: %q defense %d < 0", ErrInvalidItem, it.Name, it.Defense)
	}
	return nil
}

// IsConsumable reports whether the item carries the consumable category.
func (it Item) IsConsumable() bool {
	return it.Category == CategoryConsumable
}

// ScoredItem is an Item re-valued for one persona.
// Score replaces Value for optimization; EffectiveValue keeps the original
// base value so it can still be reported. Preferred is informational only.
type ScoredItem struct {
	Item
	Score          int  `json:"score" yaml:"score"`
	EffectiveValue int  `json:"effective_value" yaml:"effective_value"`
	Preferred      bool `json:"preferred,omitempty" yaml:"preferred,omitempty"`
}

// Validate checks the embedded item and rejects a negative score.
func (s ScoredItem) Validate() error {
	if err := s.Item.Validate(); err != nil {
		return err
	}
	if s.Score < 0 {
		return fmt.Errorf("%w: %q score %d < 0", ErrInvalidItem, s.Name, s.Score)
	}
	return nil
}

// Unscored wraps an item with Score = Value, for callers that optimize raw
// base values without a persona.
func Unscored(it Item) ScoredItem {
	return ScoredItem{Item: it, Score: it.Value, EffectiveValue: it.Value}
}
