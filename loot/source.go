// SPDX-License-Identifier: MIT

package loot

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/rpgsack/item"
)

// DefaultQuantity is the number of items found per dungeon visit.
const DefaultQuantity = 3

// Source supplies raw loot. Implementations decide where randomness comes from.
type Source interface {
	Draw(quantity int) ([]item.Item, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(quantity int) ([]item.Item, error)

// Draw calls f.
func (f SourceFunc) Draw(quantity int) ([]item.Item, error) {
	return f(quantity)
}

// CatalogSource draws uniformly, independently and with replacement from a
// fixed catalog. It is safe for concurrent use.
type CatalogSource struct {
	mu    sync.Mutex
	items []item.Item
	rng   *rand.Rand
}

// NewCatalogSource copies items and draws with rng (nil ⇒ NewRand(0)).
func NewCatalogSource(items []item.Item, rng *rand.Rand) *CatalogSource {
	if rng == nil {
		rng = NewRand(0)
	}
	return &CatalogSource{
		items: append([]item.Item(nil), items...),
		rng:   rng,
	}
}

// Draw returns quantity independent uniform picks. Drawn copies carry no
// instance; one is stamped when they enter a reconciliation pool.
//
// Complexity: O(quantity).
func (c *CatalogSource) Draw(quantity int) ([]item.Item, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	if quantity == 0 {
		return []item.Item{}, nil
	}
	if len(c.items) == 0 {
		return nil, ErrEmptyCatalog
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]item.Item, quantity)
	for i := range out {
		it := c.items[c.rng.Intn(len(c.items))]
		it.Instance = uuid.Nil
		out[i] = it
	}
	return out, nil
}

// Len is the catalog size.
func (c *CatalogSource) Len() int {
	return len(c.items)
}
