// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/katalvlaran/rpgsack/item"
)

// Catalog is an ordered, immutable set of items indexed by id.
type Catalog struct {
	items []item.Item
	byID  map[string]int
}

// New validates items, fills missing ids and indexes them.
// Instances are cleared: catalog entries are templates, not copies.
func New(items []item.Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]item.Item, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	for i, it := range items {
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: entry %d: %w", i, err)
		}
		if it.ID == "" {
			it.ID = Slug(it.Name)
		}
		if it.ID == "" {
			return nil, fmt.Errorf("%w: entry %d has neither id nor name", ErrMalformed, i)
		}
		if j, dup := c.byID[it.ID]; dup {
			return nil, fmt.Errorf("%w: %q at entries %d and %d", ErrDuplicateID, it.ID, j, i)
		}
		it.Instance = uuid.Nil
		c.items[i] = it
		c.byID[it.ID] = i
	}
	return c, nil
}

// Items returns a copy of the entries in catalog order.
func (c *Catalog) Items() []item.Item {
	return append([]item.Item(nil), c.items...)
}

// Len is the number of entries.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Get returns the entry with the exact id.
func (c *Catalog) Get(id string) (item.Item, bool) {
	i, ok := c.byID[id]
	if !ok {
		return item.Item{}, false
	}
	return c.items[i], true
}

// Slug lowercases name and joins its letter/digit runs with '-'.
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}
