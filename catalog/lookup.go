// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/katalvlaran/rpgsack/item"
)

// maxSuggestions bounds the names listed in an ErrNotFound message.
const maxSuggestions = 3

// Lookup finds an entry by id or name, case-insensitively. On a miss the
// returned error wraps ErrNotFound and lists the closest names.
func (c *Catalog) Lookup(query string) (item.Item, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, it := range c.items {
		if strings.ToLower(it.ID) == q || strings.ToLower(it.Name) == q {
			return it, nil
		}
	}

	if s := c.Suggest(query); len(s) > 0 {
		return item.Item{}, fmt.Errorf("%w: %q (did you mean %s?)", ErrNotFound, query, strings.Join(s, ", "))
	}
	return item.Item{}, fmt.Errorf("%w: %q", ErrNotFound, query)
}

// Suggest returns up to three entry names close to query by edit distance,
// nearest first, ties broken by catalog order.
func (c *Catalog) Suggest(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	type candidate struct {
		name string
		dist int
		pos  int
	}
	var found []candidate
	for pos, it := range c.items {
		name := strings.ToLower(it.Name)
		dist := levenshtein.ComputeDistance(q, name)
		if d := levenshtein.ComputeDistance(q, strings.ToLower(it.ID)); d < dist {
			dist = d
		}
		if strings.Contains(name, q) {
			dist = 0
		}
		if dist > distanceLimit(len([]rune(q))) {
			continue
		}
		found = append(found, candidate{name: it.Name, dist: dist, pos: pos})
	}
	sort.SliceStable(found, func(i, j int) bool {
		if found[i].dist == found[j].dist {
			return found[i].pos < found[j].pos
		}
		return found[i].dist < found[j].dist
	})

	out := make([]string, 0, maxSuggestions)
	for _, f := range found {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, f.name)
	}
	return out
}

// distanceLimit grows the tolerated typo count with the query length.
func distanceLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}
