// SPDX-License-Identifier: MIT

package loot

import "errors"

var (
	// ErrInvalidQuantity indicates a negative loot quantity.
	ErrInvalidQuantity = errors.New("loot: quantity must be non-negative")

	// ErrEmptyCatalog indicates a draw from a source with nothing to draw.
	ErrEmptyCatalog = errors.New("loot: catalog is empty")

	// ErrDuplicateInstance indicates two pool entries share one item.Instance.
	ErrDuplicateInstance = errors.New("loot: duplicate item instance in pool")
)
