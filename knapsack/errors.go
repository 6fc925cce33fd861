// SPDX-License-Identifier: MIT

package knapsack

import (
	"errors"

	"github.com/katalvlaran/rpgsack/item"
)

// Sentinel errors. Branch with errors.Is; the wrapped message adds context.
var (
	// ErrInvalidCapacity indicates a negative capacity. It is never clamped.
	ErrInvalidCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrInvalidItem is item.ErrInvalidItem, re-exported so callers of this
	// package need not import item just to branch on it.
	ErrInvalidItem = item.ErrInvalidItem

	// ErrTableTooLarge indicates (n+1)·(capacity+1) exceeds the configured ceiling.
	ErrTableTooLarge = errors.New("knapsack: dp table exceeds cell limit")
)
