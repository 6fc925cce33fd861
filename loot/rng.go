// SPDX-License-Identifier: MIT

package loot

import "math/rand"

// DefaultSeed is used when callers pass seed == 0, keeping "no seed" runs
// reproducible instead of time-based.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// math/rand.Rand is not goroutine-safe; CatalogSource guards its own.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
