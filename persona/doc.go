// SPDX-License-Identifier: MIT

// Package persona re-scores items for an archetype before optimization.
//
// The same physical sword is worth a lot to a melee fighter and almost
// nothing to an archer. Each Persona is a closed tag with one scoring
// profile: a linear combination of attack, defense and base value plus
// flat bonuses triggered by the item's name class. A universal consumable
// bonus is applied afterwards, then the result is clamped to ≥ 0 and
// truncated to an int so the knapsack can index with it.
//
// Profiles:
//
//	Persona   attack  defense  value  name rules
//	Balanced  ×1      ×1       ×1     -
//	Melee     ×6      ×1       ×¼     sword +30, bow −30
//	Defense   ×1      ×4       ×½     shield/nordic +25, sword +20
//	Ranged    -       -        ×½     bow: +½·value +3·attack +50
//	Wealth    -       -        ×2     -
//
//	every persona: consumable or healing name +15
//
// Unknown persona keys fall back to Balanced (Parse reports ok=false so the
// caller can log it). Scoring is pure and deterministic.
package persona
