// SPDX-License-Identifier: MIT

// Package catalog loads the fixed set of items loot is drawn from.
//
// Sources:
//   - JSON (.json) — an array of objects in the dungeon items.json shape:
//     {"name": "Espada Longa", "weight": 7, "value": 13, "image": "sword.jpg",
//     "type": "weapon", "stats": {"attack": 10, "defense": 2}}.
//     Flat "attack"/"defense" and "category"/"id" keys are accepted too.
//   - YAML (.yaml/.yml) — the same fields as a list.
//   - Default() — the built-in dungeon catalog.
//
// Every entry is validated; an entry without an id gets one derived from its
// name. Lookup matches ids and names case-insensitively and, on a miss,
// suggests the nearest names by edit distance.
package catalog
