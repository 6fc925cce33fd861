// SPDX-License-Identifier: MIT

package catalog

import "github.com/katalvlaran/rpgsack/item"

// dungeonItems is the built-in dungeon loot table.
var dungeonItems = []item.Item{
	{ID: "longsword", Name: "Espada Longa", Category: "weapon", Weight: 7, Value: 13, Attack: 10, Defense: 2, Image: "sword.jpg"},
	{ID: "oak-shield", Name: "Escudo de Carvalho", Category: "armor", Weight: 5, Value: 10, Defense: 6, Image: "shield.jpg"},
	{ID: "healing-potion", Name: "Poção de Cura", Category: item.CategoryConsumable, Weight: 2, Value: 4, Image: "potion.jpg"},
	{ID: "elven-bow", Name: "Arco Élfico", Category: "weapon", Weight: 4, Value: 9, Attack: 7, Image: "bow.png"},
	{ID: "auriel-bow", Name: "Arco de Auriel", Category: "weapon", Weight: 4, Value: 9, Attack: 9, Image: "auriel'sBow.png"},
	{ID: "glass-bow", Name: "Arco de Vidro", Category: "weapon", Weight: 4, Value: 9, Attack: 8, Image: "GlassBow_SK.webp"},
	{ID: "glass-shield", Name: "Escudo de Vidro", Category: "armor", Weight: 4, Value: 9, Defense: 7, Image: "glassShield.png"},
	{ID: "glass-sword", Name: "Espada de Vidro", Category: "weapon", Weight: 4, Value: 9, Attack: 8, Defense: 1, Image: "glassSword.png"},
	{ID: "nordic-shield", Name: "Escudo Nórdico", Category: "armor", Weight: 4, Value: 9, Defense: 6, Image: "nordicShield.png"},
}

// starterIDs is the backpack a new game begins with.
var starterIDs = []string{"oak-shield", "healing-potion", "elven-bow", "auriel-bow"}

// Default returns the built-in dungeon catalog.
func Default() *Catalog {
	c, err := New(dungeonItems)
	if err != nil {
		panic(err) // static table
	}
	return c
}

// Starter returns the starting backpack, drawn from c by id.
// Ids missing from c are skipped.
func Starter(c *Catalog) []item.Item {
	out := make([]item.Item, 0, len(starterIDs))
	for _, id := range starterIDs {
		if it, ok := c.Get(id); ok {
			out = append(out, it)
		}
	}
	return out
}
