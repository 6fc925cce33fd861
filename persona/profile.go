// SPDX-License-Identifier: MIT

package persona

import "strings"

// consumableBonus is added for every persona to consumables and healing items.
const consumableBonus = 15

// nameClass is a family of case-insensitive substrings matched against Item.Name.
type nameClass []string

var (
	classSword   = nameClass{"sword", "blade", "espada"}
	classBow     = nameClass{"bow", "arco"}
	classGuard   = nameClass{"shield", "escudo", "nordic", "nórdico", "nordico"}
	classHealing = nameClass{"potion", "healing", "poção", "pocao", "cura"}
)

func (c nameClass) matches(lowerName string) bool {
	for _, s := range c {
		if strings.Contains(lowerName, s) {
			return true
		}
	}
	return false
}

// coeffs is one linear term: attack·a + defense·d + value·v + flat.
type coeffs struct {
	attack, defense, value, flat float64
}

// rule adds its coefficients when the name matches class.
type rule struct {
	class nameClass
	add   coeffs
}

type profile struct {
	key     string
	aliases []string
	base    coeffs
	rules   []rule
}

// profiles is indexed by Persona; adding a persona means adding a row here.
var profiles = [personaCount]profile{
	Balanced: {
		key:     "balanced",
		aliases: []string{"imperial"},
		base:    coeffs{attack: 1, defense: 1, value: 1},
	},
	Melee: {
		key:     "melee",
		aliases: []string{"orc"},
		base:    coeffs{attack: 6, defense: 1, value: 0.25},
		rules: []rule{
			{class: classSword, add: coeffs{flat: 30}},
			{class: classBow, add: coeffs{flat: -30}},
		},
	},
	Defense: {
		key:     "defense",
		aliases: []string{"nord"},
		base:    coeffs{attack: 1, defense: 4, value: 0.5},
		rules: []rule{
			{class: classGuard, add: coeffs{flat: 25}},
			{class: classSword, add: coeffs{flat: 20}},
		},
	},
	Ranged: {
		key:     "ranged",
		aliases: []string{"wood_elf", "bosmer"},
		base:    coeffs{value: 0.5},
		rules: []rule{
			{class: classBow, add: coeffs{attack: 3, value: 0.5, flat: 50}},
		},
	},
	Wealth: {
		key:     "wealth",
		aliases: []string{"khajiit"},
		base:    coeffs{value: 2},
	},
}
