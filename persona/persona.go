// SPDX-License-Identifier: MIT

package persona

import "strings"

// Persona is a named preference profile. The zero value is Balanced.
type Persona int

const (
	// Balanced values base value plus raw combat stats.
	Balanced Persona = iota
	// Melee favors attack and swords, despises bows.
	Melee
	// Defense favors defense, shields and its own culture's gear.
	Defense
	// Ranged only cares for bows; everything else is half price.
	Ranged
	// Wealth only cares for coin: double base value.
	Wealth

	personaCount
)

// All returns every persona in declaration order.
func All() []Persona {
	out := make([]Persona, 0, personaCount)
	for p := Balanced; p < personaCount; p++ {
		out = append(out, p)
	}
	return out
}

// String returns the canonical key of p.
func (p Persona) String() string {
	if !p.Valid() {
		return "unknown"
	}
	return profiles[p].key
}

// Valid reports whether p is one of the declared personas.
func (p Persona) Valid() bool {
	return p >= Balanced && p < personaCount
}

// Parse maps a key to a Persona, case-insensitively. Both the role keys
// ("melee", "ranged", ...) and the race aliases ("orc", "wood_elf", ...) are
// accepted. An unrecognized key yields (Balanced, false): the fallback is
// policy, not an error.
func Parse(key string) (Persona, bool) {
	k := strings.ToLower(strings.TrimSpace(key))
	k = strings.ReplaceAll(k, "-", "_")
	for p := Balanced; p < personaCount; p++ {
		if profiles[p].key == k {
			return p, true
		}
		for _, alias := range profiles[p].aliases {
			if alias == k {
				return p, true
			}
		}
	}
	return Balanced, false
}

// MustParse is Parse without the fallback flag.
func MustParse(key string) Persona {
	p, _ := Parse(key)
	return p
}

// Keys lists canonical keys and aliases, for help texts.
func Keys() []string {
	var out []string
	for p := Balanced; p < personaCount; p++ {
		out = append(out, profiles[p].key)
		out = append(out, profiles[p].aliases...)
	}
	return out
}
