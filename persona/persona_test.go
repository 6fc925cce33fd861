package persona_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rpgsack/item"
	"github.com/katalvlaran/rpgsack/persona"
)

var (
	longsword    = item.Item{ID: "longsword", Name: "Longsword", Weight: 7, Value: 13, Attack: 10, Defense: 2}
	elvenBow     = item.Item{ID: "elven-bow", Name: "Elven Bow", Weight: 4, Value: 9, Attack: 8}
	glassBow     = item.Item{ID: "glass-bow", Name: "Arco de Vidro", Weight: 4, Value: 9, Attack: 9}
	nordicShield = item.Item{ID: "nordic-shield", Name: "Nordic Shield", Weight: 4, Value: 9, Defense: 8}
	oakShield    = item.Item{ID: "oak-shield", Name: "Escudo de Carvalho", Weight: 5, Value: 10, Defense: 5}
	potion       = item.Item{ID: "potion", Name: "Poção de Cura", Category: item.CategoryConsumable, Weight: 2, Value: 4}
	gem          = item.Item{ID: "gem", Name: "Ruby", Weight: 1, Value: 10}
)

// TestParse covers canonical keys, race aliases, case folding and the fallback.
func TestParse(t *testing.T) {
	cases := map[string]persona.Persona{
		"melee":    persona.Melee,
		"ORC":      persona.Melee,
		"nord":     persona.Defense,
		"Wood-Elf": persona.Ranged,
		"wood_elf": persona.Ranged,
		"khajiit":  persona.Wealth,
		"imperial": persona.Balanced,
		" wealth ": persona.Wealth,
	}
	for key, want := range cases {
		got, ok := persona.Parse(key)
		assert.True(t, ok, "key %q should be recognized", key)
		assert.Equal(t, want, got, "key %q", key)
	}

	got, ok := persona.Parse("dragonborn")
	assert.False(t, ok, "unknown key must report ok=false")
	assert.Equal(t, persona.Balanced, got, "unknown key falls back to Balanced")
	assert.Equal(t, persona.Balanced, persona.MustParse(""))
}

// TestPersona_String round-trips every persona through Parse.
func TestPersona_String(t *testing.T) {
	for _, p := range persona.All() {
		back, ok := persona.Parse(p.String())
		require.True(t, ok)
		assert.Equal(t, p, back)
	}
	assert.Equal(t, "unknown", persona.Persona(42).String())
	assert.Len(t, persona.All(), 5)
	assert.Contains(t, persona.Keys(), "khajiit")
}

// TestScore_Profiles pins one hand-computed score per rule.
func TestScore_Profiles(t *testing.T) {
	cases := []struct {
		name string
		it   item.Item
		p    persona.Persona
		want int
	}{
		{"melee sword bonus", longsword, persona.Melee, 95},            // 60+2+3.25+30
		{"melee bow penalty", elvenBow, persona.Melee, 20},             // 48+2.25-30
		{"defense guard bonus", nordicShield, persona.Defense, 61},     // 32+4.5+25
		{"defense sword bonus", longsword, persona.Defense, 44},        // 10+8+6.5+20
		{"defense portuguese shield", oakShield, persona.Defense, 50},  // 20+5+25
		{"ranged bow", glassBow, persona.Ranged, 86},                   // 9+50+27
		{"ranged english bow", elvenBow, persona.Ranged, 83},           // 9+50+24
		{"ranged shield halved", oakShield, persona.Ranged, 5},
		{"ranged truncates", nordicShield, persona.Ranged, 4}, // 4.5
		{"wealth doubles", gem, persona.Wealth, 20},
		{"balanced sums", longsword, persona.Balanced, 25},
		{"consumable bonus once", potion, persona.Wealth, 23},
		{"consumable balanced", potion, persona.Balanced, 19},
		{"consumable ranged", potion, persona.Ranged, 17},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, persona.Score(tc.it, tc.p))
		})
	}
}

// TestScore_ClampsToZero verifies the bow penalty never yields a negative score.
func TestScore_ClampsToZero(t *testing.T) {
	junkBow := item.Item{Name: "Broken Bow", Weight: 3}
	assert.Equal(t, 0, persona.Score(junkBow, persona.Melee))
}

// TestScore_HealingNameWithoutCategory applies the universal bonus by name alone.
func TestScore_HealingNameWithoutCategory(t *testing.T) {
	tonic := item.Item{Name: "Healing Tonic", Value: 2}
	assert.Equal(t, 2*2+15, persona.Score(tonic, persona.Wealth))
}

// TestScore_UnknownPersonaIsBalanced checks out-of-range tags score like Balanced.
func TestScore_UnknownPersonaIsBalanced(t *testing.T) {
	assert.Equal(t,
		persona.Score(longsword, persona.Balanced),
		persona.Score(longsword, persona.Persona(99)))
}

// TestScore_Deterministic scores the same input repeatedly.
func TestScore_Deterministic(t *testing.T) {
	for _, p := range persona.All() {
		first := persona.Score(glassBow, p)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, persona.Score(glassBow, p))
		}
	}
}

// TestScoreItem_WealthDoublesValue: base value 10, no stats, not consumable → 20.
func TestScoreItem_WealthDoublesValue(t *testing.T) {
	s, err := persona.ScoreItem(gem, persona.Wealth)
	require.NoError(t, err)
	assert.Equal(t, 20, s.Score)
	assert.Equal(t, 10, s.EffectiveValue, "base value preserved")
	assert.Equal(t, 10, s.Value, "embedded item untouched")
	assert.False(t, s.Preferred, "20 is not strictly greater than 2×10")
}

// TestScoreItem_Preferred flags persona favorites only.
func TestScoreItem_Preferred(t *testing.T) {
	s, err := persona.ScoreItem(glassBow, persona.Ranged)
	require.NoError(t, err)
	assert.True(t, s.Preferred, "86 > 2×9")

	s, err = persona.ScoreItem(glassBow, persona.Wealth)
	require.NoError(t, err)
	assert.False(t, s.Preferred)
}

// TestScoreItem_RejectsInvalid surfaces InvalidItem before scoring.
func TestScoreItem_RejectsInvalid(t *testing.T) {
	_, err := persona.ScoreItem(item.Item{Name: "cursed", Weight: -1}, persona.Wealth)
	assert.ErrorIs(t, err, item.ErrInvalidItem)

	out, err := persona.ScoreAll([]item.Item{gem, {Value: -5}}, persona.Balanced)
	assert.ErrorIs(t, err, item.ErrInvalidItem)
	assert.Nil(t, out, "no partial result on error")
}

// TestScoreAll preserves order.
func TestScoreAll(t *testing.T) {
	out, err := persona.ScoreAll([]item.Item{longsword, elvenBow, potion}, persona.Melee)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "longsword", out[0].ID)
	assert.Equal(t, "elven-bow", out[1].ID)
	assert.Equal(t, "potion", out[2].ID)
}
