package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rpgsack/catalog"
	"github.com/katalvlaran/rpgsack/item"
)

// TestLoad_JSONAndYAMLAgree loads the same three items from both formats.
func TestLoad_JSONAndYAMLAgree(t *testing.T) {
	fromJSON, err := catalog.Load(filepath.Join("testdata", "items.json"))
	require.NoError(t, err)
	fromYAML, err := catalog.Load(filepath.Join("testdata", "items.yaml"))
	require.NoError(t, err)

	want := []item.Item{
		{ID: "espada-longa", Name: "Espada Longa", Weight: 7, Value: 13, Attack: 10, Defense: 2, Image: "sword.jpg"},
		{ID: "poção-de-cura", Name: "Poção de Cura", Category: item.CategoryConsumable, Weight: 2, Value: 4, Image: "potion.jpg"},
		{ID: "glass-bow", Name: "Arco de Vidro", Weight: 4, Value: 9, Attack: 8},
	}
	assert.Equal(t, want, fromJSON.Items())

	y := fromYAML.Items()
	require.Len(t, y, 3)
	assert.Equal(t, "longsword", y[0].ID)
	assert.Equal(t, 10, y[0].Attack)
	assert.Equal(t, 2, y[0].Defense)
	assert.Equal(t, item.CategoryConsumable, y[1].Category, "type is an alias of category")
	assert.Equal(t, "poção-de-cura", y[1].ID)
	assert.Equal(t, 8, y[2].Attack)
}

// TestLoad_Errors covers unreadable, unsupported and malformed sources.
func TestLoad_Errors(t *testing.T) {
	_, err := catalog.Load(filepath.Join("testdata", "missing.json"))
	assert.Error(t, err)

	dir := t.TempDir()
	txt := filepath.Join(dir, "items.txt")
	require.NoError(t, os.WriteFile(txt, []byte("[]"), 0o600))
	_, err = catalog.Load(txt)
	assert.ErrorIs(t, err, catalog.ErrUnsupportedFormat)

	_, err = catalog.ParseJSON([]byte(`{"name": "not a list"}`))
	assert.ErrorIs(t, err, catalog.ErrMalformed)

	_, err = catalog.ParseJSON([]byte(`[1, 2]`))
	assert.ErrorIs(t, err, catalog.ErrMalformed)

	_, err = catalog.ParseJSON([]byte(`[{"name": "x",`))
	assert.ErrorIs(t, err, catalog.ErrMalformed)

	_, err = catalog.ParseYAML([]byte("name: not a list\n"))
	assert.ErrorIs(t, err, catalog.ErrMalformed)

	_, err = catalog.ParseJSON([]byte(`[{"name": "Cursed", "weight": -1, "value": 0}]`))
	assert.ErrorIs(t, err, item.ErrInvalidItem)

	_, err = catalog.ParseJSON([]byte(`[{"name": "Gem", "weight": 1, "value": 5}, {"id": "gem", "name": "Other", "weight": 1, "value": 5}]`))
	assert.ErrorIs(t, err, catalog.ErrDuplicateID)

	_, err = catalog.ParseJSON([]byte(`[{"weight": 1, "value": 1}]`))
	assert.ErrorIs(t, err, catalog.ErrMalformed, "no id and no name")
}

func TestParseJSON_NumericFieldsRequired(t *testing.T) {
	cases := map[string]string{
		"missing weight": `[{"name": "Feather", "value": 3}]`,
		"missing value":  `[{"name": "Feather", "weight": 1}]`,
		"text weight":    `[{"name": "Anvil", "weight": "heavy", "value": 3}]`,
		"null value":     `[{"name": "Anvil", "weight": 9, "value": null}]`,
		"second entry":   `[{"name": "Gem", "weight": 1, "value": 5}, {"name": "Rock", "weight": "1", "value": 0}]`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			c, err := catalog.ParseJSON([]byte(doc))
			require.ErrorIs(t, err, catalog.ErrMalformed)
			assert.Nil(t, c)
		})
	}

	_, err := catalog.ParseJSON([]byte(`[{"name": "Gem", "weight": 1, "value": 5}, {"name": "Rock", "value": 0}]`))
	require.ErrorIs(t, err, catalog.ErrMalformed)
	assert.Contains(t, err.Error(), "entry 1: weight")
}

// TestDefault exposes the built-in dungeon table and starter backpack.
func TestDefault(t *testing.T) {
	c := catalog.Default()
	assert.Equal(t, 9, c.Len())

	bow, ok := c.Get("glass-bow")
	require.True(t, ok)
	assert.Equal(t, "Arco de Vidro", bow.Name)

	starter := catalog.Starter(c)
	require.Len(t, starter, 4)
	assert.Equal(t, 15, item.TotalWeight(starter), "the starter backpack fills 15 exactly")

	_, ok = c.Get("nope")
	assert.False(t, ok)
}

// TestLookup finds by id or name and suggests near misses.
func TestLookup(t *testing.T) {
	c := catalog.Default()

	it, err := c.Lookup("ESCUDO NÓRDICO")
	require.NoError(t, err)
	assert.Equal(t, "nordic-shield", it.ID)

	it, err = c.Lookup("glass-sword")
	require.NoError(t, err)
	assert.Equal(t, "Espada de Vidro", it.Name)

	_, err = c.Lookup("Arco de Vidr")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.Contains(t, err.Error(), "Arco de Vidro")

	_, err = c.Lookup("zzzzzzzzzzzzzzzzzzzz")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.NotContains(t, err.Error(), "did you mean")
}

// TestSuggest ranks by distance and caps the list.
func TestSuggest(t *testing.T) {
	c := catalog.Default()

	got := c.Suggest("escudo")
	assert.Equal(t, []string{"Escudo de Carvalho", "Escudo de Vidro", "Escudo Nórdico"}, got)

	got = c.Suggest("glass-bw")
	require.NotEmpty(t, got)
	assert.Equal(t, "Arco de Vidro", got[0], "id distance counts")

	assert.Empty(t, c.Suggest(""))
}

// TestSlug normalizes names into ids.
func TestSlug(t *testing.T) {
	assert.Equal(t, "arco-de-auriel", catalog.Slug("Arco de Auriel"))
	assert.Equal(t, "auriel-s-bow", catalog.Slug("  Auriel's Bow!"))
	assert.Equal(t, "", catalog.Slug("--"))
}
