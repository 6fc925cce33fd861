// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rpgsack/item"
)

// Load reads a catalog file, choosing the parser by extension.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ParseJSON parses an array of item objects. weight and value are
// required JSON numbers; anything else is ErrMalformed.
// Combat stats may be nested under "stats" or given flat; "type" is an
// alias of "category".
func ParseJSON(data []byte) (*Catalog, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: top level must be an array", ErrMalformed)
	}

	var (
		items []item.Item
		bad   error
	)
	root.ForEach(func(_, v gjson.Result) bool {
		if !v.IsObject() {
			bad = fmt.Errorf("%w: entry %d is not an object", ErrMalformed, len(items))
			return false
		}
		for _, key := range [...]string{"weight", "value"} {
			if n := v.Get(key); n.Type != gjson.Number {
				bad = fmt.Errorf("%w: entry %d: %s must be a number", ErrMalformed, len(items), key)
				return false
			}
		}
		items = append(items, item.Item{
			ID:       v.Get("id").String(),
			Name:     v.Get("name").String(),
			Category: firstString(v, "category", "type"),
			Weight:   int(v.Get("weight").Int()),
			Value:    int(v.Get("value").Int()),
			Attack:   int(firstInt(v, "stats.attack", "attack")),
			Defense:  int(firstInt(v, "stats.defense", "defense")),
			Image:    v.Get("image").String(),
		})
		return true
	})
	if bad != nil {
		return nil, bad
	}
	return New(items)
}

func firstString(v gjson.Result, paths ...string) string {
	for _, p := range paths {
		if r := v.Get(p); r.Exists() {
			return r.String()
		}
	}
	return ""
}

func firstInt(v gjson.Result, paths ...string) int64 {
	for _, p := range paths {
		if r := v.Get(p); r.Exists() {
			return r.Int()
		}
	}
	return 0
}

// yamlEntry mirrors the JSON shape, including the nested stats block.
type yamlEntry struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Type     string `yaml:"type"`
	Weight   int    `yaml:"weight"`
	Value    int    `yaml:"value"`
	Attack   int    `yaml:"attack"`
	Defense  int    `yaml:"defense"`
	Image    string `yaml:"image"`
	Stats    *struct {
		Attack  int `yaml:"attack"`
		Defense int `yaml:"defense"`
	} `yaml:"stats"`
}

// ParseYAML parses a YAML list of items with the same fields as ParseJSON.
func ParseYAML(data []byte) (*Catalog, error) {
	var entries []yamlEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	items := make([]item.Item, len(entries))
	for i, e := range entries {
		it := item.Item{
			ID:       e.ID,
			Name:     e.Name,
			Category: e.Category,
			Weight:   e.Weight,
			Value:    e.Value,
			Attack:   e.Attack,
			Defense:  e.Defense,
			Image:    e.Image,
		}
		if it.Category == "" {
			it.Category = e.Type
		}
		if e.Stats != nil {
			it.Attack, it.Defense = e.Stats.Attack, e.Stats.Defense
		}
		items[i] = it
	}
	return New(items)
}
