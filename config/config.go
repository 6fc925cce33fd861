// SPDX-License-Identifier: MIT

// Package config resolves runtime settings for the rpgsack binaries from
// defaults, an optional YAML file, RPGSACK_* environment variables and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/rpgsack/loot"
	"github.com/katalvlaran/rpgsack/persona"
)

// ErrInvalidConfig wraps every validation problem found by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DefaultMaxCells bounds solver memory to roughly 80 MB of int cells.
const DefaultMaxCells int64 = 10_000_000

// EnvPrefix is prepended to environment overrides, e.g. RPGSACK_CAPACITY.
const EnvPrefix = "RPGSACK"

// Keys double as flag names and YAML keys.
const (
	KeyCapacity = "capacity"
	KeyPersona  = "persona"
	KeyCatalog  = "catalog"
	KeyQuantity = "quantity"
	KeySeed     = "seed"
	KeyDB       = "db"
	KeySlot     = "slot"
	KeyMaxCells = "max-cells"
	KeyLogLevel = "log-level"
	KeyMetrics  = "metrics-file"
	KeyConfig   = "config"
)

// Config is the resolved configuration.
type Config struct {
	Capacity int
	Persona  string
	Catalog  string // empty ⇒ built-in catalog
	Quantity int
	Seed     int64 // 0 ⇒ loot.DefaultSeed
	DB       string
	Slot     string
	MaxCells int64
	LogLevel string
	Metrics  string // Prometheus textfile output; empty disables
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Capacity: 15,
		Persona:  persona.Balanced.String(),
		Quantity: loot.DefaultQuantity,
		Seed:     0,
		DB:       "rpgsack.db",
		Slot:     "default",
		MaxCells: DefaultMaxCells,
		LogLevel: "info",
	}
}

// BindFlags registers every setting on fs with Default values.
func BindFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Int(KeyCapacity, d.Capacity, "backpack weight capacity")
	fs.String(KeyPersona, d.Persona, "scoring persona ("+strings.Join(persona.Keys(), ", ")+")")
	fs.String(KeyCatalog, d.Catalog, "item catalog file (.json, .yaml); empty uses the built-in dungeon")
	fs.Int(KeyQuantity, d.Quantity, "items found per dungeon visit")
	fs.Int64(KeySeed, d.Seed, "loot RNG seed (0 = fixed default)")
	fs.String(KeyDB, d.DB, "SQLite file holding saved backpacks")
	fs.String(KeySlot, d.Slot, "backpack save slot")
	fs.Int64(KeyMaxCells, d.MaxCells, "largest DP table the solver may allocate (0 = unlimited)")
	fs.String(KeyLogLevel, d.LogLevel, "log level (debug, info, warn, error)")
	fs.String(KeyMetrics, d.Metrics, "write Prometheus metrics to this file after the run")
	fs.String(KeyConfig, "", "optional YAML config file")
}

// Load resolves the configuration. fs may be nil, in which case only the
// defaults and the environment apply. A config file is read when the
// "config" key is set by flag or RPGSACK_CONFIG.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyCapacity, d.Capacity)
	v.SetDefault(KeyPersona, d.Persona)
	v.SetDefault(KeyCatalog, d.Catalog)
	v.SetDefault(KeyQuantity, d.Quantity)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyDB, d.DB)
	v.SetDefault(KeySlot, d.Slot)
	v.SetDefault(KeyMaxCells, d.MaxCells)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyMetrics, d.Metrics)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := &Config{
		Capacity: v.GetInt(KeyCapacity),
		Persona:  v.GetString(KeyPersona),
		Catalog:  v.GetString(KeyCatalog),
		Quantity: v.GetInt(KeyQuantity),
		Seed:     v.GetInt64(KeySeed),
		DB:       v.GetString(KeyDB),
		Slot:     v.GetString(KeySlot),
		MaxCells: v.GetInt64(KeyMaxCells),
		LogLevel: v.GetString(KeyLogLevel),
		Metrics:  v.GetString(KeyMetrics),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var problems []string

	if c.Capacity < 0 {
		problems = append(problems, fmt.Sprintf("capacity must be >= 0, got %d", c.Capacity))
	}
	if c.Quantity < 0 {
		problems = append(problems, fmt.Sprintf("quantity must be >= 0, got %d", c.Quantity))
	}
	if c.MaxCells < 0 {
		problems = append(problems, fmt.Sprintf("max-cells must be >= 0, got %d", c.MaxCells))
	}
	if strings.TrimSpace(c.Slot) == "" {
		problems = append(problems, "slot is required")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("unknown log-level %q", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// PersonaValue parses Persona. An unknown key yields (Balanced, false);
// callers are expected to warn and carry on.
func (c *Config) PersonaValue() (persona.Persona, bool) {
	return persona.Parse(c.Persona)
}
