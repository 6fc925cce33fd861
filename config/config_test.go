package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rpgsack/config"
	"github.com/katalvlaran/rpgsack/persona"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func assertPersona(t *testing.T, want persona.Persona, cfg *config.Config) {
	t.Helper()
	got, ok := cfg.PersonaValue()
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Capacity)
	assert.Equal(t, "balanced", cfg.Persona)
	assert.Equal(t, 3, cfg.Quantity)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, "default", cfg.Slot)
	assert.Equal(t, config.DefaultMaxCells, cfg.MaxCells)
	assertPersona(t, persona.Balanced, cfg)
}

func TestLoad_FlagsOverride(t *testing.T) {
	cfg, err := config.Load(newFlags(t, "--capacity=20", "--persona=orc", "--seed=42", "--slot=hero"))
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Capacity)
	assertPersona(t, persona.Melee, cfg)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "hero", cfg.Slot)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("RPGSACK_CAPACITY", "9")
	t.Setenv("RPGSACK_MAX_CELLS", "500")
	cfg, err := config.Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Capacity)
	assert.Equal(t, int64(500), cfg.MaxCells)
}

func TestLoad_FlagBeatsEnv(t *testing.T) {
	t.Setenv("RPGSACK_CAPACITY", "9")
	cfg, err := config.Load(newFlags(t, "--capacity=11"))
	require.NoError(t, err)
	assert.Equal(t, 11, cfg.Capacity)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rpgsack.yaml")
	require.NoError(t, os.WriteFile(path, []byte("capacity: 30\npersona: wealth\nquantity: 5\n"), 0o600))

	cfg, err := config.Load(newFlags(t, "--config="+path, "--quantity=7"))
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Capacity)
	assertPersona(t, persona.Wealth, cfg)
	assert.Equal(t, 7, cfg.Quantity, "flag wins over file")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(newFlags(t, "--config="+filepath.Join(t.TempDir(), "nope.yaml")))
	require.Error(t, err)
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := config.Default()
	cfg.Capacity = -1
	cfg.Quantity = -2
	cfg.LogLevel = "loud"

	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	for _, frag := range []string{"capacity", "quantity", `"loud"`} {
		assert.Contains(t, err.Error(), frag)
	}
}

func TestLoad_InvalidFlag(t *testing.T) {
	_, err := config.Load(newFlags(t, "--capacity=-4"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_UnknownPersonaFallsBack(t *testing.T) {
	cfg, err := config.Load(newFlags(t, "--persona=paladin"))
	require.NoError(t, err)
	assert.Equal(t, "paladin", cfg.Persona)

	p, ok := cfg.PersonaValue()
	assert.False(t, ok)
	assert.Equal(t, persona.Balanced, p)
}
