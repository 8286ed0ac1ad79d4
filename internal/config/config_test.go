package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.False(t, Exists())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Plan = "familia-silva"
	cfg.Formatting.CurrencyPrefix = "BRL "
	cfg.Appearance.Theme = "tokyo-night"
	require.NoError(t, Save(cfg))
	assert.True(t, Exists())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "finplan"), 0o755))
	require.NoError(t, os.WriteFile(Path(), []byte("[appearance]\ntheme = \"terminal\"\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "terminal", cfg.Appearance.Theme)
	assert.Equal(t, DefaultPlan, cfg.General.Plan)
	assert.Equal(t, "R$ ", cfg.Formatting.CurrencyPrefix)
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "finplan"), 0o755))
	require.NoError(t, os.WriteFile(Path(), []byte("[general\n"), 0o600))

	_, err := Load()
	assert.ErrorContains(t, err, "parsing config")
}

func TestDatabasePath_Precedence(t *testing.T) {
	data := t.TempDir()
	t.Setenv("XDG_DATA_HOME", data)
	t.Setenv("FINPLAN_DB", "")

	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join(data, "finplan", "plans.db"), DatabasePath(cfg))

	cfg.General.Database = "/tmp/custom.db"
	assert.Equal(t, "/tmp/custom.db", DatabasePath(cfg))

	t.Setenv("FINPLAN_DB", "/tmp/env.db")
	assert.Equal(t, "/tmp/env.db", DatabasePath(cfg))
}

func TestPolicy(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "R$ ", cfg.Policy().CurrencyPrefix)

	cfg.Formatting.CurrencyPrefix = "BRL "
	p := cfg.Policy()
	assert.Equal(t, "BRL ", p.CurrencyPrefix)
	assert.Equal(t, ',', p.Decimal)
	assert.Equal(t, '.', p.Thousands)
}
