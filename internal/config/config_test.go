package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"nfl", "mlb", "prem"}, cfg.Rotation)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL())
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout())
	assert.False(t, cfg.IncludeEmptyBatches)

	// the file was written so the user can edit it
	_, err = os.Stat(path)
	assert.NoError(t, err)

	// and loads back identically
	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Rotation, again.Rotation)
	assert.Equal(t, cfg.CacheTTLSeconds, again.CacheTTLSeconds)
}

func TestLoadFillsMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	partial := `rotation = ["prem"]
cache_ttl_seconds = 15

[sports.prem]
per_game_seconds = 8.0
show_leaders = false
`
	require.NoError(t, os.WriteFile(path, []byte(partial), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"prem"}, cfg.Rotation)
	assert.Equal(t, 15, cfg.CacheTTLSeconds)
	assert.Equal(t, 10, cfg.FetchTimeoutSeconds, "defaults fill unset keys")
	assert.Equal(t, "info", cfg.LogLevel)

	prem := cfg.Sport("prem")
	assert.Equal(t, 8.0, prem.PerGameSeconds)
	assert.False(t, prem.ShowLeaders)

	nfl := cfg.Sport("nfl")
	assert.Equal(t, 6.0, nfl.PerGameSeconds, "default sport sections backfilled")
}

func TestHoldForAppliesMultiplier(t *testing.T) {
	cfg := defaultConfig()
	cfg.DurationMultiplier = 2.0
	assert.Equal(t, 12*time.Second, cfg.HoldFor("nfl"))
	assert.Equal(t, 10*time.Second, cfg.HoldFor("prem"))
}

func TestHoldForUnknownSportGetsDefault(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, 6*time.Second, cfg.HoldFor("nhl"))
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("rotation = [whoops"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
