package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// SportConfig holds per-sport display tuning.
type SportConfig struct {
	PerGameSeconds float64 `toml:"per_game_seconds"`
	ShowLeaders    bool    `toml:"show_leaders"`
	ShowLogos      bool    `toml:"show_logos"`
}

type Config struct {
	Rotation            []string `toml:"rotation"`
	CacheTTLSeconds     int      `toml:"cache_ttl_seconds"`
	FetchTimeoutSeconds int      `toml:"fetch_timeout_seconds"`
	IncludeEmptyBatches bool     `toml:"include_empty_batches"`
	DurationMultiplier  float64  `toml:"duration_multiplier"`
	FeedRatePerSecond   float64  `toml:"feed_rate_per_second"`
	FeedBurst           int      `toml:"feed_burst"`
	FeedsPath           string   `toml:"feeds_path"`
	DBPath              string   `toml:"db_path"`
	MetricsAddr         string   `toml:"metrics_addr"`
	LogLevel            string   `toml:"log_level"`

	Sports map[string]SportConfig `toml:"sports"`
}

func dataDir() string {
	if dir := os.Getenv("SCOREBOARDD_DIR"); dir != "" {
		return dir
	}
	if home, err := os.UserHomeDir(); err == nil && os.Geteuid() != 0 {
		return filepath.Join(home, ".scoreboardd")
	}
	return "/var/lib/scoreboardd"
}

func defaultConfig() *Config {
	dir := dataDir()
	return &Config{
		Rotation:            []string{"nfl", "mlb", "prem"},
		CacheTTLSeconds:     30,
		FetchTimeoutSeconds: 10,
		IncludeEmptyBatches: false,
		DurationMultiplier:  1.0,
		FeedRatePerSecond:   2,
		FeedBurst:           3,
		FeedsPath:           filepath.Join(dir, "feeds.yaml"),
		DBPath:              filepath.Join(dir, "logos.db"),
		MetricsAddr:         "",
		LogLevel:            "info",
		Sports: map[string]SportConfig{
			"nfl":  {PerGameSeconds: 6, ShowLeaders: true, ShowLogos: true},
			"mlb":  {PerGameSeconds: 6, ShowLeaders: true, ShowLogos: true},
			"prem": {PerGameSeconds: 5, ShowLeaders: true, ShowLogos: true},
		},
	}
}

func configPath() (string, error) {
	dir := dataDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config from path, or the default location when path is
// empty. A missing file is created with defaults; missing keys in an
// existing file are filled from defaults.
func Load(path string) (*Config, error) {
	var err error
	if path == "" {
		path, err = configPath()
		if err != nil {
			return nil, err
		}
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := defaultConfig()
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		enc := toml.NewEncoder(f)
		if err := enc.Encode(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	// fill defaults where empty
	def := defaultConfig()
	if len(cfg.Rotation) == 0 {
		cfg.Rotation = def.Rotation
	}
	if cfg.CacheTTLSeconds == 0 {
		cfg.CacheTTLSeconds = def.CacheTTLSeconds
	}
	if cfg.FetchTimeoutSeconds == 0 {
		cfg.FetchTimeoutSeconds = def.FetchTimeoutSeconds
	}
	if cfg.DurationMultiplier == 0 {
		cfg.DurationMultiplier = def.DurationMultiplier
	}
	if cfg.FeedRatePerSecond == 0 {
		cfg.FeedRatePerSecond = def.FeedRatePerSecond
	}
	if cfg.FeedBurst == 0 {
		cfg.FeedBurst = def.FeedBurst
	}
	if cfg.FeedsPath == "" {
		cfg.FeedsPath = def.FeedsPath
	}
	if cfg.DBPath == "" {
		cfg.DBPath = def.DBPath
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.Sports == nil {
		cfg.Sports = def.Sports
	} else {
		for sport, sc := range def.Sports {
			if _, ok := cfg.Sports[sport]; !ok {
				cfg.Sports[sport] = sc
			}
		}
	}
	return &cfg, nil
}

// CacheTTL returns the cache freshness window as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// FetchTimeout returns the per-fetch bound as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// Sport returns the display settings for sport, defaulting when the
// section is absent.
func (c *Config) Sport(sport string) SportConfig {
	if sc, ok := c.Sports[sport]; ok {
		return sc
	}
	return SportConfig{PerGameSeconds: 6, ShowLeaders: true, ShowLogos: true}
}

// HoldFor returns how long the display should hold one game of the given
// sport, after the global multiplier.
func (c *Config) HoldFor(sport string) time.Duration {
	sc := c.Sport(sport)
	secs := sc.PerGameSeconds * c.DurationMultiplier
	if secs <= 0 {
		secs = 6
	}
	return time.Duration(secs * float64(time.Second))
}
