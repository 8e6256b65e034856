// Package feeds maps sport keys to remote scoreboard endpoints. The catalog
// is read from a YAML file so new sports can be added without a rebuild;
// missing files fall back to the built-in defaults.
package feeds

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Feed describes one sport's remote scoreboard feed.
type Feed struct {
	Sport string `yaml:"sport"`
	Name  string `yaml:"name"`
	URL   string `yaml:"url"`
}

type document struct {
	Version int    `yaml:"version"`
	Feeds   []Feed `yaml:"feeds"`
}

// Catalog is an immutable sport -> feed lookup.
type Catalog struct {
	feeds map[string]Feed
	order []string
}

// Parse builds a catalog from explicit feed entries, validating keys and
// rejecting duplicates.
func Parse(list []Feed) (*Catalog, error) {
	return build(list)
}

func defaultFeeds() []Feed {
	return []Feed{
		{Sport: "nfl", Name: "NFL", URL: "https://site.api.espn.com/apis/site/v2/sports/football/nfl/scoreboard"},
		{Sport: "mlb", Name: "MLB", URL: "https://site.api.espn.com/apis/site/v2/sports/baseball/mlb/scoreboard"},
		{Sport: "prem", Name: "Premier League", URL: "https://site.api.espn.com/apis/site/v2/sports/soccer/eng.1/scoreboard"},
	}
}

// Defaults returns the built-in catalog.
func Defaults() *Catalog {
	c, _ := build(defaultFeeds())
	return c
}

// Load reads a catalog from path. A missing file yields the defaults; a
// malformed file is an error.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, err
	}
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse feeds: %w", err)
	}
	if len(doc.Feeds) == 0 {
		return Defaults(), nil
	}
	return build(doc.Feeds)
}

func build(list []Feed) (*Catalog, error) {
	c := &Catalog{feeds: make(map[string]Feed, len(list))}
	for _, f := range list {
		if f.Sport == "" || f.URL == "" {
			return nil, fmt.Errorf("feed entry missing sport or url: %+v", f)
		}
		if _, dup := c.feeds[f.Sport]; dup {
			return nil, fmt.Errorf("duplicate feed for sport %q", f.Sport)
		}
		c.feeds[f.Sport] = f
		c.order = append(c.order, f.Sport)
	}
	return c, nil
}

// Get returns the feed for sport.
func (c *Catalog) Get(sport string) (Feed, bool) {
	f, ok := c.feeds[sport]
	return f, ok
}

// Sports lists the catalog's sport keys in declaration order.
func (c *Catalog) Sports() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}
