// Package logos caches downloaded team logo images. Logos change rarely, so
// fetched bytes are kept in sqlite across restarts with an hourly refresh,
// fronted by an in-process map. All failures degrade to "no logo".
package logos

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	// remote logos are refreshed hourly
	defaultTTL = time.Hour
	// logo downloads are cheap; keep the bound tight so they never stall a pass
	fetchTimeout = 3 * time.Second
	maxLogoBytes = 1 << 20
)

// Logo is one cached image.
type Logo struct {
	Key       string
	URL       string
	PNG       []byte
	FetchedAt time.Time
}

// Store persists logos across restarts.
type Store interface {
	Get(key string) (*Logo, error)
	Put(l *Logo) error
	Close() error
}

type Cache struct {
	store Store
	hc    *http.Client
	ttl   time.Duration
	now   func() time.Time

	mu  sync.Mutex
	mem map[string][]byte
}

// NewCache fronts store with an in-process layer.
func NewCache(store Store) *Cache {
	return &Cache{
		store: store,
		hc:    &http.Client{Timeout: fetchTimeout},
		ttl:   defaultTTL,
		now:   time.Now,
		mem:   make(map[string][]byte),
	}
}

// Key builds the cache key for a team's logo.
func Key(sport, abbr string) string {
	return strings.ToUpper(sport + ":" + abbr)
}

// Get returns the logo bytes for a team, downloading from url when the
// cached copy is missing or older than the TTL. Returns nil when no logo is
// available; never an error the caller has to handle beyond logging.
func (c *Cache) Get(ctx context.Context, sport, abbr, url string) ([]byte, error) {
	if url == "" {
		return nil, nil
	}
	key := Key(sport, abbr)

	c.mu.Lock()
	if png, ok := c.mem[key]; ok {
		c.mu.Unlock()
		return png, nil
	}
	c.mu.Unlock()

	if c.store != nil {
		l, err := c.store.Get(key)
		if err == nil && l != nil && c.now().Sub(l.FetchedAt) <= c.ttl {
			c.remember(key, l.PNG)
			return l.PNG, nil
		}
	}

	png, err := c.download(ctx, url)
	if err != nil {
		// fall back to an expired stored copy before giving up
		if c.store != nil {
			if l, serr := c.store.Get(key); serr == nil && l != nil {
				c.remember(key, l.PNG)
				return l.PNG, nil
			}
		}
		return nil, err
	}
	c.remember(key, png)
	if c.store != nil {
		_ = c.store.Put(&Logo{Key: key, URL: url, PNG: png, FetchedAt: c.now()})
	}
	return png, nil
}

func (c *Cache) remember(key string, png []byte) {
	c.mu.Lock()
	c.mem[key] = png
	c.mu.Unlock()
}

func (c *Cache) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("logo fetch returned status %d", resp.StatusCode)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes))
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("logo fetch returned empty body")
	}
	return b, nil
}
