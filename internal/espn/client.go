// Package espn retrieves scoreboard data from the ESPN site API and
// normalizes it into canonical event records. One fetch per call, bounded by
// a timeout and a shared outbound rate limiter; all failures are returned to
// the caller (the cache layer owns the stale-fallback policy).
package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"scoreboardd/internal/events"
	"scoreboardd/internal/feeds"
	"scoreboardd/internal/logging"
	"scoreboardd/internal/metrics"
)

type Client struct {
	catalog *feeds.Catalog
	hc      *http.Client
	limiter *rate.Limiter
	log     *logging.Logger
}

// NewClient builds a feed client. timeout bounds each fetch end to end;
// ratePerSec/burst bound outbound pressure across all sports combined.
func NewClient(catalog *feeds.Catalog, timeout time.Duration, ratePerSec float64, burst int, log *logging.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if ratePerSec <= 0 {
		ratePerSec = 2
	}
	if burst <= 0 {
		burst = 1
	}
	return &Client{
		catalog: catalog,
		hc:      &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(ratePerSec), burst),
		log:     log,
	}
}

// FetchEvents retrieves and normalizes the current event list for sport.
// Idempotent and side-effect-free on the daemon's state.
func (c *Client) FetchEvents(ctx context.Context, sport string) ([]events.Event, error) {
	feed, ok := c.catalog.Get(sport)
	if !ok {
		return nil, fmt.Errorf("no feed configured for sport %q", sport)
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feed.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", sport, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetch %s: feed returned status %d", sport, resp.StatusCode)
	}

	var doc scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("fetch %s: decode: %w", sport, err)
	}
	metrics.FetchDuration.WithLabelValues(sport).Observe(time.Since(start).Seconds())

	out := make([]events.Event, 0, len(doc.Events))
	for _, ev := range doc.Events {
		out = append(out, normalizeEvent(sport, ev))
	}
	c.log.Debug("feed fetched", "sport", sport, "events", len(out))
	return out, nil
}
