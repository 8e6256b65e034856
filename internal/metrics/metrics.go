// Package metrics holds the daemon's Prometheus collectors and the optional
// /metrics listener. Collectors are package-level so leaf packages can record
// without plumbing a registry around.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"scoreboardd/internal/logging"
)

var (
	FetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scoreboard",
			Name:      "feed_fetch_total",
			Help:      "Outbound feed fetches by sport and result",
		},
		[]string{"sport", "result"},
	)

	FetchDuration = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace: "scoreboard",
			Name:      "feed_fetch_duration_seconds",
			Help:      "Time spent fetching a sport's feed",
		},
		[]string{"sport"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scoreboard",
			Name:      "cache_hit_total",
			Help:      "Event cache hits served without feed I/O",
		},
		[]string{"sport"},
	)

	CacheStaleServes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scoreboard",
			Name:      "cache_stale_serve_total",
			Help:      "Times a failed fetch fell back to stale cached events",
		},
		[]string{"sport"},
	)

	LastSuccess = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "scoreboard",
			Name:      "feed_last_success_timestamp_seconds",
			Help:      "Unix time of the last successful fetch per sport",
		},
		[]string{"sport"},
	)

	BatchesYielded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scoreboard",
			Name:      "rotation_batches_total",
			Help:      "Batches yielded to the display by sport",
		},
		[]string{"sport"},
	)
)

// Serve runs a /metrics HTTP listener on addr until ctx is done. It returns
// immediately when addr is empty.
func Serve(ctx context.Context, addr string, log *logging.Logger) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics listener failed", "addr", addr, "err", err)
		}
	}()
}
