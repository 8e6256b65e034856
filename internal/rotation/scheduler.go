// Package rotation produces the unbounded sequence of display batches: one
// sport's ordered games per batch, live content surfaced first at both
// levels. Ordering is a stable two-level partition rather than a full sort so
// the configured sport order stays the tie-break and simultaneous live sports
// never shuffle unexpectedly.
package rotation

import (
	"context"
	"sync"

	"scoreboardd/internal/cache"
	"scoreboardd/internal/events"
	"scoreboardd/internal/games"
	"scoreboardd/internal/metrics"
)

// Source supplies the current display-ready games for one sport. Fetch
// failures never surface here; the cache layer has already absorbed them
// into stale or empty data.
type Source interface {
	Games(ctx context.Context, sport string) []games.Game
}

// CacheSource reads through the event cache and projects for display. The
// scheduler path never forces a refresh; refresh cadence is owned by the
// cache's freshness window.
type CacheSource struct {
	Cache *cache.Cache
}

func (s CacheSource) Games(ctx context.Context, sport string) []games.Game {
	return games.FromEvents(s.Cache.Get(ctx, sport, false))
}

// Batch is the ordered game list for one sport, for one display pass. Games
// is empty only when the scheduler was built with IncludeEmpty, or for the
// zero Batch returned on an all-empty cycle.
type Batch struct {
	Sport string
	Games []games.Game
}

// Scheduler yields batches forever via Next. It holds no externally visible
// state beyond the buffered remainder of the current cycle; cross-sport
// priority is recomputed from fresh cache reads at every cycle boundary.
type Scheduler struct {
	src          Source
	includeEmpty bool

	mu       sync.Mutex
	rotation []string
	pending  []Batch
}

// New builds a scheduler over src with the configured sport rotation order.
// includeEmpty surfaces zero-game batches so the consumer can drive a
// "no data" placeholder per sport.
func New(src Source, rotation []string, includeEmpty bool) *Scheduler {
	rot := make([]string, len(rotation))
	copy(rot, rotation)
	return &Scheduler{src: src, rotation: rot, includeEmpty: includeEmpty}
}

// SetRotation replaces the configured sport order. It takes effect at the
// next cycle boundary; the buffered remainder of the current cycle is kept.
func (s *Scheduler) SetRotation(rotation []string) {
	rot := make([]string, len(rotation))
	copy(rot, rotation)
	s.mu.Lock()
	s.rotation = rot
	s.mu.Unlock()
}

// Next yields the next batch. It blocks only on feed I/O performed by the
// underlying source, and returns ok=false once ctx is done — consumer-driven
// pull is the only cancellation mechanism. When a full cycle produces no
// batches at all (no sport has data and empty batches are suppressed) Next
// returns a zero Batch with ok=true, letting the consumer hold on a global
// placeholder instead of spinning on the feed.
func (s *Scheduler) Next(ctx context.Context) (Batch, bool) {
	if ctx.Err() != nil {
		return Batch{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		s.pending = s.buildCycle(ctx)
		if ctx.Err() != nil {
			return Batch{}, false
		}
		if len(s.pending) == 0 {
			return Batch{}, true
		}
	}
	b := s.pending[0]
	s.pending = s.pending[1:]
	metrics.BatchesYielded.WithLabelValues(b.Sport).Inc()
	return b, true
}

// buildCycle performs one full pass over the rotation: per-sport fetch
// through the cache (one consistent snapshot per sport), intra-sport
// reorder, then the cross-sport live-first partition.
func (s *Scheduler) buildCycle(ctx context.Context) []Batch {
	var active, inactive []Batch
	for _, sport := range s.rotation {
		if ctx.Err() != nil {
			return nil
		}
		gs := orderByState(s.src.Games(ctx, sport))
		if len(gs) == 0 && !s.includeEmpty {
			continue
		}
		b := Batch{Sport: sport, Games: gs}
		if hasLive(gs) {
			active = append(active, b)
		} else {
			inactive = append(inactive, b)
		}
	}
	return append(active, inactive...)
}

// orderByState stable-partitions one sport's games live, then scheduled,
// then final, preserving feed order within each group.
func orderByState(gs []games.Game) []games.Game {
	if len(gs) < 2 {
		return gs
	}
	out := make([]games.Game, 0, len(gs))
	for _, want := range []events.State{events.StateLive, events.StateScheduled, events.StateFinal} {
		for _, g := range gs {
			if g.State() == want {
				out = append(out, g)
			}
		}
	}
	// anything with an unknown state trails the cycle rather than vanishing
	for _, g := range gs {
		switch g.State() {
		case events.StateLive, events.StateScheduled, events.StateFinal:
		default:
			out = append(out, g)
		}
	}
	return out
}

func hasLive(gs []games.Game) bool {
	for _, g := range gs {
		if g.IsLive() {
			return true
		}
	}
	return false
}
