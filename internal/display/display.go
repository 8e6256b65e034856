// Package display renders batches to the output surface. The Console driver
// is the software fallback used off-device; a matrix driver satisfies the
// same interface on real hardware.
package display

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"scoreboardd/internal/config"
	"scoreboardd/internal/games"
	"scoreboardd/internal/logging"
	"scoreboardd/internal/logos"
)

// Driver consumes the scheduler's output. ShowBatch blocks for the batch's
// hold duration; ShowIdle renders the "no data" placeholder for one sport
// (or globally when sport is empty).
type Driver interface {
	ShowBatch(ctx context.Context, batch []games.Game) error
	ShowIdle(ctx context.Context, sport string) error
}

// Console prints frames as text lines, holding per game like the panel
// would.
type Console struct {
	cfg   *config.Config
	log   *logging.Logger
	logos *logos.Cache
	out   io.Writer
}

func NewConsole(cfg *config.Config, lc *logos.Cache, log *logging.Logger) *Console {
	return &Console{cfg: cfg, log: log, logos: lc, out: os.Stdout}
}

func (c *Console) ShowBatch(ctx context.Context, batch []games.Game) error {
	for _, g := range batch {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.renderGame(ctx, g)
		if err := hold(ctx, c.cfg.HoldFor(g.Sport())); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) renderGame(ctx context.Context, g games.Game) {
	sc := c.cfg.Sport(g.Sport())
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] ", strings.ToUpper(g.Sport()))
	for _, line := range g.DetailLines() {
		fmt.Fprintf(&b, "%s | ", line)
	}
	if sc.ShowLeaders {
		for _, line := range g.LeaderLines() {
			fmt.Fprintf(&b, "%s | ", line)
		}
	}
	if sc.ShowLogos && c.logos != nil {
		c.warmLogos(ctx, g)
	}
	fmt.Fprintln(c.out, strings.TrimSuffix(b.String(), " | "))
}

// warmLogos pre-fetches both team logos so a hardware driver swapping in
// later finds them on disk. Failures only log.
func (c *Console) warmLogos(ctx context.Context, g games.Game) {
	for _, side := range []struct{ abbr, url string }{
		{g.Event.Away.Abbr, g.Event.Away.Logo},
		{g.Event.Home.Abbr, g.Event.Home.Logo},
	} {
		if _, err := c.logos.Get(ctx, g.Sport(), side.abbr, side.url); err != nil {
			c.log.Debug("logo fetch failed", "sport", g.Sport(), "team", side.abbr, "err", err)
		}
	}
}

func (c *Console) ShowIdle(ctx context.Context, sport string) error {
	label := "NO GAMES"
	if sport != "" {
		label = fmt.Sprintf("NO %s GAMES", strings.ToUpper(sport))
	}
	fmt.Fprintf(c.out, "%s | %s\n", label, statusLine())
	return hold(ctx, c.cfg.HoldFor(sport))
}

// hold blocks for d or until ctx is done.
func hold(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
