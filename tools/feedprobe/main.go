// feedprobe fetches one snapshot per configured sport and prints the ordered
// rotation, for checking feeds and ordering without driving a display.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"scoreboardd/internal/cache"
	"scoreboardd/internal/config"
	"scoreboardd/internal/espn"
	"scoreboardd/internal/feeds"
	"scoreboardd/internal/logging"
	"scoreboardd/internal/mockfeed"
	"scoreboardd/internal/rotation"
)

func main() {
	mock := flag.Bool("mock", false, "use canned demo events")
	cfgPath := flag.String("config", "", "config file path")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config load error:", err)
		os.Exit(1)
	}
	logger := logging.Discard()

	fetch := cache.FetchFunc(mockfeed.Fetch)
	if !*mock {
		catalog, err := feeds.Load(cfg.FeedsPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "feed catalog error:", err)
			os.Exit(1)
		}
		client := espn.NewClient(catalog, cfg.FetchTimeout(), cfg.FeedRatePerSecond, cfg.FeedBurst, logger)
		fetch = client.FetchEvents
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	eventCache := cache.New(fetch, cfg.CacheTTL(), logger)
	sched := rotation.New(rotation.CacheSource{Cache: eventCache}, cfg.Rotation, true)

	for range cfg.Rotation {
		batch, ok := sched.Next(ctx)
		if !ok {
			break
		}
		if batch.Sport == "" {
			fmt.Println("=== no data for any sport ===")
			break
		}
		age := "never fetched"
		if d, ok := eventCache.Age(batch.Sport); ok {
			age = fmt.Sprintf("fetched %s ago", d.Round(time.Millisecond))
		}
		fmt.Printf("=== %s (%d games, %s) ===\n", batch.Sport, len(batch.Games), age)
		for i, g := range batch.Games {
			if i == 5 {
				break
			}
			fmt.Printf("  %s | %s\n", g.ScoreLine(), g.StatusLine())
		}
	}
}
