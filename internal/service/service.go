package service

import (
	"context"
	"errors"
	"time"

	"scoreboardd/internal/cache"
	"scoreboardd/internal/config"
	"scoreboardd/internal/display"
	"scoreboardd/internal/espn"
	"scoreboardd/internal/feeds"
	"scoreboardd/internal/logging"
	"scoreboardd/internal/logos"
	"scoreboardd/internal/metrics"
	"scoreboardd/internal/mockfeed"
	"scoreboardd/internal/rotation"
)

const configReloadInterval = 30 * time.Second

// Service runs the scoreboard daemon: feed adapter -> event cache ->
// rotation scheduler -> display loop.
type Service struct {
	cfg     *config.Config
	cfgPath string
	log     *logging.Logger
	mock    bool

	sched  *rotation.Scheduler
	driver display.Driver
	store  logos.Store
	ctx    context.Context
	cancel context.CancelFunc
}

// New prepares a service. cfgPath is kept for periodic reload; mock swaps
// the live feed adapter for canned demo data.
func New(cfg *config.Config, cfgPath string, logger *logging.Logger, mock bool) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{cfg: cfg, cfgPath: cfgPath, log: logger, mock: mock, ctx: ctx, cancel: cancel}
}

// Run blocks, driving the display loop until Stop is called.
func (s *Service) Run() {
	s.log.Info("scoreboard service starting", "rotation", s.cfg.Rotation, "mock", s.mock)

	var logoCache *logos.Cache
	if store, err := logos.NewSqliteStore(s.cfg.DBPath); err != nil {
		// logos are cosmetic; run without persistence
		s.log.Error("failed to open logo store", "path", s.cfg.DBPath, "err", err)
	} else {
		s.store = store
		defer store.Close()
		logoCache = logos.NewCache(store)
	}

	fetch := cache.FetchFunc(mockfeed.Fetch)
	if !s.mock {
		catalog, err := feeds.Load(s.cfg.FeedsPath)
		if err != nil {
			s.log.Error("failed to load feed catalog", "path", s.cfg.FeedsPath, "err", err)
			return
		}
		client := espn.NewClient(catalog, s.cfg.FetchTimeout(), s.cfg.FeedRatePerSecond, s.cfg.FeedBurst, s.log)
		fetch = client.FetchEvents
	}

	eventCache := cache.New(fetch, s.cfg.CacheTTL(), s.log)
	s.sched = rotation.New(rotation.CacheSource{Cache: eventCache}, s.cfg.Rotation, s.cfg.IncludeEmptyBatches)
	s.driver = display.NewConsole(s.cfg, logoCache, s.log)

	metrics.Serve(s.ctx, s.cfg.MetricsAddr, s.log)
	go s.reloadLoop()

	for {
		batch, ok := s.sched.Next(s.ctx)
		if !ok {
			s.log.Info("scoreboard service stopping")
			return
		}
		var err error
		if len(batch.Games) == 0 {
			err = s.driver.ShowIdle(s.ctx, batch.Sport)
		} else {
			err = s.driver.ShowBatch(s.ctx, batch.Games)
		}
		if err != nil {
			if errors.Is(err, context.Canceled) {
				s.log.Info("scoreboard service stopping")
				return
			}
			s.log.Error("display error", "sport", batch.Sport, "err", err)
			time.Sleep(time.Second)
		}
	}
}

// reloadLoop re-reads the config file periodically so the rotation order can
// be changed by editing it. Other settings apply on restart.
func (s *Service) reloadLoop() {
	ticker := time.NewTicker(configReloadInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			cfg, err := config.Load(s.cfgPath)
			if err != nil {
				s.log.Error("config reload failed", "err", err)
				continue
			}
			s.sched.SetRotation(cfg.Rotation)
			s.log.Debug("config reloaded", "rotation", cfg.Rotation)
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Service) Stop() {
	s.cancel()
}
