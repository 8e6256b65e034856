package main

import (
	"flag"
	"fmt"
	"os"

	ks "github.com/kardianos/service"

	"scoreboardd/internal/config"
	"scoreboardd/internal/logging"
	boardservice "scoreboardd/internal/service"
)

type program struct {
	cfgPath string
	mock    bool
	svc     *boardservice.Service
}

func (p *program) Start(s ks.Service) error {
	// Start must not block; Run drives the display loop until stopped.
	go func() {
		cfg, err := config.Load(p.cfgPath)
		if err != nil {
			fmt.Println("failed to load config:", err)
			return
		}
		logger := logging.New(cfg)
		p.svc = boardservice.New(cfg, p.cfgPath, logger, p.mock)
		p.svc.Run()
	}()
	return nil
}

func (p *program) Stop(s ks.Service) error {
	if p.svc != nil {
		p.svc.Stop()
	}
	return nil
}

func main() {
	install := flag.Bool("install", false, "install service")
	uninstall := flag.Bool("uninstall", false, "uninstall service")
	runNow := flag.Bool("run", false, "run in foreground")
	mock := flag.Bool("mock", false, "use canned demo events instead of live feeds")
	cfgPath := flag.String("config", "", "config file path (default: data dir config.toml)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Println("config load error:", err)
		os.Exit(1)
	}
	logger := logging.New(cfg)

	svcConfig := &ks.Config{
		Name:        "Scoreboardd",
		DisplayName: "Multi-sport Scoreboard",
		Description: "Rotating live scores display daemon",
	}

	prg := &program{cfgPath: *cfgPath, mock: *mock}
	s, err := ks.New(prg, svcConfig)
	if err != nil {
		logger.Error("service.New failed", "err", err)
		os.Exit(1)
	}

	if *install {
		if err := s.Install(); err != nil {
			logger.Error("install failed", "err", err)
		} else {
			logger.Info("service installed")
		}
		return
	}
	if *uninstall {
		if err := s.Uninstall(); err != nil {
			logger.Error("uninstall failed", "err", err)
		} else {
			logger.Info("service uninstalled")
		}
		return
	}
	if *runNow {
		svc := boardservice.New(cfg, *cfgPath, logger, *mock)
		svc.Run()
		return
	}

	if err := s.Run(); err != nil {
		logger.Error("service run error", "err", err)
	}
}
