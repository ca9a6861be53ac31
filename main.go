package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"bouncer/app"
	"bouncer/hal"
	"bouncer/internal/buildinfo"
	"bouncer/internal/config"
	"bouncer/internal/logging"

	"go.uber.org/zap"
)

func main() {
	var (
		configPath string
		headless   hal.HeadlessConfig
		useHead    bool
		seed       uint64
		debug      bool
		dumpConfig bool
		version    bool
	)
	flag.StringVar(&configPath, "config", "", "TOML config file (defaults apply to missing keys).")
	flag.BoolVar(&useHead, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&headless.Snapshot, "snapshot", "", "Write the last frame as PNG when headless mode stops.")
	flag.Uint64Var(&seed, "seed", 0, "Ball placement seed (overrides balls.seed).")
	flag.BoolVar(&debug, "debug", false, "Debug logging.")
	flag.BoolVar(&dumpConfig, "dump-config", false, "Print the effective config as TOML and exit.")
	flag.BoolVar(&version, "version", false, "Print version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	logger := logging.New(debug)
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Balls.Seed = seed
		}
	})
	if dumpConfig {
		if err := cfg.Encode(os.Stdout); err != nil {
			logger.Fatal("dump config", zap.Error(err))
		}
		return
	}

	logger.Info("starting", append(buildinfo.Fields(),
		zap.Bool("headless", useHead),
		zap.String("config", configPath))...)

	if err := run(cfg, useHead, headless, logger); err != nil {
		logger.Error("exit", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, useHead bool, headless hal.HeadlessConfig, logger *zap.Logger) error {
	newApp := app.Factory(cfg)
	if useHead {
		headless.Width = cfg.Window.Width
		headless.Height = cfg.Window.Height
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, newApp, headless, logger)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	return hal.RunWindow(hal.WindowConfig{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		X:         cfg.Window.X,
		Y:         cfg.Window.Y,
		Title:     cfg.Window.Title,
		Resizable: cfg.Window.Resizable,
		TPS:       cfg.Timing.FPS,
	}, newApp, logger)
}
