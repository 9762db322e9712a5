package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"starfield/app"
	"starfield/hal"
	"starfield/internal/buildinfo"
	"starfield/internal/logging"
)

func main() {
	var (
		headless   hal.HeadlessConfig
		terminal   bool
		configPath string
		seed       int64
		width      int
		height     int
		scale      int
		logLevel   string
		version    bool
	)
	flag.BoolVar(&version, "version", false, "Print the version and exit.")
	flag.StringVar(&configPath, "config", "", "YAML config file.")
	flag.BoolVar(&terminal, "terminal", false, "Render in the terminal.")
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Frame rate in headless and terminal mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N frames in headless and terminal mode (0 = run forever).")
	flag.StringVar(&headless.Snapshot, "snapshot", "", "Write the last headless frame to this PNG file.")
	flag.Int64Var(&seed, "seed", -1, "Random seed (negative = wall clock).")
	flag.IntVar(&width, "width", 0, "Render width in pixels (overrides config).")
	flag.IntVar(&height, "height", 0, "Render height in pixels (overrides config).")
	flag.IntVar(&scale, "scale", 1, "Window scale factor.")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.Long())
		return
	}
	if err := run(headless, terminal, configPath, seed, width, height, scale, logLevel); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(headless hal.HeadlessConfig, terminal bool, configPath string, seed int64, width, height, scale int, logLevel string) error {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logging.SetLogger(logging.NewText(os.Stderr, level))

	cfg := app.DefaultConfig()
	if configPath != "" {
		if cfg, err = app.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if seed >= 0 {
		s := uint32(seed)
		cfg.Seed = &s
	}
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logging.Logger().Info("starting", "version", buildinfo.Short(), "config", configPath)

	newApp := func(h hal.HAL) (hal.App, error) {
		a, err := app.New(h, cfg)
		if err != nil {
			return nil, err
		}
		return a, nil
	}

	switch {
	case terminal:
		// The terminal owns stderr while running.
		logging.SetLogger(nil)
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		tc := hal.TerminalConfig{Hz: headless.Hz, Ticks: headless.Ticks}
		if width > 0 && height > 0 {
			tc.Width, tc.Height = cfg.Width, cfg.Height
		}
		return hal.RunTerminal(ctx, newApp, tc)
	case headless.Enabled:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		headless.Width, headless.Height = cfg.Width, cfg.Height
		return hal.RunHeadless(ctx, newApp, headless)
	}
	return hal.RunWindow(newApp, hal.WindowConfig{Width: cfg.Width, Height: cfg.Height, Scale: scale})
}
