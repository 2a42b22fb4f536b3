package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"paintbox/app"
	"paintbox/config"
	"paintbox/hal"
	"paintbox/internal/buildinfo"
	"paintbox/scene"

	"github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		cfgPath     string
		watch       bool
		renderer    string
		term        bool
		play        string
		hz          int
		printConfig bool
		version     bool
		headless    hal.HeadlessConfig
	)
	flag.StringVar(&cfgPath, "config", "", "TOML settings file (defaults apply when empty).")
	flag.BoolVar(&watch, "watch", false, "Reload -config when it changes.")
	flag.StringVar(&renderer, "renderer", "soft", "Canvas renderer: soft or gpu.")
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.BoolVar(&term, "term", false, "Preview the canvases in the terminal.")
	flag.IntVar(&hz, "hz", 0, "Tick rate; overrides window.hz from the config.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&headless.SnapshotDir, "snapshot", "", "Write a PNG of the last headless frame into this directory.")
	flag.StringVar(&play, "play", "", "Comma-separated scenes to start playing: flower,car,robot.")
	flag.BoolVar(&printConfig, "print-config", false, "Print the effective config and exit.")
	flag.BoolVar(&version, "version", false, "Print the build version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return nil
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if hz > 0 {
		cfg.Window.Hz = hz
	}
	if printConfig {
		return config.Write(os.Stdout, cfg)
	}

	backend, err := hal.ParseBackendKind(renderer)
	if err != nil {
		return err
	}
	autoplay, err := parsePlay(play)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	appOpts := []app.Option{app.WithAutoplay(autoplay...)}
	if watch {
		if cfgPath == "" {
			return errors.New("-watch needs -config")
		}
		reloads := make(chan config.Config, 1)
		lg := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: cfg.Log.Timestamps,
			TimeFormat:      time.TimeOnly,
			Prefix:          "config",
		})
		go func() {
			if err := config.Watch(ctx, cfgPath, lg, reloads); err != nil {
				lg.Error("watch stopped", "err", err)
			}
		}()
		appOpts = append(appOpts, app.WithReload(reloads))
	}

	opts := hal.Options{
		Title:         cfg.Window.Title,
		Canvases:      len(scene.IDs),
		Width:         cfg.Canvas.Width,
		Height:        cfg.Canvas.Height,
		Scale:         cfg.Window.Scale,
		Hz:            cfg.Window.Hz,
		Backend:       backend,
		LogLevel:      cfg.Log.Level,
		LogTimestamps: cfg.Log.Timestamps,
	}
	newApp := func(h hal.HAL) (func() error, error) {
		s, err := app.New(h, cfg, appOpts...)
		if err != nil {
			return nil, err
		}
		return s.Step, nil
	}

	switch {
	case headless.Enabled:
		headless.Hz = cfg.Window.Hz
		err = hal.RunHeadless(ctx, opts, newApp, headless)
	case term:
		err = hal.RunTerminal(ctx, opts, newApp)
	default:
		err = hal.RunWindow(opts, newApp)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func parsePlay(s string) ([]scene.ID, error) {
	if s == "" {
		return nil, nil
	}
	var ids []scene.ID
	for _, name := range strings.Split(s, ",") {
		id, err := scene.ParseID(strings.TrimSpace(name))
		if err != nil {
			return nil, fmt.Errorf("-play: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
