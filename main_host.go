package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"gamedebug/app"
	"gamedebug/debug"
	"gamedebug/hal"
	"gamedebug/internal/buildinfo"
	"gamedebug/internal/config"

	"github.com/rs/zerolog"
)

func main() {
	var (
		cfgPath    string
		dumpConfig bool
	)
	flag.StringVar(&cfgPath, "config", "", "YAML config file.")
	flag.BoolVar(&dumpConfig, "dump-config", false, "Print the effective config and exit.")
	headless := flag.Bool("headless", false, "Run without a window.")
	hz := flag.Int("hz", 0, "Tick rate in headless mode (0 = config).")
	ticks := flag.Uint64("ticks", 0, "Stop after N ticks in headless mode (0 = config).")
	enabled := flag.Bool("enabled", true, "Start with the debug overlay on.")
	producers := flag.Int("producers", -1, "Concurrent producer workers (-1 = config).")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "headless":
			cfg.Headless.Enabled = *headless
		case "hz":
			cfg.Headless.Hz = *hz
		case "ticks":
			cfg.Headless.Ticks = *ticks
		case "enabled":
			cfg.Debug.StartEnabled = *enabled
		case "producers":
			cfg.Demo.Producers = *producers
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if dumpConfig {
		if err := cfg.Dump(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := hal.NewLogger(os.Stderr, level)
	log.Info().Str("build", buildinfo.Short()).Bool("headless", cfg.Headless.Enabled).Msg("gamedebug starting")

	in := debug.Default()
	var game *app.Game
	newApp := func(h hal.HAL) func() error {
		game = app.New(h, in, app.Config{
			StartEnabled: cfg.Debug.StartEnabled,
			Echo:         cfg.Debug.Echo,
			Producers:    cfg.Demo.Producers,
			Entities:     cfg.Demo.Entities,
		})
		return game.Step
	}
	host := hal.HostConfig{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Scale:  cfg.Window.Scale,
		TPS:    cfg.Window.TPS,
	}

	if cfg.Headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, host, log, newApp, hal.HeadlessConfig{
			Enabled:    true,
			Hz:         cfg.Headless.Hz,
			Ticks:      cfg.Headless.Ticks,
			StepBudget: cfg.Headless.StepBudget,
		})
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	} else {
		err = hal.RunWindow(host, log, newApp)
	}

	if game != nil {
		game.Close()
		if derr := game.DumpLog(os.Stdout, cfg.Debug.DumpOnExit); derr != nil {
			log.Warn().Err(derr).Msg("exit dump failed")
		}
	}
	if err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}
