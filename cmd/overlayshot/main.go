// Command overlayshot runs the demo for a fixed number of frames without a
// window and writes the final framebuffer, overlay included, to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"gamedebug/app"
	"gamedebug/debug"
	"gamedebug/hal"
	"gamedebug/internal/config"

	"github.com/rs/zerolog"
)

const defaultOutPath = "overlay.png"

func main() {
	var (
		cfgPath string
		outPath string
		frames  int
		verbose bool
	)
	flag.StringVar(&cfgPath, "config", "", "YAML config file.")
	flag.StringVar(&outPath, "out", defaultOutPath, "Output PNG path.")
	flag.IntVar(&frames, "frames", 120, "Frames to simulate before capturing.")
	flag.BoolVar(&verbose, "v", false, "Log persistent records while running.")
	flag.Parse()

	if err := run(cfgPath, outPath, frames, verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfgPath, outPath string, frames int, verbose bool) error {
	if frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	h := hal.New(hal.HostConfig{Width: cfg.Window.Width, Height: cfg.Window.Height}, hal.NewLogger(os.Stderr, level))

	in := debug.New()
	g := app.New(h, in, app.Config{
		StartEnabled: true,
		Echo:         verbose,
		Producers:    cfg.Demo.Producers,
		Entities:     cfg.Demo.Entities,
	})
	defer g.Close()

	for i := 0; i < frames; i++ {
		if err := g.Step(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}

	img, err := hal.Snapshot(h.Display().Framebuffer())
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %q: %w", outPath, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %q: %w", outPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", outPath, err)
	}
	fmt.Printf("wrote %s (%dx%d, frame %d)\n", outPath, img.Bounds().Dx(), img.Bounds().Dy(), in.Frame())
	return nil
}
