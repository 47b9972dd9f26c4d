package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/valerio/go-scanline/scanline"
	"github.com/valerio/go-scanline/scanline/backend/headless"
	"github.com/valerio/go-scanline/scanline/debug"
	"github.com/valerio/go-scanline/scanline/demo"
	"github.com/valerio/go-scanline/scanline/display"
	"github.com/valerio/go-scanline/scanline/timing"
	"github.com/valerio/go-scanline/scanline/video"
)

func main() {
	defaults := video.DefaultConfig()

	app := cli.NewApp()
	app.Name = "scanline"
	app.Description = "A scanline-based 2D tile and sprite renderer"
	app.Usage = "scanline [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "scene",
			Usage: fmt.Sprintf("Scene to render (%s)", strings.Join(demo.Names(), ", ")),
			Value: demo.DefaultScene,
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to render",
			Value: 60,
		},
		cli.IntFlag{
			Name:  "width",
			Usage: "Framebuffer width in pixels",
			Value: defaults.Width,
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "Framebuffer height in pixels",
			Value: defaults.Height,
		},
		cli.IntFlag{
			Name:  "layers",
			Usage: "Number of layers",
			Value: defaults.NumLayers,
		},
		cli.IntFlag{
			Name:  "sprites",
			Usage: "Number of sprites",
			Value: defaults.NumSprites,
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save frame snapshots every N frames (0 = only the last frame)",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save frame snapshots (default: temp directory)",
		},
		cli.StringFlag{
			Name:  "format",
			Usage: "Snapshot format (png, bmp, txt)",
			Value: string(debug.FormatPNG),
		},
		cli.IntFlag{
			Name:  "scale",
			Usage: "Snapshot scale factor",
			Value: display.DefaultPixelScale,
		},
		cli.IntFlag{
			Name:  "fps",
			Usage: fmt.Sprintf("Frames per second to pace rendering at, e.g. %d (0 = as fast as possible)", display.DefaultFPS),
			Value: 0,
		},
		cli.StringFlag{
			Name:  "limiter",
			Usage: "Frame limiter when --fps is set (adaptive, ticker)",
			Value: "adaptive",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level (debug, info, warn, error)",
			Value: "info",
		},
	}
	app.Action = runRenderer

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running renderer", "error", err)
		os.Exit(1)
	}
}

func runRenderer(c *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	frames := c.Int("frames")
	if frames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", frames)
	}

	format, err := debug.ParseFormat(c.String("format"))
	if err != nil {
		return err
	}

	interval := c.Int("snapshot-interval")
	if interval <= 0 {
		interval = frames
	}
	sceneName := c.String("scene")
	snapshots, err := headless.CreateSnapshotConfig(interval, c.String("snapshot-dir"), sceneName, format, c.Int("scale"))
	if err != nil {
		return err
	}

	limiter, err := timing.New(c.String("limiter"), c.Int("fps"))
	if err != nil {
		return err
	}
	if ticker, ok := limiter.(*timing.TickerLimiter); ok {
		defer ticker.Stop()
	}

	runner, err := scanline.NewRunner(scanline.Config{
		Engine: video.Config{
			Width:      c.Int("width"),
			Height:     c.Int("height"),
			NumLayers:  c.Int("layers"),
			NumSprites: c.Int("sprites"),
			Logger:     logger,
		},
		Scene:   sceneName,
		Title:   "scanline - " + sceneName,
		Scale:   c.Int("scale"),
		Limiter: limiter,
	}, headless.New(frames, snapshots))
	if err != nil {
		return err
	}
	defer runner.Close()

	return runner.Run()
}
