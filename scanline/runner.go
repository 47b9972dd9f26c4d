// Package scanline ties the renderer to a scene, a presentation backend
// and a frame limiter.
package scanline

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/valerio/go-scanline/scanline/backend"
	"github.com/valerio/go-scanline/scanline/demo"
	"github.com/valerio/go-scanline/scanline/timing"
	"github.com/valerio/go-scanline/scanline/video"
)

// Config describes one rendering session.
type Config struct {
	Engine  video.Config
	Scene   string
	Title   string
	Scale   int
	Limiter timing.Limiter
}

// Runner renders a scene frame after frame and hands each frame to a
// backend until the backend asks to quit.
type Runner struct {
	engine  *video.Engine
	target  *video.Framebuffer
	scene   demo.Scene
	backend backend.Backend
	limiter timing.Limiter
	title   string
	scale   int
	frame   int
	quit    bool
}

// NewRunner creates the engine, binds its render target and sets up the
// requested scene.
func NewRunner(cfg Config, b backend.Backend) (*Runner, error) {
	if b == nil {
		return nil, errors.New("no backend provided")
	}
	name := cfg.Scene
	if name == "" {
		name = demo.DefaultScene
	}
	scene, err := demo.New(name)
	if err != nil {
		return nil, err
	}

	engine, err := video.New(cfg.Engine)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	target := video.NewFramebuffer(engine.Width(), engine.Height())
	if err := engine.SetRenderTarget(target); err != nil {
		engine.Close()
		return nil, err
	}
	if err := scene.Setup(engine); err != nil {
		engine.Close()
		return nil, fmt.Errorf("failed to set up scene %q: %w", name, err)
	}

	limiter := cfg.Limiter
	if limiter == nil {
		limiter = timing.NewNoOpLimiter()
	}
	scale := cfg.Scale
	if scale < 1 {
		scale = 1
	}

	return &Runner{
		engine:  engine,
		target:  target,
		scene:   scene,
		backend: b,
		limiter: limiter,
		title:   cfg.Title,
		scale:   scale,
	}, nil
}

// RunUntilFrame animates the scene and renders one full frame.
func (r *Runner) RunUntilFrame() error {
	r.scene.Update(r.engine, r.frame)
	if err := r.engine.UpdateFrame(r.frame); err != nil {
		return err
	}
	r.frame++
	r.limiter.WaitForNextFrame()
	return nil
}

// Run drives the render loop until the backend signals quit.
func (r *Runner) Run() error {
	err := r.backend.Init(backend.Config{
		Title: r.title,
		Scale: r.scale,
		Callbacks: backend.Callbacks{
			OnQuit: func() { r.quit = true },
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize backend: %w", err)
	}
	defer func() {
		if err := r.backend.Cleanup(); err != nil {
			slog.Error("Failed to clean up backend", "error", err)
		}
	}()

	slog.Info("Rendering scene", "scene", r.scene.Name(),
		"width", r.engine.Width(), "height", r.engine.Height())

	r.limiter.Reset()
	for !r.quit {
		if err := r.RunUntilFrame(); err != nil {
			return err
		}
		if err := r.backend.Update(r.target); err != nil {
			return fmt.Errorf("backend update failed at frame %d: %w", r.frame, err)
		}
	}

	if reporter, ok := r.limiter.(timing.StatsReporter); ok {
		stats := reporter.Stats()
		slog.Info("Frame pacing",
			"frames", r.frame,
			"expected", stats.Expected,
			"behind", stats.Behind())
	}
	return nil
}

// CurrentFrame returns the render target.
func (r *Runner) CurrentFrame() *video.Framebuffer { return r.target }

// FrameCount returns the number of frames rendered so far.
func (r *Runner) FrameCount() int { return r.frame }

// Engine exposes the underlying rendering context.
func (r *Runner) Engine() *video.Engine { return r.engine }

// Close releases the engine.
func (r *Runner) Close() {
	r.engine.Close()
}
