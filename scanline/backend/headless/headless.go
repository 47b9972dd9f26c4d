package headless

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/valerio/go-scanline/scanline/backend"
	"github.com/valerio/go-scanline/scanline/debug"
	"github.com/valerio/go-scanline/scanline/video"
)

// Backend renders a fixed number of frames without any output device,
// optionally saving periodic snapshots.
type Backend struct {
	config         backend.Config
	frameCount     int
	maxFrames      int
	snapshotConfig SnapshotConfig
	saved          []string
}

// SnapshotConfig holds configuration for frame snapshots.
type SnapshotConfig struct {
	Enabled   bool
	Interval  int    // Save a snapshot every N frames
	Directory string // Directory to save snapshots
	SceneName string // Prefix of snapshot filenames
	Format    debug.Format
	Scale     int
}

func New(maxFrames int, snapshotConfig SnapshotConfig) *Backend {
	return &Backend{
		maxFrames:      maxFrames,
		snapshotConfig: snapshotConfig,
	}
}

func (h *Backend) Init(config backend.Config) error {
	if h.maxFrames <= 0 {
		return fmt.Errorf("headless mode requires a positive frame count, got %d", h.maxFrames)
	}
	h.config = config

	slog.Info("Running headless mode",
		"title", config.Title,
		"frames", h.maxFrames,
		"snapshot_interval", h.snapshotConfig.Interval,
		"snapshot_dir", h.snapshotConfig.Directory)
	return nil
}

// Update counts a frame, saves snapshots and requests a quit once the
// target frame count is reached.
func (h *Backend) Update(frame *video.Framebuffer) error {
	h.frameCount++

	if h.snapshotConfig.Enabled && h.frameCount%h.snapshotConfig.Interval == 0 {
		h.saveSnapshot(frame)
	}

	if h.frameCount%10 == 0 {
		slog.Info("Frame progress", "completed", h.frameCount, "total", h.maxFrames)
	}

	if h.frameCount >= h.maxFrames {
		// save the final frame unless it was just saved
		if h.snapshotConfig.Enabled && h.frameCount%h.snapshotConfig.Interval != 0 {
			h.saveSnapshot(frame)
		}

		if h.snapshotConfig.Enabled {
			slog.Info("Headless execution completed", "frames", h.maxFrames, "snapshots_saved_to", h.snapshotConfig.Directory)
		} else {
			slog.Info("Headless execution completed", "frames", h.maxFrames)
		}
		h.config.Callbacks.Quit()
	}
	return nil
}

func (h *Backend) Cleanup() error {
	return nil
}

// FrameCount returns the number of frames consumed so far.
func (h *Backend) FrameCount() int {
	return h.frameCount
}

// Snapshots returns the paths of the snapshots written so far.
func (h *Backend) Snapshots() []string {
	return h.saved
}

// CreateSnapshotConfig creates a snapshot configuration from CLI parameters.
// An empty directory selects a new temporary directory.
func CreateSnapshotConfig(interval int, directory, sceneName string, format debug.Format, scale int) (SnapshotConfig, error) {
	config := SnapshotConfig{
		Enabled:   interval > 0,
		Interval:  interval,
		SceneName: sceneName,
		Format:    format,
		Scale:     scale,
	}

	if !config.Enabled {
		return config, nil
	}

	if directory == "" {
		tempDir, err := os.MkdirTemp("", "scanline-snapshots-*")
		if err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		config.Directory = tempDir
	} else {
		if err := os.MkdirAll(directory, 0755); err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		config.Directory = directory
	}

	return config, nil
}

func (h *Backend) saveSnapshot(frame *video.Framebuffer) {
	baseName := fmt.Sprintf("%s_frame_%d", h.snapshotConfig.SceneName, h.frameCount)

	path, err := debug.SaveFrameToDir(frame, baseName, h.snapshotConfig.Directory, h.snapshotConfig.Format, h.snapshotConfig.Scale)
	if err != nil {
		slog.Error("Failed to save snapshot", "frame", h.frameCount, "error", err)
		return
	}
	h.saved = append(h.saved, path)
}
