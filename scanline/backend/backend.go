package backend

import "github.com/valerio/go-scanline/scanline/video"

// Backend is an output for rendered frames. Backends are responsible for:
// - presenting or storing each frame handed to Update
// - telling the runner when to stop through Callbacks.OnQuit
type Backend interface {
	// Init configures the backend. It must be called before Update.
	Init(config Config) error

	// Update consumes one completed frame. The framebuffer is reused by the
	// runner and must not be retained after Update returns.
	Update(frame *video.Framebuffer) error

	// Cleanup releases backend resources.
	Cleanup() error
}

// Config holds configuration for backends.
type Config struct {
	Title     string
	Scale     int
	Callbacks Callbacks
}

// Callbacks lets a backend talk back to the runner.
type Callbacks struct {
	// OnQuit requests a shutdown after the current frame.
	OnQuit func()
}

// Quit invokes OnQuit when set.
func (c Callbacks) Quit() {
	if c.OnQuit != nil {
		c.OnQuit()
	}
}
