// Package demo holds procedural scenes that exercise the renderer's
// layers, sprites and per-scanline effects without external assets.
package demo

import (
	"fmt"
	"sort"

	"github.com/valerio/go-scanline/scanline/video"
)

// Scene configures an engine once and animates it every frame.
type Scene interface {
	Name() string
	// Setup binds resources to the engine's layers and sprites.
	Setup(e *video.Engine) error
	// Update runs before each frame is rendered.
	Update(e *video.Engine, frame int)
}

var registry = map[string]func() Scene{
	"parallax": func() Scene { return &parallaxScene{} },
	"rotozoom": func() Scene { return &rotozoomScene{} },
	"mosaic":   func() Scene { return &mosaicScene{} },
	"raster":   func() Scene { return &rasterScene{} },
}

// DefaultScene is the scene used when none is requested.
const DefaultScene = "parallax"

// New returns a fresh instance of the scene called name.
func New(name string) (Scene, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q, available: %v", name, Names())
	}
	return ctor(), nil
}

// Names lists the registered scenes in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
