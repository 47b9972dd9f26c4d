package video

import (
	"github.com/valerio/go-scanline/scanline/blit"
	"github.com/valerio/go-scanline/scanline/display"
)

// window restricts a layer to a rectangle, or to everything but the
// rectangle when inverted. The optional color fills the hidden part.
type window struct {
	enabled bool
	area    rect
	invert  bool

	colorOn   bool
	color     uint32
	blendMode blit.BlendMode
	blend     *blit.Table
}

// span is a half-open column range [x1, x2).
type span struct {
	x1, x2 int
}

// layerSpans returns the column ranges of scanline nscan where layer l is
// visible, inside its clip rectangle. The result aliases engine scratch
// space and is only valid until the next call.
func (e *Engine) layerSpans(l *Layer, nscan int) []span {
	spans := e.spans[:0]
	cx1, cx2 := l.clip.x1, l.clip.x2
	if cx1 >= cx2 {
		e.spans = spans
		return spans
	}
	w := l.window
	if !w.enabled {
		spans = append(spans, span{cx1, cx2})
		e.spans = spans
		return spans
	}

	inside := nscan >= w.area.y1 && nscan < w.area.y2
	wx1, wx2 := clamp(w.area.x1, cx1, cx2), clamp(w.area.x2, cx1, cx2)
	switch {
	case !w.invert:
		if inside && wx1 < wx2 {
			spans = append(spans, span{wx1, wx2})
		}
	case !inside || wx1 >= wx2:
		spans = append(spans, span{cx1, cx2})
	default:
		if cx1 < wx1 {
			spans = append(spans, span{cx1, wx1})
		}
		if wx2 < cx2 {
			spans = append(spans, span{wx2, cx2})
		}
	}
	e.spans = spans
	return spans
}

// drawWindowColor fills the parts of the clip range not covered by the
// visible spans.
func (e *Engine) drawWindowColor(l *Layer, dst []uint32, visible []span) {
	x := l.clip.x1
	for _, s := range visible {
		if x < s.x1 {
			blit.BlitColor(dst[x:s.x1], l.window.color, l.window.blend)
		}
		x = s.x2
	}
	if x < l.clip.x2 {
		blit.BlitColor(dst[x:l.clip.x2], l.window.color, l.window.blend)
	}
}

// SetLayerWindow limits layer n to framebuffer rectangle [x1,x2)×[y1,y2),
// or to its outside when invert is set.
func (e *Engine) SetLayerWindow(n, x1, y1, x2, y2 int, invert bool) error {
	l, err := e.layer(n, "SetLayerWindow")
	if err != nil {
		return err
	}
	if x1 > x2 || y1 > y2 {
		return e.fail(ErrWrongSize, "SetLayerWindow", "layer", n)
	}
	l.window.enabled = true
	l.window.area = rect{x1, y1, x2, y2}
	l.window.invert = invert
	return e.succeed()
}

// DisableLayerWindow removes the window of layer n, including its color.
func (e *Engine) DisableLayerWindow(n int) error {
	l, err := e.layer(n, "DisableLayerWindow")
	if err != nil {
		return err
	}
	l.window = window{}
	return e.succeed()
}

// SetLayerWindowColor fills the part of layer n hidden by its window with
// a solid color, combined with the given blend mode.
func (e *Engine) SetLayerWindowColor(n int, r, g, b uint8, mode blit.BlendMode) error {
	l, err := e.layer(n, "SetLayerWindowColor")
	if err != nil {
		return err
	}
	l.window.colorOn = true
	l.window.color = display.PackRGB(r, g, b)
	l.window.blendMode = mode
	l.window.blend = e.blendTable(mode)
	return e.succeed()
}

// DisableLayerWindowColor stops filling the hidden part of layer n.
func (e *Engine) DisableLayerWindowColor(n int) error {
	l, err := e.layer(n, "DisableLayerWindowColor")
	if err != nil {
		return err
	}
	l.window.colorOn = false
	return e.succeed()
}
