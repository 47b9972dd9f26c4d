package demo

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/valerio/go-scanline/scanline/display"
)

// frameTime is the tween time step of one rendered frame.
const frameTime = float32(1.0) / display.DefaultFPS

// pingPong eases a value back and forth between two ends forever.
type pingPong struct {
	from, to float32
	duration float32
	fn       ease.TweenFunc
	tween    *gween.Tween
	value    float32
}

func newPingPong(from, to, duration float32, fn ease.TweenFunc) *pingPong {
	return &pingPong{
		from:     from,
		to:       to,
		duration: duration,
		fn:       fn,
		tween:    gween.New(from, to, duration, fn),
		value:    from,
	}
}

// Step advances the tween by one frame and returns the current value.
func (p *pingPong) Step() float32 {
	val, finished := p.tween.Update(frameTime)
	p.value = val
	if finished {
		p.from, p.to = p.to, p.from
		p.tween = gween.New(p.from, p.to, p.duration, p.fn)
	}
	return p.value
}

// Value returns the last computed value.
func (p *pingPong) Value() float32 { return p.value }
