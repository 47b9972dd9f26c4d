package timing

import (
	"fmt"
	"time"
)

// Limiter paces the render loop.
type Limiter interface {
	// WaitForNextFrame blocks until it's time for the next frame.
	// Returns immediately if timing is behind schedule.
	WaitForNextFrame()

	// Reset resets the timing state, useful after pauses.
	Reset()
}

// Stats reports how a paced render loop keeps up with its target rate.
type Stats struct {
	// Rendered is the number of frames waited for.
	Rendered int64
	// Expected is the number of frame periods elapsed on the wall clock.
	Expected int64
}

// Behind returns how many frames the loop lags the wall clock.
func (s Stats) Behind() int64 {
	return max(s.Expected-s.Rendered, 0)
}

func newStats(rendered int64, start time.Time, period time.Duration) Stats {
	s := Stats{Rendered: rendered}
	if period > 0 {
		s.Expected = int64(time.Since(start) / period)
	}
	return s
}

// StatsReporter is implemented by limiters that track their pacing.
type StatsReporter interface {
	Stats() Stats
}

// NewNoOpLimiter returns a limiter that doesn't limit (for offline rendering).
func NewNoOpLimiter() Limiter {
	return &noOpLimiter{}
}

type noOpLimiter struct{}

func (n *noOpLimiter) WaitForNextFrame() {}
func (n *noOpLimiter) Reset()            {}

// FrameDuration returns the duration of a single frame at fps frames per
// second.
func FrameDuration(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

// New returns the limiter called name pacing to fps. A non-positive fps
// disables limiting.
func New(name string, fps int) (Limiter, error) {
	if fps <= 0 {
		return NewNoOpLimiter(), nil
	}
	switch name {
	case "", "adaptive":
		return NewAdaptiveLimiter(fps), nil
	case "ticker":
		return NewTickerLimiter(fps), nil
	default:
		return nil, fmt.Errorf("unknown limiter %q (want adaptive or ticker)", name)
	}
}
