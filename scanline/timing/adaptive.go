package timing

import (
	"log/slog"
	"time"
)

// spinThreshold is the remaining wait under which the limiter spins
// instead of sleeping.
const spinThreshold = 2 * time.Millisecond

// AdaptiveLimiter sleeps for most of the frame and spins for the last
// stretch. Once per second of frames it compares the frames rendered
// with the frames the wall clock expects and nudges the schedule.
type AdaptiveLimiter struct {
	fps      int
	period   time.Duration
	start    time.Time
	deadline time.Time
	frames   int64
}

func NewAdaptiveLimiter(fps int) *AdaptiveLimiter {
	now := time.Now()
	return &AdaptiveLimiter{
		fps:      fps,
		period:   FrameDuration(fps),
		start:    now,
		deadline: now,
	}
}

func (a *AdaptiveLimiter) WaitForNextFrame() {
	now := time.Now()
	switch wait := a.deadline.Sub(now); {
	case wait > spinThreshold:
		time.Sleep(wait - time.Millisecond)
		spinUntil(a.deadline)
	case wait > 0:
		spinUntil(a.deadline)
	case wait < -5*time.Millisecond:
		// too far behind to catch up, drop the backlog
		a.deadline = now
	}

	a.deadline = a.deadline.Add(a.period)
	a.frames++

	if a.fps > 0 && a.frames%int64(a.fps) == 0 {
		stats := a.Stats()
		drift := time.Since(a.deadline)
		if drift.Abs() > 10*time.Millisecond {
			a.deadline = a.deadline.Add(drift / 10)
		}
		slog.Debug("Frame pacing",
			"rendered", stats.Rendered,
			"expected", stats.Expected,
			"drift_ms", drift.Milliseconds())
	}
}

func (a *AdaptiveLimiter) Reset() {
	a.start = time.Now()
	a.deadline = a.start
	a.frames = 0
}

// Stats compares rendered frames with the wall clock since the last reset.
func (a *AdaptiveLimiter) Stats() Stats {
	return newStats(a.frames, a.start, a.period)
}

func spinUntil(deadline time.Time) {
	for time.Now().Before(deadline) {
	}
}
