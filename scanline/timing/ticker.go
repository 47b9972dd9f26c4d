package timing

import "time"

// TickerLimiter paces frames with a time.Ticker. Missed ticks are dropped
// by the ticker, so a slow frame is never followed by a burst.
type TickerLimiter struct {
	period time.Duration
	ticker *time.Ticker
	start  time.Time
	frames int64
}

func NewTickerLimiter(fps int) *TickerLimiter {
	period := FrameDuration(fps)
	return &TickerLimiter{
		period: period,
		ticker: time.NewTicker(period),
		start:  time.Now(),
	}
}

func (t *TickerLimiter) WaitForNextFrame() {
	<-t.ticker.C
	t.frames++
}

func (t *TickerLimiter) Reset() {
	t.ticker.Reset(t.period)
	t.start = time.Now()
	t.frames = 0
}

// Stats compares rendered frames with the wall clock since the last reset.
func (t *TickerLimiter) Stats() Stats {
	return newStats(t.frames, t.start, t.period)
}

// Stop releases the ticker.
func (t *TickerLimiter) Stop() {
	t.ticker.Stop()
}
