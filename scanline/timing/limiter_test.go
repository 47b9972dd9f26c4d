package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameDuration(t *testing.T) {
	tests := []struct {
		name     string
		fps      int
		expected time.Duration
	}{
		{name: "60 fps", fps: 60, expected: 16666666 * time.Nanosecond},
		{name: "50 fps", fps: 50, expected: 20 * time.Millisecond},
		{name: "unlimited", fps: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FrameDuration(tt.fps))
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		limiter  string
		fps      int
		expected Limiter
		wantErr  bool
	}{
		{name: "no fps means no limit", limiter: "ticker", fps: 0, expected: &noOpLimiter{}},
		{name: "default is adaptive", limiter: "", fps: 60, expected: &AdaptiveLimiter{}},
		{name: "ticker", limiter: "ticker", fps: 60, expected: &TickerLimiter{}},
		{name: "unknown", limiter: "sleepy", fps: 60, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.limiter, tt.fps)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.expected, l)
			if ticker, ok := l.(*TickerLimiter); ok {
				ticker.Stop()
			}
		})
	}
}

func TestAdaptiveLimiter_Paces(t *testing.T) {
	l := NewAdaptiveLimiter(200)
	start := time.Now()
	for i := 0; i < 4; i++ {
		l.WaitForNextFrame()
	}
	// the first frame is due immediately, the next three 5ms apart
	assert.GreaterOrEqual(t, time.Since(start), 14*time.Millisecond)

	stats := l.Stats()
	assert.Equal(t, int64(4), stats.Rendered)
	assert.GreaterOrEqual(t, stats.Expected, int64(2))

	l.Reset()
	assert.Zero(t, l.Stats().Rendered)
}

func TestStats_Behind(t *testing.T) {
	tests := []struct {
		name     string
		stats    Stats
		expected int64
	}{
		{name: "on schedule", stats: Stats{Rendered: 60, Expected: 60}, expected: 0},
		{name: "lagging", stats: Stats{Rendered: 50, Expected: 60}, expected: 10},
		{name: "ahead counts as on schedule", stats: Stats{Rendered: 61, Expected: 60}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.stats.Behind())
		})
	}
}

func TestTickerLimiter_Stats(t *testing.T) {
	l := NewTickerLimiter(500)
	defer l.Stop()
	for i := 0; i < 3; i++ {
		l.WaitForNextFrame()
	}
	assert.Equal(t, int64(3), l.Stats().Rendered)

	var reporter StatsReporter = l
	l.Reset()
	assert.Zero(t, reporter.Stats().Rendered)
}
