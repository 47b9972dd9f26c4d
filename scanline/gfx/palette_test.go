package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio/go-scanline/scanline/display"
)

func TestNewPalette(t *testing.T) {
	tests := []struct {
		name    string
		entries int
		wantErr bool
	}{
		{name: "single entry", entries: 1},
		{name: "full", entries: 256},
		{name: "empty", entries: 0, wantErr: true},
		{name: "too large", entries: 257, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPalette(tt.entries)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrSize)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.entries, p.Len())
			assert.Len(t, p.Colors(), MaxPaletteEntries)
			assert.Equal(t, uint32(display.OpaqueAlpha), p.Color(0))
		})
	}
}

func TestPalette_SetColor(t *testing.T) {
	p, err := NewPalette(4)
	require.NoError(t, err)

	require.NoError(t, p.SetColor(2, 10, 20, 30))
	assert.Equal(t, display.PackRGB(10, 20, 30), p.Color(2))
	assert.ErrorIs(t, p.SetColor(4, 1, 1, 1), ErrIndex)
	assert.Equal(t, uint32(0), p.Color(10))

	clone := p.Clone()
	require.NoError(t, clone.SetColor(2, 0, 0, 0))
	assert.Equal(t, display.PackRGB(10, 20, 30), p.Color(2), "clone is independent")
}

func TestPalette_Edit(t *testing.T) {
	newPalette := func() *Palette {
		p, err := NewPalette(3)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			require.NoError(t, p.SetColor(i, 100, 150, 200))
		}
		return p
	}

	tests := []struct {
		name     string
		edit     func(p *Palette) error
		expected uint32
	}{
		{
			name:     "add clamps",
			edit:     func(p *Palette) error { return p.AddColor(100, 100, 100, 1, 1) },
			expected: display.PackRGB(200, 250, 255),
		},
		{
			name:     "sub clamps",
			edit:     func(p *Palette) error { return p.SubColor(150, 100, 50, 1, 1) },
			expected: display.PackRGB(0, 50, 150),
		},
		{
			name:     "mod halves",
			edit:     func(p *Palette) error { return p.ModColor(128, 128, 128, 1, 1) },
			expected: display.PackRGB(50, 75, 100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPalette()
			require.NoError(t, tt.edit(p))
			assert.Equal(t, tt.expected, p.Color(1))
			assert.Equal(t, display.PackRGB(100, 150, 200), p.Color(0), "entries before start untouched")
			assert.Equal(t, display.PackRGB(100, 150, 200), p.Color(2), "entries past the range untouched")
		})
	}

	t.Run("start out of range", func(t *testing.T) {
		assert.ErrorIs(t, newPalette().AddColor(1, 1, 1, 3, 1), ErrIndex)
	})
}

func TestMixPalettes(t *testing.T) {
	black, err := NewPalette(2)
	require.NoError(t, err)
	white, err := NewPalette(2)
	require.NoError(t, err)
	require.NoError(t, white.SetColor(0, 255, 255, 255))
	require.NoError(t, white.SetColor(1, 255, 255, 255))
	dst, err := NewPalette(2)
	require.NoError(t, err)

	require.NoError(t, MixPalettes(black, white, dst, 0))
	assert.Equal(t, display.PackRGB(0, 0, 0), dst.Color(0))

	require.NoError(t, MixPalettes(black, white, dst, 255))
	assert.Equal(t, display.PackRGB(255, 255, 255), dst.Color(1))

	assert.ErrorIs(t, MixPalettes(nil, white, dst, 1), ErrNilResource)
}
