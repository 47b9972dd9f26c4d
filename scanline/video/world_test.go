package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorld_Parallax(t *testing.T) {
	tests := []struct {
		name           string
		fx, fy         float32
		ox, oy         int
		worldX, worldY int
		expectedH      int
		expectedV      int
	}{
		{name: "moves with the camera", fx: 1, fy: 1, worldX: 5, worldY: 6, expectedH: 5, expectedV: 6},
		{name: "half speed", fx: 0.5, fy: 1, worldX: 20, worldY: 6, expectedH: 10, expectedV: 6},
		{name: "offset", fx: 1, fy: 1, ox: 4, oy: 2, worldX: 10, worldY: 8, expectedH: 6, expectedV: 6},
		{name: "wraps", fx: 1, fy: 0, worldX: 40, worldY: 99, expectedH: 8, expectedV: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, _, _ := newTiledEngine(t, 16, 16)
			require.NoError(t, e.SetLayerParallaxFactor(0, tt.fx, tt.fy))
			require.NoError(t, e.SetLayerWorldOffset(0, tt.ox, tt.oy))
			e.SetWorldPosition(tt.worldX, tt.worldY)

			e.BeginFrame(0)

			h, v, err := e.LayerPosition(0)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedH, h)
			assert.Equal(t, tt.expectedV, v)
		})
	}
}

func TestWorld_Sprites(t *testing.T) {
	e, _ := newTestEngine(t, 32, 32)
	ss := newTestSpriteset(t, newTestPalette(t))
	require.NoError(t, e.ConfigSprite(0, ss, 0))
	require.NoError(t, e.ConfigSprite(1, ss, 0))

	require.NoError(t, e.SetSpriteWorldPosition(0, 30, 10))
	require.NoError(t, e.SetSpritePosition(1, 3, 3))
	e.SetWorldPosition(20, 6)
	e.BeginFrame(0)

	state, err := e.SpriteState(0)
	require.NoError(t, err)
	assert.Equal(t, [2]int{10, 4}, [2]int{state.X, state.Y})

	state, err = e.SpriteState(1)
	require.NoError(t, err)
	assert.Equal(t, [2]int{3, 3}, [2]int{state.X, state.Y}, "screen-space sprites ignore the camera")

	require.NoError(t, e.SetSpritePosition(0, 1, 1))
	e.SetWorldPosition(0, 0)
	e.BeginFrame(1)

	state, err = e.SpriteState(0)
	require.NoError(t, err)
	assert.Equal(t, [2]int{1, 1}, [2]int{state.X, state.Y}, "SetSpritePosition detaches from the world")
}
