package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio/go-scanline/scanline/display"
	"github.com/valerio/go-scanline/scanline/gfx"
)

func TestCompositor_Priority(t *testing.T) {
	tests := []struct {
		name string
		// setup configures the layer and sprite 0, which covers x 0-7
		setup    func(t *testing.T, e *Engine, ts *gfx.Tileset, tm *gfx.Tilemap)
		expected func(pal *gfx.Palette) uint32
	}{
		{
			name:     "regular sprite over regular tile",
			setup:    func(t *testing.T, e *Engine, ts *gfx.Tileset, tm *gfx.Tilemap) {},
			expected: func(pal *gfx.Palette) uint32 { return pal.Color(200) },
		},
		{
			name: "priority tile over regular sprite",
			setup: func(t *testing.T, e *Engine, ts *gfx.Tileset, tm *gfx.Tilemap) {
				require.NoError(t, tm.SetTile(0, 0, gfx.Tile{Index: 1, Flags: gfx.FlagPriority}))
			},
			expected: func(pal *gfx.Palette) uint32 { return pal.Color(int(tilePixel(1, 3, 3))) },
		},
		{
			name: "priority from tileset attributes",
			setup: func(t *testing.T, e *Engine, ts *gfx.Tileset, tm *gfx.Tilemap) {
				require.NoError(t, ts.SetAttributes(1, gfx.TileAttributes{Priority: true}))
			},
			expected: func(pal *gfx.Palette) uint32 { return pal.Color(int(tilePixel(1, 3, 3))) },
		},
		{
			name: "priority sprite over priority tile",
			setup: func(t *testing.T, e *Engine, ts *gfx.Tileset, tm *gfx.Tilemap) {
				require.NoError(t, tm.SetTile(0, 0, gfx.Tile{Index: 1, Flags: gfx.FlagPriority}))
				require.NoError(t, e.EnableSpriteFlag(0, gfx.FlagPriority, true))
			},
			expected: func(pal *gfx.Palette) uint32 { return pal.Color(200) },
		},
		{
			name: "priority layer over regular sprite",
			setup: func(t *testing.T, e *Engine, ts *gfx.Tileset, tm *gfx.Tilemap) {
				require.NoError(t, e.SetLayerPriority(0, true))
			},
			expected: func(pal *gfx.Palette) uint32 { return pal.Color(int(tilePixel(1, 3, 3))) },
		},
		{
			name: "priority sprite over priority layer",
			setup: func(t *testing.T, e *Engine, ts *gfx.Tileset, tm *gfx.Tilemap) {
				require.NoError(t, e.SetLayerPriority(0, true))
				require.NoError(t, e.SetSpriteFlags(0, gfx.FlagPriority))
			},
			expected: func(pal *gfx.Palette) uint32 { return pal.Color(200) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, fb := newTestEngine(t, 16, 8)
			pal := newTestPalette(t)
			ts := newTestTileset(t, 2, pal)
			tm := newTestTilemap(t, 1, 2, ts)
			require.NoError(t, e.SetLayerTilemap(0, tm))
			require.NoError(t, e.ConfigSprite(0, newTestSpriteset(t, pal), 0))
			require.NoError(t, e.SetSpritePicture(0, 1))

			tt.setup(t, e, ts, tm)
			renderFrame(t, e)

			assert.Equal(t, tt.expected(pal), fb.At(3, 3))
			assert.Equal(t, pal.Color(int(tilePixel(2, 3, 3))), fb.At(11, 3), "the other tile is untouched")
		})
	}
}

func TestCompositor_PriorityBitmapLayer(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, e *Engine)
	}{
		{name: "normal", setup: func(t *testing.T, e *Engine) {}},
		{name: "scaling", setup: func(t *testing.T, e *Engine) {
			require.NoError(t, e.SetLayerScaling(0, 2, 2))
		}},
		{name: "affine", setup: func(t *testing.T, e *Engine) {
			require.NoError(t, e.SetLayerTransform(0, 0, 0, 0, 1, 1))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, fb := newTestEngine(t, 16, 8)
			pal := newTestPalette(t)
			bm, err := gfx.NewBitmap(16, 8, pal)
			require.NoError(t, err)
			bm.Fill(0, 0, 16, 8, 50)

			require.NoError(t, e.SetLayerBitmap(0, bm))
			require.NoError(t, e.SetLayerPriority(0, true))
			require.NoError(t, e.ConfigSprite(0, newTestSpriteset(t, pal), 0))
			require.NoError(t, e.SetSpritePicture(0, 1))
			tt.setup(t, e)

			renderFrame(t, e)
			assert.Equal(t, pal.Color(50), fb.At(3, 3))
		})
	}
}

func TestCompositor_RasterCallback(t *testing.T) {
	e, fb, pal, _ := newTiledEngine(t, 16, 16)

	var lines []int
	e.SetRasterCallback(func(line int) {
		lines = append(lines, line)
		if line == 8 {
			require.NoError(t, e.SetLayerPosition(0, 8, 0))
		}
	})

	renderFrame(t, e)

	require.Len(t, lines, 16)
	for i, line := range lines {
		assert.Equal(t, i, line)
	}
	assert.Equal(t, pal.Color(int(mapPixel(0, 7, mapCols, mapTiles))), fb.At(0, 7))
	assert.Equal(t, pal.Color(int(mapPixel(8, 8, mapCols, mapTiles))), fb.At(0, 8), "change applies from that scanline")
}

func TestCompositor_FrameCallback(t *testing.T) {
	e, _ := newTestEngine(t, 16, 16)

	var frames []int
	e.SetFrameCallback(func(frame int) { frames = append(frames, frame) })

	for i := 0; i < 3; i++ {
		require.NoError(t, e.UpdateFrame(i*10))
	}
	assert.Equal(t, []int{0, 10, 20}, frames)
}

func TestCompositor_ScanlineStates(t *testing.T) {
	e, fb := newTestEngine(t, 4, 3)
	e.SetBGColor(1, 2, 3)

	e.BeginFrame(0)
	assert.True(t, e.DrawNextScanline())
	assert.True(t, e.DrawNextScanline())
	assert.Equal(t, 2, e.Line())
	assert.False(t, e.DrawNextScanline(), "last scanline reports the frame is done")
	assert.Equal(t, display.PackRGB(1, 2, 3), fb.At(3, 2))

	fb.Clear()
	assert.False(t, e.DrawNextScanline(), "done frames draw nothing")
	assert.Equal(t, uint32(0), fb.At(0, 0))

	require.NoError(t, e.SetRenderTarget(nil))
	e.BeginFrame(1)
	assert.False(t, e.DrawNextScanline())
	assert.ErrorIs(t, e.UpdateFrame(1), ErrNullPointer)
}

func TestCompositor_Background(t *testing.T) {
	t.Run("disabled color keeps framebuffer contents", func(t *testing.T) {
		e, fb := newTestEngine(t, 4, 4)
		e.DisableBGColor()
		for i := range fb.Pix {
			fb.Pix[i] = 0xFF123456
		}
		renderFrame(t, e)
		assert.Equal(t, uint32(0xFF123456), fb.At(2, 2))
	})

	t.Run("color from tilemap", func(t *testing.T) {
		e, fb := newTestEngine(t, 4, 4)
		tm, err := gfx.NewTilemap(1, 1, nil, display.PackRGB(9, 8, 7), nil)
		require.NoError(t, err)
		require.NoError(t, e.SetBGColorFromTilemap(tm))
		renderFrame(t, e)
		assert.Equal(t, display.PackRGB(9, 8, 7), fb.At(1, 1))
	})

	t.Run("bitmap limited to its size", func(t *testing.T) {
		e, fb := newTestEngine(t, 16, 8)
		pal := newTestPalette(t)
		bm, err := gfx.NewBitmap(8, 4, pal)
		require.NoError(t, err)
		bm.Fill(0, 0, 8, 4, 5)
		require.NoError(t, e.SetBGBitmap(bm))

		renderFrame(t, e)
		assert.Equal(t, pal.Color(5), fb.At(7, 3))
		assert.Equal(t, uint32(0), fb.At(8, 3))
		assert.Equal(t, uint32(0), fb.At(0, 4))

		other := pal.Clone()
		require.NoError(t, other.SetColor(5, 1, 1, 1))
		require.NoError(t, e.SetBGPalette(other))
		renderFrame(t, e)
		assert.Equal(t, display.PackRGB(1, 1, 1), fb.At(0, 0))

		e.DisableBGBitmap()
		renderFrame(t, e)
		assert.Equal(t, display.OpaqueAlpha, fb.At(0, 0))
	})
}

func TestCompositor_InvalidLayerDoesNotAbort(t *testing.T) {
	e, fb := newTestEngine(t, 8, 8)
	pal := newTestPalette(t)
	require.NoError(t, e.ConfigSprite(0, newTestSpriteset(t, pal), 0))

	assert.Error(t, e.SetLayerTilemap(0, nil))
	assert.Error(t, e.EnableLayer(0))

	renderFrame(t, e)
	assert.Equal(t, pal.Color(int(spritePixel(0, 0))), fb.At(0, 0))
}

func TestCompositor_FailedConfigurationDisables(t *testing.T) {
	black := display.PackRGB(0, 0, 0)
	tests := []struct {
		name string
		// fail runs a configuration call that must be rejected
		fail       func(e *Engine) error
		layerFails bool
	}{
		{name: "nil layer palette", fail: func(e *Engine) error { return e.SetLayerPalette(0, nil) }, layerFails: true},
		{name: "nil tilemap", fail: func(e *Engine) error { return e.SetLayerTilemap(0, nil) }, layerFails: true},
		{name: "nil tileset and tilemap", fail: func(e *Engine) error { return e.SetLayer(0, nil, nil) }, layerFails: true},
		{name: "nil layer bitmap", fail: func(e *Engine) error { return e.SetLayerBitmap(0, nil) }, layerFails: true},
		{name: "nil object list", fail: func(e *Engine) error { return e.SetLayerObjects(0, nil, nil) }, layerFails: true},
		{name: "nil sprite palette", fail: func(e *Engine) error { return e.SetSpritePalette(0, nil) }},
		{name: "nil spriteset", fail: func(e *Engine) error { return e.SetSpriteSet(0, nil) }},
		{name: "nil spriteset on config", fail: func(e *Engine) error { return e.ConfigSprite(0, nil, 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, fb := newTestEngine(t, 16, 8)
			pal := newTestPalette(t)
			ts := newTestTileset(t, 2, pal)
			require.NoError(t, e.SetLayerTilemap(0, newTestTilemap(t, 1, 2, ts)))
			require.NoError(t, e.ConfigSprite(0, newTestSpriteset(t, pal), 0))
			require.NoError(t, e.SetSpritePicture(0, 1))
			require.NoError(t, e.SetSpritePosition(0, 8, 0))
			e.SetBGColor(0, 0, 0)

			layerPixel := pal.Color(int(tilePixel(1, 3, 3)))
			spritePixel := pal.Color(200)
			renderFrame(t, e)
			require.Equal(t, layerPixel, fb.At(3, 3))
			require.Equal(t, spritePixel, fb.At(11, 3))

			require.Error(t, tt.fail(e))
			renderFrame(t, e)

			if tt.layerFails {
				assert.Equal(t, black, fb.At(3, 3), "background shows through the layer")
				assert.Equal(t, spritePixel, fb.At(11, 3), "the sprite is unaffected")
			} else {
				assert.Equal(t, layerPixel, fb.At(3, 3), "the layer is unaffected")
				assert.Equal(t, pal.Color(int(tilePixel(2, 3, 3))), fb.At(11, 3), "the layer shows through the sprite")
			}
		})
	}
}

func TestCompositor_IndependentEngines(t *testing.T) {
	a, fbA := newTestEngine(t, 4, 4)
	b, fbB := newTestEngine(t, 4, 4)
	a.SetBGColor(255, 0, 0)
	b.SetBGColor(0, 0, 255)

	renderFrame(t, a)
	renderFrame(t, b)

	assert.Equal(t, display.PackRGB(255, 0, 0), fbA.At(0, 0))
	assert.Equal(t, display.PackRGB(0, 0, 255), fbB.At(0, 0))
}
