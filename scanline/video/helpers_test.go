package video

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/valerio/go-scanline/scanline/gfx"
)

const tileSize = 8

func newTestPalette(t *testing.T) *gfx.Palette {
	t.Helper()
	p, err := gfx.NewPalette(gfx.MaxPaletteEntries)
	require.NoError(t, err)
	for i := 1; i < gfx.MaxPaletteEntries; i++ {
		require.NoError(t, p.SetColor(i, uint8(i), uint8(255-i), uint8(i*3)))
	}
	return p
}

func newTestEngine(t *testing.T, width, height int) (*Engine, *Framebuffer) {
	t.Helper()
	e, err := New(Config{Width: width, Height: height, NumLayers: 4, NumSprites: 8})
	require.NoError(t, err)
	fb := NewFramebuffer(width, height)
	require.NoError(t, e.SetRenderTarget(fb))
	t.Cleanup(e.Close)
	return e, fb
}

// tilePixel is the opaque index stored at (x, y) of a test tileset entry.
func tilePixel(entry, x, y int) uint8 {
	return uint8(((entry-1)*64+y*tileSize+x)%255 + 1)
}

func newTestTileset(t *testing.T, numTiles int, palette *gfx.Palette) *gfx.Tileset {
	t.Helper()
	ts, err := gfx.NewTileset(numTiles, tileSize, tileSize, palette)
	require.NoError(t, err)
	for entry := 1; entry <= numTiles; entry++ {
		data := make([]uint8, tileSize*tileSize)
		for y := 0; y < tileSize; y++ {
			for x := 0; x < tileSize; x++ {
				data[y*tileSize+x] = tilePixel(entry, x, y)
			}
		}
		require.NoError(t, ts.SetPixels(entry, data, tileSize))
	}
	return ts
}

// newTestTilemap fills cell (r, c) with tile (r*cols+c)%NumTiles+1.
func newTestTilemap(t *testing.T, rows, cols int, ts *gfx.Tileset) *gfx.Tilemap {
	t.Helper()
	tiles := make([]gfx.Tile, rows*cols)
	for i := range tiles {
		tiles[i] = gfx.Tile{Index: uint16(i%ts.NumTiles() + 1)}
	}
	tm, err := gfx.NewTilemap(rows, cols, tiles, 0, ts)
	require.NoError(t, err)
	return tm
}

// mapPixel is the index of a newTestTilemap layer at layer-space (x, y).
func mapPixel(x, y, cols, numTiles int) uint8 {
	entry := ((y/tileSize)*cols+x/tileSize)%numTiles + 1
	return tilePixel(entry, x%tileSize, y%tileSize)
}

// newTiledEngine sets up layer 0 with a 4x4 map of 8x8 tiles.
func newTiledEngine(t *testing.T, width, height int) (*Engine, *Framebuffer, *gfx.Palette, *gfx.Tilemap) {
	t.Helper()
	e, fb := newTestEngine(t, width, height)
	pal := newTestPalette(t)
	ts := newTestTileset(t, 4, pal)
	tm := newTestTilemap(t, 4, 4, ts)
	require.NoError(t, e.SetLayerTilemap(0, tm))
	return e, fb, pal, tm
}

func spritePixel(x, y int) uint8 {
	return uint8(100 + y*tileSize + x)
}

// newTestSpriteset holds a patterned "ship" and a solid "block", both 8x8.
func newTestSpriteset(t *testing.T, palette *gfx.Palette) *gfx.Spriteset {
	t.Helper()
	atlas, err := gfx.NewBitmap(2*tileSize, tileSize, palette)
	require.NoError(t, err)
	for y := 0; y < tileSize; y++ {
		for x := 0; x < tileSize; x++ {
			atlas.Set(x, y, spritePixel(x, y))
		}
	}
	atlas.Fill(tileSize, 0, tileSize, tileSize, 200)

	ss, err := gfx.NewSpriteset(atlas, []gfx.SpriteData{
		{Name: "ship", X: 0, Y: 0, W: tileSize, H: tileSize},
		{Name: "block", X: tileSize, Y: 0, W: tileSize, H: tileSize},
	})
	require.NoError(t, err)
	return ss
}

func renderFrame(t *testing.T, e *Engine) {
	t.Helper()
	require.NoError(t, e.UpdateFrame(0))
}

func snapshot(fb *Framebuffer) []uint32 {
	out := make([]uint32, 0, fb.Width*fb.Height)
	for y := 0; y < fb.Height; y++ {
		out = append(out, fb.Line(y)...)
	}
	return out
}
