package debug

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/valerio/go-scanline/scanline/display"
	"github.com/valerio/go-scanline/scanline/video"
)

func testFrame() *video.Framebuffer {
	fb := video.NewFramebuffer(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			fb.Line(y)[x] = display.PackRGB(uint8(x*60), uint8(y*100), 7)
		}
	}
	return fb
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Format
		wantErr  bool
	}{
		{name: "png", input: "png", expected: FormatPNG},
		{name: "upper case bmp", input: "BMP", expected: FormatBMP},
		{name: "text", input: "txt", expected: FormatText},
		{name: "unknown", input: "gif", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestToImageAndScale(t *testing.T) {
	fb := testFrame()
	img := ToImage(fb)

	r, g, b, a := img.At(2, 1).RGBA()
	assert.Equal(t, [4]uint32{120, 100, 7, 255}, [4]uint32{r >> 8, g >> 8, b >> 8, a >> 8})

	scaled := Scale(img, 3)
	assert.Equal(t, 12, scaled.Bounds().Dx())
	assert.Equal(t, 9, scaled.Bounds().Dy())
	for dy := 0; dy < 3; dy++ {
		for dx := 0; dx < 3; dx++ {
			assert.Equal(t, img.At(2, 1), scaled.At(6+dx, 3+dy))
		}
	}

	assert.Same(t, img, Scale(img, 1))
}

func TestEncode(t *testing.T) {
	fb := testFrame()

	t.Run("png", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, fb, FormatPNG, 2))
		img, err := png.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, 8, img.Bounds().Dx())
	})

	t.Run("bmp", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, fb, FormatBMP, 1))
		img, err := bmp.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, 4, img.Bounds().Dx())
		assert.Equal(t, 3, img.Bounds().Dy())
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, fb, FormatText, 1))
		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		assert.Len(t, lines, 2, "two pixel rows per line")
	})
}

func TestRenderHalfBlocks(t *testing.T) {
	fb := video.NewFramebuffer(3, 2)
	white := display.PackRGB(255, 255, 255)
	copy(fb.Line(0), []uint32{white, white, display.OpaqueAlpha})
	copy(fb.Line(1), []uint32{white, display.OpaqueAlpha, white})

	assert.Equal(t, []string{"█▀▄"}, RenderHalfBlocks(fb))
	assert.Equal(t, 0, PixelToShade(display.OpaqueAlpha))
	assert.Equal(t, len(shades)-1, PixelToShade(white))
}

func TestSaveFrameToDir(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveFrameToDir(testFrame(), "scene_frame_1", dir, FormatPNG, 2)
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "scene_frame_1_"))
	assert.Equal(t, ".png", filepath.Ext(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	_, err = SaveFrameToDir(testFrame(), "x", filepath.Join(dir, "missing"), FormatPNG, 1)
	assert.Error(t, err)
}
