package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramebuffer_Stride(t *testing.T) {
	// 4 pixels wide with 2 pixels of padding per row
	fb := &Framebuffer{Pix: make([]uint32, 6*3), Width: 4, Height: 3, Stride: 24}
	fb.Line(1)[3] = 0xFFABCDEF

	assert.Equal(t, uint32(0xFFABCDEF), fb.Pix[1*6+3])
	assert.Equal(t, uint32(0xFFABCDEF), fb.At(3, 1))
	assert.Len(t, fb.Line(2), 4)

	e, err := New(Config{Width: 4, Height: 3, NumLayers: 1})
	require.NoError(t, err)
	defer e.Close()
	require.NoError(t, e.SetRenderTarget(fb))

	e.SetBGColor(1, 1, 1)
	require.NoError(t, e.UpdateFrame(0))
	assert.Equal(t, uint32(0), fb.Pix[4], "padding is never written")
	assert.Equal(t, uint32(0xFF010101), fb.At(0, 2))
}

func TestFramebuffer_Clear(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	for i := range fb.Pix {
		fb.Pix[i] = 7
	}
	fb.Clear()
	assert.Equal(t, make([]uint32, 6), fb.Pix)
}
