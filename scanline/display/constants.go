package display

// ARGB pixel format constants
const (
	// BytesPerPixel is the number of bytes per framebuffer pixel
	BytesPerPixel = 4
	// AlphaShift is the bit shift for the alpha component in ARGB format
	AlphaShift = 24
	// RedShift is the bit shift for the red component in ARGB format
	RedShift = 16
	// GreenShift is the bit shift for the green component in ARGB format
	GreenShift = 8
	// BlueShift is the bit shift for the blue component in ARGB format
	BlueShift = 0
	// OpaqueAlpha is the alpha byte every produced pixel carries
	OpaqueAlpha uint32 = 0xFF000000
)

// Default engine geometry
const (
	// DefaultWidth is the default framebuffer width in pixels
	DefaultWidth = 400
	// DefaultHeight is the default framebuffer height in pixels
	DefaultHeight = 240
	// DefaultNumLayers is the default number of layer slots
	DefaultNumLayers = 4
	// DefaultNumSprites is the default number of sprite slots
	DefaultNumSprites = 64
)

// Output constants
const (
	// DefaultPixelScale is the default upscaling factor for snapshots
	DefaultPixelScale = 2
	// DefaultFPS is the frame rate the runner paces to when limiting is on
	DefaultFPS = 60
)

// PackRGB packs 8-bit channels into an opaque ARGB pixel.
func PackRGB(r, g, b uint8) uint32 {
	return OpaqueAlpha | uint32(r)<<RedShift | uint32(g)<<GreenShift | uint32(b)<<BlueShift
}

// UnpackRGB splits an ARGB pixel into its color channels.
func UnpackRGB(c uint32) (r, g, b uint8) {
	return uint8(c >> RedShift), uint8(c >> GreenShift), uint8(c >> BlueShift)
}
