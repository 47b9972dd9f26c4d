package debug

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/valerio/go-scanline/scanline/display"
	"github.com/valerio/go-scanline/scanline/video"
)

// Format is a snapshot file format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatText Format = "txt"
)

// ParseFormat validates a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatPNG, FormatBMP, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("unknown snapshot format %q (want png, bmp or txt)", name)
	}
}

// ToImage converts a framebuffer to an RGBA image.
func ToImage(fb *video.Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		row := img.Pix[y*img.Stride:]
		for x, pixel := range fb.Line(y) {
			r, g, b := display.UnpackRGB(pixel)
			idx := x * display.BytesPerPixel
			row[idx] = r
			row[idx+1] = g
			row[idx+2] = b
			row[idx+3] = uint8(pixel >> display.AlphaShift)
		}
	}
	return img
}

// Scale upscales img by an integer factor with nearest-neighbor sampling,
// keeping pixel edges sharp. Factors below 2 return img unchanged.
func Scale(img *image.RGBA, factor int) *image.RGBA {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Encode writes the framebuffer to w in the given format, upscaled by
// scale for image formats.
func Encode(w io.Writer, fb *video.Framebuffer, format Format, scale int) error {
	switch format {
	case FormatText:
		for _, line := range RenderHalfBlocks(fb) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	case FormatBMP:
		return bmp.Encode(w, Scale(ToImage(fb), scale))
	case FormatPNG:
		return png.Encode(w, Scale(ToImage(fb), scale))
	default:
		return fmt.Errorf("unknown snapshot format %q", format)
	}
}

// SaveFrameToDir saves a framebuffer with a timestamped name to directory,
// or to the working directory when directory is empty. It returns the path
// of the written file.
func SaveFrameToDir(fb *video.Framebuffer, baseName, directory string, format Format, scale int) (string, error) {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", baseName, timestamp, format)

	outputDir := directory
	if outputDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		outputDir = cwd
	}

	filePath := filepath.Join(outputDir, filename)
	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", filePath, err)
	}
	defer file.Close()

	if err := Encode(file, fb, format, scale); err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", format, err)
	}

	slog.Info("Snapshot saved",
		"path", filePath,
		"size", fmt.Sprintf("%dx%d", fb.Width, fb.Height),
		"scale", scale,
		"format", strings.ToUpper(string(format)))
	return filePath, nil
}
