package ports

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"
)

// Renderer abstracts image codecs and the drawing surface used for
// synthetic test frames.
type Renderer interface {
	// CreateCanvas creates a drawing canvas filled with bg.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// DecodeImage decodes image data. FormatAuto sniffs the format.
	DecodeImage(data []byte, format ImageFormat) (image.Image, error)

	// EncodeImage encodes img. quality only applies to JPEG.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)
}

// Canvas provides the drawing operations the test pattern source needs.
type Canvas interface {
	// DrawRect draws a filled rectangle.
	DrawRect(x, y, w, h int, c color.Color)

	// DrawLinearGradient fills a rectangle with a horizontal gradient.
	DrawLinearGradient(x, y, w, h int, from, to color.Color)

	// DrawCircle draws a filled circle.
	DrawCircle(cx, cy, radius int, c color.Color)

	// DrawText draws text anchored at the given position.
	DrawText(text string, x, y int, style TextStyle)

	// ToImage returns the canvas contents.
	ToImage() image.Image
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	FontSize float64
	FontPath string
	Color    color.Color
	Align    TextAlign
}

// TextAlign specifies text alignment.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// ImageFormat specifies an image file encoding.
type ImageFormat int

const (
	FormatAuto ImageFormat = iota
	FormatPNG
	FormatJPEG
	FormatBMP
	FormatTIFF
)

// String returns the format name.
func (f ImageFormat) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return "auto"
	}
}

// Extension returns the file extension used when writing the format.
func (f ImageFormat) Extension() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	case FormatBMP:
		return ".bmp"
	case FormatTIFF:
		return ".tif"
	default:
		return ".png"
	}
}

// ParseImageFormat parses a format name such as "png" or "jpg".
func ParseImageFormat(s string) (ImageFormat, error) {
	switch strings.ToLower(s) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	case "", "auto":
		return FormatAuto, nil
	default:
		return FormatAuto, fmt.Errorf("unknown image format %q", s)
	}
}

// ImageFormatFromPath guesses the format from a file extension, falling back
// to FormatAuto.
func ImageFormatFromPath(path string) ImageFormat {
	f, err := ParseImageFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return FormatAuto
	}
	return f
}
