package video

import (
	"fmt"
	"math"
	"math/bits"
)

// DefaultRowAlignment is the row alignment used when none is configured.
// Matches the 4-byte row rounding GStreamer applies to packed formats.
const DefaultRowAlignment = 4

// FrameLayout is the resolved geometry of a single-plane raw frame.
type FrameLayout struct {
	Format    PixelFormat `json:"format"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Stride    int         `json:"stride"`
	Framerate Fraction    `json:"framerate"`
}

// LineBytes returns the tightly packed width of one row in bytes.
func (l FrameLayout) LineBytes() int {
	return l.Width * l.Format.BytesPerPixel()
}

// Size returns the number of bytes a buffer of this layout occupies.
func (l FrameLayout) Size() int {
	return l.Stride * l.Height
}

// Validate checks the layout invariants.
func (l FrameLayout) Validate() error {
	if l.Format.BytesPerPixel() == 0 {
		return fmt.Errorf("%w: unknown format", ErrInvalidCaps)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: non-positive dimensions %dx%d", ErrInvalidCaps, l.Width, l.Height)
	}
	line, ok := mulInt(l.Width, l.Format.BytesPerPixel())
	if !ok {
		return fmt.Errorf("%w: line width of %d pixels overflows", ErrInvalidCaps, l.Width)
	}
	if l.Stride < line {
		return fmt.Errorf("%w: stride %d below line width %d", ErrInvalidCaps, l.Stride, line)
	}
	if _, ok := mulInt(l.Stride, l.Height); !ok {
		return fmt.Errorf("%w: frame size %d x %d overflows", ErrInvalidCaps, l.Stride, l.Height)
	}
	return nil
}

// String returns a compact description, e.g. "BGRx 320x240 stride=1280".
func (l FrameLayout) String() string {
	return fmt.Sprintf("%s %dx%d stride=%d", l.Format, l.Width, l.Height, l.Stride)
}

// NewFrameLayout builds a layout whose stride is the line width rounded up
// to rowAlign bytes. A rowAlign below 1 means DefaultRowAlignment. If the
// stride does not fit in an int it is set to -1, which Validate rejects.
func NewFrameLayout(format PixelFormat, width, height, rowAlign int) FrameLayout {
	stride := -1
	if line, ok := mulInt(width, format.BytesPerPixel()); ok {
		stride = alignUp(line, rowAlign)
	}
	return FrameLayout{
		Format:    format,
		Width:     width,
		Height:    height,
		Stride:    stride,
		Framerate: Fraction{Num: 0, Den: 1},
	}
}

// LayoutFromCaps resolves fixed raw video caps into a FrameLayout. The caps
// must hold one fixed video/x-raw structure with a known format and positive
// width and height. Framerate is optional and defaults to 0/1.
func LayoutFromCaps(caps Caps, rowAlign int) (FrameLayout, error) {
	if len(caps) != 1 {
		return FrameLayout{}, fmt.Errorf("%w: expected one structure, got %d", ErrInvalidCaps, len(caps))
	}
	s := caps[0]
	if s.Name != MediaTypeRaw {
		return FrameLayout{}, fmt.Errorf("%w: media type %q is not %s", ErrInvalidCaps, s.Name, MediaTypeRaw)
	}
	if !s.IsFixed() {
		return FrameLayout{}, fmt.Errorf("%w: caps are not fixed: %s", ErrInvalidCaps, s)
	}

	name, ok := s.Str("format")
	if !ok {
		return FrameLayout{}, fmt.Errorf("%w: missing format", ErrInvalidCaps)
	}
	format, err := ParsePixelFormat(name)
	if err != nil {
		return FrameLayout{}, fmt.Errorf("%w: %v", ErrInvalidCaps, err)
	}
	width, ok := s.Int("width")
	if !ok {
		return FrameLayout{}, fmt.Errorf("%w: missing width", ErrInvalidCaps)
	}
	height, ok := s.Int("height")
	if !ok {
		return FrameLayout{}, fmt.Errorf("%w: missing height", ErrInvalidCaps)
	}

	layout := NewFrameLayout(format, width, height, rowAlign)
	if fr, ok := s.Fraction("framerate"); ok {
		layout.Framerate = fr
	}
	if err := layout.Validate(); err != nil {
		return FrameLayout{}, err
	}
	return layout, nil
}

// RawCaps builds fixed video/x-raw caps for the given geometry.
func RawCaps(format PixelFormat, width, height int, framerate Fraction) Caps {
	return Caps{NewStructure(MediaTypeRaw,
		Field{Name: "format", Value: StringValue(format.String())},
		Field{Name: "width", Value: IntValue(width)},
		Field{Name: "height", Value: IntValue(height)},
		Field{Name: "framerate", Value: framerate},
	)}
}

// alignUp rounds n up to a multiple of align, or returns -1 on overflow.
func alignUp(n, align int) int {
	if align < 1 {
		align = DefaultRowAlignment
	}
	if n > math.MaxInt-(align-1) {
		return -1
	}
	return (n + align - 1) / align * align
}

// mulInt returns a*b for non-negative operands, or false if the product does
// not fit in an int.
func mulInt(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	return int(lo), true
}
