// Package video defines raw video formats, caps descriptors and frame layouts
// shared by the conversion element and the pipeline harness.
package video

import "fmt"

// MediaTypeRaw is the media type of uncompressed video caps.
const MediaTypeRaw = "video/x-raw"

// PixelFormat identifies a single-plane packed pixel layout.
type PixelFormat int

const (
	// FormatUnknown is the zero value; it never parses from caps.
	FormatUnknown PixelFormat = iota
	// FormatBGRx is 4 bytes per pixel: blue, green, red, unused.
	FormatBGRx
	// FormatGray8 is 1 byte of luma per pixel.
	FormatGray8
)

// String returns the caps name of the format.
func (f PixelFormat) String() string {
	switch f {
	case FormatBGRx:
		return "BGRx"
	case FormatGray8:
		return "GRAY8"
	default:
		return "unknown"
	}
}

// BytesPerPixel returns the packed pixel size, or 0 for unknown formats.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case FormatBGRx:
		return 4
	case FormatGray8:
		return 1
	default:
		return 0
	}
}

// ParsePixelFormat parses a caps format name. Matching is exact, like
// GStreamer format strings.
func ParsePixelFormat(s string) (PixelFormat, error) {
	switch s {
	case "BGRx":
		return FormatBGRx, nil
	case "GRAY8":
		return FormatGray8, nil
	default:
		return FormatUnknown, fmt.Errorf("unknown pixel format %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f PixelFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *PixelFormat) UnmarshalText(text []byte) error {
	v, err := ParsePixelFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// PadDirection says which pad a set of caps belongs to.
type PadDirection int

const (
	// DirectionSrc marks caps on the source (output) pad.
	DirectionSrc PadDirection = iota
	// DirectionSink marks caps on the sink (input) pad.
	DirectionSink
)

// String returns "src" or "sink".
func (d PadDirection) String() string {
	if d == DirectionSink {
		return "sink"
	}
	return "src"
}

// ParsePadDirection parses "src" or "sink".
func ParsePadDirection(s string) (PadDirection, error) {
	switch s {
	case "src":
		return DirectionSrc, nil
	case "sink":
		return DirectionSink, nil
	default:
		return DirectionSrc, fmt.Errorf("unknown pad direction %q", s)
	}
}
