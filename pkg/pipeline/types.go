package pipeline

import (
	"image"

	"github.com/user/rgb2gray/pkg/video"
)

// =============================================================================
// Source Stage Types
// =============================================================================

// Pattern names accepted by the test source.
const (
	PatternBars     = "bars"
	PatternGradient = "gradient"
	PatternCheckers = "checkers"
)

// SourceInput selects where frames come from. Paths wins when both are set.
type SourceInput struct {
	Paths     []string       // Image files or directories of image files
	Framerate video.Fraction // Framerate reported for file inputs
	Pattern   *PatternSpec   // Synthetic test pattern
}

// PatternSpec describes a generated test sequence.
type PatternSpec struct {
	Width     int
	Height    int
	Frames    int
	Framerate video.Fraction
	Pattern   string // bars, gradient or checkers
}

// DefaultPatternSpec returns a 320x240 colour bar sequence at 30 fps.
func DefaultPatternSpec() PatternSpec {
	return PatternSpec{
		Width:     320,
		Height:    240,
		Frames:    30,
		Framerate: video.Fraction{Num: 30, Den: 1},
		Pattern:   PatternBars,
	}
}

// SourceResult contains the loaded or generated frames.
type SourceResult struct {
	Frames    []RawFrame
	Framerate video.Fraction
}

// RawFrame is one decoded input picture.
type RawFrame struct {
	Index   int
	TraceID string
	Name    string // Base name used for the output file
	Image   image.Image
}

// Size returns the frame dimensions.
func (f RawFrame) Size() (width, height int) {
	b := f.Image.Bounds()
	return b.Dx(), b.Dy()
}

// =============================================================================
// Negotiate Stage Types
// =============================================================================

// NegotiateInput describes the upstream frames and the wanted output format.
type NegotiateInput struct {
	Group        int // Numbers the negotiation in debug output
	Width        int
	Height       int
	Framerate    video.Fraction
	OutputFormat video.PixelFormat
}

// NegotiateResult contains the agreed caps and the resulting buffer sizes.
type NegotiateResult struct {
	InCaps  video.Caps        `json:"-"`
	OutCaps video.Caps        `json:"-"`
	In      video.FrameLayout `json:"in"`
	Out     video.FrameLayout `json:"out"`
	InSize  int               `json:"in_size"`
	OutSize int               `json:"out_size"`
}

// =============================================================================
// Convert Stage Types
// =============================================================================

// ConvertInput contains the frames of one negotiated group.
type ConvertInput struct {
	Frames     []RawFrame
	Negotiated NegotiateResult
}

// ConvertResult contains the converted frames in input order.
type ConvertResult struct {
	Frames []ConvertedFrame
}

// ConvertedFrame is one frame after conversion.
type ConvertedFrame struct {
	Index   int
	TraceID string
	Name    string
	Image   image.Image
	Layout  video.FrameLayout
	Data    []byte // Raw output buffer as written by the element
}
