// Package summarizer provides summary generation for conversion runs.
package summarizer

import "time"

// Summary contains all data collected during a conversion run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Where the frames came from
	Source SourceInfo

	// Effective run settings
	Settings Settings

	// One entry per caps negotiation, in run order
	Negotiations []NegotiationInfo

	// What was written
	Output OutputInfo
}

// SourceInfo describes the input frames.
type SourceInfo struct {
	Inputs     []string // Files or directories; empty for test patterns
	Pattern    string   // Test pattern name, if any
	FrameCount int
}

// Settings contains the run configuration.
type Settings struct {
	OutputFormat string // GRAY8 or BGRx
	ImageFormat  string // png, jpeg, bmp or tiff
	Framerate    string
	RowAlignment int
	Workers      int
}

// NegotiationInfo describes one negotiated group of frames.
type NegotiationInfo struct {
	Width   int
	Height  int
	InCaps  string
	OutCaps string
	InSize  int
	OutSize int
	Frames  int
}

// OutputInfo contains totals for the written frames.
type OutputInfo struct {
	Dir        string
	Files      int
	BytesIn    int64
	BytesOut   int64
	DurationMs int64
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSource sets source information.
func (b *Builder) WithSource(inputs []string, pattern string, frameCount int) *Builder {
	b.summary.Source = SourceInfo{
		Inputs:     inputs,
		Pattern:    pattern,
		FrameCount: frameCount,
	}
	return b
}

// WithSettings sets run settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// AddNegotiation appends one negotiation.
func (b *Builder) AddNegotiation(n NegotiationInfo) *Builder {
	b.summary.Negotiations = append(b.summary.Negotiations, n)
	return b
}

// WithOutput sets output totals.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
