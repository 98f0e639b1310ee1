// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/rgb2gray/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
// It discards all debug output.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveNegotiationJSON does nothing.
func (s *Sink) SaveNegotiationJSON(group int, data []byte) error {
	return nil
}

// SaveInputBuffer does nothing.
func (s *Sink) SaveInputBuffer(index int, data []byte) error {
	return nil
}

// SaveOutputFrame does nothing.
func (s *Sink) SaveOutputFrame(index int, img image.Image) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
