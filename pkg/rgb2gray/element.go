// Package rgb2gray implements a raw video element that negotiates BGRx input
// and produces GRAY8 or grey-valued BGRx output.
package rgb2gray

import (
	"fmt"
	"sync"

	"github.com/user/rgb2gray/pkg/ports"
	"github.com/user/rgb2gray/pkg/video"
)

// Element converts BGRx frames to grey. The zero value is not usable; create
// one with New.
//
// SetCaps, Stop and Transform share one mutex guarding the negotiated state.
// TransformCaps and UnitSize touch no shared state.
type Element struct {
	logger   ports.Logger
	rowAlign int

	mu    sync.Mutex
	state *negotiatedState
}

// negotiatedState exists only between a successful SetCaps and Stop.
type negotiatedState struct {
	in  video.FrameLayout
	out video.FrameLayout
}

// Option configures an Element.
type Option func(*Element)

// WithRowAlignment sets the byte alignment used to derive row strides from
// caps. Values below 1 select video.DefaultRowAlignment.
func WithRowAlignment(align int) Option {
	return func(e *Element) {
		if align < 1 {
			align = video.DefaultRowAlignment
		}
		e.rowAlign = align
	}
}

// New creates an unconfigured element.
func New(logger ports.Logger, opts ...Option) *Element {
	e := &Element{
		logger:   logger.WithComponent("rgb2gray"),
		rowAlign: video.DefaultRowAlignment,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RowAlignment returns the configured stride alignment.
func (e *Element) RowAlignment() int {
	return e.rowAlign
}

// SetCaps resolves both caps into layouts and replaces the negotiated state.
// On failure the previous state, if any, is kept.
func (e *Element) SetCaps(in, out video.Caps) error {
	inLayout, err := video.LayoutFromCaps(in, e.rowAlign)
	if err != nil {
		e.logger.Warn("Failed to parse input caps: %s", err)
		return fmt.Errorf("%w: input caps: %w", ErrNegotiation, err)
	}
	outLayout, err := video.LayoutFromCaps(out, e.rowAlign)
	if err != nil {
		e.logger.Warn("Failed to parse output caps: %s", err)
		return fmt.Errorf("%w: output caps: %w", ErrNegotiation, err)
	}

	e.mu.Lock()
	e.state = &negotiatedState{in: inLayout, out: outLayout}
	e.mu.Unlock()

	e.logger.Debug("Configured for caps %s to %s", in, out)
	return nil
}

// Stop drops the negotiated state. Transform fails until the next SetCaps.
func (e *Element) Stop() {
	e.mu.Lock()
	e.state = nil
	e.mu.Unlock()

	e.logger.Info("Stopped")
}

// Negotiated returns the current layouts, if any.
func (e *Element) Negotiated() (in, out video.FrameLayout, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return video.FrameLayout{}, video.FrameLayout{}, false
	}
	return e.state.in, e.state.out, true
}

// UnitSize returns the buffer size a frame with these caps needs, or false
// if the caps do not describe a frame.
func (e *Element) UnitSize(caps video.Caps) (int, bool) {
	layout, err := video.LayoutFromCaps(caps, e.rowAlign)
	if err != nil {
		return 0, false
	}
	return layout.Size(), true
}

// Transform converts one frame from src into dst using the negotiated
// layouts. src is only read; dst is written in place. Neither is retained.
func (e *Element) Transform(src, dst []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		e.logger.Error("Have no state yet")
		return ErrNotNegotiated
	}
	return Convert(e.state.in, e.state.out, src, dst)
}

var _ ports.Transformer = (*Element)(nil)
