// Package negotiate implements the caps negotiation stage: it plays the
// upstream and downstream peers of the element and settles on fixed caps
// for both pads.
package negotiate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/user/rgb2gray/pkg/pipeline"
	"github.com/user/rgb2gray/pkg/ports"
	"github.com/user/rgb2gray/pkg/rgb2gray"
	"github.com/user/rgb2gray/pkg/video"
)

// ErrNoCommonCaps is returned when upstream and downstream cannot agree.
var ErrNoCommonCaps = errors.New("no common caps")

// Stage negotiates caps with the element for one frame geometry.
type Stage struct {
	element ports.Transformer
	sink    ports.DebugSink
	logger  ports.Logger
}

// NewStage creates a new negotiate stage.
func NewStage(element ports.Transformer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		element: element,
		sink:    sink,
		logger:  logger.WithComponent("negotiate"),
	}
}

// rowAligner is implemented by elements with a configurable stride alignment.
type rowAligner interface {
	RowAlignment() int
}

// record is the debug dump of one negotiation.
type record struct {
	Group    int               `json:"group"`
	Upstream string            `json:"upstream"`
	Filter   string            `json:"filter"`
	Proposed string            `json:"proposed"`
	InCaps   string            `json:"in_caps"`
	OutCaps  string            `json:"out_caps"`
	In       video.FrameLayout `json:"in"`
	Out      video.FrameLayout `json:"out"`
	InSize   int               `json:"in_size"`
	OutSize  int               `json:"out_size"`
}

// Execute negotiates BGRx input of the given geometry against the wanted
// output format and configures the element with the result.
func (s *Stage) Execute(ctx context.Context, input pipeline.NegotiateInput) (pipeline.NegotiateResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.NegotiateResult{}, err
	}
	if input.OutputFormat == video.FormatUnknown {
		return pipeline.NegotiateResult{}, fmt.Errorf("%w: unknown output format", ErrNoCommonCaps)
	}

	rate := input.Framerate
	if rate.Den == 0 {
		rate = video.Fraction{Num: 0, Den: 1}
	}
	upstream := video.RawCaps(video.FormatBGRx, input.Width, input.Height, rate)
	if !upstream.CanIntersect(rgb2gray.SinkTemplate()) {
		return pipeline.NegotiateResult{}, fmt.Errorf("%w: sink pad rejects %s", ErrNoCommonCaps, upstream)
	}

	filter := video.Caps{video.NewStructure(video.MediaTypeRaw,
		video.Field{Name: "format", Value: video.StringValue(input.OutputFormat.String())},
	)}
	proposed := s.element.TransformCaps(video.DirectionSink, upstream, filter)
	if proposed.IsEmpty() {
		return pipeline.NegotiateResult{}, fmt.Errorf("%w: %s cannot produce %s", ErrNoCommonCaps, upstream, input.OutputFormat)
	}

	out := proposed.Fixate()
	if !out.CanIntersect(rgb2gray.SrcTemplate()) {
		return pipeline.NegotiateResult{}, fmt.Errorf("%w: src pad rejects %s", ErrNoCommonCaps, out)
	}

	// Going back from the chosen output must reach the upstream caps again.
	back := s.element.TransformCaps(video.DirectionSrc, out, nil)
	if !back.CanIntersect(upstream) {
		return pipeline.NegotiateResult{}, fmt.Errorf("%w: %s does not map back to %s", ErrNoCommonCaps, out, upstream)
	}

	s.logger.Debug("Negotiated %s to %s", upstream, out)

	if err := s.element.SetCaps(upstream, out); err != nil {
		return pipeline.NegotiateResult{}, err
	}

	inSize, ok := s.element.UnitSize(upstream)
	if !ok {
		return pipeline.NegotiateResult{}, fmt.Errorf("%w: no unit size for %s", ErrNoCommonCaps, upstream)
	}
	outSize, ok := s.element.UnitSize(out)
	if !ok {
		return pipeline.NegotiateResult{}, fmt.Errorf("%w: no unit size for %s", ErrNoCommonCaps, out)
	}

	align := video.DefaultRowAlignment
	if a, ok := s.element.(rowAligner); ok {
		align = a.RowAlignment()
	}
	inLayout, err := video.LayoutFromCaps(upstream, align)
	if err != nil {
		return pipeline.NegotiateResult{}, err
	}
	outLayout, err := video.LayoutFromCaps(out, align)
	if err != nil {
		return pipeline.NegotiateResult{}, err
	}

	result := pipeline.NegotiateResult{
		InCaps:  upstream,
		OutCaps: out,
		In:      inLayout,
		Out:     outLayout,
		InSize:  inSize,
		OutSize: outSize,
	}

	s.logger.Debug("Unit sizes: %d bytes in, %d bytes out", inSize, outSize)

	if s.sink.Enabled() {
		data, err := json.MarshalIndent(record{
			Group:    input.Group,
			Upstream: upstream.String(),
			Filter:   filter.String(),
			Proposed: proposed.String(),
			InCaps:   upstream.String(),
			OutCaps:  out.String(),
			In:       inLayout,
			Out:      outLayout,
			InSize:   inSize,
			OutSize:  outSize,
		}, "", "  ")
		if err == nil {
			if err := s.sink.SaveNegotiationJSON(input.Group, data); err != nil {
				s.logger.Warn("Failed to save debug output: %s", err)
			}
		}
	}

	return result, nil
}
