package source

import (
	"context"
	"fmt"
	"image/color"

	"github.com/google/uuid"

	"github.com/user/rgb2gray/pkg/pipeline"
	"github.com/user/rgb2gray/pkg/ports"
)

// barColors are the 75% SMPTE colour bars, left to right.
var barColors = []color.RGBA{
	{R: 191, G: 191, B: 191, A: 255},
	{R: 191, G: 191, B: 0, A: 255},
	{R: 0, G: 191, B: 191, A: 255},
	{R: 0, G: 191, B: 0, A: 255},
	{R: 191, G: 0, B: 191, A: 255},
	{R: 191, G: 0, B: 0, A: 255},
	{R: 0, G: 0, B: 191, A: 255},
}

var (
	markerColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	labelColor  = color.RGBA{R: 16, G: 16, B: 16, A: 255}
	checkerDark = color.RGBA{R: 32, G: 32, B: 32, A: 255}
	checkerLite = color.RGBA{R: 224, G: 224, B: 224, A: 255}
)

// ValidatePattern checks a pattern spec before any frame is drawn.
func ValidatePattern(spec pipeline.PatternSpec) error {
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("invalid pattern size %dx%d", spec.Width, spec.Height)
	}
	if spec.Frames <= 0 {
		return fmt.Errorf("invalid pattern frame count %d", spec.Frames)
	}
	switch spec.Pattern {
	case pipeline.PatternBars, pipeline.PatternGradient, pipeline.PatternCheckers:
		return nil
	default:
		return fmt.Errorf("unknown pattern %q", spec.Pattern)
	}
}

func (s *Stage) generate(ctx context.Context, spec pipeline.PatternSpec) (pipeline.SourceResult, error) {
	if err := ValidatePattern(spec); err != nil {
		return pipeline.SourceResult{}, err
	}

	s.logger.Debug("Generating %d %s frames at %dx%d", spec.Frames, spec.Pattern, spec.Width, spec.Height)

	result := pipeline.SourceResult{
		Frames:    make([]pipeline.RawFrame, 0, spec.Frames),
		Framerate: spec.Framerate,
	}
	for i := 0; i < spec.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		canvas := s.renderer.CreateCanvas(spec.Width, spec.Height, color.Black)
		drawPattern(canvas, spec, i)
		result.Frames = append(result.Frames, pipeline.RawFrame{
			Index:   i,
			TraceID: uuid.NewString(),
			Name:    fmt.Sprintf("%s-%04d", spec.Pattern, i),
			Image:   canvas.ToImage(),
		})
	}
	return result, nil
}

// drawPattern draws frame i of the sequence. A white marker travels left to
// right across the sequence so consecutive frames differ.
func drawPattern(c ports.Canvas, spec pipeline.PatternSpec, i int) {
	w, h := spec.Width, spec.Height

	switch spec.Pattern {
	case pipeline.PatternBars:
		x := 0
		for n, col := range barColors {
			next := (n + 1) * w / len(barColors)
			c.DrawRect(x, 0, next-x, h, col)
			x = next
		}
	case pipeline.PatternGradient:
		c.DrawLinearGradient(0, 0, w, h/2, color.Black, color.White)
		c.DrawLinearGradient(0, h/2, w, h-h/2, color.RGBA{B: 255, A: 255}, color.RGBA{R: 255, A: 255})
	case pipeline.PatternCheckers:
		size := min(w, h) / 8
		if size < 1 {
			size = 1
		}
		shift := i % 2
		for y := 0; y*size < h; y++ {
			for x := 0; x*size < w; x++ {
				col := checkerLite
				if (x+y+shift)%2 == 0 {
					col = checkerDark
				}
				c.DrawRect(x*size, y*size, size, size, col)
			}
		}
	}

	radius := min(w, h) / 10
	if radius > 0 {
		travel := w - 2*radius
		cx := radius
		if spec.Frames > 1 && travel > 0 {
			cx += travel * i / (spec.Frames - 1)
		}
		c.DrawCircle(cx, h/2, radius, markerColor)
	}

	if h >= 24 {
		c.DrawText(fmt.Sprintf("%04d", i), w/2, h-12, ports.TextStyle{
			FontSize: 12,
			Color:    labelColor,
			Align:    ports.AlignCenter,
		})
	}
}
