// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/user/rgb2gray/pkg/pipeline"
	"github.com/user/rgb2gray/pkg/ports"
	"github.com/user/rgb2gray/pkg/video"
)

// ErrNoFrames is returned when the source produced nothing to convert.
var ErrNoFrames = errors.New("no frames to convert")

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input
	Inputs    []string              // Image files or directories
	Pattern   *pipeline.PatternSpec // Used when Inputs is empty
	Framerate video.Fraction        // Framerate advertised for file inputs

	// Output
	OutputDir    string
	OutputFormat video.PixelFormat // GRAY8 or BGRx
	ImageFormat  ports.ImageFormat // Encoding of written frames
	JPEGQuality  int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Framerate:    video.Fraction{Num: 30, Den: 1},
		OutputDir:    "out",
		OutputFormat: video.FormatGray8,
		ImageFormat:  ports.FormatPNG,
		JPEGQuality:  90,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	sourceStage    pipeline.Stage[pipeline.SourceInput, pipeline.SourceResult]
	negotiateStage pipeline.Stage[pipeline.NegotiateInput, pipeline.NegotiateResult]
	convertStage   pipeline.Stage[pipeline.ConvertInput, pipeline.ConvertResult]
	element        ports.Transformer
	renderer       ports.Renderer
	fs             ports.FileSystem
	logger         ports.Logger
}

// New creates a new Orchestrator. element must be the one the negotiate
// and convert stages drive; Run stops it when done.
func New(
	sourceStage pipeline.Stage[pipeline.SourceInput, pipeline.SourceResult],
	negotiateStage pipeline.Stage[pipeline.NegotiateInput, pipeline.NegotiateResult],
	convertStage pipeline.Stage[pipeline.ConvertInput, pipeline.ConvertResult],
	element ports.Transformer,
	renderer ports.Renderer,
	fs ports.FileSystem,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		sourceStage:    sourceStage,
		negotiateStage: negotiateStage,
		convertStage:   convertStage,
		element:        element,
		renderer:       renderer,
		fs:             fs,
		logger:         logger,
	}
}

// Run loads the frames, negotiates once per run of equally sized frames,
// converts them and writes the results to config.OutputDir.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	start := time.Now()
	defer o.element.Stop()

	o.logger.Info("Starting pipeline")

	// 1. Load frames
	source, err := o.sourceStage.Execute(ctx, pipeline.SourceInput{
		Paths:     config.Inputs,
		Framerate: config.Framerate,
		Pattern:   config.Pattern,
	})
	if err != nil {
		o.logger.Error("Failed to load frames: %s", err)
		return RunResult{}, fmt.Errorf("source stage: %w", err)
	}
	if len(source.Frames) == 0 {
		return RunResult{}, ErrNoFrames
	}
	o.logger.Info("Loaded %d frames", len(source.Frames))

	if err := o.fs.MkdirAll(config.OutputDir); err != nil {
		o.logger.Error("Failed to write output: %s", err)
		return RunResult{}, fmt.Errorf("create output dir: %w", err)
	}

	imageFormat := config.ImageFormat
	if imageFormat == ports.FormatAuto {
		imageFormat = ports.FormatPNG
	}

	result := RunResult{
		OutputDir:    config.OutputDir,
		OutputFormat: config.OutputFormat,
		ImageFormat:  imageFormat,
		Framerate:    source.Framerate,
	}

	for i, group := range groupBySize(source.Frames) {
		w, h := group[0].Size()

		// 2. Negotiate caps for this geometry
		neg, err := o.negotiateStage.Execute(ctx, pipeline.NegotiateInput{
			Group:        i + 1,
			Width:        w,
			Height:       h,
			Framerate:    source.Framerate,
			OutputFormat: config.OutputFormat,
		})
		if err != nil {
			o.logger.Error("Failed to negotiate caps: %s", err)
			return result, fmt.Errorf("negotiate stage: %w", err)
		}
		o.logger.Info("Negotiated %s for %d frames", neg.OutCaps, len(group))

		// 3. Convert
		converted, err := o.convertStage.Execute(ctx, pipeline.ConvertInput{
			Frames:     group,
			Negotiated: neg,
		})
		if err != nil {
			o.logger.Error("Failed to convert frames: %s", err)
			return result, fmt.Errorf("convert stage: %w", err)
		}

		// 4. Write outputs
		groupResult := GroupResult{
			Width:   w,
			Height:  h,
			InCaps:  neg.InCaps.String(),
			OutCaps: neg.OutCaps.String(),
			InSize:  neg.InSize,
			OutSize: neg.OutSize,
			Frames:  len(converted.Frames),
		}
		for _, frame := range converted.Frames {
			path, err := o.writeFrame(config, imageFormat, frame)
			if err != nil {
				o.logger.Error("Failed to write output: %s", err)
				return result, fmt.Errorf("write output: %w", err)
			}
			result.Outputs = append(result.Outputs, path)
		}
		result.Groups = append(result.Groups, groupResult)
		result.FrameCount += len(converted.Frames)
		result.BytesIn += int64(neg.InSize) * int64(len(converted.Frames))
		result.BytesOut += int64(neg.OutSize) * int64(len(converted.Frames))
	}

	result.Duration = time.Since(start)
	o.logger.Info("Output saved to %s", config.OutputDir)
	o.logger.Info("Pipeline completed successfully")

	return result, nil
}

func (o *Orchestrator) writeFrame(config Config, format ports.ImageFormat, frame pipeline.ConvertedFrame) (string, error) {
	data, err := o.renderer.EncodeImage(frame.Image, format, config.JPEGQuality)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", frame.Name, err)
	}
	path := filepath.Join(config.OutputDir, frame.Name+format.Extension())
	if err := o.fs.WriteFile(path, data); err != nil {
		return "", err
	}
	o.logger.Debug("Wrote %s", path)
	return path, nil
}

// groupBySize splits frames into runs of consecutive frames sharing the
// same dimensions. Order is kept.
func groupBySize(frames []pipeline.RawFrame) [][]pipeline.RawFrame {
	var groups [][]pipeline.RawFrame
	start := 0
	for i := 1; i <= len(frames); i++ {
		if i < len(frames) {
			w0, h0 := frames[start].Size()
			w, h := frames[i].Size()
			if w == w0 && h == h0 {
				continue
			}
		}
		groups = append(groups, frames[start:i])
		start = i
	}
	return groups
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	OutputDir    string
	OutputFormat video.PixelFormat
	ImageFormat  ports.ImageFormat
	Framerate    video.Fraction

	// One entry per negotiation, in run order
	Groups []GroupResult

	FrameCount int
	BytesIn    int64 // Total packed input bytes handed to the element
	BytesOut   int64 // Total output bytes produced by the element
	Outputs    []string
	Duration   time.Duration
}

// GroupResult describes one negotiated run of equally sized frames.
type GroupResult struct {
	Width   int
	Height  int
	InCaps  string
	OutCaps string
	InSize  int
	OutSize int
	Frames  int
}
