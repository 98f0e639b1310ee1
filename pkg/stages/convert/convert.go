// Package convert implements the frame conversion stage.
package convert

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/user/rgb2gray/pkg/pipeline"
	"github.com/user/rgb2gray/pkg/ports"
	"github.com/user/rgb2gray/pkg/video"
)

// Stage pushes frames through a negotiated element.
type Stage struct {
	element    ports.Transformer
	sink       ports.DebugSink
	logger     ports.Logger
	numWorkers int
}

// NewStage creates a new convert stage.
func NewStage(element ports.Transformer, sink ports.DebugSink, logger ports.Logger, numWorkers int) *Stage {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Stage{
		element:    element,
		sink:       sink,
		logger:     logger.WithComponent("convert"),
		numWorkers: numWorkers,
	}
}

// Execute converts all frames of one negotiated group.
func (s *Stage) Execute(ctx context.Context, input pipeline.ConvertInput) (pipeline.ConvertResult, error) {
	if len(input.Frames) == 0 {
		return pipeline.ConvertResult{Frames: []pipeline.ConvertedFrame{}}, nil
	}

	workers := s.numWorkers
	if workers > len(input.Frames) {
		workers = len(input.Frames)
	}
	s.logger.Debug("Converting %d frames with %d workers", len(input.Frames), workers)

	result, err := s.executeParallel(ctx, input, workers)
	if err != nil {
		return result, err
	}

	s.logger.Debug("Conversion completed")
	return result, nil
}

// indexedFrame holds a frame with its position in the input for sorting.
type indexedFrame struct {
	index int
	frame pipeline.ConvertedFrame
}

func (s *Stage) executeParallel(ctx context.Context, input pipeline.ConvertInput, workers int) (pipeline.ConvertResult, error) {
	numFrames := len(input.Frames)
	jobs := make(chan int, numFrames)
	results := make(chan indexedFrame, numFrames)
	errChan := make(chan error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go s.worker(ctx, &wg, input, jobs, results, errChan)
	}

	for i := 0; i < numFrames; i++ {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
		close(errChan)
	}()

	frames := make([]indexedFrame, 0, numFrames)
	for result := range results {
		frames = append(frames, result)

		if s.sink.Enabled() {
			if err := s.sink.SaveOutputFrame(result.frame.Index, result.frame.Image); err != nil {
				s.logger.Warn("Failed to save debug output: %s", err)
			}
		}
	}

	if err := <-errChan; err != nil {
		return pipeline.ConvertResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return pipeline.ConvertResult{}, err
	}

	sort.Slice(frames, func(i, j int) bool {
		return frames[i].index < frames[j].index
	})

	converted := make([]pipeline.ConvertedFrame, len(frames))
	for i, f := range frames {
		converted[i] = f.frame
	}
	return pipeline.ConvertResult{Frames: converted}, nil
}

func (s *Stage) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	input pipeline.ConvertInput,
	jobs <-chan int,
	results chan<- indexedFrame,
	errChan chan<- error,
) {
	defer wg.Done()

	for idx := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		frame, err := s.convertFrame(input, idx)
		if err != nil {
			select {
			case errChan <- fmt.Errorf("convert frame %d: %w", input.Frames[idx].Index, err):
			default:
			}
			return
		}

		results <- indexedFrame{index: idx, frame: frame}
	}
}

// convertFrame packs one frame into the negotiated input layout, runs the
// element and wraps the output buffer as an image.
func (s *Stage) convertFrame(input pipeline.ConvertInput, idx int) (pipeline.ConvertedFrame, error) {
	raw := input.Frames[idx]
	neg := input.Negotiated

	src, err := video.PackImage(raw.Image, neg.In)
	if err != nil {
		return pipeline.ConvertedFrame{}, err
	}
	if s.sink.Enabled() {
		if err := s.sink.SaveInputBuffer(raw.Index, src); err != nil {
			s.logger.Warn("Failed to save debug output: %s", err)
		}
	}

	dst := make([]byte, neg.OutSize)
	if err := s.element.Transform(src, dst); err != nil {
		return pipeline.ConvertedFrame{}, err
	}

	img, err := video.UnpackImage(dst, neg.Out)
	if err != nil {
		return pipeline.ConvertedFrame{}, err
	}

	s.logger.Debug("Converted frame %d [%s]", raw.Index, raw.TraceID)

	return pipeline.ConvertedFrame{
		Index:   raw.Index,
		TraceID: raw.TraceID,
		Name:    raw.Name,
		Image:   img,
		Layout:  neg.Out,
		Data:    dst,
	}, nil
}
