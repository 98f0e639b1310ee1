// Package source implements the frame source stage: image files read from
// disk or synthetic test patterns drawn on a canvas.
package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/user/rgb2gray/pkg/pipeline"
	"github.com/user/rgb2gray/pkg/ports"
)

// ErrNoInput is returned when neither paths nor a pattern are given.
var ErrNoInput = errors.New("no input frames")

// supportedExtensions lists the file extensions picked up from directories.
var supportedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// Stage produces the raw frames fed to the element.
type Stage struct {
	fs       ports.FileSystem
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new source stage.
func NewStage(fs ports.FileSystem, renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		fs:       fs,
		renderer: renderer,
		logger:   logger.WithComponent("source"),
	}
}

// Execute loads or generates all frames.
func (s *Stage) Execute(ctx context.Context, input pipeline.SourceInput) (pipeline.SourceResult, error) {
	switch {
	case len(input.Paths) > 0:
		return s.loadFiles(ctx, input)
	case input.Pattern != nil:
		return s.generate(ctx, *input.Pattern)
	default:
		return pipeline.SourceResult{}, ErrNoInput
	}
}

func (s *Stage) loadFiles(ctx context.Context, input pipeline.SourceInput) (pipeline.SourceResult, error) {
	paths, err := s.expandPaths(input.Paths)
	if err != nil {
		return pipeline.SourceResult{}, err
	}
	if len(paths) == 0 {
		return pipeline.SourceResult{}, ErrNoInput
	}

	s.logger.Debug("Loading %d input files", len(paths))

	result := pipeline.SourceResult{
		Frames:    make([]pipeline.RawFrame, 0, len(paths)),
		Framerate: input.Framerate,
	}
	names := make(map[string]bool, len(paths))
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		data, err := s.fs.ReadFile(path)
		if err != nil {
			return result, fmt.Errorf("read %s: %w", path, err)
		}
		img, err := s.renderer.DecodeImage(data, ports.ImageFormatFromPath(path))
		if err != nil {
			return result, fmt.Errorf("decode %s: %w", path, err)
		}

		frame := pipeline.RawFrame{
			Index:   i,
			TraceID: uuid.NewString(),
			Name:    uniqueName(names, baseName(path)),
			Image:   img,
		}
		w, h := frame.Size()
		s.logger.Debug("Loaded %s (%dx%d) as frame %d [%s]", path, w, h, i, frame.TraceID)
		result.Frames = append(result.Frames, frame)
	}
	return result, nil
}

// expandPaths replaces every directory with the supported image files it
// directly contains. Explicit file paths are kept whatever their extension.
func (s *Stage) expandPaths(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		isDir, err := s.fs.IsDir(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if !isDir {
			out = append(out, p)
			continue
		}

		files, err := s.fs.ListFiles(p)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", p, err)
		}
		for _, f := range files {
			if supportedExtensions[strings.ToLower(filepath.Ext(f))] {
				out = append(out, f)
			} else {
				s.logger.Warn("Skipping unsupported file %s", f)
			}
		}
	}
	return out, nil
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// uniqueName suffixes repeated names so outputs never overwrite each other.
func uniqueName(seen map[string]bool, name string) string {
	candidate := name
	for n := 1; seen[candidate]; n++ {
		candidate = fmt.Sprintf("%s-%d", name, n)
	}
	seen[candidate] = true
	return candidate
}
