// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/rgb2gray/pkg/ports"
)

// Sink saves debug output to files under baseDir:
//
//	negotiation-NN.json
//	frames/input/frame-NNNN.bgrx
//	frames/output/frame-NNNN.png
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveNegotiationJSON saves one negotiation result as JSON.
func (s *Sink) SaveNegotiationJSON(group int, data []byte) error {
	path := filepath.Join(s.baseDir, fmt.Sprintf("negotiation-%02d.json", group))
	return s.fs.WriteFile(path, data)
}

// SaveInputBuffer saves the packed BGRx bytes of an input frame.
func (s *Sink) SaveInputBuffer(index int, data []byte) error {
	dir := filepath.Join(s.baseDir, "frames", "input")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%04d.bgrx", index))
	return s.fs.WriteFile(path, data)
}

// SaveOutputFrame saves a converted frame as PNG.
func (s *Sink) SaveOutputFrame(index int, img image.Image) error {
	dir := filepath.Join(s.baseDir, "frames", "output")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode output frame: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", index))
	return s.fs.WriteFile(path, data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
