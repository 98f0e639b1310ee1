// Package config provides configuration loading and management.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/rgb2gray/pkg/orchestrator"
	"github.com/user/rgb2gray/pkg/pipeline"
	"github.com/user/rgb2gray/pkg/ports"
	"github.com/user/rgb2gray/pkg/video"
)

// Config represents the full configuration for rgb2gray.
type Config struct {
	// Input/Output
	Inputs    []string `yaml:"inputs"`
	OutputDir string   `yaml:"output"`

	// Conversion
	OutputFormat string `yaml:"output_format"` // GRAY8 or BGRx
	ImageFormat  string `yaml:"image_format"`  // png, jpeg, bmp, tiff
	JPEGQuality  int    `yaml:"jpeg_quality"`
	RowAlignment int    `yaml:"row_alignment"`
	Workers      int    `yaml:"workers"` // 0 = one per CPU
	Framerate    string `yaml:"framerate"`

	// Synthetic input
	TestSource TestSourceConfig `yaml:"test_source"`

	// Logging
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// TestSourceConfig configures the generated test pattern.
type TestSourceConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Frames  int    `yaml:"frames"`
	Pattern string `yaml:"pattern"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	pattern := pipeline.DefaultPatternSpec()
	return Config{
		OutputDir: "./out",

		OutputFormat: video.FormatGray8.String(),
		ImageFormat:  ports.FormatPNG.String(),
		JPEGQuality:  90,
		RowAlignment: video.DefaultRowAlignment,
		Workers:      0,
		Framerate:    "30/1",

		TestSource: TestSourceConfig{
			Width:   pattern.Width,
			Height:  pattern.Height,
			Frames:  pattern.Frames,
			Pattern: pattern.Pattern,
		},

		LogLevel:  ports.LevelInfo.String(),
		LogFormat: string(ports.FormatConsole),

		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file. Keys not present in
// the file keep their defaults; unknown keys are an error.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field that ToOrchestratorConfig parses.
func (c Config) Validate() error {
	_, err := c.ToOrchestratorConfig()
	return err
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() (orchestrator.Config, error) {
	outFormat, err := parseOutputFormat(c.OutputFormat)
	if err != nil {
		return orchestrator.Config{}, fmt.Errorf("output_format: %w", err)
	}
	imageFormat, err := ports.ParseImageFormat(c.ImageFormat)
	if err != nil {
		return orchestrator.Config{}, fmt.Errorf("image_format: %w", err)
	}
	framerate, err := video.ParseFraction(c.Framerate)
	if err != nil {
		return orchestrator.Config{}, fmt.Errorf("framerate: %w", err)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return orchestrator.Config{}, fmt.Errorf("jpeg_quality: %d is outside 1-100", c.JPEGQuality)
	}

	return orchestrator.Config{
		Inputs:    c.Inputs,
		Framerate: framerate,
		Pattern: &pipeline.PatternSpec{
			Width:     c.TestSource.Width,
			Height:    c.TestSource.Height,
			Frames:    c.TestSource.Frames,
			Framerate: framerate,
			Pattern:   c.TestSource.Pattern,
		},

		OutputDir:    c.OutputDir,
		OutputFormat: outFormat,
		ImageFormat:  imageFormat,
		JPEGQuality:  c.JPEGQuality,
	}, nil
}

// parseOutputFormat accepts the caps spelling in any letter case.
func parseOutputFormat(s string) (video.PixelFormat, error) {
	for _, f := range []video.PixelFormat{video.FormatGray8, video.FormatBGRx} {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return video.ParsePixelFormat(s)
}
