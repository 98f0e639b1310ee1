// Package main provides the CLI entry point for rgb2gray.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/rgb2gray/pkg/adapters/filesink"
	"github.com/user/rgb2gray/pkg/adapters/ggrenderer"
	"github.com/user/rgb2gray/pkg/adapters/logger"
	"github.com/user/rgb2gray/pkg/adapters/nullsink"
	"github.com/user/rgb2gray/pkg/adapters/osfilesystem"
	"github.com/user/rgb2gray/pkg/config"
	"github.com/user/rgb2gray/pkg/orchestrator"
	"github.com/user/rgb2gray/pkg/ports"
	"github.com/user/rgb2gray/pkg/rgb2gray"
	"github.com/user/rgb2gray/pkg/stages/convert"
	"github.com/user/rgb2gray/pkg/stages/negotiate"
	"github.com/user/rgb2gray/pkg/stages/source"
	"github.com/user/rgb2gray/pkg/summarizer"
	"github.com/user/rgb2gray/pkg/video"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Convert ConvertCmd `cmd:"" help:"${help_convert}"`
	Testsrc TestsrcCmd `cmd:"" help:"${help_testsrc}"`
	Caps    CapsCmd    `cmd:"" help:"${help_caps}"`
	Version VersionCmd `cmd:"" help:"${help_version}"`
}

// RunFlags are shared by the commands that run the pipeline. Pointer flags
// override the config file only when given.
type RunFlags struct {
	Config string `short:"c" type:"existingfile" help:"${help_config}"`

	// Output
	Output      *string `short:"o" help:"${help_output}"`
	Format      *string `short:"f" help:"${help_format}"`
	ImageFormat *string `help:"${help_image_format}"`
	JPEGQuality *int    `name:"jpeg-quality" help:"${help_jpeg_quality}"`
	Summary     string  `help:"${help_summary}"`

	// Conversion
	RowAlignment *int    `help:"${help_row_alignment}"`
	Workers      *int    `short:"j" help:"${help_workers}"`
	Framerate    *string `help:"${help_framerate}"`

	// Debug
	Debug    bool    `short:"d" help:"${help_debug}"`
	DebugDir *string `help:"${help_debug_dir}"`

	// Logging
	LogLevel  *string `short:"l" help:"${help_log_level}"`
	LogFormat *string `help:"${help_log_format}"`
	Quiet     bool    `short:"Q" help:"${help_quiet}"`
}

// ConvertCmd converts image files.
type ConvertCmd struct {
	Inputs   []string `arg:"" type:"path" help:"${help_inputs}"`
	RunFlags `embed:""`
}

// TestsrcCmd converts a generated test pattern.
type TestsrcCmd struct {
	Width    *int    `short:"W" help:"${help_width}"`
	Height   *int    `short:"H" help:"${help_height}"`
	Frames   *int    `short:"n" help:"${help_frames}"`
	Pattern  *string `short:"p" help:"${help_pattern}"`
	RunFlags `embed:""`
}

// CapsCmd prints the caps the element offers on the opposite pad.
type CapsCmd struct {
	Caps         string `arg:"" help:"${help_caps_arg}"`
	Direction    string `default:"sink" enum:"sink,src" help:"${help_direction}"`
	Filter       string `help:"${help_filter}"`
	RowAlignment int    `default:"4" help:"${help_row_alignment}"`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("rgb2gray"),
		kong.Description(l10n.T("Convert BGRx video frames to grayscale")),
		kong.UsageOnError(),
		helpVars(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the convert command.
func (cmd *ConvertCmd) Run() error {
	return cmd.RunFlags.run(func(cfg *config.Config) {
		cfg.Inputs = cmd.Inputs
	})
}

// Run executes the testsrc command.
func (cmd *TestsrcCmd) Run() error {
	return cmd.RunFlags.run(func(cfg *config.Config) {
		cfg.Inputs = nil
		if cmd.Width != nil {
			cfg.TestSource.Width = *cmd.Width
		}
		if cmd.Height != nil {
			cfg.TestSource.Height = *cmd.Height
		}
		if cmd.Frames != nil {
			cfg.TestSource.Frames = *cmd.Frames
		}
		if cmd.Pattern != nil {
			cfg.TestSource.Pattern = *cmd.Pattern
		}
	})
}

// Run executes the caps command.
func (cmd *CapsCmd) Run() error {
	caps, err := video.ParseCaps(cmd.Caps)
	if err != nil {
		return err
	}
	filter, err := video.ParseCaps(cmd.Filter)
	if err != nil {
		return fmt.Errorf("filter: %w", err)
	}
	dir, err := video.ParsePadDirection(cmd.Direction)
	if err != nil {
		return err
	}

	element := rgb2gray.New(logger.NewConsole(ports.LevelWarn), rgb2gray.WithRowAlignment(cmd.RowAlignment))
	other := element.TransformCaps(dir, caps, filter)

	fmt.Println(l10n.F("Caps on the %s pad:", oppositeName(dir)))
	if other.IsEmpty() {
		fmt.Println("  EMPTY")
		return nil
	}
	for _, s := range other {
		fmt.Printf("  %s\n", s)
	}

	fixed := other.Fixate()
	fmt.Println(l10n.F("Fixated: %s", fixed))
	if size, ok := element.UnitSize(fixed); ok {
		fmt.Println(l10n.F("Unit size: %d bytes", size))
	}
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("rgb2gray version %s", version))
	return nil
}

func oppositeName(dir video.PadDirection) string {
	if dir == video.DirectionSink {
		return video.DirectionSrc.String()
	}
	return video.DirectionSink.String()
}

// buildConfig loads the config file, if any, and applies flag overrides.
func (f *RunFlags) buildConfig() (config.Config, error) {
	cfg := config.Defaults()
	if f.Config != "" {
		loaded, err := config.LoadFromFile(f.Config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if f.Output != nil {
		cfg.OutputDir = *f.Output
	}
	if f.Format != nil {
		cfg.OutputFormat = *f.Format
	}
	if f.ImageFormat != nil {
		cfg.ImageFormat = *f.ImageFormat
	}
	if f.JPEGQuality != nil {
		cfg.JPEGQuality = *f.JPEGQuality
	}
	if f.RowAlignment != nil {
		cfg.RowAlignment = *f.RowAlignment
	}
	if f.Workers != nil {
		cfg.Workers = *f.Workers
	}
	if f.Framerate != nil {
		cfg.Framerate = *f.Framerate
	}
	if f.Debug {
		cfg.Debug = true
	}
	if f.DebugDir != nil {
		cfg.DebugDir = *f.DebugDir
	}
	if f.LogLevel != nil {
		cfg.LogLevel = *f.LogLevel
	}
	if f.LogFormat != nil {
		cfg.LogFormat = *f.LogFormat
	}
	return cfg, nil
}

func (f *RunFlags) newLogger(cfg config.Config) (ports.Logger, error) {
	if f.Quiet {
		return logger.NewNoop(), nil
	}
	format, err := ports.ParseLogFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	level := ports.ParseLogLevel(cfg.LogLevel)
	if format == ports.FormatJSON {
		return logger.NewJSON(level, os.Stderr), nil
	}
	return logger.NewConsole(level), nil
}

// run builds the pipeline from the effective config and executes it.
func (f *RunFlags) run(apply func(*config.Config)) error {
	cfg, err := f.buildConfig()
	if err != nil {
		return err
	}
	apply(&cfg)

	orchConfig, err := cfg.ToOrchestratorConfig()
	if err != nil {
		return err
	}

	log, err := f.newLogger(cfg)
	if err != nil {
		return err
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Create adapters
	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	// Create debug sink
	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Create element and stages
	element := rgb2gray.New(log, rgb2gray.WithRowAlignment(cfg.RowAlignment))
	orch := orchestrator.New(
		source.NewStage(fs, renderer, log),
		negotiate.NewStage(element, sink, log),
		convert.NewStage(element, sink, log, workers),
		element,
		renderer,
		fs,
		log,
	)

	result, err := orch.Run(ctx, orchConfig)
	if err != nil {
		return err
	}

	if f.Summary != "" {
		summary := buildSummary(orchConfig, result, element.RowAlignment(), workers)
		writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter(
			summarizer.WithTranslator(l10n.T),
			summarizer.WithVersion(version),
		), fs)
		if err := writer.Write(f.Summary, summary); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		log.Info("Summary saved to %s", f.Summary)
	}
	return nil
}

func buildSummary(oc orchestrator.Config, result orchestrator.RunResult, rowAlign, workers int) *summarizer.Summary {
	pattern := ""
	if len(oc.Inputs) == 0 && oc.Pattern != nil {
		pattern = oc.Pattern.Pattern
	}

	b := summarizer.NewBuilder().
		WithSource(oc.Inputs, pattern, result.FrameCount).
		WithSettings(summarizer.Settings{
			OutputFormat: result.OutputFormat.String(),
			ImageFormat:  result.ImageFormat.String(),
			Framerate:    fmt.Sprintf("%d/%d", result.Framerate.Num, result.Framerate.Den),
			RowAlignment: rowAlign,
			Workers:      workers,
		}).
		WithOutput(summarizer.OutputInfo{
			Dir:        result.OutputDir,
			Files:      len(result.Outputs),
			BytesIn:    result.BytesIn,
			BytesOut:   result.BytesOut,
			DurationMs: result.Duration.Milliseconds(),
		})
	for _, g := range result.Groups {
		b.AddNegotiation(summarizer.NegotiationInfo{
			Width:   g.Width,
			Height:  g.Height,
			InCaps:  g.InCaps,
			OutCaps: g.OutCaps,
			InSize:  g.InSize,
			OutSize: g.OutSize,
			Frames:  g.Frames,
		})
	}
	return b.Build()
}
