package summarizer

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/user/rgb2gray/pkg/mocks"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder_WithSource(t *testing.T) {
	summary := NewBuilder().
		WithSource([]string{"in"}, "", 4).
		Build()

	if len(summary.Source.Inputs) != 1 || summary.Source.Inputs[0] != "in" {
		t.Errorf("unexpected inputs %v", summary.Source.Inputs)
	}
	if summary.Source.FrameCount != 4 {
		t.Errorf("expected 4 frames, got %d", summary.Source.FrameCount)
	}
}

func TestBuilder_AddNegotiation(t *testing.T) {
	summary := NewBuilder().
		AddNegotiation(NegotiationInfo{Width: 320, Height: 240}).
		AddNegotiation(NegotiationInfo{Width: 64, Height: 48}).
		Build()

	if len(summary.Negotiations) != 2 {
		t.Fatalf("expected 2 negotiations, got %d", len(summary.Negotiations))
	}
	if summary.Negotiations[1].Width != 64 {
		t.Errorf("expected second negotiation width 64, got %d", summary.Negotiations[1].Width)
	}
}

func TestBuilder_FullChain(t *testing.T) {
	settings := Settings{OutputFormat: "GRAY8", ImageFormat: "png", Framerate: "30/1", RowAlignment: 4, Workers: 2}
	output := OutputInfo{Dir: "out", Files: 2, BytesIn: 10, BytesOut: 5, DurationMs: 7}

	summary := NewBuilder().
		WithSource(nil, "bars", 2).
		WithSettings(settings).
		WithOutput(output).
		Build()

	if summary.Source.Pattern != "bars" {
		t.Errorf("expected pattern bars, got %s", summary.Source.Pattern)
	}
	if summary.Settings != settings {
		t.Errorf("settings = %+v, want %+v", summary.Settings, settings)
	}
	if summary.Output != output {
		t.Errorf("output = %+v, want %+v", summary.Output, output)
	}
}

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	writer := NewWriter(NewMarkdownFormatter(), fs)
	path := filepath.Join("reports", "summary.md")

	if err := writer.Write(path, sampleSummary()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, ok := fs.GetFile(path)
	if !ok {
		t.Fatalf("expected %s to be written", path)
	}
	if !strings.HasPrefix(string(data), "# Conversion Summary") {
		t.Errorf("unexpected content %q", data)
	}
	if exists, _ := fs.Exists("reports"); !exists {
		t.Error("expected parent directory to be created")
	}
}

func TestWriter_WriteWithFormatFunc(t *testing.T) {
	fs := mocks.NewFileSystem()
	writer := NewWriter(FormatFunc(func(s *Summary) string { return "plain" }), fs)

	if err := writer.Write("summary.txt", NewSummary()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, _ := fs.GetFile("summary.txt")
	if string(data) != "plain" {
		t.Errorf("expected 'plain', got %q", data)
	}
}

func TestWriter_WriteError(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFileFunc = func(path string, data []byte) error {
		return errors.New("read-only")
	}
	writer := NewWriter(NewMarkdownFormatter(), fs)

	if err := writer.Write("summary.md", NewSummary()); err == nil {
		t.Error("expected write error")
	}
}
