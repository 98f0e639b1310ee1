package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/user/rgb2gray/pkg/ports"
)

func TestConsoleLogger_Streams(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewConsoleWriter(ports.LevelDebug, &out, &errOut)

	log.Debug("frame %d ready", 1)
	log.Info("frame %d done", 2)
	log.Warn("frame %d slow", 3)
	log.Error("frame %d lost", 4)

	wantOut := "frame 1 ready\nframe 2 done\n"
	if out.String() != wantOut {
		t.Errorf("stdout = %q, want %q", out.String(), wantOut)
	}
	wantErr := "frame 3 slow\nframe 4 lost\n"
	if errOut.String() != wantErr {
		t.Errorf("stderr = %q, want %q", errOut.String(), wantErr)
	}
}

func TestConsoleLogger_Level(t *testing.T) {
	tests := []struct {
		level ports.LogLevel
		want  int
	}{
		{ports.LevelDebug, 4},
		{ports.LevelInfo, 3},
		{ports.LevelWarn, 2},
		{ports.LevelError, 1},
		{ports.LevelQuiet, 0},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			log := NewConsoleWriter(tt.level, &buf, &buf)
			log.Debug("d")
			log.Info("i")
			log.Warn("w")
			log.Error("e")

			got := strings.Count(buf.String(), "\n")
			if got != tt.want {
				t.Errorf("got %d lines, want %d", got, tt.want)
			}
		})
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var out bytes.Buffer
	base := NewConsoleWriter(ports.LevelInfo, &out, &out)
	log := base.WithComponent("convert")

	log.Info("frame %d done", 7)
	base.Info("plain")

	want := "[convert] frame 7 done\nplain\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestJSONLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSON(ports.LevelInfo, &buf).WithComponent("negotiate")

	log.Debug("hidden")
	log.Info("group %d ready", 2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if entry["msg"] != "group 2 ready" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["component"] != "negotiate" {
		t.Errorf("component = %v", entry["component"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("expected time field")
	}
}

func TestJSONLogger_KeepsMessageKeys(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSON(ports.LevelDebug, &buf)

	log.Info("Output saved to %s", "out")

	if !strings.Contains(buf.String(), `"msg":"Output saved to out"`) {
		t.Errorf("expected untranslated message, got %q", buf.String())
	}
}

func TestJSONLogger_Quiet(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSON(ports.LevelQuiet, &buf)

	log.Error("boom")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestNoopLogger(t *testing.T) {
	log := NewNoop()
	log.Info("x")
	if log.WithComponent("c") == nil {
		t.Error("expected logger")
	}
}
