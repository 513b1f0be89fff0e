package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/pong/engine/core"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 || cfg.Renderer.FramesInFlight != 2 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestDecodeOverlaysDefaults(t *testing.T) {
	cfg := Default()
	doc := []byte(`
[window]
width = 1024

[renderer]
frames_in_flight = 3
validation = false

[engine]
log_level = "info"
`)
	if err := Decode(doc, cfg); err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	if cfg.Window.Width != 1024 || cfg.Window.Height != 600 {
		t.Fatalf("window = %dx%d, want 1024x600", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Renderer.FramesInFlight != 3 || cfg.Renderer.Validation {
		t.Fatalf("renderer = %+v", cfg.Renderer)
	}
	if cfg.Renderer.VertexShader != "shaders/vert.spv" {
		t.Fatalf("vertex shader default lost: %q", cfg.Renderer.VertexShader)
	}
	if cfg.LogLevel() != core.InfoLevel {
		t.Fatalf("LogLevel() = %v, want info", cfg.LogLevel())
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "unknown key", doc: "[window]\ncolour = 3\n"},
		{name: "zero height", doc: "[window]\nheight = 0\n"},
		{name: "no frames in flight", doc: "[renderer]\nframes_in_flight = 0\n"},
		{name: "too many frames in flight", doc: "[renderer]\nframes_in_flight = 9\n"},
		{name: "negative fps", doc: "[engine]\ntarget_fps = -1\n"},
		{name: "empty shader", doc: "[renderer]\nfragment_shader = \"\"\n"},
		{name: "bad log level", doc: "[engine]\nlog_level = \"loud\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Decode([]byte(tt.doc), Default())
			if !errors.Is(err, core.ErrInvalidConfig) {
				t.Fatalf("Decode() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.toml"))
	if err != nil || cfg.Window.Name != "Pong" {
		t.Fatalf("Load(missing) = %+v, %v", cfg, err)
	}

	path := filepath.Join(dir, "pong.toml")
	if err := os.WriteFile(path, []byte("[window]\nname = \"Test\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil || cfg.Window.Name != "Test" {
		t.Fatalf("Load(%s) = %+v, %v", path, cfg, err)
	}

	if err := os.WriteFile(path, []byte("[window\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load() of malformed TOML succeeded")
	}
}
