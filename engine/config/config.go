package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/pong/engine/core"
)

const (
	MinFramesInFlight uint32 = 1
	MaxFramesInFlight uint32 = 8
)

type Config struct {
	Window   WindowConfig   `toml:"window"`
	Engine   EngineConfig   `toml:"engine"`
	Renderer RendererConfig `toml:"renderer"`
}

type WindowConfig struct {
	Name   string `toml:"name"`
	X      uint32 `toml:"x"`
	Y      uint32 `toml:"y"`
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
}

type EngineConfig struct {
	LogLevel string `toml:"log_level"`
	// Upper bound of the main loop rate; 0 disables pacing.
	TargetFPS int `toml:"target_fps"`
}

type RendererConfig struct {
	FramesInFlight uint32 `toml:"frames_in_flight"`
	Validation     bool   `toml:"validation"`
	VertexShader   string `toml:"vertex_shader"`
	FragmentShader string `toml:"fragment_shader"`
	WatchShaders   bool   `toml:"watch_shaders"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Name:   "Pong",
			X:      100,
			Y:      100,
			Width:  800,
			Height: 600,
		},
		Engine: EngineConfig{
			LogLevel:  "debug",
			TargetFPS: 60,
		},
		Renderer: RendererConfig{
			FramesInFlight: 2,
			Validation:     true,
			VertexShader:   "shaders/vert.spv",
			FragmentShader: "shaders/frag.spv",
			WatchShaders:   true,
		},
	}
}

// Load reads a TOML file on top of the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			core.LogWarn("config file %s not found, using defaults", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays the TOML document onto cfg and validates the result.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("%w: %s", core.ErrInvalidConfig, strict.String())
		}
		return err
	}
	return cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Window.Width == 0 || c.Window.Height == 0 {
		return fmt.Errorf("%w: window size %dx%d", core.ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Renderer.FramesInFlight < MinFramesInFlight || c.Renderer.FramesInFlight > MaxFramesInFlight {
		return fmt.Errorf("%w: frames_in_flight %d outside [%d, %d]", core.ErrInvalidConfig,
			c.Renderer.FramesInFlight, MinFramesInFlight, MaxFramesInFlight)
	}
	if c.Engine.TargetFPS < 0 {
		return fmt.Errorf("%w: target_fps %d", core.ErrInvalidConfig, c.Engine.TargetFPS)
	}
	if c.Renderer.VertexShader == "" || c.Renderer.FragmentShader == "" {
		return fmt.Errorf("%w: shader paths must be set", core.ErrInvalidConfig)
	}
	if _, err := core.ParseLogLevel(c.Engine.LogLevel); err != nil {
		return err
	}
	return nil
}

// LogLevel is the parsed engine.log_level; Validate guarantees it parses.
func (c *Config) LogLevel() core.LogLevel {
	lvl, err := core.ParseLogLevel(c.Engine.LogLevel)
	if err != nil {
		return core.DebugLevel
	}
	return lvl
}
