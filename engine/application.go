package engine

import (
	"github.com/spaghettifunk/pong/engine/config"
	"github.com/spaghettifunk/pong/engine/core"
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32
	// Window starting position y axis, if applicable.
	StartPosY uint32
	// Window starting width, if applicable.
	StartWidth uint32
	// Window starting height, if applicable.
	StartHeight uint32
	// The application name used in windowing, if applicable.
	Name     string
	LogLevel core.LogLevel
	// Upper bound of the main loop rate; 0 disables pacing.
	TargetFPS int

	FramesInFlight     uint32
	EnableValidation   bool
	VertexShaderPath   string
	FragmentShaderPath string
	WatchShaders       bool
}

// NewApplicationConfig flattens a validated configuration.
func NewApplicationConfig(cfg *config.Config) *ApplicationConfig {
	return &ApplicationConfig{
		StartPosX:          cfg.Window.X,
		StartPosY:          cfg.Window.Y,
		StartWidth:         cfg.Window.Width,
		StartHeight:        cfg.Window.Height,
		Name:               cfg.Window.Name,
		LogLevel:           cfg.LogLevel(),
		TargetFPS:          cfg.Engine.TargetFPS,
		FramesInFlight:     cfg.Renderer.FramesInFlight,
		EnableValidation:   cfg.Renderer.Validation,
		VertexShaderPath:   cfg.Renderer.VertexShader,
		FragmentShaderPath: cfg.Renderer.FragmentShader,
		WatchShaders:       cfg.Renderer.WatchShaders,
	}
}
