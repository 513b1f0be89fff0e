package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/spaghettifunk/pong/engine/assets"
	"github.com/spaghettifunk/pong/engine/core"
	"github.com/spaghettifunk/pong/engine/math"
	"github.com/spaghettifunk/pong/engine/platform"
	"github.com/spaghettifunk/pong/engine/renderer"
	"github.com/spaghettifunk/pong/engine/renderer/metadata"
	"github.com/spaghettifunk/pong/engine/renderer/vulkan"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type Engine struct {
	id              uuid.UUID
	currentStage    Stage
	gameInstance    *Game
	isRunning       bool
	isSuspended     bool
	redrawRequested bool
	platform        *platform.Platform
	assetManager    *assets.AssetManager
	renderer        *renderer.Renderer
	width           uint32
	height          uint32
	clock           *core.Clock
	limiter         *rate.Limiter
	lastTime        float64
	lastStatsTime   float64
}

func New(g *Game) (*Engine, error) {
	p, err := platform.New()
	if err != nil {
		return nil, err
	}

	am, err := assets.NewAssetManager(g.ApplicationConfig.WatchShaders)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	return &Engine{
		id:           uuid.New(),
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		clock:        core.NewClock(),
		limiter:      newFrameLimiter(g.ApplicationConfig.TargetFPS),
		platform:     p,
		assetManager: am,
		isRunning:    true,
		isSuspended:  false,
		width:        g.ApplicationConfig.StartWidth,
		height:       g.ApplicationConfig.StartHeight,
	}, nil
}

// newFrameLimiter allows one frame per 1/fps seconds. Zero means unpaced.
func newFrameLimiter(fps int) *rate.Limiter {
	if fps <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(fps), 1)
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing
	config := e.gameInstance.ApplicationConfig
	core.SetLogLevel(config.LogLevel)
	core.LogInfo("Engine %s initializing %q.", e.id, config.Name)

	// initialize input
	if err := core.InputInitialize(); err != nil {
		return err
	}

	// initialize events
	if !core.EventSystemInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}
	if err := core.MetricsInitialize(); err != nil {
		return err
	}

	// register some events
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e.onEvent)
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, e.onKey)
	core.EventRegister(core.EVENT_CODE_KEY_RELEASED, e.onKey)
	core.EventRegister(core.EVENT_CODE_RESIZED, e.onResized)

	if err := e.platform.Startup(config.Name, config.StartPosX, config.StartPosY, config.StartWidth, config.StartHeight); err != nil {
		return err
	}
	// The drawable size can differ from the window size on high-DPI displays.
	e.width, e.height = e.platform.FramebufferSize()

	vertex, err := e.assetManager.LoadShader(config.VertexShaderPath)
	if err != nil {
		return fmt.Errorf("loading vertex shader: %w", err)
	}
	fragment, err := e.assetManager.LoadShader(config.FragmentShaderPath)
	if err != nil {
		return fmt.Errorf("loading fragment shader: %w", err)
	}
	if err := e.assetManager.Initialize(shaderDirs(config.VertexShaderPath, config.FragmentShaderPath)...); err != nil {
		return err
	}

	if err := e.gameInstance.FnInitialize(); err != nil {
		return err
	}

	backend := vulkan.New(e.platform, metadata.RendererBackendConfig{
		ApplicationName:  config.Name,
		Width:            e.width,
		Height:           e.height,
		FramesInFlight:   config.FramesInFlight,
		EnableValidation: config.EnableValidation,
		VertexShader:     vertex.Code,
		FragmentShader:   fragment.Code,
	})
	e.renderer = renderer.New(backend, e.gameInstance.FnCamera(), config.FramesInFlight)
	if err := e.renderer.Initialize(e.gameInstance.FnModelData()); err != nil {
		return err
	}

	if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
		return err
	}
	e.currentStage = EngineStageInitialized
	return nil
}

// shaderDirs returns the distinct directories holding the given files.
func shaderDirs(paths ...string) []string {
	seen := make(map[string]bool, len(paths))
	dirs := make([]string, 0, len(paths))
	for _, p := range paths {
		dir := filepath.Dir(p)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}
	return dirs
}

// Run drives the main loop until the window closes, Escape is pressed or ctx
// is cancelled.
func (e *Engine) Run(ctx context.Context) error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("engine is not initialized")
	}
	e.currentStage = EngineStageRunning

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	for e.isRunning {
		if ctx.Err() != nil {
			core.LogInfo("Shutdown signal received.")
			e.isRunning = false
			break
		}

		if !e.platform.PumpMessages() {
			e.isRunning = false
			break
		}
		e.handleAssetChanges(e.assetManager.Poll())

		e.RequestRedraw()
		if !e.isSuspended && e.redrawRequested {
			if err := e.frame(); err != nil {
				core.LogError("Frame failed, shutting down: %s", err)
				e.isRunning = false
				return err
			}
		}

		if err := e.limiter.Wait(ctx); err != nil && ctx.Err() == nil {
			return err
		}
	}
	return nil
}

func (e *Engine) frame() error {
	e.redrawRequested = false

	// Update clock and get delta time.
	e.clock.Update()
	currentTime := e.clock.Elapsed()
	delta := currentTime - e.lastTime
	e.lastTime = currentTime

	if err := e.gameInstance.FnUpdate(delta); err != nil {
		return fmt.Errorf("game update: %w", err)
	}
	if err := e.DrawFrame(e.gameInstance.FnModelTransforms()); err != nil {
		return err
	}

	core.MetricsUpdate(delta)
	if currentTime-e.lastStatsTime >= 1.0 {
		fps, frameTime := core.MetricsFrame()
		core.LogDebug("FPS: %.1f, frame time: %.3fms, frames: %d", fps, frameTime*1000, e.renderer.FrameNumber())
		e.lastStatsTime = currentTime
	}

	// NOTE: Input update/state copying should always be handled
	// after any input should be recorded; I.E. before this line.
	core.InputUpdate()
	return nil
}

// RequestRedraw asks for a frame on the next loop iteration.
func (e *Engine) RequestRedraw() {
	e.redrawRequested = true
}

func (e *Engine) DrawFrame(transforms []math.Mat4) error {
	if e.renderer == nil {
		return fmt.Errorf("renderer not initialized")
	}
	return e.renderer.DrawFrame(transforms)
}

// WaitDeviceIdle blocks until the GPU has drained every submission.
func (e *Engine) WaitDeviceIdle() error {
	if e.renderer == nil {
		return nil
	}
	return e.renderer.WaitIdle()
}

// Shutdown tears everything down in reverse order. Calling it again does nothing.
func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShuttingDown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown
	e.isRunning = false
	core.LogInfo("Engine %s shutting down.", e.id)

	if err := e.WaitDeviceIdle(); err != nil {
		core.LogWarn("wait device idle: %s", err)
	}
	if e.renderer != nil {
		if err := e.renderer.Shutdown(); err != nil {
			core.LogError("renderer shutdown: %s", err)
		}
	}
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			core.LogError("game shutdown: %s", err)
		}
	}
	if err := e.assetManager.Shutdown(); err != nil {
		core.LogError("asset manager shutdown: %s", err)
	}
	if err := core.EventSystemShutdown(); err != nil {
		return err
	}
	if err := core.InputShutdown(); err != nil {
		return err
	}
	if e.platform.Window != nil {
		return e.platform.Shutdown()
	}
	return nil
}

// GetFramebufferSize returns the width and height (in this order)
// of the application Framebuffer
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

func (e *Engine) handleAssetChanges(changes []assets.AssetChange) {
	for _, c := range changes {
		switch {
		case c.Type == assets.AssetTypeShaderBinary && c.Loaded:
			core.LogWarn("Shader %s changed on disk (%s); restart to use it.", c.Path, c.Op)
		case c.Type == assets.AssetTypeShaderSource:
			core.LogInfo("Shader source %s changed; run `mage build:shaders`.", c.Path)
		}
	}
}

func (e *Engine) onEvent(context core.EventContext) {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.isRunning = false
	}
}

func (e *Engine) onKey(context core.EventContext) {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return
	}

	pressed := context.Type == core.EVENT_CODE_KEY_PRESSED
	if pressed && ke.KeyCode == core.KEY_ESCAPE {
		// NOTE: Technically firing an event to itself, but there may be other listeners.
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_APPLICATION_QUIT,
		})
		// Block anything else from processing this.
		return
	}
	if e.gameInstance.FnOnKey != nil {
		e.gameInstance.FnOnKey(ke.KeyCode, pressed)
	}
}

func (e *Engine) onResized(context core.EventContext) {
	se, ok := context.Data.(*core.SystemEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return
	}

	width := se.WindowWidth
	height := se.WindowHeight
	if width == e.width && height == e.height {
		return
	}
	e.width = width
	e.height = height
	core.LogDebug("Window resize: %d, %d", width, height)

	if e.renderer != nil {
		e.renderer.OnResize(width, height)
	}

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("Window minimized, suspending application.")
		e.isSuspended = true
		return
	}
	if e.isSuspended {
		core.LogInfo("Window restored, resuming application.")
		e.isSuspended = false
	}
	if err := e.gameInstance.FnOnResize(width, height); err != nil {
		core.LogError(err.Error())
	}
}
