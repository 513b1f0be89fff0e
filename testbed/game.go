package testbed

import (
	"time"

	"github.com/spaghettifunk/pong/engine"
	"github.com/spaghettifunk/pong/engine/core"
	"github.com/spaghettifunk/pong/engine/math"
	"github.com/spaghettifunk/pong/engine/renderer/components"
	"github.com/spaghettifunk/pong/engine/renderer/metadata"
)

type Phase uint8

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseEnd:
		return "end"
	}
	return "unknown"
}

type PongGame struct {
	*engine.Game
}

type gameState struct {
	Scene       *Scene
	Phase       Phase
	WorldCamera *components.Camera

	width  uint32
	height uint32
}

func NewPongGame(config *engine.ApplicationConfig) *PongGame {
	state := &gameState{
		Scene: NewScene(uint64(time.Now().UnixNano())),
		Phase: PhaseStart,
		WorldCamera: components.NewCamera(
			math.NewVec3(0, 0, 4),
			math.NewVec3Zero(),
			math.NewVec3Up(),
			math.DegToRad(45),
			0.1,
			10,
		),
		width:  config.StartWidth,
		height: config.StartHeight,
	}
	state.WorldCamera.SetAspect(state.width, state.height)

	g := &PongGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			State:             state,
		},
	}
	g.FnInitialize = g.Initialize
	g.FnUpdate = g.Update
	g.FnOnResize = g.OnResize
	g.FnOnKey = g.OnKey
	g.FnShutdown = g.Shutdown
	g.FnModelData = g.ModelData
	g.FnModelTransforms = g.ModelTransforms
	g.FnCamera = g.Camera
	return g
}

func (g *PongGame) state() *gameState {
	return g.State.(*gameState)
}

func (g *PongGame) Initialize() error {
	core.LogInfo("Pong ready. Space to serve, W/S and I/K to move, Escape to quit.")
	return nil
}

func (g *PongGame) Update(deltaTime float64) error {
	state := g.state()
	if state.Scene.GameOver() && state.Phase != PhaseEnd {
		state.Scene.HandleAction(ActionGameOver)
		state.Phase = PhaseEnd
		core.LogInfo("Game over. Press space to reset.")
	}
	state.Scene.Update(float32(deltaTime))
	return nil
}

func (g *PongGame) OnResize(width uint32, height uint32) error {
	state := g.state()
	state.width = width
	state.height = height
	return nil
}

// OnKey maps keyboard input to scene actions and drives the game phases.
func (g *PongGame) OnKey(key core.KeyCode, pressed bool) {
	state := g.state()
	if action, ok := g.actionFor(key, pressed); ok {
		state.Scene.HandleAction(action)
	}
}

func (g *PongGame) actionFor(key core.KeyCode, pressed bool) (Action, bool) {
	state := g.state()
	switch key {
	case core.KEY_SPACE:
		if !pressed {
			return 0, false
		}
		switch state.Phase {
		case PhaseStart:
			state.Phase = PhasePlaying
			return ActionKickoff, true
		case PhaseEnd:
			state.Phase = PhaseStart
			return ActionResetGame, true
		}
		return 0, false
	case core.KEY_W:
		return pick(pressed, ActionLeftPaddleUp, ActionLeftPaddleStop), true
	case core.KEY_S:
		return pick(pressed, ActionLeftPaddleDown, ActionLeftPaddleStop), true
	case core.KEY_I:
		return pick(pressed, ActionRightPaddleUp, ActionRightPaddleStop), true
	case core.KEY_K:
		return pick(pressed, ActionRightPaddleDown, ActionRightPaddleStop), true
	}
	return 0, false
}

func pick(pressed bool, onPress, onRelease Action) Action {
	if pressed {
		return onPress
	}
	return onRelease
}

func (g *PongGame) Shutdown() error {
	core.LogInfo("Pong shut down in phase %s.", g.state().Phase)
	return nil
}

func (g *PongGame) ModelData() []metadata.ModelData {
	return g.state().Scene.ModelData()
}

func (g *PongGame) ModelTransforms() []math.Mat4 {
	return g.state().Scene.ModelTransforms()
}

func (g *PongGame) Camera() *components.Camera {
	return g.state().WorldCamera
}
