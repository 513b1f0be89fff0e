package engine

import (
	"github.com/spaghettifunk/pong/engine/core"
	"github.com/spaghettifunk/pong/engine/math"
	"github.com/spaghettifunk/pong/engine/renderer/components"
	"github.com/spaghettifunk/pong/engine/renderer/metadata"
)

// Game is the boundary between the engine and the game logic. Models and
// transforms are one ordered collection: FnModelTransforms must return one
// matrix per entry of FnModelData, in the same order.
type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnOnResize        OnResize
	FnOnKey           OnKey
	FnShutdown        Shutdown
	FnModelData       ModelData
	FnModelTransforms ModelTransforms
	FnCamera          Camera
}

type Initialize func() error
type Update func(deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type OnKey func(key core.KeyCode, pressed bool)
type Shutdown func() error
type ModelData func() []metadata.ModelData
type ModelTransforms func() []math.Mat4
type Camera func() *components.Camera
