package renderer

import (
	"fmt"

	"github.com/spaghettifunk/pong/engine/core"
	"github.com/spaghettifunk/pong/engine/math"
	"github.com/spaghettifunk/pong/engine/renderer/components"
	"github.com/spaghettifunk/pong/engine/renderer/metadata"
)

type Renderer struct {
	backend RendererBackend
	camera  *components.Camera

	modelCount     int
	framesInFlight uint32
	currentFrame   uint32
	lastImageIndex uint32
	frameNumber    uint64
	state          metadata.FrameState

	// Latest window size reported by the platform.
	width, height uint32
	resizePending bool

	initialized bool
	destroyed   bool
}

func New(backend RendererBackend, camera *components.Camera, framesInFlight uint32) *Renderer {
	if framesInFlight == 0 {
		framesInFlight = 2
	}
	return &Renderer{
		backend:        backend,
		camera:         camera,
		framesInFlight: framesInFlight,
		state:          metadata.FRAME_STATE_IDLE,
	}
}

// Initialize uploads the models and sizes the camera to the swapchain. The
// number of models fixes the number of transforms DrawFrame accepts.
func (r *Renderer) Initialize(models []metadata.ModelData) error {
	if r.destroyed {
		return core.ErrRendererDestroyed
	}
	if err := r.backend.Initialize(models); err != nil {
		return fmt.Errorf("renderer backend initialization: %w", err)
	}
	r.modelCount = len(models)
	r.width, r.height = r.backend.Extent()
	r.camera.SetAspect(r.width, r.height)
	r.initialized = true
	core.LogInfo("Renderer initialized with %d models, %d frames in flight, %d swapchain images.",
		r.modelCount, r.framesInFlight, r.backend.ImageCount())
	return nil
}

// OnResize records a new window size. The swapchain is rebuilt by the next
// DrawFrame, or as soon as both dimensions are non-zero again.
func (r *Renderer) OnResize(width, height uint32) {
	r.width, r.height = width, height
	r.resizePending = true
	core.LogDebug("Renderer resize requested: %dx%d.", width, height)
}

// DrawFrame renders and presents one frame with one model matrix per model.
func (r *Renderer) DrawFrame(transforms []math.Mat4) error {
	if r.destroyed {
		return core.ErrRendererDestroyed
	}
	if !r.initialized {
		return fmt.Errorf("DrawFrame before Initialize")
	}
	if len(transforms) != r.modelCount {
		return fmt.Errorf("%d transforms for %d models: %w", len(transforms), r.modelCount, core.ErrTransformCountMismatch)
	}
	if r.suspended() {
		return nil
	}
	if r.resizePending {
		if err := r.resize(); err != nil {
			return err
		}
	}

	slot := r.currentFrame

	r.state = metadata.FRAME_STATE_ACQUIRING
	if err := r.backend.WaitForFrame(slot); err != nil {
		return fmt.Errorf("wait for frame slot %d: %w", slot, err)
	}
	imageIndex, status, err := r.backend.AcquireNextImage(slot)
	if err != nil {
		return err
	}
	if status == metadata.FRAME_STATUS_OUT_OF_DATE {
		// The frame is dropped; the slot is not advanced.
		return r.resize()
	}
	r.lastImageIndex = imageIndex

	r.state = metadata.FRAME_STATE_RENDERING
	view := r.camera.GetView()
	projection := r.camera.GetProjection()
	uniforms := make([]metadata.UniformTransform, len(transforms))
	for i, t := range transforms {
		uniforms[i] = metadata.UniformTransform{Model: t, View: view, Projection: projection}
	}
	if err := r.backend.UpdateUniforms(imageIndex, uniforms); err != nil {
		return err
	}
	if err := r.backend.Submit(slot, imageIndex); err != nil {
		return err
	}

	r.state = metadata.FRAME_STATE_PRESENTING
	status, err = r.backend.Present(slot, imageIndex)
	if err != nil {
		return err
	}
	if status != metadata.FRAME_STATUS_OK || r.resizePending {
		if err := r.resize(); err != nil {
			return err
		}
	}

	r.currentFrame = (r.currentFrame + 1) % r.framesInFlight
	r.frameNumber++
	r.state = metadata.FRAME_STATE_IDLE
	return nil
}

func (r *Renderer) suspended() bool {
	return r.width == 0 || r.height == 0
}

// resize rebuilds the swapchain against the latest window size. With a zero
// dimension the rebuild stays pending.
func (r *Renderer) resize() error {
	r.state = metadata.FRAME_STATE_RESIZING
	if r.suspended() {
		r.resizePending = true
		core.LogDebug("Window has a zero dimension, deferring swapchain rebuild.")
		return nil
	}
	width, height, err := r.backend.RecreateSwapchain(r.width, r.height)
	if err != nil {
		return fmt.Errorf("recreate swapchain at %dx%d: %w", r.width, r.height, err)
	}
	r.camera.SetAspect(width, height)
	r.resizePending = false
	r.state = metadata.FRAME_STATE_IDLE
	return nil
}

// WaitIdle blocks until the GPU has finished all submitted work.
func (r *Renderer) WaitIdle() error {
	if r.destroyed {
		return nil
	}
	return r.backend.WaitIdle()
}

// Shutdown releases every GPU resource. Further calls are no-ops.
func (r *Renderer) Shutdown() error {
	if r.destroyed {
		return nil
	}
	r.destroyed = true
	r.initialized = false
	return r.backend.Shutdown()
}

func (r *Renderer) State() metadata.FrameState {
	return r.state
}

// CurrentFrame is the frame-in-flight slot the next DrawFrame will use.
func (r *Renderer) CurrentFrame() uint32 {
	return r.currentFrame
}

func (r *Renderer) LastImageIndex() uint32 {
	return r.lastImageIndex
}

func (r *Renderer) FrameNumber() uint64 {
	return r.frameNumber
}

func (r *Renderer) ResizePending() bool {
	return r.resizePending
}
