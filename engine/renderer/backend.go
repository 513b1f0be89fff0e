package renderer

import "github.com/spaghettifunk/pong/engine/renderer/metadata"

// RendererBackend is the GPU side of the frame protocol. The renderer
// frontend drives it one step at a time and owns all policy: slot rotation,
// resize handling and camera updates.
type RendererBackend interface {
	Initialize(models []metadata.ModelData) error
	Shutdown() error
	// Extent is the current drawable size in pixels.
	Extent() (uint32, uint32)
	ImageCount() uint32
	WaitForFrame(slot uint32) error
	AcquireNextImage(slot uint32) (uint32, metadata.FrameStatus, error)
	UpdateUniforms(imageIndex uint32, uniforms []metadata.UniformTransform) error
	Submit(slot, imageIndex uint32) error
	Present(slot, imageIndex uint32) (metadata.FrameStatus, error)
	RecreateSwapchain(width, height uint32) (uint32, uint32, error)
	WaitIdle() error
}
