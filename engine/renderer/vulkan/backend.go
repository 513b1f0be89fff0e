package vulkan

import (
	"fmt"
	"math"

	vk "github.com/goki/vulkan"

	"github.com/spaghettifunk/pong/engine/core"
	"github.com/spaghettifunk/pong/engine/platform"
	"github.com/spaghettifunk/pong/engine/renderer/metadata"
)

type VulkanRenderer struct {
	platform *platform.Platform
	config   metadata.RendererBackendConfig
	context  *VulkanContext

	// Fences of the frame that last used each swapchain image, or nil.
	imagesInFlight []*VulkanFence

	release   ReleaseStack
	destroyed bool
}

func New(p *platform.Platform, config metadata.RendererBackendConfig) *VulkanRenderer {
	if config.FramesInFlight == 0 {
		config.FramesInFlight = 2
	}
	return &VulkanRenderer{
		platform: p,
		config:   config,
		context: &VulkanContext{
			FramebufferWidth:  config.Width,
			FramebufferHeight: config.Height,
			Allocator:         nil,
			VertexShader:      config.VertexShader,
			FragmentShader:    config.FragmentShader,
		},
	}
}

// Initialize brings up the device, the swapchain-dependent objects and one
// set of GPU resources per model. On failure everything created so far is
// released before the error is returned.
func (vr *VulkanRenderer) Initialize(models []metadata.ModelData) error {
	if vr.destroyed {
		return core.ErrRendererDestroyed
	}
	if err := vr.initialize(models); err != nil {
		core.LogError("Vulkan renderer initialization failed: %s", err)
		vr.release.Release()
		return err
	}
	core.LogInfo("Vulkan renderer initialized successfully.")
	return nil
}

func (vr *VulkanRenderer) initialize(models []metadata.ModelData) error {
	context := vr.context

	if err := createInstance(context, vr.platform, vr.config.ApplicationName, vr.config.EnableValidation); err != nil {
		return err
	}
	vr.release.Push("instance", func() {
		vk.DestroyInstance(context.Instance, context.Allocator)
		context.Instance = nil
	})

	if vr.config.EnableValidation {
		if err := createDebugCallback(context); err != nil {
			return err
		}
		vr.release.Push("debug callback", func() {
			if context.debugMessenger != vk.NullDebugReportCallback {
				vk.DestroyDebugReportCallback(context.Instance, context.debugMessenger, context.Allocator)
				context.debugMessenger = vk.NullDebugReportCallback
			}
		})
	}

	if err := createSurface(context, vr.platform); err != nil {
		return err
	}
	vr.release.Push("surface", func() {
		if context.Surface != vk.NullSurface {
			vk.DestroySurface(context.Instance, context.Surface, context.Allocator)
			context.Surface = vk.NullSurface
		}
	})

	context.Device = &VulkanDevice{}
	if err := DeviceCreate(context); err != nil {
		return err
	}
	vr.release.Push("device", func() {
		DeviceDestroy(context)
	})

	layout, err := DescriptorSetLayoutCreate(context)
	if err != nil {
		return err
	}
	context.DescriptorSetLayout = layout
	vr.release.Push("descriptor set layout", func() {
		DescriptorSetLayoutDestroy(context, context.DescriptorSetLayout)
		context.DescriptorSetLayout = vk.DescriptorSetLayout(vk.NullHandle)
	})

	vr.release.Push("model resources", func() {
		for _, m := range context.Models {
			m.Destroy(context)
		}
		context.Models = nil
	})
	vr.release.Push("swapchain resources", func() {
		vr.destroySwapchainResources()
	})
	if err := vr.buildSwapchainResources(context.FramebufferWidth, context.FramebufferHeight); err != nil {
		return err
	}

	for _, md := range models {
		m, err := ModelResourceCreate(context, md.Mesh, context.Swapchain.ImageCount)
		if err != nil {
			return err
		}
		context.Models = append(context.Models, m)
	}

	buffers, err := RecordCommandBuffers(context)
	if err != nil {
		return err
	}
	context.GraphicsCommandBuffers = buffers

	vr.release.Push("sync objects", func() {
		destroySyncObjects(context)
	})
	if err := createSyncObjects(context, vr.config.FramesInFlight); err != nil {
		return err
	}
	return nil
}

// buildSwapchainResources creates the swapchain, render pass, pipeline and
// framebuffers for the given window size. Used at startup and on resize.
func (vr *VulkanRenderer) buildSwapchainResources(width, height uint32) error {
	context := vr.context

	sc, err := SwapchainCreate(context, width, height)
	if err != nil {
		return err
	}
	context.Swapchain = sc
	context.FramebufferWidth = sc.Extent.Width
	context.FramebufferHeight = sc.Extent.Height

	rp, err := RenderpassCreate(context, sc.ImageFormat.Format,
		0, 0, float32(sc.Extent.Width), float32(sc.Extent.Height),
		0.0, 0.0, 0.0, 1.0)
	if err != nil {
		return err
	}
	context.MainRenderpass = rp

	pipeline, err := PipelineCreate(context, rp, sc.Extent)
	if err != nil {
		return err
	}
	context.Pipeline = pipeline

	sc.Framebuffers = make([]*VulkanFramebuffer, 0, sc.ImageCount)
	for _, view := range sc.Views {
		fb, err := FramebufferCreate(context, rp, sc.Extent.Width, sc.Extent.Height, []vk.ImageView{view})
		if err != nil {
			return err
		}
		sc.Framebuffers = append(sc.Framebuffers, fb)
	}

	vr.imagesInFlight = make([]*VulkanFence, sc.ImageCount)
	return nil
}

// destroySwapchainResources releases command buffers, framebuffers, the
// pipeline and its layout, the render pass, then the image views and the
// swapchain. Missing pieces are skipped.
func (vr *VulkanRenderer) destroySwapchainResources() {
	context := vr.context
	if context.Device == nil || context.Device.LogicalDevice == nil {
		return
	}

	FreeCommandBuffers(context)

	if context.Swapchain != nil {
		for _, fb := range context.Swapchain.Framebuffers {
			fb.Destroy(context)
		}
		context.Swapchain.Framebuffers = nil
	}
	if context.Pipeline != nil {
		context.Pipeline.Destroy(context)
		context.Pipeline = nil
	}
	if context.MainRenderpass != nil {
		context.MainRenderpass.RenderpassDestroy(context)
		context.MainRenderpass = nil
	}
	if context.Swapchain != nil {
		context.Swapchain.SwapchainDestroy(context)
		context.Swapchain = nil
	}
	vr.imagesInFlight = nil
}

// Extent is the current swapchain size in pixels.
func (vr *VulkanRenderer) Extent() (uint32, uint32) {
	return vr.context.FramebufferWidth, vr.context.FramebufferHeight
}

func (vr *VulkanRenderer) ImageCount() uint32 {
	if vr.context.Swapchain == nil {
		return 0
	}
	return vr.context.Swapchain.ImageCount
}

// WaitForFrame blocks until the GPU has finished the last submission made
// from slot.
func (vr *VulkanRenderer) WaitForFrame(slot uint32) error {
	if vr.destroyed {
		return core.ErrRendererDestroyed
	}
	return vr.context.InFlightFences[slot].FenceWait(vr.context, math.MaxUint64)
}

func (vr *VulkanRenderer) AcquireNextImage(slot uint32) (uint32, metadata.FrameStatus, error) {
	if vr.destroyed {
		return 0, metadata.FRAME_STATUS_OK, core.ErrRendererDestroyed
	}
	context := vr.context
	imageIndex, status, err := context.Swapchain.AcquireNextImageIndex(context, math.MaxUint64, context.ImageAvailableSemaphores[slot], vk.NullFence)
	if err != nil || status == metadata.FRAME_STATUS_OUT_OF_DATE {
		return 0, status, err
	}

	// Make sure a previous frame is not still using this image.
	if f := vr.imagesInFlight[imageIndex]; f != nil && f != context.InFlightFences[slot] {
		if err := f.FenceWait(context, math.MaxUint64); err != nil {
			return 0, status, err
		}
	}
	vr.imagesInFlight[imageIndex] = context.InFlightFences[slot]
	return imageIndex, status, nil
}

// UpdateUniforms writes one transform per model, in model order, into the
// uniform buffers of imageIndex.
func (vr *VulkanRenderer) UpdateUniforms(imageIndex uint32, uniforms []metadata.UniformTransform) error {
	if vr.destroyed {
		return core.ErrRendererDestroyed
	}
	if len(uniforms) != len(vr.context.Models) {
		return fmt.Errorf("%d uniforms for %d models: %w", len(uniforms), len(vr.context.Models), core.ErrTransformCountMismatch)
	}
	for i, m := range vr.context.Models {
		if err := m.Update(vr.context, imageIndex, &uniforms[i]); err != nil {
			return fmt.Errorf("update %q: %w", m.Name, err)
		}
	}
	return nil
}

func (vr *VulkanRenderer) Submit(slot, imageIndex uint32) error {
	if vr.destroyed {
		return core.ErrRendererDestroyed
	}
	context := vr.context
	commandBuffer := context.GraphicsCommandBuffers[imageIndex]
	fence := context.InFlightFences[slot]

	// Reset the fence for use on the next frame
	if err := fence.FenceReset(context); err != nil {
		return err
	}

	// Wait semaphore ensures that the operation cannot begin until the image is available.
	// VK_PIPELINE_STAGE_COLOR_ATTACHMENT_OUTPUT_BIT prevents subsequent colour attachment
	// writes from executing until the semaphore signals.
	submitInfo := vk.SubmitInfo{
		SType:                vk.StructureTypeSubmitInfo,
		WaitSemaphoreCount:   1,
		PWaitSemaphores:      []vk.Semaphore{context.ImageAvailableSemaphores[slot]},
		PWaitDstStageMask:    []vk.PipelineStageFlags{vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit)},
		CommandBufferCount:   1,
		PCommandBuffers:      []vk.CommandBuffer{commandBuffer.Handle},
		SignalSemaphoreCount: 1,
		PSignalSemaphores:    []vk.Semaphore{context.QueueCompleteSemaphores[slot]},
	}
	if res := vk.QueueSubmit(context.Device.GraphicsQueue, 1, []vk.SubmitInfo{submitInfo}, fence.Handle); res != vk.Success {
		return fmt.Errorf("vkQueueSubmit: %s: %w", VulkanResultString(res), core.ErrSubmitFailed)
	}
	commandBuffer.UpdateSubmitted()
	return nil
}

func (vr *VulkanRenderer) Present(slot, imageIndex uint32) (metadata.FrameStatus, error) {
	if vr.destroyed {
		return metadata.FRAME_STATUS_OK, core.ErrRendererDestroyed
	}
	context := vr.context
	return context.Swapchain.Present(context.Device.PresentQueue, context.QueueCompleteSemaphores[slot], imageIndex)
}

// RecreateSwapchain tears down every swapchain-dependent object and rebuilds
// it for the given window size. Models are resized to the new image count and
// the command buffers are re-recorded. Returns the new extent.
func (vr *VulkanRenderer) RecreateSwapchain(width, height uint32) (uint32, uint32, error) {
	if vr.destroyed {
		return 0, 0, core.ErrRendererDestroyed
	}
	context := vr.context
	if err := vr.WaitIdle(); err != nil {
		return 0, 0, err
	}

	vr.destroySwapchainResources()
	if err := vr.buildSwapchainResources(width, height); err != nil {
		return 0, 0, err
	}
	for _, m := range context.Models {
		if err := m.Resize(context, context.Swapchain.ImageCount); err != nil {
			return 0, 0, err
		}
	}
	buffers, err := RecordCommandBuffers(context)
	if err != nil {
		return 0, 0, err
	}
	context.GraphicsCommandBuffers = buffers

	core.LogInfo("Swapchain recreated at %dx%d.", context.FramebufferWidth, context.FramebufferHeight)
	return context.FramebufferWidth, context.FramebufferHeight, nil
}

func (vr *VulkanRenderer) WaitIdle() error {
	if vr.context.Device == nil || vr.context.Device.LogicalDevice == nil {
		return nil
	}
	return resultOrNil("vkDeviceWaitIdle", vk.DeviceWaitIdle(vr.context.Device.LogicalDevice))
}

// Shutdown waits for the device and destroys everything in reverse creation
// order. Calling it again does nothing.
func (vr *VulkanRenderer) Shutdown() error {
	if vr.destroyed {
		return nil
	}
	vr.destroyed = true

	err := vr.WaitIdle()
	if err != nil {
		core.LogWarn("device wait idle before teardown: %s", err)
	}
	vr.release.Release()
	core.LogInfo("Vulkan renderer shut down.")
	return err
}
