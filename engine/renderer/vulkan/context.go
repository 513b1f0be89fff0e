package vulkan

import (
	vk "github.com/goki/vulkan"
)

// VulkanContext owns every Vulkan object of the renderer. Nothing outside the
// backend holds device handles.
type VulkanContext struct {
	// The framebuffer's current width.
	FramebufferWidth uint32
	// The framebuffer's current height.
	FramebufferHeight uint32

	Instance  vk.Instance
	Allocator *vk.AllocationCallbacks
	Surface   vk.Surface

	debugMessenger vk.DebugReportCallback

	Device *VulkanDevice

	Swapchain           *VulkanSwapchain
	MainRenderpass      *VulkanRenderpass
	Pipeline            *VulkanPipeline
	DescriptorSetLayout vk.DescriptorSetLayout

	// One per swapchain image, recorded once and replayed every frame.
	GraphicsCommandBuffers []*VulkanCommandBuffer

	// Per frame in flight.
	ImageAvailableSemaphores []vk.Semaphore
	QueueCompleteSemaphores  []vk.Semaphore
	InFlightFences           []*VulkanFence
	InFlightFenceCount       uint32

	Models []*VulkanModelResource

	VertexShader   []uint32
	FragmentShader []uint32
}

// FindMemoryIndex returns the first memory type allowed by typeFilter that has
// all of propertyFlags, or -1.
func (vc *VulkanContext) FindMemoryIndex(typeFilter, propertyFlags uint32) int32 {
	var memoryProperties vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(vc.Device.PhysicalDevice, &memoryProperties)
	memoryProperties.Deref()

	flags := make([]uint32, memoryProperties.MemoryTypeCount)
	for i := uint32(0); i < memoryProperties.MemoryTypeCount; i++ {
		memoryProperties.MemoryTypes[i].Deref()
		flags[i] = uint32(memoryProperties.MemoryTypes[i].PropertyFlags)
	}
	return findMemoryType(flags, typeFilter, propertyFlags)
}

func findMemoryType(typeFlags []uint32, typeFilter, propertyFlags uint32) int32 {
	for i, f := range typeFlags {
		// Check each memory type to see if its bit is set to 1.
		if typeFilter&(1<<uint(i)) != 0 && f&propertyFlags == propertyFlags {
			return int32(i)
		}
	}
	return -1
}
