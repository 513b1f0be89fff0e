package vulkan

import (
	vk "github.com/goki/vulkan"
)

// createSyncObjects makes an image-available and a render-finished semaphore
// plus a fence for every frame in flight.
func createSyncObjects(context *VulkanContext, framesInFlight uint32) error {
	context.InFlightFenceCount = framesInFlight
	context.ImageAvailableSemaphores = make([]vk.Semaphore, 0, framesInFlight)
	context.QueueCompleteSemaphores = make([]vk.Semaphore, 0, framesInFlight)
	context.InFlightFences = make([]*VulkanFence, 0, framesInFlight)

	semaphoreCreateInfo := vk.SemaphoreCreateInfo{
		SType: vk.StructureTypeSemaphoreCreateInfo,
	}
	for i := uint32(0); i < framesInFlight; i++ {
		var imageAvailable, queueComplete vk.Semaphore
		if res := vk.CreateSemaphore(context.Device.LogicalDevice, &semaphoreCreateInfo, context.Allocator, &imageAvailable); res != vk.Success {
			return resultError("vkCreateSemaphore", res)
		}
		context.ImageAvailableSemaphores = append(context.ImageAvailableSemaphores, imageAvailable)

		if res := vk.CreateSemaphore(context.Device.LogicalDevice, &semaphoreCreateInfo, context.Allocator, &queueComplete); res != vk.Success {
			return resultError("vkCreateSemaphore", res)
		}
		context.QueueCompleteSemaphores = append(context.QueueCompleteSemaphores, queueComplete)

		// Create the fence in a signaled state, indicating that the first frame has already been "rendered".
		// This will prevent the application from waiting indefinitely for the first frame to render since it
		// cannot be rendered until a frame is "rendered" before it.
		f, err := NewFence(context, true)
		if err != nil {
			return err
		}
		context.InFlightFences = append(context.InFlightFences, f)
	}
	return nil
}

func destroySyncObjects(context *VulkanContext) {
	for _, s := range context.ImageAvailableSemaphores {
		vk.DestroySemaphore(context.Device.LogicalDevice, s, context.Allocator)
	}
	for _, s := range context.QueueCompleteSemaphores {
		vk.DestroySemaphore(context.Device.LogicalDevice, s, context.Allocator)
	}
	for _, f := range context.InFlightFences {
		f.FenceDestroy(context)
	}
	context.ImageAvailableSemaphores = nil
	context.QueueCompleteSemaphores = nil
	context.InFlightFences = nil
	context.InFlightFenceCount = 0
}
