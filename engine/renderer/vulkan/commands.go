package vulkan

import (
	"fmt"

	vk "github.com/goki/vulkan"
)

// drawCall is one indexed draw of a model inside a recorded command buffer.
type drawCall struct {
	Model      int
	IndexCount uint32
	Set        int
}

// planDraws lists the draws for one swapchain image in model order. Models
// without a descriptor set for the image cannot be drawn and are rejected.
func planDraws(indexCounts []uint32, setsPerModel []int, imageIndex int) ([]drawCall, error) {
	if len(indexCounts) != len(setsPerModel) {
		return nil, fmt.Errorf("%d index counts for %d models", len(indexCounts), len(setsPerModel))
	}
	draws := make([]drawCall, 0, len(indexCounts))
	for i, count := range indexCounts {
		if imageIndex >= setsPerModel[i] {
			return nil, fmt.Errorf("model %d has %d descriptor sets, image %d requested", i, setsPerModel[i], imageIndex)
		}
		if count == 0 {
			continue
		}
		draws = append(draws, drawCall{Model: i, IndexCount: count, Set: imageIndex})
	}
	return draws, nil
}

// RecordCommandBuffers allocates one primary command buffer per framebuffer
// and records the whole frame into it once.
func RecordCommandBuffers(context *VulkanContext) ([]*VulkanCommandBuffer, error) {
	framebuffers := context.Swapchain.Framebuffers
	buffers := make([]*VulkanCommandBuffer, 0, len(framebuffers))
	release := func() {
		for _, cb := range buffers {
			cb.Free(context, context.Device.GraphicsCommandPool)
		}
	}

	indexCounts := make([]uint32, len(context.Models))
	setsPerModel := make([]int, len(context.Models))
	for i, m := range context.Models {
		indexCounts[i] = m.IndexCount
		setsPerModel[i] = len(m.DescriptorSets)
	}

	for i, fb := range framebuffers {
		draws, err := planDraws(indexCounts, setsPerModel, i)
		if err != nil {
			release()
			return nil, err
		}

		cb, err := NewVulkanCommandBuffer(context, context.Device.GraphicsCommandPool, true)
		if err != nil {
			release()
			return nil, err
		}
		buffers = append(buffers, cb)

		if err := cb.Begin(false, false, true); err != nil {
			release()
			return nil, err
		}
		context.MainRenderpass.RenderpassBegin(cb, fb.Handle)
		context.Pipeline.Bind(cb, vk.PipelineBindPointGraphics)

		for _, d := range draws {
			model := context.Models[d.Model]
			vk.CmdBindVertexBuffers(cb.Handle, 0, 1, []vk.Buffer{model.VertexBuffer.Handle}, []vk.DeviceSize{0})
			vk.CmdBindIndexBuffer(cb.Handle, model.IndexBuffer.Handle, 0, vk.IndexTypeUint32)
			vk.CmdBindDescriptorSets(cb.Handle, vk.PipelineBindPointGraphics, context.Pipeline.PipelineLayout,
				0, 1, []vk.DescriptorSet{model.DescriptorSets[d.Set]}, 0, nil)
			vk.CmdDrawIndexed(cb.Handle, d.IndexCount, 1, 0, 0, 0)
		}

		context.MainRenderpass.RenderpassEnd(cb)
		if err := cb.End(); err != nil {
			release()
			return nil, err
		}
	}
	return buffers, nil
}

func FreeCommandBuffers(context *VulkanContext) {
	for _, cb := range context.GraphicsCommandBuffers {
		cb.Free(context, context.Device.GraphicsCommandPool)
	}
	context.GraphicsCommandBuffers = nil
}
