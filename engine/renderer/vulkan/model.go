package vulkan

import (
	"fmt"

	vk "github.com/goki/vulkan"
	"github.com/google/uuid"

	"github.com/spaghettifunk/pong/engine/core"
	"github.com/spaghettifunk/pong/engine/renderer/metadata"
)

// VulkanModelResource is everything the GPU needs to draw one mesh: its
// geometry and one uniform buffer plus descriptor set per swapchain image.
type VulkanModelResource struct {
	ID         uuid.UUID
	Name       string
	IndexCount uint32

	VertexBuffer *VulkanBuffer
	IndexBuffer  *VulkanBuffer

	UniformBuffers []*VulkanBuffer
	DescriptorPool vk.DescriptorPool
	DescriptorSets []vk.DescriptorSet
}

// ModelResourceCreate uploads the mesh and allocates per-image uniform state.
func ModelResourceCreate(context *VulkanContext, mesh metadata.Mesh, imageCount uint32) (*VulkanModelResource, error) {
	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	model := &VulkanModelResource{
		ID:             uuid.New(),
		Name:           mesh.Name,
		IndexCount:     mesh.IndexCount(),
		DescriptorPool: vk.DescriptorPool(vk.NullHandle),
	}

	vb, err := UploadDeviceLocal(context, vk.BufferUsageFlags(vk.BufferUsageVertexBufferBit), metadata.VertexBytes(mesh.Vertices))
	if err != nil {
		return nil, fmt.Errorf("vertex buffer for %q: %w", mesh.Name, err)
	}
	model.VertexBuffer = vb

	ib, err := UploadDeviceLocal(context, vk.BufferUsageFlags(vk.BufferUsageIndexBufferBit), metadata.IndexBytes(mesh.Indices))
	if err != nil {
		model.Destroy(context)
		return nil, fmt.Errorf("index buffer for %q: %w", mesh.Name, err)
	}
	model.IndexBuffer = ib

	if err := model.createUniforms(context, imageCount); err != nil {
		model.Destroy(context)
		return nil, err
	}

	core.LogDebug("Model %q (%s) uploaded: %d vertices, %d indices.", model.Name, model.ID, len(mesh.Vertices), model.IndexCount)
	return model, nil
}

func (m *VulkanModelResource) createUniforms(context *VulkanContext, imageCount uint32) error {
	m.UniformBuffers = make([]*VulkanBuffer, 0, imageCount)
	for i := uint32(0); i < imageCount; i++ {
		ub, err := BufferCreate(context, metadata.UniformTransformSize,
			vk.BufferUsageFlags(vk.BufferUsageUniformBufferBit),
			vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit|vk.MemoryPropertyHostCoherentBit))
		if err != nil {
			return fmt.Errorf("uniform buffer %d for %q: %w", i, m.Name, err)
		}
		m.UniformBuffers = append(m.UniformBuffers, ub)
	}

	pool, err := DescriptorPoolCreate(context, imageCount)
	if err != nil {
		return err
	}
	m.DescriptorPool = pool

	sets, err := DescriptorSetsAllocate(context, pool, context.DescriptorSetLayout, imageCount)
	if err != nil {
		return err
	}
	for i, set := range sets {
		DescriptorSetWriteUniform(context, set, m.UniformBuffers[i].Handle, metadata.UniformTransformSize)
	}
	m.DescriptorSets = sets
	return nil
}

func (m *VulkanModelResource) destroyUniforms(context *VulkanContext) {
	DescriptorPoolDestroy(context, m.DescriptorPool)
	m.DescriptorPool = vk.DescriptorPool(vk.NullHandle)
	m.DescriptorSets = nil
	for _, ub := range m.UniformBuffers {
		ub.Destroy(context)
	}
	m.UniformBuffers = nil
}

// Resize rebuilds the uniform buffers and descriptor sets for a new image
// count. It is a no-op when the count is unchanged.
func (m *VulkanModelResource) Resize(context *VulkanContext, imageCount uint32) error {
	if uint32(len(m.UniformBuffers)) == imageCount && len(m.DescriptorSets) == int(imageCount) {
		return nil
	}
	m.destroyUniforms(context)
	return m.createUniforms(context, imageCount)
}

// Update writes the transform into the uniform buffer of imageIndex.
func (m *VulkanModelResource) Update(context *VulkanContext, imageIndex uint32, ubo *metadata.UniformTransform) error {
	if int(imageIndex) >= len(m.UniformBuffers) {
		return fmt.Errorf("image index %d out of range for %d uniform buffers", imageIndex, len(m.UniformBuffers))
	}
	return m.UniformBuffers[imageIndex].LoadData(context, 0, ubo.Bytes())
}

// Destroy releases the descriptor pool, the uniform buffers, then the index
// and vertex buffers.
func (m *VulkanModelResource) Destroy(context *VulkanContext) {
	m.destroyUniforms(context)
	if m.IndexBuffer != nil {
		m.IndexBuffer.Destroy(context)
		m.IndexBuffer = nil
	}
	if m.VertexBuffer != nil {
		m.VertexBuffer.Destroy(context)
		m.VertexBuffer = nil
	}
}
