package vulkan

import (
	"fmt"

	vk "github.com/goki/vulkan"
)

// DescriptorSetLayoutCreate describes the single uniform buffer the vertex
// stage reads at binding 0.
func DescriptorSetLayoutCreate(context *VulkanContext) (vk.DescriptorSetLayout, error) {
	uboLayoutBinding := vk.DescriptorSetLayoutBinding{
		Binding:            0,
		DescriptorType:     vk.DescriptorTypeUniformBuffer,
		DescriptorCount:    1,
		StageFlags:         vk.ShaderStageFlags(vk.ShaderStageVertexBit),
		PImmutableSamplers: nil,
	}
	layoutInfo := vk.DescriptorSetLayoutCreateInfo{
		SType:        vk.StructureTypeDescriptorSetLayoutCreateInfo,
		BindingCount: 1,
		PBindings:    []vk.DescriptorSetLayoutBinding{uboLayoutBinding},
	}

	var layout vk.DescriptorSetLayout
	if res := vk.CreateDescriptorSetLayout(context.Device.LogicalDevice, &layoutInfo, context.Allocator, &layout); res != vk.Success {
		return vk.DescriptorSetLayout(vk.NullHandle), resultError("vkCreateDescriptorSetLayout", res)
	}
	return layout, nil
}

func DescriptorSetLayoutDestroy(context *VulkanContext, layout vk.DescriptorSetLayout) {
	if layout != vk.DescriptorSetLayout(vk.NullHandle) {
		vk.DestroyDescriptorSetLayout(context.Device.LogicalDevice, layout, context.Allocator)
	}
}

// DescriptorPoolCreate sizes a pool for exactly maxSets uniform buffer sets.
func DescriptorPoolCreate(context *VulkanContext, maxSets uint32) (vk.DescriptorPool, error) {
	poolInfo := vk.DescriptorPoolCreateInfo{
		SType:         vk.StructureTypeDescriptorPoolCreateInfo,
		MaxSets:       maxSets,
		PoolSizeCount: 1,
		PPoolSizes: []vk.DescriptorPoolSize{{
			Type:            vk.DescriptorTypeUniformBuffer,
			DescriptorCount: maxSets,
		}},
	}

	var pool vk.DescriptorPool
	if res := vk.CreateDescriptorPool(context.Device.LogicalDevice, &poolInfo, context.Allocator, &pool); res != vk.Success {
		return vk.DescriptorPool(vk.NullHandle), resultError("vkCreateDescriptorPool", res)
	}
	return pool, nil
}

// DescriptorSetsAllocate allocates count sets of the same layout from pool.
func DescriptorSetsAllocate(context *VulkanContext, pool vk.DescriptorPool, layout vk.DescriptorSetLayout, count uint32) ([]vk.DescriptorSet, error) {
	if count == 0 {
		return nil, fmt.Errorf("cannot allocate zero descriptor sets")
	}
	layouts := make([]vk.DescriptorSetLayout, count)
	for i := range layouts {
		layouts[i] = layout
	}
	allocInfo := vk.DescriptorSetAllocateInfo{
		SType:              vk.StructureTypeDescriptorSetAllocateInfo,
		DescriptorPool:     pool,
		DescriptorSetCount: count,
		PSetLayouts:        layouts,
	}
	sets := make([]vk.DescriptorSet, count)
	if res := vk.AllocateDescriptorSets(context.Device.LogicalDevice, &allocInfo, &sets[0]); res != vk.Success {
		return nil, resultError("vkAllocateDescriptorSets", res)
	}
	return sets, nil
}

// DescriptorSetWriteUniform points binding 0 of set at the whole of buffer.
func DescriptorSetWriteUniform(context *VulkanContext, set vk.DescriptorSet, buffer vk.Buffer, size uint64) {
	bufferInfo := vk.DescriptorBufferInfo{
		Buffer: buffer,
		Offset: 0,
		Range:  vk.DeviceSize(size),
	}
	write := vk.WriteDescriptorSet{
		SType:           vk.StructureTypeWriteDescriptorSet,
		DstSet:          set,
		DstBinding:      0,
		DstArrayElement: 0,
		DescriptorCount: 1,
		DescriptorType:  vk.DescriptorTypeUniformBuffer,
		PBufferInfo:     []vk.DescriptorBufferInfo{bufferInfo},
	}
	vk.UpdateDescriptorSets(context.Device.LogicalDevice, 1, []vk.WriteDescriptorSet{write}, 0, nil)
}

func DescriptorPoolDestroy(context *VulkanContext, pool vk.DescriptorPool) {
	if pool != vk.DescriptorPool(vk.NullHandle) {
		// Sets allocated from the pool are freed with it.
		vk.DestroyDescriptorPool(context.Device.LogicalDevice, pool, context.Allocator)
	}
}
