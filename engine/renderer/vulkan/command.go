package vulkan

import (
	vk "github.com/goki/vulkan"
)

func commandPoolCreateInfo(graphicsFamily uint32) vk.CommandPoolCreateInfo {
	return vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		Flags:            vk.CommandPoolCreateFlags(vk.CommandPoolCreateResetCommandBufferBit),
		QueueFamilyIndex: graphicsFamily,
	}
}

func commandBufferAllocateInfo(pool vk.CommandPool) vk.CommandBufferAllocateInfo {
	return vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        pool,
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	}
}
