package vulkan

import (
	vk "github.com/goki/vulkan"
)

// Context holds every Vulkan object the renderer has created, in the
// order the stages produce them. Fields are zero until the owning
// stage succeeds and are zeroed again when the object is destroyed.
type Context struct {
	Instance       vk.Instance
	DebugMessenger vk.DebugReportCallback
	Surface        vk.Surface

	PhysicalDevice vk.PhysicalDevice
	Properties     PhysicalDeviceProperties

	GraphicsQueueIndex uint32
	Device             vk.Device
	GraphicsQueue      vk.Queue

	SurfaceFormat       vk.SurfaceFormat
	Swapchain           vk.Swapchain
	SwapchainExtent     vk.Extent2D
	SwapchainImageCount uint32

	CommandPool   vk.CommandPool
	CommandBuffer vk.CommandBuffer

	RenderPass vk.RenderPass
}
