package vulkan

import (
	"unsafe"

	vk "github.com/goki/vulkan"
)

// Driver is the seam between the initialization state machine and the
// Vulkan loader. Every call maps to exactly one driver entry point; all
// selection and configuration decisions stay on the caller's side, so
// the whole bring-up can be driven against an in-memory fake.
//
// Handle ownership follows the API: every Create has a matching Destroy,
// physical devices are enumerated rather than owned, command buffers are
// released with their pool.
type Driver interface {
	// Load opens the loader shared library at path and resolves the
	// global entry points. Unload releases the library again; it is the
	// last thing torn down.
	Load(path string) error
	Unload()

	InstanceLayers() ([]string, error)
	CreateInstance(info vk.InstanceCreateInfo) (vk.Instance, error)
	DestroyInstance(instance vk.Instance)

	CreateDebugMessenger(instance vk.Instance, info vk.DebugReportCallbackCreateInfo) (vk.DebugReportCallback, error)
	DestroyDebugMessenger(instance vk.Instance, messenger vk.DebugReportCallback)

	CreateSurface(instance vk.Instance, window Window) (vk.Surface, error)
	DestroySurface(instance vk.Instance, surface vk.Surface)

	PhysicalDevices(instance vk.Instance) ([]vk.PhysicalDevice, error)
	PhysicalDeviceProperties(device vk.PhysicalDevice) PhysicalDeviceProperties
	QueueFamilies(device vk.PhysicalDevice) []QueueFamily
	SurfaceFormats(device vk.PhysicalDevice, surface vk.Surface) ([]vk.SurfaceFormat, error)
	SurfacePresentModes(device vk.PhysicalDevice, surface vk.Surface) ([]vk.PresentMode, error)
	SurfaceCapabilities(device vk.PhysicalDevice, surface vk.Surface) (SurfaceCapabilities, error)

	CreateDevice(device vk.PhysicalDevice, info vk.DeviceCreateInfo) (vk.Device, error)
	DestroyDevice(device vk.Device)
	DeviceQueue(device vk.Device, family, index uint32) vk.Queue

	CreateSwapchain(device vk.Device, info vk.SwapchainCreateInfo) (vk.Swapchain, error)
	DestroySwapchain(device vk.Device, swapchain vk.Swapchain)

	CreateCommandPool(device vk.Device, info vk.CommandPoolCreateInfo) (vk.CommandPool, error)
	DestroyCommandPool(device vk.Device, pool vk.CommandPool)
	AllocateCommandBuffers(device vk.Device, info vk.CommandBufferAllocateInfo) ([]vk.CommandBuffer, error)

	CreateRenderPass(device vk.Device, info vk.RenderPassCreateInfo) (vk.RenderPass, error)
	DestroyRenderPass(device vk.Device, renderPass vk.RenderPass)
}

// Window is the contract the native window library must satisfy.
// *glfw.Window implements it as-is.
type Window interface {
	// GetRequiredInstanceExtensions reports the instance extensions the
	// platform needs to bridge surfaces to its windows.
	GetRequiredInstanceExtensions() []string
	// GetFramebufferSize is the current inner size in pixels.
	GetFramebufferSize() (width, height int)
	// CreateWindowSurface wraps the native display and window handles
	// into a surface bound to the instance, without the caller ever
	// branching on platform.
	CreateWindowSurface(instance interface{}, allocCallbacks unsafe.Pointer) (uintptr, error)
}

// PhysicalDeviceProperties carries the slice of the driver-reported
// properties the selection predicate and logs care about.
type PhysicalDeviceProperties struct {
	Name          string
	APIVersion    uint32
	DriverVersion uint32
	DeviceType    vk.PhysicalDeviceType
}

// QueueFamily describes one queue family of a physical device.
type QueueFamily struct {
	Flags vk.QueueFlags
	Count uint32
}

// SurfaceCapabilities is the queried surface capability set. A
// CurrentExtent width of MaxUint32 means the surface size is decided by
// the swapchain extent rather than the window system.
type SurfaceCapabilities struct {
	MinImageCount           uint32
	MaxImageCount           uint32
	CurrentExtent           vk.Extent2D
	MinImageExtent          vk.Extent2D
	MaxImageExtent          vk.Extent2D
	CurrentTransform        vk.SurfaceTransformFlagBits
	SupportedCompositeAlpha vk.CompositeAlphaFlags
}
