package vulkan

import (
	"fmt"

	vk "github.com/goki/vulkan"
)

// gokiDriver is the Driver backed by a real Vulkan loader through the
// goki/vulkan bindings. Strings crossing into the C side are
// null-terminated here, at the boundary, so the rest of the package
// works with ordinary Go strings.
type gokiDriver struct {
	loader *loaderHandle
}

// NewDriver returns a Driver that talks to the shared library named by
// the loader path given to Load.
func NewDriver() Driver {
	return &gokiDriver{}
}

func (d *gokiDriver) Load(path string) error {
	handle, procAddr, err := openLoader(path)
	if err != nil {
		return err
	}
	vk.SetGetInstanceProcAddr(procAddr)
	if err := vk.Init(); err != nil {
		handle.close()
		return fmt.Errorf("resolving global entry points: %w", err)
	}
	d.loader = handle
	return nil
}

func (d *gokiDriver) Unload() {
	if d.loader != nil {
		d.loader.close()
		d.loader = nil
	}
}

func (d *gokiDriver) InstanceLayers() ([]string, error) {
	var count uint32
	if res := vk.EnumerateInstanceLayerProperties(&count, nil); res != vk.Success {
		return nil, fmt.Errorf("vkEnumerateInstanceLayerProperties failed: %s", resultString(res))
	}
	props := make([]vk.LayerProperties, count)
	if count > 0 {
		if res := vk.EnumerateInstanceLayerProperties(&count, props); res != vk.Success {
			return nil, fmt.Errorf("vkEnumerateInstanceLayerProperties failed: %s", resultString(res))
		}
	}
	names := make([]string, 0, count)
	for i := range props {
		props[i].Deref()
		names = append(names, vk.ToString(props[i].LayerName[:]))
	}
	return names, nil
}

func (d *gokiDriver) CreateInstance(info vk.InstanceCreateInfo) (vk.Instance, error) {
	if info.PApplicationInfo != nil {
		appInfo := *info.PApplicationInfo
		appInfo.PApplicationName = safeString(appInfo.PApplicationName)
		appInfo.PEngineName = safeString(appInfo.PEngineName)
		info.PApplicationInfo = &appInfo
	}
	info.PpEnabledExtensionNames = safeStrings(info.PpEnabledExtensionNames)
	info.PpEnabledLayerNames = safeStrings(info.PpEnabledLayerNames)

	var instance vk.Instance
	if res := vk.CreateInstance(&info, nil, &instance); res != vk.Success {
		return nil, fmt.Errorf("vkCreateInstance failed: %s", resultString(res))
	}
	if err := vk.InitInstance(instance); err != nil {
		vk.DestroyInstance(instance, nil)
		return nil, fmt.Errorf("resolving instance entry points: %w", err)
	}
	return instance, nil
}

func (d *gokiDriver) DestroyInstance(instance vk.Instance) {
	vk.DestroyInstance(instance, nil)
}

func (d *gokiDriver) CreateDebugMessenger(instance vk.Instance, info vk.DebugReportCallbackCreateInfo) (vk.DebugReportCallback, error) {
	var messenger vk.DebugReportCallback
	if res := vk.CreateDebugReportCallback(instance, &info, nil, &messenger); res != vk.Success {
		return vk.NullDebugReportCallback, fmt.Errorf("vkCreateDebugReportCallbackEXT failed: %s", resultString(res))
	}
	return messenger, nil
}

func (d *gokiDriver) DestroyDebugMessenger(instance vk.Instance, messenger vk.DebugReportCallback) {
	vk.DestroyDebugReportCallback(instance, messenger, nil)
}

func (d *gokiDriver) CreateSurface(instance vk.Instance, window Window) (vk.Surface, error) {
	surface, err := window.CreateWindowSurface(instance, nil)
	if err != nil {
		return vk.NullSurface, fmt.Errorf("creating window surface: %w", err)
	}
	return vk.SurfaceFromPointer(surface), nil
}

func (d *gokiDriver) DestroySurface(instance vk.Instance, surface vk.Surface) {
	vk.DestroySurface(instance, surface, nil)
}

func (d *gokiDriver) PhysicalDevices(instance vk.Instance) ([]vk.PhysicalDevice, error) {
	var count uint32
	if res := vk.EnumeratePhysicalDevices(instance, &count, nil); res != vk.Success {
		return nil, fmt.Errorf("vkEnumeratePhysicalDevices failed: %s", resultString(res))
	}
	devices := make([]vk.PhysicalDevice, count)
	if count > 0 {
		if res := vk.EnumeratePhysicalDevices(instance, &count, devices); res != vk.Success {
			return nil, fmt.Errorf("vkEnumeratePhysicalDevices failed: %s", resultString(res))
		}
	}
	return devices, nil
}

func (d *gokiDriver) PhysicalDeviceProperties(device vk.PhysicalDevice) PhysicalDeviceProperties {
	var props vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(device, &props)
	props.Deref()
	return PhysicalDeviceProperties{
		Name:          vk.ToString(props.DeviceName[:]),
		APIVersion:    props.ApiVersion,
		DriverVersion: props.DriverVersion,
		DeviceType:    props.DeviceType,
	}
}

func (d *gokiDriver) QueueFamilies(device vk.PhysicalDevice) []QueueFamily {
	var count uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(device, &count, nil)
	props := make([]vk.QueueFamilyProperties, count)
	vk.GetPhysicalDeviceQueueFamilyProperties(device, &count, props)

	families := make([]QueueFamily, count)
	for i := range props {
		props[i].Deref()
		families[i] = QueueFamily{
			Flags: props[i].QueueFlags,
			Count: props[i].QueueCount,
		}
	}
	return families
}

func (d *gokiDriver) SurfaceFormats(device vk.PhysicalDevice, surface vk.Surface) ([]vk.SurfaceFormat, error) {
	var count uint32
	if res := vk.GetPhysicalDeviceSurfaceFormats(device, surface, &count, nil); res != vk.Success {
		return nil, fmt.Errorf("vkGetPhysicalDeviceSurfaceFormatsKHR failed: %s", resultString(res))
	}
	formats := make([]vk.SurfaceFormat, count)
	if count > 0 {
		if res := vk.GetPhysicalDeviceSurfaceFormats(device, surface, &count, formats); res != vk.Success {
			return nil, fmt.Errorf("vkGetPhysicalDeviceSurfaceFormatsKHR failed: %s", resultString(res))
		}
	}
	for i := range formats {
		formats[i].Deref()
	}
	return formats, nil
}

func (d *gokiDriver) SurfacePresentModes(device vk.PhysicalDevice, surface vk.Surface) ([]vk.PresentMode, error) {
	var count uint32
	if res := vk.GetPhysicalDeviceSurfacePresentModes(device, surface, &count, nil); res != vk.Success {
		return nil, fmt.Errorf("vkGetPhysicalDeviceSurfacePresentModesKHR failed: %s", resultString(res))
	}
	modes := make([]vk.PresentMode, count)
	if count > 0 {
		if res := vk.GetPhysicalDeviceSurfacePresentModes(device, surface, &count, modes); res != vk.Success {
			return nil, fmt.Errorf("vkGetPhysicalDeviceSurfacePresentModesKHR failed: %s", resultString(res))
		}
	}
	return modes, nil
}

func (d *gokiDriver) SurfaceCapabilities(device vk.PhysicalDevice, surface vk.Surface) (SurfaceCapabilities, error) {
	var caps vk.SurfaceCapabilities
	if res := vk.GetPhysicalDeviceSurfaceCapabilities(device, surface, &caps); res != vk.Success {
		return SurfaceCapabilities{}, fmt.Errorf("vkGetPhysicalDeviceSurfaceCapabilitiesKHR failed: %s", resultString(res))
	}
	caps.Deref()
	caps.CurrentExtent.Deref()
	caps.MinImageExtent.Deref()
	caps.MaxImageExtent.Deref()
	return SurfaceCapabilities{
		MinImageCount:           caps.MinImageCount,
		MaxImageCount:           caps.MaxImageCount,
		CurrentExtent:           caps.CurrentExtent,
		MinImageExtent:          caps.MinImageExtent,
		MaxImageExtent:          caps.MaxImageExtent,
		CurrentTransform:        caps.CurrentTransform,
		SupportedCompositeAlpha: caps.SupportedCompositeAlpha,
	}, nil
}

func (d *gokiDriver) CreateDevice(device vk.PhysicalDevice, info vk.DeviceCreateInfo) (vk.Device, error) {
	info.PpEnabledExtensionNames = safeStrings(info.PpEnabledExtensionNames)

	var logical vk.Device
	if res := vk.CreateDevice(device, &info, nil, &logical); res != vk.Success {
		return nil, fmt.Errorf("vkCreateDevice failed: %s", resultString(res))
	}
	return logical, nil
}

func (d *gokiDriver) DestroyDevice(device vk.Device) {
	vk.DestroyDevice(device, nil)
}

func (d *gokiDriver) DeviceQueue(device vk.Device, family, index uint32) vk.Queue {
	var queue vk.Queue
	vk.GetDeviceQueue(device, family, index, &queue)
	return queue
}

func (d *gokiDriver) CreateSwapchain(device vk.Device, info vk.SwapchainCreateInfo) (vk.Swapchain, error) {
	var swapchain vk.Swapchain
	if res := vk.CreateSwapchain(device, &info, nil, &swapchain); res != vk.Success {
		return vk.NullSwapchain, fmt.Errorf("vkCreateSwapchainKHR failed: %s", resultString(res))
	}
	return swapchain, nil
}

func (d *gokiDriver) DestroySwapchain(device vk.Device, swapchain vk.Swapchain) {
	vk.DestroySwapchain(device, swapchain, nil)
}

func (d *gokiDriver) CreateCommandPool(device vk.Device, info vk.CommandPoolCreateInfo) (vk.CommandPool, error) {
	var pool vk.CommandPool
	if res := vk.CreateCommandPool(device, &info, nil, &pool); res != vk.Success {
		return vk.NullCommandPool, fmt.Errorf("vkCreateCommandPool failed: %s", resultString(res))
	}
	return pool, nil
}

func (d *gokiDriver) DestroyCommandPool(device vk.Device, pool vk.CommandPool) {
	vk.DestroyCommandPool(device, pool, nil)
}

func (d *gokiDriver) AllocateCommandBuffers(device vk.Device, info vk.CommandBufferAllocateInfo) ([]vk.CommandBuffer, error) {
	buffers := make([]vk.CommandBuffer, info.CommandBufferCount)
	if res := vk.AllocateCommandBuffers(device, &info, buffers); res != vk.Success {
		return nil, fmt.Errorf("vkAllocateCommandBuffers failed: %s", resultString(res))
	}
	return buffers, nil
}

func (d *gokiDriver) CreateRenderPass(device vk.Device, info vk.RenderPassCreateInfo) (vk.RenderPass, error) {
	var renderPass vk.RenderPass
	if res := vk.CreateRenderPass(device, &info, nil, &renderPass); res != vk.Success {
		return vk.NullRenderPass, fmt.Errorf("vkCreateRenderPass failed: %s", resultString(res))
	}
	return renderPass, nil
}

func (d *gokiDriver) DestroyRenderPass(device vk.Device, renderPass vk.RenderPass) {
	vk.DestroyRenderPass(device, renderPass, nil)
}
