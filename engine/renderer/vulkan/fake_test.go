package vulkan

import (
	"errors"
	"unsafe"

	vk "github.com/goki/vulkan"
)

// fakeDevice describes one physical device the fake driver advertises.
type fakeDevice struct {
	props      PhysicalDeviceProperties
	families   []QueueFamily
	formats    []vk.SurfaceFormat
	modes      []vk.PresentMode
	caps       SurfaceCapabilities
	formatsErr error
	modesErr   error
}

// fakeDriver is an in-memory Driver. It records every call in order,
// captures the create infos it is handed, and can be told to fail any
// single stage.
type fakeDriver struct {
	layers  []string
	devices []fakeDevice
	handles []*byte

	loadErr      error
	layersErr    error
	instanceErr  error
	messengerErr error
	surfaceErr   error
	enumerateErr error
	deviceErr    error
	swapchainErr error
	poolErr      error
	allocErr     error
	passErr      error

	events []string

	instanceInfo  vk.InstanceCreateInfo
	messengerInfo vk.DebugReportCallbackCreateInfo
	deviceInfo    vk.DeviceCreateInfo
	swapchainInfo vk.SwapchainCreateInfo
	poolInfo      vk.CommandPoolCreateInfo
	allocInfo     vk.CommandBufferAllocateInfo
	passInfo      vk.RenderPassCreateInfo

	selected int
}

var errFakeQuery = errors.New("query refused")

// defaultFakeDevice is a device every happy-path test can bring up:
// Vulkan 1.1, one graphics family, one sRGB format, a fixed extent.
func defaultFakeDevice() fakeDevice {
	return fakeDevice{
		props: PhysicalDeviceProperties{
			Name:       "fake gpu",
			APIVersion: vk.MakeVersion(1, 1, 0),
			DeviceType: vk.PhysicalDeviceTypeDiscreteGpu,
		},
		families: []QueueFamily{
			{Flags: vk.QueueFlags(vk.QueueGraphicsBit | vk.QueueComputeBit), Count: 1},
		},
		formats: []vk.SurfaceFormat{
			{Format: vk.FormatB8g8r8a8Srgb, ColorSpace: vk.ColorSpaceSrgbNonlinear},
		},
		modes: []vk.PresentMode{vk.PresentModeFifo},
		caps: SurfaceCapabilities{
			MinImageCount:           2,
			MaxImageCount:           8,
			CurrentExtent:           vk.Extent2D{Width: 1080, Height: 720},
			MinImageExtent:          vk.Extent2D{Width: 1, Height: 1},
			MaxImageExtent:          vk.Extent2D{Width: 4096, Height: 4096},
			CurrentTransform:        vk.SurfaceTransformIdentityBit,
			SupportedCompositeAlpha: vk.CompositeAlphaFlags(vk.CompositeAlphaOpaqueBit),
		},
	}
}

func newFakeDriver(devices ...fakeDevice) *fakeDriver {
	f := &fakeDriver{
		layers:   []string{"VK_LAYER_KHRONOS_validation"},
		devices:  devices,
		selected: -1,
	}
	for range devices {
		f.handles = append(f.handles, new(byte))
	}
	return f
}

func (f *fakeDriver) record(event string) {
	f.events = append(f.events, event)
}

func (f *fakeDriver) handle(i int) vk.PhysicalDevice {
	return vk.PhysicalDevice(unsafe.Pointer(f.handles[i]))
}

func (f *fakeDriver) index(device vk.PhysicalDevice) int {
	for i := range f.handles {
		if f.handle(i) == device {
			return i
		}
	}
	return -1
}

func (f *fakeDriver) Load(path string) error {
	if f.loadErr != nil {
		return f.loadErr
	}
	f.record("Load")
	return nil
}

func (f *fakeDriver) Unload() {
	f.record("Unload")
}

func (f *fakeDriver) InstanceLayers() ([]string, error) {
	if f.layersErr != nil {
		return nil, f.layersErr
	}
	return f.layers, nil
}

func (f *fakeDriver) CreateInstance(info vk.InstanceCreateInfo) (vk.Instance, error) {
	if f.instanceErr != nil {
		return nil, f.instanceErr
	}
	f.instanceInfo = info
	f.record("CreateInstance")
	return nil, nil
}

func (f *fakeDriver) DestroyInstance(instance vk.Instance) {
	f.record("DestroyInstance")
}

func (f *fakeDriver) CreateDebugMessenger(instance vk.Instance, info vk.DebugReportCallbackCreateInfo) (vk.DebugReportCallback, error) {
	if f.messengerErr != nil {
		return vk.NullDebugReportCallback, f.messengerErr
	}
	f.messengerInfo = info
	f.record("CreateDebugMessenger")
	return vk.NullDebugReportCallback, nil
}

func (f *fakeDriver) DestroyDebugMessenger(instance vk.Instance, messenger vk.DebugReportCallback) {
	f.record("DestroyDebugMessenger")
}

func (f *fakeDriver) CreateSurface(instance vk.Instance, window Window) (vk.Surface, error) {
	if f.surfaceErr != nil {
		return vk.NullSurface, f.surfaceErr
	}
	f.record("CreateSurface")
	return vk.NullSurface, nil
}

func (f *fakeDriver) DestroySurface(instance vk.Instance, surface vk.Surface) {
	f.record("DestroySurface")
}

func (f *fakeDriver) PhysicalDevices(instance vk.Instance) ([]vk.PhysicalDevice, error) {
	if f.enumerateErr != nil {
		return nil, f.enumerateErr
	}
	devices := make([]vk.PhysicalDevice, len(f.devices))
	for i := range f.devices {
		devices[i] = f.handle(i)
	}
	return devices, nil
}

func (f *fakeDriver) PhysicalDeviceProperties(device vk.PhysicalDevice) PhysicalDeviceProperties {
	return f.devices[f.index(device)].props
}

func (f *fakeDriver) QueueFamilies(device vk.PhysicalDevice) []QueueFamily {
	return f.devices[f.index(device)].families
}

func (f *fakeDriver) SurfaceFormats(device vk.PhysicalDevice, surface vk.Surface) ([]vk.SurfaceFormat, error) {
	d := f.devices[f.index(device)]
	if d.formatsErr != nil {
		return nil, d.formatsErr
	}
	return d.formats, nil
}

func (f *fakeDriver) SurfacePresentModes(device vk.PhysicalDevice, surface vk.Surface) ([]vk.PresentMode, error) {
	d := f.devices[f.index(device)]
	if d.modesErr != nil {
		return nil, d.modesErr
	}
	return d.modes, nil
}

func (f *fakeDriver) SurfaceCapabilities(device vk.PhysicalDevice, surface vk.Surface) (SurfaceCapabilities, error) {
	return f.devices[f.index(device)].caps, nil
}

func (f *fakeDriver) CreateDevice(device vk.PhysicalDevice, info vk.DeviceCreateInfo) (vk.Device, error) {
	if f.deviceErr != nil {
		return nil, f.deviceErr
	}
	f.deviceInfo = info
	f.selected = f.index(device)
	f.record("CreateDevice")
	return nil, nil
}

func (f *fakeDriver) DestroyDevice(device vk.Device) {
	f.record("DestroyDevice")
}

func (f *fakeDriver) DeviceQueue(device vk.Device, family, index uint32) vk.Queue {
	f.record("DeviceQueue")
	return nil
}

func (f *fakeDriver) CreateSwapchain(device vk.Device, info vk.SwapchainCreateInfo) (vk.Swapchain, error) {
	if f.swapchainErr != nil {
		return vk.NullSwapchain, f.swapchainErr
	}
	f.swapchainInfo = info
	f.record("CreateSwapchain")
	return vk.NullSwapchain, nil
}

func (f *fakeDriver) DestroySwapchain(device vk.Device, swapchain vk.Swapchain) {
	f.record("DestroySwapchain")
}

func (f *fakeDriver) CreateCommandPool(device vk.Device, info vk.CommandPoolCreateInfo) (vk.CommandPool, error) {
	if f.poolErr != nil {
		return vk.NullCommandPool, f.poolErr
	}
	f.poolInfo = info
	f.record("CreateCommandPool")
	return vk.NullCommandPool, nil
}

func (f *fakeDriver) DestroyCommandPool(device vk.Device, pool vk.CommandPool) {
	f.record("DestroyCommandPool")
}

func (f *fakeDriver) AllocateCommandBuffers(device vk.Device, info vk.CommandBufferAllocateInfo) ([]vk.CommandBuffer, error) {
	if f.allocErr != nil {
		return nil, f.allocErr
	}
	f.allocInfo = info
	f.record("AllocateCommandBuffers")
	return make([]vk.CommandBuffer, info.CommandBufferCount), nil
}

func (f *fakeDriver) CreateRenderPass(device vk.Device, info vk.RenderPassCreateInfo) (vk.RenderPass, error) {
	if f.passErr != nil {
		return vk.NullRenderPass, f.passErr
	}
	f.passInfo = info
	f.record("CreateRenderPass")
	return vk.NullRenderPass, nil
}

func (f *fakeDriver) DestroyRenderPass(device vk.Device, renderPass vk.RenderPass) {
	f.record("DestroyRenderPass")
}

// fakeWindow stands in for the GLFW window.
type fakeWindow struct {
	extensions []string
	width      int
	height     int
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{
		extensions: []string{"VK_KHR_surface", "VK_KHR_xcb_surface"},
		width:      1080,
		height:     720,
	}
}

func (w *fakeWindow) GetRequiredInstanceExtensions() []string {
	return w.extensions
}

func (w *fakeWindow) GetFramebufferSize() (int, int) {
	return w.width, w.height
}

func (w *fakeWindow) CreateWindowSurface(instance interface{}, allocCallbacks unsafe.Pointer) (uintptr, error) {
	return 0, nil
}
