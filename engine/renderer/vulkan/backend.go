package vulkan

import (
	"fmt"

	vk "github.com/goki/vulkan"
	"github.com/google/uuid"

	"github.com/aleokdev/vulkantest/engine/core"
)

// Options configures renderer bring-up.
type Options struct {
	// ApplicationName is reported to the driver in the application info.
	ApplicationName string
	// LoaderPath is the Vulkan loader shared library to open.
	LoaderPath string
	// Validation enables the Khronos validation layer. The debug
	// messenger is installed either way.
	Validation bool
}

// Renderer brings a Vulkan context up to the point where recording
// could begin, and tears it down again. Every created object is pushed
// onto a cleanup stack, so a failure at any stage destroys exactly the
// objects that exist, newest first.
type Renderer struct {
	driver  Driver
	window  Window
	context Context
	cleanup cleanupStack
	session uuid.UUID
}

func New(driver Driver, window Window) *Renderer {
	return &Renderer{
		driver:  driver,
		window:  window,
		session: uuid.New(),
	}
}

// Context exposes the created objects, for inspection after Initialize.
func (r *Renderer) Context() *Context {
	return &r.context
}

// Initialize runs every bring-up stage in order. On failure the stages
// that did complete are unwound before the error is returned, so the
// caller never sees a half-built context.
func (r *Renderer) Initialize(opts Options) error {
	core.LogInfo("initializing renderer, session %s", r.session)
	if err := r.initialize(opts); err != nil {
		r.cleanup.unwind()
		return err
	}
	core.LogInfo("renderer initialized")
	return nil
}

func (r *Renderer) initialize(opts Options) error {
	if err := r.driver.Load(opts.LoaderPath); err != nil {
		return fmt.Errorf("%w: %v", core.ErrLoaderFailure, err)
	}
	r.cleanup.push("loader", func() {
		r.driver.Unload()
	})

	if err := r.createInstance(opts); err != nil {
		return err
	}
	if err := r.createDebugMessenger(); err != nil {
		return err
	}
	if err := r.createSurface(); err != nil {
		return err
	}
	if err := r.selectPhysicalDevice(); err != nil {
		return err
	}
	if err := r.selectQueueFamily(); err != nil {
		return err
	}
	if err := r.createDevice(); err != nil {
		return err
	}
	if err := r.negotiateSurfaceFormat(); err != nil {
		return err
	}
	if err := r.createSwapchain(); err != nil {
		return err
	}
	if err := r.createCommandBuffer(); err != nil {
		return err
	}
	if err := r.createRenderPass(); err != nil {
		return err
	}
	return nil
}

// Shutdown destroys everything Initialize created, in reverse creation
// order. Safe to call on a renderer that never initialized or already
// shut down.
func (r *Renderer) Shutdown() {
	core.LogInfo("shutting down renderer, session %s", r.session)
	r.cleanup.unwind()
}

func (r *Renderer) createInstance(opts Options) error {
	var layers []string
	if opts.Validation {
		available, err := r.driver.InstanceLayers()
		if err != nil {
			return fmt.Errorf("%w: %v", core.ErrInstanceFailure, err)
		}
		if !layerAvailable(available, validationLayerName) {
			return fmt.Errorf("%w: layer %s is not available", core.ErrInstanceFailure, validationLayerName)
		}
		layers = []string{validationLayerName}
	}

	extensions := requiredInstanceExtensions(r.window.GetRequiredInstanceExtensions())
	core.LogDebug("requesting instance extensions %v, layers %v", extensions, layers)

	instance, err := r.driver.CreateInstance(instanceCreateInfo(opts.ApplicationName, extensions, layers))
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrInstanceFailure, err)
	}
	r.context.Instance = instance
	r.cleanup.push("instance", func() {
		r.driver.DestroyInstance(r.context.Instance)
		r.context.Instance = nil
	})
	return nil
}

func (r *Renderer) createDebugMessenger() error {
	messenger, err := r.driver.CreateDebugMessenger(r.context.Instance, debugMessengerCreateInfo())
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrInstanceFailure, err)
	}
	r.context.DebugMessenger = messenger
	r.cleanup.push("debug messenger", func() {
		r.driver.DestroyDebugMessenger(r.context.Instance, r.context.DebugMessenger)
		r.context.DebugMessenger = vk.NullDebugReportCallback
	})
	return nil
}

func (r *Renderer) createSurface() error {
	surface, err := r.driver.CreateSurface(r.context.Instance, r.window)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrSurfaceFailure, err)
	}
	r.context.Surface = surface
	r.cleanup.push("surface", func() {
		r.driver.DestroySurface(r.context.Instance, r.context.Surface)
		r.context.Surface = vk.NullSurface
	})
	return nil
}

func (r *Renderer) createDevice() error {
	device, err := r.driver.CreateDevice(r.context.PhysicalDevice, deviceCreateInfo(r.context.GraphicsQueueIndex))
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrDeviceFailure, err)
	}
	r.context.Device = device
	r.cleanup.push("device", func() {
		r.driver.DestroyDevice(r.context.Device)
		r.context.Device = nil
		r.context.GraphicsQueue = nil
	})

	r.context.GraphicsQueue = r.driver.DeviceQueue(device, r.context.GraphicsQueueIndex, 0)
	return nil
}

func (r *Renderer) negotiateSurfaceFormat() error {
	formats, err := r.driver.SurfaceFormats(r.context.PhysicalDevice, r.context.Surface)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrNoCompatibleSurfaceFormat, err)
	}
	format, err := chooseSurfaceFormat(formats)
	if err != nil {
		return err
	}
	core.LogInfo("using surface format %d with color space %d", format.Format, format.ColorSpace)
	r.context.SurfaceFormat = format
	return nil
}

func (r *Renderer) createSwapchain() error {
	caps, err := r.driver.SurfaceCapabilities(r.context.PhysicalDevice, r.context.Surface)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrSwapchainFailure, err)
	}
	extent := chooseExtent(caps, r.window)
	info := swapchainCreateInfo(r.context.Surface, caps, r.context.SurfaceFormat, extent)
	core.LogDebug("surface reports transform %d, requesting identity with composite alpha %d",
		caps.CurrentTransform, info.CompositeAlpha)

	swapchain, err := r.driver.CreateSwapchain(r.context.Device, info)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrSwapchainFailure, err)
	}
	core.LogInfo("created swapchain, %d images at %dx%d", info.MinImageCount, extent.Width, extent.Height)
	r.context.Swapchain = swapchain
	r.context.SwapchainExtent = extent
	r.context.SwapchainImageCount = info.MinImageCount
	r.cleanup.push("swapchain", func() {
		r.driver.DestroySwapchain(r.context.Device, r.context.Swapchain)
		r.context.Swapchain = vk.NullSwapchain
	})
	return nil
}

func (r *Renderer) createCommandBuffer() error {
	pool, err := r.driver.CreateCommandPool(r.context.Device, commandPoolCreateInfo(r.context.GraphicsQueueIndex))
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrCommandPoolFailure, err)
	}
	r.context.CommandPool = pool
	r.cleanup.push("command pool", func() {
		// The command buffer is freed along with its pool.
		r.driver.DestroyCommandPool(r.context.Device, r.context.CommandPool)
		r.context.CommandPool = vk.NullCommandPool
		r.context.CommandBuffer = nil
	})

	buffers, err := r.driver.AllocateCommandBuffers(r.context.Device, commandBufferAllocateInfo(pool))
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrCommandBufferFailure, err)
	}
	r.context.CommandBuffer = buffers[0]
	return nil
}

func (r *Renderer) createRenderPass() error {
	renderPass, err := r.driver.CreateRenderPass(r.context.Device, renderPassCreateInfo(r.context.SurfaceFormat.Format))
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrRenderPassFailure, err)
	}
	r.context.RenderPass = renderPass
	r.cleanup.push("render pass", func() {
		r.driver.DestroyRenderPass(r.context.Device, r.context.RenderPass)
		r.context.RenderPass = vk.NullRenderPass
	})
	return nil
}
