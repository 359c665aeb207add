package vulkan

import (
	"fmt"

	vk "github.com/goki/vulkan"

	"github.com/aleokdev/vulkantest/engine/core"
)

var requiredDeviceExtensionNames = []string{
	vk.KhrSwapchainExtensionName,
}

// selectPhysicalDevice picks the first enumerated device that can
// drive the surface: Vulkan 1.1 or newer, at least one surface format
// and at least one present mode. A device whose surface queries fail
// is treated as unsuitable rather than aborting the search.
func (r *Renderer) selectPhysicalDevice() error {
	devices, err := r.driver.PhysicalDevices(r.context.Instance)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrNoSuitableDevice, err)
	}

	minVersion := vk.MakeVersion(1, 1, 0)
	for _, device := range devices {
		props := r.driver.PhysicalDeviceProperties(device)
		if props.APIVersion < minVersion {
			core.LogDebug("skipping %s: API version %s below 1.1", props.Name, versionString(props.APIVersion))
			continue
		}
		formats, err := r.driver.SurfaceFormats(device, r.context.Surface)
		if err != nil || len(formats) == 0 {
			core.LogDebug("skipping %s: no usable surface formats", props.Name)
			continue
		}
		modes, err := r.driver.SurfacePresentModes(device, r.context.Surface)
		if err != nil || len(modes) == 0 {
			core.LogDebug("skipping %s: no usable present modes", props.Name)
			continue
		}

		core.LogInfo("selected physical device %s (%s), API version %s, driver version %s",
			props.Name, deviceTypeString(props.DeviceType),
			versionString(props.APIVersion), versionString(props.DriverVersion))
		r.context.PhysicalDevice = device
		r.context.Properties = props
		return nil
	}
	return fmt.Errorf("%w: none of %d enumerated devices is usable", core.ErrNoSuitableDevice, len(devices))
}

// selectQueueFamily records the lowest-index family with graphics
// support. Present support on the same family is assumed, matching the
// single-queue design of the rest of the renderer.
func (r *Renderer) selectQueueFamily() error {
	families := r.driver.QueueFamilies(r.context.PhysicalDevice)
	for i, family := range families {
		if family.Flags&vk.QueueFlags(vk.QueueGraphicsBit) != 0 {
			r.context.GraphicsQueueIndex = uint32(i)
			core.LogDebug("using graphics queue family %d (%d queues)", i, family.Count)
			return nil
		}
	}
	return fmt.Errorf("%w: device %s exposes %d families", core.ErrNoGraphicsQueue, r.context.Properties.Name, len(families))
}

func deviceCreateInfo(graphicsFamily uint32) vk.DeviceCreateInfo {
	return vk.DeviceCreateInfo{
		SType:                vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount: 1,
		PQueueCreateInfos: []vk.DeviceQueueCreateInfo{{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: graphicsFamily,
			QueueCount:       1,
			PQueuePriorities: []float32{1.0},
		}},
		EnabledExtensionCount:   uint32(len(requiredDeviceExtensionNames)),
		PpEnabledExtensionNames: requiredDeviceExtensionNames,
	}
}

func versionString(version uint32) string {
	v := vk.Version(version)
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}
