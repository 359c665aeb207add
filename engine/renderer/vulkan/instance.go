package vulkan

import (
	vk "github.com/goki/vulkan"
)

const (
	validationLayerName      = "VK_LAYER_KHRONOS_validation"
	surfaceExtensionName     = "VK_KHR_surface"
	debugReportExtensionName = "VK_EXT_debug_report"
)

// requiredInstanceExtensions is the window system's extension list
// plus surface and debug reporting, deduplicated keeping the first
// occurrence so the result is stable across runs.
func requiredInstanceExtensions(windowRequired []string) []string {
	wanted := make([]string, 0, len(windowRequired)+2)
	wanted = append(wanted, windowRequired...)
	wanted = append(wanted, surfaceExtensionName, debugReportExtensionName)

	seen := make(map[string]struct{}, len(wanted))
	extensions := make([]string, 0, len(wanted))
	for _, name := range wanted {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		extensions = append(extensions, name)
	}
	return extensions
}

// layerAvailable reports whether the loader advertises the named layer.
func layerAvailable(available []string, name string) bool {
	for _, layer := range available {
		if layer == name {
			return true
		}
	}
	return false
}

func instanceCreateInfo(appName string, extensions, layers []string) vk.InstanceCreateInfo {
	return vk.InstanceCreateInfo{
		SType: vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: &vk.ApplicationInfo{
			SType:              vk.StructureTypeApplicationInfo,
			PApplicationName:   appName,
			ApplicationVersion: vk.MakeVersion(1, 0, 0),
			PEngineName:        appName,
			EngineVersion:      vk.MakeVersion(1, 0, 0),
			ApiVersion:         vk.MakeVersion(1, 1, 0),
		},
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: extensions,
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     layers,
	}
}
