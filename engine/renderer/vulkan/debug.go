package vulkan

import (
	"unsafe"

	vk "github.com/goki/vulkan"

	"github.com/aleokdev/vulkantest/engine/core"
)

// debugMessengerCreateInfo subscribes to every report severity the
// extension offers. Filtering happens in the callback, not here.
func debugMessengerCreateInfo() vk.DebugReportCallbackCreateInfo {
	return vk.DebugReportCallbackCreateInfo{
		SType: vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags: vk.DebugReportFlags(vk.DebugReportErrorBit |
			vk.DebugReportWarningBit |
			vk.DebugReportPerformanceWarningBit |
			vk.DebugReportInformationBit |
			vk.DebugReportDebugBit),
		PfnCallback: debugReportCallback,
	}
}

// debugReportCallback forwards driver diagnostics to the logger at the
// matching level. Reports with no recognized severity bit are dropped.
// Always returns false so the triggering call is never aborted.
func debugReportCallback(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType,
	object uint64, location uint64, messageCode int32, layerPrefix string,
	message string, userData unsafe.Pointer) vk.Bool32 {
	switch {
	case flags&vk.DebugReportFlags(vk.DebugReportErrorBit) != 0:
		core.LogError("[%s] %s", layerPrefix, message)
	case flags&vk.DebugReportFlags(vk.DebugReportWarningBit|vk.DebugReportPerformanceWarningBit) != 0:
		core.LogWarn("[%s] %s", layerPrefix, message)
	case flags&vk.DebugReportFlags(vk.DebugReportInformationBit) != 0:
		core.LogInfo("[%s] %s", layerPrefix, message)
	case flags&vk.DebugReportFlags(vk.DebugReportDebugBit) != 0:
		core.LogDebug("[%s] %s", layerPrefix, message)
	}
	return vk.Bool32(vk.False)
}
