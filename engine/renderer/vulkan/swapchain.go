package vulkan

import (
	"fmt"

	vk "github.com/goki/vulkan"

	"github.com/aleokdev/vulkantest/engine/core"
	"github.com/aleokdev/vulkantest/engine/math"
)

// chooseSurfaceFormat logs every format the surface offers and returns
// the first one with an sRGB nonlinear color space.
func chooseSurfaceFormat(formats []vk.SurfaceFormat) (vk.SurfaceFormat, error) {
	for _, format := range formats {
		core.LogDebug("surface offers format %d with color space %d", format.Format, format.ColorSpace)
	}
	for _, format := range formats {
		if format.ColorSpace == vk.ColorSpaceSrgbNonlinear {
			return format, nil
		}
	}
	return vk.SurfaceFormat{}, fmt.Errorf("%w: %d formats offered", core.ErrNoCompatibleSurfaceFormat, len(formats))
}

// chooseExtent honors a fixed surface extent when the platform reports
// one, and otherwise clamps the framebuffer size to the surface limits.
func chooseExtent(caps SurfaceCapabilities, window Window) vk.Extent2D {
	if caps.CurrentExtent.Width != ^uint32(0) {
		return caps.CurrentExtent
	}
	width, height := window.GetFramebufferSize()
	return vk.Extent2D{
		Width:  math.Clamp(uint32(width), caps.MinImageExtent.Width, caps.MaxImageExtent.Width),
		Height: math.Clamp(uint32(height), caps.MinImageExtent.Height, caps.MaxImageExtent.Height),
	}
}

// chooseCompositeAlpha walks a fixed preference order over what the
// surface supports, defaulting to opaque when nothing matches.
func chooseCompositeAlpha(supported vk.CompositeAlphaFlags) vk.CompositeAlphaFlagBits {
	preferred := []vk.CompositeAlphaFlagBits{
		vk.CompositeAlphaPostMultipliedBit,
		vk.CompositeAlphaOpaqueBit,
		vk.CompositeAlphaPreMultipliedBit,
		vk.CompositeAlphaInheritBit,
	}
	for _, mode := range preferred {
		if supported&vk.CompositeAlphaFlags(mode) != 0 {
			return mode
		}
	}
	return vk.CompositeAlphaOpaqueBit
}

func swapchainCreateInfo(surface vk.Surface, caps SurfaceCapabilities,
	format vk.SurfaceFormat, extent vk.Extent2D) vk.SwapchainCreateInfo {
	return vk.SwapchainCreateInfo{
		SType:            vk.StructureTypeSwapchainCreateInfo,
		Surface:          surface,
		MinImageCount:    caps.MinImageCount,
		ImageFormat:      format.Format,
		ImageColorSpace:  format.ColorSpace,
		ImageExtent:      extent,
		ImageArrayLayers: 1,
		ImageUsage:       vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit),
		ImageSharingMode: vk.SharingModeExclusive,
		PreTransform:     vk.SurfaceTransformIdentityBit,
		CompositeAlpha:   chooseCompositeAlpha(caps.SupportedCompositeAlpha),
		PresentMode:      vk.PresentModeFifo,
		Clipped:          vk.True,
		OldSwapchain:     vk.NullSwapchain,
	}
}
