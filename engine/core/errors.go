package core

import (
	"errors"
)

// Initialization failures. Every stage of the bring-up wraps one of
// these, so callers can match with errors.Is regardless of the extra
// context added along the way. All of them are fatal to the process.
var (
	// ErrConfigMissing means a required environment variable is unset.
	ErrConfigMissing = errors.New("required configuration missing")
	// ErrLoaderFailure means the driver library could not be opened or
	// its global entry points could not be resolved.
	ErrLoaderFailure = errors.New("vulkan loader failure")
	// ErrWindowFailure means native window creation failed.
	ErrWindowFailure = errors.New("window creation failure")
	// ErrInstanceFailure means the driver rejected the instance
	// parameters (missing extension, missing layer, unsupported API
	// version).
	ErrInstanceFailure = errors.New("instance creation failure")
	// ErrSurfaceFailure means binding the instance to the native window
	// failed.
	ErrSurfaceFailure = errors.New("surface creation failure")
	// ErrNoSuitableDevice means no physical device passed the selection
	// predicate.
	ErrNoSuitableDevice = errors.New("no suitable physical device")
	// ErrNoGraphicsQueue means the selected device exposes no
	// graphics-capable queue family.
	ErrNoGraphicsQueue = errors.New("no graphics queue family")
	// ErrDeviceFailure means logical device creation failed.
	ErrDeviceFailure = errors.New("logical device creation failure")
	// ErrNoCompatibleSurfaceFormat means no supported surface format has
	// the sRGB non-linear color space.
	ErrNoCompatibleSurfaceFormat = errors.New("no compatible surface format")

	ErrSwapchainFailure     = errors.New("swapchain creation failure")
	ErrCommandPoolFailure   = errors.New("command pool creation failure")
	ErrCommandBufferFailure = errors.New("command buffer allocation failure")
	ErrRenderPassFailure    = errors.New("render pass creation failure")
)
