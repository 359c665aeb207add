package vulkan

import (
	"fmt"
	"syscall"
	"unsafe"
)

// loaderHandle owns the loaded Vulkan loader DLL.
type loaderHandle struct {
	lib syscall.Handle
}

// openLoader loads the DLL at path and resolves vkGetInstanceProcAddr,
// the single entry point everything else is pulled through.
func openLoader(path string) (*loaderHandle, unsafe.Pointer, error) {
	lib, err := syscall.LoadLibrary(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", path, err)
	}
	proc, err := syscall.GetProcAddress(lib, "vkGetInstanceProcAddr")
	if err != nil {
		syscall.FreeLibrary(lib)
		return nil, nil, fmt.Errorf("resolving vkGetInstanceProcAddr in %s: %w", path, err)
	}
	return &loaderHandle{lib: lib}, unsafe.Pointer(proc), nil
}

func (h *loaderHandle) close() {
	if h.lib != 0 {
		syscall.FreeLibrary(h.lib)
		h.lib = 0
	}
}
