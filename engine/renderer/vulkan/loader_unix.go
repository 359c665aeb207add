//go:build !windows

package vulkan

/*
#cgo linux LDFLAGS: -ldl
#include <dlfcn.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// loaderHandle owns the dlopen'd Vulkan loader library.
type loaderHandle struct {
	lib unsafe.Pointer
}

// openLoader loads the shared library at path and resolves
// vkGetInstanceProcAddr, the single entry point everything else is
// pulled through.
func openLoader(path string) (*loaderHandle, unsafe.Pointer, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	lib := C.dlopen(cpath, C.RTLD_NOW|C.RTLD_LOCAL)
	if lib == nil {
		return nil, nil, fmt.Errorf("dlopen %s: %s", path, C.GoString(C.dlerror()))
	}

	sym := C.CString("vkGetInstanceProcAddr")
	defer C.free(unsafe.Pointer(sym))

	proc := C.dlsym(lib, sym)
	if proc == nil {
		C.dlclose(lib)
		return nil, nil, fmt.Errorf("dlsym vkGetInstanceProcAddr in %s: %s", path, C.GoString(C.dlerror()))
	}
	return &loaderHandle{lib: lib}, proc, nil
}

func (h *loaderHandle) close() {
	if h.lib != nil {
		C.dlclose(h.lib)
		h.lib = nil
	}
}
