package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/aleokdev/vulkantest/engine/core"
)

func init() {
	// GLFW must run on the main OS thread
	runtime.LockOSThread()
}

// Platform owns the native window. The renderer treats the window as an
// opaque collaborator: it only asks for the platform-required instance
// extensions, the framebuffer size in pixels, and a surface bridged to
// the instance.
type Platform struct {
	Window *glfw.Window
}

func New() *Platform {
	return &Platform{}
}

// Startup initializes GLFW and creates the window. ClientAPI is set to
// NoAPI so GLFW does not create an OpenGL context.
func (p *Platform) Startup(title string, width, height uint32) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: initializing glfw: %v", core.ErrWindowFailure, err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(int(width), int(height), title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("%w: creating window: %v", core.ErrWindowFailure, err)
	}
	p.Window = window

	return nil
}

func (p *Platform) Shutdown() {
	if p.Window != nil {
		p.Window.Destroy()
		p.Window = nil
	}
	glfw.Terminate()
}
