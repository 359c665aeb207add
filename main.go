package main

import (
	"github.com/aleokdev/vulkantest/engine/config"
	"github.com/aleokdev/vulkantest/engine/core"
	"github.com/aleokdev/vulkantest/engine/platform"
	"github.com/aleokdev/vulkantest/engine/renderer/vulkan"
)

func main() {
	if err := run(); err != nil {
		// Fatalf exits with a non-zero status after logging.
		core.LogFatal("%v", err)
	}
}

// run brings the Vulkan context all the way up, then tears it straight
// back down. There is no frame loop here; reaching Shutdown without an
// error is the whole point of the exercise.
func run() error {
	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		return err
	}
	core.LogSetLevel(cfg.Application.LogLevel)

	p := platform.New()
	if err := p.Startup(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height); err != nil {
		return err
	}
	defer p.Shutdown()

	renderer := vulkan.New(vulkan.NewDriver(), p.Window)
	if err := renderer.Initialize(vulkan.Options{
		ApplicationName: cfg.Application.Name,
		LoaderPath:      cfg.LoaderPath,
		Validation:      cfg.Renderer.Validation,
	}); err != nil {
		return err
	}
	renderer.Shutdown()
	return nil
}
