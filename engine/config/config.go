package config

import (
	"fmt"
	"os"

	"github.com/gobuffalo/envy"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/aleokdev/vulkantest/engine/core"
)

// LoaderPathEnv names the environment variable holding the path to the
// Vulkan loader shared library. It has no default: the bring-up refuses
// to start without it.
const LoaderPathEnv = "VK_LIBRARY_PATH"

// DefaultFile is the optional TOML file looked up next to the binary.
const DefaultFile = "vulkantest.toml"

type ApplicationConfig struct {
	// Name is reported to the driver in VkApplicationInfo.
	Name string `toml:"name"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
}

type RendererConfig struct {
	// Validation enables the Khronos validation layer and the debug
	// messenger. Layers must be configured at instance creation, before
	// any other object exists, so this cannot be toggled later.
	Validation bool `toml:"validation"`
}

type Config struct {
	Application ApplicationConfig `toml:"application"`
	Window      WindowConfig      `toml:"window"`
	Renderer    RendererConfig    `toml:"renderer"`

	// LoaderPath comes from the environment, never from the file.
	LoaderPath string `toml:"-"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Application: ApplicationConfig{
			Name:     "Vulkan test",
			LogLevel: "info",
		},
		Window: WindowConfig{
			Title:  "Vulkan Test",
			Width:  1080,
			Height: 720,
		},
		Renderer: RendererConfig{
			Validation: true,
		},
	}
}

// Load reads the optional TOML file at path (missing file is not an
// error) and the required loader path from the environment. The
// environment check happens first so that a missing VK_LIBRARY_PATH
// fails before anything else is touched.
func Load(path string) (*Config, error) {
	loaderPath, err := envy.MustGet(LoaderPathEnv)
	if err != nil {
		return nil, fmt.Errorf("%w: environment variable %s is not set", core.ErrConfigMissing, LoaderPathEnv)
	}

	cfg := Default()
	cfg.LoaderPath = loaderPath

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if cfg.Window.Width == 0 || cfg.Window.Height == 0 {
		return nil, fmt.Errorf("config file %s: window size must be non-zero", path)
	}
	return cfg, nil
}
