package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gobuffalo/envy"

	"github.com/aleokdev/vulkantest/engine/core"
)

func setLoaderPath(t *testing.T, path string) {
	t.Helper()
	t.Setenv(LoaderPathEnv, path)
	envy.Reload()
}

func unsetLoaderPath(t *testing.T) {
	t.Helper()
	old, had := os.LookupEnv(LoaderPathEnv)
	os.Unsetenv(LoaderPathEnv)
	envy.Reload()
	t.Cleanup(func() {
		if had {
			os.Setenv(LoaderPathEnv, old)
		}
		envy.Reload()
	})
}

func TestLoadRequiresLoaderPath(t *testing.T) {
	unsetLoaderPath(t)

	_, err := Load("does-not-exist.toml")
	if !errors.Is(err, core.ErrConfigMissing) {
		t.Fatalf("error = %v, want ErrConfigMissing", err)
	}
}

func TestLoadDefaultsWhenFileAbsent(t *testing.T) {
	setLoaderPath(t, "/usr/lib/libvulkan.so.1")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LoaderPath != "/usr/lib/libvulkan.so.1" {
		t.Errorf("loader path = %q", cfg.LoaderPath)
	}
	if cfg.Application.Name != "Vulkan test" {
		t.Errorf("application name = %q", cfg.Application.Name)
	}
	if cfg.Window.Title != "Vulkan Test" || cfg.Window.Width != 1080 || cfg.Window.Height != 720 {
		t.Errorf("window = %q %dx%d", cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Renderer.Validation {
		t.Error("validation not enabled by default")
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	setLoaderPath(t, "/usr/lib/libvulkan.so.1")

	path := filepath.Join(t.TempDir(), "vulkantest.toml")
	contents := `
[application]
name = "Custom App"
log_level = "debug"

[window]
title = "Custom Window"
width = 800
height = 600

[renderer]
validation = false
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Application.Name != "Custom App" || cfg.Application.LogLevel != "debug" {
		t.Errorf("application = %+v", cfg.Application)
	}
	if cfg.Window.Title != "Custom Window" || cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Renderer.Validation {
		t.Error("validation not disabled by file")
	}
}

func TestLoadRejectsZeroWindowSize(t *testing.T) {
	setLoaderPath(t, "/usr/lib/libvulkan.so.1")

	path := filepath.Join(t.TempDir(), "vulkantest.toml")
	if err := os.WriteFile(path, []byte("[window]\nwidth = 0\nheight = 600\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("zero window width accepted")
	}
}
