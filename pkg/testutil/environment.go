// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate test environments with proper dependencies

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/chromasync/pkg/config"
	"github.com/arthur-debert/chromasync/pkg/filesystem"
	"github.com/arthur-debert/chromasync/pkg/paths"
	"github.com/arthur-debert/chromasync/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a complete test environment with all dependencies
type TestEnvironment struct {
	ConfigDir string
	CacheDir  string
	HomeDir   string

	FS     types.FS
	Paths  *paths.Paths
	Config *config.Config

	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment. Isolated
// environments also point HOME, XDG_STATE_HOME and the chromasync
// directory variables at the temp directory, so code that builds its own
// paths finds the same layout.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	root := "/test"
	switch envType {
	case EnvMemoryOnly:
		env.FS = NewTestFS()
	case EnvIsolated:
		root = t.TempDir()
		env.FS = filesystem.NewOS()
	}

	env.HomeDir = filepath.Join(root, "home")
	env.ConfigDir = filepath.Join(root, "config", "chromasync")
	env.CacheDir = filepath.Join(root, "cache", "chromasync")

	if envType == EnvIsolated {
		t.Setenv("HOME", env.HomeDir)
		t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
		t.Setenv(paths.EnvConfigDir, env.ConfigDir)
		t.Setenv(paths.EnvCacheDir, env.CacheDir)
	}

	env.Paths = paths.NewWithDirs(env.ConfigDir, env.CacheDir)
	if err := env.Paths.EnsureDirs(env.FS); err != nil {
		t.Fatalf("Failed to create directories: %v", err)
	}
	if err := env.FS.MkdirAll(env.HomeDir, 0755); err != nil {
		t.Fatalf("Failed to create home: %v", err)
	}

	cfg, err := config.Load(nil, nil)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	env.Config = cfg

	return env
}

// AddColorscheme writes a complete JSON colorscheme built from overrides
// and returns its path
func (e *TestEnvironment) AddColorscheme(name string, overrides map[string]string) string {
	e.t.Helper()
	path := filepath.Join(e.Paths.ColorschemesDir(), name+".json")
	WriteFile(e.t, e.FS, path, ColorschemeJSON(Colors(overrides)))
	return path
}

// AddBlueprint writes a blueprint to the config blueprints directory
func (e *TestEnvironment) AddBlueprint(name, content string) string {
	e.t.Helper()
	path := filepath.Join(e.Paths.ConfigBlueprintsDir(), name)
	WriteFile(e.t, e.FS, path, content)
	return path
}

// AddCacheBlueprint writes a blueprint to the cache blueprints directory
func (e *TestEnvironment) AddCacheBlueprint(name, content string) string {
	e.t.Helper()
	path := filepath.Join(e.Paths.CacheBlueprintsDir(), name)
	WriteFile(e.t, e.FS, path, content)
	return path
}

// Output returns a rendered file from the default output directory
func (e *TestEnvironment) Output(name string) string {
	e.t.Helper()
	return ReadFile(e.t, e.FS, filepath.Join(e.Paths.OutDir(), name))
}

// HasOutput reports whether a rendered file exists in the default output
// directory
func (e *TestEnvironment) HasOutput(name string) bool {
	_, err := e.FS.Stat(filepath.Join(e.Paths.OutDir(), name))
	return err == nil
}
