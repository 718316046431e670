package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/chromasync/pkg/errors"
	"github.com/arthur-debert/chromasync/pkg/types"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for chromasync
	EnvConfigDir = "CHROMASYNC_CONFIG_DIR"

	// EnvCacheDir overrides the XDG cache directory for chromasync
	EnvCacheDir = "CHROMASYNC_CACHE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Directory and file names below the config and cache directories
const (
	// AppDirName is the directory name for chromasync-specific files
	AppDirName = "chromasync"

	// ColorschemesDir holds the colorscheme files
	ColorschemesDir = "colorschemes"

	// BlueprintsDir holds blueprints, both in config and cache
	BlueprintsDir = "blueprints"

	// OutDir is the default output directory for rendered blueprints
	OutDir = "out"

	// ConfigFileName is the user configuration file
	ConfigFileName = "chromasync.toml"

	// ConfigFileNameYAML is the YAML alternative to ConfigFileName
	ConfigFileNameYAML = "chromasync.yaml"

	// PostScriptName is the script run after rendering blueprints
	PostScriptName = "chromasync-post.sh"

	// CurrentColorschemeFile stores the last loaded colorscheme
	CurrentColorschemeFile = "current-colorscheme.json"

	// LogFileName is the name of the log file
	LogFileName = "chromasync.log"
)

// Paths provides centralized path management for chromasync
type Paths struct {
	configDir string
	cacheDir  string
}

var _ types.Pather = (*Paths)(nil)

// New creates a Paths instance from the environment
func New() (*Paths, error) {
	p := &Paths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = expandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvCacheDir); dir != "" {
		p.cacheDir = expandHome(dir)
	} else {
		p.cacheDir = filepath.Join(xdg.CacheHome, AppDirName)
	}

	for _, dir := range []*string{&p.configDir, &p.cacheDir} {
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrSystem, "failed to get absolute path for `%s`", *dir)
		}
		*dir = abs
	}

	return p, nil
}

// NewWithDirs creates a Paths instance rooted at explicit directories
func NewWithDirs(configDir, cacheDir string) *Paths {
	return &Paths{configDir: configDir, cacheDir: cacheDir}
}

// ConfigDir returns the config directory
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// CacheDir returns the cache directory
func (p *Paths) CacheDir() string {
	return p.cacheDir
}

// ColorschemesDir returns the directory holding colorscheme files
func (p *Paths) ColorschemesDir() string {
	return filepath.Join(p.configDir, ColorschemesDir)
}

// ConfigBlueprintsDir returns the blueprints directory managed by the user
func (p *Paths) ConfigBlueprintsDir() string {
	return filepath.Join(p.configDir, BlueprintsDir)
}

// CacheBlueprintsDir returns the blueprints directory managed by other tools
func (p *Paths) CacheBlueprintsDir() string {
	return filepath.Join(p.cacheDir, BlueprintsDir)
}

// BlueprintDirs returns the blueprint directories in processing order
func (p *Paths) BlueprintDirs() []string {
	return []string{p.ConfigBlueprintsDir(), p.CacheBlueprintsDir()}
}

// OutDir returns the default output directory
func (p *Paths) OutDir() string {
	return filepath.Join(p.cacheDir, OutDir)
}

// ConfigFilePath returns the path of the user configuration file
func (p *Paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// ConfigFiles returns the candidate user configuration files in lookup order
func (p *Paths) ConfigFiles() []string {
	return []string{p.ConfigFilePath(), filepath.Join(p.configDir, ConfigFileNameYAML)}
}

// PostScriptPath returns the default post-render script path
func (p *Paths) PostScriptPath() string {
	return filepath.Join(p.configDir, PostScriptName)
}

// CurrentColorschemePath returns the path of the current colorscheme backup
func (p *Paths) CurrentColorschemePath() string {
	return filepath.Join(p.cacheDir, CurrentColorschemeFile)
}

// EnsureDirs creates every directory chromasync works with
func (p *Paths) EnsureDirs(fs types.FS) error {
	dirs := []string{
		p.configDir,
		p.ColorschemesDir(),
		p.ConfigBlueprintsDir(),
		p.cacheDir,
		p.OutDir(),
		p.CacheBlueprintsDir(),
	}

	for _, dir := range dirs {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrSystem, "can't create the `%s` directory", dir)
		}
	}

	return nil
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// ExpandHome expands a leading ~ or ~/ to the user's home directory
func ExpandHome(path string) string {
	return expandHome(path)
}
