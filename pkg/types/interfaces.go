package types

import (
	"io/fs"
)

// FS is the filesystem interface required for chromasync operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(name string) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
}

// Pather provides the directories chromasync reads from and writes to
type Pather interface {
	// ConfigDir returns the user-managed configuration directory
	ConfigDir() string

	// CacheDir returns the cache directory
	CacheDir() string

	// ColorschemesDir returns the directory holding colorscheme files
	ColorschemesDir() string

	// ConfigBlueprintsDir returns the user-managed blueprints directory
	ConfigBlueprintsDir() string

	// CacheBlueprintsDir returns the blueprints directory managed by other tools
	CacheBlueprintsDir() string

	// OutDir returns the default output directory for rendered blueprints
	OutDir() string
}
