// Package paths provides centralized path handling for chromasync.
//
// This package implements the XDG Base Directory specification and provides
// a consistent API for every directory chromasync reads from or writes to.
//
// # Environment Variables
//
//   - CHROMASYNC_CONFIG_DIR: Override XDG config directory (default: $XDG_CONFIG_HOME/chromasync)
//   - CHROMASYNC_CACHE_DIR: Override XDG cache directory (default: $XDG_CACHE_HOME/chromasync)
//
// # Directory Structure
//
//   - Config: colorschemes/, blueprints/, chromasync.toml, chromasync-post.sh
//   - Cache: out/ (default output), blueprints/ (written by other tools),
//     current-colorscheme.json (the last loaded colorscheme)
//
// # Usage
//
//	p, err := paths.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := p.EnsureDirs(filesystem.NewOS()); err != nil {
//	    log.Fatal(err)
//	}
//	schemes := p.ColorschemesDir() // ~/.config/chromasync/colorschemes
package paths
