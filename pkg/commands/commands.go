// Package commands provides high-level command implementations for chromasync.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the blueprint engine.
//
// Each command is implemented in its own subdirectory:
//   - load/      - Load command
//   - reload/    - Reload command
//   - list/      - List command
//   - genconfig/ - GenConfig command
//   - internal/  - Shared render pipeline logic
//
// This file re-exports all command functions so callers need a single import.
package commands

import (
	"context"

	"github.com/arthur-debert/chromasync/pkg/commands/genconfig"
	"github.com/arthur-debert/chromasync/pkg/commands/list"
	"github.com/arthur-debert/chromasync/pkg/commands/load"
	"github.com/arthur-debert/chromasync/pkg/commands/reload"
	"github.com/arthur-debert/chromasync/pkg/types"
)

// LoadOptions defines the options for the Load command.
type LoadOptions = load.LoadOptions

// Load loads a colorscheme and renders every blueprint with it.
func Load(ctx context.Context, opts LoadOptions) (*types.LoadResult, error) {
	return load.Load(ctx, opts)
}

// ReloadOptions defines the options for the Reload command.
type ReloadOptions = reload.ReloadOptions

// Reload renders blueprints again with the current colorscheme.
func Reload(ctx context.Context, opts ReloadOptions) (*types.ReloadResult, error) {
	return reload.Reload(ctx, opts)
}

// ListOptions defines the options for the List command.
type ListOptions = list.ListOptions

// List summarizes the available colorschemes.
func List(opts ListOptions) (*types.ListResult, error) {
	return list.List(opts)
}

// GenConfigOptions holds options for the genconfig command.
type GenConfigOptions = genconfig.GenConfigOptions

// GenConfig outputs or writes the configuration.
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
