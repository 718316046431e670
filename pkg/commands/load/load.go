package load

import (
	"context"

	"github.com/arthur-debert/chromasync/pkg/colorscheme"
	"github.com/arthur-debert/chromasync/pkg/commands/internal"
	"github.com/arthur-debert/chromasync/pkg/config"
	"github.com/arthur-debert/chromasync/pkg/errors"
	"github.com/arthur-debert/chromasync/pkg/logging"
	"github.com/arthur-debert/chromasync/pkg/paths"
	"github.com/arthur-debert/chromasync/pkg/types"
)

// LoadOptions defines the options for the Load command.
type LoadOptions struct {
	FS     types.FS
	Paths  *paths.Paths
	Config *config.Config

	// Colorscheme is the name of a file in the colorschemes directory,
	// without extension
	Colorscheme string
	NoScript    bool
}

// Load loads a colorscheme, remembers it as the current one and renders
// every blueprint with it.
func Load(ctx context.Context, opts LoadOptions) (*types.LoadResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Load").Str("colorscheme", opts.Colorscheme).Msg("Executing command")

	if err := opts.Paths.EnsureDirs(opts.FS); err != nil {
		return nil, err
	}

	path, err := colorscheme.Find(opts.FS, opts.Paths.ColorschemesDir(), opts.Colorscheme)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrColorscheme, "can't load colorscheme `%s`", opts.Colorscheme)
	}

	table, err := colorscheme.Load(opts.FS, path)
	if err != nil {
		return nil, err
	}

	result := &types.LoadResult{Colorscheme: opts.Colorscheme, Path: path}

	backup := opts.Paths.CurrentColorschemePath()
	if err := colorscheme.SaveCurrent(opts.FS, backup, table); err != nil {
		log.Warn().Err(err).Str("path", backup).Msg("Can't store a copy of the current colorscheme")
	} else {
		result.Saved = true
	}

	render, err := internal.RunRenderPipeline(ctx, internal.RenderOptions{
		FS:        opts.FS,
		Paths:     opts.Paths,
		Config:    opts.Config,
		Table:     table,
		RunScript: !opts.NoScript,
	})
	if render != nil {
		result.Render = *render
	}
	if err != nil {
		return result, err
	}

	log.Info().
		Str("command", "Load").
		Str("colorscheme", opts.Colorscheme).
		Int("rendered", len(result.Render.Rendered)).
		Int("failed", len(result.Render.Failed)).
		Msg("Command finished")
	return result, nil
}
