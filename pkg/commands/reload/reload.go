package reload

import (
	"context"

	"github.com/arthur-debert/chromasync/pkg/blueprint"
	"github.com/arthur-debert/chromasync/pkg/colorscheme"
	"github.com/arthur-debert/chromasync/pkg/commands/internal"
	"github.com/arthur-debert/chromasync/pkg/config"
	"github.com/arthur-debert/chromasync/pkg/errors"
	"github.com/arthur-debert/chromasync/pkg/logging"
	"github.com/arthur-debert/chromasync/pkg/paths"
	"github.com/arthur-debert/chromasync/pkg/types"
)

// ReloadOptions defines the options for the Reload command.
type ReloadOptions struct {
	FS     types.FS
	Paths  *paths.Paths
	Config *config.Config

	// Blueprints selects blueprints by name, path or glob; empty means all
	Blueprints []string
	NoScript   bool
}

// Reload renders blueprints again with the current colorscheme
func Reload(ctx context.Context, opts ReloadOptions) (*types.ReloadResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Reload").Strs("blueprints", opts.Blueprints).Msg("Executing command")

	if err := opts.Paths.EnsureDirs(opts.FS); err != nil {
		return nil, err
	}

	table, err := colorscheme.LoadCurrent(opts.FS, opts.Paths.CurrentColorschemePath())
	if err != nil {
		return nil, err
	}

	var (
		selected []string
		notFound []string
	)
	if len(opts.Blueprints) > 0 {
		var errs []error
		selected, errs = blueprint.Select(opts.FS, opts.Paths.BlueprintDirs(), opts.Blueprints)
		for _, err := range errs {
			log.Error().Err(err).Msg("Skipping blueprint")
			if name, ok := errors.GetErrorDetails(err)["blueprint"].(string); ok {
				notFound = append(notFound, name)
			}
		}
		if selected == nil {
			selected = []string{}
		}
	}

	render, err := internal.RunRenderPipeline(ctx, internal.RenderOptions{
		FS:         opts.FS,
		Paths:      opts.Paths,
		Config:     opts.Config,
		Table:      table,
		Blueprints: selected,
		RunScript:  !opts.NoScript,
	})

	result := &types.ReloadResult{}
	if render != nil {
		render.NotFound = notFound
		result.Render = *render
	}
	if err != nil {
		return result, err
	}

	log.Info().
		Str("command", "Reload").
		Int("rendered", len(result.Render.Rendered)).
		Int("failed", len(result.Render.Failed)).
		Msg("Command finished")
	return result, nil
}
