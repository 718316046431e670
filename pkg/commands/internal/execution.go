package internal

import (
	"context"

	"github.com/arthur-debert/chromasync/pkg/blueprint"
	"github.com/arthur-debert/chromasync/pkg/colortable"
	"github.com/arthur-debert/chromasync/pkg/config"
	"github.com/arthur-debert/chromasync/pkg/executor"
	"github.com/arthur-debert/chromasync/pkg/logging"
	"github.com/arthur-debert/chromasync/pkg/paths"
	"github.com/arthur-debert/chromasync/pkg/types"
)

// RenderOptions is an internal struct to pass to the render pipeline.
type RenderOptions struct {
	FS     types.FS
	Paths  *paths.Paths
	Config *config.Config
	Table  *colortable.Table
	// Blueprints to render; nil renders every discovered blueprint
	Blueprints []string
	RunScript  bool
}

// RunRenderPipeline is the core logic for load and reload: render the
// blueprints into their output directories, then run the post script.
func RunRenderPipeline(ctx context.Context, opts RenderOptions) (*types.RenderResult, error) {
	logger := logging.GetLogger("core.commands")

	blueprints := opts.Blueprints
	if blueprints == nil {
		blueprints = blueprint.Discover(opts.FS, opts.Paths.BlueprintDirs()...)
	}

	defaults := blueprint.Defaults{
		ColorFormat:     opts.Config.Format(),
		OutputDirectory: opts.Config.OutputDirectory(opts.Paths.OutDir()),
	}
	logger.Debug().
		Str("colorFormat", string(defaults.ColorFormat)).
		Str("outputDirectory", defaults.OutputDirectory).
		Int("blueprints", len(blueprints)).
		Msg("Starting render pipeline")

	batch := &blueprint.Batch{
		Renderer: blueprint.NewRenderer(opts.FS, opts.Table, defaults),
		Sink:     blueprint.NewFSSink(opts.FS),
	}
	summary := batch.Run(blueprints)

	result := &types.RenderResult{
		Rendered: summary.Rendered,
		Failed:   summary.Failed,
	}

	if !opts.RunScript || !opts.Config.PostScript.Enabled {
		logger.Debug().Msg("Post script disabled")
		return result, nil
	}

	result.ScriptPath = opts.Config.PostScriptPath(opts.Paths.PostScriptPath())
	ran, err := executor.NewPostScript(result.ScriptPath).Run(ctx)
	result.ScriptRan = ran
	if err != nil {
		return result, err
	}

	return result, nil
}
