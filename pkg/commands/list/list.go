package list

import (
	"github.com/arthur-debert/chromasync/pkg/colorscheme"
	"github.com/arthur-debert/chromasync/pkg/config"
	"github.com/arthur-debert/chromasync/pkg/logging"
	"github.com/arthur-debert/chromasync/pkg/paths"
	"github.com/arthur-debert/chromasync/pkg/types"
)

// ListOptions defines the options for the List command.
type ListOptions struct {
	FS     types.FS
	Paths  *paths.Paths
	Config *config.Config

	Filter colorscheme.Filter
	// SortBy is a sort key or alias; empty uses the configured order
	SortBy string
}

// List summarizes the available colorschemes
func List(opts ListOptions) (*types.ListResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "List").Str("sortBy", opts.SortBy).Msg("Executing command")

	key := opts.Config.SortKey()
	if opts.SortBy != "" {
		var err error
		key, err = colorscheme.ParseSortKey(opts.SortBy)
		if err != nil {
			return nil, err
		}
	}

	if err := opts.Paths.EnsureDirs(opts.FS); err != nil {
		return nil, err
	}

	infos, err := colorscheme.List(opts.FS, opts.Paths.ColorschemesDir(), colorscheme.ListOptions{
		Filter: opts.Filter,
		SortBy: key,
	})
	if err != nil {
		return nil, err
	}

	result := &types.ListResult{
		Colorschemes: make([]types.ColorschemeSummary, len(infos)),
	}
	for i, info := range infos {
		result.Colorschemes[i] = types.ColorschemeSummary{
			Name:                info.Name,
			Path:                info.Path,
			Background:          info.Background.Hex(),
			Foreground:          info.Foreground.Hex(),
			BackgroundLuminance: info.BackgroundLuminance,
			Contrast:            info.Contrast,
			Dark:                info.IsDark(),
		}
	}

	log.Info().Str("command", "List").Int("colorschemeCount", len(result.Colorschemes)).Msg("Command finished")
	return result, nil
}
