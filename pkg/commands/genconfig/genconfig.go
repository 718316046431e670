package genconfig

import (
	"github.com/arthur-debert/chromasync/pkg/config"
	"github.com/arthur-debert/chromasync/pkg/errors"
	"github.com/arthur-debert/chromasync/pkg/logging"
	"github.com/arthur-debert/chromasync/pkg/paths"
	"github.com/arthur-debert/chromasync/pkg/types"
)

// GenConfigOptions holds options for the genconfig command
type GenConfigOptions struct {
	FS    types.FS
	Paths *paths.Paths
	// Config is required for Effective
	Config *config.Config

	// Effective outputs the loaded configuration instead of the
	// commented defaults
	Effective bool
	// Write stores the content as the user config file unless one exists
	Write bool
}

// GenConfig outputs or writes the configuration
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	content := config.GenerateConfigContent()
	if opts.Effective {
		var err error
		content, err = config.EffectiveConfigContent(opts.Config)
		if err != nil {
			return nil, err
		}
	}

	result := &types.GenConfigResult{
		ConfigContent: content,
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	targetPath := opts.Paths.ConfigFilePath()
	if err := opts.FS.MkdirAll(opts.Paths.ConfigDir(), 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrSystem, "failed to create directory `%s`", opts.Paths.ConfigDir())
	}

	if _, err := opts.FS.Stat(targetPath); err == nil {
		logger.Warn().Str("path", targetPath).Msg("Config file already exists, skipping")
		return result, nil
	}

	if err := opts.FS.WriteFile(targetPath, []byte(content), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrSystem, "failed to write config to `%s`", targetPath)
	}

	logger.Info().Str("path", targetPath).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, targetPath)
	return result, nil
}
