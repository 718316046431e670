package cli

import (
	"fmt"

	"github.com/arthur-debert/chromasync/internal/version"
	"github.com/arthur-debert/chromasync/pkg/config"
	"github.com/arthur-debert/chromasync/pkg/filesystem"
	"github.com/arthur-debert/chromasync/pkg/logging"
	"github.com/arthur-debert/chromasync/pkg/paths"
	"github.com/arthur-debert/chromasync/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity int
		quiet     bool
	)

	rootCmd := &cobra.Command{
		Use:     "chromasync",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity, quiet)
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, MsgFlagQuiet)
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newLoadCmd())
	rootCmd.AddCommand(newReloadCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// environment bundles what every command needs from the host
type environment struct {
	fs     types.FS
	paths  *paths.Paths
	config *config.Config
}

// initEnvironment resolves directories and loads the layered configuration
func initEnvironment(overrides map[string]interface{}) (*environment, error) {
	p, err := paths.New()
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}

	cfg, err := config.Load(p.ConfigFiles(), overrides)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	log.Debug().
		Str("configDir", p.ConfigDir()).
		Str("cacheDir", p.CacheDir()).
		Msg("Environment initialized")

	return &environment{
		fs:     filesystem.NewOS(),
		paths:  p,
		config: cfg,
	}, nil
}
