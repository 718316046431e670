package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/chromasync/internal/version"
	"github.com/arthur-debert/chromasync/pkg/colorscheme"
	"github.com/arthur-debert/chromasync/pkg/commands"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// renderOverrides turns render flags into config overrides
func renderOverrides(cmd *cobra.Command) map[string]interface{} {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("color-format") {
		format, _ := cmd.Flags().GetString("color-format")
		overrides["render.color_format"] = format
	}
	return overrides
}

// colorschemeCompletion completes colorscheme names
func colorschemeCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	env, err := initEnvironment(nil)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	result, err := commands.List(commands.ListOptions{
		FS:     env.fs,
		Paths:  env.paths,
		Config: env.config,
	})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []string
	for _, cs := range result.Colorschemes {
		if strings.HasPrefix(cs.Name, toComplete) {
			names = append(names, cs.Name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func newLoadCmd() *cobra.Command {
	var noScript bool

	cmd := &cobra.Command{
		Use:               "load <colorscheme>",
		Short:             MsgLoadShort,
		Long:              MsgLoadLong,
		Example:           MsgLoadExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: colorschemeCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := initEnvironment(renderOverrides(cmd))
			if err != nil {
				return err
			}

			log.Info().Str("colorscheme", args[0]).Bool("noScript", noScript).Msg("Loading colorscheme")

			result, err := commands.Load(cmd.Context(), commands.LoadOptions{
				FS:          env.fs,
				Paths:       env.paths,
				Config:      env.config,
				Colorscheme: args[0],
				NoScript:    noScript,
			})
			if result != nil {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, MsgLoadedFormat, result.Colorscheme)
				printRender(out, result.Render)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&noScript, "no-script", false, MsgFlagNoScript)
	cmd.Flags().StringP("color-format", "f", "", MsgFlagColorFormat)

	return cmd
}

func newReloadCmd() *cobra.Command {
	var (
		noScript   bool
		blueprints []string
	)

	cmd := &cobra.Command{
		Use:     "reload",
		Short:   MsgReloadShort,
		Long:    MsgReloadLong,
		Example: MsgReloadExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := initEnvironment(renderOverrides(cmd))
			if err != nil {
				return err
			}

			log.Info().Strs("blueprints", blueprints).Bool("noScript", noScript).Msg("Reloading blueprints")

			result, err := commands.Reload(cmd.Context(), commands.ReloadOptions{
				FS:         env.fs,
				Paths:      env.paths,
				Config:     env.config,
				Blueprints: blueprints,
				NoScript:   noScript,
			})
			if result != nil {
				printRender(cmd.OutOrStdout(), result.Render)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&noScript, "no-script", false, MsgFlagNoScript)
	cmd.Flags().StringArrayVarP(&blueprints, "blueprint", "b", nil, MsgFlagBlueprint)
	cmd.Flags().StringP("color-format", "f", "", MsgFlagColorFormat)

	return cmd
}

func newListCmd() *cobra.Command {
	var (
		dark   bool
		light  bool
		sortBy string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := initEnvironment(nil)
			if err != nil {
				return err
			}

			filter := colorscheme.FilterAll
			switch {
			case dark:
				filter = colorscheme.FilterDark
			case light:
				filter = colorscheme.FilterLight
			}

			result, err := commands.List(commands.ListOptions{
				FS:     env.fs,
				Paths:  env.paths,
				Config: env.config,
				Filter: filter,
				SortBy: sortBy,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(result.Colorschemes) == 0 {
				fmt.Fprintf(out, MsgNoColorschemes, env.paths.ColorschemesDir())
				return nil
			}
			printList(out, result)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dark, "dark", "d", false, MsgFlagDark)
	cmd.Flags().BoolVarP(&light, "light", "l", false, MsgFlagLight)
	cmd.Flags().StringVarP(&sortBy, "sort-by", "s", "", MsgFlagSortBy)
	cmd.MarkFlagsMutuallyExclusive("dark", "light")
	_ = cmd.RegisterFlagCompletionFunc("sort-by", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{
			string(colorscheme.SortByName),
			string(colorscheme.SortByBackgroundLuminance),
			string(colorscheme.SortByContrast),
		}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newGenConfigCmd() *cobra.Command {
	var (
		effective bool
		write     bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := initEnvironment(nil)
			if err != nil {
				return err
			}

			result, err := commands.GenConfig(commands.GenConfigOptions{
				FS:        env.fs,
				Paths:     env.paths,
				Config:    env.config,
				Effective: effective,
				Write:     write,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !write {
				fmt.Fprint(out, result.ConfigContent)
				return nil
			}
			if len(result.FilesWritten) == 0 {
				fmt.Fprint(out, MsgConfigExists)
				return nil
			}
			for _, path := range result.FilesWritten {
				fmt.Fprintf(out, MsgConfigWritten, filepath.Clean(path))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&effective, "effective", false, MsgFlagEffective)
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			fmt.Fprintf(out, MsgVersionDetailFmt, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     MsgCompletionShort,
		Long:      MsgCompletionLong,
		GroupID:   "misc",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
