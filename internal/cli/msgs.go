package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render your colorscheme into every tool's configuration"
	MsgLoadShort       = "Load a colorscheme and render all blueprints"
	MsgReloadShort     = "Render blueprints again with the current colorscheme"
	MsgListShort       = "List available colorschemes"
	MsgGenConfigShort  = "Output the default configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Result messages
	MsgRenderedFormat   = "Rendered %d blueprint(s)\n"
	MsgFailedFormat     = "%d blueprint(s) failed, see the log above\n"
	MsgNotFoundFormat   = "No blueprint matched: %s\n"
	MsgScriptRanFormat  = "Ran %s\n"
	MsgLoadedFormat     = "Loaded colorscheme %s\n"
	MsgNoColorschemes   = "No colorschemes found in %s\n"
	MsgConfigWritten    = "Config written to %s\n"
	MsgConfigExists     = "Config file already exists, nothing written\n"
	MsgVersionFormat    = "chromasync %s\n"
	MsgVersionDetailFmt = "commit: %s\nbuilt:  %s\n"

	// List table
	MsgListHeaderName      = "NAME"
	MsgListHeaderLuminance = "LUM (BG)"
	MsgListHeaderContrast  = "CONT"

	// Error messages
	MsgErrInitPaths  = "failed to initialize paths: %w"
	MsgErrLoadConfig = "failed to load configuration: %w"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagQuiet       = "Only log to the log file"
	MsgFlagNoScript    = "Don't run the post script after rendering"
	MsgFlagColorFormat = "Default color format for blueprints without a color-format directive"
	MsgFlagBlueprint   = "Blueprint to render, by name, path or glob (repeatable)"
	MsgFlagDark        = "Only list colorschemes with a dark background"
	MsgFlagLight       = "Only list colorschemes with a light background"
	MsgFlagSortBy      = "Sort by name, background-luminance (lum) or contrast (cont)"
	MsgFlagEffective   = "Output the configuration in use instead of the defaults"
	MsgFlagWrite       = "Write the configuration to the config file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/load-long.txt
	msgLoadLongRaw string
	MsgLoadLong    = strings.TrimSpace(msgLoadLongRaw)

	//go:embed msgs/load-example.txt
	msgLoadExampleRaw string
	MsgLoadExample    = strings.TrimRight(msgLoadExampleRaw, "\n")

	//go:embed msgs/reload-long.txt
	msgReloadLongRaw string
	MsgReloadLong    = strings.TrimSpace(msgReloadLongRaw)

	//go:embed msgs/reload-example.txt
	msgReloadExampleRaw string
	MsgReloadExample    = strings.TrimRight(msgReloadExampleRaw, "\n")

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimRight(msgGenConfigExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
