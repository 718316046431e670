package config

import (
	"github.com/arthur-debert/chromasync/pkg/color"
	"github.com/arthur-debert/chromasync/pkg/colorscheme"
)

// Config holds the effective chromasync configuration
type Config struct {
	Render     Render     `koanf:"render" toml:"render"`
	PostScript PostScript `koanf:"post_script" toml:"post_script"`
	List       List       `koanf:"list" toml:"list"`
}

// Render holds the defaults applied to every blueprint
type Render struct {
	ColorFormat     string `koanf:"color_format" toml:"color_format"`
	OutputDirectory string `koanf:"output_directory" toml:"output_directory"`
}

// PostScript controls the script run after a batch render
type PostScript struct {
	Enabled bool   `koanf:"enabled" toml:"enabled"`
	Path    string `koanf:"path" toml:"path"`
}

// List holds the defaults of the list command
type List struct {
	SortBy string `koanf:"sort_by" toml:"sort_by"`
}

// Format returns the configured default color format. Load has already
// validated it.
func (c *Config) Format() color.Format {
	f, err := color.ParseFormat(c.Render.ColorFormat)
	if err != nil {
		return color.HexWithHash
	}
	return f
}

// SortKey returns the configured default list order
func (c *Config) SortKey() colorscheme.SortKey {
	key, err := colorscheme.ParseSortKey(c.List.SortBy)
	if err != nil {
		return colorscheme.SortByName
	}
	return key
}

// OutputDirectory returns the configured output directory or fallback
// when none is set
func (c *Config) OutputDirectory(fallback string) string {
	if c.Render.OutputDirectory == "" {
		return fallback
	}
	return c.Render.OutputDirectory
}

// PostScriptPath returns the configured post script or fallback when none
// is set
func (c *Config) PostScriptPath(fallback string) string {
	if c.PostScript.Path == "" {
		return fallback
	}
	return c.PostScript.Path
}
