// Package style defines the visual styling for chromasync's terminal output.
//
// Styles use semantic names and adaptive colors that adjust to light and
// dark terminal themes. They are loaded from the embedded styles.yaml:
//
//	colors:
//	  error: {light: "#DC3545", dark: "#FF6B7D"}
//	styles:
//	  Error: {bold: true, foreground: error}
package style

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
	PaddingRight int    `yaml:"paddingRight,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to lipgloss styles
type Registry struct {
	styles map[string]lipgloss.Style
}

//go:embed styles.yaml
var embeddedStyles []byte

var defaultRegistry = mustDefault()

func mustDefault() *Registry {
	r, err := Parse(embeddedStyles)
	if err != nil {
		// Unstyled output beats no output
		return &Registry{styles: map[string]lipgloss.Style{}}
	}
	return r
}

// Parse builds a registry from YAML style data
func Parse(data []byte) (*Registry, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	r := &Registry{styles: make(map[string]lipgloss.Style, len(cfg.Styles))}
	for name, def := range cfg.Styles {
		if def.Foreground != "" {
			if _, ok := colors[def.Foreground]; !ok {
				return nil, fmt.Errorf("style %s: unknown color %q", name, def.Foreground)
			}
		}
		if def.Background != "" {
			if _, ok := colors[def.Background]; !ok {
				return nil, fmt.Errorf("style %s: unknown color %q", name, def.Background)
			}
		}
		r.styles[name] = buildStyle(def, colors)
	}
	return r, nil
}

func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if def.Foreground != "" {
		style = style.Foreground(colors[def.Foreground])
	}
	if def.Background != "" {
		style = style.Background(colors[def.Background])
	}
	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		style = style.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}

	return style
}

// Has reports whether the registry defines name
func (r *Registry) Has(name string) bool {
	_, ok := r.styles[name]
	return ok
}

// Get returns the named style, or a plain style when it is not defined
func (r *Registry) Get(name string) lipgloss.Style {
	if s, ok := r.styles[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// GetStyle returns a style from the embedded registry
func GetStyle(name string) lipgloss.Style {
	return defaultRegistry.Get(name)
}

// Render renders s with the named style when w is a terminal and returns
// it unchanged otherwise.
func Render(w io.Writer, name, s string) string {
	if !IsTerminal(w) {
		return s
	}
	return GetStyle(name).Render(s)
}

// IsTerminal reports whether w is a terminal file
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Defined reports whether the embedded registry defines name
func Defined(name string) bool {
	return defaultRegistry.Has(name)
}
