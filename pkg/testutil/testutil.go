// pkg/testutil/testutil.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Filesystem, colorscheme and logging helpers

package testutil

import (
	"bytes"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/arthur-debert/chromasync/pkg/color"
	"github.com/arthur-debert/chromasync/pkg/colorscheme"
	"github.com/arthur-debert/chromasync/pkg/colortable"
	"github.com/arthur-debert/chromasync/pkg/filesystem"
	"github.com/arthur-debert/chromasync/pkg/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// WriteFile writes content to path, creating parent directories
func WriteFile(t *testing.T, fs types.FS, path, content string) {
	t.Helper()

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := fs.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// ReadFile returns the content of path or fails the test
func ReadFile(t *testing.T, fs types.FS, path string) string {
	t.Helper()

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// Colors returns a complete colorscheme with every color set to black,
// overridden by the given values
func Colors(overrides map[string]string) map[string]string {
	colors := make(map[string]string, len(colorscheme.ColorNames))
	for _, name := range colorscheme.ColorNames {
		colors[name] = "#000000"
	}
	for name, value := range overrides {
		colors[name] = value
	}
	return colors
}

// ColorschemeJSON renders colors as a JSON object with keys in canonical
// order followed by any extra keys in sorted order
func ColorschemeJSON(colors map[string]string) string {
	var keys []string
	for _, name := range colorscheme.ColorNames {
		if _, ok := colors[name]; ok {
			keys = append(keys, name)
		}
	}
	var extra []string
	for name := range colors {
		if !colorscheme.IsColorName(name) {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	keys = append(keys, extra...)

	fields := make([]string, len(keys))
	for i, name := range keys {
		fields[i] = `"` + name + `": "` + colors[name] + `"`
	}
	return "{" + strings.Join(fields, ", ") + "}"
}

// Table builds a color table from hex values
func Table(colors map[string]string) *colortable.Table {
	table := colortable.New()
	for name, hex := range colors {
		table.Set(name, color.MustParseHex(hex))
	}
	return table
}

// CaptureLogs redirects the global logger into a buffer for the duration
// of the test
func CaptureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	previous := log.Logger
	previousLevel := zerolog.GlobalLevel()

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	t.Cleanup(func() {
		log.Logger = previous
		zerolog.SetGlobalLevel(previousLevel)
	})
	return &buf
}
