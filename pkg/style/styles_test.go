// pkg/style/styles_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test style registry loading and terminal gating

package style_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/chromasync/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := []byte(`
colors:
  red: {light: "#FF0000", dark: "#FF8888"}
styles:
  Error: {bold: true, foreground: red}
`)
	r, err := style.Parse(data)
	require.NoError(t, err)
	assert.True(t, r.Has("Error"))
	assert.False(t, r.Has("Header"))
}

func TestParse_UnknownColor(t *testing.T) {
	_, err := style.Parse([]byte("styles:\n  Error: {foreground: nope}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := style.Parse([]byte("styles: [unclosed"))
	require.Error(t, err)
}

func TestRender_NonTerminalIsPlain(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, style.IsTerminal(&buf))
	assert.Equal(t, "NAME", style.Render(&buf, "TableHeader", "NAME"))
}

func TestGetStyle_Missing(t *testing.T) {
	assert.Equal(t, "text", style.GetStyle("NoSuchStyle").Render("text"))
}

func TestEmbeddedStyles(t *testing.T) {
	for _, name := range []string{"Error", "Warning", "Header", "TableHeader", "Muted", "FilePath"} {
		assert.True(t, style.Defined(name), "style %s should be defined", name)
	}
}
