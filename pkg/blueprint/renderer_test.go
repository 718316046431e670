// pkg/blueprint/renderer_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Memory FS, captured logs
// PURPOSE: Test blueprint rendering: directive block, body substitution and failures

package blueprint_test

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/arthur-debert/chromasync/pkg/blueprint"
	"github.com/arthur-debert/chromasync/pkg/color"
	"github.com/arthur-debert/chromasync/pkg/colortable"
	"github.com/arthur-debert/chromasync/pkg/errors"
	"github.com/arthur-debert/chromasync/pkg/testutil"
	"github.com/arthur-debert/chromasync/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDefaults = blueprint.Defaults{ColorFormat: color.HexWithHash, OutputDirectory: "/cache/out"}

func testTable() *colortable.Table {
	return testutil.Table(map[string]string{
		"background": "#FFFFFF",
		"foreground": "#000000",
		"cursor":     "#112233",
	})
}

func render(t *testing.T, fs types.FS, table *colortable.Table, content string) *blueprint.Result {
	t.Helper()
	testutil.WriteFile(t, fs, "/config/blueprints/test.conf", content)

	result, err := blueprint.NewRenderer(fs, table, testDefaults).Render("/config/blueprints/test.conf")
	require.NoError(t, err)
	return result
}

func TestRender_Body(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "plain", content: "bg={background}\n", want: "bg=#FFFFFF\n"},
		{name: "format_directive", content: "%color-format 6h\n{cursor}\n", want: "112233\n"},
		{name: "composite", content: "{foreground:50:background}\n", want: "#7F7F7F\n"},
		{name: "composite_full_weight", content: "{foreground:100:background}\n", want: "#000000\n"},
		{name: "composite_zero_weight", content: "{foreground:0:background}\n", want: "#FFFFFF\n"},
		{name: "several_per_line", content: "{background} {cursor}{foreground}\n", want: "#FFFFFF #112233#000000\n"},
		{name: "no_placeholders", content: "plain text\n\n", want: "plain text\n\n"},
		{name: "missing_final_newline", content: "{cursor}", want: "#112233\n"},
		{name: "crlf", content: "%color-format 6h\r\na={cursor}\r\nb\r\n", want: "a=112233\nb\n"},
		{name: "directive_after_body", content: "first\n%color-format 6h\n{cursor}\n", want: "first\n%color-format 6h\n#112233\n"},
		{name: "only_directives", content: "%color-format 6h\n", want: ""},
		{name: "empty", content: "", want: ""},
		{name: "double_braces", content: "{{cursor}}\n", want: "{#112233}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := render(t, testutil.NewTestFS(), testTable(), tt.content)
			assert.Equal(t, tt.want, string(result.Content))
		})
	}
}

func TestRender_Result(t *testing.T) {
	fs := testutil.NewTestFS()
	require.NoError(t, fs.MkdirAll("/themes", 0755))

	result := render(t, fs, testTable(), "%output-directory /themes\n{cursor}\n")
	assert.Equal(t, "/config/blueprints/test.conf", result.Blueprint)
	assert.Equal(t, "test.conf", result.Name)
	assert.Equal(t, "/themes", result.OutputDirectory)

	result = render(t, fs, testTable(), "{cursor}\n")
	assert.Equal(t, "/cache/out", result.OutputDirectory, "directives don't leak into the next blueprint")
}

func TestRender_DefaultsPerFile(t *testing.T) {
	fs := testutil.NewTestFS()
	table := testTable()
	renderer := blueprint.NewRenderer(fs, table, testDefaults)

	testutil.WriteFile(t, fs, "/b/one", "%color-format 6h\n{cursor}\n")
	testutil.WriteFile(t, fs, "/b/two", "{cursor}\n")

	one, err := renderer.Render("/b/one")
	require.NoError(t, err)
	two, err := renderer.Render("/b/two")
	require.NoError(t, err)

	assert.Equal(t, "112233\n", string(one.Content))
	assert.Equal(t, "#112233\n", string(two.Content))
}

func TestRender_UnresolvedPlaceholders(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		color   string
	}{
		{name: "unknown_color", content: "a{nope}b\n", want: "ab\n", color: "nope"},
		{name: "unknown_operand", content: "[{cursor:50:nope}]\n", want: "[]\n", color: "cursor:50:nope"},
		{name: "amount_above_100", content: "{cursor:150:background}\n", want: "\n", color: "cursor:150:background"},
		{name: "amount_overflow", content: "{cursor:300:background}\n", want: "\n", color: "cursor:300:background"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := testutil.CaptureLogs(t)

			result := render(t, testutil.NewTestFS(), testTable(), tt.content)
			assert.Equal(t, tt.want, string(result.Content))

			output := logs.String()
			assert.Contains(t, output, `"level":"warn"`)
			assert.Contains(t, output, `"color":"`+tt.color+`"`)
			assert.Contains(t, output, "/config/blueprints/test.conf")
		})
	}
}

func TestRender_CompositeCache(t *testing.T) {
	table := testTable()
	base := table.Len()

	result := render(t, testutil.NewTestFS(), table, "{foreground:50:background}\n{foreground:50:background}\n{background:50:foreground}\n")
	assert.Equal(t, "#7F7F7F\n#7F7F7F\n#7F7F7F\n", string(result.Content))
	assert.Equal(t, base+2, table.Len(), "one entry per ordered pair and amount")

	_, err := blueprint.NewRenderer(testutil.NewTestFS(), table, testDefaults).
		RenderReader("other", strings.NewReader("{nope:50:background}\n"))
	require.NoError(t, err)
	assert.Equal(t, base+2, table.Len(), "failed composites are not cached")
}

func TestRender_DirectiveErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.ErrorCode
		line    int
	}{
		{name: "malformed", content: "%color-format\n{cursor}\n", code: errors.ErrMalformedDirective, line: 1},
		{name: "unknown_name", content: "%color-format 6h\n%font mono\n", code: errors.ErrInvalidDirective, line: 2},
		{name: "bad_format", content: "%color-format rgb\n", code: errors.ErrInvalidDirective, line: 1},
		{name: "missing_directory", content: "%output-directory /nowhere\n", code: errors.ErrInvalidDirective, line: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := testutil.NewTestFS()
			testutil.WriteFile(t, fs, "/b/test.conf", tt.content)

			result, err := blueprint.NewRenderer(fs, testTable(), testDefaults).Render("/b/test.conf")
			require.Error(t, err)
			assert.Nil(t, result)

			assert.True(t, errors.IsErrorCode(err, errors.ErrBlueprint))
			assert.True(t, stderrors.Is(err, errors.New(tt.code, "")), "cause should be %s: %v", tt.code, err)
			assert.Contains(t, err.Error(), "/b/test.conf")
			assert.Equal(t, tt.line, errors.GetErrorDetails(err)["line"])
		})
	}
}

func TestRender_MissingFile(t *testing.T) {
	_, err := blueprint.NewRenderer(testutil.NewTestFS(), testTable(), testDefaults).Render("/missing")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBlueprint))
}

func TestRender_LongLine(t *testing.T) {
	line := strings.Repeat("{cursor}", 20000)
	result := render(t, testutil.NewTestFS(), testTable(), line+"\n")
	assert.Equal(t, strings.Repeat("#112233", 20000)+"\n", string(result.Content))
}

func TestResolver_Resolve(t *testing.T) {
	resolver := blueprint.NewResolver(testTable())

	s, err := resolver.Resolve(blueprint.Placeholder{Kind: blueprint.Plain, Color1: "cursor"}, color.HexWithoutHash)
	require.NoError(t, err)
	assert.Equal(t, "112233", s)

	_, err = resolver.Resolve(blueprint.Placeholder{Kind: blueprint.Plain, Color1: "cursor"}, color.Format("rgb"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "formatting color `cursor`")

	_, err = resolver.Resolve(blueprint.Placeholder{
		Kind: blueprint.Composite, Color1: "cursor", Amount: "256", Color2: "background",
	}, color.HexWithHash)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mix amount `256`")
}
