// pkg/blueprint/placeholder_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test the placeholder scanner and line replacement

package blueprint_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/chromasync/pkg/blueprint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(found []blueprint.Placeholder) []string {
	out := make([]string, len(found))
	for i, p := range found {
		out[i] = p.Text()
	}
	return out
}

func TestScanPlaceholders(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "plain", line: "bg = {background}", want: []string{"background"}},
		{name: "composite", line: "{foreground:50:background}", want: []string{"foreground:50:background"}},
		{name: "several", line: "{a}{b} and {c:1:d}", want: []string{"a", "b", "c:1:d"}},
		{name: "double_braces", line: "{{background}}", want: []string{"background"}},
		{name: "unicode_name", line: "{fondo_é}", want: []string{"fondo_é"}},
		{name: "invalid_then_valid", line: "{a:b} {c}", want: []string{"c"}},
		{name: "missing_amount", line: "{a::b}", want: []string{}},
		{name: "two_fields", line: "{a:1}", want: []string{}},
		{name: "empty", line: "{}", want: []string{}},
		{name: "unterminated", line: "{background", want: []string{}},
		{name: "unterminated_composite", line: "{a:1:b", want: []string{}},
		{name: "spaces", line: "{ background }", want: []string{}},
		{name: "hyphen", line: "{color-01}", want: []string{}},
		{name: "no_braces", line: "background", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, texts(blueprint.ScanPlaceholders(tt.line)))
		})
	}
}

func TestScanPlaceholders_Fields(t *testing.T) {
	found := blueprint.ScanPlaceholders("x {a} {b:75:c}")
	require.Len(t, found, 2)

	assert.Equal(t, blueprint.Placeholder{Kind: blueprint.Plain, Color1: "a", Start: 2, End: 5}, found[0])
	assert.Equal(t, blueprint.Placeholder{
		Kind: blueprint.Composite, Color1: "b", Amount: "75", Color2: "c", Start: 6, End: 14,
	}, found[1])
}

func TestReplacePlaceholders(t *testing.T) {
	upper := func(p blueprint.Placeholder) string { return strings.ToUpper(p.Text()) }

	assert.Equal(t, "x A y B:1:C z", blueprint.ReplacePlaceholders("x {a} y {b:1:c} z", upper))
	assert.Equal(t, "{A}", blueprint.ReplacePlaceholders("{{a}}", upper))
	assert.Equal(t, "no placeholders", blueprint.ReplacePlaceholders("no placeholders", upper))
	assert.Equal(t, "", blueprint.ReplacePlaceholders("{a}", func(blueprint.Placeholder) string { return "" }))
}
