package cli

import (
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/chromasync/pkg/style"
	"github.com/spf13/cobra"
)

// formatBold returns the string formatted as bold
func formatBold(s string) string {
	// Only apply formatting if output is a terminal
	if !style.IsTerminal(os.Stdout) {
		return s
	}
	return style.GetStyle("Header").Render(s)
}

// formatUpper returns the string in uppercase
func formatUpper(s string) string {
	return strings.ToUpper(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     formatUpper,
		"boldUpper": formatBoldUpper,
	})
}
