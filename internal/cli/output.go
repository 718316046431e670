package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/chromasync/pkg/style"
	"github.com/arthur-debert/chromasync/pkg/types"
)

const columnGap = "  "

// printRender reports the outcome of a render pipeline
func printRender(w io.Writer, r types.RenderResult) {
	if len(r.NotFound) > 0 {
		printStyled(w, "Warning", MsgNotFoundFormat, strings.Join(r.NotFound, ", "))
	}
	fmt.Fprintf(w, MsgRenderedFormat, len(r.Rendered))
	if len(r.Failed) > 0 {
		printStyled(w, "Error", MsgFailedFormat, len(r.Failed))
	}
	if r.ScriptRan {
		fmt.Fprintf(w, MsgScriptRanFormat, style.Render(w, "FilePath", r.ScriptPath))
	}
}

// printStyled formats a message and writes it as a single styled line
func printStyled(w io.Writer, name, format string, args ...interface{}) {
	msg := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")
	fmt.Fprintln(w, style.Render(w, name, msg))
}

// printList writes the colorschemes as a table with NAME, LUM (BG) and
// CONT columns
func printList(w io.Writer, result *types.ListResult) {
	rows := [][]string{{MsgListHeaderName, MsgListHeaderLuminance, MsgListHeaderContrast}}
	for _, cs := range result.Colorschemes {
		rows = append(rows, []string{
			cs.Name,
			fmt.Sprintf("%.2f", cs.BackgroundLuminance),
			fmt.Sprintf("%.2f", cs.Contrast),
		})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	for n, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			// Pad before styling so escape codes don't skew the columns
			padded := cell
			if i < len(row)-1 {
				padded += strings.Repeat(" ", widths[i]-len(cell))
			}
			if n == 0 {
				padded = style.Render(w, "TableHeader", padded)
			}
			cells[i] = padded
		}
		fmt.Fprintln(w, strings.Join(cells, columnGap))
	}
}
