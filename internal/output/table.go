// internal/output/table.go
package output

import (
	"fmt"
	"io"

	"github.com/abhishek-pokhrel/DNSProbe/internal/scan"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"
)

// RenderTable renders the report as a colorized grid, one row per resolved
// record. An empty report renders nothing.
func RenderTable(w io.Writer, report *scan.Report) {
	if len(report.Rows) == 0 {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(table.Row{"Host", "Record Type", "Result", "Time Taken (s)"})
	for _, row := range report.Rows {
		t.AppendRow(table.Row{
			color.YellowString(row.Host),
			color.CyanString(row.Type),
			color.GreenString(row.Value),
			color.MagentaString(fmt.Sprintf("%.4f", row.Elapsed.Seconds())),
		})
	}
	t.Render()
}
