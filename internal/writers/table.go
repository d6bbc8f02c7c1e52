// internal/writers/table.go
package writers

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderTable writes headers and rows as a rounded table. Numeric-looking
// columns are not special-cased; alignment is left throughout except the
// header row, which follows the body.
func RenderTable(w io.Writer, headers []string, rows [][]string) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)

	hdr := make(table.Row, len(headers))
	cfgs := make([]table.ColumnConfig, 0, len(headers))
	for i, h := range headers {
		hdr[i] = h
		cfgs = append(cfgs, table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.AppendHeader(hdr)
	tw.SetColumnConfigs(cfgs)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range headers {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	tw.Render()
	return nil
}
