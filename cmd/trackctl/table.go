package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type tableColumn struct {
	Title string
	Align text.Align
}

// renderTable draws rows under the given columns. Footer is skipped when empty
func renderTable(columns []tableColumn, rows []table.Row, footer table.Row) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, 0, len(columns))
	configs := make([]table.ColumnConfig, 0, len(columns))
	for i, column := range columns {
		header = append(header, column.Title)
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       column.Align,
			AlignFooter: column.Align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.AppendHeader(header)
	tw.AppendRows(rows)
	if len(footer) > 0 {
		tw.AppendFooter(footer)
	}
	tw.SetColumnConfigs(configs)
	return tw.Render()
}
