// Package format renders expectations and suite results as terminal or
// Markdown tables.
package format

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // Fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// Table is a thin builder over go-pretty that renders in one Mode.
type Table struct {
	w    table.Writer
	mode Mode
}

// NewTable returns an empty table that renders in m.
func NewTable(m Mode) *Table {
	w := table.NewWriter()
	style := table.StyleDefault
	if m == ASCII {
		style = table.StyleLight
	}
	// Cohort names and dataset names are shown as written.
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault
	w.SetStyle(style)
	return &Table{w: w, mode: m}
}

// Header sets the column headers.
func (t *Table) Header(cols ...string) *Table {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	t.w.AppendHeader(row)
	return t
}

// Row appends a data row.
func (t *Table) Row(vals ...any) *Table {
	t.w.AppendRow(table.Row(vals))
	return t
}

// Footer appends a footer row.
func (t *Table) Footer(vals ...any) *Table {
	t.w.AppendFooter(table.Row(vals))
	return t
}

// AlignRight right-aligns the given 1-based columns.
func (t *Table) AlignRight(cols ...int) *Table {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, n := range cols {
		cfgs[i] = table.ColumnConfig{Number: n, Align: text.AlignRight}
	}
	t.w.SetColumnConfigs(cfgs)
	return t
}

// Title sets a caption rendered above ASCII tables. Markdown output ignores it.
func (t *Table) Title(s string) *Table {
	if t.mode == ASCII {
		t.w.SetTitle("%s", s)
	}
	return t
}

// String renders the table.
func (t *Table) String() string {
	if t.mode == Markdown {
		return t.w.RenderMarkdown()
	}
	return t.w.Render()
}
