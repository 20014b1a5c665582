package mdfmt

import "strings"

// column is one pipe-table column under construction. cells[0] is the
// header; body cells follow in document order.
type column struct {
	align alignment
	cells []string
}

// table is a pipe table accumulated by the parser. Every column holds
// the same number of cells at all times; addRow extends all of them
// atomically.
type table struct {
	columns []column
}

// newTable builds a table from confirmed header fields and the
// alignments resolved from the separator row. Both slices have one entry
// per column.
func newTable(headers []string, aligns []alignment) *table {
	cols := make([]column, len(headers))
	for i, h := range headers {
		cols[i] = column{align: aligns[i], cells: []string{h}}
	}
	return &table{columns: cols}
}

// addRow appends one cell to every column. fields must hold exactly one
// entry per column.
func (t *table) addRow(fields []string) {
	for i := range t.columns {
		t.columns[i].cells = append(t.columns[i].cells, fields[i])
	}
}

// render writes the canonical aligned form: header row, separator row,
// then body rows, every cell padded to its column's width.
func (t *table) render(out *strings.Builder) {
	widths := t.widths()
	rows := len(t.columns[0].cells)
	t.renderRow(out, widths, 0)
	t.renderSeparator(out, widths)
	for i := 1; i < rows; i++ {
		t.renderRow(out, widths, i)
	}
}

// widths returns each column's display width: the maximum width over its
// trimmed cells, floored at 1 so the separator holds at least one dash
// even for an all-empty column.
func (t *table) widths() []int {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		w := 1
		for _, cell := range col.cells {
			if cw := displayWidth(strings.TrimSpace(cell)); cw > w {
				w = cw
			}
		}
		widths[i] = w
	}
	return widths
}

func (t *table) renderRow(out *strings.Builder, widths []int, row int) {
	out.WriteByte('|')
	for i, col := range t.columns {
		out.WriteString(padCell(col.cells[row], widths[i]))
		out.WriteByte('|')
	}
	out.WriteByte('\n')
}

func (t *table) renderSeparator(out *strings.Builder, widths []int) {
	out.WriteByte('|')
	for i, col := range t.columns {
		switch col.align {
		case alignLeft, alignCenter:
			out.WriteByte(':')
		default:
			out.WriteByte('-')
		}
		out.WriteString(strings.Repeat("-", widths[i]))
		switch col.align {
		case alignRight, alignCenter:
			out.WriteByte(':')
		default:
			out.WriteByte('-')
		}
		out.WriteByte('|')
	}
	out.WriteByte('\n')
}

// padCell renders one cell: a leading space, the trimmed content, then
// spaces until the cell spans width+2 display columns. Content is never
// truncated; width is already the maximum over the whole column.
func padCell(cell string, width int) string {
	padded := " " + strings.TrimSpace(cell)
	if pad := width + 2 - displayWidth(padded); pad > 0 {
		return padded + strings.Repeat(" ", pad)
	}
	return padded
}
