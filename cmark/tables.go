package cmark

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rgonek/cmark-writer/ast"
)

// writeTable writes a GFM pipe table. Tables with block content cannot be
// expressed as pipe tables: strict mode rejects them, lenient mode renders
// them as HTML.
func (s *state) writeTable(t ast.Table) error {
	if tableContainsBlocks(t) {
		if s.strict() {
			return fmt.Errorf("%w: table contains block-level elements", ErrInvalidStructure)
		}
		s.addWarning(WarningTableHTMLFallback, string(ast.KindTable),
			"table contains block-level elements; rendered as HTML")
		return s.writeHTMLFallback(t)
	}

	headers, err := s.tableCells(t.Headers, "Table Header")
	if err != nil {
		return err
	}
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		if rows[i], err = s.tableCells(row, "Table Cell"); err != nil {
			return err
		}
	}

	delimiters := make([]string, len(headers))
	for i := range headers {
		delimiters[i] = s.delimiterCell(t.Alignments, i)
	}

	var widths []int
	if s.opts.TablePadding {
		widths = columnWidths(headers, rows, delimiters)
		for i := range delimiters {
			delimiters[i] = padDelimiter(delimiters[i], widths[i])
		}
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, tableRow(headers, widths), tableRow(delimiters, nil))
	for _, row := range rows {
		lines = append(lines, tableRow(row, widths))
	}
	s.write(strings.Join(lines, "\n"))
	return nil
}

func tableContainsBlocks(t ast.Table) bool {
	if ast.ContainsBlock(t.Headers) {
		return true
	}
	for _, row := range t.Rows {
		if ast.ContainsBlock(row) {
			return true
		}
	}
	return false
}

// tableCells renders each cell in a table cell frame and escapes pipes.
func (s *state) tableCells(cells []ast.Node, context string) ([]string, error) {
	out := make([]string, len(cells))
	for i, cell := range cells {
		if err := s.checkNoNewline(cell, context); err != nil {
			return nil, err
		}
		inner := s.nested(tableCellFrame())
		inner.checked++
		if err := inner.writeInlines([]ast.Node{cell}); err != nil {
			return nil, err
		}
		out[i] = strings.ReplaceAll(inner.buf.String(), "|", `\|`)
	}
	return out, nil
}

// delimiterCell returns the alignment marker for column col. Missing
// alignments default to centered; without GFM tables every column is plain.
func (s *state) delimiterCell(alignments []ast.Alignment, col int) string {
	if !s.opts.GFM.Tables {
		return "---"
	}
	align := ast.AlignCenter
	if col < len(alignments) {
		align = alignments[col]
	}
	switch align {
	case ast.AlignLeft:
		return ":---"
	case ast.AlignCenter:
		return ":---:"
	case ast.AlignRight:
		return "---:"
	default:
		return "---"
	}
}

func columnWidths(headers []string, rows [][]string, delimiters []string) []int {
	widths := make([]int, len(headers))
	for i := range headers {
		widths[i] = max(len(delimiters[i]), runewidth.StringWidth(headers[i]))
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}
	return widths
}

// padDelimiter stretches the dashes of d to width, keeping its colons.
func padDelimiter(d string, width int) string {
	colons := strings.Count(d, ":")
	dashes := strings.Repeat("-", max(width-colons, 1))
	switch {
	case strings.HasPrefix(d, ":") && strings.HasSuffix(d, ":"):
		return ":" + dashes + ":"
	case strings.HasPrefix(d, ":"):
		return ":" + dashes
	case strings.HasSuffix(d, ":"):
		return dashes + ":"
	default:
		return dashes
	}
}

// tableRow joins cells into "| a | b |". Cells are padded to widths when
// widths is non-nil.
func tableRow(cells []string, widths []int) string {
	var sb strings.Builder
	sb.WriteString("|")
	for i, cell := range cells {
		sb.WriteString(" ")
		sb.WriteString(cell)
		if i < len(widths) {
			sb.WriteString(strings.Repeat(" ", max(widths[i]-runewidth.StringWidth(cell), 0)))
		}
		sb.WriteString(" |")
	}
	return sb.String()
}
