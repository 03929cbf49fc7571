package parse

import (
	"strings"

	"amath.elv.sh/pkg/mathml"
	"amath.elv.sh/pkg/symbol"
)

// Recognizes a bracketed sequence of uniform rows, like ((a,b),(c,d)) or
// [[a,b],[c,d]], and replaces it with a table. The sequence is the content of
// the brackets before normalization, so rows alternate with separators.
//
// A vertical bar between the items of a row, like in ((a,|,b),(c,|,d)),
// draws a column line instead of becoming a cell.
func detectMatrix(seq []mathml.Node, closer *symbol.Symbol) []mathml.Node {
	if len(seq) == 0 {
		return seq
	}
	last, ok := seq[len(seq)-1].(*mathml.Element)
	if !ok || last.Kind != mathml.Fenced {
		return seq
	}
	right := closeGlyph(last)
	if right != ")" && right != "]" {
		return seq
	}
	first, ok := seq[0].(*mathml.Element)
	if !ok || first.Kind != mathml.Fenced {
		return seq
	}
	left := openGlyph(first)
	// Parenthesized rows in braces are left alone: {(a,b),(c,d)} is a set of
	// pairs.
	if !(left == "(" && right == ")" && closer.Output != "}") && !(left == "[" && right == "]") {
		return seq
	}

	cells := len(first.Children)
	var rows []*mathml.Element
	for i := 0; i < len(seq); i += 2 {
		row, ok := seq[i].(*mathml.Element)
		if !ok || row.Kind != mathml.Fenced || openGlyph(row) != left ||
			closeGlyph(row) != right || len(row.Children) != cells {
			return seq
		}
		if i+1 < len(seq) {
			if _, ok := separator(seq[i+1]); !ok {
				return seq
			}
		}
		rows = append(rows, row)
	}
	// A lone one-cell row would make ((x)) a 1x1 table; it is kept as nested
	// fences instead.
	if len(rows) == 1 && cells <= 1 {
		return seq
	}

	table := mathml.New(mathml.Table)
	for _, row := range rows {
		table.Children = append(table.Children, tableRow(row))
	}
	lines := columnLines(rows[0])
	if len(lines) > 1 || len(lines) == 1 && lines[0] != "none" {
		table.SetAttr("columnlines", strings.Join(lines, " "))
	}
	if closer.IsInvisible() {
		table.SetAttr("columnalign", "left")
	}
	return []mathml.Node{table}
}

func openGlyph(e *mathml.Element) string  { return e.AttrOr("open", "(") }
func closeGlyph(e *mathml.Element) string { return e.AttrOr("close", ")") }

// Reports whether n is a vertical bar relation, which marks a column line.
func isColumnLine(n mathml.Node) bool {
	e, ok := n.(*mathml.Element)
	return ok && e.Kind == mathml.Row && len(e.Children) == 1 &&
		mathml.IsLeaf(e.Children[0], mathml.Operator, Divides)
}

func tableRow(row *mathml.Element) *mathml.Element {
	tr := mathml.New(mathml.TableRow)
	for _, child := range row.Children {
		if isColumnLine(child) {
			continue
		}
		cell := mathml.New(mathml.TableCell, child)
		if e, ok := child.(*mathml.Element); ok && e.Kind == mathml.Row {
			cell = mathml.New(mathml.TableCell, e.Children...)
		}
		tr.Children = append(tr.Children, cell)
	}
	return tr
}

// Returns the styles of the lines between the columns of the row, with a
// trailing run of identical styles reduced to one.
func columnLines(row *mathml.Element) []string {
	var lines []string
	cells := 0
	style := "none"
	for _, child := range row.Children {
		if isColumnLine(child) {
			style = "solid"
			continue
		}
		if cells > 0 {
			lines = append(lines, style)
		}
		cells++
		style = "none"
	}
	for len(lines) > 1 && lines[len(lines)-1] == lines[len(lines)-2] {
		lines = lines[:len(lines)-1]
	}
	return lines
}
