// Package render turns MathML trees back into text.
//
// The linear form is AsciiMath that parses to the same tree, though not
// necessarily the text the tree was parsed from: symbols are written with
// their canonical names and redundant brackets are dropped. The debug form
// shows the structure of the tree with MathML tag names, like
// mfrac(mn(2) mn(3)).
package render

import (
	"strings"

	"amath.elv.sh/pkg/mathml"
	"amath.elv.sh/pkg/parse"
	"amath.elv.sh/pkg/symbol"
)

// String renders n in linear notation using the current symbol table if
// linear is true, and in the debug form otherwise.
func String(n mathml.Node, linear bool) string {
	if linear {
		return Linear(n, symbol.Default.Table())
	}
	return Debug(n)
}

// Linear renders n in linear notation, using the names in t.
func Linear(n mathml.Node, t *symbol.Table) string {
	w := &linearWriter{table: t}
	w.node(n)
	return w.sb.String()
}

type linearWriter struct {
	table *symbol.Table
	sb    strings.Builder
	// Close glyph of the innermost fence, which determines the brackets of
	// table rows.
	closer string
}

func (w *linearWriter) write(s string) { w.sb.WriteString(s) }

func (w *linearWriter) node(n mathml.Node) {
	switch n := n.(type) {
	case mathml.CharData:
		w.write(string(n))
	case *mathml.Element:
		w.element(n)
	}
}

func (w *linearWriter) element(e *mathml.Element) {
	switch e.Kind {
	case mathml.Number:
		content, _ := e.Content()
		w.write(content)
	case mathml.Identifier, mathml.Operator:
		if isPlaceholder(e) {
			return
		}
		content, _ := e.Content()
		w.write(w.name(content))
	case mathml.Text:
		content, _ := e.Content()
		w.text(content)
	case mathml.Space:
	case mathml.Row:
		w.row(e, false)
	case mathml.Math, mathml.TableCell:
		w.seq(e.Children)
	case mathml.Fenced:
		w.fenced(e)
	case mathml.Fraction:
		w.fractionPart(child(e, 0))
		w.write("/")
		w.fractionPart(child(e, 1))
	case mathml.Sub, mathml.Sup, mathml.SubSup:
		w.scripts(e.Kind, e.Children)
	case mathml.Under, mathml.Over, mathml.UnderOver:
		w.underOver(e)
	case mathml.SquareRoot:
		w.write("sqrt")
		w.arg(child(e, 0))
	case mathml.Root:
		w.write("root")
		w.arg(child(e, 1))
		w.arg(child(e, 0))
	case mathml.Style:
		w.style(e)
	case mathml.Enclose:
		w.write("cancel")
		w.arg(child(e, 0))
	case mathml.Table:
		w.matrix(e)
	case mathml.TableRow:
		w.tableRow(e, nil)
	}
}

func child(e *mathml.Element, i int) mathml.Node {
	if i < len(e.Children) {
		return e.Children[i]
	}
	return mathml.Leaf(mathml.Operator, parse.Placeholder)
}

// Returns the canonical name of a glyph, or the glyph itself.
func (w *linearWriter) name(glyph string) string {
	if glyph == parse.Divides {
		return "|"
	}
	if s := w.table.Canonical(glyph); s != nil {
		return s.Name
	}
	return glyph
}

func (w *linearWriter) text(s string) {
	switch {
	case !strings.Contains(s, ")"):
		w.write("text(" + s + ")")
	case !strings.Contains(s, `"`):
		w.write(`"` + s + `"`)
	default:
		w.write("mbox{" + s + "}")
	}
}

func (w *linearWriter) seq(nodes []mathml.Node) {
	first := true
	for _, n := range nodes {
		if isSpace(n) {
			continue
		}
		if !first {
			w.write(" ")
		}
		first = false
		w.node(n)
	}
}

func isSpace(n mathml.Node) bool {
	e, ok := n.(*mathml.Element)
	return ok && e.Kind == mathml.Space
}

// Returns the children of a row that are not spaces.
func visible(e *mathml.Element) []mathml.Node {
	var nodes []mathml.Node
	for _, n := range e.Children {
		if !isSpace(n) {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Writes a row, in parentheses if it is an operand that is not a single item.
func (w *linearWriter) row(e *mathml.Element, operand bool) {
	for _, attr := range []string{"class", "id"} {
		if v, ok := e.Attr(attr); ok {
			w.write(attr + "(" + v + ")")
			inner := e.Copy()
			inner.Attrs = nil
			w.write("(")
			w.row(inner, false)
			w.write(")")
			return
		}
	}
	nodes := visible(e)
	if isFactorial(nodes) {
		w.node(nodes[0])
		w.write("!")
		return
	}
	if operand && len(nodes) > 1 {
		w.write("(")
		w.seq(nodes)
		w.write(")")
		return
	}
	w.seq(nodes)
}

func isFactorial(nodes []mathml.Node) bool {
	return len(nodes) == 2 && mathml.IsLeaf(nodes[1], mathml.Operator, "!") &&
		!isSpace(nodes[0])
}

// The box standing in for a missing operand is written as nothing, so that
// the output is missing the same operand.
func isPlaceholder(n mathml.Node) bool {
	return mathml.IsLeaf(n, mathml.Operator, parse.Placeholder)
}

// Writes an operand in parentheses.
func (w *linearWriter) arg(n mathml.Node) {
	if isPlaceholder(n) {
		return
	}
	w.write("(")
	w.node(n)
	w.write(")")
}

func (w *linearWriter) fractionPart(n mathml.Node) {
	if e, ok := n.(*mathml.Element); ok {
		switch e.Kind {
		case mathml.Row:
			w.row(e, true)
			return
		case mathml.Fraction:
			w.arg(e)
			return
		}
	}
	w.node(n)
}

// Writes a script or the base of scripts. Anything that binds looser than a
// script is parenthesized.
func (w *linearWriter) scriptPart(n mathml.Node) {
	if e, ok := n.(*mathml.Element); ok {
		switch e.Kind {
		case mathml.Row:
			w.row(e, true)
			return
		case mathml.Fraction, mathml.Sub, mathml.Sup, mathml.SubSup:
			w.arg(e)
			return
		case mathml.Under, mathml.Over, mathml.UnderOver:
			if w.accent(e) == nil {
				w.arg(e)
				return
			}
		}
	}
	w.node(n)
}

func (w *linearWriter) scripts(k mathml.Kind, children []mathml.Node) {
	get := func(i int) mathml.Node {
		if i < len(children) {
			return children[i]
		}
		return mathml.Leaf(mathml.Operator, parse.Placeholder)
	}
	w.scriptPart(get(0))
	switch k {
	case mathml.Sub, mathml.Under:
		w.write("_")
		w.scriptPart(get(1))
	case mathml.Sup, mathml.Over:
		w.write("^")
		w.scriptPart(get(1))
	default:
		w.write("_")
		w.scriptPart(get(1))
		w.write("^")
		w.scriptPart(get(2))
	}
}

// Returns the accent symbol of an under or over element, or nil if the second
// child is not an accent glyph.
func (w *linearWriter) accent(e *mathml.Element) *symbol.Symbol {
	if e.Kind == mathml.UnderOver || len(e.Children) != 2 {
		return nil
	}
	glyph, ok := mathml.Content(e.Children[1])
	if !ok {
		return nil
	}
	if s := w.table.Canonical(glyph); s != nil && s.IsAccent() && s.Kind == e.Kind {
		return s
	}
	return nil
}

func (w *linearWriter) underOver(e *mathml.Element) {
	if s := w.accent(e); s != nil {
		w.write(s.Name)
		w.arg(e.Children[0])
		return
	}
	if len(e.Children) > 0 && w.takesLimits(e.Children[0]) {
		w.scripts(e.Kind, e.Children)
		return
	}
	if e.Kind == mathml.Over {
		w.write("overSet")
	} else {
		w.write("underSet")
	}
	w.arg(child(e, 1))
	w.arg(child(e, 0))
}

// Reports whether scripts on n are written under and over it, so that they
// can be written with _ and ^.
func (w *linearWriter) takesLimits(n mathml.Node) bool {
	e, ok := n.(*mathml.Element)
	if !ok {
		return false
	}
	if s := w.accent(e); s != nil {
		return s.Arity == symbol.UnaryUnderOver
	}
	glyph, ok := mathml.Content(e)
	if !ok {
		return false
	}
	s := w.table.Canonical(glyph)
	return s != nil && s.Arity == symbol.UnderOver
}

func (w *linearWriter) style(e *mathml.Element) {
	var inner mathml.Node = mathml.New(mathml.Row, e.Children...)
	if len(e.Children) == 1 {
		inner = e.Children[0]
	}
	// Attributes are written outermost first.
	closing := 0
	for _, a := range e.Attrs {
		switch a.Name {
		case "mathvariant":
			if s := w.table.FontName(a.Value); s != nil {
				w.write(s.Name + "(")
				closing++
			}
		case "mathcolor":
			w.write("color(" + a.Value + ")(")
			closing++
		}
	}
	w.node(inner)
	w.write(strings.Repeat(")", closing))
}

func (w *linearWriter) fenced(e *mathml.Element) {
	open, close := e.AttrOr("open", "("), e.AttrOr("close", ")")
	if len(e.Children) == 1 && !isTable(e.Children[0]) {
		if s := w.table.FenceName(open, close); s != nil {
			w.write(s.Name)
			w.arg(e.Children[0])
			return
		}
	}
	w.write(w.bracket(open, "{:", symbol.LeftBracket))
	saved := w.closer
	w.closer = close
	seps := e.AttrOr("separators", ",")
	for i, c := range e.Children {
		if i > 0 {
			w.write(separator(seps, i-1))
		}
		w.node(c)
	}
	w.closer = saved
	w.write(w.bracket(close, ":}", symbol.RightBracket))
}

// Returns the name of a bracket glyph, or invisible if the glyph is empty.
func (w *linearWriter) bracket(glyph, invisible string, a symbol.Arity) string {
	if glyph == "" {
		return invisible
	}
	if s := w.table.Canonical(glyph); s != nil &&
		(s.Arity == a || s.Arity == symbol.LeftRightBracket) {
		return s.Name
	}
	return glyph
}

// Returns the i-th separator. The last separator repeats.
func separator(seps string, i int) string {
	if seps == "" {
		return ","
	}
	if i >= len(seps) {
		i = len(seps) - 1
	}
	return seps[i : i+1]
}

func isTable(n mathml.Node) bool {
	e, ok := n.(*mathml.Element)
	return ok && e.Kind == mathml.Table
}

func (w *linearWriter) matrix(e *mathml.Element) {
	var lines []string
	if v, ok := e.Attr("columnlines"); ok {
		lines = strings.Fields(v)
	}
	for i, r := range e.Children {
		if i > 0 {
			w.write(",")
		}
		if row, ok := r.(*mathml.Element); ok {
			w.tableRow(row, lines)
		}
	}
}

// Rows are written in parentheses, or in square brackets inside braces where
// parenthesized rows would be read as a set of tuples.
func (w *linearWriter) tableRow(row *mathml.Element, lines []string) {
	open, close := "(", ")"
	if w.closer == "}" {
		open, close = "[", "]"
	}
	w.write(open)
	for i, cell := range row.Children {
		if i > 0 {
			w.write(",")
			if columnLine(lines, i-1) == "solid" {
				w.write("|,")
			}
		}
		w.node(cell)
	}
	w.write(close)
}

// Returns the style of the line after the i-th column. The last style
// repeats.
func columnLine(lines []string, i int) string {
	if len(lines) == 0 {
		return "none"
	}
	if i >= len(lines) {
		i = len(lines) - 1
	}
	return lines[i]
}
