// Package parse implements the AsciiMath parser.
//
// The grammar has three tiers:
//
//	S ::= v | lEr | uS | bSS | v!    simple expression
//	I ::= S_S | S^S | S_S^S | S      intermediate expression
//	E ::= IE | I/I                   expression
//
// where v is a constant, l and r are left and right brackets, u and b are
// unary and binary operators. The parser builds a Presentation MathML tree
// directly; brackets become Fenced elements carrying their glyphs as
// attributes.
//
// Malformed input never stops the parser: unterminated brackets extend to the
// end of the input and missing operands are replaced by a placeholder box. The
// problems are reported as non-fatal errors alongside the tree.
package parse

import (
	"errors"

	"amath.elv.sh/pkg/diag"
	"amath.elv.sh/pkg/mathml"
	"amath.elv.sh/pkg/symbol"
)

// Source describes a piece of source code.
type Source struct {
	Name string
	Code string
}

// SourceForTest returns a Source used for testing.
func SourceForTest(code string) Source {
	return Source{Name: "[test]", Code: code}
}

// Tree is the result of parsing a Source.
type Tree struct {
	// A Math element holding the top-level expression sequence.
	Root   *mathml.Element
	Source Source
}

// Expr returns the parsed expression: nil if the source is empty, the sole
// element if there is just one, or a Row of all of them.
func (t Tree) Expr() *mathml.Element {
	switch len(t.Root.Children) {
	case 0:
		return nil
	case 1:
		if e, ok := t.Root.Children[0].(*mathml.Element); ok {
			return e
		}
	}
	return mathml.New(mathml.Row, t.Root.Children...)
}

// Config keeps configuration options when parsing.
type Config struct {
	// The symbol table. If nil, the current table of symbol.Default is used.
	Symbols *symbol.Table
	// The character between the integral and fractional part of numbers. If
	// zero, '.' is used.
	DecimalSign rune
	// Whether phi and varPhi render as φ and ϕ respectively, instead of the
	// other way around.
	LegacyPhi bool
	// The maximum nesting depth of expressions. If zero, DefaultMaxDepth is
	// used.
	MaxDepth int
}

// DefaultMaxDepth is the maximum nesting depth used when Config.MaxDepth is
// zero.
const DefaultMaxDepth = 256

func (cfg Config) table() *symbol.Table {
	t := cfg.Symbols
	if t == nil {
		t = symbol.Default.Table()
	}
	if cfg.LegacyPhi {
		t = t.LegacyPhi()
	}
	return t
}

// Glyphs inserted by the parser.
const (
	// Stands in for a missing operand.
	Placeholder = "□"
	// A vertical bar that does not start an absolute value: "divides" or
	// "such that".
	Divides = "∣"
)

// Error is a parse error.
type Error = diag.Error[ErrorTag]

// ErrorTag parameterizes [diag.Error] to define [Error].
type ErrorTag struct{}

// ErrorTag returns "parse error".
func (ErrorTag) ErrorTag() string { return "parse error" }

// Causes of parse errors, which can be matched with errors.Is.
var (
	ErrUnterminatedBracket = errors.New("unterminated bracket")
	ErrMissingOperand      = errors.New("missing operand")
	ErrTooDeep             = errors.New("expression nested too deeply")
)

// Parse parses the given source. It always returns a tree, even when the
// source is malformed. The error, if not nil, packs one or more *Error values,
// which can be retrieved with UnpackErrors.
func Parse(src Source, cfg Config) (Tree, error) {
	p := newParser(src, cfg)
	seq, _, _ := p.parseExpr(src.Code, false)
	return Tree{mathml.New(mathml.Math, seq...), src}, diag.PackErrors(p.errors)
}

// UnpackErrors returns the constituent parse errors if the given error contains
// one or more parse errors. Otherwise it returns nil.
func UnpackErrors(e error) []*Error {
	if errs := diag.UnpackErrors[ErrorTag](e); len(errs) > 0 {
		return errs
	}
	return nil
}
