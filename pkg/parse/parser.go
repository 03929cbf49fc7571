package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"amath.elv.sh/pkg/diag"
	"amath.elv.sh/pkg/mathml"
	"amath.elv.sh/pkg/symbol"
)

// parser maintains the mutable state of one Parse call.
type parser struct {
	srcName  string
	src      string
	table    *symbol.Table
	decimal  rune
	maxDepth int

	// Number of brackets enclosing the current position.
	depth int
	// Nesting level of simple expressions, bounded by maxDepth.
	level   int
	tooDeep bool
	// Classes of the last two tokens looked up.
	prev, cur symbol.Arity
	// Remaining number of definition expansions.
	expansions int
	// Outcomes of vertical bars already tried as absolute values, keyed by
	// the remaining input and the bracket depth.
	bars map[barKey]bool

	errors []*Error
}

type barKey struct {
	rest  string
	depth int
}

func newParser(src Source, cfg Config) *parser {
	p := &parser{
		srcName: src.Name, src: src.Code, table: cfg.table(),
		decimal: cfg.DecimalSign, maxDepth: cfg.MaxDepth,
		expansions: len(src.Code) + 1,
	}
	if p.decimal == 0 {
		p.decimal = '.'
	}
	if p.maxDepth <= 0 {
		p.maxDepth = DefaultMaxDepth
	}
	return p
}

// Returns the offset of rest in the source. Definition expansions make rest
// longer than the source text it stands for, so the result is clamped.
func (p *parser) pos(rest string) int {
	pos := len(p.src) - len(rest)
	if pos < 0 {
		return 0
	}
	return pos
}

func (p *parser) errorf(rest string, size int, cause error, format string, args ...any) {
	from := p.pos(rest)
	to := from + size
	if to > len(p.src) {
		to = len(p.src)
	}
	p.errors = append(p.errors, &Error{
		Message: fmt.Sprintf(format, args...),
		Context: *diag.NewContext(p.srcName, p.src, diag.Ranging{From: from, To: to}),
		Cause:   cause,
	})
}

// Diagnostics recorded since a checkpoint are dropped when a speculative parse
// is abandoned.
type checkpoint struct {
	errors  int
	tooDeep bool
}

func (p *parser) checkpoint() checkpoint { return checkpoint{len(p.errors), p.tooDeep} }

func (p *parser) rollback(c checkpoint) {
	p.errors = p.errors[:c.errors]
	p.tooDeep = c.tooDeep
}

func leaf(k mathml.Kind, text string) *mathml.Element { return mathml.Leaf(k, text) }

func placeholder() *mathml.Element { return leaf(mathml.Operator, Placeholder) }

func space() *mathml.Element { return mathml.New(mathml.Space).SetAttr("width", "1ex") }

// Returns a leaf standing for the symbol itself, used when an operator has
// no operand.
func bare(sym *symbol.Symbol) *mathml.Element {
	kind := sym.Kind
	if !kind.IsToken() {
		kind = mathml.Operator
	}
	text := sym.Output
	if text == "" {
		text = sym.Name
	}
	return leaf(kind, text)
}

// E ::= IE | I/I
//
// Parses a sequence of intermediate expressions. Inside brackets, the
// sequence ends at a right bracket, and also at a vertical bar unless
// rightBracket is true. The closing token is consumed and returned; it is nil
// when the sequence ends at the end of input.
func (p *parser) parseExpr(rest string, rightBracket bool) ([]mathml.Node, *symbol.Symbol, string) {
	var seq []mathml.Node
	var tok token
	for {
		var node *mathml.Element
		node, rest = p.parseI(skip(rest, 0))
		tok = p.lookup(rest)
		if tok.is(symbol.Infix) && tok.sym.Name == "/" {
			rest = skip(rest, tok.size)
			var den *mathml.Element
			den, rest = p.parseI(rest)
			if den == nil {
				p.errorf(rest, 0, ErrMissingOperand, "missing denominator")
				den = placeholder()
			}
			if node == nil {
				node = placeholder()
			}
			seq = append(seq, mathml.New(tok.sym.Kind, strip(node), strip(den)))
			tok = p.lookup(rest)
		} else if node != nil {
			seq = append(seq, node)
		}
		if tok.eof() {
			break
		}
		a := tok.sym.Arity
		if p.depth > 0 && (a == symbol.RightBracket || a == symbol.LeftRightBracket && !rightBracket) {
			break
		}
	}
	if !tok.is(symbol.RightBracket) && !tok.is(symbol.LeftRightBracket) {
		return seq, nil, rest
	}
	seq = detectMatrix(seq, tok.sym)
	return seq, tok.sym, skip(rest, tok.size)
}

// I ::= S_S | S^S | S_S^S | S
//
// Fractions bind looser than scripts and are handled in parseExpr.
func (p *parser) parseI(rest string) (*mathml.Element, string) {
	rest = skip(rest, 0)
	first := p.lookup(rest)
	node, rest := p.parseS(rest)
	tok := p.lookup(rest)
	if !tok.is(symbol.Infix) || tok.sym.Name == "/" {
		return node, rest
	}
	if node == nil {
		node = placeholder()
	}
	rest = skip(rest, tok.size)
	script, rest := p.parseScript(rest)

	underOver := first.is(symbol.UnderOver) || first.is(symbol.UnaryUnderOver)
	switch {
	case tok.sym.Name == "_":
		if next := p.lookup(rest); next.isName("^") {
			var sup *mathml.Element
			sup, rest = p.parseScript(skip(rest, next.size))
			kind := mathml.SubSup
			if underOver {
				kind = mathml.UnderOver
			}
			node = mathml.New(kind, node, script, sup)
		} else {
			kind := mathml.Sub
			if underOver {
				kind = mathml.Under
			}
			node = mathml.New(kind, node, script)
		}
	case tok.sym.Name == "^" && underOver:
		node = mathml.New(mathml.Over, node, script)
	default:
		node = mathml.New(tok.sym.Kind, node, script)
	}

	// A function with scripts still applies to what follows, like sin^2 x.
	if first.sym == nil || !first.sym.IsFunction() {
		return node, rest
	}
	next := p.lookup(rest)
	if next.eof() || next.is(symbol.Infix) || next.is(symbol.RightBracket) {
		return node, rest
	}
	arg, argRest := p.parseI(rest)
	if arg == nil {
		return node, rest
	}
	return mathml.New(mathml.Row, node, arg), argRest
}

func (p *parser) parseScript(rest string) (*mathml.Element, string) {
	script, after := p.parseS(rest)
	if script == nil {
		p.errorf(rest, 0, ErrMissingOperand, "missing script")
		return placeholder(), after
	}
	return strip(script), after
}

// S ::= v | lEr | uS | bSS | v!
//
// Returns nil without consuming anything at the end of input, and at a right
// bracket inside brackets.
func (p *parser) parseS(rest string) (*mathml.Element, string) {
	rest = skip(rest, 0)
	tok := p.lookup(rest)
	if tok.eof() || tok.is(symbol.RightBracket) && p.depth > 0 {
		return nil, rest
	}
	if p.level >= p.maxDepth {
		if !p.tooDeep {
			p.tooDeep = true
			p.errorf(rest, len(rest), ErrTooDeep, "expression nested more than %d levels deep", p.maxDepth)
		}
		return placeholder(), ""
	}
	p.level++
	defer func() { p.level-- }()

	if tok.is(symbol.Definition) && p.expansions > 0 {
		p.expansions--
		rest = tok.sym.Output + skip(rest, tok.size)
		tok = p.lookup(rest)
		if tok.eof() {
			return nil, rest
		}
	}

	sym := tok.sym
	switch sym.Arity {
	case symbol.Const, symbol.UnderOver:
		return p.parseConst(tok, rest)
	case symbol.LeftBracket:
		return p.parseLeftBracket(tok, rest)
	case symbol.LeftRightBracket:
		return p.parseBar(tok, rest)
	case symbol.Text:
		return p.parseText(tok, rest)
	case symbol.Unary, symbol.UnaryUnderOver:
		return p.parseUnary(tok, rest)
	case symbol.Binary:
		return p.parseBinary(tok, rest)
	case symbol.Infix:
		return leaf(mathml.Operator, sym.Output), skip(rest, tok.size)
	case symbol.Space:
		row := mathml.New(mathml.Row, space(), bare(sym), space())
		return row, skip(rest, tok.size)
	default:
		// Right brackets outside brackets, and definitions that expand to
		// themselves.
		return bare(sym), skip(rest, tok.size)
	}
}

// v | v!
func (p *parser) parseConst(tok token, rest string) (*mathml.Element, string) {
	node := bare(tok.sym)
	rest = skip(rest, tok.size)
	if strings.HasPrefix(rest, "!") {
		// Not when ! starts a longer symbol like != or !in.
		if name, _ := p.table.Lookup(rest); name == "" {
			return mathml.New(mathml.Row, node, leaf(mathml.Operator, "!")), rest[1:]
		}
	}
	return node, rest
}

// lEr
func (p *parser) parseLeftBracket(tok token, rest string) (*mathml.Element, string) {
	open := p.pos(rest)
	p.depth++
	seq, closer, rest := p.parseExpr(skip(rest, tok.size), true)
	p.depth--

	fence := mathml.New(mathml.Fenced, seq...)
	if tok.sym.Output != "(" {
		fence.SetAttr("open", glyph(tok.sym))
	}
	switch {
	case closer == nil:
		// The rest of the input is dropped once the nesting limit is hit.
		if !p.tooDeep {
			p.errorfAt(open, tok.size, ErrUnterminatedBracket, "unterminated bracket %s", tok.sym.Name)
		}
		fence.SetAttr("close", "")
	case closer.Output != ")":
		fence.SetAttr("close", glyph(closer))
	}
	return normalize(fence), rest
}

func glyph(bracket *symbol.Symbol) string {
	if bracket.IsInvisible() {
		return ""
	}
	return bracket.Output
}

func (p *parser) errorfAt(pos, size int, cause error, format string, args ...any) {
	p.errorf(p.src[pos:], size, cause, format, args...)
}

// A vertical bar starts an absolute value when the expression after it is
// closed by another bar and does not start with a comma. Otherwise it is a
// relation, like in {x | x > 0}.
func (p *parser) parseBar(tok token, rest string) (*mathml.Element, string) {
	after := skip(rest, tok.size)
	key := barKey{rest, p.depth}
	abs, known := p.bars[key]
	if known && !abs || strings.HasPrefix(after, ",") {
		return barRelation(), after
	}

	saved := p.checkpoint()
	p.depth++
	seq, closer, exprRest := p.parseExpr(after, false)
	p.depth--
	abs = closer != nil && closer.Output == tok.sym.Output
	if p.bars == nil {
		p.bars = make(map[barKey]bool)
	}
	p.bars[key] = abs
	if !abs {
		p.rollback(saved)
		return barRelation(), after
	}

	fence := mathml.New(mathml.Fenced, seq...)
	fence.SetAttr("open", tok.sym.Output)
	fence.SetAttr("close", closer.Output)
	return normalize(fence), exprRest
}

func barRelation() *mathml.Element {
	return mathml.New(mathml.Row, leaf(mathml.Operator, Divides))
}

// Delimiters of verbatim text.
var textPartners = map[rune]rune{
	'{': '}', '(': ')', '[': ']', '|': '|', '\u2329': '\u232a', '≪': '≫', '"': '"',
}

// text(...), mbox{...} and "..."
func (p *parser) parseText(tok token, rest string) (*mathml.Element, string) {
	if tok.sym.Name != `"` {
		rest = skip(rest, tok.size)
	}
	row := mathml.New(mathml.Row)
	opener, openerSize := utf8.DecodeRuneInString(rest)
	var content string
	partner, ok := textPartners[opener]
	switch {
	case rest == "":
		p.errorf(rest, 0, ErrUnterminatedBracket, "missing text after %s", tok.sym.Name)
	case !ok:
		p.errorf(rest, openerSize, ErrUnterminatedBracket, "text should start with a bracket or a quote")
		content, rest = rest, ""
	default:
		i := strings.IndexRune(rest[openerSize:], partner)
		if i == -1 {
			p.errorf(rest, openerSize, ErrUnterminatedBracket, "unterminated text")
			content, rest = rest[openerSize:], ""
		} else {
			content = rest[openerSize : openerSize+i]
			rest = skip(rest, openerSize+i+utf8.RuneLen(partner))
		}
	}
	if strings.HasPrefix(content, " ") {
		row.Children = append(row.Children, space())
	}
	row.Children = append(row.Children, leaf(tok.sym.Kind, content))
	if content != "" && strings.HasSuffix(content, " ") {
		row.Children = append(row.Children, space())
	}
	return row, rest
}

// uS
func (p *parser) parseUnary(tok token, rest string) (*mathml.Element, string) {
	sym := tok.sym
	after := skip(rest, tok.size)
	saved := p.checkpoint()
	operand, operandRest := p.parseS(after)
	if operand == nil {
		return bare(sym), after
	}

	if sym.IsFunction() {
		// A function name followed by a script, a fraction, a bar or a comma,
		// or a one-letter function not followed by a parenthesis, does not
		// take an operand here.
		name := rest[:tok.size]
		if after != "" && (strings.IndexByte("^_/|,", after[0]) >= 0 ||
			after[0] != '(' && len(name) == 1 && isWordChar(name[0])) {
			p.rollback(saved)
			return bare(sym), after
		}
		return mathml.New(mathml.Row, bare(sym), operand), operandRest
	}

	operand = strip(operand)
	switch b := sym.Behavior.(type) {
	case symbol.Radical:
		if operand.Kind == mathml.Row && len(operand.Children) == 3 &&
			mathml.IsLeaf(operand.Children[1], mathml.Operator, "&") {
			return mathml.New(mathml.Root, operand.Children[0], operand.Children[2]), operandRest
		}
		return mathml.New(sym.Kind, operand), operandRest
	case symbol.FenceOverride:
		fence := mathml.New(mathml.Fenced, operand)
		fence.SetAttr("open", b.Open)
		fence.SetAttr("close", b.Close)
		return fence, operandRest
	case symbol.Enclosure:
		return mathml.New(sym.Kind, operand).SetAttr("notation", b.Notation), operandRest
	case symbol.Accent:
		accent := leaf(mathml.Operator, sym.Output)
		if s, ok := mathml.Content(operand); ok && utf8.RuneCountInString(s) == 1 {
			accent.SetAttr("stretchy", "false")
		}
		return mathml.New(sym.Kind, operand, accent), operandRest
	case symbol.FontRemap:
		if b.Codes != nil {
			operand = restyle(operand, b.Codes)
		}
		return mathml.New(sym.Kind, operand).SetAttr(b.Attr, b.Value), operandRest
	}
	if sym.Kind.IsToken() {
		return mathml.New(mathml.Row, bare(sym), operand), operandRest
	}
	return mathml.New(sym.Kind, operand), operandRest
}

// Returns a copy of n where identifiers are written in the given styled
// alphabet. Restyled identifiers become operators, so that renderers do not
// apply another style to them.
func restyle(n *mathml.Element, codes []string) *mathml.Element {
	if n.Kind == mathml.Identifier {
		if s, ok := n.Content(); ok {
			if styled, changed := symbol.Restyle(s, codes); changed {
				return leaf(mathml.Operator, styled)
			}
		}
		return n
	}
	if n.Kind.IsToken() {
		return n
	}
	c := n.Copy()
	for i, child := range c.Children {
		if e, ok := child.(*mathml.Element); ok {
			c.Children[i] = restyle(e, codes)
		}
	}
	return c
}

// bSS
func (p *parser) parseBinary(tok token, rest string) (*mathml.Element, string) {
	sym := tok.sym
	name := rest[:tok.size]
	after := skip(rest, tok.size)
	saved := p.checkpoint()
	first, firstRest := p.parseS(after)
	if first == nil {
		p.errorf(rest, tok.size, ErrMissingOperand, "missing operands of %s", name)
		return leaf(mathml.Operator, name), after
	}
	carrier, isCarrier := sym.Behavior.(symbol.AttributeCarrier)
	if isCarrier {
		// The first operand is literal text.
		p.rollback(saved)
	}
	second, secondRest := p.parseS(firstRest)
	if second == nil {
		p.errorf(firstRest, 0, ErrMissingOperand, "missing second operand of %s", name)
		second = placeholder()
	}
	first, second = strip(first), strip(second)

	switch sym.Behavior.(type) {
	case symbol.AttributeCarrier:
		value := literalArg(after, first)
		return mathml.New(sym.Kind, second).SetAttr(carrier.Attr, value), secondRest
	case symbol.Stacked:
		return mathml.New(sym.Kind, second, first), secondRest
	}
	return mathml.New(sym.Kind, first, second), secondRest
}

// Returns the text between the delimiters at the start of s. If s does not
// start with a delimited text, the content of the parsed operand is used.
func literalArg(s string, parsed *mathml.Element) string {
	opener, size := utf8.DecodeRuneInString(s)
	if partner, ok := textPartners[opener]; ok {
		if i := strings.IndexRune(s[size:], partner); i >= 0 {
			return s[size : size+i]
		}
	}
	text, _ := mathml.Content(parsed)
	return text
}
