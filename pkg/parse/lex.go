package parse

import (
	"strings"
	"unicode/utf8"

	"amath.elv.sh/pkg/diag"
	"amath.elv.sh/pkg/mathml"
	"amath.elv.sh/pkg/symbol"
)

// A token is a symbol matched at the start of the remaining input. The zero
// value signals the end of input.
type token struct {
	sym *symbol.Symbol
	// Number of bytes of input matched.
	size int
	// Whether sym was synthesized rather than found in the table.
	literal bool
}

func (t token) eof() bool { return t.sym == nil }

func (t token) is(a symbol.Arity) bool { return t.sym != nil && t.sym.Arity == a }

func (t token) isName(name string) bool { return t.sym != nil && t.sym.Name == name }

// Used for a "-" following an infix operator, so that x^-1 is x^(-1).
var negation = &symbol.Symbol{
	Name: "-", Output: "-", Kind: mathml.Operator, Arity: symbol.Unary,
	Group: symbol.Operators, Behavior: symbol.Function{},
}

// Finds the symbol at the start of rest. When no table entry matches, a digit
// run becomes a Number, and a single character becomes an Identifier if it is
// an ASCII letter or an Operator otherwise.
//
// Every call shifts the class of the current token into prev; a literal "-"
// is only a negation when the previous lookup found an Infix token.
func (p *parser) lookup(rest string) token {
	name, sym := p.table.Lookup(rest)
	p.prev = p.cur
	if sym != nil {
		p.cur = sym.Arity
		return token{sym: sym, size: len(name)}
	}
	p.cur = symbol.Const
	if rest == "" {
		return token{}
	}
	if n := p.number(rest); n > 0 {
		return token{sym: literal(rest[:n], mathml.Number), size: n, literal: true}
	}
	_, size := utf8.DecodeRuneInString(rest)
	text := rest[:size]
	if text == "-" && p.prev == symbol.Infix {
		p.cur = symbol.Infix
		return token{sym: negation, size: 1, literal: true}
	}
	kind := mathml.Operator
	if isASCIILetter(rest[0]) {
		kind = mathml.Identifier
	}
	return token{sym: literal(text, kind), size: size, literal: true}
}

func literal(text string, kind mathml.Kind) *symbol.Symbol {
	return &symbol.Symbol{Name: text, Output: text, Kind: kind, Arity: symbol.Const,
		Behavior: symbol.Plain{}}
}

// Returns the length of the number at the start of s: a run of digits,
// optionally followed by the decimal sign and more digits. Returns 0 if s does
// not start with a digit.
func (p *parser) number(s string) int {
	i := digits(s)
	if i == 0 {
		return 0
	}
	if sign := string(p.decimal); strings.HasPrefix(s[i:], sign) {
		if j := i + len(sign); j < len(s) && isDigit(s[j]) {
			i = j + digits(s[j:])
		}
	}
	return i
}

func digits(s string) int {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isASCIILetter(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

func isWordChar(c byte) bool { return isASCIILetter(c) || isDigit(c) || c == '_' }

// Skips n bytes of s, then the backslash of a TeX command like \alpha, then
// whitespace and control characters.
func skip(s string, n int) string {
	if n > len(s) {
		n = len(s)
	}
	if n+1 < len(s) && s[n] == '\\' && s[n+1] != '\\' && s[n+1] != ' ' {
		n++
	}
	s = s[n:]
	i := 0
	for i < len(s) && s[i] <= ' ' {
		i++
	}
	return s[i:]
}

// Token is a lexical token of AsciiMath source.
type Token struct {
	diag.Ranging
	Text  string
	Kind  mathml.Kind
	Arity symbol.Arity
	// The symbol table entry, or nil for numbers and other literals.
	Symbol *symbol.Symbol
}

// Tokenize splits the source into tokens the way the parser sees them, without
// expanding definitions.
func Tokenize(code string, cfg Config) []Token {
	p := newParser(Source{Code: code}, cfg)
	var tokens []Token
	for rest := skip(code, 0); rest != ""; {
		tok := p.lookup(rest)
		from := p.pos(rest)
		t := Token{
			Ranging: diag.Ranging{From: from, To: from + tok.size},
			Text:    rest[:tok.size],
			Kind:    tok.sym.Kind,
			Arity:   tok.sym.Arity,
		}
		if !tok.literal {
			t.Symbol = tok.sym
		}
		tokens = append(tokens, t)
		rest = skip(rest, tok.size)
	}
	return tokens
}
