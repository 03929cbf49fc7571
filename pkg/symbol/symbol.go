// Package symbol contains the AsciiMath symbol table.
//
// A Table is an immutable snapshot of symbol descriptors sorted by name, with
// longest-prefix lookup. A Registry holds the current snapshot and publishes a
// new one when symbols are registered, so lookups never observe a table that
// is being changed.
package symbol

import "amath.elv.sh/pkg/mathml"

// Arity determines how the parser treats a symbol and the input around it.
type Arity uint8

// Possible values for Arity.
const (
	// A constant that takes no argument.
	Const Arity = iota
	// A prefix operator taking one argument.
	Unary
	// A prefix operator taking two arguments, written like frac(a)(b).
	Binary
	// An operator written between its two arguments, like a/b.
	Infix
	LeftBracket
	RightBracket
	// The vertical bar, which both opens and closes.
	LeftRightBracket
	// A constant surrounded by spaces.
	Space
	// A constant whose scripts are placed under and over it, like sum.
	UnderOver
	// A macro: its output is substituted for it in the input.
	Definition
	// Verbatim text.
	Text
	// A unary operator whose scripts are placed under and over it.
	UnaryUnderOver
)

var arityNames = [...]string{
	"Const", "Unary", "Binary", "Infix", "LeftBracket", "RightBracket",
	"LeftRightBracket", "Space", "UnderOver", "Definition", "Text",
	"UnaryUnderOver",
}

func (a Arity) String() string {
	if int(a) < len(arityNames) {
		return arityNames[a]
	}
	return "Arity(?)"
}

// Group is the documentation category of a symbol.
type Group uint8

// Possible values for Group.
const (
	Greek Group = iota
	Operators
	Relations
	Logic
	Brackets
	Misc
	Functions
	Arrows
	Fonts
	Adornments
	Defined
)

var groupNames = [...]string{
	"greek letter", "operator", "relation", "logical symbol", "bracket",
	"symbol", "function", "arrow", "font", "adornment", "defined symbol",
}

func (g Group) String() string {
	if int(g) < len(groupNames) {
		return groupNames[g]
	}
	return "group(?)"
}

// Symbol describes one entry of the symbol table. Symbols are never modified
// once they are part of a Table; aliases of a symbol share the same *Symbol.
type Symbol struct {
	// The canonical input.
	Name string
	// The text of the leaf created for the symbol. For Definition symbols,
	// the input that replaces the name.
	Output string
	Kind   mathml.Kind
	Arity  Arity
	// An alternative input in TeX notation, may be empty.
	TeX         string
	Group       Group
	Description string
	Behavior    Behavior
}

// Behavior is the special treatment a symbol gets from the parser. It is one
// of Plain, Function, FenceOverride, Accent, FontRemap, AttributeCarrier,
// InvisibleBracket, Enclosure, Radical and Stacked.
type Behavior interface{ isBehavior() }

// Plain symbols get no special treatment.
type Plain struct{}

// Function symbols are applied to the expression after them by juxtaposition,
// like sin x.
type Function struct{}

// FenceOverride symbols wrap their operand in a fence with the given glyphs
// instead of creating an element of their own kind, like abs.
type FenceOverride struct{ Open, Close string }

// Accent symbols decorate their operand with their output above or below it.
type Accent struct{}

// FontRemap symbols set a math variant on their operand. When Codes is not
// nil, Latin letters in the operand are replaced with the styled letters from
// Codes, which holds A-Z followed by a-z.
type FontRemap struct {
	Attr, Value string
	Codes       []string
}

// AttributeCarrier symbols are binary; the text of their first argument
// becomes the value of Attr on the element wrapping the second argument.
type AttributeCarrier struct{ Attr string }

// InvisibleBracket symbols group without drawing a delimiter.
type InvisibleBracket struct{}

// Enclosure symbols wrap their operand in an enclose element with the given
// notation.
type Enclosure struct{ Notation string }

// Radical symbols take a square root, or an n-th root when the operand is of
// the form x&n.
type Radical struct{}

// Stacked symbols are binary and put their second argument first, like
// root(n)(x) and stackrel(a)(b).
type Stacked struct{}

func (Plain) isBehavior()            {}
func (Function) isBehavior()         {}
func (FenceOverride) isBehavior()    {}
func (Accent) isBehavior()           {}
func (FontRemap) isBehavior()        {}
func (AttributeCarrier) isBehavior() {}
func (InvisibleBracket) isBehavior() {}
func (Enclosure) isBehavior()        {}
func (Radical) isBehavior()          {}
func (Stacked) isBehavior()          {}

// IsFunction reports whether s is applied by juxtaposition.
func (s *Symbol) IsFunction() bool {
	_, ok := s.Behavior.(Function)
	return ok
}

// IsInvisible reports whether s is an invisible bracket.
func (s *Symbol) IsInvisible() bool {
	_, ok := s.Behavior.(InvisibleBracket)
	return ok
}

// IsAccent reports whether s is an accent.
func (s *Symbol) IsAccent() bool {
	_, ok := s.Behavior.(Accent)
	return ok
}

// Describe returns a one-line description of s, like "alpha: α (greek letter)".
func (s *Symbol) Describe() string {
	d := s.Name
	if s.Output != "" && s.Output != s.Name {
		d += ": " + s.Output
	}
	d += " (" + s.Group.String() + ")"
	if s.Description != "" {
		d += ", " + s.Description
	}
	return d
}
