// Package mathml models Presentation MathML trees as produced by the AsciiMath
// parser, and writes them as MathML markup.
package mathml

// Kind is the kind of an element. Each kind corresponds to one MathML tag.
type Kind uint8

// Possible values for Kind.
const (
	Number Kind = iota
	Identifier
	Operator
	Row
	Text
	SquareRoot
	Root
	Fenced
	Fraction
	Sub
	Sup
	UnderOver
	SubSup
	Over
	Under
	Style
	Space
	Table
	TableRow
	TableCell
	Enclose
	Math
)

var kindInfos = [...]struct{ name, tag string }{
	Number:     {"Number", "mn"},
	Identifier: {"Identifier", "mi"},
	Operator:   {"Operator", "mo"},
	Row:        {"Row", "mrow"},
	Text:       {"Text", "mtext"},
	SquareRoot: {"SquareRoot", "msqrt"},
	Root:       {"Root", "mroot"},
	Fenced:     {"Fenced", "mfenced"},
	Fraction:   {"Fraction", "mfrac"},
	Sub:        {"Sub", "msub"},
	Sup:        {"Sup", "msup"},
	UnderOver:  {"UnderOver", "munderover"},
	SubSup:     {"SubSup", "msubsup"},
	Over:       {"Over", "mover"},
	Under:      {"Under", "munder"},
	Style:      {"Style", "mstyle"},
	Space:      {"Space", "mspace"},
	Table:      {"Table", "mtable"},
	TableRow:   {"TableRow", "mtr"},
	TableCell:  {"TableCell", "mtd"},
	Enclose:    {"Enclose", "menclose"},
	Math:       {"Math", "math"},
}

// String returns the name of the kind, such as "Fraction".
func (k Kind) String() string {
	if int(k) < len(kindInfos) {
		return kindInfos[k].name
	}
	return "Kind(?)"
}

// Tag returns the MathML tag name of the kind, such as "mfrac".
func (k Kind) Tag() string {
	if int(k) < len(kindInfos) {
		return kindInfos[k].tag
	}
	return "merror"
}

// KindOf looks up a kind by its name or its tag name.
func KindOf(s string) (Kind, bool) {
	for i, info := range kindInfos {
		if s == info.name || s == info.tag {
			return Kind(i), true
		}
	}
	return 0, false
}

// IsToken reports whether elements of the kind are token elements, which
// hold text rather than other elements.
func (k Kind) IsToken() bool {
	return k == Number || k == Identifier || k == Operator || k == Text
}

// Node is either an *Element or a CharData.
type Node interface {
	isNode()
}

// CharData is the text content of a token element.
type CharData string

// Element is a MathML element.
type Element struct {
	Kind     Kind
	Attrs    []Attr
	Children []Node
}

// Attr is an attribute of an element. Attributes are kept in the order they
// were set.
type Attr struct {
	Name, Value string
}

func (CharData) isNode() {}
func (*Element) isNode() {}

// New creates an element of the given kind with the given children.
func New(k Kind, children ...Node) *Element {
	if len(children) == 0 {
		return &Element{Kind: k}
	}
	return &Element{Kind: k, Children: children}
}

// Leaf creates a token element holding the given text.
func Leaf(k Kind, content string) *Element {
	return &Element{Kind: k, Children: []Node{CharData(content)}}
}

// Attr returns the value of an attribute and whether it is set.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrOr returns the value of an attribute, or def if it is not set.
func (e *Element) AttrOr(name, def string) string {
	if v, ok := e.Attr(name); ok {
		return v
	}
	return def
}

// SetAttr sets an attribute, replacing an existing value in place. It is meant
// to be used on elements that are still being built.
func (e *Element) SetAttr(name, value string) *Element {
	for i, a := range e.Attrs {
		if a.Name == name {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{name, value})
	return e
}

// Content returns the text of an element that has exactly one CharData child.
func (e *Element) Content() (string, bool) {
	if len(e.Children) != 1 {
		return "", false
	}
	s, ok := e.Children[0].(CharData)
	return string(s), ok
}

// Copy returns a shallow copy of the element, with its own attribute and
// children slices.
func (e *Element) Copy() *Element {
	c := &Element{Kind: e.Kind}
	if len(e.Attrs) > 0 {
		c.Attrs = append([]Attr(nil), e.Attrs...)
	}
	if len(e.Children) > 0 {
		c.Children = append([]Node(nil), e.Children...)
	}
	return c
}

// Content returns the text of n when it is a token element or CharData.
func Content(n Node) (string, bool) {
	switch n := n.(type) {
	case CharData:
		return string(n), true
	case *Element:
		if n.Kind.IsToken() {
			return n.Content()
		}
	}
	return "", false
}

// IsLeaf reports whether n is a token element of kind k holding exactly s.
func IsLeaf(n Node, k Kind, s string) bool {
	e, ok := n.(*Element)
	if !ok || e.Kind != k {
		return false
	}
	content, ok := e.Content()
	return ok && content == s
}

// Walk calls f on n and all its descendants in depth-first order. It does not
// descend into an element when f returns false.
func Walk(n Node, f func(Node) bool) {
	if !f(n) {
		return
	}
	if e, ok := n.(*Element); ok {
		for _, child := range e.Children {
			Walk(child, f)
		}
	}
}
