package parse

import (
	"strings"

	"amath.elv.sh/pkg/mathml"
)

// Separators are the characters that separate the items of a fence, like the
// commas in (a, b, c).
const Separators = ",.;:"

// Returns the separator character if n is an operator holding one.
func separator(n mathml.Node) (string, bool) {
	e, ok := n.(*mathml.Element)
	if !ok || e.Kind != mathml.Operator {
		return "", false
	}
	s, ok := e.Content()
	if !ok || len(s) != 1 || !strings.Contains(Separators, s) {
		return "", false
	}
	return s, true
}

// Groups the items of a fence with more than one child. Separator operators
// are removed and recorded in the separators attribute; runs of other
// children between them are wrapped in rows. The attribute is omitted when
// the separators are all commas.
func normalize(fence *mathml.Element) *mathml.Element {
	if len(fence.Children) <= 1 {
		return fence
	}
	var children, run []mathml.Node
	var seps strings.Builder
	flush := func() {
		switch len(run) {
		case 0:
		case 1:
			children = append(children, run[0])
		default:
			children = append(children, mathml.New(mathml.Row, run...))
		}
		run = nil
	}
	for _, child := range fence.Children {
		if sep, ok := separator(child); ok {
			flush()
			seps.WriteString(sep)
		} else {
			run = append(run, child)
		}
	}
	flush()

	normalized := fence.Copy()
	normalized.Children = children
	if s := trimRepeatedSuffix(seps.String()); s != "" && s != "," {
		normalized.SetAttr("separators", s)
	}
	return normalized
}

// Reduces a run of identical characters at the end of s to one. The last
// separator is repeated for all following items, so the run is redundant.
func trimRepeatedSuffix(s string) string {
	for len(s) > 1 && s[len(s)-1] == s[len(s)-2] {
		s = s[:len(s)-1]
	}
	return s
}

func isOpenBracket(s string) bool  { return s == "(" || s == "[" || s == "{" }
func isCloseBracket(s string) bool { return s == ")" || s == "]" || s == "}" }

// Removes the brackets around an operand, which are implied by the element
// the operand is put into. A fence with bracket glyphs on both sides and a
// single child is replaced by the child; a bracket on only one side is made
// invisible. Fences with several items keep their brackets, which are needed
// to tell a tuple from a sequence. Rows lose bracket operators at either end.
func strip(n *mathml.Element) *mathml.Element {
	switch n.Kind {
	case mathml.Fenced:
		open, close := n.AttrOr("open", "("), n.AttrOr("close", ")")
		if !isOpenBracket(open) && !isCloseBracket(close) {
			return n
		}
		if isOpenBracket(open) && isCloseBracket(close) {
			if len(n.Children) == 1 {
				if e, ok := n.Children[0].(*mathml.Element); ok {
					return e
				}
			}
			if len(n.Children) > 1 {
				return n
			}
		}
		c := n.Copy()
		if isOpenBracket(open) {
			c.SetAttr("open", "")
		}
		if isCloseBracket(close) {
			c.SetAttr("close", "")
		}
		return c
	case mathml.Row:
		children := n.Children
		if len(children) > 0 && isBracketLeaf(children[0], isOpenBracket) {
			children = children[1:]
		}
		if len(children) > 0 && isBracketLeaf(children[len(children)-1], isCloseBracket) {
			children = children[:len(children)-1]
		}
		if len(children) == len(n.Children) {
			return n
		}
		c := n.Copy()
		c.Children = append([]mathml.Node(nil), children...)
		return c
	}
	return n
}

func isBracketLeaf(n mathml.Node, isBracket func(string) bool) bool {
	e, ok := n.(*mathml.Element)
	if !ok || e.Kind != mathml.Operator {
		return false
	}
	s, ok := e.Content()
	return ok && isBracket(s)
}
