package render

import (
	"strconv"
	"strings"

	"amath.elv.sh/pkg/mathml"
)

// Debug renders n with tag names, children in parentheses and attributes in
// square brackets, like mfenced[open="|" close="|"](mi(x)).
func Debug(n mathml.Node) string {
	var sb strings.Builder
	debug(&sb, n)
	return sb.String()
}

func debug(sb *strings.Builder, n mathml.Node) {
	switch n := n.(type) {
	case mathml.CharData:
		sb.WriteString(string(n))
	case *mathml.Element:
		sb.WriteString(n.Kind.Tag())
		if len(n.Attrs) > 0 {
			sb.WriteByte('[')
			for i, a := range n.Attrs {
				if i > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(a.Name + "=" + strconv.Quote(a.Value))
			}
			sb.WriteByte(']')
		}
		sb.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				sb.WriteByte(' ')
			}
			debug(sb, c)
		}
		sb.WriteByte(')')
	}
}
