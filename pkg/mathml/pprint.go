package mathml

import (
	"fmt"
	"io"
	"strings"
)

const indentInc = 2

// Pprint writes the tree rooted at n to w, one element per line, children
// indented under their parent. Token elements are written on one line with
// their quoted content.
func Pprint(w io.Writer, n Node) {
	pprintRec(w, n, 0)
}

// PprintString is like Pprint, but returns a string.
func PprintString(n Node) string {
	var sb strings.Builder
	Pprint(&sb, n)
	return sb.String()
}

func pprintRec(w io.Writer, n Node, indent int) {
	fmt.Fprintf(w, "%*s", indent, "")
	switch n := n.(type) {
	case CharData:
		fmt.Fprintf(w, "%q\n", string(n))
	case *Element:
		io.WriteString(w, n.Kind.String())
		for _, a := range n.Attrs {
			fmt.Fprintf(w, " %s=%q", a.Name, a.Value)
		}
		if s, ok := n.Content(); ok {
			fmt.Fprintf(w, " %q\n", s)
			return
		}
		io.WriteString(w, "\n")
		for _, child := range n.Children {
			pprintRec(w, child, indent+indentInc)
		}
	default:
		fmt.Fprintf(w, "%T\n", n)
	}
}
