package mathml

import (
	"bufio"
	"encoding/xml"
	"io"
	"strings"
)

// Namespace is the XML namespace of MathML.
const Namespace = "http://www.w3.org/1998/Math/MathML"

// Write writes n as MathML markup. A Math element gets the MathML namespace
// unless it already carries an xmlns attribute.
func Write(w io.Writer, n Node) error {
	bw := bufio.NewWriter(w)
	writeNode(bw, n)
	return bw.Flush()
}

// Markup returns the MathML markup of n.
func Markup(n Node) string {
	var sb strings.Builder
	Write(&sb, n)
	return sb.String()
}

func writeNode(w *bufio.Writer, n Node) {
	switch n := n.(type) {
	case CharData:
		xml.EscapeText(w, []byte(n))
	case *Element:
		tag := n.Kind.Tag()
		w.WriteString("<" + tag)
		if n.Kind == Math {
			if _, ok := n.Attr("xmlns"); !ok {
				writeAttr(w, "xmlns", Namespace)
			}
		}
		for _, a := range n.Attrs {
			writeAttr(w, a.Name, a.Value)
		}
		if len(n.Children) == 0 {
			w.WriteString("/>")
			return
		}
		w.WriteString(">")
		for _, child := range n.Children {
			writeNode(w, child)
		}
		w.WriteString("</" + tag + ">")
	}
}

func writeAttr(w *bufio.Writer, name, value string) {
	w.WriteString(" " + name + `="`)
	xml.EscapeText(w, []byte(value))
	w.WriteString(`"`)
}
