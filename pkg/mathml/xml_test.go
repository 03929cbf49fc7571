package mathml

import (
	"errors"
	"testing"

	"amath.elv.sh/pkg/tt"
)

func TestMarkup(t *testing.T) {
	tt.Test(t, tt.Fn("Markup", Markup), tt.Table{
		tt.Args(New(Math, Leaf(Identifier, "x"))).
			Rets(`<math xmlns="http://www.w3.org/1998/Math/MathML"><mi>x</mi></math>`),
		tt.Args(New(Math).SetAttr("xmlns", "urn:x")).
			Rets(`<math xmlns="urn:x"/>`),
		tt.Args(New(Fraction, Leaf(Number, "1"), Leaf(Operator, "<"))).
			Rets(`<mfrac><mn>1</mn><mo>&lt;</mo></mfrac>`),
		tt.Args(New(Space).SetAttr("width", "1ex")).
			Rets(`<mspace width="1ex"/>`),
		tt.Args(New(Fenced, Leaf(Identifier, "a")).SetAttr("open", `"&`)).
			Rets(`<mfenced open="&#34;&amp;"><mi>a</mi></mfenced>`),
		tt.Args(Leaf(Text, "")).Rets(`<mtext></mtext>`),
	})
}

var errWrite = errors.New("write error")

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWrite_Error(t *testing.T) {
	err := Write(failWriter{}, New(Math))
	if !errors.Is(err, errWrite) {
		t.Errorf("got error %v, want %v", err, errWrite)
	}
}

func TestPprintString(t *testing.T) {
	tree := New(Fenced,
		New(Fraction, Leaf(Number, "1"), Leaf(Identifier, "x"))).SetAttr("open", "|")
	want := `Fenced open="|"
  Fraction
    Number "1"
    Identifier "x"
`
	if got := PprintString(tree); got != want {
		t.Errorf("PprintString got:\n%s\nwant:\n%s", got, want)
	}
}

func TestDecorate(t *testing.T) {
	root := New(Math, Leaf(Identifier, "x")).SetAttr("display", "block")
	got := Markup(Decorate(root, "x", DefaultDecoration))
	want := `<math xmlns="http://www.w3.org/1998/Math/MathML" display="block" title="x">` +
		`<mstyle mathcolor="blue" fontsize="1em" mathsize="1em" fontfamily="serif" displaystyle="true">` +
		`<mi>x</mi></mstyle></math>`
	if got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}

	got = Markup(Decorate(New(Math, Leaf(Identifier, "x")), "x", Decoration{}))
	want = `<math xmlns="http://www.w3.org/1998/Math/MathML"><mstyle><mi>x</mi></mstyle></math>`
	if got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}
