package render

import (
	"errors"
	"testing"

	"amath.elv.sh/pkg/mathml"
	"amath.elv.sh/pkg/parse"
	"amath.elv.sh/pkg/symbol"
	"amath.elv.sh/pkg/tt"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var table = symbol.BuiltinTable()

func parseRoot(code string) *mathml.Element {
	tree, _ := parse.Parse(parse.SourceForTest(code), parse.Config{Symbols: table})
	return tree.Root
}

func linear(code string) string { return Linear(parseRoot(code), table) }

func TestLinear(t *testing.T) {
	tt.Test(t, tt.Fn("linear", linear), tt.Table{
		tt.Args("").Rets(""),
		tt.Args("2/3").Rets("2/3"),
		tt.Args("a/b+c").Rets("a/b + c"),
		tt.Args("(a+b)/2").Rets("(a + b)/2"),
		tt.Args("(a/b)/c").Rets("(a/b)/c"),
		tt.Args("1/").Rets("1/"),
		tt.Args("x^").Rets("x^"),
		tt.Args("square").Rets("square"),

		tt.Args("x_i^2").Rets("x_i^2"),
		tt.Args("x^-1").Rets("x^(- 1)"),
		tt.Args("x^(y^z)").Rets("x^(y^z)"),
		tt.Args("sum_(i=1)^n i").Rets("sum_(i = 1)^n i"),
		tt.Args("uBrace(x+y)_n").Rets("uBrace(x + y)_n"),

		tt.Args("sin x").Rets("sin x"),
		tt.Args("sin^2 x").Rets("sin^2 x"),
		tt.Args("alpha+beta").Rets("alpha + beta"),
		tt.Args("a != b").Rets("a != b"),
		tt.Args("x > 0").Rets("x gt 0"),
		tt.Args("5!").Rets("5!"),
		tt.Args("dx").Rets("dx"),

		tt.Args("sqrt(x+1)").Rets("sqrt(x + 1)"),
		tt.Args("root(3)(x)").Rets("root(3)(x)"),
		tt.Args("sqrt(x&3)").Rets("root(3)(x)"),

		tt.Args("(a;b)").Rets("(a;b)"),
		tt.Args("{:a,b:}").Rets("{:a,b:}"),
		tt.Args("|x|").Rets("abs(x)"),
		tt.Args("floor(x)").Rets("floor(x)"),
		tt.Args("{x | x > 0}").Rets("{x | x gt 0}"),

		tt.Args("((a,b),(c,d))").Rets("((a,b),(c,d))"),
		tt.Args("[[a,b],[c,d]]").Rets("[(a,b),(c,d)]"),
		tt.Args("{[a,b],[c,d]}").Rets("{[a,b],[c,d]}"),
		tt.Args("((a,|,b),(c,|,d))").Rets("((a,|,b),(c,|,d))"),

		tt.Args("hat x").Rets("hat(x)"),
		tt.Args("a ¦ b").Rets("underSet(b)(a)"),
		tt.Args("stackrel(a)(b)").Rets("overSet(a)(b)"),
		tt.Args("bb(A)").Rets("bb(A)"),
		tt.Args("cc(A)").Rets("cc(𝒜)"),
		tt.Args("color(red)(x)").Rets("color(red)(x)"),
		tt.Args("class(big)(x+1)").Rets("class(big)(x + 1)"),
		tt.Args("cancel(x)").Rets("cancel(x)"),
		tt.Args("text(a b)").Rets("text(a b)"),
		tt.Args(`"f(x)"`).Rets(`"f(x)"`),
	})
}

var roundTripCorpus = []string{
	// Arithmetic
	"1+2-3", "a xx b", "2/3", "a/b+c", "(a+b)/2", "1/-2", "a -: b", "5! != 3",
	"x <= y >= z", "a in A", "+- 1",
	// Scripts
	"x^2", "x_i", "x_i^2", "x^-1", "e^(i pi) + 1 = 0", "x_(n+1)", "x_(i,j)",
	"x^(y^z)", "sum_(i=1)^n i^2", "prod^n", "lim_(x->oo) f(x)",
	"uBrace(x+y)_n", "int_0^1 f(x) dx",
	// Functions
	"sin x", "sin(x)", "sin^2 x + cos^2 x = 1", "f(x) = x^2", "log_2 x",
	"abs(x-1)", "floor(x/2)",
	// Roots
	"sqrt(x)", "sqrt(x+1)", "root(3)(x)", "sqrt(x&3)",
	// Brackets
	"(x)", "[a,b]", "(a;b;c)", "{:a,b:}", "|x|", "{x | x > 0}",
	"(:a,b:)", "((x))",
	// Matrices
	"((a,b),(c,d))", "[[a,b],[c,d]]", "{[a,b],[c,d]}",
	"((a,|,b),(c,|,d))", "{:(a,b),(c,d):}", "((1,2,3))",
	// Adornments
	"hat x", "vec(a+b)", "ul(x)", "bb(A)", "cc(A)", "bbb(R^n)",
	"color(red)(x+1)", "class(big)(x)", "cancel(x)", "stackrel(a)(b)",
	"a ¦ b", "text(if) x", `"a(b)"`,
}

func TestLinear_RoundTrip(t *testing.T) {
	for _, code := range roundTripCorpus {
		want, err := parse.Parse(parse.SourceForTest(code), parse.Config{Symbols: table})
		if err != nil {
			t.Errorf("Parse(%q) returns error %v", code, err)
			continue
		}
		s := Linear(want.Root, table)
		got, err := parse.Parse(parse.SourceForTest(s), parse.Config{Symbols: table})
		if err != nil {
			t.Errorf("Parse(%q) (rendered from %q) returns error %v", s, code, err)
			continue
		}
		if diff := cmp.Diff(want.Root, got.Root, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%q renders as %q, which parses differently (-want +got):\n%s",
				code, s, diff)
		}
	}
}

// Missing operands are parsed as placeholder boxes, which render as nothing
// and so parse back to placeholders.
var missingOperandCorpus = []string{"1/", "x^", "x_", "frac(a)", "(1/)", "a+1/"}

func TestLinear_RoundTripMissingOperands(t *testing.T) {
	for _, code := range missingOperandCorpus {
		want, _ := parse.Parse(parse.SourceForTest(code), parse.Config{Symbols: table})
		s := Linear(want.Root, table)
		got, err := parse.Parse(parse.SourceForTest(s), parse.Config{Symbols: table})
		if !errors.Is(err, parse.ErrMissingOperand) {
			t.Errorf("Parse(%q) (rendered from %q) returns error %v, want ErrMissingOperand", s, code, err)
		}
		if diff := cmp.Diff(want.Root, got.Root, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%q renders as %q, which parses differently (-want +got):\n%s",
				code, s, diff)
		}
	}
}

func TestDebug(t *testing.T) {
	tt.Test(t, tt.Fn("Debug", Debug), tt.Table{
		tt.Args(mathml.New(mathml.Fraction, mathml.Leaf(mathml.Number, "2"), mathml.Leaf(mathml.Number, "3"))).
			Rets("mfrac(mn(2) mn(3))"),
		tt.Args(mathml.New(mathml.Fenced, mathml.Leaf(mathml.Identifier, "x")).
			SetAttr("open", "|").SetAttr("close", "|")).
			Rets(`mfenced[open="|" close="|"](mi(x))`),
		tt.Args(mathml.New(mathml.Math)).Rets("math()"),
	})
}

func TestString(t *testing.T) {
	root := parseRoot("x^2")
	if got := String(root, true); got != "x^2" {
		t.Errorf("String(root, true) = %q, want %q", got, "x^2")
	}
	if got, want := String(root, false), "math(msup(mi(x) mn(2)))"; got != want {
		t.Errorf("String(root, false) = %q, want %q", got, want)
	}
}
