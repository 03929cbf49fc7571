package convert

import (
	"path/filepath"
	"testing"

	"amath.elv.sh/pkg/env"
	. "amath.elv.sh/pkg/prog/progtest"
	"amath.elv.sh/pkg/symbol"
	"amath.elv.sh/pkg/testutil"
)

func setup(t *testing.T) string {
	dir := testutil.InTempDir(t)
	testutil.Setenv(t, env.AMATH_RC, filepath.Join(dir, "rc.toml"))
	testutil.Setenv(t, env.AMATH_DB, filepath.Join(dir, "data", "db"))
	testutil.Unsetenv(t, env.NO_COLOR)
	testutil.Set(t, &symbol.Default, symbol.NewRegistry(symbol.BuiltinTable()))
	return dir
}

const (
	mathOpen  = `<math xmlns="http://www.w3.org/1998/Math/MathML" title="x^2">`
	styleOpen = `<mstyle mathcolor="blue" fontsize="1em" mathsize="1em" fontfamily="serif" displaystyle="true">`
	xSquared  = `<msup><mi>x</mi><mn>2</mn></msup>`
)

func TestProgram_Formats(t *testing.T) {
	setup(t)
	Test(t, Program,
		ThatAmath("-c", "x^2").
			WritesStdout(mathOpen+styleOpen+xSquared+"</mstyle></math>\n"),
		ThatAmath("-c", "-f", "linear", "x^2", "a/b").
			WritesStdout("x^2\na/b\n"),
		ThatAmath("-c", "--format", "debug", "x^2").
			WritesStdout("math(msup(mi(x) mn(2)))\n"),
		ThatAmath("-c", "--format", "tree", "x^2").
			WritesStdout("Math\n  Sup\n    Identifier \"x\"\n    Number \"2\"\n"),
	)
}

func TestProgram_Inputs(t *testing.T) {
	setup(t)
	testutil.MustWriteFile("in.txt", "a/b\nsqrt x\n")
	testutil.MustWriteFile("bad.txt", "\xff\n")
	Test(t, Program,
		ThatAmath("-f", "linear").WithStdin("x^2\n\nsin x\n").
			WritesStdout("x^2\nsin x\n"),
		ThatAmath("-f", "linear", "in.txt").
			WritesStdout("a/b\nsqrt(x)\n"),
		ThatAmath("-f", "linear", "missing.txt").
			ExitsWith(2).
			WritesStderrContaining("cannot read missing.txt"),
		ThatAmath("bad.txt").
			ExitsWith(2).
			WritesStderrContaining("source is not UTF-8"),
	)
}

func TestProgram_Errors(t *testing.T) {
	setup(t)
	Test(t, Program,
		ThatAmath("-c", "-f", "linear", "1/").
			ExitsWith(1).
			WritesStdout("1/\n").
			WritesStderrContaining("missing denominator"),
		ThatAmath("-f", "linear").WithStdin("x\n1/\n").
			ExitsWith(1).
			WritesStdout("x\n1/\n").
			WritesStderrContaining("[stdin]:2:3:"),
		ThatAmath("--check").WithStdin("(x\n").
			ExitsWith(1).
			WritesStderrContaining("unterminated bracket ("),
		ThatAmath("--check", "--json").WithStdin("y\n(x\n").
			ExitsWith(1).
			WritesStdout(`[{"fileName":"[stdin]","start":2,"end":3,"message":"unterminated bracket ("}]` + "\n"),
		ThatAmath("--check", "--json").WithStdin("x^2\n").
			WritesStdout("[]\n"),
	)
}

func TestProgram_BadUsage(t *testing.T) {
	setup(t)
	Test(t, Program,
		ThatAmath("-f", "xml").
			ExitsWith(2).
			WritesStderrContaining(`unknown format "xml"`),
		ThatAmath("--color", "sometimes").
			ExitsWith(2).
			WritesStderrContaining(`unknown color mode "sometimes"`),
		ThatAmath("-c").
			ExitsWith(2).
			WritesStderrContaining("--code requires at least one argument"),
		ThatAmath("-c", "-m", "x").
			ExitsWith(2).
			WritesStderrContaining("mutually exclusive"),
		ThatAmath("-m", "-f", "linear").
			ExitsWith(2).
			WritesStderrContaining("--markdown only supports the mathml format"),
		ThatAmath("--history", "x").
			ExitsWith(2).
			WritesStderrContaining("arguments are not allowed with --history"),
	)
}

func TestProgram_Markdown(t *testing.T) {
	setup(t)
	testutil.MustWriteFile("doc.md", "# Doc\n\n```asciimath\nx\n```\n\nInline `$y$`.\n")
	Test(t, Program,
		ThatAmath("-m", "doc.md").
			WritesStdoutContaining(`title="x" display="block">` + styleOpen + `<mi>x</mi>`),
		ThatAmath("-m", "doc.md").
			WritesStdoutContaining("<p>Inline <math"),
		ThatAmath("-m").WithStdin("```amath\n1/\n```\n").
			ExitsWith(1).
			WritesStdoutContaining("<mfrac>").
			WritesStderrContaining("[stdin]:2:3:"),
		ThatAmath("-m", "--check").WithStdin("```amath\nx\n```\n").
			DoesNothing(),
	)
}

func TestProgram_Symbols(t *testing.T) {
	setup(t)
	Test(t, Program,
		ThatAmath("--symbols", "R2=RR^2").DoesNothing(),
		ThatAmath("-c", "-f", "linear", "R2").WritesStdout("RR^2\n"),
		ThatAmath("--symbols").WritesStdoutContaining("R2: RR^2 (defined symbol)\n"),
		ThatAmath("--symbols", "--json").WritesStdoutContaining(`{"name":"alpha","output":"α","group":"greek letter"`),
		ThatAmath("--symbols", "R2=").DoesNothing(),
		ThatAmath("--symbols", "R2=").
			ExitsWith(2).
			WritesStderrContaining("delete symbol R2: no such symbol"),
		ThatAmath("--symbols", "R2").
			ExitsWith(2).
			WritesStderrContaining(`symbol definition "R2" is not of the form name=output`),
		ThatAmath("--symbols", " x=y").
			ExitsWith(2).
			WritesStderrContaining("invalid symbol name"),
	)
}

func TestProgram_History(t *testing.T) {
	setup(t)
	Test(t, Program,
		ThatAmath("-c", "x^2", "a/b").WritesStdoutContaining("<mfrac>"),
		ThatAmath("--check").WithStdin("c\n").DoesNothing(),
		ThatAmath("--history").WritesStdout("    1  x^2\n    2  a/b\n"),
		ThatAmath("--history", "--json").
			WritesStdout(`[{"seq":1,"text":"x^2"},{"seq":2,"text":"a/b"}]` + "\n"),
	)
}

func TestProgram_RC(t *testing.T) {
	setup(t)
	testutil.MustWriteFile("rc.toml", testutil.Dedent(`
		decimal-sign = ","

		[style]
		color = "red"
		font-size = ""
		font-family = ""
		display-style = false
		title = false
		`))
	Test(t, Program,
		ThatAmath("-c", "1,5").WritesStdout(
			`<math xmlns="http://www.w3.org/1998/Math/MathML">` +
				`<mstyle mathcolor="red"><mn>1,5</mn></mstyle></math>` + "\n"),
		ThatAmath("--norc", "-c", "-f", "debug", "1,5").
			WritesStdout("math(mn(1) mo(,) mn(5))\n"),
	)
}

func TestProgram_BadRC(t *testing.T) {
	setup(t)
	testutil.MustWriteFile("rc.toml", "colour = 'red'\n")
	Test(t, Program,
		ThatAmath("-c", "x").
			ExitsWith(2).
			WritesStderrContaining("unknown key: colour"),
	)
}
