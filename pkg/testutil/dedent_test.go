package testutil

import (
	"testing"

	"amath.elv.sh/pkg/tt"
)

func TestDedent(t *testing.T) {
	tt.Test(t, tt.Fn("Dedent", Dedent), tt.Table{
		tt.Args("x^2").Rets("x^2"),
		tt.Args(" \n  x^2\n a/b").Rets("\n x^2\na/b"),
		tt.Args(`
			decimal-sign = ","
			[style]
			  color = "red"`).
			Rets("decimal-sign = \",\"\n[style]\n  color = \"red\""),
		// Trailing newline is kept, and the indentation of the closing
		// backtick does not count.
		tt.Args(`
			- name: R2
			  output: RR^2
			`).
			Rets("- name: R2\n  output: RR^2\n"),
		// Blank lines do not shrink the margin.
		tt.Args("\n\t\tx\n\n\t\t  y").Rets("x\n\n  y"),
		tt.Args("\n\t\t\tx\n\t\ty").Rets("\tx\ny"),
	})
}
