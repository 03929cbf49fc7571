// Amath converts AsciiMath to MathML. It reads expressions from the command
// line, files or stdin, converts AsciiMath in Markdown documents, and serves
// the Language Server Protocol with --lsp.
package main

import (
	"os"

	"amath.elv.sh/pkg/buildinfo"
	"amath.elv.sh/pkg/convert"
	"amath.elv.sh/pkg/lsp"
	"amath.elv.sh/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, lsp.Program, convert.Program)))
}
