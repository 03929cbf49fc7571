// Package convert implements the converter subprogram, the default mode of
// amath.
//
// Expressions are read from the arguments with --code, from the files named
// by the arguments, or from stdin, one expression per line. Each expression is
// written to stdout in the format chosen with --format. With --markdown, whole
// Markdown documents are converted instead, with AsciiMath code blocks
// replaced by MathML.
package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"amath.elv.sh/pkg/diag"
	"amath.elv.sh/pkg/logutil"
	"amath.elv.sh/pkg/mathml"
	"amath.elv.sh/pkg/parse"
	"amath.elv.sh/pkg/prog"
	"amath.elv.sh/pkg/rc"
	"amath.elv.sh/pkg/render"
	"amath.elv.sh/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[convert] ")

// Program is the converter subprogram.
var Program prog.Program = program{}

type program struct{}

func (program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if err := checkFlags(f, args); err != nil {
		return err
	}
	color, err := useColor(f.Color, fds[2])
	if err != nil {
		return err
	}
	cfg, err := rc.Setup(f)
	if err != nil {
		return err
	}

	c := &converter{
		stdout: fds[1], stderr: fds[2],
		format: f.Format, check: f.Check, json: f.JSON,
		color: color, width: errorWidth(f.Width, fds[2]),
		parseCfg:   cfg.ParseConfig(nil),
		decoration: cfg.Decoration(),
	}

	needStore := f.Symbols || f.History
	st, err := openStore(cfg.DB)
	if err != nil {
		if needStore {
			return err
		}
		logger.Printf("continuing without database: %v", err)
	} else {
		defer st.Close()
		c.store = st
		if err := registerStoredSymbols(st); err != nil {
			return err
		}
	}

	switch {
	case f.Symbols:
		if len(args) > 0 {
			return defineSymbols(st, args)
		}
		return listSymbols(fds[1], f.JSON)
	case f.History:
		return listHistory(fds[1], st, f.JSON)
	case f.CodeInArg:
		for i, code := range args {
			c.convert(fmt.Sprintf("[arg %d]", i+1), code)
		}
	case len(args) > 0:
		for _, name := range args {
			text, err := readFileUTF8(name)
			if err != nil {
				return fmt.Errorf("cannot read %s: %w", name, err)
			}
			if err := c.convertText(name, text, f.Markdown); err != nil {
				return err
			}
		}
	default:
		text, err := io.ReadAll(fds[0])
		if err != nil {
			return err
		}
		if err := c.convertText("[stdin]", string(text), f.Markdown); err != nil {
			return err
		}
	}
	return c.finish()
}

func checkFlags(f *prog.Flags, args []string) error {
	switch f.Format {
	case prog.FormatMathML, prog.FormatLinear, prog.FormatDebug, prog.FormatTree:
	default:
		return prog.BadUsage(fmt.Sprintf("unknown format %q", f.Format))
	}
	switch {
	case f.CodeInArg && len(args) == 0:
		return prog.BadUsage("--code requires at least one argument")
	case f.CodeInArg && f.Markdown:
		return prog.BadUsage("--code and --markdown are mutually exclusive")
	case f.Markdown && f.Format != prog.FormatMathML:
		return prog.BadUsage("--markdown only supports the mathml format")
	case f.History && len(args) > 0:
		return prog.BadUsage("arguments are not allowed with --history")
	case f.Symbols && f.History:
		return prog.BadUsage("--symbols and --history are mutually exclusive")
	}
	return nil
}

type converter struct {
	stdout, stderr io.Writer
	format         string
	check, json    bool
	color          bool
	width          int

	parseCfg   parse.Config
	decoration mathml.Decoration
	store      storedefs.Store

	// Parse errors of all expressions, reported as JSON at the end with
	// --check --json.
	errors []*parse.Error
}

// Converts one expression.
func (c *converter) convert(name, code string) {
	c.convertAt(name, code, code, 0)
}

// Converts text, either a Markdown document or one expression per line.
func (c *converter) convertText(name, text string, markdown bool) error {
	if markdown {
		return c.convertMarkdown(name, text)
	}
	offset := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		code := strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(code) != "" {
			c.convertAt(name, text, code, offset)
		}
		offset += len(line)
	}
	return nil
}

// Converts the expression code, found at offset in text.
func (c *converter) convertAt(name, text, code string, offset int) {
	tree, err := parse.Parse(parse.Source{Name: name, Code: code}, c.parseCfg)
	if err != nil {
		relocate(err, name, text, offset)
		c.report(err)
	}
	if c.store != nil && !c.check {
		if _, err := c.store.AddEntry(code); err != nil {
			logger.Printf("add history entry: %v", err)
		}
	}
	if c.check {
		return
	}
	fmt.Fprintln(c.stdout, c.output(tree, code))
}

func (c *converter) output(tree parse.Tree, code string) string {
	switch c.format {
	case prog.FormatLinear:
		return render.String(tree.Root, true)
	case prog.FormatDebug:
		return render.String(tree.Root, false)
	case prog.FormatTree:
		return strings.TrimSuffix(mathml.PprintString(tree.Root), "\n")
	default:
		return mathml.Markup(mathml.Decorate(tree.Root, code, c.decoration))
	}
}

// Makes the contexts of parse errors in err refer to text, in which the
// parsed code starts at offset.
func relocate(err error, name, text string, offset int) {
	for _, e := range parse.UnpackErrors(err) {
		r := e.Range()
		e.Context = *diag.NewContext(name, text,
			diag.Ranging{From: r.From + offset, To: r.To + offset})
	}
}

func (c *converter) report(err error) {
	c.errors = append(c.errors, parse.UnpackErrors(err)...)
	if c.check && c.json {
		return
	}
	var sb strings.Builder
	diag.ShowError(&sb, err)
	io.WriteString(c.stderr, c.styleError(sb.String()))
}

func (c *converter) finish() error {
	if c.check && c.json {
		fmt.Fprintf(c.stdout, "%s\n", errorsToJSON(c.errors))
	}
	if len(c.errors) > 0 {
		return prog.Exit(1)
	}
	return nil
}

var errSourceNotUTF8 = errors.New("source is not UTF-8")

func readFileUTF8(fname string) (string, error) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bytes) {
		return "", errSourceNotUTF8
	}
	return string(bytes), nil
}
