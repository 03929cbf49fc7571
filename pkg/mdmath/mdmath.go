// Package mdmath provides a goldmark extension that renders AsciiMath in
// Markdown documents as MathML.
//
// Fenced code blocks whose info string is "asciimath" or "amath" become
// display formulas. When inline conversion is enabled, code spans written like
// `$x^2$` become inline formulas.
package mdmath

import (
	"bytes"
	"io"
	"strings"

	"amath.elv.sh/pkg/mathml"
	"amath.elv.sh/pkg/parse"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Languages are the info strings of fenced code blocks that hold AsciiMath.
var Languages = []string{"asciimath", "amath"}

// Extension is a goldmark extension converting AsciiMath to MathML.
type Extension struct {
	Config parse.Config
	// If not nil, formulas are decorated with it.
	Decoration *mathml.Decoration
	// Whether code spans delimited with dollar signs are converted.
	Inline bool
	// If not nil, called with the source and error of each formula that has
	// parse errors. The formula is converted anyway.
	OnError func(code string, err error)
}

var _ goldmark.Extender = (*Extension)(nil)

// Extend implements goldmark.Extender.
func (e *Extension) Extend(md goldmark.Markdown) {
	md.Parser().AddOptions(
		parser.WithASTTransformers(
			util.Prioritized(transformer{e.Inline}, 100),
		),
	)
	md.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(mathRenderer{e}, 100),
		),
	)
}

// Convert converts a Markdown document to HTML using the extension.
func (e *Extension) Convert(src []byte, w io.Writer) error {
	return goldmark.New(goldmark.WithExtensions(e)).Convert(src, w)
}

var (
	kindMathBlock  = ast.NewNodeKind("MathBlock")
	kindMathInline = ast.NewNodeKind("MathInline")
)

type mathBlock struct {
	ast.BaseBlock
}

func (n *mathBlock) Kind() ast.NodeKind { return kindMathBlock }

func (n *mathBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

type mathInline struct {
	ast.BaseInline
	Code string
}

func (n *mathInline) Kind() ast.NodeKind { return kindMathInline }

func (n *mathInline) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Code": n.Code}, nil)
}

type transformer struct{ inline bool }

func (t transformer) Transform(document *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()
	var blocks []*ast.FencedCodeBlock
	var spans []*ast.CodeSpan
	ast.Walk(document, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := node.(type) {
		case *ast.FencedCodeBlock:
			if isMathLanguage(node.Language(source)) {
				blocks = append(blocks, node)
			}
		case *ast.CodeSpan:
			if t.inline {
				spans = append(spans, node)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	for _, block := range blocks {
		if parent := block.Parent(); parent != nil {
			math := &mathBlock{}
			math.SetLines(block.Lines())
			parent.ReplaceChild(parent, block, math)
		}
	}
	for _, span := range spans {
		code, ok := dollarDelimited(spanText(span, source))
		if parent := span.Parent(); ok && parent != nil {
			parent.ReplaceChild(parent, span, &mathInline{Code: code})
		}
	}
}

func isMathLanguage(lang []byte) bool {
	for _, l := range Languages {
		if string(lang) == l {
			return true
		}
	}
	return false
}

func spanText(span *ast.CodeSpan, source []byte) string {
	var sb strings.Builder
	for c := span.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}
	}
	return sb.String()
}

func dollarDelimited(s string) (string, bool) {
	if len(s) >= 2 && s[0] == '$' && s[len(s)-1] == '$' {
		return s[1 : len(s)-1], true
	}
	return "", false
}

type mathRenderer struct{ e *Extension }

func (r mathRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(kindMathBlock, r.renderBlock)
	reg.Register(kindMathInline, r.renderInline)
}

func (r mathRenderer) renderBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	var buf bytes.Buffer
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}
	if err := r.write(w, strings.TrimSpace(buf.String()), true); err != nil {
		return ast.WalkStop, err
	}
	w.WriteByte('\n')
	return ast.WalkContinue, nil
}

func (r mathRenderer) renderInline(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	if err := r.write(w, node.(*mathInline).Code, false); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkContinue, nil
}

func (r mathRenderer) write(w io.Writer, code string, display bool) error {
	tree, err := parse.Parse(parse.Source{Name: "[markdown]", Code: code}, r.e.Config)
	if err != nil && r.e.OnError != nil {
		r.e.OnError(code, err)
	}
	root := tree.Root
	if d := r.e.Decoration; d != nil {
		root = mathml.Decorate(root, code, *d)
	}
	if display {
		root.SetAttr("display", "block")
	}
	return mathml.Write(w, root)
}
