package lsp

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"testing"
	"time"

	"amath.elv.sh/pkg/parse"
	"amath.elv.sh/pkg/symbol"
	"github.com/google/go-cmp/cmp"
	lsp "github.com/sourcegraph/go-lsp"
	"github.com/sourcegraph/jsonrpc2"
)

const testURI = lsp.DocumentURI("file:///test.amath")

type client struct {
	conn  *jsonrpc2.Conn
	diags chan lsp.PublishDiagnosticsParams
}

func setup(t *testing.T) *client {
	ctx, cancel := context.WithCancel(context.Background())
	serverSide, clientSide := net.Pipe()
	s := newServer(parse.Config{Symbols: symbol.BuiltinTable()})
	serverConn := jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(serverSide, jsonrpc2.VSCodeObjectCodec{}), handler(s))

	c := &client{diags: make(chan lsp.PublishDiagnosticsParams, 10)}
	c.conn = jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(clientSide, jsonrpc2.VSCodeObjectCodec{}),
		jsonrpc2.HandlerWithError(c.handle))
	t.Cleanup(func() {
		c.conn.Close()
		serverConn.Close()
		cancel()
	})
	return c
}

func (c *client) handle(_ context.Context, _ *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
	if req.Method == "textDocument/publishDiagnostics" && req.Params != nil {
		var params lsp.PublishDiagnosticsParams
		if err := json.Unmarshal(*req.Params, &params); err == nil {
			c.diags <- params
		}
	}
	return nil, nil
}

func (c *client) call(t *testing.T, method string, params, result any) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.conn.Call(ctx, method, params, result)
}

func (c *client) notify(t *testing.T, method string, params any) {
	t.Helper()
	if err := c.conn.Notify(context.Background(), method, params); err != nil {
		t.Fatalf("notify %s: %v", method, err)
	}
}

func (c *client) nextDiagnostics(t *testing.T) lsp.PublishDiagnosticsParams {
	t.Helper()
	select {
	case d := <-c.diags:
		return d
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for diagnostics")
		return lsp.PublishDiagnosticsParams{}
	}
}

func (c *client) open(t *testing.T, text string) {
	t.Helper()
	c.notify(t, "textDocument/didOpen", lsp.DidOpenTextDocumentParams{
		TextDocument: lsp.TextDocumentItem{URI: testURI, Text: text}})
}

func TestInitialize(t *testing.T) {
	c := setup(t)
	var result lsp.InitializeResult
	if err := c.call(t, "initialize", lsp.InitializeParams{}, &result); err != nil {
		t.Fatal(err)
	}
	caps := result.Capabilities
	if !caps.HoverProvider || caps.CompletionProvider == nil {
		t.Errorf("capabilities %+v do not include hover and completion", caps)
	}
}

func TestUnknownMethod(t *testing.T) {
	c := setup(t)
	err := c.call(t, "textDocument/rename", struct{}{}, nil)
	var rpcErr *jsonrpc2.Error
	if !errors.As(err, &rpcErr) || rpcErr.Code != jsonrpc2.CodeMethodNotFound {
		t.Errorf("got error %v, want method not found", err)
	}
}

func TestDiagnostics(t *testing.T) {
	c := setup(t)
	c.open(t, "(x")
	want := lsp.PublishDiagnosticsParams{
		URI: testURI,
		Diagnostics: []lsp.Diagnostic{{
			Range: lsp.Range{
				Start: lsp.Position{Line: 0, Character: 0},
				End:   lsp.Position{Line: 0, Character: 1}},
			Severity: lsp.Error,
			Source:   "amath",
			Message:  "unterminated bracket (",
		}},
	}
	if diff := cmp.Diff(want, c.nextDiagnostics(t)); diff != "" {
		t.Errorf("diagnostics (-want +got):\n%s", diff)
	}

	c.notify(t, "textDocument/didChange", lsp.DidChangeTextDocumentParams{
		TextDocument:   lsp.VersionedTextDocumentIdentifier{TextDocumentIdentifier: lsp.TextDocumentIdentifier{URI: testURI}},
		ContentChanges: []lsp.TextDocumentContentChangeEvent{{Text: "(x)"}},
	})
	if got := c.nextDiagnostics(t); len(got.Diagnostics) != 0 {
		t.Errorf("got diagnostics %v after fixing the source, want none", got.Diagnostics)
	}

	c.notify(t, "textDocument/didClose", lsp.DidCloseTextDocumentParams{
		TextDocument: lsp.TextDocumentIdentifier{URI: testURI}})
	if got := c.nextDiagnostics(t); len(got.Diagnostics) != 0 {
		t.Errorf("got diagnostics %v after closing, want none", got.Diagnostics)
	}
}

func TestHover(t *testing.T) {
	c := setup(t)
	c.open(t, "x^2 + sin y")
	c.nextDiagnostics(t)

	var result lsp.Hover
	err := c.call(t, "textDocument/hover", lsp.TextDocumentPositionParams{
		TextDocument: lsp.TextDocumentIdentifier{URI: testURI},
		Position:     lsp.Position{Line: 0, Character: 7},
	}, &result)
	if err != nil {
		t.Fatal(err)
	}
	sin := symbol.BuiltinTable().Get("sin")
	if len(result.Contents) != 1 || result.Contents[0].Value != hoverText(sin) {
		t.Errorf("hover contents %v, want %q", result.Contents, hoverText(sin))
	}
	wantRange := lsp.Range{
		Start: lsp.Position{Line: 0, Character: 6},
		End:   lsp.Position{Line: 0, Character: 9}}
	if result.Range == nil || *result.Range != wantRange {
		t.Errorf("hover range %v, want %v", result.Range, wantRange)
	}

	result = lsp.Hover{}
	err = c.call(t, "textDocument/hover", lsp.TextDocumentPositionParams{
		TextDocument: lsp.TextDocumentIdentifier{URI: testURI},
		Position:     lsp.Position{Line: 0, Character: 0},
	}, &result)
	if err != nil || len(result.Contents) != 0 {
		t.Errorf("hover over a literal -> (%v, %v), want empty", result.Contents, err)
	}
}

func TestCompletion(t *testing.T) {
	c := setup(t)
	c.open(t, "x + alp")
	c.nextDiagnostics(t)

	var items []lsp.CompletionItem
	err := c.call(t, "textDocument/completion", lsp.CompletionParams{
		TextDocumentPositionParams: lsp.TextDocumentPositionParams{
			TextDocument: lsp.TextDocumentIdentifier{URI: testURI},
			Position:     lsp.Position{Line: 0, Character: 7},
		},
	}, &items)
	if err != nil {
		t.Fatal(err)
	}
	var alpha *lsp.CompletionItem
	for i := range items {
		if items[i].Label == "alpha" {
			alpha = &items[i]
		}
	}
	if alpha == nil {
		t.Fatalf("completion items %v do not include alpha", items)
	}
	wantEdit := lsp.TextEdit{
		Range: lsp.Range{
			Start: lsp.Position{Line: 0, Character: 4},
			End:   lsp.Position{Line: 0, Character: 7}},
		NewText: "alpha",
	}
	if alpha.TextEdit == nil || *alpha.TextEdit != wantEdit {
		t.Errorf("text edit %v, want %v", alpha.TextEdit, wantEdit)
	}
	if alpha.Kind != lsp.CIKConstant {
		t.Errorf("kind %v, want constant", alpha.Kind)
	}
}

func TestCompletion_NoPrefix(t *testing.T) {
	c := setup(t)
	c.open(t, "x + ")
	c.nextDiagnostics(t)

	var items []lsp.CompletionItem
	err := c.call(t, "textDocument/completion", lsp.CompletionParams{
		TextDocumentPositionParams: lsp.TextDocumentPositionParams{
			TextDocument: lsp.TextDocumentIdentifier{URI: testURI},
			Position:     lsp.Position{Line: 0, Character: 4},
		},
	}, &items)
	if err != nil || len(items) != 0 {
		t.Errorf("completion -> (%v, %v), want no items", items, err)
	}
}

var positionTests = []struct {
	s   string
	idx int
	pos lsp.Position
}{
	{"ab", 1, lsp.Position{Line: 0, Character: 1}},
	{"a\nb", 2, lsp.Position{Line: 1, Character: 0}},
	{"a\r\nb", 3, lsp.Position{Line: 1, Character: 0}},
	{"a\r\nb", 1, lsp.Position{Line: 0, Character: 1}},
	{"a\rb\n\nc", 5, lsp.Position{Line: 3, Character: 0}},
	{"α+x", 3, lsp.Position{Line: 0, Character: 2}},
	{"𝔸x", 4, lsp.Position{Line: 0, Character: 2}},
}

func TestPositions(t *testing.T) {
	for _, test := range positionTests {
		if got := lspPositionFromIdx(test.s, test.idx); got != test.pos {
			t.Errorf("lspPositionFromIdx(%q, %d) -> %v, want %v", test.s, test.idx, got, test.pos)
		}
		if got := lspPositionToIdx(test.s, test.pos); got != test.idx {
			t.Errorf("lspPositionToIdx(%q, %v) -> %d, want %d", test.s, test.pos, got, test.idx)
		}
	}
}
