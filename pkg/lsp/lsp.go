// Package lsp implements a language server for AsciiMath.
//
// The server publishes parse errors as diagnostics, describes the symbol under
// the cursor on hover, and completes symbol names.
package lsp

import (
	"context"
	"os"

	"amath.elv.sh/pkg/logutil"
	"amath.elv.sh/pkg/prog"
	"amath.elv.sh/pkg/rc"
	"github.com/sourcegraph/jsonrpc2"
)

var logger = logutil.GetLogger("[lsp] ")

// Program is the LSP subprogram.
var Program prog.Program = program{}

type program struct{}

func (program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if !f.LSP {
		return prog.ErrNotSuitable
	}
	if len(args) > 0 {
		return prog.BadUsage("arguments are not allowed with --lsp")
	}
	cfg, err := rc.Setup(f)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := newServer(cfg.ParseConfig(nil))
	conn := jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(transport{fds[0], fds[1]}, jsonrpc2.VSCodeObjectCodec{}),
		handler(s))
	logger.Println("serving")
	<-conn.DisconnectNotify()
	logger.Println("client disconnected")
	return nil
}

type transport struct{ in, out *os.File }

func (c transport) Read(p []byte) (int, error)  { return c.in.Read(p) }
func (c transport) Write(p []byte) (int, error) { return c.out.Write(p) }

func (c transport) Close() error {
	if err := c.in.Close(); err != nil {
		c.out.Close()
		return err
	}
	return c.out.Close()
}
