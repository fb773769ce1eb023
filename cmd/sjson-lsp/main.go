package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/gops/agent"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"

	"github.com/signadot/go-sjson/debug"
)

const lsName = "sjson-lsp"

var (
	version = "0.0.1"
)

// stdout carries the protocol, so logs go to stderr.
var theLog = slog.New(slog.NewTextHandler(os.Stderr, nil))

func main() {
	ctx := context.Background()
	if debug.LSP() {
		if err := agent.Listen(agent.Options{}); err != nil {
			theLog.Error("gops agent failed", "err", err)
		}
	}
	stream := jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  os.Stdin,
		write: os.Stdout,
	})
	server := newServer()
	handler := protocol.ServerHandler(server, nil)
	conn := jsonrpc2.NewConn(stream)
	server.conn = conn
	conn.Go(ctx, handler)
	<-conn.Done()
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
