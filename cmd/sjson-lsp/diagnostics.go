package main

import (
	"context"
	"errors"

	"go.lsp.dev/protocol"

	"github.com/signadot/go-sjson/parse"
)

const diagSource = "sjson"

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) error {
	return s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Diagnostics: doc.diagnostics(),
	})
}

// diagnostics reports the parse failure of d, if any. Parse errors stop at
// the first problem so there is at most one.
func (d *document) diagnostics() []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if d.err == nil {
		return res
	}
	diag := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Source:   diagSource,
		Message:  d.err.Error(),
	}
	var pe *parse.Error
	if errors.As(d.err, &pe) {
		diag.Message = pe.Class.Error() + ": " + pe.Err.Error()
		end := pe.Offset + 1
		if end > len(d.content) {
			end = len(d.content)
		}
		diag.Range = spanRange(d.content, span{start: pe.Offset, end: end})
	}
	return append(res, diag)
}
