package main

import (
	"bytes"
	"context"

	"go.lsp.dev/protocol"

	"github.com/signadot/go-sjson/encode"
	"github.com/signadot/go-sjson/format"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.value == nil {
		// If parsing fails, return no edits
		return nil, nil
	}
	// The tree does not keep comments, formatting would drop them.
	if hasComments(doc.content) {
		return nil, nil
	}
	opts := []encode.EncodeOption{encode.EncodeFormat(format.SJSONFormat)}
	if params.Options.TabSize > 0 {
		opts = append(opts, encode.Indent(int(params.Options.TabSize)))
	}
	var buf bytes.Buffer
	err := encode.Encode(doc.value, &buf, opts...)
	if err != nil {
		theLog.Warn("formatting failed", "uri", doc.uri, "err", err)
		return nil, nil
	}
	formatted := buf.String()
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	// Return a single edit that replaces the entire document
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   offsetToPosition(doc.content, len(doc.content)),
			},
			NewText: formatted,
		},
	}, nil
}

// hasComments reports whether content holds a comment outside of strings
// and data blocks.
func hasComments(content string) bool {
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '"':
			if len(content) >= i+3 && content[i:i+3] == `"""` {
				end := bytes.Index([]byte(content[i+3:]), []byte(`"""`))
				if end < 0 {
					return false
				}
				i += 3 + end + 2
				for i+1 < len(content) && content[i+1] == '"' {
					i++
				}
				continue
			}
			for i++; i < len(content) && content[i] != '"'; i++ {
				if content[i] == '\\' {
					i++
				}
			}
		case '/':
			if i+1 < len(content) && (content[i+1] == '/' || content[i+1] == '*') {
				return true
			}
		}
	}
	return false
}
