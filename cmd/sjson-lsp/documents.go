package main

import (
	"context"
	"sort"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/signadot/go-sjson/config"
	"github.com/signadot/go-sjson/parse"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is an open text document and the result of its last parse.
// When the parse fails value is nil and err holds the *parse.Error.
type document struct {
	uri     string
	content string
	version int32

	value *config.Value
	spans []span
	err   error
}

// span is the source byte range of a parsed value.
type span struct {
	start, end int
}

func newDocument(uri, content string, version int32) *document {
	doc := &document{uri: uri, content: content, version: version}
	doc.analyze()
	return doc
}

// analyze parses the content, recording the span of every value. The tag
// of a value is its 1-based index in spans.
func (d *document) analyze() {
	d.spans = d.spans[:0]
	v, err := parse.ParseTagged([]byte(d.content), func(_ []byte, start, end int) uint64 {
		d.spans = append(d.spans, span{start: start, end: end})
		return uint64(len(d.spans))
	}, parse.WithFilename(d.uri))
	d.value, d.err = v, err
}

// spanOf returns the source range of v, if it was parsed from d.
func (d *document) spanOf(v *config.Value) (span, bool) {
	t := int(v.Tag())
	if t == 0 || t > len(d.spans) {
		return span{}, false
	}
	return d.spans[t-1], true
}

// valueAt returns the innermost value whose span contains off.
func (d *document) valueAt(off int) *config.Value {
	if d.value == nil {
		return nil
	}
	var best *config.Value
	bestLen := -1
	d.value.WalkPaths(func(_ string, x *config.Value) bool {
		sp, ok := d.spanOf(x)
		if !ok || off < sp.start || off >= sp.end {
			return x == d.value
		}
		if n := sp.end - sp.start; bestLen < 0 || n <= bestLen {
			best, bestLen = x, n
		}
		return true
	})
	return best
}

// pathOf returns the path of x in the document tree.
func (d *document) pathOf(x *config.Value) string {
	res := ""
	d.value.WalkPaths(func(p string, y *config.Value) bool {
		if res != "" {
			return false
		}
		if y == x {
			res = p
			return false
		}
		return true
	})
	return res
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) set(doc *document) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[doc.uri] = doc
}

func (ds *documentStore) delete(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (ds *documentStore) uris() []string {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	res := make([]string, 0, len(ds.docs))
	for uri := range ds.docs {
		res = append(res, uri)
	}
	sort.Strings(res)
	return res
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := newDocument(uri, params.TextDocument.Text, params.TextDocument.Version)
	s.docs.set(doc)
	theLog.Debug("opened", "uri", uri, "version", doc.version)
	return s.publishDiagnostics(ctx, doc)
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	old := s.docs.get(uri)
	if old == nil {
		return nil
	}
	content, ok := applyChanges(old.content, params.ContentChanges)
	if !ok {
		return nil
	}
	doc := newDocument(uri, content, params.TextDocument.Version)
	s.docs.set(doc)
	return s.publishDiagnostics(ctx, doc)
}

// applyChanges returns the text after changes. Sync is full: each change
// carries the whole document and the last one wins.
func applyChanges(content string, changes []protocol.TextDocumentContentChangeEvent) (string, bool) {
	if len(changes) == 0 {
		return content, false
	}
	return changes[len(changes)-1].Text, true
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.delete(uri)
	// Clear diagnostics of the closed document
	return s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
}
