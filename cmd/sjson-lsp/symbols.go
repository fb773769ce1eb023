package main

import (
	"context"
	"strconv"

	"go.lsp.dev/protocol"

	"github.com/signadot/go-sjson/config"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.value == nil {
		return nil, nil
	}
	syms := doc.symbols(doc.value)
	res := make([]interface{}, len(syms))
	for i := range syms {
		res[i] = syms[i]
	}
	return res, nil
}

// symbols outlines the entries of an Object or the elements of an Array.
func (d *document) symbols(v *config.Value) []protocol.DocumentSymbol {
	var res []protocol.DocumentSymbol
	switch v.Kind() {
	case config.ObjectKind:
		for k, c := range v.Fields() {
			sp, ok := d.spanOf(c)
			if !ok {
				continue
			}
			full, sel := sp, sp
			if key, _, ok := keySpan(d.content, sp.start); ok {
				full.start, sel = key.start, key
			}
			res = append(res, d.symbol(k, c, full, sel))
		}
	case config.ArrayKind:
		for i, c := range v.Elements() {
			sp, ok := d.spanOf(c)
			if !ok {
				continue
			}
			res = append(res, d.symbol(strconv.Itoa(i), c, sp, sp))
		}
	}
	return res
}

func (d *document) symbol(name string, v *config.Value, full, sel span) protocol.DocumentSymbol {
	sym := protocol.DocumentSymbol{
		Name:           name,
		Detail:         typeInfo(v),
		Kind:           symbolKind(v),
		Range:          spanRange(d.content, full),
		SelectionRange: spanRange(d.content, sel),
	}
	if name == "" {
		sym.Name = `""`
	}
	sym.Children = d.symbols(v)
	return sym
}

func symbolKind(v *config.Value) protocol.SymbolKind {
	switch v.Kind() {
	case config.ObjectKind:
		if v.IsResource("", config.Table) {
			return protocol.SymbolKindFile
		}
		return protocol.SymbolKindObject
	case config.ArrayKind:
		return protocol.SymbolKindArray
	case config.BoolKind:
		return protocol.SymbolKindBoolean
	case config.IntegerKind, config.FloatKind:
		return protocol.SymbolKindNumber
	case config.NilKind:
		return protocol.SymbolKindNull
	}
	return protocol.SymbolKindString
}
