package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/signadot/go-sjson/config"
)

const maxHoverValue = 50

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.value == nil {
		return nil, nil
	}
	off := positionToOffset(doc.content, params.Position)
	target := doc.valueAt(off)
	if target == nil {
		return nil, nil
	}
	hoverText := doc.hoverText(target)
	if hoverText == "" {
		return nil, nil
	}
	res := &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}
	if sp, ok := doc.spanOf(target); ok {
		r := spanRange(doc.content, sp)
		res.Range = &r
	}
	return res, nil
}

func (d *document) hoverText(v *config.Value) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("**Type:** %s", typeInfo(v)))
	if p := d.pathOf(v); p != "" {
		parts = append(parts, fmt.Sprintf("**Path:** `%s`", p))
	}
	if info := valueInfo(v); info != "" {
		parts = append(parts, fmt.Sprintf("**Value:** %s", info))
	}
	if v.IsResource("", config.Table) {
		r, err := v.AsResourceRef(config.Table)
		if err == nil {
			parts = append(parts, fmt.Sprintf("**Resource:** `%s`", r))
		}
	}
	return strings.Join(parts, "\n\n")
}

func typeInfo(v *config.Value) string {
	switch v.Kind() {
	case config.NilKind:
		return "null"
	case config.BoolKind:
		return "boolean"
	case config.IntegerKind:
		return "integer"
	case config.FloatKind:
		return "float"
	case config.StringKind:
		return "string"
	case config.DataKind:
		return "data"
	case config.ArrayKind:
		return "array"
	case config.ObjectKind:
		return "object"
	}
	return "unknown"
}

func valueInfo(v *config.Value) string {
	switch v.Kind() {
	case config.ArrayKind:
		return fmt.Sprintf("array with %d elements", v.Size())
	case config.ObjectKind:
		return fmt.Sprintf("object with %d keys", v.Size())
	case config.DataKind:
		return fmt.Sprintf("%d bytes", v.Size())
	}
	val := v.String()
	if len(val) > maxHoverValue {
		val = val[:maxHoverValue] + "..."
	}
	return "`" + val + "`"
}
