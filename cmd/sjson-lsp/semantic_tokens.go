package main

import (
	"context"
	"sort"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/signadot/go-sjson/config"
	"github.com/signadot/go-sjson/encode"
)

// These must match the legend in Initialize.
var (
	tokenTypes = []protocol.SemanticTokenTypes{
		protocol.SemanticTokenKeyword,
		protocol.SemanticTokenString,
		protocol.SemanticTokenNumber,
		protocol.SemanticTokenOperator,
		protocol.SemanticTokenProperty,
	}
	tokenModifiers = []protocol.SemanticTokenModifiers{}
)

// Map encoder color attributes to LSP semantic token types
func mapColorToSemanticTokenType(kind config.Kind, attr encode.ColorAttr) protocol.SemanticTokenTypes {
	switch attr {
	case encode.FieldColor:
		return protocol.SemanticTokenProperty
	case encode.SepColor:
		return protocol.SemanticTokenOperator
	case encode.LiteralMultiColor:
		return protocol.SemanticTokenString
	}
	switch kind {
	case config.IntegerKind, config.FloatKind:
		return protocol.SemanticTokenNumber
	case config.BoolKind, config.NilKind:
		return protocol.SemanticTokenKeyword
	}
	return protocol.SemanticTokenString
}

type tokenInfo struct {
	line      uint32
	character uint32
	length    uint32
	tokenType protocol.SemanticTokenTypes
}

// collectTokens lists the tokens of d between the byte offsets from and
// to, sorted by position.
func (d *document) collectTokens(from, to int) []tokenInfo {
	if d.value == nil {
		return nil
	}
	var tokenList []tokenInfo
	add := func(sp span, typ protocol.SemanticTokenTypes) {
		if sp.end <= from || sp.start >= to {
			return
		}
		// Tokens cannot span lines, keep the first one.
		if nl := strings.IndexByte(d.content[sp.start:sp.end], '\n'); nl >= 0 {
			sp.end = sp.start + nl
		}
		if sp.end <= sp.start {
			return
		}
		start := offsetToPosition(d.content, sp.start)
		end := offsetToPosition(d.content, sp.end)
		tokenList = append(tokenList, tokenInfo{
			line:      start.Line,
			character: start.Character,
			length:    end.Character - start.Character,
			tokenType: typ,
		})
	}
	d.value.WalkPaths(func(_ string, v *config.Value) bool {
		if v.IsObject() {
			for _, c := range v.Fields() {
				sp, ok := d.spanOf(c)
				if !ok {
					continue
				}
				key, sep, ok := keySpan(d.content, sp.start)
				if !ok {
					continue
				}
				add(key, mapColorToSemanticTokenType(config.ObjectKind, encode.FieldColor))
				add(sep, mapColorToSemanticTokenType(config.ObjectKind, encode.SepColor))
			}
			return true
		}
		if !v.Kind().IsLeaf() {
			return true
		}
		sp, ok := d.spanOf(v)
		if !ok {
			return true
		}
		attr := encode.ValueColor
		if v.Kind() == config.DataKind {
			attr = encode.LiteralMultiColor
		}
		add(sp, mapColorToSemanticTokenType(v.Kind(), attr))
		return true
	})
	sort.Slice(tokenList, func(i, j int) bool {
		if tokenList[i].line != tokenList[j].line {
			return tokenList[i].line < tokenList[j].line
		}
		return tokenList[i].character < tokenList[j].character
	})
	return tokenList
}

// encodeTokens delta encodes tokens in LSP format.
func encodeTokens(tokenList []tokenInfo) []uint32 {
	typeMap := make(map[protocol.SemanticTokenTypes]uint32)
	for i, tt := range tokenTypes {
		typeMap[tt] = uint32(i)
	}
	tokens := []uint32{}
	var prevLine, prevChar uint32
	for _, ti := range tokenList {
		deltaLine := ti.line - prevLine
		deltaChar := ti.character
		if deltaLine == 0 {
			deltaChar = ti.character - prevChar
		}
		tokens = append(tokens, deltaLine, deltaChar, ti.length, typeMap[ti.tokenType], 0)
		prevLine = ti.line
		prevChar = ti.character
	}
	return tokens
}

// keySpan finds the key and separator preceding the value starting at
// off. It fails when a comment sits between them.
func keySpan(content string, off int) (key, sep span, ok bool) {
	i := skipSpaceBack(content, off)
	if i == 0 || (content[i-1] != '=' && content[i-1] != ':') {
		return
	}
	sep = span{start: i - 1, end: i}
	end := skipSpaceBack(content, i-1)
	if end == 0 {
		return
	}
	start := end
	if content[end-1] == '"' {
		start = end - 1
		for start > 0 {
			start--
			if content[start] == '"' && !escaped(content, start) {
				break
			}
		}
		if content[start] != '"' || start == end-1 {
			return
		}
	} else {
		for start > 0 && !isKeyDelim(content[start-1]) {
			start--
		}
	}
	if start == end {
		return
	}
	return span{start: start, end: end}, sep, true
}

func skipSpaceBack(content string, i int) int {
	for i > 0 {
		switch content[i-1] {
		case ' ', '\t', '\n', '\r':
			i--
		default:
			return i
		}
	}
	return i
}

func isKeyDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', ',', '{', '}', '[', ']', '=', ':':
		return true
	}
	return false
}

// escaped reports whether the byte at i follows an odd run of backslashes.
func escaped(content string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && content[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.value == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	return &protocol.SemanticTokens{
		Data: encodeTokens(doc.collectTokens(0, len(doc.content))),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.value == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	from := positionToOffset(doc.content, params.Range.Start)
	to := positionToOffset(doc.content, params.Range.End)
	return &protocol.SemanticTokens{
		Data: encodeTokens(doc.collectTokens(from, to)),
	}, nil
}
