package main

import (
	"unicode/utf8"

	"go.lsp.dev/protocol"
)

// Positions on the wire count UTF-16 code units from 0.

func offsetToPosition(content string, off int) protocol.Position {
	if off > len(content) {
		off = len(content)
	}
	var line, col uint32
	for i, r := range content {
		if i >= off {
			break
		}
		if r == '\n' {
			line++
			col = 0
			continue
		}
		col += utf16Len(r)
	}
	return protocol.Position{Line: line, Character: col}
}

func positionToOffset(content string, pos protocol.Position) int {
	var line, col uint32
	for i, r := range content {
		if line == pos.Line && col >= pos.Character {
			return i
		}
		if r == '\n' {
			if line == pos.Line {
				return i
			}
			line++
			col = 0
			continue
		}
		if line == pos.Line {
			col += utf16Len(r)
		}
	}
	return len(content)
}

func spanRange(content string, sp span) protocol.Range {
	return protocol.Range{
		Start: offsetToPosition(content, sp.start),
		End:   offsetToPosition(content, sp.end),
	}
}

func utf16Len(r rune) uint32 {
	if r >= 0x10000 && r <= utf8.MaxRune {
		return 2
	}
	return 1
}
