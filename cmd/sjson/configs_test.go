package main

import (
	"testing"

	"github.com/signadot/go-sjson/format"
)

func TestNormPath(t *testing.T) {
	tests := map[string]string{
		"":       "",
		"$.a":    "$.a",
		"a.b":    "$.a.b",
		"[0]":    "$[0]",
		"..name": "$..name",
		"$[1].x": "$[1].x",
	}
	for in, want := range tests {
		if got := normPath(in); got != want {
			t.Errorf("%q: got %q want %q", in, got, want)
		}
	}
}

func TestFormats(t *testing.T) {
	cfg := &MainConfig{}
	if got := cfg.inFormat("x.toml"); got != format.TOMLFormat {
		t.Errorf("got %s", got)
	}
	if got := cfg.inFormat("-"); got != format.SJSONFormat {
		t.Errorf("got %s", got)
	}
	if got := cfg.outFormat(); got != format.SJSONFormat {
		t.Errorf("got %s", got)
	}
	cfg.Y = true
	if got := cfg.inFormat("x.json"); got != format.YAMLFormat {
		t.Errorf("got %s", got)
	}
	j := format.JSONFormat
	cfg.InFormat = &j
	if got := cfg.inFormat("x.toml"); got != format.JSONFormat {
		t.Errorf("got %s", got)
	}
	if got := cfg.outFormat(); got != format.YAMLFormat {
		t.Errorf("got %s", got)
	}
	if count(true, false, true) != 2 {
		t.Error("count")
	}
}
