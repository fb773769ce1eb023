// Package format names the text formats a config value can be read from
// or written to.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	name := "out" + f.Suffix()
//
// # Related Packages
//
//   - github.com/signadot/go-sjson/encode - SJSON and JSON output
//   - github.com/signadot/go-sjson/convert - JSON, YAML and TOML conversion
package format
