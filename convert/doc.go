// Package convert translates config values to and from JSON, YAML and
// TOML.
//
// JSON input may carry comments and trailing commas. YAML input keeps the
// order of mapping entries. TOML has no null, so a tree holding Nil
// values cannot be written as TOML, and TOML input yields objects whose
// entries follow the order of the document.
package convert
