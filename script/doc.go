// Package script exposes config values to an embedded scripting host.
//
// A Handle owns a copy of a value and is reference counted: the host
// calls AddRef when it stores a handle and Release when it drops one.
// Indexing returns a new handle holding a copy of the selected node, and
// assignment copies. The typed conversions never fail: a value of the
// wrong kind converts to the zero value.
//
// Methods lists the operations under the names a host registers them
// with, so a binding layer can be generated from the table.
package script
