// Package libdiff computes differences between config values.
//
// Diff reports a list of changes, each located by a path as understood
// by config.ParsePath. Arrays are aligned with a sequence diff over
// element summaries so that an insertion in the middle of an array is
// reported as one addition rather than a change to every later element.
// Short edits to long strings carry the edit script.
//
// DiffText compares the SJSON renderings of two values line by line.
package libdiff
