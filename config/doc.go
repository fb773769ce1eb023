// Package config provides Value, the dynamically typed tree produced by
// parsing SJSON configuration files.
//
// A Value holds exactly one of Nil, Bool, Integer, Float, String, Data,
// Array or Object. Objects keep their entries in insertion order and never
// hold two entries with the same key.
//
// Reads come in four forms:
//
//   - Is predicates (IsString, IsNumber, ...).
//   - Must accessors, which panic with a *ContractViolation when the kind
//     does not match. They are for code that has already checked.
//   - As accessors, which return an error wrapping ErrWrongKind.
//   - To and Get accessors, which record the first failure in an
//     *ErrorState together with the file, line and column of the value.
//
// Index and Key never fail: a missing element is the nil *Value, which
// reports NilKind and can be indexed further.
package config
