// Package jsonval provides an in-memory representation of a
// dynamically-typed JSON value and a bidirectional bridge between that
// representation and the untyped object graph produced by encoding/json
// (nested map[string]interface{}, []interface{}, string, number, bool, nil).
//
// A Value is a tagged union over the JSON grammar plus an Absent sentinel
// that failed lookups return instead of an error. Navigation never panics
// and never throws:
//
//	v, err := jsonval.Decode(data, jsonval.DecodeOptions{})
//	if err != nil {
//		// malformed input surfaces here, and only here
//	}
//	name, ok := v.Key("user").Key("name").AsString()
//
// Lookups on the wrong kind, out-of-range indexes and missing keys all
// yield an absent Value, so chains like the one above are always safe.
// Typed projections (AsString, AsNumber, AsBool, ...) report failure via a
// comma-ok result and never coerce across kinds.
//
// Values are immutable once constructed and may be read concurrently
// without coordination.
package jsonval
