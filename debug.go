package jsonval

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// DebugString renders the bridged object graph in a human-readable form
// for logs and debugging. The underlying pretty-printer's statement
// separators (semicolon followed by newline) are collapsed to plain
// newlines. This is a cosmetic contract only, not a parseable format;
// use Encode to produce JSON. An absent Value renders as the empty
// string.
func (v Value) DebugString() string {
	obj, ok := v.Interface()
	if !ok {
		return ""
	}
	return strings.ReplaceAll(spew.Sdump(obj), ";\n", "\n")
}
