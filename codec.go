package jsonval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	stderrors "errors"

	"github.com/jrudd/jsonval/errors"
)

// Decode parses raw JSON bytes into a Value. Byte-level parsing is
// delegated to encoding/json; its errors are wrapped as decode errors
// with the original error reachable through Unwrap. All navigation
// after a successful Decode is failure-free.
func Decode(data []byte, opts DecodeOptions) (Value, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber() // numbers are read as json.Number, not float64

	var root interface{}
	if err := decoder.Decode(&root); err != nil {
		if stderrors.Is(err, io.EOF) {
			// Decode returns io.EOF for an empty stream and for a
			// stream holding only whitespace.
			return Value{}, errors.NewDecodeError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		if stderrors.As(err, &syntaxError) {
			return Value{}, errors.NewDecodeError(
				fmt.Sprintf("JSON syntax error at offset %d", syntaxError.Offset),
				err,
			)
		}
		if stderrors.As(err, &unmarshalTypeError) {
			return Value{}, errors.NewDecodeError(
				fmt.Sprintf("JSON type error at offset %d for type %s", unmarshalTypeError.Offset, unmarshalTypeError.Type),
				err,
			)
		}
		return Value{}, errors.NewDecodeError("failed to decode JSON", err)
	}

	// Reject trailing data after the first JSON value. Whitespace up to
	// EOF is fine; a second value or a syntax error in the tail is not.
	if decoder.More() {
		var trailing interface{}
		if err := decoder.Decode(&trailing); err != nil {
			if !stderrors.Is(err, io.EOF) {
				return Value{}, errors.NewDecodeError("invalid trailing data after first JSON value", err)
			}
		} else {
			return Value{}, errors.NewDecodeError("multiple JSON values found at the root", errors.ErrMultipleJSON)
		}
	}

	// encoding/json accepts top-level scalars unconditionally, so
	// fragment tolerance is enforced here rather than in the decoder.
	if !opts.AllowFragments {
		switch root.(type) {
		case map[string]interface{}, []interface{}:
		default:
			return Value{}, errors.NewDecodeError("top-level value is not an object or array", errors.ErrFragmentRoot)
		}
	}

	return FromInterface(root), nil
}

// DecodeString parses JSON from a string.
func DecodeString(s string, opts DecodeOptions) (Value, error) {
	// An all-whitespace string reaches the same empty-input error as an
	// empty reader, but checking up front gives the input category.
	if strings.TrimSpace(s) == "" {
		return Value{}, errors.NewInputError("input string is empty or consists only of whitespace", errors.ErrEmptyInput)
	}
	return Decode([]byte(s), opts)
}

// Encode serializes a Value to raw JSON bytes. A Value with no
// representable object form, which can only be Absent, encodes to an
// empty byte slice with no error; callers that need to detect this
// lossy fallback must inspect the output length. Failures reported by
// the serializer itself, such as a non-finite number, are wrapped as
// encode errors and propagated.
func Encode(v Value, opts EncodeOptions) ([]byte, error) {
	obj, ok := v.Interface()
	if !ok {
		return []byte{}, nil
	}

	var out []byte
	var err error
	if opts.Pretty {
		indent := opts.Indent
		if indent == "" {
			indent = "  "
		}
		out, err = json.MarshalIndent(obj, "", indent)
	} else {
		out, err = json.Marshal(obj)
	}
	if err != nil {
		return nil, errors.NewEncodeError("failed to encode value", err)
	}
	return out, nil
}
