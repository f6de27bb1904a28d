package jsonval

// Index returns element i of an Array value. Out-of-range indexes,
// negative indexes and non-array receivers all yield an absent Value;
// indexing never fails.
func (v Value) Index(i int) Value {
	if v.kind != Array || i < 0 || i >= len(v.arr) {
		return Value{}
	}
	return v.arr[i]
}

// Key returns the member named k of an Object value. Missing keys and
// non-object receivers yield an absent Value.
func (v Value) Key(k string) Value {
	if v.kind != Object {
		return Value{}
	}
	member, ok := v.obj[k]
	if !ok {
		return Value{}
	}
	return member
}

// Len returns the element count of an Array or the member count of an
// Object, and 0 for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.arr)
	case Object:
		return len(v.obj)
	default:
		return 0
	}
}

// AsString returns the payload of a String value. The projection never
// coerces: a Number does not stringify, and a String holding "42" does
// not project to a number.
func (v Value) AsString() (string, bool) {
	if v.kind != String {
		return "", false
	}
	return v.str, true
}

// AsNumber returns the payload of a Number value as a float64.
func (v Value) AsNumber() (float64, bool) {
	if v.kind != Number {
		return 0, false
	}
	return v.num, true
}

// AsFloat64 is an alias for AsNumber.
func (v Value) AsFloat64() (float64, bool) {
	return v.AsNumber()
}

// AsInt returns the payload of a Number value truncated toward zero.
// This is a lossy convenience, not a validated integer parse: callers
// needing exact integer semantics must check range and fractional part
// themselves.
func (v Value) AsInt() (int64, bool) {
	if v.kind != Number {
		return 0, false
	}
	return int64(v.num), true
}

// AsBool returns the payload of a Bool value.
func (v Value) AsBool() (bool, bool) {
	if v.kind != Bool {
		return false, false
	}
	return v.b, true
}

// AsArray returns a copy of an Array value's elements.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != Array {
		return nil, false
	}
	elems := make([]Value, len(v.arr))
	copy(elems, v.arr)
	return elems, true
}

// AsObject returns a copy of an Object value's members.
func (v Value) AsObject() (map[string]Value, bool) {
	if v.kind != Object {
		return nil, false
	}
	members := make(map[string]Value, len(v.obj))
	for k, elem := range v.obj {
		members[k] = elem
	}
	return members, true
}
