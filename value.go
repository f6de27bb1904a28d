package jsonval

// Kind identifies which JSON variant a Value holds.
type Kind int

const (
	// Absent is the sentinel for "no value at this path". It is never
	// produced by decoding, only by failed lookups.
	Absent Kind = iota
	Null
	Bool
	Number
	String
	Array
	Object
)

// String returns the kind name for debugging and error messages.
func (k Kind) String() string {
	switch k {
	case Absent:
		return "absent"
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Value is an immutable JSON value. The zero Value is Absent, which is
// what every miss-safe lookup returns, so Values can be chained without
// nil checks.
//
// Containers exclusively own their children: constructors copy the
// slices and maps they are given, and container projections hand back
// copies, so no two Values ever share mutable state.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	arr  []Value
	obj  map[string]Value
}

// NewString constructs a String value.
func NewString(s string) Value {
	return Value{kind: String, str: s}
}

// NewNumber constructs a Number value. JSON numbers carry double
// precision; integer projection is a lossy convenience, see AsInt.
func NewNumber(f float64) Value {
	return Value{kind: Number, num: f}
}

// NewBool constructs a Bool value.
func NewBool(b bool) Value {
	return Value{kind: Bool, b: b}
}

// NewNull constructs the Null value, i.e. an explicit JSON null literal.
// This is distinct from the zero (absent) Value.
func NewNull() Value {
	return Value{kind: Null}
}

// NewArray constructs an Array value. The elements slice is copied.
func NewArray(elems []Value) Value {
	arr := make([]Value, len(elems))
	copy(arr, elems)
	return Value{kind: Array, arr: arr}
}

// NewObject constructs an Object value. The members map is copied. Key
// order is not preserved; JSON objects are unordered.
func NewObject(members map[string]Value) Value {
	obj := make(map[string]Value, len(members))
	for k, v := range members {
		obj[k] = v
	}
	return Value{kind: Object, obj: obj}
}

// Kind returns the variant this Value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// Exists reports whether the Value holds anything at all, including an
// explicit null. Only Absent reports false.
func (v Value) Exists() bool {
	return v.kind != Absent
}

// IsNull reports whether the Value is the explicit JSON null literal.
// Absent values report false; a missing key is not null.
func (v Value) IsNull() bool {
	return v.kind == Null
}

// ExistsNotNull reports whether the Value exists and is not null.
func (v Value) ExistsNotNull() bool {
	return v.Exists() && !v.IsNull()
}

// Equal reports structural equality: same kind and recursively equal
// payloads. Numbers compare by numeric value, not by source
// representation, so a decoded 1 equals a decoded 1.0.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Absent, Null:
		return true
	case Bool:
		return v.b == other.b
	case Number:
		return v.num == other.num
	case String:
		return v.str == other.str
	case Array:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for k, elem := range v.obj {
			otherElem, ok := other.obj[k]
			if !ok || !elem.Equal(otherElem) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
