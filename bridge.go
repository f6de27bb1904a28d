package jsonval

import "encoding/json"

// FromInterface converts an untyped object graph, as produced by a
// generic JSON codec, into a Value. It is total: it never fails, and
// anything it does not recognize maps to an absent Value.
//
// Classification runs containers first, then scalars. Numbers are
// matched before the generic fallback and booleans are matched on their
// own type, so a decoded 1 is always a Number and a decoded true is
// always a Bool; encoding/json keeps the two apart at the type level,
// which makes value-range heuristics unnecessary here.
func FromInterface(x interface{}) Value {
	switch t := x.(type) {
	case map[string]interface{}:
		obj := make(map[string]Value, len(t))
		for k, elem := range t {
			obj[k] = FromInterface(elem)
		}
		return Value{kind: Object, obj: obj}
	case []interface{}:
		arr := make([]Value, len(t))
		for i, elem := range t {
			arr[i] = FromInterface(elem)
		}
		return Value{kind: Array, arr: arr}
	case string:
		return NewString(t)
	case json.Number:
		// The codec adapter decodes with UseNumber, so this is the
		// common numeric case. A Number that cannot parse as float64
		// is unrecognized rather than silently zero.
		f, err := t.Float64()
		if err != nil {
			return Value{}
		}
		return NewNumber(f)
	case float64:
		return NewNumber(t)
	case float32:
		return NewNumber(float64(t))
	case int:
		return NewNumber(float64(t))
	case int32:
		return NewNumber(float64(t))
	case int64:
		return NewNumber(float64(t))
	case uint:
		return NewNumber(float64(t))
	case uint32:
		return NewNumber(float64(t))
	case uint64:
		return NewNumber(float64(t))
	case bool:
		return NewBool(t)
	case nil:
		return NewNull()
	default:
		return Value{}
	}
}

// Interface converts the Value back into an untyped object graph. The
// second result is false only when the Value has no representable
// object form, which happens only for Absent; callers must treat that
// as "cannot be represented", distinct from JSON null, which maps to
// (nil, true).
//
// Absent children of containers are excluded from the result: they mark
// failed lookups, not data, and must not reach a serializer.
func (v Value) Interface() (interface{}, bool) {
	switch v.kind {
	case Object:
		obj := make(map[string]interface{}, len(v.obj))
		for k, elem := range v.obj {
			x, ok := elem.Interface()
			if !ok {
				continue
			}
			obj[k] = x
		}
		return obj, true
	case Array:
		arr := make([]interface{}, 0, len(v.arr))
		for _, elem := range v.arr {
			x, ok := elem.Interface()
			if !ok {
				continue
			}
			arr = append(arr, x)
		}
		return arr, true
	case String:
		return v.str, true
	case Number:
		return v.num, true
	case Bool:
		return v.b, true
	case Null:
		return nil, true
	default: // Absent
		return nil, false
	}
}
