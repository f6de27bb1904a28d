package jsonval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{Absent, "absent"},
		{Null, "null"},
		{Bool, "bool"},
		{Number, "number"},
		{String, "string"},
		{Array, "array"},
		{Object, "object"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.kind.String())
	}
}

func TestValue_ZeroValueIsAbsent(t *testing.T) {
	var v Value
	assert.Equal(t, Absent, v.Kind())
	assert.False(t, v.Exists())
	assert.False(t, v.IsNull())
	assert.False(t, v.ExistsNotNull())
}

func TestValue_Predicates(t *testing.T) {
	tests := []struct {
		name          string
		value         Value
		exists        bool
		isNull        bool
		existsNotNull bool
	}{
		{"absent", Value{}, false, false, false},
		{"null", NewNull(), true, true, false},
		{"bool", NewBool(false), true, false, true},
		{"number", NewNumber(0), true, false, true},
		{"string", NewString(""), true, false, true},
		{"array", NewArray(nil), true, false, true},
		{"object", NewObject(nil), true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.exists, tt.value.Exists())
			assert.Equal(t, tt.isNull, tt.value.IsNull())
			assert.Equal(t, tt.existsNotNull, tt.value.ExistsNotNull())
		})
	}
}

func TestValue_Equal(t *testing.T) {
	tests := []struct {
		name     string
		a        Value
		b        Value
		expected bool
	}{
		{"absent equals absent", Value{}, Value{}, true},
		{"null equals null", NewNull(), NewNull(), true},
		{"null is not absent", NewNull(), Value{}, false},
		{"equal strings", NewString("x"), NewString("x"), true},
		{"different strings", NewString("x"), NewString("y"), false},
		{"equal numbers", NewNumber(1), NewNumber(1.0), true},
		{"different numbers", NewNumber(1), NewNumber(2), false},
		{"number is not bool", NewNumber(1), NewBool(true), false},
		{"equal bools", NewBool(true), NewBool(true), true},
		{"different bools", NewBool(true), NewBool(false), false},
		{
			"equal arrays",
			NewArray([]Value{NewString("a"), NewNumber(1)}),
			NewArray([]Value{NewString("a"), NewNumber(1)}),
			true,
		},
		{
			"arrays of different length",
			NewArray([]Value{NewString("a")}),
			NewArray([]Value{NewString("a"), NewString("a")}),
			false,
		},
		{
			"arrays differ in element",
			NewArray([]Value{NewString("a")}),
			NewArray([]Value{NewString("b")}),
			false,
		},
		{
			"equal objects",
			NewObject(map[string]Value{"a": NewNumber(1), "b": NewNull()}),
			NewObject(map[string]Value{"b": NewNull(), "a": NewNumber(1)}),
			true,
		},
		{
			"objects differ in key",
			NewObject(map[string]Value{"a": NewNumber(1)}),
			NewObject(map[string]Value{"b": NewNumber(1)}),
			false,
		},
		{
			"objects differ in value",
			NewObject(map[string]Value{"a": NewNumber(1)}),
			NewObject(map[string]Value{"a": NewNumber(2)}),
			false,
		},
		{
			"nested structures",
			NewObject(map[string]Value{"a": NewArray([]Value{NewObject(map[string]Value{"b": NewBool(true)})})}),
			NewObject(map[string]Value{"a": NewArray([]Value{NewObject(map[string]Value{"b": NewBool(true)})})}),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Equal(tt.b))
			assert.Equal(t, tt.expected, tt.b.Equal(tt.a))
		})
	}
}

func TestNewArray_CopiesInput(t *testing.T) {
	elems := []Value{NewString("a")}
	v := NewArray(elems)

	// Mutating the caller's slice must not affect the constructed value.
	elems[0] = NewString("mutated")

	s, ok := v.Index(0).AsString()
	assert.True(t, ok)
	assert.Equal(t, "a", s)
}

func TestNewObject_CopiesInput(t *testing.T) {
	members := map[string]Value{"a": NewString("a")}
	v := NewObject(members)

	members["a"] = NewString("mutated")
	members["b"] = NewString("added")

	s, ok := v.Key("a").AsString()
	assert.True(t, ok)
	assert.Equal(t, "a", s)
	assert.False(t, v.Key("b").Exists())
}
