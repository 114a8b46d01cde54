package value

import (
	"fmt"
	"strings"
	"time"
)

// Kind tags the variant held by a Value
type Kind uint8

const (
	KindNull Kind = iota
	KindInt64
	KindFloat64
	KindString
	KindBool
	KindDate
	KindList
	KindStruct
	KindEnum
)

// Field is one named member of a struct value.
// Order matches the declared struct type.
type Field struct {
	Name  string
	Value Value
}

// Value is one row's logical content, reconstructed from column storage.
// It is a closed tagged union: exactly one variant is populated according
// to Kind. Values are construction-and-inspection only; the engines never
// operate on Values directly, they exist to give callers (formatting,
// tests, by-row fallbacks) a precise notion of "one cell".
type Value struct {
	kind   Kind
	i64    int64 // Int64, Bool (0/1), Date (days since Unix epoch)
	f64    float64
	str    string // String, Enum (resolved category)
	list   []Value
	fields []Field
}

func Null() Value             { return Value{kind: KindNull} }
func Int64(v int64) Value     { return Value{kind: KindInt64, i64: v} }
func Float64(v float64) Value { return Value{kind: KindFloat64, f64: v} }
func String(v string) Value   { return Value{kind: KindString, str: v} }

func Bool(v bool) Value {
	var i int64
	if v {
		i = 1
	}
	return Value{kind: KindBool, i64: i}
}

// Date holds days since the Unix epoch
func Date(days int32) Value { return Value{kind: KindDate, i64: int64(days)} }

// DateOf converts a calendar date to a Date value
func DateOf(year int, month time.Month, day int) Value {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date(int32(t.Unix() / 86400))
}

func List(elems ...Value) Value { return Value{kind: KindList, list: elems} }

func Struct(fields ...Field) Value { return Value{kind: KindStruct, fields: fields} }

// Enum holds the resolved category string, not the storage index
func Enum(category string) Value { return Value{kind: KindEnum, str: category} }

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) Int64() int64     { return v.i64 }
func (v Value) Float64() float64 { return v.f64 }
func (v Value) Str() string      { return v.str }
func (v Value) Bool() bool       { return v.i64 != 0 }
func (v Value) Days() int32      { return int32(v.i64) }
func (v Value) Category() string { return v.str }

// List returns the element slice of a list value. Callers must not mutate it.
func (v Value) List() []Value { return v.list }

// Fields returns the ordered fields of a struct value. Callers must not mutate it.
func (v Value) Fields() []Field { return v.fields }

// GetField returns the named field of a struct value.
// The second result is false when no such field exists.
func (v Value) GetField(name string) (Value, bool) {
	for _, f := range v.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Null(), false
}

// Equal compares two values structurally under missing-value semantics:
// a Null at any level compares unequal to everything, including another Null.
func (v Value) Equal(other Value) bool {
	if v.kind == KindNull || other.kind == KindNull {
		return false
	}
	return v.compare(other, false)
}

// Identical compares two values structurally, with Null matching Null.
// This is the notion of "same content" used when verifying that an engine
// copied a value faithfully, nested nulls included.
func (v Value) Identical(other Value) bool {
	return v.compare(other, true)
}

func (v Value) compare(other Value, nullsMatch bool) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return nullsMatch
	case KindInt64, KindBool, KindDate:
		return v.i64 == other.i64
	case KindFloat64:
		return v.f64 == other.f64
	case KindString, KindEnum:
		return v.str == other.str
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !nullsMatch && (v.list[i].kind == KindNull || other.list[i].kind == KindNull) {
				return false
			}
			if !v.list[i].compare(other.list[i], nullsMatch) {
				return false
			}
		}
		return true
	case KindStruct:
		if len(v.fields) != len(other.fields) {
			return false
		}
		for i := range v.fields {
			if v.fields[i].Name != other.fields[i].Name {
				return false
			}
			if !nullsMatch && (v.fields[i].Value.kind == KindNull || other.fields[i].Value.kind == KindNull) {
				return false
			}
			if !v.fields[i].Value.compare(other.fields[i].Value, nullsMatch) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders the value in a display notation close to what the
// formatter prints: null, 42, "abc", [1, 2], {a: 1}
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindInt64:
		return fmt.Sprintf("%d", v.i64)
	case KindFloat64:
		return fmt.Sprintf("%g", v.f64)
	case KindString:
		return fmt.Sprintf("%q", v.str)
	case KindBool:
		if v.i64 != 0 {
			return "true"
		}
		return "false"
	case KindDate:
		t := time.Unix(v.i64*86400, 0).UTC()
		return t.Format("2006-01-02")
	case KindEnum:
		return v.str
	case KindList:
		parts := make([]string, len(v.list))
		for i, e := range v.list {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindStruct:
		parts := make([]string, len(v.fields))
		for i, f := range v.fields {
			parts[i] = fmt.Sprintf("%s: %s", f.Name, f.Value)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "?"
	}
}
