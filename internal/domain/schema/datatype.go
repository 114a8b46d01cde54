package schema

import (
	"fmt"
	"strings"
)

// TypeKind identifies the top-level shape of a DataType
type TypeKind string

const (
	KindInt64   TypeKind = "INT64"
	KindFloat64 TypeKind = "FLOAT64"
	KindString  TypeKind = "STRING"
	KindBool    TypeKind = "BOOL"
	KindDate    TypeKind = "DATE"
	KindEnum    TypeKind = "ENUM"
	KindList    TypeKind = "LIST"
	KindStruct  TypeKind = "STRUCT"
)

// Field is one named member of a struct type.
// Field order is significant and fixed per struct type.
type Field struct {
	Name string
	Type DataType
}

// DataType describes the logical type of a column.
// Nesting is always a finite tree: a list type owns its element type,
// a struct type owns its field types. No back references are possible.
type DataType struct {
	Kind       TypeKind
	Elem       *DataType // set for KindList
	Fields     []Field   // set for KindStruct
	Categories []string  // set for KindEnum
}

func Int64() DataType   { return DataType{Kind: KindInt64} }
func Float64() DataType { return DataType{Kind: KindFloat64} }
func String() DataType  { return DataType{Kind: KindString} }
func Bool() DataType    { return DataType{Kind: KindBool} }
func Date() DataType    { return DataType{Kind: KindDate} }

// Enum builds an enum type over a fixed ordered category list
func Enum(categories ...string) DataType {
	return DataType{Kind: KindEnum, Categories: categories}
}

// List builds a list type with the given element type
func List(elem DataType) DataType {
	return DataType{Kind: KindList, Elem: &elem}
}

// Struct builds a struct type from ordered fields
func Struct(fields ...Field) DataType {
	return DataType{Kind: KindStruct, Fields: fields}
}

// IsInteger reports whether the type can serve as a repeat-count column
func (t DataType) IsInteger() bool {
	return t.Kind == KindInt64
}

// FieldIndex returns the position of the named struct field, or -1
func (t DataType) FieldIndex(name string) int {
	for i, f := range t.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Equal compares two types structurally.
// Enum types are equal only when their category lists match exactly,
// including order, since indices are positional.
func (t DataType) Equal(other DataType) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KindList:
		return t.Elem.Equal(*other.Elem)
	case KindStruct:
		if len(t.Fields) != len(other.Fields) {
			return false
		}
		for i, f := range t.Fields {
			if f.Name != other.Fields[i].Name || !f.Type.Equal(other.Fields[i].Type) {
				return false
			}
		}
		return true
	case KindEnum:
		if len(t.Categories) != len(other.Categories) {
			return false
		}
		for i, c := range t.Categories {
			if c != other.Categories[i] {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String renders the type in a compact schema notation,
// e.g. list[struct{icd: string, location: enum[R, L, B]}]
func (t DataType) String() string {
	switch t.Kind {
	case KindList:
		return fmt.Sprintf("list[%s]", t.Elem)
	case KindStruct:
		parts := make([]string, len(t.Fields))
		for i, f := range t.Fields {
			parts[i] = fmt.Sprintf("%s: %s", f.Name, f.Type)
		}
		return fmt.Sprintf("struct{%s}", strings.Join(parts, ", "))
	case KindEnum:
		return fmt.Sprintf("enum[%s]", strings.Join(t.Categories, ", "))
	default:
		return strings.ToLower(string(t.Kind))
	}
}
