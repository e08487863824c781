// File: types.go
// Title: Console Type Tags
// Description: Defines the type tags attached to command parameters and
//              variables: primitive kinds, enums, arrays and composite types
//              with their constructors, static members and zero value.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package coerce

import (
	"fmt"
	"reflect"
)

// Kind classifies a type tag
type Kind int

const (
	KindBool Kind = iota
	KindChar
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindString
	KindEnum
	KindArray
	KindComposite
)

var kindNames = map[Kind]string{
	KindBool:      "bool",
	KindChar:      "char",
	KindInt:       "int",
	KindInt8:      "int8",
	KindInt16:     "int16",
	KindInt32:     "int32",
	KindInt64:     "int64",
	KindUint:      "uint",
	KindUint8:     "uint8",
	KindUint16:    "uint16",
	KindUint32:    "uint32",
	KindUint64:    "uint64",
	KindFloat32:   "float32",
	KindFloat64:   "float64",
	KindString:    "string",
	KindEnum:      "enum",
	KindArray:     "array",
	KindComposite: "composite",
}

// String returns the kind name
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsPrimitive reports whether k is parsed directly from text
func (k Kind) IsPrimitive() bool {
	return k <= KindString
}

// Type is the type tag of a parameter or variable
type Type struct {
	Name      string
	Kind      Kind
	Members   []EnumMember   // KindEnum
	Elem      *Type          // KindArray
	Composite *CompositeType // KindComposite

	goType reflect.Type
}

// EnumMember binds a member name to its Go value
type EnumMember struct {
	Name  string
	Value any
}

// Param is a named constructor parameter
type Param struct {
	Name string
	Type *Type
}

// Constructor builds a composite value from primitive arguments
type Constructor struct {
	Params []Param
	Build  func(args []any) (any, error)
}

// Named is a pre-built composite value addressable by name
type Named struct {
	Name  string
	Value any
}

// CompositeType describes how a composite value is constructed and printed
type CompositeType struct {
	Constructors []Constructor
	Statics      []Named
	Zero         func() any      // Default constructor; nil if there is none
	Fields       func(any) []any // Constructor arguments that rebuild a value
	Reference    bool            // Accepts null
}

// GoType returns the Go type values of this tag are produced as
func (t *Type) GoType() reflect.Type {
	return t.goType
}

// String returns the display name of the type
func (t *Type) String() string {
	if t.Kind == KindArray && t.Elem != nil {
		return "[]" + t.Elem.String()
	}
	return t.Name
}

func primitive[T any](kind Kind) *Type {
	return &Type{Name: kind.String(), Kind: kind, goType: reflect.TypeFor[T]()}
}

// Primitive type tags
var (
	Bool    = primitive[bool](KindBool)
	Char    = primitive[rune](KindChar)
	Int     = primitive[int](KindInt)
	Int8    = primitive[int8](KindInt8)
	Int16   = primitive[int16](KindInt16)
	Int32   = primitive[int32](KindInt32)
	Int64   = primitive[int64](KindInt64)
	Uint    = primitive[uint](KindUint)
	Uint8   = primitive[uint8](KindUint8)
	Uint16  = primitive[uint16](KindUint16)
	Uint32  = primitive[uint32](KindUint32)
	Uint64  = primitive[uint64](KindUint64)
	Float32 = primitive[float32](KindFloat32)
	Float64 = primitive[float64](KindFloat64)
	String  = primitive[string](KindString)
)

// ArrayOf returns the array tag for elem. Coerced arrays are typed Go slices.
func ArrayOf(elem *Type) *Type {
	t := &Type{Name: "[]" + elem.Name, Kind: KindArray, Elem: elem}
	if elem.goType != nil {
		t.goType = reflect.SliceOf(elem.goType)
	}
	return t
}

// Enum returns an enum tag for values whose String method yields the
// member name.
func Enum[T fmt.Stringer](name string, values ...T) *Type {
	members := make([]EnumMember, len(values))
	for i, v := range values {
		members[i] = EnumMember{Name: v.String(), Value: v}
	}
	return &Type{Name: name, Kind: KindEnum, Members: members, goType: reflect.TypeFor[T]()}
}

// Composite returns a composite tag producing values of type T. Pointer
// types accept null.
func Composite[T any](name string, c CompositeType) *Type {
	goType := reflect.TypeFor[T]()
	if goType.Kind() == reflect.Pointer || goType.Kind() == reflect.Interface {
		c.Reference = true
	}
	return &Type{Name: name, Kind: KindComposite, Composite: &c, goType: goType}
}

// MemberNames returns the enum member names in declaration order
func (t *Type) MemberNames() []string {
	names := make([]string, len(t.Members))
	for i, m := range t.Members {
		names[i] = m.Name
	}
	return names
}
