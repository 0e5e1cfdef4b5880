// Package schema describes the scalar type system shared by column stores,
// predicate trees, and the executor: each field carries exactly one scalar
// type, fixed at schema definition.
package schema

import "fmt"

// Type identifies a scalar column type.
type Type uint8

const (
	Bool Type = iota
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
)

// String renders the type name, used in error messages.
func (t Type) String() string {
	switch t {
	case Bool:
		return "bool"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return fmt.Sprintf("type(%d)", uint8(t))
	}
}

// IsFloat reports whether t is a floating-point type, which matters for
// IEEE-754 ordered-comparison semantics (NaN compares false on every
// relational operator).
func (t Type) IsFloat() bool {
	return t == Float32 || t == Float64
}
