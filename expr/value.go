package expr

import (
	"fmt"
	"math"

	"github.com/scigolib/predicate/schema"
)

// Value is a small tagged union holding the comparison value carried by a
// Term or Range leaf. It replaces the type-erased `std::any` the original
// implementation stored terms and conditions in: the parser resolves the
// field's type once, and every Value it constructs after that carries its
// schema.Type tag alongside a typed payload.
type Value struct {
	t schema.Type
	b bool
	i int64
	f float64
}

// BoolValue constructs a bool-typed Value.
func BoolValue(v bool) Value { return Value{t: schema.Bool, b: v} }

// IntValue constructs an integer-typed Value. t must be one of Int8, Int16,
// Int32, Int64.
func IntValue(t schema.Type, v int64) Value { return Value{t: t, i: v} }

// Float32Value constructs a Float32-typed Value.
func Float32Value(v float32) Value { return Value{t: schema.Float32, f: float64(v)} }

// Float64Value constructs a Float64-typed Value.
func Float64Value(v float64) Value { return Value{t: schema.Float64, f: v} }

// Type returns the value's scalar type.
func (v Value) Type() schema.Type { return v.t }

// Bool returns the bool payload.
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload.
func (v Value) Int() int64 { return v.i }

// Float returns the floating-point payload as a float64, regardless of
// whether the value was constructed as Float32 or Float64.
func (v Value) Float() float64 { return v.f }

func (v Value) String() string {
	switch v.t {
	case schema.Bool:
		return fmt.Sprintf("%v", v.b)
	case schema.Int8, schema.Int16, schema.Int32, schema.Int64:
		return fmt.Sprintf("%d", v.i)
	case schema.Float32, schema.Float64:
		return fmt.Sprintf("%g", v.f)
	default:
		return "<invalid value>"
	}
}

// cmp returns -1, 0, or 1 per the usual comparison contract, and ok=false
// when the values are incomparable under IEEE-754 ordered comparison (i.e.
// either operand is NaN). Every relational operator must treat ok=false as
// "condition is false", matching hardware float comparison behavior: NaN
// compares false against everything, including itself.
func cmp(a, b Value) (result int, ok bool) {
	switch a.t {
	case schema.Bool:
		ai, bi := 0, 0
		if a.b {
			ai = 1
		}
		if b.b {
			bi = 1
		}
		return compareInts(int64(ai), int64(bi)), true
	case schema.Int8, schema.Int16, schema.Int32, schema.Int64:
		return compareInts(a.i, b.i), true
	case schema.Float32, schema.Float64:
		if math.IsNaN(a.f) || math.IsNaN(b.f) {
			return 0, false
		}
		return compareInts64(a.f, b.f), true
	default:
		return 0, false
	}
}

func compareInts(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInts64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Eq reports whether a == b, NaN-safe.
func Eq(a, b Value) bool {
	r, ok := cmp(a, b)
	return ok && r == 0
}

// Ne reports whether a != b. Per spec, NaN returns false on every one of the
// six relational operators, including !=: this is the IEEE-754 ordered
// comparison "wart" carried deliberately, not the unordered-not-equal
// semantics some languages give `!=`.
func Ne(a, b Value) bool {
	r, ok := cmp(a, b)
	return ok && r != 0
}

// Lt reports whether a < b.
func Lt(a, b Value) bool {
	r, ok := cmp(a, b)
	return ok && r < 0
}

// Le reports whether a <= b.
func Le(a, b Value) bool {
	r, ok := cmp(a, b)
	return ok && r <= 0
}

// Gt reports whether a > b.
func Gt(a, b Value) bool {
	r, ok := cmp(a, b)
	return ok && r > 0
}

// Ge reports whether a >= b.
func Ge(a, b Value) bool {
	r, ok := cmp(a, b)
	return ok && r >= 0
}
