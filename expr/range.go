package expr

import (
	"fmt"

	"github.com/scigolib/predicate/bitset"
	"github.com/scigolib/predicate/schema"
)

// ErrInvalidRange is returned by NewRange when the supplied conditions do
// not match one of the enumerated valid shapes: exactly one condition, or
// exactly two forming a lower bound followed by an upper bound.
type ErrInvalidRange struct {
	Field string
	Conds []Cond
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("expr: field %q: unsupported range condition shape %v", e.Field, e.Conds)
}

// Range is a leaf predicate: row matches iff all of Conds hold. Conds is
// canonicalized at construction so a lower bound always precedes any upper
// bound.
type Range struct {
	Field string
	T     schema.Type
	Conds []Cond
}

func isLowerBound(op RangeOp) bool { return op == GT || op == GE }
func isUpperBound(op RangeOp) bool { return op == LT || op == LE }

// NewRange builds a Range, canonicalizing Conds so a lower bound precedes
// an upper bound, and validating the shape. Valid shapes: exactly one
// condition (any operator); or exactly two whose operator pair is one of
// (>,<), (>,<=), (>=,<), (>=,<=), with the lower bound's value <= the upper
// bound's value. Any other shape returns ErrInvalidRange.
func NewRange(field string, t schema.Type, conds []Cond) (*Range, error) {
	switch len(conds) {
	case 1:
		return &Range{Field: field, T: t, Conds: []Cond{conds[0]}}, nil
	case 2:
		a, b := conds[0], conds[1]
		var lo, hi Cond
		switch {
		case isLowerBound(a.Op) && isUpperBound(b.Op):
			lo, hi = a, b
		case isLowerBound(b.Op) && isUpperBound(a.Op):
			lo, hi = b, a
		default:
			return nil, &ErrInvalidRange{Field: field, Conds: conds}
		}
		if !Le(lo.Val, hi.Val) {
			return nil, &ErrInvalidRange{Field: field, Conds: conds}
		}
		return &Range{Field: field, T: t, Conds: []Cond{lo, hi}}, nil
	default:
		return nil, &ErrInvalidRange{Field: field, Conds: conds}
	}
}

// Accept implements Node.
func (r *Range) Accept(v Visitor) (bitset.Chunked, error) {
	return v.VisitRange(r)
}
