package exec

import (
	"github.com/scigolib/predicate/bitset"
	"github.com/scigolib/predicate/expr"
	"github.com/scigolib/predicate/segment"
)

// rangeFuncs is the (index_func, scan_func) pair a Range leaf dispatches
// to, per §4.3.3.
type rangeFuncs struct {
	index func(idx segment.ScalarIndex) (*bitset.Bitset, error)
	scan  func(x expr.Value) bool
}

// buildRangeFuncs resolves the operator-specific closures for r.Conds, the
// relational comparator itself resolved once via relOpsFor(r.T) so every
// row in the scan falls through to a monomorphized function rather than
// re-dispatching on type per comparison (§4.3.5). r.Conds is assumed
// already canonicalized by expr.NewRange (lower bound first), but the
// shape is re-validated here too, since §7 requires leaf validation on
// first touch rather than trusting the constructor.
func buildRangeFuncs(r *expr.Range) (rangeFuncs, error) {
	rel := relOpsFor(r.T)
	switch len(r.Conds) {
	case 1:
		cond := r.Conds[0]
		val := cond.Val
		switch cond.Op {
		case expr.EQ:
			return rangeFuncs{
				index: func(idx segment.ScalarIndex) (*bitset.Bitset, error) { return idx.InSet([]expr.Value{val}) },
				scan:  func(x expr.Value) bool { return rel.eq(x, val) },
			}, nil
		case expr.NE:
			return rangeFuncs{
				index: func(idx segment.ScalarIndex) (*bitset.Bitset, error) { return idx.NotInSet([]expr.Value{val}) },
				scan:  func(x expr.Value) bool { return rel.ne(x, val) },
			}, nil
		case expr.GE:
			return rangeFuncs{
				index: func(idx segment.ScalarIndex) (*bitset.Bitset, error) { return idx.Range1(val, segment.RangeGE) },
				scan:  func(x expr.Value) bool { return rel.ge(x, val) },
			}, nil
		case expr.GT:
			return rangeFuncs{
				index: func(idx segment.ScalarIndex) (*bitset.Bitset, error) { return idx.Range1(val, segment.RangeGT) },
				scan:  func(x expr.Value) bool { return rel.gt(x, val) },
			}, nil
		case expr.LE:
			return rangeFuncs{
				index: func(idx segment.ScalarIndex) (*bitset.Bitset, error) { return idx.Range1(val, segment.RangeLE) },
				scan:  func(x expr.Value) bool { return rel.le(x, val) },
			}, nil
		case expr.LT:
			return rangeFuncs{
				index: func(idx segment.ScalarIndex) (*bitset.Bitset, error) { return idx.Range1(val, segment.RangeLT) },
				scan:  func(x expr.Value) bool { return rel.lt(x, val) },
			}, nil
		default:
			return rangeFuncs{}, newUnsupportedOperator(r.Field, "unrecognized single-condition operator "+cond.Op.String(), nil)
		}
	case 2:
		lo, hi := r.Conds[0], r.Conds[1]
		if !isLowerBoundOp(lo.Op) || !isUpperBoundOp(hi.Op) {
			return rangeFuncs{}, newUnsupportedOperator(r.Field, "two-condition range is not a lower/upper bound pair", nil)
		}
		loIncl := lo.Op == expr.GE
		hiIncl := hi.Op == expr.LE
		loVal, hiVal := lo.Val, hi.Val
		return rangeFuncs{
			index: func(idx segment.ScalarIndex) (*bitset.Bitset, error) {
				return idx.Range2(loVal, loIncl, hiVal, hiIncl)
			},
			scan: func(x expr.Value) bool {
				loOK := rel.gt(x, loVal) || (loIncl && rel.eq(x, loVal))
				hiOK := rel.lt(x, hiVal) || (hiIncl && rel.eq(x, hiVal))
				return loOK && hiOK
			},
		}, nil
	default:
		return rangeFuncs{}, newUnsupportedOperator(r.Field, "range leaf must carry one or two conditions", nil)
	}
}

func isLowerBoundOp(op expr.RangeOp) bool { return op == expr.GT || op == expr.GE }
func isUpperBoundOp(op expr.RangeOp) bool { return op == expr.LT || op == expr.LE }

// VisitRange implements expr.Visitor, per §4.3.2/§4.3.3: chunks [0, B) are
// served from the scalar index, chunks [B, num_chunks) are scanned
// directly, and the last chunk's bits beyond its logical row count are
// always zero.
func (e *Executor) VisitRange(r *expr.Range) (bitset.Chunked, error) {
	if err := e.checkSchema(r.Field, r.T); err != nil {
		return nil, err
	}
	funcs, err := buildRangeFuncs(r)
	if err != nil {
		return nil, err
	}
	return e.execLeaf(r.Field, "range", funcs.index, funcs.scan)
}
