package exec

import (
	"github.com/scigolib/predicate/bitset"
	"github.com/scigolib/predicate/expr"
	"github.com/scigolib/predicate/segment"
)

// containsLinear scans values linearly for x, the fallback spec permits
// for very small term sets (k <= SmallTermLinearThreshold) instead of
// binary search. eq is the monomorphized equality comparator for the
// field's scalar type.
func containsLinear(values []expr.Value, x expr.Value, eq func(a, b expr.Value) bool) bool {
	for _, v := range values {
		if eq(v, x) {
			return true
		}
	}
	return false
}

// VisitTerm implements expr.Visitor, per §4.3.4: row matches iff its value
// is a member of t.Values. Because Values is sorted and de-duplicated at
// construction, the scan side binary-searches it, except for very small
// sets where a linear scan is used instead.
func (e *Executor) VisitTerm(t *expr.Term) (bitset.Chunked, error) {
	if err := e.checkSchema(t.Field, t.T); err != nil {
		return nil, err
	}

	rel := relOpsFor(t.T)
	useLinear := len(t.Values) <= e.Cfg.SmallTermLinearThreshold
	scan := func(x expr.Value) bool {
		if useLinear {
			return containsLinear(t.Values, x, rel.eq)
		}
		return t.Contains(x)
	}
	index := func(idx segment.ScalarIndex) (*bitset.Bitset, error) {
		return idx.InSet(t.Values)
	}
	return e.execLeaf(t.Field, "term", index, scan)
}
