package segment

import (
	"github.com/scigolib/predicate/bitset"
	"github.com/scigolib/predicate/expr"
)

// RangeEndpoint identifies which single-sided range comparison a
// ScalarIndex.Range1 lookup performs.
type RangeEndpoint int

const (
	RangeLT RangeEndpoint = iota
	RangeLE
	RangeGT
	RangeGE
)

// ScalarIndex is an immutable auxiliary structure built over one chunk,
// answering membership and range queries with a chunk_size-wide bitset.
type ScalarIndex interface {
	// InSet returns the bitset of rows whose value is a member of vals.
	InSet(vals []expr.Value) (*bitset.Bitset, error)
	// NotInSet returns the bitset of rows whose value is not a member of
	// vals.
	NotInSet(vals []expr.Value) (*bitset.Bitset, error)
	// Range1 returns the bitset of rows satisfying the single-sided
	// comparison row op-endpoint v (e.g. RangeGE selects rows >= v).
	Range1(v expr.Value, op RangeEndpoint) (*bitset.Bitset, error)
	// Range2 returns the bitset of rows satisfying lo <[=] row <[=] hi.
	Range2(lo expr.Value, loIncl bool, hi expr.Value, hiIncl bool) (*bitset.Bitset, error)
}
