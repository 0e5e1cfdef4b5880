package expr

import (
	"sort"

	"github.com/scigolib/predicate/bitset"
	"github.com/scigolib/predicate/schema"
)

// Term is a leaf predicate: row matches iff field's value is a member of
// Values. Values is kept sorted and de-duplicated at construction time so
// the executor can binary-search it.
type Term struct {
	Field  string
	T      schema.Type
	Values []Value
}

// NewTerm builds a Term, sorting and de-duplicating values. Shuffling the
// input slice before calling NewTerm yields an identical Term.
func NewTerm(field string, t schema.Type, values []Value) *Term {
	sorted := append([]Value(nil), values...)
	sort.Slice(sorted, func(i, j int) bool {
		r, ok := cmp(sorted[i], sorted[j])
		return ok && r < 0
	})
	deduped := sorted[:0]
	for i, v := range sorted {
		if i == 0 || !Eq(deduped[len(deduped)-1], v) {
			deduped = append(deduped, v)
		}
	}
	return &Term{Field: field, T: t, Values: deduped}
}

// Accept implements Node.
func (t *Term) Accept(v Visitor) (bitset.Chunked, error) {
	return v.VisitTerm(t)
}

// Contains reports whether x is a member of the term's value set via
// binary search. For very small sets (<= threshold) callers may prefer a
// linear scan instead; Contains always does the correct thing, just not
// necessarily the fastest.
func (t *Term) Contains(x Value) bool {
	n := len(t.Values)
	i := sort.Search(n, func(i int) bool {
		r, ok := cmp(t.Values[i], x)
		return ok && r >= 0
	})
	return i < n && Eq(t.Values[i], x)
}
