package expr

import "github.com/scigolib/predicate/bitset"

// Node is the common interface of every predicate tree node. Accept invokes
// the variant-appropriate callback on v and returns its result directly:
// unlike the source visitor, which threaded its output through a mutable
// optional field on the visitor itself, the Go port returns the chunked
// bitset (or error) straight from the call chain.
type Node interface {
	Accept(v Visitor) (bitset.Chunked, error)
}

// Visitor is implemented by whatever walks a predicate tree post-order. The
// executor is the only production Visitor; tests may supply others (a node
// counter, a field-name collector) without touching the tree types.
type Visitor interface {
	VisitTerm(*Term) (bitset.Chunked, error)
	VisitRange(*Range) (bitset.Chunked, error)
	VisitNot(*Not) (bitset.Chunked, error)
	VisitBoolBin(*BoolBin) (bitset.Chunked, error)
}
