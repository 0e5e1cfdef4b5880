package expr

import "github.com/scigolib/predicate/bitset"

// Not is the unary boolean complement of its child.
type Not struct {
	Child Node
}

// Accept implements Node.
func (n *Not) Accept(v Visitor) (bitset.Chunked, error) {
	return v.VisitNot(n)
}

// BoolBin is a binary boolean connective over two children, combined
// chunkwise.
type BoolBin struct {
	Op    BoolOp
	Left  Node
	Right Node
}

// Accept implements Node.
func (n *BoolBin) Accept(v Visitor) (bitset.Chunked, error) {
	return v.VisitBoolBin(n)
}
