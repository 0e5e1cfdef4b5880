package exec

import (
	"github.com/scigolib/predicate/bitset"
	"github.com/scigolib/predicate/expr"
)

// VisitNot implements expr.Visitor: the chunkwise complement of child.
// Short-circuiting is never performed; the child always evaluates fully.
func (e *Executor) VisitNot(n *expr.Not) (bitset.Chunked, error) {
	child, err := n.Child.Accept(e)
	if err != nil {
		return nil, err
	}
	out := make(bitset.Chunked, len(child))
	for i, c := range child {
		clone := c.Clone()
		clone.Flip()
		out[i] = clone
	}
	return out, nil
}

// VisitBoolBin implements expr.Visitor: a chunkwise boolean combination of
// two children. Both children evaluate fully regardless of op; a chunk
// count mismatch between them is an invariant violation, not a
// user-facing error, since an immutable snapshot makes it impossible in
// practice (§5).
func (e *Executor) VisitBoolBin(n *expr.BoolBin) (bitset.Chunked, error) {
	left, err := n.Left.Accept(e)
	if err != nil {
		return nil, err
	}
	right, err := n.Right.Accept(e)
	if err != nil {
		return nil, err
	}
	if len(left) != len(right) {
		return nil, newInvariantViolation("", "boolean connective children produced different chunk counts")
	}

	out := make(bitset.Chunked, len(left))
	for i := range left {
		combined := left[i].Clone()
		var opErr error
		switch n.Op {
		case expr.And:
			opErr = combined.And(right[i])
		case expr.Or:
			opErr = combined.Or(right[i])
		case expr.Xor:
			opErr = combined.Xor(right[i])
		case expr.AndNot:
			opErr = combined.AndNot(right[i])
		default:
			return nil, newUnsupportedOperator("", "unknown boolean operator "+n.Op.String(), nil)
		}
		if opErr != nil {
			return nil, newInvariantViolation("", "chunk "+n.Op.String()+" shape mismatch: "+opErr.Error())
		}
		out[i] = combined
	}
	return out, nil
}
