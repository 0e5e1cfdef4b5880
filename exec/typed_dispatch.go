package exec

import (
	"github.com/scigolib/predicate/expr"
	"github.com/scigolib/predicate/schema"
)

// relOp picks the monomorphized comparator pair (lt, le, gt, ge, eq, ne)
// generated by exec/gen for t. The scalar type is resolved once per leaf
// (§4.3.5); every row comparison afterward calls a direct, type-specific
// function rather than re-dispatching through expr.Value's tag switch.
type relOp struct {
	lt, le, gt, ge, eq, ne func(a, b expr.Value) bool
}

func relOpsFor(t schema.Type) relOp {
	switch t {
	case schema.Bool:
		return relOp{
			lt: func(a, b expr.Value) bool { return ltBool(a.Bool(), b.Bool()) },
			le: func(a, b expr.Value) bool { return leBool(a.Bool(), b.Bool()) },
			gt: func(a, b expr.Value) bool { return gtBool(a.Bool(), b.Bool()) },
			ge: func(a, b expr.Value) bool { return geBool(a.Bool(), b.Bool()) },
			eq: func(a, b expr.Value) bool { return eqBool(a.Bool(), b.Bool()) },
			ne: func(a, b expr.Value) bool { return neBool(a.Bool(), b.Bool()) },
		}
	case schema.Int8:
		return relOp{
			lt: func(a, b expr.Value) bool { return ltInt8(int8(a.Int()), int8(b.Int())) },
			le: func(a, b expr.Value) bool { return leInt8(int8(a.Int()), int8(b.Int())) },
			gt: func(a, b expr.Value) bool { return gtInt8(int8(a.Int()), int8(b.Int())) },
			ge: func(a, b expr.Value) bool { return geInt8(int8(a.Int()), int8(b.Int())) },
			eq: func(a, b expr.Value) bool { return eqInt8(int8(a.Int()), int8(b.Int())) },
			ne: func(a, b expr.Value) bool { return neInt8(int8(a.Int()), int8(b.Int())) },
		}
	case schema.Int16:
		return relOp{
			lt: func(a, b expr.Value) bool { return ltInt16(int16(a.Int()), int16(b.Int())) },
			le: func(a, b expr.Value) bool { return leInt16(int16(a.Int()), int16(b.Int())) },
			gt: func(a, b expr.Value) bool { return gtInt16(int16(a.Int()), int16(b.Int())) },
			ge: func(a, b expr.Value) bool { return geInt16(int16(a.Int()), int16(b.Int())) },
			eq: func(a, b expr.Value) bool { return eqInt16(int16(a.Int()), int16(b.Int())) },
			ne: func(a, b expr.Value) bool { return neInt16(int16(a.Int()), int16(b.Int())) },
		}
	case schema.Int32:
		return relOp{
			lt: func(a, b expr.Value) bool { return ltInt32(int32(a.Int()), int32(b.Int())) },
			le: func(a, b expr.Value) bool { return leInt32(int32(a.Int()), int32(b.Int())) },
			gt: func(a, b expr.Value) bool { return gtInt32(int32(a.Int()), int32(b.Int())) },
			ge: func(a, b expr.Value) bool { return geInt32(int32(a.Int()), int32(b.Int())) },
			eq: func(a, b expr.Value) bool { return eqInt32(int32(a.Int()), int32(b.Int())) },
			ne: func(a, b expr.Value) bool { return neInt32(int32(a.Int()), int32(b.Int())) },
		}
	case schema.Int64:
		return relOp{
			lt: func(a, b expr.Value) bool { return ltInt64(a.Int(), b.Int()) },
			le: func(a, b expr.Value) bool { return leInt64(a.Int(), b.Int()) },
			gt: func(a, b expr.Value) bool { return gtInt64(a.Int(), b.Int()) },
			ge: func(a, b expr.Value) bool { return geInt64(a.Int(), b.Int()) },
			eq: func(a, b expr.Value) bool { return eqInt64(a.Int(), b.Int()) },
			ne: func(a, b expr.Value) bool { return neInt64(a.Int(), b.Int()) },
		}
	case schema.Float32:
		return relOp{
			lt: func(a, b expr.Value) bool { return ltFloat32(float32(a.Float()), float32(b.Float())) },
			le: func(a, b expr.Value) bool { return leFloat32(float32(a.Float()), float32(b.Float())) },
			gt: func(a, b expr.Value) bool { return gtFloat32(float32(a.Float()), float32(b.Float())) },
			ge: func(a, b expr.Value) bool { return geFloat32(float32(a.Float()), float32(b.Float())) },
			eq: func(a, b expr.Value) bool { return eqFloat32(float32(a.Float()), float32(b.Float())) },
			ne: func(a, b expr.Value) bool { return neFloat32(float32(a.Float()), float32(b.Float())) },
		}
	case schema.Float64:
		return relOp{
			lt: func(a, b expr.Value) bool { return ltFloat64(a.Float(), b.Float()) },
			le: func(a, b expr.Value) bool { return leFloat64(a.Float(), b.Float()) },
			gt: func(a, b expr.Value) bool { return gtFloat64(a.Float(), b.Float()) },
			ge: func(a, b expr.Value) bool { return geFloat64(a.Float(), b.Float()) },
			eq: func(a, b expr.Value) bool { return eqFloat64(a.Float(), b.Float()) },
			ne: func(a, b expr.Value) bool { return neFloat64(a.Float(), b.Float()) },
		}
	default:
		// Unknown type: fall back to the generic, NaN-safe Value
		// comparisons. checkSchema rejects unknown types before this is
		// ever reached in practice.
		return relOp{
			lt: expr.Lt, le: expr.Le, gt: expr.Gt, ge: expr.Ge, eq: expr.Eq, ne: expr.Ne,
		}
	}
}
