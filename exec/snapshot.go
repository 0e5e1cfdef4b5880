package exec

import (
	"github.com/scigolib/predicate/expr"
	"github.com/scigolib/predicate/segment"
)

// collectFields walks a predicate tree and records every field name it
// references. Used at Execute entry to capture each field's snapshot
// exactly once (§5), rather than leaving each leaf free to re-query the
// segment on its own.
func collectFields(n expr.Node, into map[string]struct{}) {
	switch v := n.(type) {
	case *expr.Term:
		into[v.Field] = struct{}{}
	case *expr.Range:
		into[v.Field] = struct{}{}
	case *expr.Not:
		collectFields(v.Child, into)
	case *expr.BoolBin:
		collectFields(v.Left, into)
		collectFields(v.Right, into)
	}
}

// captureSnapshots samples (num_chunks, N, B) for every field root touches,
// exactly once, before any leaf evaluates. Every leaf later reads its
// field's entry from this fixed map instead of re-sampling the segment, so
// two leaves over the same field (or a boolean connective over two fields)
// never observe a writer's progress diverging mid-execution.
func (e *Executor) captureSnapshots(root expr.Node) {
	fields := make(map[string]struct{})
	collectFields(root, fields)
	e.snapshots = make(map[string]segment.Snapshot, len(fields))
	for f := range fields {
		e.snapshots[f] = segment.Capture(e.Store, e.Index, f)
	}
}
