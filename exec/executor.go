// Package exec implements the predicate tree visitor: it walks the tree
// post-order, producing for each node a chunked bitset combining scalar
// index lookups (for indexed chunks) with direct scans (for unindexed
// chunks).
package exec

import (
	"context"
	"sync/atomic"

	"github.com/scigolib/predicate/bitset"
	"github.com/scigolib/predicate/expr"
	"github.com/scigolib/predicate/internal/config"
	"github.com/scigolib/predicate/internal/telemetry"
	"github.com/scigolib/predicate/schema"
	"github.com/scigolib/predicate/segment"
)

// Executor evaluates one predicate tree against a segment snapshot. An
// Executor is single-use: construct one per Execute call (or reuse across
// sequential calls, since it holds no per-call state beyond the
// cooperative cancel flag, the in-flight context and the captured field
// snapshots, all reset at the start of each Execute).
type Executor struct {
	Store  segment.ColumnStore
	Index  segment.IndexRegistry
	Schema schema.Schema
	Cfg    config.Config

	cancel atomic.Bool
	ctx    context.Context

	snapshots map[string]segment.Snapshot
}

// New constructs an Executor over the given segment collaborators.
func New(store segment.ColumnStore, index segment.IndexRegistry, sch schema.Schema, opts ...config.Option) *Executor {
	return &Executor{
		Store:  store,
		Index:  index,
		Schema: sch,
		Cfg:    config.Default(opts...),
	}
}

// Cancel requests cooperative cancellation. Checked at chunk boundaries;
// never mid-chunk.
func (e *Executor) Cancel() {
	e.cancel.Store(true)
}

// Execute evaluates root against the current segment state and returns a
// chunked bitset of length equal to the segment's chunk count at the
// moment of capture. Per §5, (num_chunks, N, B) is sampled exactly once per
// field here, before any leaf runs, and every leaf reads from that fixed
// snapshot rather than re-querying the segment; this is what makes a
// chunk-count mismatch between a boolean connective's two children an
// InvariantViolation rather than a race a caller could ever legitimately
// hit.
func (e *Executor) Execute(ctx context.Context, root expr.Node) (bitset.Chunked, error) {
	e.cancel.Store(false)
	e.ctx = ctx
	e.captureSnapshots(root)
	result, err := root.Accept(e)
	if err != nil {
		field := ""
		if execErr, ok := err.(*ExecError); ok {
			field = execErr.Field
		}
		telemetry.Error(field, err)
	}
	return result, err
}

// checkSchema validates that field exists with type t, per §7's
// SchemaMismatch. Every leaf validates this on first touch.
func (e *Executor) checkSchema(field string, t schema.Type) error {
	actual, ok := e.Schema.FieldType(field)
	if !ok {
		return newSchemaMismatch(field, "unknown field")
	}
	if actual != t {
		return newSchemaMismatch(field, "declared type "+t.String()+" does not match schema type "+actual.String())
	}
	return nil
}
