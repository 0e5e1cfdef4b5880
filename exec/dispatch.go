package exec

import (
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/scigolib/predicate/bitset"
	"github.com/scigolib/predicate/expr"
	"github.com/scigolib/predicate/internal/telemetry"
	"github.com/scigolib/predicate/segment"
)

// execLeaf is the two-zone evaluation skeleton every leaf shares, per
// §4.3.2: chunks [0, B) are served from the scalar index, chunks
// [B, num_chunks) are scanned directly with scan applied to every row
// within the chunk's logical length. Bits beyond a chunk's logical length
// are always left at zero.
func (e *Executor) execLeaf(field, kind string, index func(segment.ScalarIndex) (*bitset.Bitset, error), scan func(expr.Value) bool) (bitset.Chunked, error) {
	snap, ok := e.snapshots[field]
	if !ok {
		return nil, newInvariantViolation(field, "no snapshot captured for field at Execute entry")
	}
	chunkSize := e.Store.ChunkSize()
	result := make(bitset.Chunked, snap.NumChunks)

	for i := 0; i < snap.Barrier; i++ {
		if err := e.pollCancel(field, i); err != nil {
			return nil, err
		}
		idx, ok := e.Index.Index(field, i)
		if !ok {
			return nil, newInvariantViolation(field, "index registry reports chunk below barrier but has no index")
		}
		start := time.Now()
		b, err := index(idx)
		telemetry.LeafDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
		if err != nil {
			return nil, newInvariantViolation(field, "scalar index lookup failed: "+err.Error())
		}
		if b.Len() != chunkSize {
			return nil, newInvariantViolation(field, "scalar index returned wrong width bitset")
		}
		if logical := snap.LogicalLen(chunkSize, i); !b.IsZeroBeyond(logical) {
			return nil, newInvariantViolation(field, "scalar index set bits beyond chunk's logical row count")
		}
		result[i] = b
		telemetry.ChunksIndexed.WithLabelValues(field).Inc()
		telemetry.ChunkEvent(field, i, "index-hit")
	}

	if err := e.scanTail(field, kind, snap, chunkSize, scan, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (e *Executor) scanTail(field, kind string, snap segment.Snapshot, chunkSize int, scan func(expr.Value) bool, result bitset.Chunked) error {
	if e.Cfg.ChunkParallelism <= 1 {
		for i := snap.Barrier; i < snap.NumChunks; i++ {
			if err := e.pollCancel(field, i); err != nil {
				return err
			}
			b, err := e.scanChunk(field, kind, snap, chunkSize, i, scan)
			if err != nil {
				return err
			}
			result[i] = b
		}
		return nil
	}

	g, _ := errgroup.WithContext(e.ctx)
	g.SetLimit(e.Cfg.ChunkParallelism)
	for i := snap.Barrier; i < snap.NumChunks; i++ {
		i := i
		if err := e.pollCancel(field, i); err != nil {
			return err
		}
		g.Go(func() error {
			b, err := e.scanChunk(field, kind, snap, chunkSize, i, scan)
			if err != nil {
				return err
			}
			result[i] = b
			return nil
		})
	}
	return g.Wait()
}

func (e *Executor) scanChunk(field, kind string, snap segment.Snapshot, chunkSize, i int, scan func(expr.Value) bool) (*bitset.Bitset, error) {
	start := time.Now()
	data, err := e.Store.Chunk(field, i)
	if err != nil {
		return nil, newInvariantViolation(field, "column store failed to return a chunk within the sampled snapshot: "+err.Error())
	}
	b := bitset.New(chunkSize)
	logical := snap.LogicalLen(chunkSize, i)
	for j := 0; j < logical; j++ {
		b.Set(j, scan(data[j]))
	}
	telemetry.LeafDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	telemetry.ChunksScanned.WithLabelValues(field).Inc()
	telemetry.ChunkEvent(field, i, "scan")
	return b, nil
}

// pollCancel checks the cooperative cancellation flag every
// Cfg.CancelPollEvery chunks.
func (e *Executor) pollCancel(field string, chunkID int) error {
	if chunkID%e.Cfg.CancelPollEvery != 0 {
		return nil
	}
	if e.cancelled(e.ctx) {
		telemetry.ChunkEvent(field, chunkID, "cancelled")
		return newCancelled(field)
	}
	return nil
}
