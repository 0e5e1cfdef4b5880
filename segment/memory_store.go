package segment

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/scigolib/predicate/bitset"
	"github.com/scigolib/predicate/expr"
)

// MemoryColumnStore is an in-memory, append-only ColumnStore used by tests,
// examples, and the predicate-bench CLI in place of a real segment. Writers
// append whole chunks; AckedRows is published via atomic store-release and
// read via atomic load-acquire, matching the single-writer/multi-reader
// discipline required of a real segment.
type MemoryColumnStore struct {
	chunkSize int

	mu     sync.RWMutex
	fields map[string]*memoryColumn
}

type memoryColumn struct {
	chunks [][]expr.Value
	acked  atomic.Int64
}

// NewMemoryColumnStore returns an empty store with the given chunk width.
func NewMemoryColumnStore(chunkSize int) *MemoryColumnStore {
	return &MemoryColumnStore{
		chunkSize: chunkSize,
		fields:    make(map[string]*memoryColumn),
	}
}

// ChunkSize implements ColumnStore.
func (s *MemoryColumnStore) ChunkSize() int {
	return s.chunkSize
}

func (s *MemoryColumnStore) column(field string) *memoryColumn {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.fields[field]
	if !ok {
		c = &memoryColumn{}
		s.fields[field] = c
	}
	return c
}

// AppendChunk appends a full chunkSize-wide chunk of raw values to field
// and advances the acknowledged row count by n (n <= chunkSize). This
// models the ingester's write path: data lands first, the row count is
// published after (release), so concurrent readers never observe a
// half-written chunk.
func (s *MemoryColumnStore) AppendChunk(field string, values []expr.Value, n int) error {
	if len(values) != s.chunkSize {
		return fmt.Errorf("segment: AppendChunk: field %q: got %d values, want chunk size %d", field, len(values), s.chunkSize)
	}
	if n < 0 || n > s.chunkSize {
		return fmt.Errorf("segment: AppendChunk: field %q: acked count %d out of [0, %d]", field, n, s.chunkSize)
	}
	c := s.column(field)
	s.mu.Lock()
	c.chunks = append(c.chunks, values)
	s.mu.Unlock()
	c.acked.Store(c.acked.Load() + int64(n))
	return nil
}

// NumChunks implements ColumnStore.
func (s *MemoryColumnStore) NumChunks(field string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.fields[field]
	if !ok {
		return 0
	}
	return len(c.chunks)
}

// AckedRows implements ColumnStore.
func (s *MemoryColumnStore) AckedRows(field string) int {
	s.mu.RLock()
	c, ok := s.fields[field]
	s.mu.RUnlock()
	if !ok {
		return 0
	}
	return int(c.acked.Load())
}

// Chunk implements ColumnStore.
func (s *MemoryColumnStore) Chunk(field string, i int) ([]expr.Value, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.fields[field]
	if !ok || i < 0 || i >= len(c.chunks) {
		return nil, fmt.Errorf("segment: Chunk: field %q: chunk %d out of range", field, i)
	}
	return c.chunks[i], nil
}

// Fingerprint returns an xxhash content fingerprint for chunk i of field,
// computed over every value slot of the chunk. It is recomputed on each
// call; nothing caches it.
func (s *MemoryColumnStore) Fingerprint(field string, i int) (uint64, error) {
	chunk, err := s.Chunk(field, i)
	if err != nil {
		return 0, err
	}
	h := xxhash.New()
	for _, v := range chunk {
		fmt.Fprintf(h, "%s|", v.String())
	}
	return h.Sum64(), nil
}

// MemoryIndexRegistry is an in-memory IndexRegistry. BuildIndex promotes
// chunks into [0, Barrier) one at a time; Barrier only ever increases.
type MemoryIndexRegistry struct {
	chunkSize int

	mu      sync.RWMutex
	indexes map[string]map[int]ScalarIndex
	barrier map[string]*atomic.Int64

	cache *lru.Cache[string, *bitset.Bitset]
}

// NewMemoryIndexRegistry returns an empty registry. cacheSize bounds the
// number of decoded index lookups cached across all fields and chunks.
func NewMemoryIndexRegistry(chunkSize, cacheSize int) *MemoryIndexRegistry {
	cache, _ := lru.New[string, *bitset.Bitset](cacheSize)
	return &MemoryIndexRegistry{
		chunkSize: chunkSize,
		indexes:   make(map[string]map[int]ScalarIndex),
		barrier:   make(map[string]*atomic.Int64),
		cache:     cache,
	}
}

func (r *MemoryIndexRegistry) barrierCounter(field string) *atomic.Int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.barrier[field]
	if !ok {
		b = &atomic.Int64{}
		r.barrier[field] = b
	}
	return b
}

// BuildIndex installs a scalar index over chunk i of field, built from its
// current contents, and advances field's barrier if i is the next
// unindexed chunk. Chunks must be indexed in order; out-of-order calls
// return an error rather than silently leaving a gap below the barrier.
func (r *MemoryIndexRegistry) BuildIndex(field string, i int, chunk []expr.Value) error {
	b := r.barrierCounter(field)
	if int(b.Load()) != i {
		return fmt.Errorf("segment: BuildIndex: field %q: chunk %d is not the next unindexed chunk (barrier at %d)", field, i, b.Load())
	}
	r.mu.Lock()
	if r.indexes[field] == nil {
		r.indexes[field] = make(map[int]ScalarIndex)
	}
	r.indexes[field][i] = &memoryScalarIndex{
		field:     field,
		chunkID:   i,
		values:    chunk,
		chunkSize: r.chunkSize,
		cache:     r.cache,
	}
	r.mu.Unlock()
	b.Store(int64(i + 1))
	return nil
}

// Barrier implements IndexRegistry.
func (r *MemoryIndexRegistry) Barrier(field string) int {
	r.mu.RLock()
	b, ok := r.barrier[field]
	r.mu.RUnlock()
	if !ok {
		return 0
	}
	return int(b.Load())
}

// Index implements IndexRegistry.
func (r *MemoryIndexRegistry) Index(field string, i int) (ScalarIndex, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	byChunk, ok := r.indexes[field]
	if !ok {
		return nil, false
	}
	idx, ok := byChunk[i]
	return idx, ok
}

// memoryScalarIndex answers index queries by scanning the chunk's captured
// values directly -- a real scalar index would use a sorted structure, but
// the contract (chunk_size-wide bitset per lookup) is what the executor
// depends on, not the index's internal representation.
type memoryScalarIndex struct {
	field     string
	chunkID   int
	values    []expr.Value
	chunkSize int
	cache     *lru.Cache[string, *bitset.Bitset]
}

func (idx *memoryScalarIndex) cacheKey(kind string, a expr.Value, b expr.Value, lincl, hincl bool) string {
	return fmt.Sprintf("%s/%d/%s/%s/%s/%v/%v", idx.field, idx.chunkID, kind, a.String(), b.String(), lincl, hincl)
}

func (idx *memoryScalarIndex) lookup(key string, compute func() *bitset.Bitset) *bitset.Bitset {
	if idx.cache != nil {
		if b, ok := idx.cache.Get(key); ok {
			return b.Clone()
		}
	}
	b := compute()
	if idx.cache != nil {
		idx.cache.Add(key, b.Clone())
	}
	return b
}

func (idx *memoryScalarIndex) InSet(vals []expr.Value) (*bitset.Bitset, error) {
	key := fmt.Sprintf("%s/%d/in/%s", idx.field, idx.chunkID, valuesKey(vals))
	result := idx.lookup(key, func() *bitset.Bitset {
		b := bitset.New(idx.chunkSize)
		for i, v := range idx.values {
			for _, want := range vals {
				if expr.Eq(v, want) {
					b.Set(i, true)
					break
				}
			}
		}
		return b
	})
	return result, nil
}

func (idx *memoryScalarIndex) NotInSet(vals []expr.Value) (*bitset.Bitset, error) {
	b, err := idx.InSet(vals)
	if err != nil {
		return nil, err
	}
	b.Flip()
	return b, nil
}

func (idx *memoryScalarIndex) Range1(v expr.Value, op RangeEndpoint) (*bitset.Bitset, error) {
	key := idx.cacheKey("range1-"+fmt.Sprint(op), v, v, false, false)
	result := idx.lookup(key, func() *bitset.Bitset {
		b := bitset.New(idx.chunkSize)
		for i, x := range idx.values {
			var match bool
			switch op {
			case RangeLT:
				match = expr.Lt(x, v)
			case RangeLE:
				match = expr.Le(x, v)
			case RangeGT:
				match = expr.Gt(x, v)
			case RangeGE:
				match = expr.Ge(x, v)
			}
			b.Set(i, match)
		}
		return b
	})
	return result, nil
}

func (idx *memoryScalarIndex) Range2(lo expr.Value, loIncl bool, hi expr.Value, hiIncl bool) (*bitset.Bitset, error) {
	key := idx.cacheKey("range2", lo, hi, loIncl, hiIncl)
	result := idx.lookup(key, func() *bitset.Bitset {
		b := bitset.New(idx.chunkSize)
		for i, x := range idx.values {
			loOK := expr.Gt(x, lo)
			if loIncl {
				loOK = loOK || expr.Eq(x, lo)
			}
			hiOK := expr.Lt(x, hi)
			if hiIncl {
				hiOK = hiOK || expr.Eq(x, hi)
			}
			b.Set(i, loOK && hiOK)
		}
		return b
	})
	return result, nil
}

func valuesKey(vals []expr.Value) string {
	s := ""
	for _, v := range vals {
		s += v.String() + ","
	}
	return s
}
