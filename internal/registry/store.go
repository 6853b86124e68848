package registry

import (
	"fmt"
	"hash/fnv"
	"sync"
	"sync/atomic"

	"TrafficScope/internal/model"
	"TrafficScope/internal/stats"
)

const defaultShardCount = 64

// RecordFootprint is the byte budget charged per record slot when a zone's
// size is translated to a capacity: the record itself, its interned key and
// the map overhead.
const RecordFootprint = 512

// Store lifecycle states, see Drain and Destroy.
const (
	stateActive int32 = iota
	stateDraining
	stateDestroyed
)

// shard is one partition of the key space: a map guarded by its own RWMutex.
// The lock covers structural mutation (insert-if-absent) and map reads only;
// record fields are mutated through their own atomics.
type shard struct {
	mu      sync.RWMutex
	records map[model.EntityKey]*stats.Record
}

// Store is the fixed-capacity concurrent mapping from EntityKey to Record.
// It is created Active, serves GetOrCreate and Range concurrently, and is
// torn down through Drain then Destroy. Capacity is fixed at creation; when
// it is exhausted, events for new keys are rejected rather than growing the
// table without bound.
type Store struct {
	name       string
	capacity   int64
	shardCount uint32
	shards     []*shard

	live  atomic.Int64 // records currently held
	state atomic.Int32
	ops   atomic.Int64 // operations in flight on resolved records
}

// New creates an Active store for the named zone. sizeBytes is the fixed
// byte budget; it must cover at least one record slot.
func New(name string, sizeBytes uint64, numShards uint32) (*Store, error) {
	if sizeBytes < RecordFootprint {
		return nil, fmt.Errorf("zone %q size %d below one record slot (%d bytes): %w",
			name, sizeBytes, RecordFootprint, model.ErrMalformedInput)
	}
	if numShards <= 0 || numShards >= 32768 {
		numShards = defaultShardCount
	}

	s := &Store{
		name:       name,
		capacity:   int64(sizeBytes / RecordFootprint),
		shardCount: numShards,
		shards:     make([]*shard, numShards),
	}
	for i := range s.shards {
		s.shards[i] = &shard{records: make(map[model.EntityKey]*stats.Record)}
	}
	return s, nil
}

// Name returns the zone name the store was configured with.
func (s *Store) Name() string { return s.name }

// Capacity returns the maximum number of distinct entities tracked.
func (s *Store) Capacity() int64 { return s.capacity }

// Len returns the number of live records.
func (s *Store) Len() int64 { return s.live.Load() }

func (s *Store) getShard(key model.EntityKey) *shard {
	h := fnv.New32a()
	h.Write([]byte{byte(key.Kind)})
	h.Write([]byte(key.String()))
	return s.shards[h.Sum32()%s.shardCount]
}

// GetOrCreate resolves the record for key, creating it on first use.
// Concurrent callers racing on the same new key observe exactly one record:
// the insert-if-absent runs under the shard lock and the loser receives the
// winner's record. A new key arriving at capacity fails with
// model.ErrCapacityExceeded; known keys are unaffected. The call never
// waits on anything but lock contention and fails fast during teardown.
func (s *Store) GetOrCreate(key model.EntityKey) (*stats.Record, error) {
	if st := s.state.Load(); st != stateActive {
		return nil, fmt.Errorf("zone %q: %w", s.name, model.ErrShuttingDown)
	}

	sh := s.getShard(key)

	sh.mu.RLock()
	rec, ok := sh.records[key]
	sh.mu.RUnlock()
	if ok {
		return rec, nil
	}

	sh.mu.Lock()
	defer sh.mu.Unlock()
	if rec, ok := sh.records[key]; ok {
		return rec, nil
	}
	// Reserve a slot before inserting so concurrent inserts in other shards
	// cannot overshoot the capacity together.
	if n := s.live.Add(1); n > s.capacity {
		s.live.Add(-1)
		return nil, fmt.Errorf("zone %q at capacity (%d records): %w", s.name, s.capacity, model.ErrCapacityExceeded)
	}
	rec = stats.NewRecord()
	sh.records[key] = rec
	return rec, nil
}

// Range iterates the records present at call time in no particular order,
// calling fn until it returns false. Iteration is weakly consistent:
// records inserted during the walk may or may not appear, no record appears
// twice, and every yielded record is fully constructed. The shard read lock
// is held only while that shard's pairs are copied, never across fn.
func (s *Store) Range(fn func(model.EntityKey, *stats.Record) bool) {
	type pair struct {
		key model.EntityKey
		rec *stats.Record
	}
	for _, sh := range s.shards {
		sh.mu.RLock()
		pairs := make([]pair, 0, len(sh.records))
		for k, r := range sh.records {
			pairs = append(pairs, pair{k, r})
		}
		sh.mu.RUnlock()

		for _, p := range pairs {
			if !fn(p.key, p.rec) {
				return
			}
		}
	}
}

// BeginOp marks an operation in flight on a resolved record. It fails once
// draining has begun; operations that began earlier run to completion.
func (s *Store) BeginOp() error {
	s.ops.Add(1)
	if s.state.Load() != stateActive {
		s.ops.Add(-1)
		return fmt.Errorf("zone %q: %w", s.name, model.ErrShuttingDown)
	}
	return nil
}

// EndOp releases an operation started with BeginOp.
func (s *Store) EndOp() { s.ops.Add(-1) }

// Drain moves the store from Active to Draining: new GetOrCreate and
// BeginOp calls start failing while in-flight operations complete.
func (s *Store) Drain() {
	s.state.CompareAndSwap(stateActive, stateDraining)
}

// Destroy releases the backing storage. It requires Drain first and fails
// while operations are still in flight, so a caller retries or waits for
// its workers before destroying.
func (s *Store) Destroy() error {
	if s.state.Load() != stateDraining {
		return fmt.Errorf("zone %q: destroy requires draining state", s.name)
	}
	if n := s.ops.Load(); n != 0 {
		return fmt.Errorf("zone %q: %d operations still in flight", s.name, n)
	}
	if !s.state.CompareAndSwap(stateDraining, stateDestroyed) {
		return fmt.Errorf("zone %q: already destroyed", s.name)
	}
	for _, sh := range s.shards {
		sh.mu.Lock()
		sh.records = nil
		sh.mu.Unlock()
	}
	s.live.Store(0)
	return nil
}
