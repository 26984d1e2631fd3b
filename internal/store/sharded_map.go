package store

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// shardedMap is a concurrency-safe map split into independently locked
// shards. Single-key operations hold exactly one shard lock.
type shardedMap[K comparable, V any] struct {
	shards []*mapShard[K, V]
	hash   func(K) uint64
}

type mapShard[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

func newShardedMap[K comparable, V any](shardCount int, hash func(K) uint64) *shardedMap[K, V] {
	if shardCount < 1 {
		shardCount = 1
	}

	shards := make([]*mapShard[K, V], shardCount)
	for i := range shards {
		shards[i] = &mapShard[K, V]{items: make(map[K]V)}
	}

	return &shardedMap[K, V]{shards: shards, hash: hash}
}

// hashInt64 hashes the little-endian bytes of k.
func hashInt64(k int64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(k))
	return xxhash.Sum64(b[:])
}

func (m *shardedMap[K, V]) shard(key K) *mapShard[K, V] {
	return m.shards[m.hash(key)%uint64(len(m.shards))]
}

func (m *shardedMap[K, V]) Load(key K) (V, bool) {
	s := m.shard(key)
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[key]
	return v, ok
}

func (m *shardedMap[K, V]) Store(key K, value V) {
	s := m.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = value
}

// Update replaces the value at key with fn(current) if key is present.
// fn runs under the shard lock and must not touch the map.
func (m *shardedMap[K, V]) Update(key K, fn func(V) V) (V, bool) {
	s := m.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.items[key]
	if !ok {
		var zero V
		return zero, false
	}

	updated := fn(current)
	s.items[key] = updated
	return updated, true
}

// Delete removes key and reports whether it was present.
func (m *shardedMap[K, V]) Delete(key K) bool {
	s := m.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[key]; !ok {
		return false
	}
	delete(s.items, key)
	return true
}

// Values returns a copy of all values. Shards are read one at a time, so the
// result is not a point-in-time snapshot across shards.
func (m *shardedMap[K, V]) Values() []V {
	values := make([]V, 0, m.Len())
	for _, s := range m.shards {
		s.mu.RLock()
		for _, v := range s.items {
			values = append(values, v)
		}
		s.mu.RUnlock()
	}
	return values
}

func (m *shardedMap[K, V]) Len() int {
	n := 0
	for _, s := range m.shards {
		s.mu.RLock()
		n += len(s.items)
		s.mu.RUnlock()
	}
	return n
}
