package purefn

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// shardedTable is an unbounded memo table for single comparable keys.
// Keys are spread over shards by hash so that lookups on unrelated keys
// do not contend on one lock.
type shardedTable[K comparable, O any] struct {
	shards []*shard[K, O]
}

type shard[K comparable, O any] struct {
	mu    sync.RWMutex
	items map[K]O
}

func newShardedTable[K comparable, O any](numShards int) *shardedTable[K, O] {
	if numShards <= 0 {
		panic("number of shards must be greater than 0")
	}
	shards := make([]*shard[K, O], numShards)
	for i := range shards {
		shards[i] = &shard[K, O]{items: make(map[K]O)}
	}
	return &shardedTable[K, O]{shards: shards}
}

func (t *shardedTable[K, O]) Load(key K) (O, bool) {
	s := t.shardOf(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok
}

func (t *shardedTable[K, O]) Store(key K, value O) {
	s := t.shardOf(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
}

func (t *shardedTable[K, O]) Len() int {
	n := 0
	for _, s := range t.shards {
		s.mu.RLock()
		n += len(s.items)
		s.mu.RUnlock()
	}
	return n
}

func (t *shardedTable[K, O]) shardOf(key K) *shard[K, O] {
	return t.shards[shardIndex(key, len(t.shards))]
}

func shardIndex(key any, numShards int) int {
	switch numShards {
	case 0:
		panic("number of shards cannot be 0")
	case 1:
		return 0
	default:
		return int(xxhash.Sum64String(hashKey(key)) % uint64(numShards))
	}
}

// hashKey renders key as a string for hashing. Distinct keys may collide,
// which only costs balance. Signed float zeros render apart, which only
// costs a recomputation.
func hashKey(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case int:
		return strconv.Itoa(k)
	case int64:
		return strconv.FormatInt(k, 10)
	case uint64:
		return strconv.FormatUint(k, 10)
	}
	rv := reflect.ValueOf(key)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return strconv.FormatUint(uint64(rv.Pointer()), 16)
	default:
		// %#v ignores String methods, which may not agree with ==
		return fmt.Sprintf("%#v", key)
	}
}
