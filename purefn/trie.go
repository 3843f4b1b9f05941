package purefn

import (
	"sync"
	"sync/atomic"
)

// Trie is a memo table keyed by argument tuples. Each argument selects a
// level of nested sync.Maps.
//
// With a positive maxSize the trie keeps two generations: once the head
// generation has taken maxSize stores, the standby generation is dropped
// and replaced by a fresh head. Lookups consult both, so a value survives
// at least one rotation. A zero maxSize never rotates.
type Trie[O any] struct {
	memos   [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
	rotate  sync.Mutex
}

func NewTrie[O any](maxSize uint32) *Trie[O] {
	t := &Trie[O]{maxSize: maxSize}
	t.memos[0].Store(&sync.Map{})
	t.memos[1].Store(&sync.Map{})
	return t
}

func (t *Trie[O]) Load(keys []ComparableOrString) (O, bool) {
	headIdx := t.headIdx.Load()
	if v, ok := lookup(t.memos[headIdx].Load(), keys); ok {
		return v.(O), true
	}
	if v, ok := lookup(t.memos[1-headIdx].Load(), keys); ok {
		return v.(O), true
	}
	var zero O
	return zero, false
}

func (t *Trie[O]) Store(keys []ComparableOrString, value O) {
	mustKeys(keys)
	if t.maxSize > 0 && t.size.Load() >= t.maxSize {
		t.rotateHead()
	}
	m, k := traverse(t.memos[t.headIdx.Load()].Load(), keys)
	m.Store(k, value)
	t.size.Add(1)
}

func (t *Trie[O]) rotateHead() {
	t.rotate.Lock()
	defer t.rotate.Unlock()
	if t.size.Load() < t.maxSize {
		// another writer rotated first
		return
	}
	next := 1 - t.headIdx.Load()
	t.memos[next].Store(&sync.Map{})
	t.headIdx.Store(next)
	t.size.Store(0)
}

// traverse walks to the leaf map for keys, creating missing levels.
func traverse(targetMap *sync.Map, keys []ComparableOrString) (*sync.Map, any) {
	last := len(keys) - 1
	for _, k := range keys[:last] {
		v, ok := targetMap.Load(k)
		if !ok {
			v, _ = targetMap.LoadOrStore(k, &sync.Map{})
		}
		targetMap = v.(*sync.Map)
	}
	return targetMap, keys[last]
}

// lookup walks keys without creating levels.
func lookup(targetMap *sync.Map, keys []ComparableOrString) (any, bool) {
	mustKeys(keys)
	last := len(keys) - 1
	for _, k := range keys[:last] {
		v, ok := targetMap.Load(k)
		if !ok {
			return nil, false
		}
		targetMap = v.(*sync.Map)
	}
	return targetMap.Load(keys[last])
}

func mustKeys(keys []ComparableOrString) {
	if len(keys) == 0 {
		panic("trie: empty keys")
	}
}
