package pure

import (
	"cmp"
	"iter"
	"slices"
)

// Collection is anything that can enumerate (key, value) pairs in a
// canonical order. Every operation in this package that accepts both
// sequences and mappings is written against this interface.
type Collection[K comparable, V any] interface {
	All() iter.Seq2[K, V]
	Len() int
}

// Seq is an ordered sequence. Its keys are the indices 0..n-1.
type Seq[V any] []V

// SeqOf builds a Seq from its arguments.
func SeqOf[V any](values ...V) Seq[V] {
	return Seq[V](values)
}

func (s Seq[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i, v := range s {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (s Seq[V]) Len() int {
	return len(s)
}

// Mapping is a key/value collection that enumerates in insertion order.
// The zero value is an empty Mapping ready to use.
type Mapping[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

func NewMapping[K comparable, V any]() *Mapping[K, V] {
	return &Mapping[K, V]{values: make(map[K]V)}
}

// MappingOf builds a Mapping from pairs, in order. A repeated key keeps
// its first position and its last value.
func MappingOf[K comparable, V any](pairs ...Pair[K, V]) *Mapping[K, V] {
	m := &Mapping[K, V]{
		keys:   make([]K, 0, len(pairs)),
		values: make(map[K]V, len(pairs)),
	}
	for _, p := range pairs {
		m.Set(p.First, p.Second)
	}
	return m
}

// FromMap copies a Go map into a Mapping. Go maps have no defined order,
// so keys are enumerated in ascending order.
func FromMap[K cmp.Ordered, V any](src map[K]V) *Mapping[K, V] {
	keys := make([]K, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	m := &Mapping[K, V]{
		keys:   keys,
		values: make(map[K]V, len(src)),
	}
	for k, v := range src {
		m.values[k] = v
	}
	return m
}

func (m *Mapping[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

func (m *Mapping[K, V]) Len() int {
	return len(m.keys)
}

// Set stores v under k. Overwriting an existing key keeps its position.
func (m *Mapping[K, V]) Set(k K, v V) {
	if m.values == nil {
		m.values = make(map[K]V)
	}
	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
}

func (m *Mapping[K, V]) Get(k K) (V, bool) {
	v, ok := m.values[k]
	return v, ok
}

func (m *Mapping[K, V]) Has(k K) bool {
	_, ok := m.values[k]
	return ok
}

// Delete removes k and reports whether it was present.
func (m *Mapping[K, V]) Delete(k K) bool {
	if _, ok := m.values[k]; !ok {
		return false
	}
	delete(m.values, k)
	m.keys = slices.DeleteFunc(m.keys, func(key K) bool { return key == k })
	return true
}

func (m *Mapping[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

func (m *Mapping[K, V]) Values() []V {
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}

// Clone returns an independent copy with the same order.
func (m *Mapping[K, V]) Clone() *Mapping[K, V] {
	c := &Mapping[K, V]{
		keys:   slices.Clone(m.keys),
		values: make(map[K]V, len(m.values)),
	}
	for k, v := range m.values {
		c.values[k] = v
	}
	return c
}

// ToMap copies the entries into a plain Go map, dropping the order.
func (m *Mapping[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}
