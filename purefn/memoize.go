package purefn

import (
	"fmt"

	"github.com/on-the-ground/collective_go/shared/helper"
)

type ComparableOrStringer any
type ComparableOrString any

// Memoize caches fn by its argument. The cache lives as long as the
// returned function and never evicts.
//
// Two concurrent misses on the same argument may both run fn; the later
// result wins the slot. Callers get the result of their own run.
func Memoize[I comparable, O any](fn func(I) O) func(I) O {
	return MemoizeWith(fn, DefaultMemoConfig())
}

// MemoizeWith is Memoize with an explicit cache shape. A bounded config
// switches to a two-generation trie that may forget old entries.
func MemoizeWith[I comparable, O any](fn func(I) O, cfg MemoConfig) func(I) O {
	helper.MustFunc(fn, "memoized function")
	if cfg.Bounded() {
		memo := NewTrie[O](cfg.MaxSize)
		return func(i I) O {
			keys := []ComparableOrString{i}
			if v, ok := memo.Load(keys); ok {
				return v
			}
			v := fn(i)
			memo.Store(keys, v)
			return v
		}
	}

	memo := newShardedTable[I, O](NewMemoConfig(cfg.NumShards, 0).NumShards)
	return func(i I) O {
		if v, ok := memo.Load(i); ok {
			return v
		}
		v := fn(i)
		memo.Store(i, v)
		return v
	}
}

// MemoizeErr caches only successful results. A failed call is not
// remembered, so the next call with the same argument runs fn again.
func MemoizeErr[I comparable, O any](fn func(I) (O, error)) func(I) (O, error) {
	helper.MustFunc(fn, "memoized function")
	memo := newShardedTable[I, O](defaultNumShards)
	return func(i I) (O, error) {
		if v, ok := memo.Load(i); ok {
			return v, nil
		}
		v, err := fn(i)
		if err != nil {
			return v, err
		}
		memo.Store(i, v)
		return v, nil
	}
}

// Memoize2 caches a two-argument function by its argument pair.
// Arguments that are not comparable must implement fmt.Stringer; their
// String() is the cache key. maxSize 0 keeps every entry.
func Memoize2[I1, I2 ComparableOrStringer, O any](fn func(I1, I2) O, maxSize uint32) func(I1, I2) O {
	helper.MustFunc(fn, "memoized function")
	memo := NewTrie[O](maxSize)
	return func(i1 I1, i2 I2) O {
		keys := []ComparableOrString{tableKey(i1), tableKey(i2)}
		if v, ok := memo.Load(keys); ok {
			return v
		}
		v := fn(i1, i2)
		memo.Store(keys, v)
		return v
	}
}

// Memoize3 is Memoize2 for three arguments.
func Memoize3[I1, I2, I3 ComparableOrStringer, O any](fn func(I1, I2, I3) O, maxSize uint32) func(I1, I2, I3) O {
	helper.MustFunc(fn, "memoized function")
	memo := NewTrie[O](maxSize)
	return func(i1 I1, i2 I2, i3 I3) O {
		keys := []ComparableOrString{tableKey(i1), tableKey(i2), tableKey(i3)}
		if v, ok := memo.Load(keys); ok {
			return v
		}
		v := fn(i1, i2, i3)
		memo.Store(keys, v)
		return v
	}
}

func tableKey(i ComparableOrStringer) ComparableOrString {
	if stringer, ok := i.(fmt.Stringer); ok {
		return stringer.String()
	}
	return i
}
