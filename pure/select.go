package pure

import (
	"github.com/on-the-ground/collective_go/shared/helper"
)

// First returns the first element, or false when seq is empty.
func First[V any](seq []V) (V, bool) {
	if len(seq) == 0 {
		var zero V
		return zero, false
	}
	return seq[0], true
}

// FirstN returns a new slice holding the first n elements.
// n larger than the sequence yields a copy of the whole sequence.
func FirstN[V any](seq []V, n int) []V {
	n = clampCount(n, len(seq))
	return append(make([]V, 0, n), seq[:n]...)
}

// Last returns the last element, or false when seq is empty.
func Last[V any](seq []V) (V, bool) {
	if len(seq) == 0 {
		var zero V
		return zero, false
	}
	return seq[len(seq)-1], true
}

// LastN returns a new slice holding the last n elements.
func LastN[V any](seq []V, n int) []V {
	n = clampCount(n, len(seq))
	return append(make([]V, 0, n), seq[len(seq)-n:]...)
}

func clampCount(n, length int) int {
	switch {
	case n < 0:
		return 0
	case n > length:
		return length
	default:
		return n
	}
}

// IndexOf returns the lowest index holding target, or -1.
func IndexOf[V comparable](seq []V, target V) int {
	c := comparerFor[V]()
	for i, v := range seq {
		if equal(c, v, target) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the highest index holding target, or -1.
func LastIndexOf[V comparable](seq []V, target V) int {
	c := comparerFor[V]()
	for i := len(seq) - 1; i >= 0; i-- {
		if equal(c, seq[i], target) {
			return i
		}
	}
	return -1
}

// Filter collects the values for which pred holds, in enumeration order.
// Mapping keys are dropped. The result is always a fresh, non-nil slice.
func Filter[K comparable, V any](c Collection[K, V], pred func(V) bool) []V {
	helper.MustFunc(pred, "filter predicate")
	out := make([]V, 0, c.Len())
	for _, v := range c.All() {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reject is the complement of Filter.
func Reject[K comparable, V any](c Collection[K, V], pred func(V) bool) []V {
	helper.MustFunc(pred, "reject predicate")
	return Filter(c, func(v V) bool { return !pred(v) })
}

// Uniq keeps the first occurrence of every distinct value.
// The input does not need to be sorted.
func Uniq[V comparable](seq []V) []V {
	return UniqBy(seq, func(v V) V { return v })
}

// UniqBy deduplicates by a derived key, keeping first occurrences.
// Values keyed by a slice, map or func are all kept.
func UniqBy[V any, K comparable](seq []V, key func(V) K) []V {
	helper.MustFunc(key, "uniq key")
	c := comparerFor[K]()
	seen := make(map[K]struct{}, len(seq))
	out := make([]V, 0, len(seq))
	for _, v := range seq {
		k := key(v)
		if !c.hashable(k) {
			out = append(out, v)
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Contains reports whether some value of c equals target.
func Contains[K comparable, V comparable](c Collection[K, V], target V) bool {
	eq := comparerFor[V]()
	for _, v := range c.All() {
		if equal(eq, v, target) {
			return true
		}
	}
	return false
}

// Intersection returns the distinct values present in every seq, ordered
// by their first appearance in the first one. A value holding a slice,
// map or func is never common.
func Intersection[V comparable](seqs ...[]V) []V {
	if len(seqs) == 0 {
		return []V{}
	}
	others := make([]map[V]struct{}, 0, len(seqs)-1)
	for _, seq := range seqs[1:] {
		others = append(others, setOf(seq))
	}

	c := comparerFor[V]()
	out := make([]V, 0)
	for _, v := range Uniq(seqs[0]) {
		if !c.hashable(v) {
			continue
		}
		inAll := true
		for _, set := range others {
			if _, ok := set[v]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, v)
		}
	}
	return out
}

// Difference returns the values of seq that appear in none of others.
// Duplicates within seq are kept, and so are values holding a slice, map
// or func, which match nothing.
func Difference[V comparable](seq []V, others ...[]V) []V {
	c := comparerFor[V]()
	excluded := make(map[V]struct{})
	for _, other := range others {
		for _, v := range other {
			if c.hashable(v) {
				excluded[v] = struct{}{}
			}
		}
	}
	out := make([]V, 0, len(seq))
	for _, v := range seq {
		if !c.hashable(v) {
			out = append(out, v)
			continue
		}
		if _, ok := excluded[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}

// setOf skips values that cannot be map keys.
func setOf[V comparable](seq []V) map[V]struct{} {
	c := comparerFor[V]()
	set := make(map[V]struct{}, len(seq))
	for _, v := range seq {
		if c.hashable(v) {
			set[v] = struct{}{}
		}
	}
	return set
}
