// Package pure provides side-effect free collection operations.
//
// A collection is either an ordered sequence ([Seq], keys are indices) or
// a key-ordered mapping ([Mapping], keys enumerate in insertion order).
// Both satisfy [Collection], which exposes a single enumeration of
// (key, value) pairs; operations that accept either shape program against
// that enumeration instead of switching on the shape.
//
// Sequence-only operations (First, IndexOf, Uniq, Zip, ...) take plain
// slices, so a Seq or any []V can be passed directly:
//
//	evens := pure.Filter(pure.SeqOf(1, 2, 3, 4), func(n int) bool { return n%2 == 0 })
//	total := pure.Reduce(pure.FromMap(prices), func(acc, p float64) float64 { return acc + p }, 0)
//
// Nothing here mutates its input except [Extend], [Defaults] and their
// map forms, which write into their target by contract. Passing a nil
// function where an iterator is required panics with helper.ErrNilFunc.
package pure
