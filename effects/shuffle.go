package effects

import "math/rand/v2"

// Shuffle returns a uniformly random permutation of seq (Fisher-Yates).
// seq is left untouched.
func Shuffle[V any](seq []V) []V {
	return ShuffleWith(seq, nil)
}

// ShuffleWith is Shuffle drawing from r. A nil r uses the global source.
func ShuffleWith[V any](seq []V, r *rand.Rand) []V {
	out := append(make([]V, 0, len(seq)), seq...)
	intN := rand.IntN
	if r != nil {
		intN = r.IntN
	}
	for i := len(out) - 1; i > 0; i-- {
		j := intN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
