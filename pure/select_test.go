package pure_test

import (
	"testing"

	"github.com/on-the-ground/collective_go/pure"
	"github.com/on-the-ground/collective_go/shared/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isEven(n int) bool { return n%2 == 0 }

func TestFirst(t *testing.T) {
	v, ok := pure.First([]int{1, 2, 3})
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = pure.First([]int{})
	assert.False(t, ok)
}

func TestFirstN(t *testing.T) {
	in := []int{1, 2, 3}
	assert.Equal(t, []int{1, 2}, pure.FirstN(in, 2))
	assert.Equal(t, []int{1, 2, 3}, pure.FirstN(in, 10))
	assert.Equal(t, []int{}, pure.FirstN(in, 0))
	assert.Equal(t, []int{}, pure.FirstN([]int{}, 2))
	assert.Equal(t, []int{}, pure.FirstN(in, -1))
	assert.Equal(t, []int{1, 2, 3}, in, "input must not be truncated")
}

func TestFirstN_ResultDoesNotAlias(t *testing.T) {
	in := []int{1, 2, 3}
	out := pure.FirstN(in, 2)
	out[0] = 100
	_ = append(out, 200)
	assert.Equal(t, []int{1, 2, 3}, in)
}

func TestLast(t *testing.T) {
	v, ok := pure.Last([]int{1, 2, 3})
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = pure.Last([]string{})
	assert.False(t, ok)

	in := []int{1, 2, 3}
	assert.Equal(t, []int{2, 3}, pure.LastN(in, 2))
	assert.Equal(t, []int{1, 2, 3}, pure.LastN(in, 5))
	assert.Equal(t, []int{}, pure.LastN(in, 0))
	assert.Equal(t, []int{1, 2, 3}, in)
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 1, pure.IndexOf([]int{1, 2, 2, 3}, 2))
	assert.Equal(t, -1, pure.IndexOf([]int{1, 2, 3}, 9))
	assert.Equal(t, -1, pure.IndexOf([]int{}, 1))
	assert.Equal(t, 2, pure.LastIndexOf([]int{1, 2, 2, 3}, 2))
	assert.Equal(t, -1, pure.LastIndexOf([]string{"a"}, "b"))
}

func TestIndexOf_StrictEquality(t *testing.T) {
	// no coercion between dynamic types
	assert.Equal(t, -1, pure.IndexOf([]any{1, "1", 1.0}, any(int64(1))))
	assert.Equal(t, 1, pure.IndexOf([]any{1, "1", 1.0}, any("1")))
}

func TestFilterReject(t *testing.T) {
	seq := pure.SeqOf(1, 2, 3, 4)
	assert.Equal(t, []int{2, 4}, pure.Filter(seq, isEven))
	assert.Equal(t, []int{1, 3}, pure.Reject(seq, isEven))
	assert.Equal(t, []int{}, pure.Filter(pure.SeqOf[int](), isEven))
}

func TestFilterReject_Partition(t *testing.T) {
	seqs := [][]int{{}, {1}, {2, 2, 2}, {5, 4, 3, 2, 1, 0}, {-3, -2, 7, 8, 11}}
	for _, s := range seqs {
		kept := pure.Filter(pure.Seq[int](s), isEven)
		dropped := pure.Reject(pure.Seq[int](s), isEven)
		assert.Len(t, s, len(kept)+len(dropped))
		assert.ElementsMatch(t, s, append(append([]int{}, kept...), dropped...))
		for _, v := range kept {
			assert.True(t, isEven(v))
		}
		for _, v := range dropped {
			assert.False(t, isEven(v))
		}
	}
}

func TestFilter_MappingCollectsValues(t *testing.T) {
	m := pure.MappingOf(pure.PairOf("a", 1), pure.PairOf("b", 2), pure.PairOf("c", 4))
	assert.Equal(t, []int{2, 4}, pure.Filter(m, isEven))
	assert.Equal(t, []int{1}, pure.Reject(m, isEven))
}

func TestFilter_NilPredicatePanics(t *testing.T) {
	defer func() {
		r := recover()
		assert.ErrorIs(t, r.(error), helper.ErrNilFunc)
	}()
	pure.Filter(pure.SeqOf(1), nil)
}

func TestUniq(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, pure.Uniq([]int{1, 2, 1, 3, 2}))
	assert.Equal(t, []string{"b", "a"}, pure.Uniq([]string{"b", "a", "b", "a"}))
	assert.Equal(t, []int{}, pure.Uniq([]int{}))
}

func TestUniq_Idempotent(t *testing.T) {
	in := []int{3, 1, 3, 2, 1, 9, 9}
	once := pure.Uniq(in)
	assert.Equal(t, once, pure.Uniq(once))
	assert.Equal(t, []int{3, 1, 3, 2, 1, 9, 9}, in)
}

func TestUniqBy(t *testing.T) {
	words := []string{"apple", "avocado", "banana", "blueberry", "cherry"}
	byInitial := pure.UniqBy(words, func(s string) byte { return s[0] })
	assert.Equal(t, []string{"apple", "banana", "cherry"}, byInitial)
}

func TestContains(t *testing.T) {
	assert.True(t, pure.Contains(pure.SeqOf(1, 2, 3), 2))
	assert.False(t, pure.Contains(pure.SeqOf(1, 2, 3), 4))
	m := pure.MappingOf(pure.PairOf("x", "foo"))
	assert.True(t, pure.Contains(m, "foo"))
	assert.False(t, pure.Contains(m, "x"), "keys are not values")
}

func TestIntersection(t *testing.T) {
	assert.Equal(t, []int{2, 3}, pure.Intersection([]int{1, 2, 3}, []int{2, 3, 4}))
	assert.Equal(t, []int{3, 2}, pure.Intersection([]int{3, 2, 3, 2, 1}, []int{2, 3}, []int{1, 2, 3}))
	assert.Equal(t, []int{}, pure.Intersection([]int{1}, []int{2}))
	assert.Equal(t, []int{}, pure.Intersection[int]())
	assert.Equal(t, []int{1, 2}, pure.Intersection([]int{1, 2, 1}))
}

func TestDifference(t *testing.T) {
	assert.Equal(t, []int{1, 3}, pure.Difference([]int{1, 2, 3, 4}, []int{2, 4}))
	assert.Equal(t, []int{1, 1}, pure.Difference([]int{1, 2, 1, 3}, []int{2}, []int{3}))
	assert.Equal(t, []int{1, 2}, pure.Difference([]int{1, 2}))
}

func TestSetOps_UnhashableElements(t *testing.T) {
	flat := pure.Flatten([]any{1, []any{2, []any{3}}}, true)
	require.Len(t, flat, 3)

	uniq := pure.Uniq(append(flat, 1, 2))
	assert.Len(t, uniq, 3)
	assert.Equal(t, []any{1, 2}, uniq[:2])
	assert.Equal(t, []any{3}, uniq[2])

	assert.Equal(t, []any{[]int{2}}, pure.Difference([]any{1, []int{2}}, []any{1}))
	assert.Equal(t, []any{1, map[string]int{}}, pure.Difference([]any{1, map[string]int{}}, []any{map[string]int{}}))
	assert.Len(t, pure.Difference([]any{1, []int{2}}, []any{[]int{2}}), 2, "slices match nothing")

	assert.Equal(t, []any{1}, pure.Intersection([]any{1, []int{2}}, []any{[]int{2}, 1}))

	assert.Equal(t, 1, pure.IndexOf([]any{[]int{1}, 2}, any(2)))
	assert.Equal(t, -1, pure.IndexOf([]any{[]int{1}}, any([]int{1})))
	assert.Equal(t, -1, pure.LastIndexOf([]any{[]int{1}}, any([]int{1})))
	assert.True(t, pure.Contains(pure.SeqOf[any]([]int{1}, "x"), any("x")))
	assert.False(t, pure.Contains(pure.SeqOf[any]([]int{1}), any([]int{1})))
}

type tagged struct {
	Tag   string
	Value any
}

func TestUniq_StructHoldingSlice(t *testing.T) {
	in := []tagged{{"a", 1}, {"a", 1}, {"b", []int{1}}, {"b", []int{1}}}
	out := pure.Uniq(in)
	assert.Len(t, out, 3)
	assert.Equal(t, tagged{"a", 1}, out[0])
}
