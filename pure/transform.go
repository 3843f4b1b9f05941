package pure

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/on-the-ground/collective_go/shared/helper"
)

// Pluck collects the named property of every element. Elements that do
// not carry the property contribute nothing, so the result may be shorter
// than seq.
func Pluck[V any](seq []V, name string) []any {
	out := make([]any, 0, len(seq))
	for _, v := range seq {
		if p, ok := property(v, name); ok {
			out = append(out, p)
		}
	}
	return out
}

// PluckAs is Pluck with the property values asserted to U. A property
// of another type is an error.
func PluckAs[U, V any](seq []V, name string) ([]U, error) {
	out := make([]U, 0, len(seq))
	for _, v := range seq {
		u, err := helper.GetTypedValueOf[U](func() (any, error) { return propertyOf(v, name) })
		if errors.Is(err, ErrNoSuchProperty) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("pluck %q: %w", name, err)
		}
		out = append(out, u)
	}
	return out, nil
}

// PluckFunc is the typed form of Pluck: get reports whether the element
// carries the property.
func PluckFunc[V, U any](seq []V, get func(V) (U, bool)) []U {
	helper.MustFunc(get, "pluck getter")
	out := make([]U, 0, len(seq))
	for _, v := range seq {
		if u, ok := get(v); ok {
			out = append(out, u)
		}
	}
	return out
}

var errorType = reflect.TypeFor[error]()

// Invoke calls the named method with args on every element and returns
// seq itself. Every element must expose a method accepting args; this is
// checked before any call is made. A non-nil error returned by a call
// stops the walk and is returned unchanged.
func Invoke[V any](seq []V, method string, args ...any) ([]V, error) {
	type call struct {
		m  reflect.Value
		in []reflect.Value
	}
	calls := make([]call, len(seq))
	for i, v := range seq {
		rv := reflect.ValueOf(v)
		if !rv.IsValid() {
			return seq, fmt.Errorf("%w: nil.%s", ErrNoSuchMethod, method)
		}
		m := rv.MethodByName(method)
		if !m.IsValid() {
			return seq, fmt.Errorf("%w: %T.%s", ErrNoSuchMethod, v, method)
		}
		in, err := methodArgs(m.Type(), args)
		if err != nil {
			return seq, fmt.Errorf("%T.%s: %w", v, method, err)
		}
		calls[i] = call{m: m, in: in}
	}

	for _, c := range calls {
		out := c.m.Call(c.in)
		if n := len(out); n > 0 && out[n-1].Type() == errorType && !out[n-1].IsNil() {
			return seq, out[n-1].Interface().(error)
		}
	}
	return seq, nil
}

func methodArgs(mt reflect.Type, args []any) ([]reflect.Value, error) {
	fixed := mt.NumIn()
	if mt.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, fmt.Errorf("%w: want at least %d, got %d", ErrBadArguments, fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrBadArguments, fixed, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var want reflect.Type
		if i < fixed {
			want = mt.In(i)
		} else {
			want = mt.In(fixed).Elem()
		}
		if a == nil {
			in[i] = reflect.Zero(want)
			continue
		}
		av := reflect.ValueOf(a)
		if !av.Type().AssignableTo(want) {
			return nil, fmt.Errorf("%w: argument %d is %T, want %s", ErrBadArguments, i, a, want)
		}
		in[i] = av
	}
	return in, nil
}

// InvokeFunc calls fn with every element as its receiver and returns seq itself.
func InvokeFunc[V any](seq []V, fn func(V)) []V {
	helper.MustFunc(fn, "invoke function")
	for _, v := range seq {
		fn(v)
	}
	return seq
}

// SortBy returns the values of c ordered ascending by criterion.
// The sort is stable.
func SortBy[K comparable, V any, O cmp.Ordered](c Collection[K, V], criterion func(V) O) []V {
	helper.MustFunc(criterion, "sort criterion")
	keyed := make([]Pair[O, V], 0, c.Len())
	for _, v := range c.All() {
		keyed = append(keyed, PairOf(criterion(v), v))
	}
	slices.SortStableFunc(keyed, func(a, b Pair[O, V]) int {
		return cmp.Compare(a.First, b.First)
	})
	return unkey(keyed)
}

// SortByProperty orders the values of c by the named property, stably.
// Every value must carry the property and the property values must be
// mutually ordered (all numbers, all strings or all bools).
func SortByProperty[K comparable, V any](c Collection[K, V], name string) ([]V, error) {
	keyed := make([]Pair[any, V], 0, c.Len())
	for _, v := range c.All() {
		p, err := propertyOf(v, name)
		if err != nil {
			return nil, err
		}
		keyed = append(keyed, PairOf(p, v))
	}

	var errs []error
	slices.SortStableFunc(keyed, func(a, b Pair[any, V]) int {
		n, err := compareAny(a.First, b.First)
		if err != nil {
			errs = append(errs, err)
		}
		return n
	})
	if len(errs) > 0 {
		return nil, errs[0]
	}
	return unkey(keyed), nil
}

func unkey[O, V any](keyed []Pair[O, V]) []V {
	out := make([]V, len(keyed))
	for i, p := range keyed {
		out[i] = p.Second
	}
	return out
}

// SortedIndex returns the lowest index at which v could be inserted into
// seq, already sorted by criterion, keeping it sorted.
func SortedIndex[V any, O cmp.Ordered](seq []V, v V, criterion func(V) O) int {
	helper.MustFunc(criterion, "sort criterion")
	i, _ := slices.BinarySearchFunc(seq, criterion(v), func(e V, target O) int {
		return cmp.Compare(criterion(e), target)
	})
	return i
}

// Zip groups the i-th elements of every seq together, up to the longest
// seq. Positions past the end of a shorter seq hold None.
func Zip[V any](seqs ...[]V) [][]Option[V] {
	longest := 0
	for _, seq := range seqs {
		longest = max(longest, len(seq))
	}
	out := make([][]Option[V], longest)
	for i := range out {
		row := make([]Option[V], len(seqs))
		for j, seq := range seqs {
			if i < len(seq) {
				row[j] = Just(seq[i])
			} else {
				row[j] = None[V]()
			}
		}
		out[i] = row
	}
	return out
}

// Zip2 is Zip for two sequences of different element types.
func Zip2[A, B any](as []A, bs []B) []Pair[Option[A], Option[B]] {
	out := make([]Pair[Option[A], Option[B]], max(len(as), len(bs)))
	for i := range out {
		if i < len(as) {
			out[i].First = Just(as[i])
		}
		if i < len(bs) {
			out[i].Second = Just(bs[i])
		}
	}
	return out
}

// Flatten concatenates nested slices and arrays into a single slice,
// preserving order. With shallow set only one level is unwrapped.
func Flatten(nested []any, shallow bool) []any {
	out := make([]any, 0, len(nested))
	return flattenInto(out, nested, shallow)
}

func flattenInto(out []any, nested []any, shallow bool) []any {
	for _, item := range nested {
		rv := reflect.ValueOf(item)
		if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
			out = append(out, item)
			continue
		}
		inner := make([]any, rv.Len())
		for i := range inner {
			inner[i] = rv.Index(i).Interface()
		}
		if shallow {
			out = append(out, inner...)
		} else {
			out = flattenInto(out, inner, false)
		}
	}
	return out
}

// Concat joins typed sequences one level deep.
func Concat[V any](seqs ...[]V) []V {
	if len(seqs) == 0 {
		return []V{}
	}
	out := slices.Concat(seqs...)
	if out == nil {
		out = []V{}
	}
	return out
}
