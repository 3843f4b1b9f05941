package pure

import (
	"math"
	"reflect"

	"github.com/on-the-ground/collective_go/shared/helper"
)

// Each calls iterator(value, key, c) once per entry in enumeration order.
func Each[K comparable, V any](c Collection[K, V], iterator func(V, K, Collection[K, V])) {
	helper.MustFunc(iterator, "each iterator")
	for k, v := range c.All() {
		iterator(v, k, c)
	}
}

// Map applies transform to every value, in order. The result has c.Len() entries.
func Map[K comparable, V, U any](c Collection[K, V], transform func(V) U) []U {
	helper.MustFunc(transform, "map transform")
	out := make([]U, 0, c.Len())
	for _, v := range c.All() {
		out = append(out, transform(v))
	}
	return out
}

// Reduce folds c left to right starting from seed. An empty collection
// returns seed untouched. The seed is always explicit; use ReduceFirst
// to fold without one.
func Reduce[K comparable, V, A any](c Collection[K, V], combine func(A, V) A, seed A) A {
	helper.MustFunc(combine, "reduce combine")
	acc := seed
	for _, v := range c.All() {
		acc = combine(acc, v)
	}
	return acc
}

// ReduceFirst folds c using its first value as the seed.
// It returns false when c is empty.
func ReduceFirst[K comparable, V any](c Collection[K, V], combine func(V, V) V) (V, bool) {
	helper.MustFunc(combine, "reduce combine")
	var (
		acc    V
		seeded bool
	)
	for _, v := range c.All() {
		if !seeded {
			acc, seeded = v, true
			continue
		}
		acc = combine(acc, v)
	}
	return acc, seeded
}

// Every reports whether pred holds for all values. A nil pred tests Truthy.
// Empty collections are vacuously true.
func Every[K comparable, V any](c Collection[K, V], pred func(V) bool) bool {
	if pred == nil {
		pred = Truthy[V]
	}
	for _, v := range c.All() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Some reports whether pred holds for at least one value. A nil pred tests Truthy.
func Some[K comparable, V any](c Collection[K, V], pred func(V) bool) bool {
	if pred == nil {
		pred = Truthy[V]
	}
	for _, v := range c.All() {
		if pred(v) {
			return true
		}
	}
	return false
}

// Truthy reports whether v is set: not nil, not its type's zero value and
// not NaN.
func Truthy[V any](v V) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(rv.Float()) {
			return false
		}
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			return false
		}
	}
	return !rv.IsZero()
}
