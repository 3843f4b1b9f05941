package pure

import "reflect"

// comparer guards == and map keys for types whose dynamic values may not
// be hashable (interfaces, and arrays or structs holding them). Such a
// value that holds a slice, map or func equals nothing, itself included.
type comparer[V any] struct {
	guard bool
}

func comparerFor[V any]() comparer[V] {
	return comparer[V]{guard: mayHoldUnhashable(reflect.TypeFor[V]())}
}

func mayHoldUnhashable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Array:
		return mayHoldUnhashable(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if mayHoldUnhashable(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

// hashable reports whether v can be compared with == or used as a map key.
func (c comparer[V]) hashable(v V) bool {
	if !c.guard {
		return true
	}
	rv := reflect.ValueOf(any(v))
	return !rv.IsValid() || rv.Comparable()
}

func equal[V comparable](c comparer[V], a, b V) bool {
	return c.hashable(a) && c.hashable(b) && a == b
}
