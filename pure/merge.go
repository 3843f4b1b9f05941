package pure

// Extend copies every entry of each source into target, left to right.
// Later sources overwrite earlier ones and existing target entries.
// target is mutated and returned.
func Extend[K comparable, V any](target *Mapping[K, V], sources ...Collection[K, V]) *Mapping[K, V] {
	if target == nil {
		panic(ErrNilTarget)
	}
	for _, src := range sources {
		for k, v := range src.All() {
			target.Set(k, v)
		}
	}
	return target
}

// Defaults fills in entries missing from target. A key is only written
// when target does not hold it at that moment, so the first source that
// supplies a key wins. target is mutated and returned.
func Defaults[K comparable, V any](target *Mapping[K, V], sources ...Collection[K, V]) *Mapping[K, V] {
	if target == nil {
		panic(ErrNilTarget)
	}
	for _, src := range sources {
		for k, v := range src.All() {
			if !target.Has(k) {
				target.Set(k, v)
			}
		}
	}
	return target
}

// ExtendMap is Extend over plain Go maps.
func ExtendMap[M ~map[K]V, K comparable, V any](target M, sources ...M) M {
	mustTarget(map[K]V(target))
	for _, src := range sources {
		for k, v := range src {
			target[k] = v
		}
	}
	return target
}

// DefaultsMap is Defaults over plain Go maps.
func DefaultsMap[M ~map[K]V, K comparable, V any](target M, sources ...M) M {
	mustTarget(map[K]V(target))
	for _, src := range sources {
		for k, v := range src {
			if _, ok := target[k]; !ok {
				target[k] = v
			}
		}
	}
	return target
}

func mustTarget[K comparable, V any](target map[K]V) {
	if target == nil {
		panic(ErrNilTarget)
	}
}
