package pure

import (
	"cmp"
	"fmt"
	"reflect"
)

// property looks up name on v. Structs resolve exported (and promoted)
// fields; maps with string-like keys resolve the key. Pointers and
// interfaces are followed. Anything else has no properties.
func property(v any, name string) (any, bool) {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, false
	}

	switch rv.Kind() {
	case reflect.Struct:
		sf, ok := rv.Type().FieldByName(name)
		if !ok || !sf.IsExported() {
			return nil, false
		}
		f, err := rv.FieldByIndexErr(sf.Index)
		if err != nil {
			// promoted through a nil embedded pointer
			return nil, false
		}
		return f.Interface(), true
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(name).Convert(kt))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	default:
		return nil, false
	}
}

// propertyOf is property with absence reported as ErrNoSuchProperty.
func propertyOf(v any, name string) (any, error) {
	p, ok := property(v, name)
	if !ok {
		return nil, fmt.Errorf("%w: %T.%s", ErrNoSuchProperty, v, name)
	}
	return p, nil
}

// compareAny orders two property values. Numbers compare numerically
// across kinds, strings lexically, bools false before true.
func compareAny(a, b any) (int, error) {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !ra.IsValid() || !rb.IsValid() {
		return 0, fmt.Errorf("%w: %T and %T", ErrIncomparable, a, b)
	}
	ka, kb := kindClass(ra.Kind()), kindClass(rb.Kind())
	switch {
	case ka == classInt && kb == classInt:
		return cmp.Compare(ra.Int(), rb.Int()), nil
	case ka == classUint && kb == classUint:
		return cmp.Compare(ra.Uint(), rb.Uint()), nil
	case ka.numeric() && kb.numeric():
		return cmp.Compare(asFloat(ra), asFloat(rb)), nil
	case ka == classString && kb == classString:
		return cmp.Compare(ra.String(), rb.String()), nil
	case ka == classBool && kb == classBool:
		return cmp.Compare(boolRank(ra.Bool()), boolRank(rb.Bool())), nil
	}
	return 0, fmt.Errorf("%w: %T and %T", ErrIncomparable, a, b)
}

type valueClass int

const (
	classOther valueClass = iota
	classInt
	classUint
	classFloat
	classString
	classBool
)

func (c valueClass) numeric() bool {
	return c == classInt || c == classUint || c == classFloat
}

func kindClass(k reflect.Kind) valueClass {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return classInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classUint
	case reflect.Float32, reflect.Float64:
		return classFloat
	case reflect.String:
		return classString
	case reflect.Bool:
		return classBool
	default:
		return classOther
	}
}

func asFloat(v reflect.Value) float64 {
	switch kindClass(v.Kind()) {
	case classInt:
		return float64(v.Int())
	case classUint:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
