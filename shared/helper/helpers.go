package helper

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNilFunc is the precondition violation raised when a required
// iterator, predicate or wrapped function is nil.
var ErrNilFunc = errors.New("function argument must not be nil")

// GetTypedValueOf safely asserts the result of a getter function to the expected type T.
// Returns an error if type assertion fails.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", res)
	}

	return val, nil
}

// IsNilFunc reports whether fn is a nil function value.
// Non-function values are never considered nil funcs.
func IsNilFunc(fn any) bool {
	if fn == nil {
		return true
	}
	v := reflect.ValueOf(fn)
	return v.Kind() == reflect.Func && v.IsNil()
}

// MustFunc panics with ErrNilFunc when fn is nil. name identifies the
// offending argument in the panic message.
func MustFunc(fn any, name string) {
	if IsNilFunc(fn) {
		panic(fmt.Errorf("%w: %s", ErrNilFunc, name))
	}
}
