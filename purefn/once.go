package purefn

import (
	"sync"

	"github.com/on-the-ground/collective_go/shared/helper"
)

// Once returns a function that runs fn on its first call and returns that
// first result on every call after it. fn is released after it has run.
//
// Concurrent callers wait for the first run to finish. If fn panics the
// panic reaches the first caller and later calls return the zero value.
// fn must not call the returned function.
func Once[R any](fn func() R) func() R {
	helper.MustFunc(fn, "once function")
	wrapped := Once1(func(struct{}) R { return fn() })
	return func() R {
		return wrapped(struct{}{})
	}
}

// Once1 is Once for a function of one argument. Only the argument of the
// first call reaches fn.
func Once1[A, R any](fn func(A) R) func(A) R {
	helper.MustFunc(fn, "once function")
	var (
		mu     sync.Mutex
		ran    bool
		result R
	)
	return func(a A) R {
		mu.Lock()
		defer mu.Unlock()
		if ran {
			return result
		}
		ran = true
		f := fn
		fn = nil
		result = f(a)
		return result
	}
}

// OnceErr is Once for functions that can fail. The error is cached along
// with the value.
func OnceErr[R any](fn func() (R, error)) func() (R, error) {
	helper.MustFunc(fn, "once function")
	wrapped := Once(func() outcome[R] {
		v, err := fn()
		return outcome[R]{value: v, err: err}
	})
	return func() (R, error) {
		res := wrapped()
		return res.value, res.err
	}
}

type outcome[R any] struct {
	value R
	err   error
}
