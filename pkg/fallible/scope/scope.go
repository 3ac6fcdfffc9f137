package scope

import (
	"github.com/gregor-smith/fallible/pkg/fallible"
	"github.com/gregor-smith/fallible/pkg/fallible/core"
)

// Run establishes a boundary and executes body. If body returns a Result,
// that value is returned verbatim. If Propagate fires on a failure inside
// body, the failure becomes the boundary's result and the rest of body is
// skipped. Panics that are not propagation escapes pass through unchanged.
func Run[T any](body func() fallible.Result[T]) (res fallible.Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			esc, ok := core.IsEscape(r)
			if !ok {
				panic(r)
			}
			res = fallible.Fail[T](esc.Err)
		}
	}()

	return body()
}

// Propagate unwraps a successful result so execution continues with its
// value. On a failure it exits the enclosing boundary immediately.
//
// It must only be called inside the body of a Run or RunAsync boundary, on
// the goroutine running that body. Calling it anywhere else surfaces as an
// ordinary panic in the caller.
func Propagate[V any](r fallible.Result[V]) V {
	if r.IsSuccess() {
		return r.Result()
	}
	panic(&core.Escape{Err: r.Err()})
}
