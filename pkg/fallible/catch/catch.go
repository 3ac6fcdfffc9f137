package catch

import (
	"fmt"

	"github.com/gregor-smith/fallible/pkg/fallible"
	"github.com/gregor-smith/fallible/pkg/fallible/core"
)

// Thrown wraps a panic payload that is not itself an error, such as a
// plain string or number passed to panic.
type Thrown struct {
	Value any
}

func (t *Thrown) Error() string {
	return fmt.Sprintf("caught panic: %v", t.Value)
}

func asError(v any) error {
	if err, ok := v.(error); ok && !fallible.IsNil(err) {
		return err
	}
	return &Thrown{Value: v}
}

// guardOrRethrow is the single capture policy. A nil predicate accepts
// everything. Non-matching values, and escapes belonging to an enclosing
// scope boundary, re-raise with their original identity.
func guardOrRethrow(caught any, predicate func(v any) bool) error {
	if _, ok := core.IsEscape(caught); ok {
		panic(caught)
	}
	if predicate != nil && !predicate(caught) {
		panic(caught)
	}
	return asError(caught)
}

// Any runs fn and converts any panic into a failure; it never rethrows.
func Any[T any](fn func() T) fallible.Result[T] {
	return Guarded(fn, nil)
}

// Guarded runs fn; a panic value matching predicate becomes a failure,
// anything else re-raises unchanged.
func Guarded[T any](fn func() T, predicate func(v any) bool) (res fallible.Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = fallible.Fail[T](guardOrRethrow(r, predicate))
		}
	}()

	return fallible.Success(fn())
}

// OfType runs fn; a panic value is captured iff it is an E.
func OfType[E any, T any](fn func() T) fallible.Result[T] {
	return Guarded(fn, func(v any) bool {
		_, ok := v.(E)
		return ok
	})
}
