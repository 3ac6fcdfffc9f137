package catch

import (
	"github.com/gregor-smith/fallible/pkg/fallible"
)

// WrapAny returns fn with its panic channel folded into the result:
// WrapAny(fn)(in) behaves exactly like Any(func() Out { return fn(in) }).
func WrapAny[In, Out any](fn func(in In) Out) func(in In) fallible.Result[Out] {
	return func(in In) fallible.Result[Out] {
		return Any(func() Out { return fn(in) })
	}
}

func WrapGuarded[In, Out any](fn func(in In) Out,
	predicate func(v any) bool) func(in In) fallible.Result[Out] {

	return func(in In) fallible.Result[Out] {
		return Guarded(func() Out { return fn(in) }, predicate)
	}
}

func WrapOfType[E any, In, Out any](fn func(in In) Out) func(in In) fallible.Result[Out] {
	return func(in In) fallible.Result[Out] {
		return OfType[E](func() Out { return fn(in) })
	}
}
