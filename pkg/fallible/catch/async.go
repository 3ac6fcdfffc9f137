package catch

import (
	"context"

	"github.com/gregor-smith/fallible/pkg/fallible"
	"github.com/gregor-smith/fallible/pkg/fallible/scope"
)

// GuardedAsync runs fn on its own goroutine under the Guarded policy and
// resolves the returned Future. Panics raised before or after a suspension
// point inside fn go through the same guard; a non-matching value re-raises
// at Await with its original identity.
func GuardedAsync[T any](ctx context.Context, fn func(ctx context.Context) T,
	predicate func(v any) bool) *scope.Future[T] {

	return scope.RunAsync(ctx, func(ctx context.Context) fallible.Result[T] {
		return Guarded(func() T { return fn(ctx) }, predicate)
	})
}

// AnyAsync is GuardedAsync with every panic value expected; the Future
// never re-raises.
func AnyAsync[T any](ctx context.Context, fn func(ctx context.Context) T) *scope.Future[T] {
	return GuardedAsync(ctx, fn, nil)
}

// OfTypeAsync is GuardedAsync with the predicate derived from E.
func OfTypeAsync[E any, T any](ctx context.Context, fn func(ctx context.Context) T) *scope.Future[T] {
	return GuardedAsync(ctx, fn, func(v any) bool {
		_, ok := v.(E)
		return ok
	})
}

func WrapAnyAsync[In, Out any](
	fn func(ctx context.Context, in In) Out) func(ctx context.Context, in In) *scope.Future[Out] {

	return func(ctx context.Context, in In) *scope.Future[Out] {
		return AnyAsync(ctx, func(ctx context.Context) Out { return fn(ctx, in) })
	}
}

func WrapGuardedAsync[In, Out any](fn func(ctx context.Context, in In) Out,
	predicate func(v any) bool) func(ctx context.Context, in In) *scope.Future[Out] {

	return func(ctx context.Context, in In) *scope.Future[Out] {
		return GuardedAsync(ctx, func(ctx context.Context) Out { return fn(ctx, in) }, predicate)
	}
}

func WrapOfTypeAsync[E any, In, Out any](
	fn func(ctx context.Context, in In) Out) func(ctx context.Context, in In) *scope.Future[Out] {

	return func(ctx context.Context, in In) *scope.Future[Out] {
		return OfTypeAsync[E](ctx, func(ctx context.Context) Out { return fn(ctx, in) })
	}
}
