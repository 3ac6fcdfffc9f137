package chain

import (
	"github.com/gregor-smith/fallible/pkg/fallible"
)

// Chain wraps a fallible.Result to enable fluent composition
type Chain[T any] struct {
	result fallible.Result[T]
}

// Start creates a new chain from a fallible.Result
func Start[T any](result fallible.Result[T]) *Chain[T] {
	return &Chain[T]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{result: fallible.Success(value)}
}

// Result returns the underlying fallible.Result
func (c *Chain[T]) Result() fallible.Result[T] {
	return c.result
}

// Then chains a function that returns fallible.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(T) fallible.Result[U]) *Chain[U] {
	return &Chain[U]{result: fallible.Then(c.result, onSuccess)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(T) (U, error)) *Chain[U] {
	return &Chain[U]{result: fallible.Try(c.result, tryOnSuccess)}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(T) U) *Chain[U] {
	return &Chain[U]{result: fallible.Map(c.result, onSuccess)}
}

// Ensure performs a side effect on success without changing the result
func (c *Chain[T]) Ensure(onSuccess func(T)) *Chain[T] {
	return &Chain[T]{result: fallible.Tee(c.result, onSuccess)}
}

// MapError rewrites the failure payload without touching successes
func (c *Chain[T]) MapError(f func(error) error) *Chain[T] {
	return &Chain[T]{result: fallible.MapError[T](f)(c.result)}
}

// TapError performs a side effect on failure without changing the result
func (c *Chain[T]) TapError(f func(error)) *Chain[T] {
	return &Chain[T]{result: fallible.TapError[T](f)(c.result)}
}

// Finally collapses the chain into a final value using fallible.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(T) U, onFailure func(error) U) U {
	return fallible.Finally(c.result, onSuccess, onFailure)
}
