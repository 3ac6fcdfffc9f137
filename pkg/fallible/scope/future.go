package scope

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gregor-smith/fallible/pkg/fallible"
	"github.com/gregor-smith/fallible/pkg/fallible/core"
)

// Future is the deferred result of an asynchronous boundary. It resolves
// exactly once; Await may be called any number of times afterwards.
type Future[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	done      chan struct{}
	res       fallible.Result[T]
	panicked  bool
	panicVal  any
}

// RunAsync establishes a boundary on a fresh goroutine and resolves the
// returned Future with body's result. Propagate keeps Run's short-circuit
// semantics inside body, including after body awaits another Future.
//
// A defect raised inside body does not resolve the Future to a failure; it
// is re-raised, with its original value, on every Await.
//
// There is no cancellation: a body that never returns leaves the Future
// unresolved and Await blocked.
func RunAsync[T any](ctx context.Context, body func(ctx context.Context) fallible.Result[T]) *Future[T] {
	f := &Future[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				if esc, ok := core.IsEscape(r); ok {
					f.res = fallible.Fail[T](esc.Err)
					return
				}
				f.panicked = true
				f.panicVal = r
			}
		}()

		f.res = body(ctx)
	}()

	return f
}

// Await blocks until the boundary resolves and returns its Result. If the
// body panicked with anything other than a propagation escape, Await
// re-raises that value.
func (f *Future[T]) Await() fallible.Result[T] {
	<-f.done
	if f.panicked {
		panic(f.panicVal)
	}
	return f.res
}

// Done is closed once the boundary has resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) Id() uuid.UUID {
	return f.id
}

func (f *Future[T]) CreatedAt() time.Time {
	return f.createdAt
}
