package fallible

type Result[T any] struct {
	value     T
	err       error
	isSuccess bool
}

func Success[T any](value T) Result[T] {
	return Result[T]{
		value:     value,
		err:       nil,
		isSuccess: true,
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
	}
}

// FailFrom re-types a failed Result. The input must be a failure;
// calling it on a success produces a failure with a nil error.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
	}
}

func (r Result[T]) Result() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}
