package fallible

// MapError returns a transformer that leaves successes untouched and
// replaces a failure payload with f(err).
func MapError[T any](f func(err error) error) func(in Result[T]) Result[T] {
	return func(in Result[T]) Result[T] {
		if in.IsSuccess() {
			return in
		}
		return Fail[T](f(in.Err()))
	}
}

// TapError returns a transformer that never changes the result; on failure
// it invokes f with the payload for its side effect only.
func TapError[T any](f func(err error)) func(in Result[T]) Result[T] {
	return MapError[T](func(err error) error {
		f(err)
		return err
	})
}
