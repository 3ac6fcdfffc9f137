package fallible

// ResultProvider exposes the successful payload of a result.
type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
}

var _ WithError[int] = Result[int]{}
