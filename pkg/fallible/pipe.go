package fallible

func Then[In, Out any](input Result[In],
	onSuccess func(r In) Result[Out]) Result[Out] {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return FailFrom[In, Out](input)
}

func Map[In, Out any](input Result[In],
	onSuccess func(r In) Out) Result[Out] {

	if input.IsSuccess() {
		return Success(onSuccess(input.Result()))
	}
	return FailFrom[In, Out](input)
}

func Tee[T any](input Result[T],
	onSuccess func(r T)) Result[T] {

	if input.IsSuccess() {
		onSuccess(input.Result())
	}
	return input
}

func Try[In, Out any](input Result[In],
	onTryExecute func(r In) (Out, error)) Result[Out] {

	if input.IsSuccess() {
		out, err := onTryExecute(input.Result())
		if err != nil {
			return Fail[Out](err)
		}
		return Success(out)
	}
	return FailFrom[In, Out](input)
}

func Finally[In, Out any](input Result[In],
	onSuccess func(r In) Out,
	onError func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onError(input.Err())
}
