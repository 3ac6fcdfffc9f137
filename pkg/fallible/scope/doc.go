// Package scope provides fallible blocks: regions of code that can be
// short-circuited on the first failed Result.
//
// Run establishes a synchronous boundary. Inside its body, Propagate
// unwraps successful results and performs a non-local exit on failed ones,
// unwinding straight back to the boundary:
//
//	res := scope.Run(func() fallible.Result[int] {
//		n := scope.Propagate(parse(raw))   // stops here on failure
//		return fallible.Success(n + 1)
//	})
//
// RunAsync establishes the same boundary on its own goroutine and resolves
// a Future[T]. Awaiting another Future inside the body is the suspension
// point; Propagate keeps its short-circuit semantics after such an await.
//
// Boundaries only ever consume their own escape mechanism. Any other panic
// raised inside a body is a defect and keeps propagating unchanged.
package scope
