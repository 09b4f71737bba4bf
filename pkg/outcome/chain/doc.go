// Package chain provides a fluent wrapper around outcome.Result for
// building synchronous left-to-right pipelines.
//
// It composes the core combinators behind a convenient Chain[T] type, so a
// pipeline reads top to bottom without branching on the result at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: switch to a new Result[U] via a result-returning function
// - Bind: call a (U, error) function under the catch discipline
// - Map: transform the successful value (T -> U)
// - MapErr: transform the fault, catch-disciplined
// - Ensure: run side effects without changing the result
// - Finally/UnwrapOr: collapse the chain into a final value
package chain
