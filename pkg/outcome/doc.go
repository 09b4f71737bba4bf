// Package outcome provides a two-variant Result container with chainable,
// panic-safe combinators and a fault-catching call boundary.
//
// A Result[T, E] is either Ok(value) or Err(fault); an Err produced at a
// catch boundary additionally carries a Failure record with the callable's
// name, arguments, origin value and a stack trace snapshot.
//
// Highlights:
//   - Ok/Err (Success/Fail for the error-typed form): construct a Result
//   - IsOk/IsErr, Unwrap, UnwrapOr, UnwrapOrElse, Expect, UnwrapErr,
//     ExpectErr, Value: query and extract
//   - Map/MapErr: pure transforms of the active arm
//   - Bind/BindErr: transforms run under the catch discipline, converting
//     panics and returned errors into Err with a Failure
//   - Call/Call1..Call3, Wrap1/Wrap2: the boundary adapters that guarantee
//     an arbitrary callable never lets a fault escape
//
// Once a value is wrapped as a Result, no fault propagates out of any
// subsequent Bind/Call chain undetected; the only deliberate fatal paths
// are Unwrap/Expect misuse on the wrong arm.
package outcome
