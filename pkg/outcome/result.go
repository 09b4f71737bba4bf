package outcome

import (
	"fmt"
)

// Result holds either a success value of type T or a fault of type E.
// Exactly one arm is active; the inactive arm is never exposed. Results are
// immutable: combinators return fresh values and never mutate the receiver.
//
// Construction goes through Ok/Err (or the error-typed shortcuts
// Success/Fail); the zero value is not a valid Result.
type Result[T any, E error] struct {
	value   T
	fault   E
	failure *Failure
	ok      bool
}

// Of is the common error-typed Result.
type Of[T any] = Result[T, error]

// Ok returns the success variant holding v.
func Ok[T any, E error](v T) Result[T, E] {
	return Result[T, E]{
		value: v,
		ok:    true,
	}
}

// Err returns the failure variant holding fault. No Failure record is
// attached: a trace snapshot only exists where a fault was actually caught,
// so directly constructed errors carry none.
func Err[T any, E error](fault E) Result[T, E] {
	return Result[T, E]{
		fault: fault,
		ok:    false,
	}
}

// Success is Ok for the common error-typed Result.
func Success[T any](v T) Result[T, error] {
	return Ok[T, error](v)
}

// Fail is Err for the common error-typed Result.
func Fail[T any](err error) Result[T, error] {
	return Err[T, error](err)
}

// ErrFrom rewraps the failure arm of another Result under a new success
// type, carrying the fault and any Failure record over. It panics when from
// holds the success arm.
func ErrFrom[U, T any, E error](from Result[T, E]) Result[U, E] {
	if from.ok {
		panic(fmt.Sprintf("outcome: ErrFrom on Ok Result: %v", from.value))
	}
	return Result[U, E]{
		fault:   from.fault,
		failure: from.failure,
		ok:      false,
	}
}

// failWith builds the failure variant carrying a Failure record. Only the
// catch boundaries (Bind, BindErr, Call*) reach this path.
func failWith[T any, E error](fault E, f *Failure) Result[T, E] {
	return Result[T, E]{
		fault:   fault,
		failure: f,
		ok:      false,
	}
}

// IsOk reports whether the success arm is active.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the failure arm is active.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success value. It panics with a message embedding the
// held fault when called on the failure arm; that is a logic error in the
// caller, not a recoverable condition.
func (r Result[T, E]) Unwrap() T {
	if r.ok {
		return r.value
	}
	panic(fmt.Sprintf("outcome: contents of Result is Err: %v", error(r.fault)))
}

// UnwrapOr returns the success value, or def on the failure arm.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// UnwrapOrElse returns the success value, or the value computed by applying
// fallback to the fault. The fallback must not panic.
func (r Result[T, E]) UnwrapOrElse(fallback func(E) T) T {
	if r.ok {
		return r.value
	}
	return fallback(r.fault)
}

// Expect is Unwrap with a caller-supplied panic message.
func (r Result[T, E]) Expect(msg string) T {
	if r.ok {
		return r.value
	}
	panic(msg)
}

// UnwrapErr returns the fault. It panics with a message embedding the held
// value when called on the success arm.
func (r Result[T, E]) UnwrapErr() E {
	if !r.ok {
		return r.fault
	}
	panic(fmt.Sprintf("outcome: contents of Result is Ok: %v", r.value))
}

// ExpectErr is UnwrapErr with a caller-supplied panic message.
func (r Result[T, E]) ExpectErr(msg string) E {
	if !r.ok {
		return r.fault
	}
	panic(msg)
}

// Value destructures the Result into Go's usual (value, error) shape. On the
// success arm the fault is the zero E (nil for error-typed Results).
func (r Result[T, E]) Value() (T, E) {
	return r.value, r.fault
}

// Failure returns the diagnostic record attached when the fault was caught
// at a Bind/BindErr/Call boundary, or nil for directly constructed errors.
func (r Result[T, E]) Failure() *Failure {
	return r.failure
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", error(r.fault))
}
