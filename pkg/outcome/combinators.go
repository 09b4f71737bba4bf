package outcome

import (
	"fmt"

	"github.com/ib-77/outcome/pkg/outcome/trace"
)

// PanicError wraps a panic payload that is not itself an error, so it can
// travel the failure arm like any other fault.
type PanicError struct {
	Value any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Recovered converts a recover() payload into an error: error payloads pass
// through unchanged, anything else is wrapped in a PanicError.
func Recovered(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return PanicError{Value: v}
}

// Map applies fn to the success value and rewraps the output as Ok; the
// failure arm passes through untouched and fn is never invoked for it.
//
// Map is the total-transform variant: fn must not panic. Use Bind for
// transforms of uncertain totality.
func Map[T, U any, E error](r Result[T, E], fn func(T) U) Result[U, E] {
	if !r.ok {
		return failWith[U](r.fault, r.failure)
	}
	return Ok[U, E](fn(r.value))
}

// Bind applies fn to the success value under the catch discipline: a
// returned error or a panic raised by fn becomes Err carrying a Failure that
// records fn's name, the input value and a trace snapshot. The failure arm
// passes through untouched.
func Bind[T, U any](r Result[T, error], fn func(T) (U, error)) Result[U, error] {
	return BindNamed(r, FuncName(fn), fn)
}

// BindNamed is Bind with an explicit callable name for the Failure record,
// for call sites that adapt fn through a closure.
func BindNamed[T, U any](r Result[T, error], name string, fn func(T) (U, error)) (out Result[U, error]) {
	if !r.ok {
		return failWith[U](r.fault, r.failure)
	}

	origin := r.value
	defer func() {
		if rec := recover(); rec != nil {
			fault := Recovered(rec)
			// The snapshot is taken while the panic is unwinding, so it
			// includes the faulting frame.
			f := newFailure(name, []any{origin}, nil, fault, origin, trace.Capture(1), nil)
			out = failWith[U](fault, f)
		}
	}()

	v, err := fn(origin)
	if err != nil {
		f := newFailure(name, []any{origin}, nil, err, origin, trace.Capture(0), nil)
		return failWith[U](err, f)
	}
	return Success(v)
}

// MapErr applies fn to the fault and rewraps the output as Err, carrying the
// existing Failure record over; the success arm passes through untouched.
// fn must not panic.
func MapErr[T any, E, F error](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return failWith[T](fn(r.fault), r.failure)
}

// BindErr is the catch-disciplined MapErr: a panic raised by fn becomes a
// fresh Err whose Failure records fn's name and the fault it was
// transforming. On a clean transform the existing Failure record is kept.
func BindErr[T any](r Result[T, error], fn func(error) error) (out Result[T, error]) {
	if r.ok {
		return r
	}

	origin := r.fault
	defer func() {
		if rec := recover(); rec != nil {
			fault := Recovered(rec)
			f := newFailure(FuncName(fn), []any{origin}, nil, fault, origin, trace.Capture(1), nil)
			out = failWith[T](fault, f)
		}
	}()

	return failWith[T](fn(origin), r.failure)
}
