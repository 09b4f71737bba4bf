package outcome

import (
	"errors"

	"github.com/ib-77/outcome/pkg/outcome/trace"
)

// ErrNilCallable is returned when a Call* or Wrap* adapter is given a nil
// function.
var ErrNilCallable = errors.New("outcome: nil callable")

type callConfig struct {
	name   string
	kwargs map[string]any
	extra  map[string]any
}

// CallOption customizes the Failure record built when a Call* or Wrap*
// adapter catches a fault.
type CallOption func(*callConfig)

// WithName overrides the callable name recorded in the Failure, useful for
// anonymous functions.
func WithName(name string) CallOption {
	return func(c *callConfig) { c.name = name }
}

// WithKwarg records a named argument in the Failure.
func WithKwarg(key string, value any) CallOption {
	return func(c *callConfig) {
		if c.kwargs == nil {
			c.kwargs = map[string]any{}
		}
		c.kwargs[key] = value
	}
}

// WithExtra attaches an open-ended diagnostic field to the Failure.
func WithExtra(key string, value any) CallOption {
	return func(c *callConfig) {
		if c.extra == nil {
			c.extra = map[string]any{}
		}
		c.extra[key] = value
	}
}

// Call invokes fn at the fault boundary: a normal return becomes Ok, a
// returned error or a panic becomes Err with a Failure recording the
// callable, its arguments and a trace snapshot. Call never lets a fault
// escape; it is the sanctioned crossing from may-panic code into
// Result-based code.
func Call[T any](fn func() (T, error), opts ...CallOption) Result[T, error] {
	if IsNil(fn) {
		return nilCallable[T](opts)
	}
	return safeCall(fn, FuncName(fn), nil, opts)
}

// Call1 is Call for a single-argument callable; the argument is recorded in
// the Failure on fault.
func Call1[A, T any](fn func(A) (T, error), a A, opts ...CallOption) Result[T, error] {
	if IsNil(fn) {
		return nilCallable[T](opts)
	}
	return safeCall(func() (T, error) { return fn(a) }, FuncName(fn), []any{a}, opts)
}

// Call2 is Call for a two-argument callable.
func Call2[A, B, T any](fn func(A, B) (T, error), a A, b B, opts ...CallOption) Result[T, error] {
	if IsNil(fn) {
		return nilCallable[T](opts)
	}
	return safeCall(func() (T, error) { return fn(a, b) }, FuncName(fn), []any{a, b}, opts)
}

// Call3 is Call for a three-argument callable.
func Call3[A, B, C, T any](fn func(A, B, C) (T, error), a A, b B, c C, opts ...CallOption) Result[T, error] {
	if IsNil(fn) {
		return nilCallable[T](opts)
	}
	return safeCall(func() (T, error) { return fn(a, b, c) }, FuncName(fn), []any{a, b, c}, opts)
}

// Wrap1 lifts fn into a function that can no longer fault: the returned
// function runs fn through the same boundary as Call1.
func Wrap1[A, T any](fn func(A) (T, error), opts ...CallOption) func(A) Result[T, error] {
	return func(a A) Result[T, error] {
		return Call1(fn, a, opts...)
	}
}

// Wrap2 lifts a two-argument fn, like Wrap1.
func Wrap2[A, B, T any](fn func(A, B) (T, error), opts ...CallOption) func(A, B) Result[T, error] {
	return func(a A, b B) Result[T, error] {
		return Call2(fn, a, b, opts...)
	}
}

func nilCallable[T any](opts []CallOption) Result[T, error] {
	cfg := applyOptions(opts)
	f := newFailure(cfg.name, nil, cfg.kwargs, ErrNilCallable, nil, trace.Capture(2), cfg.extra)
	return failWith[T](ErrNilCallable, f)
}

func applyOptions(opts []CallOption) callConfig {
	var cfg callConfig
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

func safeCall[T any](fn func() (T, error), name string, args []any, opts []CallOption) (res Result[T, error]) {
	cfg := applyOptions(opts)
	if cfg.name != "" {
		name = cfg.name
	}

	defer func() {
		if rec := recover(); rec != nil {
			fault := Recovered(rec)
			f := newFailure(name, args, cfg.kwargs, fault, nil, trace.Capture(1), cfg.extra)
			res = failWith[T](fault, f)
		}
	}()

	v, err := fn()
	if err != nil {
		f := newFailure(name, args, cfg.kwargs, err, nil, trace.Capture(0), cfg.extra)
		return failWith[T](err, f)
	}
	return Success(v)
}
