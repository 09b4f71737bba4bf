package stream

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Stage transforms one Result into the next. Stages built by the
// constructors in this package never let a fault escape; hand-written
// stages are still guarded by the worker's own recover.
type Stage[In, Out any] func(ctx context.Context, in outcome.Result[In, error]) outcome.Result[Out, error]

// Pump feeds values into a channel of Ok Results, stopping early when ctx
// is done. The channel is closed once all values are sent.
func Pump[T any](ctx context.Context, values ...T) <-chan outcome.Result[T, error] {
	in := make(chan outcome.Result[T, error])

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- outcome.Success(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Run fans input out across workers applying stage, preserving the value
// type. The output channel closes when the input drains or ctx is done.
func Run[T any](ctx context.Context, in <-chan outcome.Result[T, error],
	stage Stage[T, T], workers int) <-chan outcome.Result[T, error] {
	return Turnout(ctx, in, stage, workers)
}

// Turnout is Run across a type switch: workers apply stage to move from
// Result[In] to Result[Out].
func Turnout[In, Out any](ctx context.Context, in <-chan outcome.Result[In, error],
	stage Stage[In, Out], workers int) <-chan outcome.Result[Out, error] {

	out := make(chan outcome.Result[Out, error])
	wg := &sync.WaitGroup{}

	for range workers {
		wg.Add(1)
		go worker(ctx, in, out, stage, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func worker[In, Out any](ctx context.Context, in <-chan outcome.Result[In, error],
	out chan<- outcome.Result[Out, error], stage Stage[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case r, open := <-in:
			if !open {
				return
			}

			pr := runStage(ctx, stage, r)

			select {
			case out <- pr:
			case <-ctx.Done():
				return
			}
		}
	}
}

// runStage guards the worker: a panic inside a hand-written stage becomes
// an Err instead of killing the goroutine.
func runStage[In, Out any](ctx context.Context, stage Stage[In, Out],
	r outcome.Result[In, error]) (out outcome.Result[Out, error]) {

	defer func() {
		if rec := recover(); rec != nil {
			out = outcome.Fail[Out](outcome.Recovered(rec))
		}
	}()

	return stage(ctx, r)
}

// BindStage lifts a (Out, error) function into a Stage under the catch
// discipline of outcome.Bind.
func BindStage[In, Out any](fn func(ctx context.Context, in In) (Out, error)) Stage[In, Out] {
	name := outcome.FuncName(fn)
	return func(ctx context.Context, in outcome.Result[In, error]) outcome.Result[Out, error] {
		return outcome.BindNamed(in, name, func(v In) (Out, error) {
			return fn(ctx, v)
		})
	}
}

// MapStage lifts a pure transform into a Stage; fn must not panic (the
// worker guard still converts a panic into Err rather than crashing).
func MapStage[In, Out any](fn func(ctx context.Context, in In) Out) Stage[In, Out] {
	return func(ctx context.Context, in outcome.Result[In, error]) outcome.Result[Out, error] {
		return outcome.Map(in, func(v In) Out { return fn(ctx, v) })
	}
}

// Validate lifts a predicate into a Stage that fails invalid values with
// the supplied message.
func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) Stage[T, T] {
	return BindStage(func(ctx context.Context, v T) (T, error) {
		if ok, msg := validate(ctx, v); !ok {
			return v, &ValidationError{Message: msg}
		}
		return v, nil
	})
}

// Tee lifts a side effect into a pass-through Stage.
func Tee[T any](effect func(ctx context.Context, r outcome.Result[T, error])) Stage[T, T] {
	return func(ctx context.Context, in outcome.Result[T, error]) outcome.Result[T, error] {
		effect(ctx, in)
		return in
	}
}

// Finally collapses a channel of Results into a channel of plain values via
// the arm handlers.
func Finally[In, Out any](ctx context.Context, in <-chan outcome.Result[In, error],
	onOk func(ctx context.Context, v In) Out,
	onErr func(ctx context.Context, err error) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for r := range in {
			var v Out
			if r.IsOk() {
				v = onOk(ctx, r.Unwrap())
			} else {
				v = onErr(ctx, r.UnwrapErr())
			}

			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Collect drains a channel into a slice, stopping early when ctx is done.
func Collect[T any](ctx context.Context, in <-chan T) []T {
	var all []T
	for {
		select {
		case v, open := <-in:
			if !open {
				return all
			}
			all = append(all, v)
		case <-ctx.Done():
			return all
		}
	}
}

// ValidationError is the fault produced by a Validate stage.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
