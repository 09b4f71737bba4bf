package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Chain wraps an outcome.Result with a context to enable fluent
// left-to-right pipelines.
type Chain[T any] struct {
	ctx context.Context
	res outcome.Result[T, error]
}

// Start creates a new chain from an outcome.Result.
func Start[T any](ctx context.Context, res outcome.Result[T, error]) *Chain[T] {
	return &Chain[T]{ctx: ctx, res: res}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](ctx context.Context, v T) *Chain[T] {
	return Start(ctx, outcome.Success(v))
}

// Result returns the underlying outcome.Result.
func (c *Chain[T]) Result() outcome.Result[T, error] {
	return c.res
}

// Then chains a function that already returns an outcome.Result[U].
func Then[T, U any](c *Chain[T], onOk func(context.Context, T) outcome.Result[U, error]) *Chain[U] {
	if c.res.IsErr() {
		return &Chain[U]{ctx: c.ctx, res: outcome.ErrFrom[U](c.res)}
	}
	return &Chain[U]{ctx: c.ctx, res: onOk(c.ctx, c.res.Unwrap())}
}

// Bind chains a (U, error) function under the catch discipline: a returned
// error or a panic becomes Err with a Failure naming fn.
func Bind[T, U any](c *Chain[T], fn func(T) (U, error)) *Chain[U] {
	return &Chain[U]{ctx: c.ctx, res: outcome.Bind(c.res, fn)}
}

// Map chains a pure transformation; fn must not panic.
func Map[T, U any](c *Chain[T], fn func(T) U) *Chain[U] {
	return &Chain[U]{ctx: c.ctx, res: outcome.Map(c.res, fn)}
}

// MapErr transforms the fault under the catch discipline, leaving the
// success arm untouched.
func (c *Chain[T]) MapErr(fn func(error) error) *Chain[T] {
	return &Chain[T]{ctx: c.ctx, res: outcome.BindErr(c.res, fn)}
}

// Ensure triggers side effects for the active arm without changing the
// result; either handler may be nil.
func (c *Chain[T]) Ensure(onOk func(context.Context, T), onErr func(context.Context, error)) *Chain[T] {
	if c.res.IsErr() {
		if onErr != nil {
			onErr(c.ctx, c.res.UnwrapErr())
		}
		return c
	}
	if onOk != nil {
		onOk(c.ctx, c.res.Unwrap())
	}
	return c
}

// UnwrapOr collapses the chain to the success value or def.
func (c *Chain[T]) UnwrapOr(def T) T {
	return c.res.UnwrapOr(def)
}

// Finally collapses the chain to a final value via the arm handlers.
func Finally[T, U any](c *Chain[T], onOk func(context.Context, T) U, onErr func(context.Context, error) U) U {
	if c.res.IsErr() {
		return onErr(c.ctx, c.res.UnwrapErr())
	}
	return onOk(c.ctx, c.res.Unwrap())
}
