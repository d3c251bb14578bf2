package chain

import (
	"context"

	"github.com/Dessera/fp/pkg/result"
)

// Chain wraps a result.Result with context to enable fluent chaining over
// the common E = error channel.
type Chain[T any] struct {
	ctx context.Context
	res result.Result[T, error]
}

// Start creates a new chain from an existing result.
func Start[T any](ctx context.Context, r result.Result[T, error]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, result.Ok[T, error](v))
}

// Result returns the underlying result.
func (c Chain[T]) Result() result.Result[T, error] {
	return c.res
}

// Then composes a function that already returns a result. A failed chain
// short-circuits without invoking onSuccess.
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) result.Result[T, error]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Unwrap())}
}

// ThenTry composes a function that returns (T, error) — like repo calls.
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: result.From(try(c.ctx, c.res.Unwrap()))}
}

// Map transforms the successful value to a new value.
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: result.Ok[T, error](onSuccess(c.ctx, c.res.Unwrap()))}
}

// Ensure triggers side effects for success or failure without changing the
// result. Either handler may be nil.
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if c.res.IsErr() {
		if onFailure != nil {
			c.res.InspectErr(func(err error) { onFailure(c.ctx, err) })
		}
		return c
	}

	if onSuccess != nil {
		c.res.Inspect(func(t T) { onSuccess(c.ctx, t) })
	}
	return c
}

// Or returns the first successful chain among c and alternative; when both
// failed, c wins.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsOk() {
		return c
	}
	if alternative.res.IsOk() {
		return alternative
	}
	return c
}

// And returns the first failed chain among c and required; when both
// succeeded, required wins.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return required
}

// Finally collapses the chain to a final value through one of two handlers.
func (c Chain[T]) Finally(onSuccess func(context.Context, T) T, onFailure func(context.Context, error) T) T {
	return result.MapOrElse(c.res,
		func(err error) T { return onFailure(c.ctx, err) },
		func(t T) T { return onSuccess(c.ctx, t) })
}
