package chain

import (
	"github.com/ib-77/twotrack/pkg/track"
)

// Chain wraps a track.Result to enable fluent chaining
type Chain[T any] struct {
	result track.Result[T]
}

// Start creates a new chain from a track.Result
func Start[T any](result track.Result[T]) Chain[T] {
	return Chain[T]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T) Chain[T] {
	return Chain[T]{result: track.Succeed(value)}
}

// Result returns the underlying track.Result
func (c Chain[T]) Result() track.Result[T] {
	return c.result
}

// Then chains a function that returns track.Result[U]
func Then[T, U any](c Chain[T], onSuccess func(T) track.Result[U]) Chain[U] {
	return Chain[U]{result: track.Switch(onSuccess)(c.result)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c Chain[T], tryOnSuccess func(T) (U, error)) Chain[U] {
	return Chain[U]{result: track.Try(tryOnSuccess)(c.result)}
}

// Map chains a pure transformation function
func Map[T, U any](c Chain[T], onSuccess func(T) U) Chain[U] {
	return Chain[U]{result: track.Transform(onSuccess)(c.result)}
}

// Ensure performs a side effect on success without changing the result
func (c Chain[T]) Ensure(onSuccess func(T)) Chain[T] {
	if onSuccess != nil && c.result.IsSuccess() {
		onSuccess(c.result.Result())
	}
	return c
}

// Tap routes the result to one of two side-effecting handlers and keeps the
// chain going with the result unchanged
func (c Chain[T]) Tap(onSuccess func(T), onFailure func(track.Failure)) Chain[T] {
	return Chain[T]{result: track.Tap(onSuccess, onFailure)(c.result)}
}

// Finally collapses the chain into a final value using track.Finally
func Finally[T, U any](c Chain[T], onSuccess func(T) U, onFailure func(track.Failure) U) U {
	return track.Finally(onSuccess, onFailure)(c.result)
}
