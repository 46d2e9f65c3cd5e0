package track

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is a closed union: exactly one of a success carrying a value of T
// or a failure carrying a diagnostic. Instances are immutable and are only
// created through Succeed, Fail, FailFrom and FailAs.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	failure   Failure
	isSuccess bool
}

func Succeed[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail builds a failed Result from an explicit rejection message.
// An empty message is a contract violation and panics at construction.
func Fail[T any](message string) Result[T] {
	if message == "" {
		panic("track: empty failure message")
	}
	return Result[T]{
		failure:   messageFailure{message: message},
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom builds a failed Result from a caught error, retaining it as the
// failure's cause. A nil cause is a contract violation and panics.
func FailFrom[T any](cause error) Result[T] {
	if IsNil(cause) {
		panic("track: nil failure cause")
	}
	return Result[T]{
		failure:   causeFailure{cause: cause},
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailAs re-types a failed Result for the next stage. The failure payload,
// id and creation time pass through untouched.
func FailAs[In, Out any](from Result[In]) Result[Out] {
	if from.isSuccess {
		panic("track: FailAs applied to a success")
	}
	return Result[Out]{
		failure:   from.failure,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

type successView[T any] struct {
	value T
}

func (s successView[T]) Get() T {
	return s.value
}

// AsSuccess returns the success view iff the Result is on the success track.
// For any Result, exactly one of AsSuccess and AsFailure reports ok.
func (r Result[T]) AsSuccess() (Success[T], bool) {
	if !r.isSuccess {
		return nil, false
	}
	return successView[T]{value: r.value}, true
}

// AsFailure returns the failure view iff the Result is on the failure track.
func (r Result[T]) AsFailure() (Failure, bool) {
	if r.isSuccess {
		return nil, false
	}
	return r.failure, true
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// Result returns the carried value; the zero value of T on the failure track.
func (r Result[T]) Result() T {
	return r.value
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// String renders for diagnostics only, never parsed back.
func (r Result[T]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%s)", r.failure.ErrorMessage())
}
