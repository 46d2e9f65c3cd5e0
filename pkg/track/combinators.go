package track

import "fmt"

// asCause normalizes a recovered panic value into an error cause. A typed
// nil error is wrapped rather than returned, so FailFrom always gets a
// usable cause.
func asCause(v any) error {
	if err, ok := v.(error); ok && !IsNil(err) {
		return err
	}
	return fmt.Errorf("panic: %v", v)
}

// Lift converts an ordinary function into one returning a Result. Any panic
// raised by f is recovered and becomes a cause-backed failure; no fault
// escapes the returned function.
func Lift[P, R any](f func(P) R) func(P) Result[R] {
	return func(p P) (res Result[R]) {
		defer func() {
			if v := recover(); v != nil {
				res = FailFrom[R](asCause(v))
			}
		}()
		return Succeed(f(p))
	}
}

// LiftErr converts a (value, error) function into one returning a Result.
// A returned error becomes a cause-backed failure; panics are recovered the
// same way as in Lift.
func LiftErr[P, R any](f func(P) (R, error)) func(P) Result[R] {
	return func(p P) (res Result[R]) {
		defer func() {
			if v := recover(); v != nil {
				res = FailFrom[R](asCause(v))
			}
		}()
		out, err := f(p)
		if err != nil {
			return FailFrom[R](err)
		}
		return Succeed(out)
	}
}

// Transform applies f to the success payload. A failure passes through
// untouched, re-typed for the next stage; f is never called for it.
func Transform[P, R any](f func(P) R) func(Result[P]) Result[R] {
	return func(in Result[P]) (res Result[R]) {
		if in.IsFailure() {
			return FailAs[P, R](in)
		}
		defer func() {
			if v := recover(); v != nil {
				res = FailFrom[R](asCause(v))
			}
		}()
		return Succeed(f(in.Result()))
	}
}

// Switch composes a function that already returns a Result into the chain.
func Switch[In, Out any](onSuccess func(In) Result[Out]) func(Result[In]) Result[Out] {
	return func(in Result[In]) (res Result[Out]) {
		if in.IsFailure() {
			return FailAs[In, Out](in)
		}
		defer func() {
			if v := recover(); v != nil {
				res = FailFrom[Out](asCause(v))
			}
		}()
		return onSuccess(in.Result())
	}
}

// Try composes a (value, error) function into the chain: a returned error or
// a panic becomes a cause-backed failure, an incoming failure passes through.
func Try[In, Out any](onTryExecute func(In) (Out, error)) func(Result[In]) Result[Out] {
	lifted := LiftErr(onTryExecute)
	return func(in Result[In]) Result[Out] {
		if in.IsFailure() {
			return FailAs[In, Out](in)
		}
		return lifted(in.Result())
	}
}

// Validate rejects the success payload with a message-only failure when the
// check reports invalid. The check must supply a non-empty message.
func Validate[T any](check func(in T) (valid bool, errMsg string)) func(Result[T]) Result[T] {
	return func(in Result[T]) Result[T] {
		if in.IsFailure() {
			return in
		}
		if valid, errMsg := check(in.Result()); !valid {
			return Fail[T](errMsg)
		}
		return in
	}
}

// Drain merges two plain consumers into a terminal consumer of a Result.
// Exactly one handler runs per call, selected by the variant tag. Handler
// panics are the caller's responsibility and propagate.
func Drain[P any](onSuccess func(P), onFailure func(Failure)) func(Result[P]) {
	return func(in Result[P]) {
		if f, ok := in.AsFailure(); ok {
			onFailure(f)
			return
		}
		onSuccess(in.Result())
	}
}

// Tap runs the same branch selection as Drain but hands the Result back
// unchanged, so side effects can sit in the middle of a chain.
func Tap[P any](onSuccess func(P), onFailure func(Failure)) func(Result[P]) Result[P] {
	return func(in Result[P]) Result[P] {
		if f, ok := in.AsFailure(); ok {
			onFailure(f)
		} else {
			onSuccess(in.Result())
		}
		return in
	}
}

// Finally collapses a Result into a plain value via two handlers. Like Drain,
// exactly one handler runs and its panics propagate.
func Finally[In, Out any](onSuccess func(In) Out, onFailure func(Failure) Out) func(Result[In]) Out {
	return func(in Result[In]) Out {
		if f, ok := in.AsFailure(); ok {
			return onFailure(f)
		}
		return onSuccess(in.Result())
	}
}
