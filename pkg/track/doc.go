// Package track implements a two-track Result[T]: a closed union holding
// exactly one of a success value or a failure diagnostic, plus the
// combinators that route ordinary functions onto the two tracks.
//
// Construction:
// - Succeed: wrap a value (the zero value of T is a legitimate payload)
// - Fail: explicit rejection with a message
// - FailFrom: failure built from a caught error, cause retained
//
// Combinators:
// - Lift/LiftErr: convert plain or (value, error) functions into
//   Result-returning ones, capturing every fault as a failure
// - Transform: map the success value; failures pass through untouched
// - Switch/Try: compose Result-returning or (value, error) functions
// - Validate: reject the value with a message when a check fails
// - Tap/Drain: inline or terminal routing to success/failure handlers
// - Finally: collapse a Result into a plain value
//
// Once a stage produces a failure, every later Transform/Switch stage is a
// pass-through; only a Tap, Drain or Finally observes it. Results are
// immutable values, so independent pipelines may run concurrently without
// locking.
package track
