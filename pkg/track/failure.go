package track

// Both providers also satisfy error, so a failure handed to a terminal
// handler can flow straight into errors.Is/As chains.

// messageFailure carries an explicit rejection message with no cause.
type messageFailure struct {
	message string
}

func (f messageFailure) ErrorMessage() string {
	return f.message
}

func (f messageFailure) Error() string {
	return f.message
}

// causeFailure wraps a caught error; the message is derived from it.
type causeFailure struct {
	cause error
}

func (f causeFailure) ErrorMessage() string {
	return f.cause.Error()
}

func (f causeFailure) Error() string {
	return f.cause.Error()
}

func (f causeFailure) Cause() error {
	return f.cause
}

func (f causeFailure) Unwrap() error {
	return f.cause
}

// Cause returns the underlying error of a failure, or nil for an explicit
// rejection that has none.
func Cause(f Failure) error {
	if c, ok := f.(CauseProvider); ok {
		return c.Cause()
	}
	return nil
}
