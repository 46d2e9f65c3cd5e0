package track

// Success is the view of a Result on its success track.
type Success[T any] interface {
	// Get returns the carried value (may be the zero value of T)
	Get() T
}

// Failure is the view of a Result on its failure track.
type Failure interface {
	// ErrorMessage returns the diagnostic message, always non-empty
	ErrorMessage() string
}

// CauseProvider is implemented by failures built from an underlying error.
type CauseProvider interface {
	Failure
	// Cause returns the error the failure was built from
	Cause() error
}
