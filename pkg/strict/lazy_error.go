package strict

// LazyError is an error whose message is computed on demand by a stored
// function rather than formatted at construction time.
//
// The stored function is re-invoked on every Message or Error call, so a
// non-deterministic function yields a non-deterministic message; that is the
// caller's choice, not something this type papers over. The function must be
// safe to invoke from multiple goroutines.
//
// Copies of a LazyError share the stored function, never a fresh copy of its
// captured state.
type LazyError struct {
	messageFn func() string
}

// NewLazyError wraps messageFn without evaluating it.
func NewLazyError(messageFn func() string) *LazyError {
	return &LazyError{messageFn: messageFn}
}

// Message computes the error text by invoking the stored function.
func (e *LazyError) Message() string {
	return e.messageFn()
}

// Error implements the error interface; it returns the computed message.
func (e *LazyError) Error() string {
	return e.Message()
}

// GoString returns a structural stand-in so %#v diagnostics never force
// evaluation of the message function.
func (e *LazyError) GoString() string {
	return "strict.LazyError{messageFn: <func() string>}"
}

// Equal reports whether both errors compute the same message at the moment
// of comparison. Closure identity is irrelevant.
func (e *LazyError) Equal(other *LazyError) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.Message() == other.Message()
}
