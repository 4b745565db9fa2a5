package strict

import (
	"fmt"
	"strings"
)

// CompositeError aggregates one or more errors into a single reportable
// error, preserving input order. It is immutable after construction and safe
// to share across goroutines as long as the underlying errors are.
type CompositeError struct {
	errs []error
}

// NewCompositeError aggregates errs into one error. It panics when errs is
// empty: an aggregate with no content is a programming error, not a runtime
// condition to recover from.
func NewCompositeError(errs []error) *CompositeError {
	if len(errs) == 0 {
		panic("strict: composite error requires at least one error")
	}
	// Copied so later mutation of the caller's slice cannot reach the aggregate.
	return &CompositeError{errs: append([]error(nil), errs...)}
}

// Errors returns the aggregated errors in their original order. The returned
// slice is a copy; mutating it does not affect the aggregate.
func (e *CompositeError) Errors() []error {
	return append([]error(nil), e.errs...)
}

// Unwrap exposes the aggregated errors to errors.Is and errors.As.
func (e *CompositeError) Unwrap() []error {
	return e.Errors()
}

// Error renders a single aggregated error as
//
//	An error occurred -- [<type>] <message>
//
// and two or more, in input order, as
//
//	Multiple errors occurred -- { [<type>] <message> },
//	{ [<type>] <message> }
func (e *CompositeError) Error() string {
	if len(e.errs) == 1 {
		return fmt.Sprintf("An error occurred -- [%T] %s", e.errs[0], e.errs[0].Error())
	}

	parts := make([]string, 0, len(e.errs))
	for _, err := range e.errs {
		parts = append(parts, fmt.Sprintf("{ [%T] %s }", err, err.Error()))
	}
	return "Multiple errors occurred -- " + strings.Join(parts, ",\n")
}
