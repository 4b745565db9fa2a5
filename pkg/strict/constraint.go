package strict

// Constraint describes a pass/fail check over a value together with a
// factory for the error reported when the check does not hold. Keeping both
// on one capability lets each constraint kind customize its own failure text
// without the recording scope knowing concrete constraint types.
type Constraint[T any] interface {
	// Validate reports whether value satisfies the constraint. It must be
	// callable repeatedly and must not mutate value.
	Validate(value T) bool

	// GenerateError builds the failure error for this constraint. Generic
	// constraints echo description verbatim; concrete ones may enrich it,
	// e.g. with the expected value.
	GenerateError(description string) *LazyError
}

// ConstraintFunc adapts any unary predicate into a Constraint, the same way
// http.HandlerFunc adapts a plain function into a Handler.
type ConstraintFunc[T any] func(T) bool

// Validate evaluates the wrapped predicate.
func (f ConstraintFunc[T]) Validate(value T) bool {
	return f(value)
}

// GenerateError returns a LazyError that echoes description verbatim.
func (f ConstraintFunc[T]) GenerateError(description string) *LazyError {
	return NewLazyError(func() string { return description })
}
