package strict

import "fmt"

// ErrorGenerator builds the failure error for a scope from its label,
// taking precedence over the violated constraint's own error factory.
type ErrorGenerator func(label string) *LazyError

// Scope runs checks under one label and appends their outcomes to the
// owning session's result log. Scopes are short-lived and hold no state
// beyond what they write into the shared log, so one session may hand out
// any number of them.
type Scope struct {
	label    string
	log      *resultLog
	generate ErrorGenerator
}

// Label returns the validation label bound to this scope.
func (s *Scope) Label() string {
	return s.label
}

// Must records whether value satisfies c. On violation the failure error
// comes from the scope's generator when present, otherwise from
// c.GenerateError with the scope's label.
func Must[T any](s *Scope, value T, c Constraint[T]) {
	record(s, value, c, true)
}

// MustNot records whether value violates c; the inverse of Must.
func MustNot[T any](s *Scope, value T, c Constraint[T]) {
	record(s, value, c, false)
}

// record implements the shared must/must-not algorithm: evaluate the
// constraint, compare against the expected condition, append exactly one
// outcome. Evaluation and error construction both happen before the log
// lock is taken, and the failure error is only built when the check missed.
func record[T any](s *Scope, value T, c Constraint[T], condition bool) {
	if c.Validate(value) == condition {
		s.log.append(Result{})
		return
	}

	var err *LazyError
	if s.generate != nil {
		err = s.generate(s.label)
	} else {
		err = c.GenerateError(s.label)
	}
	s.log.append(Result{Err: err})
}

// Constraint records the outcome of an ad-hoc zero-argument predicate,
// bypassing the Constraint capability entirely. On failure the recorded
// error carries the scope's label verbatim; the scope's error-generator
// override does not apply to ad-hoc checks.
func (s *Scope) Constraint(predicate func() bool) {
	if predicate() {
		s.log.append(Result{})
		return
	}

	label := s.label
	s.log.append(Result{Err: NewLazyError(func() string { return label })})
}

// String implements fmt.Stringer.
func (s *Scope) String() string {
	return fmt.Sprintf("Scope(%s)", s.label)
}
