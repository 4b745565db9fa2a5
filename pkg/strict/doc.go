// Package strict provides a small, composable constraint-validation engine:
// callers describe predicates ("must", "must not") against values inside a
// labeled scope, and the owning session accumulates a sequence of pass/fail
// outcomes, each failure carrying a lazily-computed human-readable message.
//
// The package is a validation DSL, not a validation framework: it ships no
// built-in rule catalog (see the companion constraints package for concrete
// rules) and performs no I/O. Validation is exhaustive by default — every
// check records its outcome and execution continues, so a single pass
// reports every violation instead of stopping at the first one.
//
// # Architecture
//
// Core building blocks:
//   - LazyError       – error whose message is computed on demand by a
//     stored function, never at construction time
//   - Constraint      – capability pairing a boolean Validate check with a
//     matching failure-error factory
//   - ConstraintFunc  – adapter that turns any unary predicate into a
//     Constraint
//   - CompositeError  – aggregate of one or more errors with unified
//     rendering and errors.Is/As interop
//   - Scope           – short-lived context bound to one label that runs
//     checks and appends outcomes to the shared log
//   - Session         – owner of the mutex-guarded, append-only result log
//     shared by all of its scopes
//
// There is no hidden global state; the result log is owned by the Session
// and referenced by its scopes, so independent sessions never interfere.
//
// # Usage
//
//	session := strict.NewSession()
//
//	session.Validate("username", func(s *strict.Scope) {
//	    strict.Must(s, name, strict.ConstraintFunc[string](func(v string) bool {
//	        return len(v) >= 3
//	    }))
//	    s.Constraint(func() bool { return !taken[name] })
//	})
//
//	if failures := session.Failures(); len(failures) > 0 {
//	    errs := make([]error, 0, len(failures))
//	    for _, f := range failures {
//	        errs = append(errs, f)
//	    }
//	    return strict.NewCompositeError(errs)
//	}
//
// # Concurrency
//
// A Session may be shared by multiple goroutines: every append and every
// read of the result log holds a single mutex only for the duration of the
// push or snapshot copy. Constraint evaluation and error construction happen
// outside the lock, and read accessors return copies, so callers never
// observe or hold the lock themselves. Appends from one goroutine keep their
// relative order; cross-goroutine order is whatever order the lock grants.
//
// # Error Handling
//
// Failed checks are recorded, never returned or panicked: callers decide
// what to do with the failures they extract. The one hard contract violation
// is constructing a CompositeError from zero errors, which panics.
package strict
