// Package constraints provides ready-made constraint implementations for the
// strict validation engine: collection size checks, common string checks,
// and UUID format checks.
//
// Every exported helper returns a value implementing strict.Constraint, so
// the helpers compose directly with strict.Must and strict.MustNot:
//
//	session := strict.NewSession()
//	session.Validate("tags", func(s *strict.Scope) {
//	    strict.Must(s, tags, constraints.HaveExactSize[string](3))
//	})
//	session.Validate("owner id", func(s *strict.Scope) {
//	    strict.Must(s, ownerID, constraints.BeUUID())
//	})
//
// String and UUID helpers are plain ConstraintFunc adapters; their failure
// errors echo the scope's label. HaveExactSize overrides its error factory
// to report the expected element count alongside the label.
package constraints
