package strict_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/islaterm/gostrict/pkg/strict"
)

func TestMustRecordsFailureWithLabel(t *testing.T) {
	t.Parallel()

	session := strict.NewSession()
	session.Validate("Test", func(s *strict.Scope) {
		strict.Must(s, "Test", strict.ConstraintFunc[string](func(v string) bool {
			return v == "Not Test"
		}))
	})

	results := session.Results()
	require.Len(t, results, 1)
	require.False(t, results[0].OK())
	assert.Equal(t, "Test", results[0].Err.Message())
}

func TestMustRecordsSuccess(t *testing.T) {
	t.Parallel()

	session := strict.NewSession()
	session.Validate("length check", func(s *strict.Scope) {
		strict.Must(s, "hello", strict.ConstraintFunc[string](func(v string) bool {
			return len(v) == 5
		}))
	})

	results := session.Results()
	require.Len(t, results, 1)
	assert.True(t, results[0].OK())
	assert.Nil(t, results[0].Err)
}

func TestMustNotInvertsTheConstraint(t *testing.T) {
	t.Parallel()

	blank := strict.ConstraintFunc[string](func(v string) bool { return v == "" })

	tests := []struct {
		name       string
		value      string
		expectPass bool
	}{
		{name: "non-blank value passes must-not-be-blank", value: "content", expectPass: true},
		{name: "blank value fails must-not-be-blank", value: "", expectPass: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			session := strict.NewSession()
			session.Validate("blank check", func(s *strict.Scope) {
				strict.MustNot(s, tt.value, blank)
			})

			results := session.Results()
			require.Len(t, results, 1)
			assert.Equal(t, tt.expectPass, results[0].OK())
		})
	}
}

func TestScopeConstraintPredicate(t *testing.T) {
	t.Parallel()

	t.Run("passing predicate records a success", func(t *testing.T) {
		t.Parallel()
		session := strict.NewSession()
		session.Validate("ad-hoc", func(s *strict.Scope) {
			s.Constraint(func() bool { return true })
		})

		results := session.Results()
		require.Len(t, results, 1)
		assert.True(t, results[0].OK())
	})

	t.Run("failing predicate records the label verbatim", func(t *testing.T) {
		t.Parallel()
		session := strict.NewSession()
		session.Validate("items must be unique", func(s *strict.Scope) {
			s.Constraint(func() bool { return false })
		})

		failures := session.Failures()
		require.Len(t, failures, 1)
		assert.Equal(t, "items must be unique", failures[0].Message())
	})
}

func TestScopeRecordsOneEntryPerCheckInOrder(t *testing.T) {
	t.Parallel()

	even := strict.ConstraintFunc[int](func(v int) bool { return v%2 == 0 })

	session := strict.NewSession()
	session.Validate("parity", func(s *strict.Scope) {
		strict.Must(s, 2, even)     // pass
		strict.Must(s, 3, even)     // fail
		strict.MustNot(s, 5, even)  // pass
		strict.MustNot(s, 4, even)  // fail
		s.Constraint(func() bool { return true })  // pass
		s.Constraint(func() bool { return false }) // fail
	})

	results := session.Results()
	require.Len(t, results, 6)

	expected := []bool{true, false, true, false, true, false}
	for i, ok := range expected {
		assert.Equal(t, ok, results[i].OK(), "entry %d", i)
	}
}

func TestCustomErrorGeneratorTakesPrecedence(t *testing.T) {
	t.Parallel()

	// A constraint whose own generator would produce a very different text.
	shout := func(label string) *strict.LazyError {
		return strict.NewLazyError(func() string { return label + "!!!" })
	}

	session := strict.NewSession()
	session.ValidateCustom("age", shout, func(s *strict.Scope) {
		strict.Must(s, -1, strict.ConstraintFunc[int](func(v int) bool { return v >= 0 }))
		strict.MustNot(s, 10, strict.ConstraintFunc[int](func(v int) bool { return v == 10 }))
	})

	failures := session.Failures()
	require.Len(t, failures, 2)
	for _, f := range failures {
		assert.Equal(t, "age!!!", f.Message())
	}
}

func TestCustomErrorGeneratorDoesNotApplyToAdHocChecks(t *testing.T) {
	t.Parallel()

	shout := func(label string) *strict.LazyError {
		return strict.NewLazyError(func() string { return label + "!!!" })
	}

	session := strict.NewSession()
	session.ValidateCustom("inline", shout, func(s *strict.Scope) {
		s.Constraint(func() bool { return false })
	})

	failures := session.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, "inline", failures[0].Message())
}

func TestScopeLabelAndString(t *testing.T) {
	t.Parallel()

	tests := []string{"Test message", "", "поле"}

	for _, label := range tests {
		label := label
		t.Run(fmt.Sprintf("label %q", label), func(t *testing.T) {
			t.Parallel()
			session := strict.NewSession()
			session.Validate(label, func(s *strict.Scope) {
				assert.Equal(t, label, s.Label())
				assert.Equal(t, fmt.Sprintf("Scope(%s)", label), s.String())
			})
		})
	}
}

func TestFailureErrorIsBuiltLazily(t *testing.T) {
	t.Parallel()

	session := strict.NewSession()
	generated := 0
	session.ValidateCustom("lazy", func(label string) *strict.LazyError {
		generated++
		return strict.NewLazyError(func() string { return label })
	}, func(s *strict.Scope) {
		strict.Must(s, 1, strict.ConstraintFunc[int](func(int) bool { return true }))
		strict.Must(s, 1, strict.ConstraintFunc[int](func(int) bool { return false }))
	})

	// The generator only runs for the violated check.
	assert.Equal(t, 1, generated)
}
