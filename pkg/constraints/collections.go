package constraints

import (
	"fmt"

	"github.com/islaterm/gostrict/pkg/strict"
)

// HaveSize constrains the length of a slice with an arbitrary size
// predicate. The zero value is unusable; build instances with SizeSatisfying
// or HaveExactSize.
type HaveSize[T any] struct {
	predicate func(size int) bool
	exact     int // expected size when built by HaveExactSize, -1 otherwise
}

// SizeSatisfying builds a HaveSize from a custom size predicate.
func SizeSatisfying[T any](predicate func(size int) bool) HaveSize[T] {
	return HaveSize[T]{predicate: predicate, exact: -1}
}

// HaveExactSize builds a HaveSize that holds only for slices of exactly n
// elements.
func HaveExactSize[T any](n int) HaveSize[T] {
	return HaveSize[T]{predicate: func(size int) bool { return size == n }, exact: n}
}

// Validate reports whether the slice length satisfies the size predicate.
func (c HaveSize[T]) Validate(value []T) bool {
	return c.predicate(len(value))
}

// GenerateError echoes description for predicate-built constraints; the
// exact-size form enriches it with the expected element count.
func (c HaveSize[T]) GenerateError(description string) *strict.LazyError {
	if c.exact < 0 {
		return strict.NewLazyError(func() string { return description })
	}

	expected := c.exact
	return strict.NewLazyError(func() string {
		return fmt.Sprintf("%s: expected exactly %d elements", description, expected)
	})
}
