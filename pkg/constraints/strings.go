package constraints

import (
	"regexp"
	"strings"

	"github.com/islaterm/gostrict/pkg/strict"
)

// Contain holds when the checked string contains substr.
func Contain(substr string) strict.ConstraintFunc[string] {
	return func(value string) bool {
		return strings.Contains(value, substr)
	}
}

// MatchRegexp holds when the checked string matches the compiled pattern.
func MatchRegexp(re *regexp.Regexp) strict.ConstraintFunc[string] {
	return func(value string) bool {
		return re.MatchString(value)
	}
}

// BeBlank holds when the checked string is empty or whitespace only.
func BeBlank() strict.ConstraintFunc[string] {
	return func(value string) bool {
		return strings.TrimSpace(value) == ""
	}
}

// HavePrefix holds when the checked string starts with prefix.
func HavePrefix(prefix string) strict.ConstraintFunc[string] {
	return func(value string) bool {
		return strings.HasPrefix(value, prefix)
	}
}
