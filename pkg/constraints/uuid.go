package constraints

import (
	"github.com/google/uuid"

	"github.com/islaterm/gostrict/pkg/strict"
)

// BeUUID holds when the checked string parses as a canonical UUID.
func BeUUID() strict.ConstraintFunc[string] {
	return func(value string) bool {
		if !canonicalUUIDShape(value) {
			return false
		}
		_, err := uuid.Parse(value)
		return err == nil
	}
}

// HaveUUIDVersion holds when the checked string is a valid canonical UUID of
// the given version.
func HaveUUIDVersion(version byte) strict.ConstraintFunc[string] {
	return func(value string) bool {
		if !canonicalUUIDShape(value) {
			return false
		}
		id, err := uuid.Parse(value)
		return err == nil && byte(id.Version()) == version
	}
}

// canonicalUUIDShape rejects values that cannot be canonical UUIDs by length
// and hyphen positions, avoiding the full parse for obvious mismatches.
func canonicalUUIDShape(value string) bool {
	return len(value) == 36 &&
		value[8] == '-' && value[13] == '-' && value[18] == '-' && value[23] == '-'
}
