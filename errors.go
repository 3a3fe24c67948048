package spesengine

import (
	"errors"
	"fmt"
)

// Sentinel errors for setup failures. Resolution itself is total over any
// well-formed snapshot: malformed business data (stale ids, cycles, missing
// optional fields) never raises - it contributes nothing. These errors cover
// lookups that cannot proceed at all, which indicate a caller bug or an
// incomplete snapshot rather than bad user input.
var (
	// ErrUnknownItemType is returned when a ResolutionRequest names an item
	// type the snapshot does not contain. Either the snapshot is incomplete
	// or the caller passed a stale selection.
	ErrUnknownItemType = errors.New("spesengine: unknown item type")
)

// IsUnknownItemTypeErr returns true if err is or wraps ErrUnknownItemType.
func IsUnknownItemTypeErr(err error) bool {
	return errors.Is(err, ErrUnknownItemType)
}

// unknownItemType wraps ErrUnknownItemType with the offending id.
func unknownItemType(id string) error {
	return fmt.Errorf("%w: %q", ErrUnknownItemType, id)
}
