package standard

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownStandard is returned when a standard name is not in the catalog.
	ErrUnknownStandard = errors.New("unknown standard")
	// ErrNoStandards is returned when a standards list resolves to nothing.
	ErrNoStandards = errors.New("no standards selected")
	// ErrDuplicateStandard is returned when a catalog names a standard twice.
	ErrDuplicateStandard = errors.New("duplicate standard")
	// ErrInvalidCatalog is returned for malformed catalog data.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// UnknownStandardError reports the name that failed to resolve.
type UnknownStandardError struct {
	Name string
}

func (e *UnknownStandardError) Error() string {
	return fmt.Sprintf("invalid standard: %s", e.Name)
}

// Is makes errors.Is(err, ErrUnknownStandard) match.
func (e *UnknownStandardError) Is(target error) bool {
	return target == ErrUnknownStandard
}
