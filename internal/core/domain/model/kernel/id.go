package kernel

import (
	"fmt"
	"strconv"

	"logistics/internal/pkg/errs"
)

// ID is a backend-assigned entity identifier. The persistence backend uses
// positive integer keys for every entity (orders, routes, users, cars, work
// areas), so a single identifier type covers all of them.
//
// The zero value is not a valid ID; use NewID to validate external input.
type ID int64

// NewID validates a raw identifier received from a backend or a caller.
// Returns an error for zero and negative values.
func NewID(value int64) (ID, error) {
	id := ID(value)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate checks that the identifier is positive.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"id is invalid",
			fmt.Errorf("%d is not a positive identifier", int64(id)),
		)
	}
	return nil
}

// Int64 returns the raw identifier value for wire representations.
func (id ID) Int64() int64 {
	return int64(id)
}

// IsEqual compares two identifiers by value.
func (id ID) IsEqual(other ID) bool {
	return id == other
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
