package spool

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// Status represents the inventory state of a filament spool.
//
// State transitions:
//
//	Active ──> Archived
//
// Spools are never deleted. Archiving is a one-way operator action that
// preserves the audit trail by emitting a waste record.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusActive is the initial status: the spool sits in inventory and
	// can take reservations.
	StatusActive

	// StatusArchived indicates the spool left inventory. Archived spools
	// accept no further reservations or commits.
	StatusArchived
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "Unknown",
		StatusActive:   "Active",
		StatusArchived: "Archived",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusActive:   "Active",
		StatusArchived: "Archived",
	}
}

// Validate checks that the Status holds one of the defined values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Archive transitions the status to Archived.
//
// Valid transitions:
//   - Active -> Archived
//
// Archiving an already archived spool fails: the waste record is write-once.
func (s Status) Archive() (Status, error) {
	if s != StatusActive {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to archive", s.String()))
	}
	return StatusArchived, nil
}

// Category distinguishes how a spool's acquisition cost is attributed.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	// CategoryStandard is a spool purchased as a unit. Its acquisition cost
	// is billed flat per spool regardless of grams consumed.
	CategoryStandard

	// CategoryRemaining is leftover filament from an earlier purchase.
	// Its cost is sunk: zero acquisition cost is attributed.
	CategoryRemaining
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown:   "Unknown",
		CategoryStandard:  "Standard",
		CategoryRemaining: "Remaining",
	}
}

// Validate checks that the Category holds one of the defined values.
func (c Category) Validate() error {
	if c != CategoryStandard && c != CategoryRemaining {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid",
			fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the human-readable name of the category.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}
