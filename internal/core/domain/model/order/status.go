package order

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// Status represents the lifecycle state of a print order.
// It implements a state machine with defined transitions:
//
//	Draft ──> Confirmed ──> InProgress ──> Completed
//	  │           │             │
//	  └───────────┴─────────────┴──> Cancelled
//
// Completion is reachable from any non-terminal state so small jobs can skip
// the printing stage. Completed and Cancelled are final.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusDraft is the initial status. Items may only be added or removed
	// while the order is a draft.
	StatusDraft

	// StatusConfirmed indicates the order was accepted and its filament
	// reservations were committed.
	StatusConfirmed

	// StatusInProgress indicates printing has started.
	StatusInProgress

	// StatusCompleted indicates the order was finished and handed over.
	// This is a final state.
	StatusCompleted

	// StatusCancelled indicates the order was abandoned. Held reservations
	// are returned; committed grams stay consumed. This is a final state.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusDraft:      "Draft",
		StatusConfirmed:  "Confirmed",
		StatusInProgress: "InProgress",
		StatusCompleted:  "Completed",
		StatusCancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusDraft:      "Draft",
		StatusConfirmed:  "Confirmed",
		StatusInProgress: "InProgress",
		StatusCompleted:  "Completed",
		StatusCancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It implements the
// fmt.Stringer interface and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Confirm transitions the status to Confirmed. Only drafts can be confirmed.
func (s Status) Confirm() (Status, error) {
	if s != StatusDraft {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}

	return StatusConfirmed, nil
}

// Start transitions the status to InProgress. Only confirmed orders can
// start printing.
func (s Status) Start() (Status, error) {
	if s != StatusConfirmed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start", s.String()),
		)
	}

	return StatusInProgress, nil
}

// Complete transitions the status to Completed. Any non-terminal status may
// complete directly.
func (s Status) Complete() (Status, error) {
	if s.IsTerminal() || s.Validate() != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return StatusCompleted, nil
}

// Cancel transitions the status to Cancelled. Any non-terminal status may be
// cancelled.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() || s.Validate() != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return StatusCancelled, nil
}
