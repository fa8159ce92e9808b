package route

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a route.
//
// State transitions:
//
//	Pending ──> InProgress ──> Completed
//	   │                           ^
//	   ├───────────────────────────┘
//	   └──> Cancelled
//
// Completed and Cancelled are terminal. A route is never reopened and
// cancellation after completion is impossible.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status after the workflow persists a computed
	// route that has not been handed to a courier yet.
	Pending

	// InProgress means the route was handed to its courier.
	InProgress

	// Completed means every stop was served; member orders are delivered.
	Completed

	// Cancelled means the route was abandoned before being handed over.
	Cancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

func parseAliases() map[string]Status {
	return map[string]Status{
		"pending":     Pending,
		"in_progress": InProgress,
		"completed":   Completed,
		"cancelled":   Cancelled,

		// Legacy literals still present in backend rows.
		"izskatīšanā":     Pending,
		"atdots kurjēram": InProgress,
		"pabeigts":        Completed,
		"atcelts":         Cancelled,
	}
}

// ParseStatus converts a wire literal into a Status. Accepts the canonical
// vocabulary plus the legacy Latvian literals found in existing backend data.
func ParseStatus(value string) (Status, error) {
	if s, ok := parseAliases()[value]; ok {
		return s, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a known route status", value),
	)
}

// Validate checks that the status is one of the defined lifecycle states.
func (s Status) Validate() error {
	switch s {
	case Pending, InProgress, Completed, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
}

// String returns the canonical wire literal for the status.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Dispatch transitions the status to InProgress when the route is handed to
// a courier. Reassignment while already in progress is allowed.
func (s Status) Dispatch() (Status, error) {
	if s != Pending && s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to hand to a courier", s),
		)
	}
	return InProgress, nil
}

// Complete transitions the status to Completed. Legal from Pending or
// InProgress; completing a terminal route is rejected.
func (s Status) Complete() (Status, error) {
	if s != Pending && s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s),
		)
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled. Legal from Pending only; a
// route already with its courier or finished cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s),
		)
	}
	return Cancelled, nil
}
