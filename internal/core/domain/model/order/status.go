package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents an order's place in the fulfillment lifecycle.
//
// State transitions:
//
//	Ready ──> InProgress ──> Delivered
//	  ^           │
//	  └───────────┘
//	(removal from a route before completion)
//
// Ready and Delivered are stable states. InProgress is the only state with a
// legal reverse transition, and only via explicit removal from a route —
// never via error recovery.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Ready is the initial status: the order is unassigned and can be
	// selected into a route.
	Ready

	// InProgress means the order is a member of an active route.
	InProgress

	// Delivered means the order's route was completed. Final state.
	Delivered
)

// statusStrings holds the canonical wire vocabulary. The persistence backend
// historically stored Latvian literals alongside these; parseAliases accepts
// them, but only the canonical strings are ever written back.
func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Ready:      "ready",
		InProgress: "in_progress",
		Delivered:  "delivered",
	}
}

func parseAliases() map[string]Status {
	return map[string]Status{
		"ready":       Ready,
		"in_progress": InProgress,
		"delivered":   Delivered,

		// Legacy literals still present in backend rows.
		"gatavs":    Ready,
		"progresā":  InProgress,
		"piegādāts": Delivered,
	}
}

// ParseStatus converts a wire literal into a Status. Accepts the canonical
// vocabulary plus the legacy Latvian literals found in existing backend data.
func ParseStatus(value string) (Status, error) {
	if s, ok := parseAliases()[value]; ok {
		return s, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"route_status is invalid",
		fmt.Errorf("%q is not a known order status", value),
	)
}

// Validate checks that the status is one of the defined lifecycle states.
func (s Status) Validate() error {
	switch s {
	case Ready, InProgress, Delivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"route_status is invalid",
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

// Claim transitions the status to InProgress when the order joins a route.
// Only Ready orders can be claimed; an order already on a route must be
// released first, and a delivered order never re-enters a route.
func (s Status) Claim() (Status, error) {
	if s != Ready {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"route_status is invalid",
			fmt.Errorf("%s is not a valid status to join a route", s),
		)
	}
	return InProgress, nil
}

// Release transitions the status back to Ready when the order is removed
// from a route before completion. This is the single legal reverse
// transition in the lifecycle.
func (s Status) Release() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"route_status is invalid",
			fmt.Errorf("%s is not a valid status to leave a route", s),
		)
	}
	return Ready, nil
}

// Deliver transitions the status to Delivered when the order's route
// completes. Delivered is terminal.
func (s Status) Deliver() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"route_status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s),
		)
	}
	return Delivered, nil
}
