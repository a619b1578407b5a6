package shipment

import (
	"fmt"

	"medship/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions to ensure
// shipments follow the correct business workflow.
//
// State transitions:
//
//	Created ──┬──> Dispatched ──> Delivered
//	          │         │
//	          └─────────┘
//	     (re-dispatch allowed)
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when a shipment is first registered.
	// Shipments in this status are waiting to be assigned to a transporter.
	Created

	// Dispatched indicates the shipment is loaded on a transporter and in transit.
	// Shipments can be re-dispatched while in this status.
	Dispatched

	// Delivered indicates the shipment reached its destination.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Created:    "Created",
		Dispatched: "Dispatched",
		Delivered:  "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "Created",
		Dispatched: "Dispatched",
		Delivered:  "Delivered",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Created, Dispatched, and Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones, for which it returns "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateDispatch checks if the status allows dispatch without performing the transition.
//
// Valid statuses for dispatch:
//   - Created (initial dispatch)
//   - Dispatched (re-dispatch to a different transporter)
//
// Returns an error for Delivered and invalid statuses.
func (s Status) ValidateDispatch() error {
	if s != Created && s != Dispatched {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to dispatch", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveTransporter validates the consistency between shipment status
// and transporter assignment.
//
// Business rules:
//   - Created shipments must not have a transporter assigned
//   - Dispatched shipments must have a transporter assigned
//   - Delivered shipments must have a transporter assigned
func (s Status) ValidateCanHaveTransporter(transporter bool) error {
	if transporter && s != Dispatched && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a transporter", s.String()),
		)
	}

	if !transporter && (s == Dispatched || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no transporter", s.String()),
		)
	}

	return nil
}

// Dispatch transitions the status to Dispatched.
//
// Valid transitions:
//   - Created -> Dispatched (initial dispatch)
//   - Dispatched -> Dispatched (re-dispatch)
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Dispatch() (Status, error) {
	if err := s.ValidateDispatch(); err != nil {
		return 0, err
	}

	return Dispatched, nil
}

// Deliver transitions the status to Delivered.
//
// The only valid transition is Dispatched -> Delivered. Delivered is a final
// state with no further transitions possible.
func (s Status) Deliver() (Status, error) {
	if s != Dispatched {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}
