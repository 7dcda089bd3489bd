package shipment

import (
	"fmt"
	"strings"

	"freightcore/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions across two families:
// the lead family (no committed booking yet) and the operational family
// (booked cargo moving through the physical journey).
//
// State transitions:
//
//	RequestReceived ──> UnderReview ──> Quoted <──> CustomerRequestedChanges
//	                                      │
//	                                      └──> CustomerApproved ──> Pending
//
//	Pending ──> Booked ──> AtOriginYard ──> Loaded ──> Sailed ──> Arrived ──> Cleared ──> Delivered
//	   │          │             │             │          │           │           │
//	   └──────────┴─────────────┴─────────────┴──────────┴───────────┴───────────┴──> Cancelled
//
// CustomerApproved -> Pending is the only legal cross-family edge. Within a
// family only adjacent transitions are legal; the single permitted regression
// is Quoted <-> CustomerRequestedChanges, which may cycle without bound.
// Delivered and Cancelled are terminal for the whole machine.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// RequestReceived is the initial status of an anonymous quote request.
	// No customer account needs to exist yet.
	RequestReceived

	// UnderReview indicates the operations team is reviewing the request.
	UnderReview

	// Quoted indicates a price quote has been sent to the requester.
	Quoted

	// CustomerRequestedChanges indicates the requester asked for quote revisions.
	// The shipment returns to Quoted once a revised quote goes out.
	CustomerRequestedChanges

	// CustomerApproved indicates the requester accepted the quote.
	// This is the gate into the operational family.
	CustomerApproved

	// Pending is the first operational status: the booking is committed
	// and awaiting carrier confirmation.
	Pending

	// Booked indicates carrier space has been confirmed.
	Booked

	// AtOriginYard indicates the cargo has been received at the origin yard.
	AtOriginYard

	// Loaded indicates the cargo has been loaded onto the vessel or aircraft.
	Loaded

	// Sailed indicates the carrier has departed the origin port.
	Sailed

	// Arrived indicates the carrier has reached the destination port.
	Arrived

	// Cleared indicates the cargo has cleared destination customs.
	Cleared

	// Delivered indicates the cargo reached the consignee. Terminal.
	Delivered

	// Cancelled indicates the booking was cancelled from an operational
	// status. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                  "unknown",
		RequestReceived:          "request_received",
		UnderReview:              "under_review",
		Quoted:                   "quoted",
		CustomerRequestedChanges: "customer_requested_changes",
		CustomerApproved:         "customer_approved",
		Pending:                  "pending",
		Booked:                   "booked",
		AtOriginYard:             "at_origin_yard",
		Loaded:                   "loaded",
		Sailed:                   "sailed",
		Arrived:                  "arrived",
		Cleared:                  "cleared",
		Delivered:                "delivered",
		Cancelled:                "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	strings := getStatusStrings()
	delete(strings, Unknown)
	return strings
}

// allowedTransitions is the adjacency table of the lifecycle state machine.
// Terminal statuses map to empty sets.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		RequestReceived:          {UnderReview},
		UnderReview:              {Quoted},
		Quoted:                   {CustomerRequestedChanges, CustomerApproved},
		CustomerRequestedChanges: {Quoted},
		CustomerApproved:         {Pending},
		Pending:                  {Booked, Cancelled},
		Booked:                   {AtOriginYard, Cancelled},
		AtOriginYard:             {Loaded, Cancelled},
		Loaded:                   {Sailed, Cancelled},
		Sailed:                   {Arrived, Cancelled},
		Arrived:                  {Cleared, Cancelled},
		Cleared:                  {Delivered, Cancelled},
		Delivered:                {},
		Cancelled:                {},
	}
}

// Validate checks if the Status value is valid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, e.g. "request_received".
// Returns "unknown" for invalid status values.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire status name back into a Status value.
// Matching is case-insensitive. Returns an error for unrecognized names.
func StatusFromString(value string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(name, value) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status name", value),
	)
}

// IsLead reports whether the status belongs to the lead family
// (quote workflow, no committed booking yet).
func (s Status) IsLead() bool {
	switch s {
	case RequestReceived, UnderReview, Quoted, CustomerRequestedChanges, CustomerApproved:
		return true
	default:
		return false
	}
}

// IsOperational reports whether the status belongs to the operational family
// (committed booking moving through the physical journey or a terminal outcome).
func (s Status) IsOperational() bool {
	switch s {
	case Pending, Booked, AtOriginYard, Loaded, Sailed, Arrived, Cleared, Delivered, Cancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// AllowedNext returns the set of statuses legally reachable from s.
// Terminal and invalid statuses return an empty slice.
func (s Status) AllowedNext() []Status {
	next, ok := allowedTransitions()[s]
	if !ok {
		return nil
	}
	return next
}

// CanTransitionTo checks whether the transition from s to target is legal
// without performing it.
//
// Returns:
//   - nil if the transition is allowed
//   - IllegalTransitionError naming both endpoints otherwise
//
// This method is used by Shipment.TransitionTo to enforce the state machine.
func (s Status) CanTransitionTo(target Status) error {
	for _, next := range s.AllowedNext() {
		if next == target {
			return nil
		}
	}
	return errs.NewIllegalTransitionError(s.String(), target.String())
}
