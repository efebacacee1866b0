package workorder

import (
	"strconv"

	"workshop/internal/pkg/errs"
)

// Status represents the lifecycle state of a work order.
// It implements a state machine with defined transitions to ensure
// work orders follow the correct shop workflow.
//
// State transitions:
//
//	Received ──> InDiagnosis ──> AwaitingApproval ──┬──> InExecution ──> Finished ──> Delivered
//	                                                │
//	                                                └──> Canceled ─────────────────> Delivered
//
// Status is a value object. Transition methods never mutate the receiver;
// they return the new status or an error when the edge is not part of the
// lifecycle. Delivered is a final state with no further transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status when a work order enters the shop.
	Received

	// InDiagnosis indicates the vehicle is being inspected and the
	// order is open for line items.
	InDiagnosis

	// AwaitingApproval indicates a budget has been produced and the
	// client must approve or reject it.
	AwaitingApproval

	// InExecution indicates the approved repair is being performed.
	InExecution

	// Finished indicates the repair work is done.
	Finished

	// Canceled indicates the client rejected the budget.
	Canceled

	// Delivered indicates the vehicle left the shop. Final state.
	Delivered
)

// InitialStatus returns the status every new work order starts in.
func InitialStatus() Status {
	return Received
}

// getStatusStrings returns a map of Status values to their canonical string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "unknown",
		Received:         "received",
		InDiagnosis:      "in_diagnosis",
		AwaitingApproval: "awaiting_approval",
		InExecution:      "in_execution",
		Finished:         "finished",
		Canceled:         "canceled",
		Delivered:        "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Received:         "received",
		InDiagnosis:      "in_diagnosis",
		AwaitingApproval: "awaiting_approval",
		InExecution:      "in_execution",
		Finished:         "finished",
		Canceled:         "canceled",
		Delivered:        "delivered",
	}
}

// getManualTransitions returns the set of allowed edges for TransitionTo.
// Every other (from, to) pair is rejected.
func getManualTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal and invalid statuses have no outgoing edges
	return map[Status][]Status{
		Received:         {InDiagnosis},
		InDiagnosis:      {AwaitingApproval},
		AwaitingApproval: {InExecution, Canceled},
		InExecution:      {Finished},
		Finished:         {Delivered},
		Canceled:         {Delivered},
	}
}

// StatusFromString parses a Status from its canonical string form.
// Parsing is case-sensitive: "received" is valid, "RECEIVED" is not.
//
// Returns:
//   - a required-value error when the string is empty
//   - an invalid-status error for any unrecognized value
//
// This is the single entry point for raw status values from the API and
// from persistence, so both paths reject the same inputs.
func StatusFromString(value string) (Status, error) {
	if value == "" {
		return Unknown, errs.NewValueIsRequiredError("status")
	}
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewInvalidStatusError(value)
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid. The error names the raw
// integer so an out-of-range value is not flattened to "unknown".
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewInvalidStatusError(strconv.Itoa(int(s)))
	}
	return nil
}

// String returns the canonical lowercase name of the status.
// It implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsReceived reports whether the status is Received.
func (s Status) IsReceived() bool { return s == Received }

// IsInDiagnosis reports whether the status is InDiagnosis.
func (s Status) IsInDiagnosis() bool { return s == InDiagnosis }

// IsAwaitingApproval reports whether the status is AwaitingApproval.
func (s Status) IsAwaitingApproval() bool { return s == AwaitingApproval }

// IsInExecution reports whether the status is InExecution.
func (s Status) IsInExecution() bool { return s == InExecution }

// IsFinished reports whether the status is Finished.
func (s Status) IsFinished() bool { return s == Finished }

// IsCanceled reports whether the status is Canceled.
func (s Status) IsCanceled() bool { return s == Canceled }

// IsDelivered reports whether the status is Delivered.
func (s Status) IsDelivered() bool { return s == Delivered }

// IsInProgress reports whether the work order is still moving through the
// shop: Received, InDiagnosis, AwaitingApproval or InExecution.
func (s Status) IsInProgress() bool {
	switch s {
	case Received, InDiagnosis, AwaitingApproval, InExecution:
		return true
	default:
		return false
	}
}

// IsConcluded reports whether the work order reached a terminal branch:
// Finished, Canceled or Delivered.
func (s Status) IsConcluded() bool {
	switch s {
	case Finished, Canceled, Delivered:
		return true
	default:
		return false
	}
}

// CanAddItems reports whether line items may still be added.
// Items are only added while the order is in diagnosis.
func (s Status) CanAddItems() bool {
	return s == InDiagnosis
}

// Priority returns the position of the status in the shop work queue.
// Lower values are served first: orders in execution come before orders
// awaiting approval, then diagnosis, then newly received ones. Concluded
// orders share one sink value and keep their relative order elsewhere.
func (s Status) Priority() int {
	switch s {
	case InExecution:
		return 1
	case AwaitingApproval:
		return 2
	case InDiagnosis:
		return 3
	case Received:
		return 4
	default:
		return 999
	}
}

// BeginDiagnosis transitions the status to InDiagnosis.
//
// Valid transitions:
//   - Received -> InDiagnosis (work starts when the vehicle is known)
//
// Returns:
//   - (InDiagnosis, nil) on valid transition
//   - (Unknown, error) from any other status
func (s Status) BeginDiagnosis() (Status, error) {
	if s != Received {
		return Unknown, errs.NewInvalidTransitionError(s.String(), InDiagnosis.String())
	}
	return InDiagnosis, nil
}

// AwaitApproval transitions the status to AwaitingApproval.
//
// Valid transitions:
//   - InDiagnosis -> AwaitingApproval (budget produced)
//
// Returns:
//   - (AwaitingApproval, nil) on valid transition
//   - (Unknown, error) from any other status
func (s Status) AwaitApproval() (Status, error) {
	if s != InDiagnosis {
		return Unknown, errs.NewInvalidTransitionError(s.String(), AwaitingApproval.String())
	}
	return AwaitingApproval, nil
}

// TransitionTo validates and performs a requested transition to target.
//
// The allowed edges are exactly:
//   - Received -> InDiagnosis
//   - InDiagnosis -> AwaitingApproval
//   - AwaitingApproval -> InExecution
//   - AwaitingApproval -> Canceled
//   - InExecution -> Finished
//   - Finished -> Delivered
//   - Canceled -> Delivered
//
// Returns:
//   - (target, nil) when the edge exists
//   - (Unknown, error) naming both ends of the rejected edge otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	for _, allowed := range getManualTransitions()[s] {
		if allowed == target {
			return target, nil
		}
	}
	return Unknown, errs.NewInvalidTransitionError(s.String(), target.String())
}
