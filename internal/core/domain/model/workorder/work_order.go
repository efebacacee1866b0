package workorder

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

// ErrWorkOrderIsNotConstructed is returned when a WorkOrder instance was not
// created through NewWorkOrder or RestoreWorkOrder.
var ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder or RestoreWorkOrder")

// WorkOrder is the aggregate root of the service-order lifecycle. It owns
// the status state machine, the budget total, the execution period and the
// client/vehicle binding.
//
// WorkOrder maintains these invariants:
//   - A vehicle can only be bound when a client is bound
//   - Status changes follow the lifecycle edges defined by Status
//   - The execution period starts when the order enters execution and
//     ends when the work finishes
//   - Every mutation bumps the update timestamp; the creation timestamp
//     never changes
//
// The struct uses private fields; construct it with NewWorkOrder or
// RestoreWorkOrder only.
type WorkOrder struct {
	id        kernel.UUID
	clientID  *kernel.UUID
	vehicleID *kernel.UUID
	status    Status
	total     kernel.Price
	period    ExecutionPeriod
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewWorkOrder creates a work order in the initial Received status with a
// zero total and an empty execution period. Client and vehicle are optional
// at creation, but a vehicle without a client is rejected.
func NewWorkOrder(clientID, vehicleID *kernel.UUID) (*WorkOrder, error) {
	now := time.Now()
	order := &WorkOrder{
		id:            kernel.NewUUID(),
		status:        InitialStatus(),
		total:         kernel.ZeroPrice(),
		period:        NewExecutionPeriod(),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := order.setParticipants(clientID, vehicleID); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreWorkOrder recreates a work order from persistence with its original
// identifier, status, total, execution period and timestamps. Stored rows
// violating aggregate invariants surface as business-rule errors.
func RestoreWorkOrder(
	id kernel.UUID,
	clientID, vehicleID *kernel.UUID,
	status Status,
	total kernel.Price,
	period ExecutionPeriod,
	createdAt, updatedAt time.Time,
) (*WorkOrder, error) {
	if err := errors.Join(id.Validate(), status.Validate(), total.Validate()); err != nil {
		return nil, errs.NewBusinessRuleErrorWithCause("cannot restore work order", err)
	}
	if createdAt.IsZero() || updatedAt.IsZero() {
		return nil, errs.NewBusinessRuleError("cannot restore work order without timestamps")
	}

	order := &WorkOrder{
		id:            id,
		status:        status,
		total:         total,
		period:        period,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := order.setParticipants(clientID, vehicleID); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the WorkOrder was properly constructed.
func (o *WorkOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrWorkOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two work orders by their unique identifiers.
func (o *WorkOrder) IsEqual(other *WorkOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the work order's unique identifier.
func (o *WorkOrder) ID() kernel.UUID {
	return o.id
}

// ClientID returns the bound client's ID, or nil when unbound.
func (o *WorkOrder) ClientID() *kernel.UUID {
	return o.clientID
}

// VehicleID returns the bound vehicle's ID, or nil when unbound.
func (o *WorkOrder) VehicleID() *kernel.UUID {
	return o.vehicleID
}

// Status returns the current lifecycle status.
func (o *WorkOrder) Status() Status {
	return o.status
}

// Total returns the current budget total.
func (o *WorkOrder) Total() kernel.Price {
	return o.total
}

// ExecutionPeriod returns the execution period.
func (o *WorkOrder) ExecutionPeriod() ExecutionPeriod {
	return o.period
}

// CreatedAt returns when the work order entered the shop.
func (o *WorkOrder) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the work order was last mutated.
func (o *WorkOrder) UpdatedAt() time.Time {
	return o.updatedAt
}

// SetClient binds a client to the work order.
func (o *WorkOrder) SetClient(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	o.clientID = &clientID
	o.touch()
	return nil
}

// SetVehicle binds a vehicle to the work order. A client must already be
// bound. When the order is still Received, binding the vehicle moves it
// into diagnosis: work can start once the shop knows what to inspect.
func (o *WorkOrder) SetVehicle(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	if o.clientID == nil {
		return errs.NewBusinessRuleError("a vehicle requires a client on the work order")
	}

	o.vehicleID = &vehicleID
	if o.status.IsReceived() {
		newStatus, err := o.status.BeginDiagnosis()
		if err != nil {
			return err
		}
		o.status = newStatus
	}
	o.touch()
	return nil
}

// ChangeStatus performs a requested lifecycle transition.
// Entering execution starts the execution period; finishing ends it.
// Finishing fails when the period was never started, which can only happen
// on an order restored from an inconsistent row; the status is left
// untouched so the inconsistency surfaces instead of compounding.
func (o *WorkOrder) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	switch newStatus {
	case InExecution:
		o.period = o.period.Start(time.Now())
	case Finished:
		period, err := o.period.End(time.Now())
		if err != nil {
			return err
		}
		o.period = period
	}
	o.status = newStatus
	o.touch()
	return nil
}

// UpdateTotal replaces the budget total. Setting a positive total while the
// order is still open for items submits the budget for approval. A zero
// total never advances the order.
func (o *WorkOrder) UpdateTotal(total kernel.Price) error {
	if err := total.Validate(); err != nil {
		return err
	}

	o.total = total
	if total.IsPositive() && o.status.CanAddItems() {
		newStatus, err := o.status.AwaitApproval()
		if err != nil {
			return err
		}
		o.status = newStatus
	}
	o.touch()
	return nil
}

// SubmitForApproval moves the order from diagnosis to awaiting approval.
// It is a silent no-op when the order is not open for items, so callers can
// invoke it unconditionally after pricing.
func (o *WorkOrder) SubmitForApproval() error {
	if !o.status.CanAddItems() {
		return nil
	}

	newStatus, err := o.status.AwaitApproval()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.touch()
	return nil
}

// ApproveBudget records the client's approval and moves the order into
// execution, starting the execution period.
func (o *WorkOrder) ApproveBudget() error {
	if !o.status.IsAwaitingApproval() {
		return errs.NewBusinessRuleError("budget can only be approved while awaiting approval")
	}
	return o.ChangeStatus(InExecution)
}

// RejectBudget records the client's rejection and cancels the order.
func (o *WorkOrder) RejectBudget() error {
	if !o.status.IsAwaitingApproval() {
		return errs.NewBusinessRuleError("budget can only be rejected while awaiting approval")
	}
	return o.ChangeStatus(Canceled)
}

// StartExecution marks the repair work as started. The order must already
// be in execution. Calling it again is a no-op that keeps the original
// start timestamp.
func (o *WorkOrder) StartExecution() error {
	if !o.status.IsInExecution() {
		return errs.NewBusinessRuleError("execution can only start while the order is in execution")
	}

	o.period = o.period.Start(time.Now())
	o.touch()
	return nil
}

// FinishExecution closes the execution period. The work must have started.
func (o *WorkOrder) FinishExecution() error {
	period, err := o.period.End(time.Now())
	if err != nil {
		return err
	}

	o.period = period
	o.touch()
	return nil
}

// ExecutionDuration returns how long the repair took.
// Returns an error unless the execution period is closed.
func (o *WorkOrder) ExecutionDuration() (time.Duration, error) {
	return o.period.Duration()
}

// setParticipants applies the client/vehicle binding rules shared by both
// constructors.
func (o *WorkOrder) setParticipants(clientID, vehicleID *kernel.UUID) error {
	if vehicleID != nil && clientID == nil {
		return errs.NewBusinessRuleError("a vehicle requires a client on the work order")
	}

	if clientID != nil {
		if err := clientID.Validate(); err != nil {
			return err
		}
		id := *clientID
		o.clientID = &id
	}
	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return err
		}
		id := *vehicleID
		o.vehicleID = &id
	}
	return nil
}

func (o *WorkOrder) touch() {
	o.updatedAt = time.Now()
}
