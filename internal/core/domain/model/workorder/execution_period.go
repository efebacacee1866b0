package workorder

import (
	"time"

	"workshop/internal/pkg/errs"
)

// ExecutionPeriod is a value object bracketing the time a work order spent
// in execution. It is immutable: Start and End return new values.
//
// An empty period (neither timestamp set) is valid and is the state of every
// work order that has not entered execution yet.
type ExecutionPeriod struct {
	startedAt *time.Time
	endedAt   *time.Time
}

// NewExecutionPeriod creates an empty execution period.
func NewExecutionPeriod() ExecutionPeriod {
	return ExecutionPeriod{}
}

// RestoreExecutionPeriod recreates a period from persisted timestamps.
// An end timestamp without a start timestamp is rejected.
func RestoreExecutionPeriod(startedAt, endedAt *time.Time) (ExecutionPeriod, error) {
	if endedAt != nil && startedAt == nil {
		return ExecutionPeriod{}, errs.NewBusinessRuleError("execution period cannot end before it starts")
	}
	return ExecutionPeriod{startedAt: cloneTime(startedAt), endedAt: cloneTime(endedAt)}, nil
}

// Start returns a period started at the given time.
// Starting an already started period is a no-op that keeps the original
// start timestamp.
func (p ExecutionPeriod) Start(at time.Time) ExecutionPeriod {
	if p.IsStarted() {
		return p
	}
	return ExecutionPeriod{startedAt: &at}
}

// End returns a period ended at the given time.
// Ending an already ended period keeps the original end timestamp.
// Returns an error if the period was never started.
func (p ExecutionPeriod) End(at time.Time) (ExecutionPeriod, error) {
	if !p.IsStarted() {
		return ExecutionPeriod{}, errs.NewBusinessRuleError("execution has not started")
	}
	if p.IsEnded() {
		return p, nil
	}
	return ExecutionPeriod{startedAt: p.startedAt, endedAt: &at}, nil
}

// StartedAt returns a copy of the start timestamp, or nil if not started.
func (p ExecutionPeriod) StartedAt() *time.Time {
	return cloneTime(p.startedAt)
}

// EndedAt returns a copy of the end timestamp, or nil if not ended.
func (p ExecutionPeriod) EndedAt() *time.Time {
	return cloneTime(p.endedAt)
}

// IsStarted reports whether execution has started.
func (p ExecutionPeriod) IsStarted() bool {
	return p.startedAt != nil
}

// IsEnded reports whether execution has ended.
func (p ExecutionPeriod) IsEnded() bool {
	return p.endedAt != nil
}

// Duration returns the elapsed time between start and end.
// Returns an error unless both timestamps are set.
func (p ExecutionPeriod) Duration() (time.Duration, error) {
	if !p.IsStarted() || !p.IsEnded() {
		return 0, errs.NewBusinessRuleError("execution period is not closed")
	}
	return p.endedAt.Sub(*p.startedAt), nil
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}
