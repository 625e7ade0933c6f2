package statgen

import (
	"github.com/KirkDiggler/rpg-statgen/internal/errors"
)

// Reasons attached to the domain errors of this package.
const (
	ReasonInvalidInput          = "INVALID_INPUT"
	ReasonSlotAlreadyConsumed   = "SLOT_ALREADY_CONSUMED"
	ReasonSessionComplete       = "SESSION_COMPLETE"
	ReasonIncompleteAssignment  = "INCOMPLETE_ASSIGNMENT"
	ReasonPositionOutOfRange    = "POSITION_OUT_OF_RANGE"
	ReasonHardcoreAttemptsSpent = "HARDCORE_ATTEMPTS_EXHAUSTED"
)

// ErrInvalidInput reports bad generator input, such as the same attribute
// chosen as most and least important.
func ErrInvalidInput(format string, args ...interface{}) *errors.Error {
	return errors.InvalidArgumentf(format, args...).WithReason(ReasonInvalidInput)
}

// ErrSlotAlreadyConsumed reports a pick of a pool position that was already
// used.
func ErrSlotAlreadyConsumed(position int) *errors.Error {
	return errors.FailedPreconditionf("pool position %d has already been assigned", position).
		WithReason(ReasonSlotAlreadyConsumed).
		WithMeta("position", position)
}

// ErrSessionComplete reports a pick after every attribute has a value.
func ErrSessionComplete() *errors.Error {
	return errors.FailedPrecondition("all abilities are already assigned").
		WithReason(ReasonSessionComplete)
}

// ErrIncompleteAssignment reports a commit before every attribute has a
// value.
func ErrIncompleteAssignment(assigned int) *errors.Error {
	return errors.FailedPreconditionf("only %d of %d abilities are assigned", assigned, len(attributeSlots)).
		WithReason(ReasonIncompleteAssignment).
		WithMeta("assigned", assigned)
}

// IsInvalidInput reports whether err is an invalid generator input error.
func IsInvalidInput(err error) bool {
	return errors.HasReason(err, ReasonInvalidInput)
}

// IsSlotAlreadyConsumed reports whether err is a consumed-position error.
func IsSlotAlreadyConsumed(err error) bool {
	return errors.HasReason(err, ReasonSlotAlreadyConsumed)
}

// IsSessionComplete reports whether err is a pick-after-complete error.
func IsSessionComplete(err error) bool {
	return errors.HasReason(err, ReasonSessionComplete)
}

// IsIncompleteAssignment reports whether err is a premature commit error.
func IsIncompleteAssignment(err error) bool {
	return errors.HasReason(err, ReasonIncompleteAssignment)
}
