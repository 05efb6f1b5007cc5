package schedule

import (
	"errors"
	"fmt"

	"github.com/2beens/gymplan/internal/gymplan/curriculum"
)

var (
	ErrConflict     = errors.New("schedule conflict")
	ErrPrecondition = errors.New("schedule precondition failed")
)

type ConflictReason string

const (
	ReasonSameDate ConflictReason = "same_date"
	ReasonRestDay  ConflictReason = "rest_day"
	ReasonSequence ConflictReason = "sequence"
	ReasonHistory  ConflictReason = "history"
)

func (r ConflictReason) Message() string {
	switch r {
	case ReasonSameDate:
		return "already on this date"
	case ReasonRestDay:
		return "cannot move to a rest day"
	case ReasonSequence:
		return "would break sequential order"
	case ReasonHistory:
		return "cannot change a past or completed workout"
	default:
		return string(r)
	}
}

// ConflictError rejects an edit that would break a schedule invariant.
// ConflictDate and ConflictPosition are set only for ReasonSequence.
type ConflictError struct {
	Reason           ConflictReason
	Date             Date
	Position         curriculum.Position
	ConflictDate     Date
	ConflictPosition curriculum.Position
}

func (e *ConflictError) Error() string {
	if e.Reason == ReasonSequence {
		return fmt.Sprintf("%s %s: %s: %s is scheduled on %s",
			e.Position, e.Date, e.Reason.Message(), e.ConflictPosition, e.ConflictDate)
	}
	if e.Position == (curriculum.Position{}) {
		return fmt.Sprintf("%s: %s", e.Date, e.Reason.Message())
	}
	return fmt.Sprintf("%s %s: %s", e.Position, e.Date, e.Reason.Message())
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

type PreconditionError struct {
	Op     string
	Detail string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}
