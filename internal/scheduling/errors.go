package scheduling

import (
	"errors"
	"fmt"

	"mini-dating-backend/internal/models"
)

// Sentinel errors identify the kind of a rejection. Every detailed error
// below unwraps to exactly one of them.
var (
	ErrNotAParticipant   = errors.New("user does not belong to this match")
	ErrDateOutOfWindow   = errors.New("date out of allowed window")
	ErrInvalidTimeOrder  = errors.New("start time must be before end time")
	ErrSelfOverlap       = errors.New("slots overlap each other")
	ErrCrossMatchOverlap = errors.New("slot overlaps availability for another match")
	ErrSlotCount         = errors.New("invalid number of slots")
	ErrMalformedTime     = errors.New("malformed time value")
)

// NotAParticipantError is returned when a user submits slots for a match
// they are not part of.
type NotAParticipantError struct {
	UserID  string
	MatchID string
}

func (e *NotAParticipantError) Error() string {
	return fmt.Sprintf("user %s does not belong to match %s", e.UserID, e.MatchID)
}

func (e *NotAParticipantError) Unwrap() error { return ErrNotAParticipant }

// DateOutOfWindowError names the offending date and the accepted window,
// which is exclusive at After and inclusive at Until.
type DateOutOfWindowError struct {
	Date  string
	After string
	Until string
}

func (e *DateOutOfWindowError) Error() string {
	return fmt.Sprintf("date %s is outside the allowed window: must be after %s and no later than %s",
		e.Date, e.After, e.Until)
}

func (e *DateOutOfWindowError) Unwrap() error { return ErrDateOutOfWindow }

type InvalidTimeOrderError struct {
	Slot models.TimeSlot
}

func (e *InvalidTimeOrderError) Error() string {
	return fmt.Sprintf("slot %s must start before it ends", describe(e.Slot))
}

func (e *InvalidTimeOrderError) Unwrap() error { return ErrInvalidTimeOrder }

type SelfOverlapError struct {
	First  models.TimeSlot
	Second models.TimeSlot
}

func (e *SelfOverlapError) Error() string {
	return fmt.Sprintf("slots %s and %s overlap", describe(e.First), describe(e.Second))
}

func (e *SelfOverlapError) Unwrap() error { return ErrSelfOverlap }

// CrossMatchOverlapError carries the already stored slot that conflicts
// with a candidate.
type CrossMatchOverlapError struct {
	Candidate models.TimeSlot
	Existing  models.TimeSlot
}

func (e *CrossMatchOverlapError) Error() string {
	return fmt.Sprintf("slot %s overlaps %s already submitted for another match",
		describe(e.Candidate), describe(e.Existing))
}

func (e *CrossMatchOverlapError) Unwrap() error { return ErrCrossMatchOverlap }

type SlotCountError struct {
	Count int
	Min   int
	Max   int
}

func (e *SlotCountError) Error() string {
	return fmt.Sprintf("between %d and %d slots are required, got %d", e.Min, e.Max, e.Count)
}

func (e *SlotCountError) Unwrap() error { return ErrSlotCount }

// MalformedTimeError is returned when a date or time string cannot be
// parsed. Format is the expected layout.
type MalformedTimeError struct {
	Value  string
	Format string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed value %q, expected %s", e.Value, e.Format)
}

func (e *MalformedTimeError) Unwrap() error { return ErrMalformedTime }

func describe(s models.TimeSlot) string {
	return fmt.Sprintf("%s %s-%s", s.Date, s.StartTime, s.EndTime)
}
