package scheduling

import (
	"time"

	"mini-dating-backend/internal/models"
)

const (
	DefaultWindowDays = 21
	DefaultMinSlots   = 1
	DefaultMaxSlots   = 20
)

// Validator decides whether a candidate slot set may replace a user's
// availability for a match. It never touches storage.
type Validator struct {
	WindowDays int
	MinSlots   int
	MaxSlots   int
}

// NewValidator creates a validator with the default booking window and
// slot count bounds
func NewValidator() *Validator {
	return &Validator{
		WindowDays: DefaultWindowDays,
		MinSlots:   DefaultMinSlots,
		MaxSlots:   DefaultMaxSlots,
	}
}

// span is a slot with its times already converted to minutes
type span struct {
	slot       models.TimeSlot
	start, end int
}

func (a span) overlaps(b span) bool {
	return a.slot.Date == b.slot.Date && a.start < b.end && b.start < a.end
}

// Validate checks candidates submitted by userID for match and returns the
// first violation found. existing holds every slot the user has stored
// across all matches; slots of this match are ignored since they are about
// to be replaced. today is the current server-local date.
func (v *Validator) Validate(
	userID string,
	match *models.Match,
	candidates []models.TimeSlot,
	existing []models.TimeSlot,
	today time.Time,
) error {
	if !match.HasParticipant(userID) {
		return &NotAParticipantError{UserID: userID, MatchID: match.ID}
	}

	if err := v.checkWindow(candidates, today); err != nil {
		return err
	}

	spans, err := toSpans(candidates)
	if err != nil {
		return err
	}
	for _, s := range spans {
		if s.start >= s.end {
			return &InvalidTimeOrderError{Slot: s.slot}
		}
	}

	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			if spans[i].overlaps(spans[j]) {
				return &SelfOverlapError{First: spans[i].slot, Second: spans[j].slot}
			}
		}
	}

	var others []models.TimeSlot
	for _, s := range existing {
		if s.MatchID != match.ID {
			others = append(others, s)
		}
	}
	stored, err := toSpans(others)
	if err != nil {
		return err
	}
	for _, c := range spans {
		for _, s := range stored {
			if c.overlaps(s) {
				return &CrossMatchOverlapError{Candidate: c.slot, Existing: s.slot}
			}
		}
	}

	if len(candidates) < v.MinSlots || len(candidates) > v.MaxSlots {
		return &SlotCountError{Count: len(candidates), Min: v.MinSlots, Max: v.MaxSlots}
	}

	return nil
}

// checkWindow enforces today < date <= today+WindowDays
func (v *Validator) checkWindow(candidates []models.TimeSlot, today time.Time) error {
	midnight := Midnight(today)
	after := midnight.Format(DateLayout)
	until := midnight.AddDate(0, 0, v.WindowDays).Format(DateLayout)

	for _, s := range candidates {
		if _, err := ParseDate(s.Date); err != nil {
			return err
		}
		if s.Date <= after || s.Date > until {
			return &DateOutOfWindowError{Date: s.Date, After: after, Until: until}
		}
	}
	return nil
}

func toSpans(slots []models.TimeSlot) ([]span, error) {
	spans := make([]span, 0, len(slots))
	for _, s := range slots {
		start, err := ToMinutes(s.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := ToMinutes(s.EndTime)
		if err != nil {
			return nil, err
		}
		spans = append(spans, span{slot: s, start: start, end: end})
	}
	return spans, nil
}
