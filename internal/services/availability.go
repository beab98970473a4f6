package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mini-dating-backend/internal/models"
	"mini-dating-backend/internal/scheduling"
)

const noOverlapMessage = "No overlapping time found. Please try again."

// AvailabilityService runs the submit and common-slot workflows
type AvailabilityService struct {
	slots     SlotStore
	matches   MatchStore
	validator *scheduling.Validator
	now       func() time.Time
}

// NewAvailabilityService creates a new availability service.
// now is read once per submission to decide which dates are bookable.
func NewAvailabilityService(
	slots SlotStore,
	matches MatchStore,
	validator *scheduling.Validator,
	now func() time.Time,
) *AvailabilityService {
	return &AvailabilityService{
		slots:     slots,
		matches:   matches,
		validator: validator,
		now:       now,
	}
}

// CommonSlotResult is the outcome of a common-slot search
type CommonSlotResult struct {
	Found     bool   `json:"found"`
	Date      string `json:"date,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	Message   string `json:"message"`
}

// AvailabilityStatus reports which side of a match has submitted slots
type AvailabilityStatus struct {
	UserAHasSlots bool              `json:"user_a_has_slots"`
	UserBHasSlots bool              `json:"user_b_has_slots"`
	UserASlots    []models.TimeSlot `json:"user_a_slots"`
	UserBSlots    []models.TimeSlot `json:"user_b_slots"`
}

// SubmitAvailability validates slots and, if accepted, replaces the user's
// availability for the match with them
func (s *AvailabilityService) SubmitAvailability(ctx context.Context, userID, matchID string, slots []models.TimeSlot) ([]models.TimeSlot, error) {
	match, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	existing, err := s.slots.GetAllForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing availability: %w", err)
	}

	if err := s.validator.Validate(userID, match, slots, existing, s.now()); err != nil {
		return nil, err
	}

	saved, err := s.slots.Replace(ctx, userID, matchID, slots)
	if err != nil {
		return nil, fmt.Errorf("failed to save availability: %w", err)
	}
	return saved, nil
}

// GetAvailability returns a user's slots for one match
func (s *AvailabilityService) GetAvailability(ctx context.Context, userID, matchID string) ([]models.TimeSlot, error) {
	return s.slots.GetForMatch(ctx, userID, matchID)
}

// GetAllAvailability returns a user's slots across every match
func (s *AvailabilityService) GetAllAvailability(ctx context.Context, userID string) ([]models.TimeSlot, error) {
	return s.slots.GetAllForUser(ctx, userID)
}

// FindCommonSlot looks for the first window both users of a match are
// available and commits it as the match schedule. A match that already has
// a schedule is returned as is.
func (s *AvailabilityService) FindCommonSlot(ctx context.Context, matchID string) (*CommonSlotResult, error) {
	match, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if match.IsScheduled() {
		return found(*match.ScheduledDate, *match.ScheduledTimeStart, *match.ScheduledTimeEnd), nil
	}

	slotsA, err := s.slots.GetForMatch(ctx, match.UserAID, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user A availability: %w", err)
	}
	slotsB, err := s.slots.GetForMatch(ctx, match.UserBID, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user B availability: %w", err)
	}

	if len(slotsA) == 0 || len(slotsB) == 0 {
		var missing []string
		if len(slotsA) == 0 {
			missing = append(missing, "User A")
		}
		if len(slotsB) == 0 {
			missing = append(missing, "User B")
		}
		return &CommonSlotResult{
			Found:   false,
			Message: fmt.Sprintf("Waiting for %s to set availability.", strings.Join(missing, " and ")),
		}, nil
	}

	overlap, err := scheduling.FindFirstOverlap(slotsA, slotsB)
	if err != nil {
		return nil, err
	}
	if overlap == nil {
		return &CommonSlotResult{Found: false, Message: noOverlapMessage}, nil
	}

	if err := s.matches.UpdateSchedule(ctx, matchID, overlap.Date, overlap.StartTime, overlap.EndTime); err != nil {
		return nil, fmt.Errorf("failed to commit schedule: %w", err)
	}

	return found(overlap.Date, overlap.StartTime, overlap.EndTime), nil
}

// GetAvailabilityStatus reports submitted slots for both users of a match
func (s *AvailabilityService) GetAvailabilityStatus(ctx context.Context, matchID string) (*AvailabilityStatus, error) {
	match, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	slotsA, err := s.slots.GetForMatch(ctx, match.UserAID, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user A availability: %w", err)
	}
	slotsB, err := s.slots.GetForMatch(ctx, match.UserBID, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user B availability: %w", err)
	}

	return &AvailabilityStatus{
		UserAHasSlots: len(slotsA) > 0,
		UserBHasSlots: len(slotsB) > 0,
		UserASlots:    slotsA,
		UserBSlots:    slotsB,
	}, nil
}

func found(date, start, end string) *CommonSlotResult {
	return &CommonSlotResult{
		Found:     true,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Message:   fmt.Sprintf("You have a date on: %s from %s to %s", scheduling.FormatLongDate(date), start, end),
	}
}
