package handlers

import (
	"context"
	"fmt"
	"net/http"

	"mini-dating-backend/internal/models"
	"mini-dating-backend/internal/scheduling"
	"mini-dating-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Availability is the scheduling service used by AvailabilityHandler
type Availability interface {
	SubmitAvailability(ctx context.Context, userID, matchID string, slots []models.TimeSlot) ([]models.TimeSlot, error)
	GetAvailability(ctx context.Context, userID, matchID string) ([]models.TimeSlot, error)
	GetAllAvailability(ctx context.Context, userID string) ([]models.TimeSlot, error)
	FindCommonSlot(ctx context.Context, matchID string) (*services.CommonSlotResult, error)
	GetAvailabilityStatus(ctx context.Context, matchID string) (*services.AvailabilityStatus, error)
}

// AvailabilityHandler handles availability and scheduling requests
type AvailabilityHandler struct {
	availabilityService Availability
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(availabilityService Availability) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityService: availabilityService,
	}
}

// SlotRequest is one submitted window
type SlotRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// SubmitAvailabilityRequest represents the request body for submitting slots
type SubmitAvailabilityRequest struct {
	UserID  string        `json:"user_id"`
	MatchID string        `json:"match_id"`
	Slots   []SlotRequest `json:"slots"`
}

// normalize canonicalises the ids in place and lists every format problem
func (req *SubmitAvailabilityRequest) normalize() []string {
	var problems []string
	var ok bool
	if req.UserID, ok = canonicalID(req.UserID); !ok {
		problems = append(problems, "user_id must be a valid UUID")
	}
	if req.MatchID, ok = canonicalID(req.MatchID); !ok {
		problems = append(problems, "match_id must be a valid UUID")
	}
	if n := len(req.Slots); n < scheduling.DefaultMinSlots || n > scheduling.DefaultMaxSlots {
		problems = append(problems, fmt.Sprintf("slots must contain between %d and %d entries, got %d",
			scheduling.DefaultMinSlots, scheduling.DefaultMaxSlots, n))
		return problems
	}
	for i, s := range req.Slots {
		if !datePattern.MatchString(s.Date) {
			problems = append(problems, fmt.Sprintf("slots[%d].date must be YYYY-MM-DD", i))
		}
		if !timePattern.MatchString(s.StartTime) {
			problems = append(problems, fmt.Sprintf("slots[%d].start_time must be HH:mm", i))
		}
		if !timePattern.MatchString(s.EndTime) {
			problems = append(problems, fmt.Sprintf("slots[%d].end_time must be HH:mm", i))
		}
	}
	return problems
}

// SubmitAvailability handles POST /api/v1/availability
func (h *AvailabilityHandler) SubmitAvailability(w http.ResponseWriter, r *http.Request) {
	var req SubmitAvailabilityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondDecodeError(w, err)
		return
	}
	if problems := req.normalize(); len(problems) > 0 {
		respondInvalid(w, problems)
		return
	}

	slots := make([]models.TimeSlot, len(req.Slots))
	for i, s := range req.Slots {
		slots[i] = models.TimeSlot{Date: s.Date, StartTime: s.StartTime, EndTime: s.EndTime}
	}

	saved, err := h.availabilityService.SubmitAvailability(r.Context(), req.UserID, req.MatchID, slots)
	if err != nil {
		logFailure(err).
			Str("user_id", req.UserID).
			Str("match_id", req.MatchID).
			Int("slots", len(slots)).
			Msg("Failed to submit availability")
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("user_id", req.UserID).
		Str("match_id", req.MatchID).
		Int("slots", len(saved)).
		Msg("Availability saved")

	respondJSON(w, http.StatusCreated, saved)
}

// GetAvailability handles GET /api/v1/availability/user?user_id=&match_id=
func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	userID, okUser := canonicalID(r.URL.Query().Get("user_id"))
	matchID, okMatch := canonicalID(r.URL.Query().Get("match_id"))
	if !okUser || !okMatch {
		respondError(w, "user_id and match_id must be valid UUIDs", http.StatusBadRequest)
		return
	}

	slots, err := h.availabilityService.GetAvailability(r.Context(), userID, matchID)
	if err != nil {
		logFailure(err).Str("user_id", userID).Str("match_id", matchID).Msg("Failed to get availability")
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, slots)
}

// GetAllAvailability handles GET /api/v1/availability/all?user_id=
func (h *AvailabilityHandler) GetAllAvailability(w http.ResponseWriter, r *http.Request) {
	userID, ok := canonicalID(r.URL.Query().Get("user_id"))
	if !ok {
		respondError(w, "user_id must be a valid UUID", http.StatusBadRequest)
		return
	}

	slots, err := h.availabilityService.GetAllAvailability(r.Context(), userID)
	if err != nil {
		logFailure(err).Str("user_id", userID).Msg("Failed to get availability")
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, slots)
}

// FindCommonSlot handles GET /api/v1/availability/common-slot/{matchId}
func (h *AvailabilityHandler) FindCommonSlot(w http.ResponseWriter, r *http.Request) {
	matchID, ok := canonicalID(chi.URLParam(r, "matchId"))
	if !ok {
		respondError(w, "matchId must be a valid UUID", http.StatusBadRequest)
		return
	}

	result, err := h.availabilityService.FindCommonSlot(r.Context(), matchID)
	if err != nil {
		logFailure(err).Str("match_id", matchID).Msg("Failed to find common slot")
		respondServiceError(w, err)
		return
	}

	if result.Found {
		log.Info().
			Str("match_id", matchID).
			Str("date", result.Date).
			Str("start_time", result.StartTime).
			Str("end_time", result.EndTime).
			Msg("Date scheduled")
	}

	respondJSON(w, http.StatusOK, result)
}

// GetStatus handles GET /api/v1/availability/status/{matchId}
func (h *AvailabilityHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	matchID, ok := canonicalID(chi.URLParam(r, "matchId"))
	if !ok {
		respondError(w, "matchId must be a valid UUID", http.StatusBadRequest)
		return
	}

	status, err := h.availabilityService.GetAvailabilityStatus(r.Context(), matchID)
	if err != nil {
		logFailure(err).Str("match_id", matchID).Msg("Failed to get availability status")
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}
