package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	"mini-dating-backend/internal/repository"
	"mini-dating-backend/internal/scheduling"
	"mini-dating-backend/internal/services"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const maxBodyBytes = 64 << 10

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code,omitempty"`
	Details []string `json:"details,omitempty"`
}

type errorMapping struct {
	target error
	status int
	code   string
}

// errorMappings is checked in order with errors.Is
var errorMappings = []errorMapping{
	{scheduling.ErrNotAParticipant, http.StatusForbidden, "not_a_participant"},
	{scheduling.ErrDateOutOfWindow, http.StatusBadRequest, "date_out_of_window"},
	{scheduling.ErrInvalidTimeOrder, http.StatusBadRequest, "invalid_time_order"},
	{scheduling.ErrSelfOverlap, http.StatusBadRequest, "self_overlap"},
	{scheduling.ErrCrossMatchOverlap, http.StatusConflict, "cross_match_overlap"},
	{scheduling.ErrSlotCount, http.StatusBadRequest, "slot_count"},
	{scheduling.ErrMalformedTime, http.StatusBadRequest, "malformed_time"},
	{repository.ErrNotFound, http.StatusNotFound, "not_found"},
	{services.ErrInvalidInput, http.StatusBadRequest, "invalid_input"},
	{services.ErrSelfLike, http.StatusBadRequest, "self_like"},
	{services.ErrAlreadyLiked, http.StatusConflict, "already_liked"},
	{services.ErrEmailTaken, http.StatusConflict, "email_taken"},
	{services.ErrAvatarUploadDisabled, http.StatusServiceUnavailable, "avatar_upload_disabled"},
	{services.ErrAvatarNotUploaded, http.StatusConflict, "avatar_not_uploaded"},
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	respondJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondInvalid sends a 400 listing every problem with the request
func respondInvalid(w http.ResponseWriter, problems []string) {
	resp := ErrorResponse{Error: "validation failed", Code: "invalid_input", Details: problems}
	if len(problems) == 1 {
		resp.Error = problems[0]
	}
	respondJSON(w, http.StatusBadRequest, resp)
}

// respondServiceError maps a service error to a status code. Unknown errors
// become a 500 without leaking their text.
func respondServiceError(w http.ResponseWriter, err error) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		resp := ErrorResponse{Error: err.Error(), Code: m.code}
		var vErr *services.ValidationError
		if errors.As(err, &vErr) && len(vErr.Problems) > 1 {
			resp.Details = vErr.Problems
		}
		respondJSON(w, m.status, resp)
		return
	}
	respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Code: "internal"})
}

// logFailure logs expected client errors at warn and everything else at error
func logFailure(err error) *zerolog.Event {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) && m.status < http.StatusInternalServerError {
			return log.Warn().Err(err)
		}
	}
	return log.Error().Err(err)
}

// canonicalID parses any accepted UUID spelling and returns the lower-case
// hyphenated form ids are stored and compared in
func canonicalID(s string) (string, bool) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// respondDecodeError reports an unreadable or oversized body
func respondDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respondError(w, "Request body too large", http.StatusRequestEntityTooLarge)
		return
	}
	respondError(w, "Invalid request body", http.StatusBadRequest)
}

// decodeJSON reads at most maxBodyBytes of request body into dst
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}
