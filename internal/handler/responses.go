package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/driftbyte/fluxforge/internal/domain"
	"github.com/driftbyte/fluxforge/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, so all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and sends the mapped
// user-facing error response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	log.Error(opName+" failed", "error", err)

	status, msg := mapServiceErrorToUserMessage(err)
	respondError(w, status, msg)
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."

	// Game state and fragment messages
	ErrMsgGameStateNotFoundError = "Game session not found"
	ErrMsgFragmentNotFoundError  = "Fragment not found"

	// Economy messages
	ErrMsgNotEnoughFluxError = "Not enough flux"
	ErrMsgUnknownTrackError  = "Unknown upgrade track"

	// Mutation messages
	ErrMsgBaseNotBaseItemError   = "The mutation base must be a base item"
	ErrMsgInvalidComponentError  = "Mutation components must be components or modifiers"
	ErrMsgNoComponentsError      = "At least one component is required"
	ErrMsgTooManyComponentsError = "Too many components for your device's mutation slots"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
// This function converts internal service errors to appropriate HTTP status codes and messages
// that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	// Check for specific domain errors
	switch {
	case errors.Is(err, domain.ErrGameStateNotFound):
		return http.StatusNotFound, ErrMsgGameStateNotFoundError
	case errors.Is(err, domain.ErrFragmentNotFound):
		return http.StatusNotFound, ErrMsgFragmentNotFoundError
	case errors.Is(err, domain.ErrInsufficientFlux):
		return http.StatusBadRequest, ErrMsgNotEnoughFluxError
	case errors.Is(err, domain.ErrUnknownUpgradeTrack):
		return http.StatusBadRequest, ErrMsgUnknownTrackError
	case errors.Is(err, domain.ErrBaseNotBaseItem):
		return http.StatusBadRequest, ErrMsgBaseNotBaseItemError
	case errors.Is(err, domain.ErrInvalidComponent):
		return http.StatusBadRequest, ErrMsgInvalidComponentError
	case errors.Is(err, domain.ErrNoComponents):
		return http.StatusBadRequest, ErrMsgNoComponentsError
	case errors.Is(err, domain.ErrTooManyComponents):
		return http.StatusBadRequest, ErrMsgTooManyComponentsError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	// Short custom messages (tests, mocks) pass through; anything long or
	// system-level gets the generic message.
	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
