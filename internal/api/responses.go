package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	app_errors "local-llm/backend/internal/errors"
)

// This file contains shared DTOs (Data Transfer Objects) for API responses
// and helper functions for sending consistent HTTP responses.

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse defines a generic success response, typically for operations
// like POST, PUT, DELETE that don't need to return a full resource.
type StatusResponse struct {
	Status string `json:"status"`
}

// SubmitTurnRequest is the DTO for submitting a chat prompt. Content is not
// validated here: whitespace-only input is silently ignored by the service,
// not rejected.
type SubmitTurnRequest struct {
	Content string `json:"content"`
}

// SelectModelRequest is the DTO for the model selection endpoint.
type SelectModelRequest struct {
	Model string `json:"model" validate:"required,min=1,max=100" example:"llama2"`
}

// QuickPromptRequest names one of the predefined quick actions.
type QuickPromptRequest struct {
	Action string `json:"action" validate:"required" example:"ideas"`
}

// CreateSessionRequest optionally pins the session identifier, so an
// embedding application can address sessions by its own keys.
type CreateSessionRequest struct {
	ID string `json:"id,omitempty"`
}

// UploadContextResponse reports the decoded size of an accepted document.
type UploadContextResponse struct {
	Characters int `json:"characters"`
}

// respondWithError is the centralized error handling function for the API layer.
// It maps business-layer sentinel errors to HTTP status codes and formats a
// standard JSON error response.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "The requested resource was not found."
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		// The service layer's validation messages are already user-friendly.
		message = err.Error()
	case errors.Is(err, app_errors.ErrDecode):
		statusCode = http.StatusBadRequest
		message = err.Error()
	default:
		// Any unhandled error is considered an internal server error.
		// This prevents leaking implementation details to the client.
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred."
	}

	// The original, more detailed error is logged for debugging purposes,
	// while a generic message is sent to the client.
	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondWithJSON is a low-level helper for marshaling a payload to JSON
// and writing it to the http.ResponseWriter with a given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		// This indicates a server-side programming error (e.g., trying to marshal a channel).
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}
