package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	app_errors "local-llm/backend/internal/errors"
	"local-llm/backend/internal/interfaces"
)

// allowedUploadExtensions restricts document context uploads to
// plain-text-like formats. The content itself only has to decode as text;
// no file-type-specific structure is interpreted.
var allowedUploadExtensions = map[string]bool{
	".txt": true,
	".md":  true,
	".py":  true,
}

// SessionHandler handles HTTP requests for the conversational session.
type SessionHandler struct {
	service        interfaces.SessionService
	maxUploadBytes int64
}

func NewSessionHandler(svc interfaces.SessionService, maxUploadBytes int64) *SessionHandler {
	return &SessionHandler{service: svc, maxUploadBytes: maxUploadBytes}
}

// HandleCreateSession godoc
// @Summary      Initialize a session
// @Description  Creates a session, or returns the existing one when the given ID is already initialized.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        session  body      CreateSessionRequest  false  "Optional session ID"
// @Success      200      {object}  model.Session
// @Failure      500      {object}  ErrorResponse
// @Router       /v1/sessions [post]
func (h *SessionHandler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
			return
		}
	}

	session, err := h.service.Initialize(r.Context(), req.ID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

// HandleGetSession godoc
// @Summary      Get the transcript
// @Description  Returns the session metadata and its full ordered transcript.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  model.FullSession
// @Failure      404        {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID} [get]
func (h *SessionHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	full, err := h.service.Transcript(r.Context(), sessionID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, full)
}

// HandleDestroySession godoc
// @Summary      Destroy a session
// @Description  Ends the session's lifetime and discards all of its state.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  StatusResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID} [delete]
func (h *SessionHandler) HandleDestroySession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if err := h.service.Destroy(r.Context(), sessionID); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleSubmitTurn godoc
// @Summary      Submit a user prompt
// @Description  Appends the user turn, generates a completion, and appends the assistant turn. Whitespace-only input is silently ignored with 204.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string             true  "Session ID"
// @Param        message    body      SubmitTurnRequest  true  "Prompt"
// @Success      200        {array}   model.Turn
// @Success      204        "Input was empty; nothing was appended"
// @Failure      404        {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID}/messages [post]
func (h *SessionHandler) HandleSubmitTurn(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req SubmitTurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
		return
	}

	turns, err := h.service.SubmitUserTurn(r.Context(), sessionID, req.Content)
	if err != nil {
		respondWithError(w, err)
		return
	}
	if turns == nil {
		// Empty input: ignored without an error, nothing to show.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondWithJSON(w, http.StatusOK, turns)
}

// HandleQuickPrompt godoc
// @Summary      Submit a quick prompt
// @Description  Submits one of the predefined quick-action prompts through the normal submission path.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string              true  "Session ID"
// @Param        action     body      QuickPromptRequest  true  "Quick action name"
// @Success      200        {array}   model.Turn
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID}/quick [post]
func (h *SessionHandler) HandleQuickPrompt(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req QuickPromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	turns, err := h.service.QuickPrompt(r.Context(), sessionID, req.Action)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, turns)
}

// HandleClearSession godoc
// @Summary      Clear the transcript
// @Description  Discards all turns. The selected model and document context are kept.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  StatusResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID}/messages [delete]
func (h *SessionHandler) HandleClearSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if err := h.service.Clear(r.Context(), sessionID); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleSelectModel godoc
// @Summary      Select a model
// @Description  Sets the session's model. The name is not checked against the catalog.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string              true  "Session ID"
// @Param        model      body      SelectModelRequest  true  "Model name"
// @Success      200        {object}  StatusResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID}/model [put]
func (h *SessionHandler) HandleSelectModel(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req SelectModelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	if err := h.service.SelectModel(r.Context(), sessionID, req.Model); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleUploadContext godoc
// @Summary      Upload document context
// @Description  Replaces the session's document context with the uploaded file's text. Only plain-text-like files (.txt, .md, .py) are accepted.
// @Tags         Sessions
// @Accept       multipart/form-data
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Param        file       formData  file    true  "Document file"
// @Success      200        {object}  UploadContextResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID}/context [post]
func (h *SessionHandler) HandleUploadContext(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, fmt.Errorf("%w: missing or oversized file upload", app_errors.ErrValidation))
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedUploadExtensions[ext] {
		respondWithError(w, fmt.Errorf("%w: unsupported file type %q", app_errors.ErrValidation, ext))
		return
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		respondWithError(w, fmt.Errorf("could not read upload: %w", err))
		return
	}

	chars, err := h.service.SetDocumentContext(r.Context(), sessionID, raw)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, UploadContextResponse{Characters: chars})
}

// HandleGetStats godoc
// @Summary      Session statistics
// @Description  Returns the total, user, and assistant turn counts.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  model.Stats
// @Failure      404        {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID}/stats [get]
func (h *SessionHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	stats, err := h.service.Stats(r.Context(), sessionID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}
