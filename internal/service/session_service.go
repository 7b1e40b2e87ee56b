package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	app_errors "local-llm/backend/internal/errors"
	"local-llm/backend/internal/llm"
	"local-llm/backend/internal/metrics"
	"local-llm/backend/internal/model"
	"local-llm/backend/internal/repository"
)

// quickPrompts are the canned prompts behind the host UI's quick-action
// buttons. They go through the exact same submission path as typed input.
var quickPrompts = map[string]string{
	"ideas":   "Give me 5 creative project ideas for a computer science student",
	"explain": "Explain the concept of machine learning in simple terms",
}

// SessionService owns session state and orchestrates one full turn of
// interaction against the inference service. Sessions are explicit entities
// with caller-managed lifetime: initialized once, reused across turns, and
// explicitly destroyed.
type SessionService struct {
	repo         repository.Repository
	llm          llm.LLMProvider
	defaultModel string
}

func NewSessionService(repo repository.Repository, llmProvider llm.LLMProvider, defaultModel string) *SessionService {
	return &SessionService{repo: repo, llm: llmProvider, defaultModel: defaultModel}
}

// Initialize creates the session if it does not exist yet. Re-invocation on
// an already-initialized session is a no-op that returns the existing state,
// so the surrounding interactive loop can call it on every action.
func (s *SessionService) Initialize(ctx context.Context, sessionID string) (*model.Session, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	session, err := s.repo.GetSession(ctx, sessionID)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("could not look up session: %w", err)
	}

	now := time.Now().UTC()
	session = &model.Session{
		ID:            sessionID,
		SelectedModel: s.defaultModel,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("could not create session: %w", err)
	}
	slog.Info("Initialized session", "session_id", sessionID, "model", s.defaultModel)
	return session, nil
}

// Transcript returns the session metadata with its ordered transcript.
func (s *SessionService) Transcript(ctx context.Context, sessionID string) (*model.FullSession, error) {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	turns, err := s.repo.GetTurns(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("could not get turns: %w", err)
	}
	return &model.FullSession{Session: *session, Turns: turns}, nil
}

// SubmitUserTurn processes one exchange: it appends the user turn, asks the
// inference service for a completion, and appends the assistant turn with
// whatever came back. Generation failures arrive as error text and are
// appended verbatim; at the data-model level they are ordinary assistant
// content. The user turn is never rolled back.
//
// Whitespace-only input is silently ignored: no turn is created and no error
// is reported.
func (s *SessionService) SubmitUserTurn(ctx context.Context, sessionID, prompt string) ([]model.Turn, error) {
	if strings.TrimSpace(prompt) == "" {
		slog.Debug("Ignoring empty prompt", "session_id", sessionID)
		return nil, nil
	}

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	userTurn := model.NewTurn(uuid.NewString(), model.RoleUser, prompt)
	if err := s.repo.AddTurn(ctx, sessionID, userTurn); err != nil {
		return nil, fmt.Errorf("could not add user turn: %w", err)
	}
	metrics.TurnAppended(model.RoleUser)

	response := s.llm.Generate(ctx, prompt, session.SelectedModel, session.DocumentContext)

	assistantTurn := model.NewTurn(uuid.NewString(), model.RoleAssistant, response)
	if err := s.repo.AddTurn(ctx, sessionID, assistantTurn); err != nil {
		return nil, fmt.Errorf("could not add assistant turn: %w", err)
	}
	metrics.TurnAppended(model.RoleAssistant)

	return []model.Turn{*userTurn, *assistantTurn}, nil
}

// QuickPrompt submits one of the named canned prompts through SubmitUserTurn.
func (s *SessionService) QuickPrompt(ctx context.Context, sessionID, action string) ([]model.Turn, error) {
	prompt, ok := quickPrompts[action]
	if !ok {
		return nil, fmt.Errorf("%w: unknown quick action %q", app_errors.ErrValidation, action)
	}
	return s.SubmitUserTurn(ctx, sessionID, prompt)
}

// SetDocumentContext decodes the uploaded bytes as UTF-8 text and replaces
// the stored document context wholesale. It returns the decoded character
// count. Invalid text is rejected with ErrDecode and the previous context
// stays in place.
func (s *SessionService) SetDocumentContext(ctx context.Context, sessionID string, raw []byte) (int, error) {
	if _, err := s.getSession(ctx, sessionID); err != nil {
		return 0, err
	}
	if !utf8.Valid(raw) {
		return 0, fmt.Errorf("%w: upload is not valid UTF-8", app_errors.ErrDecode)
	}

	text := string(raw)
	if err := s.repo.UpdateDocumentContext(ctx, sessionID, text); err != nil {
		return 0, fmt.Errorf("could not store document context: %w", err)
	}
	metrics.ContextUploaded()

	chars := utf8.RuneCountInString(text)
	slog.Info("Document context replaced", "session_id", sessionID, "characters", chars)
	return chars, nil
}

// SelectModel records the chosen model. The name is deliberately not checked
// against the catalog; an unavailable model only surfaces at the next
// generation call through the client's failure path.
func (s *SessionService) SelectModel(ctx context.Context, sessionID, modelName string) error {
	if err := s.repo.UpdateSelectedModel(ctx, sessionID, modelName); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return app_errors.ErrNotFound
		}
		return fmt.Errorf("could not select model: %w", err)
	}
	return nil
}

// Clear discards all turns. The selected model and document context are
// untouched.
func (s *SessionService) Clear(ctx context.Context, sessionID string) error {
	if _, err := s.getSession(ctx, sessionID); err != nil {
		return err
	}
	if err := s.repo.ClearTurns(ctx, sessionID); err != nil {
		return fmt.Errorf("could not clear turns: %w", err)
	}
	slog.Info("Cleared session transcript", "session_id", sessionID)
	return nil
}

// Destroy ends the session's caller-managed lifetime.
func (s *SessionService) Destroy(ctx context.Context, sessionID string) error {
	if err := s.repo.DeleteSession(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return app_errors.ErrNotFound
		}
		return fmt.Errorf("could not destroy session: %w", err)
	}
	return nil
}

// Stats derives the display statistics from the transcript. The assistant
// count is total minus user count, so non-alternating transcripts still sum
// correctly.
func (s *SessionService) Stats(ctx context.Context, sessionID string) (*model.Stats, error) {
	if _, err := s.getSession(ctx, sessionID); err != nil {
		return nil, err
	}
	turns, err := s.repo.GetTurns(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("could not get turns: %w", err)
	}

	users := 0
	for _, t := range turns {
		if t.Role == model.RoleUser {
			users++
		}
	}
	return &model.Stats{
		Total:          len(turns),
		UserCount:      users,
		AssistantCount: len(turns) - users,
	}, nil
}

func (s *SessionService) getSession(ctx context.Context, sessionID string) (*model.Session, error) {
	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, app_errors.ErrNotFound
		}
		return nil, fmt.Errorf("could not get session: %w", err)
	}
	return session, nil
}
