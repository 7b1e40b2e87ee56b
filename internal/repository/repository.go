package repository

import (
	"context"

	"local-llm/backend/internal/model"
)

// Repository defines the interface for session storage operations.
// This interface makes it easy to switch database implementations.
type Repository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	UpdateSelectedModel(ctx context.Context, sessionID, modelName string) error
	UpdateDocumentContext(ctx context.Context, sessionID, documentContext string) error

	AddTurn(ctx context.Context, sessionID string, turn *model.Turn) error
	GetTurns(ctx context.Context, sessionID string) ([]model.Turn, error)
	ClearTurns(ctx context.Context, sessionID string) error
}
