package interfaces

import (
	"context"

	"local-llm/backend/internal/model"
)

// This file defines the interfaces for our core services.
// Depending on these interfaces, instead of concrete implementations, allows for
// decoupling (e.g., API layer from Service layer) and easier testing via mocking.

// SessionService defines the contract for session-related business logic.
type SessionService interface {
	Initialize(ctx context.Context, sessionID string) (*model.Session, error)
	Transcript(ctx context.Context, sessionID string) (*model.FullSession, error)
	SubmitUserTurn(ctx context.Context, sessionID, prompt string) ([]model.Turn, error)
	QuickPrompt(ctx context.Context, sessionID, action string) ([]model.Turn, error)
	SetDocumentContext(ctx context.Context, sessionID string, raw []byte) (int, error)
	SelectModel(ctx context.Context, sessionID, modelName string) error
	Clear(ctx context.Context, sessionID string) error
	Destroy(ctx context.Context, sessionID string) error
	Stats(ctx context.Context, sessionID string) (*model.Stats, error)
}

// CatalogService defines the contract for model catalog queries.
type CatalogService interface {
	Status(ctx context.Context) bool
	Catalog(ctx context.Context) *model.Catalog
}
