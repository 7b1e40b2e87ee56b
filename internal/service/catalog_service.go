package service

import (
	"context"

	"local-llm/backend/internal/llm"
	"local-llm/backend/internal/model"
)

// CatalogService derives the transient model catalog from the inference
// service. Nothing is cached; every call reflects the service's state at
// that moment.
type CatalogService struct {
	llm      llm.LLMProvider
	fallback []string
}

// NewCatalogService takes the static fallback list used when the service is
// unreachable or reports no models.
func NewCatalogService(llmProvider llm.LLMProvider, fallback []string) *CatalogService {
	return &CatalogService{llm: llmProvider, fallback: fallback}
}

// Status reports whether the inference service is reachable right now.
func (s *CatalogService) Status(ctx context.Context) bool {
	return s.llm.CheckStatus(ctx)
}

// Catalog returns the currently available models together with the service
// status flag. When no models can be obtained, the fixed fallback list is
// returned and marked as such.
func (s *CatalogService) Catalog(ctx context.Context) *model.Catalog {
	running := s.llm.CheckStatus(ctx)

	var models []string
	if running {
		models = s.llm.ListModels(ctx)
	}
	if len(models) == 0 {
		return &model.Catalog{Running: running, Models: s.fallback, Fallback: true}
	}
	return &model.Catalog{Running: running, Models: models, Fallback: false}
}
