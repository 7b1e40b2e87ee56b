package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	mock_llm "local-llm/backend/internal/llm/mocks"
	"local-llm/backend/internal/model"
	"local-llm/backend/internal/service"
)

var fallbackModels = []string{"llama2", "codellama", "mistral"}

func setupCatalogService(t *testing.T) (*service.CatalogService, *mock_llm.MockLLMProvider) {
	mockLLM := mock_llm.NewMockLLMProvider(t)
	return service.NewCatalogService(mockLLM, fallbackModels), mockLLM
}

func TestCatalogService_Catalog(t *testing.T) {
	ctx := context.Background()

	t.Run("Running service with models", func(t *testing.T) {
		svc, mockLLM := setupCatalogService(t)

		mockLLM.On("CheckStatus", ctx).Return(true).Once()
		mockLLM.On("ListModels", ctx).Return([]string{"llama2", "mistral"}).Once()

		catalog := svc.Catalog(ctx)
		assert.Equal(t, &model.Catalog{
			Running:  true,
			Models:   []string{"llama2", "mistral"},
			Fallback: false,
		}, catalog)
	})

	t.Run("Running service with no models falls back", func(t *testing.T) {
		svc, mockLLM := setupCatalogService(t)

		mockLLM.On("CheckStatus", ctx).Return(true).Once()
		mockLLM.On("ListModels", ctx).Return([]string{}).Once()

		catalog := svc.Catalog(ctx)
		assert.True(t, catalog.Running)
		assert.True(t, catalog.Fallback)
		assert.Equal(t, fallbackModels, catalog.Models)
	})

	t.Run("Unreachable service falls back without listing", func(t *testing.T) {
		svc, mockLLM := setupCatalogService(t)

		// ListModels is never called when the status probe already failed.
		mockLLM.On("CheckStatus", ctx).Return(false).Once()

		catalog := svc.Catalog(ctx)
		assert.False(t, catalog.Running)
		assert.True(t, catalog.Fallback)
		assert.Equal(t, fallbackModels, catalog.Models)
	})
}

func TestCatalogService_Status(t *testing.T) {
	ctx := context.Background()
	svc, mockLLM := setupCatalogService(t)

	mockLLM.On("CheckStatus", ctx).Return(true).Once()

	assert.True(t, svc.Status(ctx))
}
