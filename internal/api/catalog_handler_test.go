package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"local-llm/backend/internal/api"
	"local-llm/backend/internal/interfaces/mocks"
	"local-llm/backend/internal/model"
)

func TestCatalogHandler_HandleListModels(t *testing.T) {
	t.Run("Running service", func(t *testing.T) {
		mockSvc := mocks.NewMockCatalogService(t)
		handler := api.NewCatalogHandler(mockSvc)

		mockSvc.On("Catalog", mock.Anything).Return(&model.Catalog{
			Running:  true,
			Models:   []string{"llama2", "mistral"},
			Fallback: false,
		}).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/models", nil)
		rr := httptest.NewRecorder()
		handler.HandleListModels(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"running":true,"models":["llama2","mistral"],"fallback":false}`, rr.Body.String())
	})

	t.Run("Unavailable service degrades to the fallback list", func(t *testing.T) {
		mockSvc := mocks.NewMockCatalogService(t)
		handler := api.NewCatalogHandler(mockSvc)

		mockSvc.On("Catalog", mock.Anything).Return(&model.Catalog{
			Running:  false,
			Models:   []string{"llama2", "codellama", "mistral"},
			Fallback: true,
		}).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/models", nil)
		rr := httptest.NewRecorder()
		handler.HandleListModels(rr, req)

		// Unavailability is never an error here, just an absence of data.
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"running":false,"models":["llama2","codellama","mistral"],"fallback":true}`, rr.Body.String())
	})
}
