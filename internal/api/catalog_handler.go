package api

import (
	"net/http"

	"local-llm/backend/internal/interfaces"
)

// CatalogHandler handles HTTP requests for the model catalog.
type CatalogHandler struct {
	service interfaces.CatalogService
}

func NewCatalogHandler(svc interfaces.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// HandleListModels godoc
// @Summary      List available models
// @Description  Returns the models the inference service reports, plus a running flag. Falls back to a static list when the service is down or empty.
// @Tags         Models
// @Produce      json
// @Success      200  {object}  model.Catalog
// @Router       /v1/models [get]
func (h *CatalogHandler) HandleListModels(w http.ResponseWriter, r *http.Request) {
	// The catalog never fails: unavailability degrades to the fallback list.
	respondWithJSON(w, http.StatusOK, h.service.Catalog(r.Context()))
}
