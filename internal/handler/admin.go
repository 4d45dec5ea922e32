package handler

import (
	"net/http"

	"github.com/osse101/Foodgram_Go/internal/catalog"
	"github.com/osse101/Foodgram_Go/internal/domain"
)

// TagRequest is one tag of a catalog import
type TagRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Color string `json:"color" validate:"required,hexcolor"`
	Slug  string `json:"slug" validate:"required,max=200,slug"`
}

// ImportTagsRequest is the body of a tag import
type ImportTagsRequest struct {
	Tags []TagRequest `json:"tags" validate:"required,min=1,dive"`
}

// IngredientRequest is one ingredient of a catalog import
type IngredientRequest struct {
	Name            string `json:"name" validate:"required,max=200"`
	MeasurementUnit string `json:"measurement_unit" validate:"required,max=200"`
}

// ImportIngredientsRequest is the body of an ingredient import
type ImportIngredientsRequest struct {
	Ingredients []IngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
}

// ImportResponse reports how many catalog rows were written
type ImportResponse struct {
	Submitted int `json:"submitted"`
	Written   int `json:"written"`
}

// AdminHandler handles catalog maintenance
type AdminHandler struct {
	catalog catalog.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(svc catalog.Service) *AdminHandler {
	return &AdminHandler{catalog: svc}
}

// HandleGetCacheStats returns current catalog cache statistics
// @Summary Get catalog cache stats
// @Description Returns cache hit/miss statistics for monitoring (admin only)
// @Tags admin
// @Produce json
// @Success 200 {object} catalog.CacheStats
// @Router /api/admin/cache/stats [get]
func (h *AdminHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.GetCacheStats())
}

// HandleImportTags inserts tags that do not exist yet
// @Summary Import tags
// @Tags admin
// @Accept json
// @Produce json
// @Param request body ImportTagsRequest true "Tags"
// @Success 200 {object} ImportResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/admin/catalog/tags [post]
func (h *AdminHandler) HandleImportTags(w http.ResponseWriter, r *http.Request) {
	var req ImportTagsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Import tags"); err != nil {
		return
	}
	tags := make([]domain.Tag, len(req.Tags))
	for i, t := range req.Tags {
		tags[i] = domain.Tag{Name: t.Name, Color: t.Color, Slug: t.Slug}
	}
	n, err := h.catalog.ImportTags(r.Context(), tags)
	if err != nil {
		respondServiceError(w, r, "Import tags", err)
		return
	}
	respondJSON(w, http.StatusOK, ImportResponse{Submitted: len(tags), Written: n})
}

// HandleImportIngredients inserts ingredients whose (name, unit) pair is new
// @Summary Import ingredients
// @Tags admin
// @Accept json
// @Produce json
// @Param request body ImportIngredientsRequest true "Ingredients"
// @Success 200 {object} ImportResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/admin/catalog/ingredients [post]
func (h *AdminHandler) HandleImportIngredients(w http.ResponseWriter, r *http.Request) {
	var req ImportIngredientsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Import ingredients"); err != nil {
		return
	}
	ingredients := make([]domain.Ingredient, len(req.Ingredients))
	for i, in := range req.Ingredients {
		ingredients[i] = domain.Ingredient{Name: in.Name, MeasurementUnit: in.MeasurementUnit}
	}
	n, err := h.catalog.ImportIngredients(r.Context(), ingredients)
	if err != nil {
		respondServiceError(w, r, "Import ingredients", err)
		return
	}
	respondJSON(w, http.StatusOK, ImportResponse{Submitted: len(ingredients), Written: n})
}
