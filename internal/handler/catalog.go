package handler

import (
	"net/http"

	"github.com/osse101/Foodgram_Go/internal/catalog"
	"github.com/osse101/Foodgram_Go/internal/domain"
)

// CatalogHandler serves tags and ingredients
type CatalogHandler struct {
	catalog catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: svc}
}

// HandleListTags returns every tag
// @Summary List tags
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Tag
// @Router /api/tags [get]
func (h *CatalogHandler) HandleListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.catalog.ListTags(r.Context())
	if err != nil {
		respondServiceError(w, r, "List tags", err)
		return
	}
	if tags == nil {
		tags = []domain.Tag{}
	}
	respondJSON(w, http.StatusOK, tags)
}

// HandleGetTag returns one tag
// @Summary Get tag
// @Tags catalog
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} domain.Tag
// @Failure 404 {object} ErrorResponse
// @Router /api/tags/{id} [get]
func (h *CatalogHandler) HandleGetTag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	tag, err := h.catalog.GetTag(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get tag", err)
		return
	}
	respondJSON(w, http.StatusOK, tag)
}

// HandleListIngredients returns ingredients, optionally filtered by a name prefix
// @Summary List ingredients
// @Tags catalog
// @Produce json
// @Param name query string false "Case-insensitive name prefix"
// @Success 200 {array} domain.Ingredient
// @Router /api/ingredients [get]
func (h *CatalogHandler) HandleListIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.catalog.ListIngredients(r.Context(), GetOptionalQueryParam(r, QueryParamName, ""))
	if err != nil {
		respondServiceError(w, r, "List ingredients", err)
		return
	}
	if ingredients == nil {
		ingredients = []domain.Ingredient{}
	}
	respondJSON(w, http.StatusOK, ingredients)
}

// HandleGetIngredient returns one ingredient
// @Summary Get ingredient
// @Tags catalog
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} domain.Ingredient
// @Failure 404 {object} ErrorResponse
// @Router /api/ingredients/{id} [get]
func (h *CatalogHandler) HandleGetIngredient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	in, err := h.catalog.GetIngredient(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get ingredient", err)
		return
	}
	respondJSON(w, http.StatusOK, in)
}
