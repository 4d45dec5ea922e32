package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/ledger"
	"github.com/osse101/Foodgram_Go/internal/middleware"
	"github.com/osse101/Foodgram_Go/internal/recipe"
	"github.com/osse101/Foodgram_Go/internal/shopping"
)

// RecipeIngredientRequest is one (ingredient, amount) pair of a recipe body
type RecipeIngredientRequest struct {
	ID     int64 `json:"id"`
	Amount int   `json:"amount"`
}

// RecipeRequest is the body of a recipe create or update.
// Tag and ingredient rules are checked by the composer so their errors keep a fixed order.
type RecipeRequest struct {
	Name        string                    `json:"name" validate:"required,max=200"`
	Image       string                    `json:"image" validate:"required"`
	Text        string                    `json:"text" validate:"required"`
	CookingTime int                       `json:"cooking_time"`
	Tags        []int64                   `json:"tags"`
	Ingredients []RecipeIngredientRequest `json:"ingredients"`
}

// Draft converts the request to a composer draft
func (req RecipeRequest) Draft() domain.RecipeDraft {
	ingredients := make([]domain.IngredientAmountInput, len(req.Ingredients))
	for i, in := range req.Ingredients {
		ingredients[i] = domain.IngredientAmountInput{IngredientID: in.ID, Amount: in.Amount}
	}
	return domain.RecipeDraft{
		Name:        req.Name,
		Image:       req.Image,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		TagIDs:      req.Tags,
		Ingredients: ingredients,
	}
}

// RecipeHandler serves recipes, favorites, the shopping cart and the shopping list
type RecipeHandler struct {
	recipes  recipe.Service
	ledger   ledger.Service
	shopping shopping.Service
	pageSize int
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(recipes recipe.Service, ledgerSvc ledger.Service, shoppingSvc shopping.Service, pageSize int) *RecipeHandler {
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}
	return &RecipeHandler{recipes: recipes, ledger: ledgerSvc, shopping: shoppingSvc, pageSize: pageSize}
}

// HandleList returns a page of recipes, newest first
// @Summary List recipes
// @Tags recipes
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param tags query []string false "Tag slugs, any of" collectionFormat(multi)
// @Param author query string false "Author UUID"
// @Param is_favorited query int false "Only the actor's favorites (0/1)"
// @Param is_in_shopping_cart query int false "Only recipes in the actor's cart (0/1)"
// @Success 200 {object} PageResponse[domain.RecipeView]
// @Router /api/recipes [get]
func (h *RecipeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePageRequest(w, r)
	if !ok {
		return
	}
	favorited, ok := parseFlag(w, r, QueryParamIsFavorited)
	if !ok {
		return
	}
	inCart, ok := parseFlag(w, r, QueryParamIsInShoppingCart)
	if !ok {
		return
	}

	filter := domain.RecipeFilter{
		TagSlugs:       r.URL.Query()[QueryParamTags],
		Favorited:      favorited,
		InShoppingCart: inCart,
		PageRequest:    page,
	}
	if author := r.URL.Query().Get(QueryParamAuthor); author != "" {
		id, err := uuid.Parse(author)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidUserID)
			return
		}
		filter.AuthorID = id.String()
	}

	result, err := h.recipes.List(r.Context(), middleware.ActorFromContext(r.Context()), filter)
	if err != nil {
		respondServiceError(w, r, "List recipes", err)
		return
	}
	respondJSON(w, http.StatusOK, newPageResponse(r, result, page, h.pageSize))
}

// HandleCreate creates a recipe authored by the actor
// @Summary Create recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body RecipeRequest true "Recipe"
// @Success 201 {object} domain.RecipeView
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/recipes [post]
func (h *RecipeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	if actor.IsAnonymous() {
		respondServiceError(w, r, "Create recipe", domain.ErrUnauthenticatedActor)
		return
	}
	var req RecipeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create recipe"); err != nil {
		return
	}

	view, err := h.recipes.Create(r.Context(), actor, req.Draft())
	if err != nil {
		respondServiceError(w, r, "Create recipe", err)
		return
	}
	respondJSON(w, http.StatusCreated, view)
}

// HandleGet returns one recipe
// @Summary Get recipe
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} domain.RecipeView
// @Failure 404 {object} ErrorResponse
// @Router /api/recipes/{id} [get]
func (h *RecipeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	view, err := h.recipes.Get(r.Context(), middleware.ActorFromContext(r.Context()), id)
	if err != nil {
		respondServiceError(w, r, "Get recipe", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleUpdate replaces a recipe's fields, tags and ingredients
// @Summary Update recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param request body RecipeRequest true "Recipe"
// @Success 200 {object} domain.RecipeView
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/recipes/{id} [patch]
func (h *RecipeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	actor := middleware.ActorFromContext(r.Context())
	if actor.IsAnonymous() {
		respondServiceError(w, r, "Update recipe", domain.ErrUnauthenticatedActor)
		return
	}
	var req RecipeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update recipe"); err != nil {
		return
	}

	view, err := h.recipes.Update(r.Context(), actor, id, req.Draft())
	if err != nil {
		respondServiceError(w, r, "Update recipe", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleDelete deletes a recipe of the actor
// @Summary Delete recipe
// @Tags recipes
// @Param id path int true "Recipe ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/recipes/{id} [delete]
func (h *RecipeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.recipes.Delete(r.Context(), middleware.ActorFromContext(r.Context()), id); err != nil {
		respondServiceError(w, r, "Delete recipe", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAddFavorite adds a recipe to the actor's favorites
// @Summary Add to favorites
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 201 {object} domain.RecipeSummary
// @Failure 400 {object} ErrorResponse
// @Router /api/recipes/{id}/favorite [post]
func (h *RecipeHandler) HandleAddFavorite(w http.ResponseWriter, r *http.Request) {
	h.addEntry(w, r, domain.LedgerFavorites)
}

// HandleRemoveFavorite removes a recipe from the actor's favorites
// @Summary Remove from favorites
// @Tags recipes
// @Param id path int true "Recipe ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Router /api/recipes/{id}/favorite [delete]
func (h *RecipeHandler) HandleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	h.removeEntry(w, r, domain.LedgerFavorites)
}

// HandleAddToCart adds a recipe to the actor's shopping cart
// @Summary Add to shopping cart
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 201 {object} domain.RecipeSummary
// @Failure 400 {object} ErrorResponse
// @Router /api/recipes/{id}/shopping_cart [post]
func (h *RecipeHandler) HandleAddToCart(w http.ResponseWriter, r *http.Request) {
	h.addEntry(w, r, domain.LedgerShoppingCart)
}

// HandleRemoveFromCart removes a recipe from the actor's shopping cart
// @Summary Remove from shopping cart
// @Tags recipes
// @Param id path int true "Recipe ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Router /api/recipes/{id}/shopping_cart [delete]
func (h *RecipeHandler) HandleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	h.removeEntry(w, r, domain.LedgerShoppingCart)
}

func (h *RecipeHandler) addEntry(w http.ResponseWriter, r *http.Request, set domain.LedgerSet) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	summary, err := h.ledger.Add(r.Context(), middleware.ActorFromContext(r.Context()), set, id)
	if err != nil {
		respondServiceError(w, r, "Add to "+string(set), err)
		return
	}
	respondJSON(w, http.StatusCreated, summary)
}

func (h *RecipeHandler) removeEntry(w http.ResponseWriter, r *http.Request, set domain.LedgerSet) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.ledger.Remove(r.Context(), middleware.ActorFromContext(r.Context()), set, id); err != nil {
		respondServiceError(w, r, "Remove from "+string(set), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDownloadShoppingCart returns the consolidated shopping list as a text file
// @Summary Download shopping list
// @Tags recipes
// @Produce plain
// @Success 200 {string} string
// @Failure 401 {object} ErrorResponse
// @Router /api/recipes/download_shopping_cart [get]
func (h *RecipeHandler) HandleDownloadShoppingCart(w http.ResponseWriter, r *http.Request) {
	text, err := h.shopping.BuildText(r.Context(), middleware.ActorFromContext(r.Context()))
	if err != nil {
		respondServiceError(w, r, "Download shopping list", err)
		return
	}
	respondAttachment(w, domain.ShoppingListFilename, text)
}
