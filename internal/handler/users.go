package handler

import (
	"net/http"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/follow"
	"github.com/osse101/Foodgram_Go/internal/middleware"
	"github.com/osse101/Foodgram_Go/internal/user"
)

// RegisterUserRequest is the body of a user registration
type RegisterUserRequest struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Username  string `json:"username" validate:"required,max=150,username"`
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name" validate:"required,max=150"`
}

// UserHandler serves users and their subscriptions
type UserHandler struct {
	users    user.Service
	follows  follow.Service
	pageSize int
}

// NewUserHandler creates a new user handler
func NewUserHandler(users user.Service, follows follow.Service, pageSize int) *UserHandler {
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}
	return &UserHandler{users: users, follows: follows, pageSize: pageSize}
}

// HandleRegister registers a new user
// @Summary Register user
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "User"
// @Success 201 {object} domain.User
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/users [post]
func (h *UserHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
		return
	}
	u, err := h.users.Register(r.Context(), domain.User{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		respondServiceError(w, r, "Register user", err)
		return
	}
	respondJSON(w, http.StatusCreated, u)
}

// HandleList returns a page of users
// @Summary List users
// @Tags users
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} PageResponse[domain.UserProfile]
// @Router /api/users [get]
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePageRequest(w, r)
	if !ok {
		return
	}
	result, err := h.users.List(r.Context(), middleware.ActorFromContext(r.Context()), page)
	if err != nil {
		respondServiceError(w, r, "List users", err)
		return
	}
	respondJSON(w, http.StatusOK, newPageResponse(r, result, page, h.pageSize))
}

// HandleGet returns one user's profile
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path string true "User UUID"
// @Success 200 {object} domain.UserProfile
// @Failure 404 {object} ErrorResponse
// @Router /api/users/{id} [get]
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUserID(w, r)
	if !ok {
		return
	}
	profile, err := h.users.Get(r.Context(), middleware.ActorFromContext(r.Context()), id)
	if err != nil {
		respondServiceError(w, r, "Get user", err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// HandleMe returns the actor's own profile
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} domain.UserProfile
// @Failure 401 {object} ErrorResponse
// @Router /api/users/me [get]
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	profile, err := h.users.Me(r.Context(), middleware.ActorFromContext(r.Context()))
	if err != nil {
		respondServiceError(w, r, "Current user", err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// HandleSubscriptions returns the authors the actor follows with their recent recipes
// @Summary List subscriptions
// @Tags users
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param recipes_limit query int false "Recipes per author"
// @Success 200 {object} PageResponse[domain.FollowedAuthor]
// @Failure 401 {object} ErrorResponse
// @Router /api/users/subscriptions [get]
func (h *UserHandler) HandleSubscriptions(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePageRequest(w, r)
	if !ok {
		return
	}
	recipesLimit, ok := parseRecipesLimit(w, r, follow.AllRecipes)
	if !ok {
		return
	}
	result, err := h.follows.ListFollowing(r.Context(), middleware.ActorFromContext(r.Context()), recipesLimit, page)
	if err != nil {
		respondServiceError(w, r, "List subscriptions", err)
		return
	}
	respondJSON(w, http.StatusOK, newPageResponse(r, result, page, h.pageSize))
}

// HandleSubscribe makes the actor follow an author
// @Summary Subscribe
// @Tags users
// @Produce json
// @Param id path string true "Author UUID"
// @Param recipes_limit query int false "Recipes in the response"
// @Success 201 {object} domain.FollowedAuthor
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/users/{id}/subscribe [post]
func (h *UserHandler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUserID(w, r)
	if !ok {
		return
	}
	recipesLimit, ok := parseRecipesLimit(w, r, follow.AllRecipes)
	if !ok {
		return
	}
	author, err := h.follows.Follow(r.Context(), middleware.ActorFromContext(r.Context()), id, recipesLimit)
	if err != nil {
		respondServiceError(w, r, "Subscribe", err)
		return
	}
	respondJSON(w, http.StatusCreated, author)
}

// HandleUnsubscribe removes the actor's follow edge to an author
// @Summary Unsubscribe
// @Tags users
// @Param id path string true "Author UUID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Router /api/users/{id}/subscribe [delete]
func (h *UserHandler) HandleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUserID(w, r)
	if !ok {
		return
	}
	if err := h.follows.Unfollow(r.Context(), middleware.ActorFromContext(r.Context()), id); err != nil {
		respondServiceError(w, r, "Unsubscribe", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
