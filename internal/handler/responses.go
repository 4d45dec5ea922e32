package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondAttachment sends body as a downloadable plain-text file
func respondAttachment(w http.ResponseWriter, filename, body string) {
	w.Header().Set("Content-Type", ContentTypeText)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

// statusBySentinel lists domain errors with a fixed HTTP status, checked in order
var statusBySentinel = []struct {
	err    error
	status int
}{
	{domain.ErrUnauthenticatedActor, http.StatusUnauthorized},
	{domain.ErrNotRecipeAuthor, http.StatusForbidden},

	{domain.ErrUnknownRecipe, http.StatusNotFound},
	{domain.ErrUserNotFound, http.StatusNotFound},
	{domain.ErrTagNotFound, http.StatusNotFound},
	{domain.ErrIngredientNotFound, http.StatusNotFound},

	{domain.ErrEmptyTags, http.StatusBadRequest},
	{domain.ErrDuplicateTags, http.StatusBadRequest},
	{domain.ErrUnknownTag, http.StatusBadRequest},
	{domain.ErrEmptyIngredients, http.StatusBadRequest},
	{domain.ErrDuplicateIngredient, http.StatusBadRequest},
	{domain.ErrUnknownIngredient, http.StatusBadRequest},
	{domain.ErrInvalidAmount, http.StatusBadRequest},
	{domain.ErrInvalidCookingTime, http.StatusBadRequest},
	{domain.ErrDuplicateRecipeName, http.StatusBadRequest},
	{domain.ErrAlreadyMember, http.StatusBadRequest},
	{domain.ErrNotMember, http.StatusBadRequest},
	{domain.ErrSelfFollow, http.StatusBadRequest},
	{domain.ErrAlreadyFollowing, http.StatusBadRequest},
	{domain.ErrNotFollowing, http.StatusBadRequest},
	{domain.ErrUserAlreadyExists, http.StatusBadRequest},
	{domain.ErrInvalidInput, http.StatusBadRequest},
}

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a client-safe message.
// Only the sentinel's own message is exposed; anything unrecognised becomes a generic 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	for _, m := range statusBySentinel {
		if errors.Is(err, m.err) {
			return m.status, m.err.Error()
		}
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs err and writes the mapped error response
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", op, "error", err)
	} else {
		log.Debug(LogMsgServiceError, "operation", op, "status", status, "error", err)
	}
	respondError(w, status, msg)
}
