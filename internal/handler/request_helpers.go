package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req RecipeRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Create recipe"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Debug(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}
	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}
	return nil
}

// pathID parses the positive integer {id} URL parameter.
// If ok is false, the HTTP response has already been written.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, URLParamID), 10, 64)
	if err != nil || id < 1 {
		respondError(w, http.StatusNotFound, ErrMsgInvalidID)
		return 0, false
	}
	return id, true
}

// pathUserID parses the {id} URL parameter as a user UUID in canonical form.
// If ok is false, the HTTP response has already been written.
func pathUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := uuid.Parse(chi.URLParam(r, URLParamID))
	if err != nil {
		respondError(w, http.StatusNotFound, ErrMsgInvalidUserID)
		return "", false
	}
	return id.String(), true
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// parsePageRequest reads the page and limit query parameters. Zero values mean "use the default".
// If ok is false, the HTTP response has already been written.
func parsePageRequest(w http.ResponseWriter, r *http.Request) (domain.PageRequest, bool) {
	var p domain.PageRequest
	if raw := r.URL.Query().Get(QueryParamPage); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidPage)
			return p, false
		}
		p.Page = n
	}
	if raw := r.URL.Query().Get(QueryParamLimit); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
			return p, false
		}
		p.Limit = n
	}
	return p, true
}

// parseRecipesLimit reads recipes_limit; absent means no limit.
// If ok is false, the HTTP response has already been written.
func parseRecipesLimit(w http.ResponseWriter, r *http.Request, unlimited int) (int, bool) {
	raw := r.URL.Query().Get(QueryParamRecipesLimit)
	if raw == "" {
		return unlimited, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRecipesLimit)
		return 0, false
	}
	return n, true
}

// parseFlag reads a 0/1 query flag; absent means false.
// If ok is false, the HTTP response has already been written.
func parseFlag(w http.ResponseWriter, r *http.Request, name string) (bool, bool) {
	switch r.URL.Query().Get(name) {
	case "", "0", "false":
		return false, true
	case "1", "true":
		return true, true
	default:
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidFlag, name))
		return false, false
	}
}
