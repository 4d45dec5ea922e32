package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation kind", domain.ErrEmptyTags, http.StatusBadRequest, domain.ErrMsgEmptyTags},
		{"wrapped validation kind", fmt.Errorf("%w: ids [4]", domain.ErrUnknownTag), http.StatusBadRequest, domain.ErrMsgUnknownTag},
		{"ledger conflict", fmt.Errorf("failed to add recipe to list: %w", domain.ErrAlreadyMember), http.StatusBadRequest, domain.ErrMsgAlreadyMember},
		{"self follow", domain.ErrSelfFollow, http.StatusBadRequest, domain.ErrMsgSelfFollow},
		{"unauthenticated", domain.ErrUnauthenticatedActor, http.StatusUnauthorized, domain.ErrMsgUnauthenticatedActor},
		{"not author", domain.ErrNotRecipeAuthor, http.StatusForbidden, domain.ErrMsgNotRecipeAuthor},
		{"unknown recipe", fmt.Errorf("%w: id 3", domain.ErrUnknownRecipe), http.StatusNotFound, domain.ErrMsgUnknownRecipe},
		{"unknown user", domain.ErrUserNotFound, http.StatusNotFound, domain.ErrMsgUserNotFound},
		{"unknown tag id", domain.ErrTagNotFound, http.StatusNotFound, domain.ErrMsgTagNotFound},
		{"storage failure hidden", errors.New("pq: connection reset by peer"), http.StatusInternalServerError, ErrMsgGenericServerError},
		{"nil", nil, http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondAttachment(t *testing.T) {
	w := httptest.NewRecorder()

	respondAttachment(w, domain.ShoppingListFilename, "Shopping list:")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ContentTypeText, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="shopping_list.txt"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "Shopping list:", w.Body.String())
}

func TestRespondJSON_EncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()

	respondJSON(w, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
