package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

func TestNewPageResponse(t *testing.T) {
	page := &domain.Page[int]{Count: 13, Results: []int{7, 8, 9, 10, 11, 12}}

	t.Run("middle page links both ways", func(t *testing.T) {
		r := httptest.NewRequest("GET", "http://api.test/api/recipes?page=2&limit=6&tags=lunch", nil)

		resp := newPageResponse(r, page, domain.PageRequest{Page: 2, Limit: 6}, 6)

		require.NotNil(t, resp.Next)
		require.NotNil(t, resp.Previous)
		assert.Equal(t, "http://api.test/api/recipes?limit=6&page=3&tags=lunch", *resp.Next)
		assert.Equal(t, "http://api.test/api/recipes?limit=6&tags=lunch", *resp.Previous)
		assert.Equal(t, 13, resp.Count)
	})

	t.Run("last page has no next", func(t *testing.T) {
		r := httptest.NewRequest("GET", "http://api.test/api/recipes?page=3", nil)

		resp := newPageResponse(r, &domain.Page[int]{Count: 13, Results: []int{13}}, domain.PageRequest{Page: 3}, 6)

		assert.Nil(t, resp.Next)
		require.NotNil(t, resp.Previous)
		assert.Equal(t, "http://api.test/api/recipes?page=2", *resp.Previous)
	})

	t.Run("first page defaults", func(t *testing.T) {
		r := httptest.NewRequest("GET", "http://api.test/api/users", nil)
		r.Header.Set("X-Forwarded-Proto", "https")

		resp := newPageResponse(r, &domain.Page[int]{Count: 0}, domain.PageRequest{}, 6)

		assert.Nil(t, resp.Next)
		assert.Nil(t, resp.Previous)
		assert.NotNil(t, resp.Results)
	})
}
