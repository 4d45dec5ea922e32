package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// PageResponse is one page of a listing with links to its neighbours
type PageResponse[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// newPageResponse wraps page, served for req, with next/previous links built from r
func newPageResponse[T any](r *http.Request, page *domain.Page[T], req domain.PageRequest, defaultLimit int) PageResponse[T] {
	current := req.Page
	if current < 1 {
		current = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > domain.MaxPageSize {
		limit = domain.MaxPageSize
	}

	results := page.Results
	if results == nil {
		results = []T{}
	}
	resp := PageResponse[T]{Count: page.Count, Results: results}
	if current*limit < page.Count {
		resp.Next = pageLink(r, current+1)
	}
	if current > 1 {
		resp.Previous = pageLink(r, current-1)
	}
	return resp
}

func pageLink(r *http.Request, page int) *string {
	u := url.URL{
		Scheme: requestScheme(r),
		Host:   r.Host,
		Path:   r.URL.Path,
	}
	q := r.URL.Query()
	if page == 1 {
		q.Del(QueryParamPage)
	} else {
		q.Set(QueryParamPage, strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()
	link := u.String()
	return &link
}

func requestScheme(r *http.Request) string {
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		return proto
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
