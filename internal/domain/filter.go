package domain

// PageRequest selects a 1-based page of a listing
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip for the page
func (p PageRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Page is one page of a listing together with the total row count
type Page[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

// RecipeFilter narrows a recipe listing.
// Favorited/InShoppingCart are applied for ViewerID only and ignored when it is empty.
type RecipeFilter struct {
	TagSlugs       []string
	AuthorID       string
	ViewerID       string
	Favorited      bool
	InShoppingCart bool
	PageRequest
}
