package domain

import "time"

// IngredientAmountInput is one (ingredient, amount) pair of a submitted recipe
type IngredientAmountInput struct {
	IngredientID int64 `json:"id"`
	Amount       int   `json:"amount"`
}

// RecipeDraft is the candidate payload of a recipe create or update.
// TagIDs keeps the submitted order.
type RecipeDraft struct {
	Name        string                  `json:"name"`
	Image       string                  `json:"image"`
	Text        string                  `json:"text"`
	CookingTime int                     `json:"cooking_time"`
	TagIDs      []int64                 `json:"tags"`
	Ingredients []IngredientAmountInput `json:"ingredients"`
}

// Recipe is a persisted recipe row
type Recipe struct {
	ID          int64     `json:"id"`
	AuthorID    string    `json:"author_id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Text        string    `json:"text"`
	CookingTime int       `json:"cooking_time"`
	PubDate     time.Time `json:"pub_date"`
}

// IngredientAmount is an ingredient row of a recipe joined with its catalog entry
type IngredientAmount struct {
	IngredientID    int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RecipeSummary is the lightweight projection returned by ledger and follow views
type RecipeSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// Summary returns the lightweight projection of r
func (r Recipe) Summary() RecipeSummary {
	return RecipeSummary{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.Image,
		CookingTime: r.CookingTime,
	}
}

// RecipeDetails is a recipe loaded together with its tags, ingredients and author
type RecipeDetails struct {
	Recipe
	Author      User
	Tags        []Tag
	Ingredients []IngredientAmount
}

// ActorRelations holds the actor-dependent flags of a recipe view
type ActorRelations struct {
	IsFavorited      bool
	IsInShoppingCart bool
	FollowsAuthor    bool
}

// RecipeView is the full read projection of a recipe for an actor
type RecipeView struct {
	RecipeSummary
	Text             string             `json:"text"`
	Tags             []Tag              `json:"tags"`
	Author           UserProfile        `json:"author"`
	Ingredients      []IngredientAmount `json:"ingredients"`
	IsFavorited      bool               `json:"is_favorited"`
	IsInShoppingCart bool               `json:"is_in_shopping_cart"`
}

// NewRecipeView composes the read projection of d as seen with rel
func NewRecipeView(d RecipeDetails, rel ActorRelations) RecipeView {
	tags := d.Tags
	if tags == nil {
		tags = []Tag{}
	}
	ingredients := d.Ingredients
	if ingredients == nil {
		ingredients = []IngredientAmount{}
	}
	return RecipeView{
		RecipeSummary:    d.Summary(),
		Text:             d.Text,
		Tags:             tags,
		Author:           NewUserProfile(d.Author, rel.FollowsAuthor),
		Ingredients:      ingredients,
		IsFavorited:      rel.IsFavorited,
		IsInShoppingCart: rel.IsInShoppingCart,
	}
}

// ViewerRelations is the batch of actor-dependent flags for a set of recipes and authors
type ViewerRelations struct {
	Favorited      map[int64]bool
	InShoppingCart map[int64]bool
	Following      map[string]bool
}

// For returns the relations of the viewer to recipe d
func (v *ViewerRelations) For(d RecipeDetails) ActorRelations {
	if v == nil {
		return ActorRelations{}
	}
	return ActorRelations{
		IsFavorited:      v.Favorited[d.ID],
		IsInShoppingCart: v.InShoppingCart[d.ID],
		FollowsAuthor:    v.Following[d.AuthorID],
	}
}
