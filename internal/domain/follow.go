package domain

// FollowedAuthor is an author in the actor's subscriptions, with their recent recipes
type FollowedAuthor struct {
	UserProfile
	RecipesCount int             `json:"recipes_count"`
	Recipes      []RecipeSummary `json:"recipes"`
}
