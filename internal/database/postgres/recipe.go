package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

const recipeDetailsColumns = `
	r.recipe_id, r.author_id, r.name, r.image, r.text, r.cooking_time, r.pub_date,
	u.user_id, u.email, u.username, u.first_name, u.last_name, u.created_at
`

// RecipeRepository implements the recipe repository for PostgreSQL
type RecipeRepository struct {
	db *pgxpool.Pool
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// CreateRecipe stores the recipe with its tag set and ingredient amounts in one transaction
func (r *RecipeRepository) CreateRecipe(ctx context.Context, authorID string, draft domain.RecipeDraft) (int64, error) {
	author, err := parseUserUUID(authorID)
	if err != nil {
		return 0, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	query := `
		INSERT INTO recipes (author_id, name, image, text, cooking_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING recipe_id
	`
	var recipeID int64
	err = tx.QueryRow(ctx, query, author, draft.Name, draft.Image, draft.Text, draft.CookingTime).Scan(&recipeID)
	if err != nil {
		return 0, mapRecipeWriteError(ErrMsgFailedToInsertRecipe, err)
	}

	if err := insertRecipeRelations(ctx, tx, recipeID, draft); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return recipeID, nil
}

// UpdateRecipe overwrites the scalar fields and replaces the whole tag and
// ingredient sets of the recipe in one transaction
func (r *RecipeRepository) UpdateRecipe(ctx context.Context, recipeID int64, draft domain.RecipeDraft) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	query := `
		UPDATE recipes
		SET name = $2, image = $3, text = $4, cooking_time = $5
		WHERE recipe_id = $1
	`
	tag, err := tx.Exec(ctx, query, recipeID, draft.Name, draft.Image, draft.Text, draft.CookingTime)
	if err != nil {
		return mapRecipeWriteError(ErrMsgFailedToUpdateRecipe, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUnknownRecipe
	}

	if _, err := tx.Exec(ctx, `DELETE FROM recipe_tags WHERE recipe_id = $1`, recipeID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToClearRecipeTags, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipeID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToClearRecipeIngredients, err)
	}

	if err := insertRecipeRelations(ctx, tx, recipeID, draft); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// insertRecipeRelations writes the tag links (keeping submitted order) and ingredient amounts
func insertRecipeRelations(ctx context.Context, tx pgx.Tx, recipeID int64, draft domain.RecipeDraft) error {
	tagQuery := `
		INSERT INTO recipe_tags (recipe_id, tag_id, position)
		SELECT $1::bigint, t.tag_id, t.ord::smallint
		FROM unnest($2::bigint[]) WITH ORDINALITY AS t(tag_id, ord)
	`
	if _, err := tx.Exec(ctx, tagQuery, recipeID, draft.TagIDs); err != nil {
		return mapRecipeWriteError(ErrMsgFailedToInsertRecipeTags, err)
	}

	ingredientIDs := make([]int64, len(draft.Ingredients))
	amounts := make([]int, len(draft.Ingredients))
	for i, in := range draft.Ingredients {
		ingredientIDs[i] = in.IngredientID
		amounts[i] = in.Amount
	}

	ingredientQuery := `
		INSERT INTO recipe_ingredients (recipe_id, ingredient_id, amount)
		SELECT $1::bigint, u.ingredient_id, u.amount
		FROM unnest($2::bigint[], $3::integer[]) AS u(ingredient_id, amount)
	`
	narrowed, err := int32s(amounts)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, ingredientQuery, recipeID, ingredientIDs, narrowed); err != nil {
		return mapRecipeWriteError(ErrMsgFailedToInsertRecipeIngredients, err)
	}
	return nil
}

// mapRecipeWriteError turns constraint violations raised by recipe writes into domain errors
func mapRecipeWriteError(msg string, err error) error {
	code, constraint := pgErrorCode(err)
	switch code {
	case PgErrorCodeUniqueViolation:
		switch constraint {
		case ConstraintRecipeAuthorNameKey:
			return domain.ErrDuplicateRecipeName
		case ConstraintRecipeTagsPkey:
			return domain.ErrDuplicateTags
		case ConstraintRecipeIngrPkey:
			return domain.ErrDuplicateIngredient
		}
	case PgErrorCodeForeignKeyViolation:
		switch constraint {
		case ConstraintRecipeTagsTag:
			return domain.ErrUnknownTag
		case ConstraintRecipeIngredient:
			return domain.ErrUnknownIngredient
		case ConstraintRecipeAuthor:
			return domain.ErrUserNotFound
		}
	case PgErrorCodeCheckViolation:
		if constraint == ConstraintRecipeCookingTime {
			return domain.ErrInvalidCookingTime
		}
		return domain.ErrInvalidAmount
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// DeleteRecipe removes the recipe; tag links, amounts and ledger entries cascade
func (r *RecipeRepository) DeleteRecipe(ctx context.Context, recipeID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM recipes WHERE recipe_id = $1`, recipeID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteRecipe, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUnknownRecipe
	}
	return nil
}

// GetRecipeByID returns the bare recipe row or domain.ErrUnknownRecipe
func (r *RecipeRepository) GetRecipeByID(ctx context.Context, recipeID int64) (*domain.Recipe, error) {
	query := `
		SELECT recipe_id, author_id, name, image, text, cooking_time, pub_date
		FROM recipes
		WHERE recipe_id = $1
	`
	var rec domain.Recipe
	err := r.db.QueryRow(ctx, query, recipeID).Scan(
		&rec.ID, &rec.AuthorID, &rec.Name, &rec.Image, &rec.Text, &rec.CookingTime, &rec.PubDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUnknownRecipe
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecipe, err)
	}
	return &rec, nil
}

// GetRecipeDetails returns the recipe with its author, ordered tags and ingredients
func (r *RecipeRepository) GetRecipeDetails(ctx context.Context, recipeID int64) (*domain.RecipeDetails, error) {
	query := `SELECT ` + recipeDetailsColumns + `
		FROM recipes r
		JOIN users u ON u.user_id = r.author_id
		WHERE r.recipe_id = $1
	`
	rows, err := r.db.Query(ctx, query, recipeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecipe, err)
	}
	details, err := pgx.CollectExactlyOneRow(rows, scanRecipeDetails)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUnknownRecipe
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecipe, err)
	}

	list := []domain.RecipeDetails{details}
	if err := r.loadRelations(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

// ListRecipes returns one page of recipes matching filter, newest first, plus the total count
func (r *RecipeRepository) ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.RecipeDetails, int, error) {
	where, args, ok := recipeFilterClause(filter)
	if !ok {
		return []domain.RecipeDetails{}, 0, nil
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM recipes r` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountRecipes, err)
	}

	args = append(args, filter.Limit, filter.Offset())
	query := fmt.Sprintf(`SELECT %s
		FROM recipes r
		JOIN users u ON u.user_id = r.author_id
		%s
		ORDER BY r.pub_date DESC, r.recipe_id DESC
		LIMIT $%d OFFSET $%d
	`, recipeDetailsColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRecipes, err)
	}
	list, err := pgx.CollectRows(rows, scanRecipeDetails)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRecipes, err)
	}

	if err := r.loadRelations(ctx, list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// recipeFilterClause builds the WHERE clause for filter over alias r.
// ok is false when the filter cannot match any row.
func recipeFilterClause(filter domain.RecipeFilter) (where string, args []any, ok bool) {
	var conds []string
	param := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(filter.TagSlugs) > 0 {
		conds = append(conds, `EXISTS (
			SELECT 1 FROM recipe_tags rt JOIN tags t ON t.tag_id = rt.tag_id
			WHERE rt.recipe_id = r.recipe_id AND t.slug = ANY(`+param(filter.TagSlugs)+`))`)
	}

	if filter.AuthorID != "" {
		author, err := uuid.Parse(filter.AuthorID)
		if err != nil {
			return "", nil, false
		}
		conds = append(conds, `r.author_id = `+param(author))
	}

	if filter.ViewerID != "" && (filter.Favorited || filter.InShoppingCart) {
		viewer, err := uuid.Parse(filter.ViewerID)
		if err != nil {
			return "", nil, false
		}
		v := param(viewer)
		if filter.Favorited {
			conds = append(conds, `EXISTS (SELECT 1 FROM favorites f WHERE f.recipe_id = r.recipe_id AND f.user_id = `+v+`)`)
		}
		if filter.InShoppingCart {
			conds = append(conds, `EXISTS (SELECT 1 FROM shopping_cart c WHERE c.recipe_id = r.recipe_id AND c.user_id = `+v+`)`)
		}
	}

	if len(conds) == 0 {
		return "", args, true
	}
	return " WHERE " + strings.Join(conds, " AND "), args, true
}

// loadRelations fills Tags and Ingredients of every recipe in list
func (r *RecipeRepository) loadRelations(ctx context.Context, list []domain.RecipeDetails) error {
	if len(list) == 0 {
		return nil
	}

	ids := make([]int64, len(list))
	index := make(map[int64]int, len(list))
	for i := range list {
		ids[i] = list[i].ID
		index[list[i].ID] = i
		list[i].Tags = []domain.Tag{}
		list[i].Ingredients = []domain.IngredientAmount{}
	}

	tagRows, err := r.db.Query(ctx, `
		SELECT rt.recipe_id, t.tag_id, t.name, t.color, t.slug
		FROM recipe_tags rt
		JOIN tags t ON t.tag_id = rt.tag_id
		WHERE rt.recipe_id = ANY($1)
		ORDER BY rt.recipe_id, rt.position
	`, ids)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToQueryRecipeTags, err)
	}
	defer tagRows.Close()
	for tagRows.Next() {
		var recipeID int64
		var t domain.Tag
		if err := tagRows.Scan(&recipeID, &t.ID, &t.Name, &t.Color, &t.Slug); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToQueryRecipeTags, err)
		}
		i := index[recipeID]
		list[i].Tags = append(list[i].Tags, t)
	}
	if err := tagRows.Err(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToQueryRecipeTags, err)
	}

	ingredientRows, err := r.db.Query(ctx, `
		SELECT ri.recipe_id, i.ingredient_id, i.name, i.measurement_unit, ri.amount
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.ingredient_id = ri.ingredient_id
		WHERE ri.recipe_id = ANY($1)
		ORDER BY ri.recipe_id, i.name, i.measurement_unit
	`, ids)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToQueryRecipeIngredients, err)
	}
	defer ingredientRows.Close()
	for ingredientRows.Next() {
		var recipeID int64
		var a domain.IngredientAmount
		if err := ingredientRows.Scan(&recipeID, &a.IngredientID, &a.Name, &a.MeasurementUnit, &a.Amount); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToQueryRecipeIngredients, err)
		}
		i := index[recipeID]
		list[i].Ingredients = append(list[i].Ingredients, a)
	}
	if err := ingredientRows.Err(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToQueryRecipeIngredients, err)
	}
	return nil
}

// RecipeNameTaken reports whether authorID already owns a recipe named name, other than excludeID
func (r *RecipeRepository) RecipeNameTaken(ctx context.Context, authorID, name string, excludeID int64) (bool, error) {
	author, err := uuid.Parse(authorID)
	if err != nil {
		return false, nil
	}

	var taken bool
	err = r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM recipes
			WHERE author_id = $1 AND name = $2 AND recipe_id <> $3
		)
	`, author, name, excludeID).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckRecipeName, err)
	}
	return taken, nil
}

// GetViewerRelations loads which of recipeIDs the viewer favorited or carted and
// which of authorIDs the viewer follows
func (r *RecipeRepository) GetViewerRelations(ctx context.Context, viewerID string, recipeIDs []int64, authorIDs []string) (*domain.ViewerRelations, error) {
	rel := &domain.ViewerRelations{
		Favorited:      map[int64]bool{},
		InShoppingCart: map[int64]bool{},
		Following:      map[string]bool{},
	}
	viewer, err := uuid.Parse(viewerID)
	if err != nil {
		return rel, nil
	}

	if len(recipeIDs) > 0 {
		if err := r.collectRecipeIDs(ctx, `SELECT recipe_id FROM favorites WHERE user_id = $1 AND recipe_id = ANY($2)`,
			viewer, recipeIDs, rel.Favorited); err != nil {
			return nil, err
		}
		if err := r.collectRecipeIDs(ctx, `SELECT recipe_id FROM shopping_cart WHERE user_id = $1 AND recipe_id = ANY($2)`,
			viewer, recipeIDs, rel.InShoppingCart); err != nil {
			return nil, err
		}
	}

	authors := parseUserUUIDs(authorIDs)
	if len(authors) > 0 {
		rows, err := r.db.Query(ctx,
			`SELECT author_id FROM follows WHERE follower_id = $1 AND author_id = ANY($2)`, viewer, authors)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryViewerRelations, err)
		}
		ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryViewerRelations, err)
		}
		for _, id := range ids {
			rel.Following[id] = true
		}
	}
	return rel, nil
}

func (r *RecipeRepository) collectRecipeIDs(ctx context.Context, query string, viewer uuid.UUID, recipeIDs []int64, into map[int64]bool) error {
	rows, err := r.db.Query(ctx, query, viewer, recipeIDs)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToQueryViewerRelations, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToQueryViewerRelations, err)
	}
	for _, id := range ids {
		into[id] = true
	}
	return nil
}

func scanRecipeDetails(row pgx.CollectableRow) (domain.RecipeDetails, error) {
	var d domain.RecipeDetails
	err := row.Scan(
		&d.ID, &d.AuthorID, &d.Name, &d.Image, &d.Text, &d.CookingTime, &d.PubDate,
		&d.Author.ID, &d.Author.Email, &d.Author.Username, &d.Author.FirstName, &d.Author.LastName, &d.Author.CreatedAt,
	)
	return d, err
}
