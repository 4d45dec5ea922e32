package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// ledgerTables maps each ledger set to its table; set names never reach SQL directly
var ledgerTables = map[domain.LedgerSet]string{
	domain.LedgerFavorites:    "favorites",
	domain.LedgerShoppingCart: "shopping_cart",
}

// LedgerRepository implements favorites and shopping cart membership for PostgreSQL
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// AddEntry records recipeID in the user's set and returns the recipe summary.
// The unique (user_id, recipe_id) constraint decides concurrent duplicate adds.
func (r *LedgerRepository) AddEntry(ctx context.Context, set domain.LedgerSet, userID string, recipeID int64) (*domain.RecipeSummary, error) {
	table, ok := ledgerTables[set]
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgUnknownLedgerSet, set)
	}
	user, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		WITH ins AS (
			INSERT INTO %s (user_id, recipe_id)
			VALUES ($1, $2)
			RETURNING recipe_id
		)
		SELECT r.recipe_id, r.name, r.image, r.cooking_time
		FROM recipes r
		JOIN ins ON ins.recipe_id = r.recipe_id
	`, table)

	var s domain.RecipeSummary
	err = r.db.QueryRow(ctx, query, user, recipeID).Scan(&s.ID, &s.Name, &s.Image, &s.CookingTime)
	if err != nil {
		code, constraint := pgErrorCode(err)
		switch {
		case code == PgErrorCodeUniqueViolation:
			return nil, domain.ErrAlreadyMember
		case code == PgErrorCodeForeignKeyViolation && strings.HasSuffix(constraint, "recipe_id_fkey"):
			return nil, domain.ErrUnknownRecipe
		case code == PgErrorCodeForeignKeyViolation:
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertEntry, err)
	}
	return &s, nil
}

// RemoveEntry deletes recipeID from the user's set.
// Fails with domain.ErrUnknownRecipe when the recipe does not exist and
// domain.ErrNotMember when it exists but is not in the set.
func (r *LedgerRepository) RemoveEntry(ctx context.Context, set domain.LedgerSet, userID string, recipeID int64) error {
	table, ok := ledgerTables[set]
	if !ok {
		return fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgUnknownLedgerSet, set)
	}
	user, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1 AND recipe_id = $2`, table)
	tag, err := r.db.Exec(ctx, query, user, recipeID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteEntry, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM recipes WHERE recipe_id = $1)`, recipeID).Scan(&exists); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToGetRecipe, err)
	}
	if !exists {
		return domain.ErrUnknownRecipe
	}
	return domain.ErrNotMember
}

// GetCartIngredients returns one row per (cart recipe, ingredient) pair, unaggregated
func (r *LedgerRepository) GetCartIngredients(ctx context.Context, userID string) ([]domain.CartIngredient, error) {
	user, err := parseUserUUID(userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return []domain.CartIngredient{}, nil
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT i.name, i.measurement_unit, ri.amount
		FROM shopping_cart c
		JOIN recipe_ingredients ri ON ri.recipe_id = c.recipe_id
		JOIN ingredients i ON i.ingredient_id = ri.ingredient_id
		WHERE c.user_id = $1
	`, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryCartContents, err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CartIngredient, error) {
		var c domain.CartIngredient
		err := row.Scan(&c.Name, &c.MeasurementUnit, &c.Amount)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryCartContents, err)
	}
	return items, nil
}
