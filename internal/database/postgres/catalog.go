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

// CatalogRepository implements the tag and ingredient catalog for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListTags returns every tag ordered by name
func (r *CatalogRepository) ListTags(ctx context.Context) ([]domain.Tag, error) {
	rows, err := r.db.Query(ctx, `SELECT tag_id, name, color, slug FROM tags ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTags, err)
	}
	tags, err := pgx.CollectRows(rows, scanTag)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTags, err)
	}
	return tags, nil
}

// GetTagByID returns a tag, or nil when it does not exist
func (r *CatalogRepository) GetTagByID(ctx context.Context, id int64) (*domain.Tag, error) {
	rows, err := r.db.Query(ctx, `SELECT tag_id, name, color, slug FROM tags WHERE tag_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTag, err)
	}
	tag, err := pgx.CollectExactlyOneRow(rows, scanTag)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTag, err)
	}
	return &tag, nil
}

// GetTagsByIDs returns the tags among ids that exist, in id order
func (r *CatalogRepository) GetTagsByIDs(ctx context.Context, ids []int64) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return []domain.Tag{}, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT tag_id, name, color, slug FROM tags WHERE tag_id = ANY($1) ORDER BY tag_id`, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTags, err)
	}
	tags, err := pgx.CollectRows(rows, scanTag)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTags, err)
	}
	return tags, nil
}

// UpsertTags inserts tags, skipping any whose name, color or slug is already taken.
// Existing tags are never modified. Returns the number of rows written.
func (r *CatalogRepository) UpsertTags(ctx context.Context, tags []domain.Tag) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	query := `
		INSERT INTO tags (name, color, slug)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
	`
	written := 0
	for _, t := range tags {
		tag, err := tx.Exec(ctx, query, t.Name, t.Color, t.Slug)
		if err != nil {
			return 0, fmt.Errorf("%s %q: %w", ErrMsgFailedToUpsertTag, t.Slug, err)
		}
		written += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return written, nil
}

// ListIngredients returns ingredients ordered by name, optionally restricted to
// names starting with namePrefix (case-insensitive)
func (r *CatalogRepository) ListIngredients(ctx context.Context, namePrefix string) ([]domain.Ingredient, error) {
	query := `
		SELECT ingredient_id, name, measurement_unit
		FROM ingredients
		WHERE $1::text = '' OR LOWER(name) LIKE $2
		ORDER BY name, measurement_unit
	`
	pattern := escapeLike(strings.ToLower(namePrefix)) + "%"
	rows, err := r.db.Query(ctx, query, namePrefix, pattern)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryIngredients, err)
	}
	ingredients, err := pgx.CollectRows(rows, scanIngredient)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryIngredients, err)
	}
	return ingredients, nil
}

// GetIngredientByID returns an ingredient, or nil when it does not exist
func (r *CatalogRepository) GetIngredientByID(ctx context.Context, id int64) (*domain.Ingredient, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ingredient_id, name, measurement_unit FROM ingredients WHERE ingredient_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetIngredient, err)
	}
	ingredient, err := pgx.CollectExactlyOneRow(rows, scanIngredient)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetIngredient, err)
	}
	return &ingredient, nil
}

// GetIngredientsByIDs returns the ingredients among ids that exist, in id order
func (r *CatalogRepository) GetIngredientsByIDs(ctx context.Context, ids []int64) ([]domain.Ingredient, error) {
	if len(ids) == 0 {
		return []domain.Ingredient{}, nil
	}
	rows, err := r.db.Query(ctx, `
		SELECT ingredient_id, name, measurement_unit
		FROM ingredients
		WHERE ingredient_id = ANY($1)
		ORDER BY ingredient_id
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryIngredients, err)
	}
	ingredients, err := pgx.CollectRows(rows, scanIngredient)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryIngredients, err)
	}
	return ingredients, nil
}

// UpsertIngredients inserts ingredients that are not in the catalog yet.
// Returns the number of new rows.
func (r *CatalogRepository) UpsertIngredients(ctx context.Context, ingredients []domain.Ingredient) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	query := `
		INSERT INTO ingredients (name, measurement_unit)
		VALUES ($1, $2)
		ON CONFLICT ON CONSTRAINT ingredients_name_unit_key DO NOTHING
	`
	written := 0
	for _, in := range ingredients {
		tag, err := tx.Exec(ctx, query, in.Name, in.MeasurementUnit)
		if err != nil {
			return 0, fmt.Errorf("%s %q: %w", ErrMsgFailedToUpsertIngredient, in.Name, err)
		}
		written += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return written, nil
}

func scanTag(row pgx.CollectableRow) (domain.Tag, error) {
	var t domain.Tag
	err := row.Scan(&t.ID, &t.Name, &t.Color, &t.Slug)
	return t, err
}

func scanIngredient(row pgx.CollectableRow) (domain.Ingredient, error) {
	var in domain.Ingredient
	err := row.Scan(&in.ID, &in.Name, &in.MeasurementUnit)
	return in, err
}

// escapeLike escapes LIKE wildcards so user input matches literally
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
