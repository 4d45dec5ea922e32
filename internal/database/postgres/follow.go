package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// FollowRepository implements follow edges for PostgreSQL
type FollowRepository struct {
	db *pgxpool.Pool
}

// NewFollowRepository creates a new FollowRepository
func NewFollowRepository(db *pgxpool.Pool) *FollowRepository {
	return &FollowRepository{db: db}
}

// CreateFollow inserts the edge followerID -> authorID
func (r *FollowRepository) CreateFollow(ctx context.Context, followerID, authorID string) error {
	follower, err := parseUserUUID(followerID)
	if err != nil {
		return err
	}
	author, err := parseUserUUID(authorID)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `INSERT INTO follows (follower_id, author_id) VALUES ($1, $2)`, follower, author)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrAlreadyFollowing
		case isCheckViolation(err):
			return domain.ErrSelfFollow
		case isForeignKeyViolation(err):
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertFollow, err)
	}
	return nil
}

// DeleteFollow removes the edge or fails with domain.ErrNotFollowing
func (r *FollowRepository) DeleteFollow(ctx context.Context, followerID, authorID string) error {
	follower, err := parseUserUUID(followerID)
	if err != nil {
		return err
	}
	author, err := parseUserUUID(authorID)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM follows WHERE follower_id = $1 AND author_id = $2`, follower, author)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteFollow, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFollowing
	}
	return nil
}

// IsFollowing reports whether the edge followerID -> authorID exists
func (r *FollowRepository) IsFollowing(ctx context.Context, followerID, authorID string) (bool, error) {
	follower, err := parseUserUUID(followerID)
	if err != nil {
		return false, nil
	}
	author, err := parseUserUUID(authorID)
	if err != nil {
		return false, nil
	}

	var exists bool
	err = r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = $1 AND author_id = $2)`,
		follower, author).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckFollow, err)
	}
	return exists, nil
}

// ListFollowedAuthors returns one page of authors followed by followerID, ordered by username
func (r *FollowRepository) ListFollowedAuthors(ctx context.Context, followerID string, page domain.PageRequest) ([]domain.User, int, error) {
	follower, err := parseUserUUID(followerID)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM follows WHERE follower_id = $1`, follower).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountFollowed, err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT u.user_id, u.email, u.username, u.first_name, u.last_name, u.created_at
		FROM follows f
		JOIN users u ON u.user_id = f.author_id
		WHERE f.follower_id = $1
		ORDER BY u.username
		LIMIT $2 OFFSET $3
	`, follower, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToQueryFollowed, err)
	}
	users, err := scanUsers(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToQueryFollowed, err)
	}
	return users, total, nil
}

// CountRecipesByAuthors returns the number of recipes of each author; authors without recipes are absent
func (r *FollowRepository) CountRecipesByAuthors(ctx context.Context, authorIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(authorIDs))
	authors := parseUserUUIDs(authorIDs)
	if len(authors) == 0 {
		return counts, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT author_id, COUNT(*)
		FROM recipes
		WHERE author_id = ANY($1)
		GROUP BY author_id
	`, authors)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCountAuthorRecipes, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCountAuthorRecipes, err)
		}
		counts[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCountAuthorRecipes, err)
	}
	return counts, nil
}

// GetRecentRecipesByAuthor returns up to limit most recent recipes of authorID.
// A negative limit returns all of them.
func (r *FollowRepository) GetRecentRecipesByAuthor(ctx context.Context, authorID string, limit int) ([]domain.RecipeSummary, error) {
	author, err := parseUserUUID(authorID)
	if err != nil {
		return nil, err
	}

	var sqlLimit any
	if limit >= 0 {
		sqlLimit = limit
	}

	rows, err := r.db.Query(ctx, `
		SELECT recipe_id, name, image, cooking_time
		FROM recipes
		WHERE author_id = $1
		ORDER BY pub_date DESC, recipe_id DESC
		LIMIT $2
	`, author, sqlLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRecentRecipes, err)
	}
	recipes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RecipeSummary, error) {
		var s domain.RecipeSummary
		err := row.Scan(&s.ID, &s.Name, &s.Image, &s.CookingTime)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRecentRecipes, err)
	}
	return recipes, nil
}
