package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error(LogMsgFailedToRollback, "error", err)
	}
}

// parseUserUUID parses a user ID string to uuid.UUID with consistent error message.
// An unparsable id cannot match any row, so it is reported as a missing user.
func parseUserUUID(userID string) (uuid.UUID, error) {
	u, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s: %v", domain.ErrUserNotFound, ErrMsgInvalidUserID, err)
	}
	return u, nil
}

// parseUserUUIDs parses a batch of user ids, skipping unparsable ones
func parseUserUUIDs(userIDs []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(userIDs))
	for _, id := range userIDs {
		if u, err := uuid.Parse(id); err == nil {
			ids = append(ids, u)
		}
	}
	return ids
}

// pgErrorCode returns the SQLSTATE of err and the violated constraint, if err is a PostgreSQL error
func pgErrorCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

func isUniqueViolation(err error) bool {
	code, _ := pgErrorCode(err)
	return code == PgErrorCodeUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	code, _ := pgErrorCode(err)
	return code == PgErrorCodeForeignKeyViolation
}

func isCheckViolation(err error) bool {
	code, _ := pgErrorCode(err)
	return code == PgErrorCodeCheckViolation
}

// int32s narrows amounts for an INTEGER[] parameter, refusing values that do not fit
func int32s(values []int) ([]int32, error) {
	out := make([]int32, len(values))
	for i, v := range values {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("%w: "+ErrMsgAmountOutOfRangeFmt, domain.ErrInvalidAmount, v)
		}
		out[i] = int32(v)
	}
	return out, nil
}
