package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// ActorKey is the context key for the acting user
	ActorKey contextKey = "actor"
)

// Identity attaches the acting user to the request context.
// A missing header means an anonymous actor; a header that is not a UUID is rejected with 401.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if raw == "" {
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), domain.Anonymous())))
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgMalformedUserID, "error", err)
			http.Error(w, ErrMsgMalformedUserID, http.StatusUnauthorized)
			return
		}

		ctx := WithActor(r.Context(), domain.ActorFor(id.String()))
		ctx = logger.WithUserID(ctx, id.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithActor returns a copy of ctx carrying actor
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, ActorKey, actor)
}

// ActorFromContext returns the acting user, or the anonymous actor when none is set
func ActorFromContext(ctx context.Context) domain.Actor {
	if actor, ok := ctx.Value(ActorKey).(domain.Actor); ok {
		return actor
	}
	return domain.Anonymous()
}
