package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/assethub/hub-api/internal/pkg/response"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// Identity reads the user id resolved by the upstream auth layer from the
// X-User-ID header and stores it in the request context. Requests without
// the header pass through anonymously.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			response.Unauthorized(w, "Invalid user identity")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUser rejects requests that carry no resolved identity.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUserID(r.Context()) == uuid.Nil {
			response.Unauthorized(w, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID extracts the user ID from context, uuid.Nil when anonymous.
func GetUserID(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(UserIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// UserIDPtr returns the user ID as a pointer, nil when anonymous.
func UserIDPtr(ctx context.Context) *uuid.UUID {
	if id, ok := ctx.Value(UserIDKey).(uuid.UUID); ok && id != uuid.Nil {
		return &id
	}
	return nil
}
