package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const UserIDKey ctxKey = "user_id"

const bearerPrefix = "Bearer "

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SessionAuthorizer . SessionAuthorizer
type SessionAuthorizer interface {
	Authorize(ctx context.Context, token string) (uint, error)
}

type AuthMiddleware struct {
	logs       *zap.SugaredLogger
	authorizer SessionAuthorizer
}

func NewAuthMiddleware(logger *zap.SugaredLogger, authorizer SessionAuthorizer) *AuthMiddleware {
	return &AuthMiddleware{
		logs:       logger,
		authorizer: authorizer,
	}
}

// Authenticate rejects requests without a valid bearer session token and
// stores the session user id in the request context.
func (m *AuthMiddleware) Authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := RequestIDFromContext(r.Context())

		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			m.unauthorized(w, "bearer token is required")
			m.logs.Warnw("missing bearer token",
				"path", r.URL.Path,
				"request_id", requestID)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		userID, err := m.authorizer.Authorize(r.Context(), token)
		if err != nil {
			m.unauthorized(w, "invalid or expired session")
			m.logs.Warnw("session rejected",
				"error", err,
				"path", r.URL.Path,
				"request_id", requestID)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next(w, r.WithContext(ctx))
	}
}

func (m *AuthMiddleware) unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	resp := map[string]string{
		"message": "Authentication failed",
		"error":   detail,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		m.logs.Errorw("failed to encode response", "error", err)
	}
}

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(UserIDKey).(uint)
	return userID, ok && userID != 0
}
