package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/discussion-backend/pkg/ctxutil"
)

// UserTokenHeader carries the access token for clients that cannot set
// the Authorization header.
const UserTokenHeader = "x-authenticated-user-token"

type identityResolver interface {
	ResolveUser(ctx context.Context, token string) (string, error)
}

// Auth resolves the caller from the user token header or a Bearer token and
// stores the user id in the request context. Requests without a token pass
// through anonymously; operations that need an identity reject them later.
func Auth(resolver identityResolver, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			userID, err := resolver.ResolveUser(r.Context(), token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected",
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					slog.String("error", err.Error()),
				)
				writeFailure(w, r, http.StatusUnauthorized, "invalid user token")
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request) string {
	if token := strings.TrimSpace(r.Header.Get(UserTokenHeader)); token != "" {
		return token
	}
	return extractBearerToken(r)
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "bearer "
	if len(auth) < len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
