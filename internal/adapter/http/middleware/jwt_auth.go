package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/kernel808/banknet/internal/domain"
	"github.com/kernel808/banknet/internal/logger"
)

type contextKey string

const actorContextKey contextKey = "actor"

// TokenParser validates a bearer token and returns the identity it encodes.
type TokenParser interface {
	ParseToken(token string) (domain.Actor, error)
}

// JWTAuth rejects requests without a valid bearer token and stores the
// decoded actor on the request context.
func JWTAuth(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				logger.Info("jwt middleware missing authorization header", logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				http.Error(w, "authorization header is required", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "authorization header must be a bearer token", http.StatusUnauthorized)
				return
			}

			actor, err := parser.ParseToken(parts[1])
			if err != nil {
				logger.Info("jwt middleware invalid token", logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), actorContextKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ActorFromContext returns the authenticated actor stored by JWTAuth.
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(domain.Actor)
	return actor, ok
}
