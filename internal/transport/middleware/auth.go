package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/carecompanion-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

const authRealm = `Bearer realm="carecompanion"`

// Auth requires a bearer token and stores its subject as the acting user.
// Rejections carry an RFC 6750 challenge; a token that was presented but
// failed validation is flagged invalid_token.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				challenge(w, authRealm)
				return
			}
			userID, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				challenge(w, authRealm+`, error="invalid_token"`)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), userID)))
		})
	}
}

func challenge(w http.ResponseWriter, header string) {
	w.Header().Set("WWW-Authenticate", header)
	writeError(w, http.StatusUnauthorized, "unauthorized")
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
