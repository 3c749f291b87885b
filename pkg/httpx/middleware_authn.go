package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/nibbleworks/forkful/pkg/slogx"
)

// TokenVerifier resolves an opaque bearer token to the owning user ID. It is
// implemented by the token service; verification failures of any kind return
// an error.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (userID string, err error)
}

// AuthnMiddleware authenticates requests carrying "Authorization: Bearer
// <token>" headers and injects the resolved user ID into the request context.
// Requests without a valid token never reach the wrapped handler.
func AuthnMiddleware(v TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			userID, err := v.VerifyToken(ctx, raw)
			if err != nil {
				writeBearerError(w, "token verification failed")
				log.Warn("token verify failed", "err", err)
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
