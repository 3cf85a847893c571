package graph

import (
	"context"
	"net/http"

	"therapy-booking/pkg/jwt"
)

type contextKey string

const (
	authorizationHeaderKey contextKey = "authorization_header"
	claimsKey              contextKey = "claims"
)

// WithAuthorizationHeader copies the Authorization header into the request
// context so resolver-level guards can see it. GraphQL resolvers only get a
// context, not the request.
func WithAuthorizationHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), authorizationHeaderKey, r.Header.Get("Authorization"))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthorizationFromContext returns the raw Authorization header value, empty
// when the header was absent.
func AuthorizationFromContext(ctx context.Context) string {
	header, _ := ctx.Value(authorizationHeaderKey).(string)
	return header
}

// ClaimsFromContext extracts the verified token claims placed there by the
// token gate.
func ClaimsFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*jwt.Claims)
	return claims, ok
}
