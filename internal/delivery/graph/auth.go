package graph

import (
	"context"
	"strings"

	"therapy-booking/pkg/autherr"
	"therapy-booking/pkg/jwt"

	"github.com/sirupsen/logrus"
)

// Guard runs before a protected resolver and can short-circuit it with a
// typed error. A guard may enrich the context for the resolver and for
// guards after it.
type Guard func(ctx context.Context) (context.Context, error)

// Protect runs the guards in order. The first failure wins and the resolver
// never executes.
func Protect(ctx context.Context, guards ...Guard) (context.Context, error) {
	for _, guard := range guards {
		next, err := guard(ctx)
		if err != nil {
			return nil, err
		}
		ctx = next
	}
	return ctx, nil
}

// TokenGate validates the bearer credential on protected operations.
type TokenGate struct {
	jwtService *jwt.JWTService
	log        *logrus.Logger
}

func NewTokenGate(jwtService *jwt.JWTService, log *logrus.Logger) *TokenGate {
	return &TokenGate{jwtService: jwtService, log: log}
}

// RequireAccessToken is the guard wrapped around every protected resolver.
// It extracts the bearer token from the Authorization header, verifies
// signature, expiry and token type, and stores the claims in the context.
// The identity behind a failing token is never revealed.
func (g *TokenGate) RequireAccessToken(ctx context.Context) (context.Context, error) {
	token, err := extractBearerToken(AuthorizationFromContext(ctx))
	if err != nil {
		return nil, err
	}

	claims, err := g.jwtService.ValidateToken(token)
	if err != nil {
		g.log.Warnf("Token decoding error: %+v", err)
		return nil, autherr.InvalidToken
	}

	if claims.TokenType != jwt.AccessToken {
		return nil, autherr.InvalidToken
	}

	return context.WithValue(ctx, claimsKey, claims), nil
}

// extractBearerToken pulls the token out of a "Bearer <token>" header value.
// Each malformation has its own error code.
func extractBearerToken(header string) (string, error) {
	if header == "" {
		return "", autherr.HeaderMissing
	}

	parts := strings.Fields(header)

	if !strings.EqualFold(parts[0], "bearer") {
		return "", autherr.InvalidScheme
	}
	if len(parts) == 1 {
		return "", autherr.TokenMissing
	}
	if len(parts) > 2 {
		return "", autherr.TooManyParts
	}

	return parts[1], nil
}
