// Package autherr defines the authentication error taxonomy surfaced to API
// callers. Each value carries a stable machine-readable code and a human
// description; none of them expose internal detail.
package autherr

import "net/http"

type Error struct {
	Code        string
	Description string
	Status      int
}

func (e *Error) Error() string {
	return e.Description
}

// Extensions satisfies the resolver error contract of graph-gophers, so the
// code and status reach the caller inside the GraphQL error object.
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code":   e.Code,
		"status": e.Status,
	}
}

var (
	HeaderMissing = &Error{
		Code:        "authorization_header_missing",
		Description: "Authorization header is expected",
		Status:      http.StatusUnauthorized,
	}
	InvalidScheme = &Error{
		Code:        "invalid_scheme",
		Description: "Authorization header must start with Bearer",
		Status:      http.StatusUnauthorized,
	}
	TokenMissing = &Error{
		Code:        "token_missing",
		Description: "Token not found",
		Status:      http.StatusUnauthorized,
	}
	TooManyParts = &Error{
		Code:        "too_many_parts",
		Description: "Authorization header must be Bearer token",
		Status:      http.StatusUnauthorized,
	}
	InvalidToken = &Error{
		Code:        "invalid_token",
		Description: "Your token could not be validated",
		Status:      http.StatusUnauthorized,
	}
	InvalidCredentials = &Error{
		Code:        "invalid_credentials",
		Description: "Authentication failure: username or password not valid",
		Status:      http.StatusUnauthorized,
	}
)
