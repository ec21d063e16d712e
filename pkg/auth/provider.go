package auth

import (
	"context"
	"net/http"
)

type contextKey string

// Context keys under which authorizers record the caller identity.
const (
	UserContextKey  contextKey = "auth.user"
	EmailContextKey contextKey = "auth.email"
)

// Provider authorizes an incoming request. On success it returns the
// request context, optionally enriched with the caller identity.
type Provider interface {
	Authenticate(ctx context.Context, r *http.Request) (context.Context, error)
}
