package header_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adrianliechti/lector/pkg/auth"
	"github.com/adrianliechti/lector/pkg/auth/header"

	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	p, err := header.New()
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/v1/ocr", nil)
	r.Header.Set("X-Forwarded-User", "someone")
	r.Header.Set("X-Forwarded-Email", "someone@example.com")

	ctx, err := p.Authenticate(context.Background(), r)
	require.NoError(t, err)

	require.Equal(t, "someone", ctx.Value(auth.UserContextKey))
	require.Equal(t, "someone@example.com", ctx.Value(auth.EmailContextKey))
}

func TestAuthenticateEmailFallback(t *testing.T) {
	p, err := header.New()
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/v1/ocr", nil)
	r.Header.Set("X-Forwarded-User", "someone@example.com")

	ctx, err := p.Authenticate(context.Background(), r)
	require.NoError(t, err)

	require.Equal(t, "someone@example.com", ctx.Value(auth.EmailContextKey))
}

func TestAuthenticateMissing(t *testing.T) {
	p, err := header.New()
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/v1/ocr", nil)

	_, err = p.Authenticate(context.Background(), r)
	require.Error(t, err)
}

func TestAuthenticateCustomHeaders(t *testing.T) {
	p, err := header.New(header.WithUserHeader("X-Auth-User"), header.WithEmailHeader("X-Auth-Email"))
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/v1/ocr", nil)
	r.Header.Set("X-Auth-User", "someone")

	ctx, err := p.Authenticate(context.Background(), r)
	require.NoError(t, err)

	require.Equal(t, "someone", ctx.Value(auth.UserContextKey))
}
