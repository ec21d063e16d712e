package opa

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/adrianliechti/lector/pkg/auth"

	"github.com/open-policy-agent/opa/v1/rego"
)

var _ auth.Provider = &Provider{}

// Provider evaluates incoming requests against a Rego policy. The
// policy receives method, path, headers and bearer token as input and
// must evaluate to true for the request to pass.
type Provider struct {
	query string

	prepared rego.PreparedEvalQuery
}

type Option func(*Provider)

func WithQuery(query string) Option {
	return func(p *Provider) {
		p.query = query
	}
}

func New(path string, options ...Option) (*Provider, error) {
	if path == "" {
		return nil, errors.New("invalid policy path")
	}

	p := &Provider{
		query: "data.lector.authz.allow",
	}

	for _, option := range options {
		option(p)
	}

	prepared, err := rego.New(
		rego.Query(p.query),
		rego.Load([]string{path}, nil),
	).PrepareForEval(context.Background())

	if err != nil {
		return nil, err
	}

	p.prepared = prepared

	return p, nil
}

func (p *Provider) Authenticate(ctx context.Context, r *http.Request) (context.Context, error) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	headers := map[string]string{}

	for k := range r.Header {
		headers[strings.ToLower(k)] = r.Header.Get(k)
	}

	input := map[string]any{
		"method":  r.Method,
		"path":    r.URL.Path,
		"token":   token,
		"headers": headers,
	}

	results, err := p.prepared.Eval(ctx, rego.EvalInput(input))

	if err != nil {
		return ctx, err
	}

	if !results.Allowed() {
		return ctx, errors.New("request not allowed")
	}

	return ctx, nil
}
