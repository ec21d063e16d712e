package server

import (
	"net/http"

	"github.com/adrianliechti/lector/config"
	"github.com/adrianliechti/lector/server/api"
	"github.com/adrianliechti/lector/server/mcp"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	*config.Config

	http.Server
}

func New(cfg *config.Config) (*Server, error) {
	s := &Server{
		Config: cfg,
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Use(s.handleAuth)

	apiHandler, err := api.New(cfg)

	if err != nil {
		return nil, err
	}

	apiHandler.Attach(r)

	mcpHandler, err := mcp.New(cfg)

	if err != nil {
		return nil, err
	}

	mcpHandler.Attach(r)

	s.Addr = cfg.Address
	s.Handler = otelhttp.NewHandler(r, "http")

	return s, nil
}

// handleAuth requires at least one authorizer to accept the request.
// The info and health endpoints stay public.
func (s *Server) handleAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(s.Authorizers) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		if r.URL.Path == "/" || r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		for _, a := range s.Authorizers {
			ctx, err := a.Authenticate(r.Context(), r)

			if err != nil {
				continue
			}

			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	})
}
