package api

import (
	"encoding/json"
	"net/http"

	"github.com/adrianliechti/lector/config"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	*config.Config
}

func New(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		Config: cfg,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Get("/", h.handleInfo)
	r.Get("/health", h.handleHealth)

	r.Post("/v1/ocr", h.handleOCR)
	r.Post("/v1/ocr/base64", h.handleOCRBase64)
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

// writeError renders failures in the same envelope as results, so clients
// can rely on a single response shape.
func writeError(w http.ResponseWriter, code int, err error) {
	message := http.StatusText(code)

	if err != nil {
		message = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(Response{
		Success: false,
		Message: message,

		Results: []Region{},
	})
}
