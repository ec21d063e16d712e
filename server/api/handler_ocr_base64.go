package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adrianliechti/lector/pkg/imaging"
	"github.com/adrianliechti/lector/pkg/pipeline"
)

func (h *Handler) handleOCRBase64(w http.ResponseWriter, r *http.Request) {
	var req RecognizeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	if req.Image == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing image_base64"))
		return
	}

	p, err := h.Pipeline(valuePipeline(r))

	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	data, err := imaging.FromBase64(req.Image)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	language := req.Language

	if language == "" {
		language = valueLanguage(r)
	}

	options := &pipeline.RunOptions{
		Language: language,
	}

	result, err := p.Run(r.Context(), data, options)

	if err != nil {
		writeError(w, convertStatus(err), err)
		return
	}

	writeJson(w, convertResponse(result))
}
