package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/adrianliechti/lector/pkg/pipeline"
)

func (h *Handler) handleOCR(w http.ResponseWriter, r *http.Request) {
	p, err := h.Pipeline(valuePipeline(r))

	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	file, err := h.readFile(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if file.ContentType != "" && !strings.HasPrefix(file.ContentType, "image/") {
		writeError(w, http.StatusBadRequest, errors.New("file must be an image"))
		return
	}

	options := &pipeline.RunOptions{
		Language: valueLanguage(r),
	}

	result, err := p.Run(r.Context(), file.Content, options)

	if err != nil {
		writeError(w, convertStatus(err), err)
		return
	}

	writeJson(w, convertResponse(result))
}
