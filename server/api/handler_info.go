package api

import (
	"net/http"
)

func (h *Handler) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJson(w, Info{
		Message: "OCR API Service",
		Status:  "running",

		Endpoints: map[string]string{
			"/v1/ocr":        "POST - Upload image file for OCR",
			"/v1/ocr/base64": "POST - Send base64 encoded image for OCR",
			"/health":        "GET - Health check",
		},
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_, detectorErr := h.Detector("")
	_, recognizerErr := h.Recognizer("")

	writeJson(w, Health{
		Status: "healthy",

		Models: map[string]bool{
			"detector":   detectorErr == nil,
			"recognizer": recognizerErr == nil,
		},
	})
}
