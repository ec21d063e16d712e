package api

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/adrianliechti/lector/pkg/imaging"
	"github.com/adrianliechti/lector/pkg/pipeline"
)

type file struct {
	Name string

	Content     []byte
	ContentType string
}

func valuePipeline(r *http.Request) string {
	if val := r.FormValue("pipeline"); val != "" {
		return val
	}

	return ""
}

func valueLanguage(r *http.Request) string {
	if val := r.FormValue("lang"); val != "" {
		return val
	}

	if val := r.FormValue("language"); val != "" {
		return val
	}

	return ""
}

func (h *Handler) readFile(r *http.Request) (*file, error) {
	if f, header, err := r.FormFile("file"); err == nil {
		data, err := io.ReadAll(f)

		if err != nil {
			return nil, err
		}

		return &file{
			Name: header.Filename,

			Content:     data,
			ContentType: normalizeContentType(header.Filename, header.Header.Get("Content-Type")),
		}, nil
	}

	contentType := r.Header.Get("Content-Type")
	contentDisposition := r.Header.Get("Content-Disposition")

	_, params, _ := mime.ParseMediaType(contentDisposition)

	filename := params["filename*"]
	filename = strings.TrimPrefix(filename, "UTF-8''")
	filename = strings.TrimPrefix(filename, "utf-8''")

	if filename == "" {
		filename = params["filename"]
	}

	data, err := io.ReadAll(r.Body)

	if err != nil {
		return nil, err
	}

	return &file{
		Name: filename,

		Content:     data,
		ContentType: normalizeContentType(filename, contentType),
	}, nil
}

// normalizeContentType falls back to the file extension when a client
// uploads without a specific content type.
func normalizeContentType(name, contentType string) string {
	if contentType == "" || contentType == "application/octet-stream" {
		return mime.TypeByExtension(path.Ext(name))
	}

	return contentType
}

func convertResponse(result *pipeline.Result) Response {
	regions := make([]Region, 0, len(result.Regions))

	for _, r := range result.Regions {
		bounds := r.Polygon.Bounds()

		regions = append(regions, Region{
			Coordinates: [2][2]int{
				{bounds.Min.X, bounds.Min.Y},
				{bounds.Max.X, bounds.Max.Y},
			},

			Text:       r.Text,
			Confidence: r.Confidence,
		})
	}

	return Response{
		Success: true,
		Message: fmt.Sprintf("Successfully processed image. Found %d text regions.", len(regions)),

		Results: regions,

		TotalBoxes: len(regions),
	}
}

func convertStatus(err error) int {
	if errors.Is(err, imaging.ErrInvalidImage) || errors.Is(err, imaging.ErrInvalidEncoding) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
