package custom_test

import (
	"context"
	"encoding/json"
	"image"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adrianliechti/lector/pkg/detector"
	"github.com/adrianliechti/lector/pkg/detector/custom"

	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	var request custom.DetectRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))

		json.NewEncoder(w).Encode(custom.DetectResponse{
			Polygons: [][][2]int{
				{{5, 5}, {50, 5}, {50, 20}, {5, 20}},
			},
		})
	}))

	defer server.Close()

	c, err := custom.New(server.URL, custom.WithDevice("cuda:0"))
	require.NoError(t, err)

	polygons, err := c.Detect(context.Background(), image.NewRGBA(image.Rect(0, 0, 60, 30)), &detector.DetectOptions{
		Language: "eng",
	})

	require.NoError(t, err)

	require.NotEmpty(t, request.Image)
	require.Equal(t, "eng", request.Language)
	require.Equal(t, "cuda:0", request.Device)

	require.Len(t, polygons, 1)
	require.Equal(t, image.Rect(5, 5, 50, 20), polygons[0].Bounds())
}

func TestDetectError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "detector offline", http.StatusServiceUnavailable)
	}))

	defer server.Close()

	c, err := custom.New(server.URL)
	require.NoError(t, err)

	_, err = c.Detect(context.Background(), image.NewRGBA(image.Rect(0, 0, 10, 10)), nil)
	require.ErrorContains(t, err, "detector offline")
}
