package paddle_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adrianliechti/lector/pkg/detector"
	"github.com/adrianliechti/lector/pkg/detector/paddle"

	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	var request paddle.DetectRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/predict/ocr_det", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))

		json.NewEncoder(w).Encode(paddle.DetectResponse{
			Status: "000",

			Results: [][]paddle.DetectResult{
				{
					{TextRegion: [][2]float64{{10, 20}, {100, 20}, {100, 50}, {10, 50}}},
					{TextRegion: [][2]float64{{12.7, 60.2}, {80.9, 60.2}, {80.9, 90.1}, {12.7, 90.1}}},
				},
			},
		})
	}))

	defer server.Close()

	c, err := paddle.New(server.URL)
	require.NoError(t, err)

	polygons, err := c.Detect(context.Background(), image.NewRGBA(image.Rect(0, 0, 120, 100)), nil)
	require.NoError(t, err)

	require.Len(t, request.Images, 1)

	_, err = base64.StdEncoding.DecodeString(request.Images[0])
	require.NoError(t, err)

	require.Len(t, polygons, 2)

	require.Equal(t, image.Rect(10, 20, 100, 50), polygons[0].Bounds())

	// fractional coordinates are truncated
	require.Equal(t, detector.Point{X: 12, Y: 60}, polygons[1][0])
}

func TestDetectStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(paddle.DetectResponse{
			Status:  "101",
			Message: "image decode error",
		})
	}))

	defer server.Close()

	c, err := paddle.New(server.URL)
	require.NoError(t, err)

	_, err = c.Detect(context.Background(), image.NewRGBA(image.Rect(0, 0, 10, 10)), nil)
	require.ErrorContains(t, err, "image decode error")
}

func TestDetectHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))

	defer server.Close()

	c, err := paddle.New(server.URL)
	require.NoError(t, err)

	_, err = c.Detect(context.Background(), image.NewRGBA(image.Rect(0, 0, 10, 10)), nil)
	require.ErrorContains(t, err, "model not loaded")
}

func TestDetectModule(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/predict/ch_pp-ocrv3_det", r.URL.Path)

		json.NewEncoder(w).Encode(paddle.DetectResponse{Status: "000"})
	}))

	defer server.Close()

	c, err := paddle.New(server.URL, paddle.WithModule("ch_pp-ocrv3_det"))
	require.NoError(t, err)

	polygons, err := c.Detect(context.Background(), image.NewRGBA(image.Rect(0, 0, 10, 10)), nil)
	require.NoError(t, err)
	require.Empty(t, polygons)
}

func TestDetectToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(paddle.DetectResponse{Status: "000"})
	}))

	defer server.Close()

	c, err := paddle.New(server.URL, paddle.WithToken("test-token"))
	require.NoError(t, err)

	polygons, err := c.Detect(context.Background(), image.NewRGBA(image.Rect(0, 0, 10, 10)), nil)
	require.NoError(t, err)
	require.Empty(t, polygons)
}

func TestNewInvalid(t *testing.T) {
	_, err := paddle.New("")
	require.Error(t, err)
}
