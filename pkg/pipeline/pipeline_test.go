package pipeline

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync/atomic"
	"testing"
	"time"

	"github.com/adrianliechti/lector/pkg/detector"
	"github.com/adrianliechti/lector/pkg/imaging"
	"github.com/adrianliechti/lector/pkg/recognizer"

	"github.com/stretchr/testify/require"
)

type mockDetector struct {
	polygons []detector.Polygon
	err      error

	calls    atomic.Int64
	language string
}

func (m *mockDetector) Detect(ctx context.Context, img image.Image, options *detector.DetectOptions) ([]detector.Polygon, error) {
	m.calls.Add(1)

	if options != nil {
		m.language = options.Language
	}

	if m.err != nil {
		return nil, m.err
	}

	return m.polygons, nil
}

type mockRecognizer struct {
	fn func(ctx context.Context, img image.Image, options *recognizer.RecognizeOptions) (*recognizer.Recognition, error)

	calls atomic.Int64
}

func (m *mockRecognizer) Recognize(ctx context.Context, img image.Image, options *recognizer.RecognizeOptions) (*recognizer.Recognition, error) {
	m.calls.Add(1)

	return m.fn(ctx, img, options)
}

func testImage(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}

	data, err := imaging.EncodePNG(img)
	require.NoError(t, err)

	return data
}

func sizeRecognizer() *mockRecognizer {
	return &mockRecognizer{
		fn: func(ctx context.Context, img image.Image, options *recognizer.RecognizeOptions) (*recognizer.Recognition, error) {
			bounds := img.Bounds()

			return &recognizer.Recognition{
				Text: fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy()),
			}, nil
		},
	}
}

func TestNew(t *testing.T) {
	t.Run("missing detector", func(t *testing.T) {
		_, err := New(nil, sizeRecognizer())
		require.ErrorContains(t, err, "detector not configured")
	})

	t.Run("missing recognizer", func(t *testing.T) {
		_, err := New(&mockDetector{}, nil)
		require.ErrorContains(t, err, "recognizer not configured")
	})

	t.Run("negative padding", func(t *testing.T) {
		_, err := New(&mockDetector{}, sizeRecognizer(), WithPadding(-1))
		require.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		p, err := New(&mockDetector{}, sizeRecognizer())
		require.NoError(t, err)

		require.Equal(t, DefaultPadding, p.padding)
		require.Equal(t, 1, p.concurrency)
	})
}

func TestRunEmpty(t *testing.T) {
	d := &mockDetector{}
	r := sizeRecognizer()

	p, err := New(d, r)
	require.NoError(t, err)

	result, err := p.Run(context.Background(), testImage(t, 100, 50), nil)
	require.NoError(t, err)

	require.NotNil(t, result.Regions)
	require.Empty(t, result.Regions)
	require.Equal(t, 0, result.Detected)

	require.Equal(t, int64(0), r.calls.Load())
}

func TestRunPadding(t *testing.T) {
	d := &mockDetector{
		polygons: []detector.Polygon{
			detector.FromRectangle(image.Rect(10, 20, 40, 40)),
		},
	}

	p, err := New(d, sizeRecognizer(), WithPadding(4))
	require.NoError(t, err)

	result, err := p.Run(context.Background(), testImage(t, 100, 50), nil)
	require.NoError(t, err)

	require.Len(t, result.Regions, 1)

	region := result.Regions[0]

	// box grown by 4px on each side
	require.Equal(t, image.Rect(6, 16, 44, 44), region.Bounds)
	require.Equal(t, "38x28", region.Text)

	// the polygon keeps the unpadded coordinates
	require.Equal(t, image.Rect(10, 20, 40, 40), region.Polygon.Bounds())
}

func TestRunClamping(t *testing.T) {
	d := &mockDetector{
		polygons: []detector.Polygon{
			detector.FromRectangle(image.Rect(0, 0, 30, 20)),
			detector.FromRectangle(image.Rect(90, 40, 110, 60)),
		},
	}

	p, err := New(d, sizeRecognizer(), WithPadding(4))
	require.NoError(t, err)

	result, err := p.Run(context.Background(), testImage(t, 100, 50), nil)
	require.NoError(t, err)

	require.Len(t, result.Regions, 2)

	require.Equal(t, image.Rect(0, 0, 34, 24), result.Regions[0].Bounds)
	require.Equal(t, image.Rect(86, 36, 100, 50), result.Regions[1].Bounds)
}

func TestRunOrder(t *testing.T) {
	// regions with distinct widths, the widest finishing first
	d := &mockDetector{
		polygons: []detector.Polygon{
			detector.FromRectangle(image.Rect(0, 0, 10, 10)),
			detector.FromRectangle(image.Rect(20, 0, 40, 10)),
			detector.FromRectangle(image.Rect(50, 0, 80, 10)),
		},
	}

	r := &mockRecognizer{
		fn: func(ctx context.Context, img image.Image, options *recognizer.RecognizeOptions) (*recognizer.Recognition, error) {
			width := img.Bounds().Dx()

			time.Sleep(time.Duration(40-width) * time.Millisecond)

			return &recognizer.Recognition{
				Text: fmt.Sprintf("%d", width),
			}, nil
		},
	}

	p, err := New(d, r, WithPadding(0), WithConcurrency(3))
	require.NoError(t, err)

	result, err := p.Run(context.Background(), testImage(t, 100, 50), nil)
	require.NoError(t, err)

	require.Len(t, result.Regions, 3)

	require.Equal(t, "10", result.Regions[0].Text)
	require.Equal(t, "20", result.Regions[1].Text)
	require.Equal(t, "30", result.Regions[2].Text)
}

func TestRunPartialFailure(t *testing.T) {
	d := &mockDetector{
		polygons: []detector.Polygon{
			detector.FromRectangle(image.Rect(0, 0, 10, 10)),
			detector.FromRectangle(image.Rect(20, 0, 40, 10)),
			detector.FromRectangle(image.Rect(50, 0, 80, 10)),
		},
	}

	r := &mockRecognizer{
		fn: func(ctx context.Context, img image.Image, options *recognizer.RecognizeOptions) (*recognizer.Recognition, error) {
			if img.Bounds().Dx() == 20 {
				return nil, errors.New("model overloaded")
			}

			return &recognizer.Recognition{
				Text: fmt.Sprintf("%d", img.Bounds().Dx()),
			}, nil
		},
	}

	p, err := New(d, r, WithPadding(0))
	require.NoError(t, err)

	result, err := p.Run(context.Background(), testImage(t, 100, 50), nil)
	require.NoError(t, err)

	// the failed region is dropped, the remaining ones keep their order
	require.Len(t, result.Regions, 2)
	require.Equal(t, "10", result.Regions[0].Text)
	require.Equal(t, "30", result.Regions[1].Text)

	// the detection count still includes the dropped region
	require.Equal(t, 3, result.Detected)
}

func TestRunSkipsDegenerate(t *testing.T) {
	d := &mockDetector{
		polygons: []detector.Polygon{
			{{X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5}},
			detector.FromRectangle(image.Rect(20, 0, 40, 10)),
		},
	}

	r := sizeRecognizer()

	p, err := New(d, r, WithPadding(0))
	require.NoError(t, err)

	result, err := p.Run(context.Background(), testImage(t, 100, 50), nil)
	require.NoError(t, err)

	require.Len(t, result.Regions, 1)
	require.Equal(t, "20x10", result.Regions[0].Text)
	require.Equal(t, 2, result.Detected)

	require.Equal(t, int64(1), r.calls.Load())
}

func TestRunDetectorError(t *testing.T) {
	d := &mockDetector{
		err: errors.New("connection refused"),
	}

	p, err := New(d, sizeRecognizer())
	require.NoError(t, err)

	_, err = p.Run(context.Background(), testImage(t, 100, 50), nil)
	require.ErrorContains(t, err, "connection refused")
}

func TestRunInvalidImage(t *testing.T) {
	p, err := New(&mockDetector{}, sizeRecognizer())
	require.NoError(t, err)

	_, err = p.Run(context.Background(), []byte("not an image"), nil)
	require.ErrorIs(t, err, imaging.ErrInvalidImage)
}

func TestRunConfidence(t *testing.T) {
	d := &mockDetector{
		polygons: []detector.Polygon{
			detector.FromRectangle(image.Rect(0, 0, 10, 10)),
		},
	}

	confidence := 0.87

	r := &mockRecognizer{
		fn: func(ctx context.Context, img image.Image, options *recognizer.RecognizeOptions) (*recognizer.Recognition, error) {
			return &recognizer.Recognition{
				Text:       "hello",
				Confidence: &confidence,
			}, nil
		},
	}

	p, err := New(d, r)
	require.NoError(t, err)

	result, err := p.Run(context.Background(), testImage(t, 100, 50), nil)
	require.NoError(t, err)

	require.Len(t, result.Regions, 1)
	require.NotNil(t, result.Regions[0].Confidence)
	require.Equal(t, 0.87, *result.Regions[0].Confidence)
}

func TestRunLanguage(t *testing.T) {
	d := &mockDetector{
		polygons: []detector.Polygon{
			detector.FromRectangle(image.Rect(0, 0, 10, 10)),
		},
	}

	var language string

	r := &mockRecognizer{
		fn: func(ctx context.Context, img image.Image, options *recognizer.RecognizeOptions) (*recognizer.Recognition, error) {
			language = options.Language

			return &recognizer.Recognition{Text: "ok"}, nil
		},
	}

	p, err := New(d, r, WithLanguage("vie"))
	require.NoError(t, err)

	_, err = p.Run(context.Background(), testImage(t, 100, 50), nil)
	require.NoError(t, err)

	require.Equal(t, "vie", d.language)
	require.Equal(t, "vie", language)

	// a per-run language overrides the configured default
	_, err = p.Run(context.Background(), testImage(t, 100, 50), &RunOptions{Language: "deu"})
	require.NoError(t, err)

	require.Equal(t, "deu", d.language)
	require.Equal(t, "deu", language)
}
