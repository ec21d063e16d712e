package pipeline

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"sync"

	"github.com/adrianliechti/lector/pkg/detector"
	"github.com/adrianliechti/lector/pkg/imaging"
	"github.com/adrianliechti/lector/pkg/recognizer"

	"github.com/google/uuid"
)

// DefaultPadding is the number of pixels each detected region is grown
// by before cropping. It gives the recognizer some context around
// tightly fitted detection boxes.
const DefaultPadding = 4

type Pipeline struct {
	detector   detector.Provider
	recognizer recognizer.Provider

	padding     int
	concurrency int

	language string
}

// Region is a recognized text region. Polygon holds the detector
// output, Bounds the padded and clamped rectangle that was cropped.
type Region struct {
	Polygon detector.Polygon
	Bounds  image.Rectangle

	Text       string
	Confidence *float64
}

type Result struct {
	// Regions contains the successfully recognized regions in
	// detector order. Regions that could not be cropped or
	// recognized are dropped.
	Regions []Region

	// Detected is the total number of regions the detector reported,
	// including dropped ones.
	Detected int
}

type RunOptions struct {
	Language string
}

func New(d detector.Provider, r recognizer.Provider, options ...Option) (*Pipeline, error) {
	if d == nil {
		return nil, errors.New("detector not configured")
	}

	if r == nil {
		return nil, errors.New("recognizer not configured")
	}

	p := &Pipeline{
		detector:   d,
		recognizer: r,

		padding:     DefaultPadding,
		concurrency: 1,
	}

	for _, option := range options {
		option(p)
	}

	if p.padding < 0 {
		return nil, errors.New("padding must not be negative")
	}

	if p.concurrency < 1 {
		p.concurrency = 1
	}

	return p, nil
}

// Run decodes the image, detects text regions and recognizes each of
// them. Decode and detection errors abort the run. A region that
// cannot be cropped or recognized is logged and dropped, the remaining
// regions are still returned.
func (p *Pipeline) Run(ctx context.Context, data []byte, options *RunOptions) (*Result, error) {
	if options == nil {
		options = new(RunOptions)
	}

	language := p.language

	if options.Language != "" {
		language = options.Language
	}

	logger := slog.With("run", uuid.NewString())

	img, err := imaging.Decode(data)

	if err != nil {
		return nil, err
	}

	polygons, err := p.detector.Detect(ctx, img, &detector.DetectOptions{
		Language: language,
	})

	if err != nil {
		return nil, err
	}

	logger.DebugContext(ctx, "detected text regions", "count", len(polygons))

	type outcome struct {
		region Region
		ok     bool
	}

	outcomes := make([]outcome, len(polygons))

	var wg sync.WaitGroup
	sem := make(chan struct{}, p.concurrency)

	for i, polygon := range polygons {
		rect, ok := normalize(polygon, img.Bounds(), p.padding)

		if !ok {
			logger.WarnContext(ctx, "skipping region without area", "index", i)
			continue
		}

		wg.Add(1)
		sem <- struct{}{}

		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			crop := imaging.Crop(img, rect)

			recognition, err := p.recognizer.Recognize(ctx, crop, &recognizer.RecognizeOptions{
				Language: language,
			})

			if err != nil {
				logger.WarnContext(ctx, "recognition failed", "index", i, "error", err)
				return
			}

			outcomes[i] = outcome{
				region: Region{
					Polygon: polygon,
					Bounds:  rect,

					Text:       recognition.Text,
					Confidence: recognition.Confidence,
				},

				ok: true,
			}
		}()
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	regions := make([]Region, 0, len(polygons))

	for _, o := range outcomes {
		if !o.ok {
			continue
		}

		regions = append(regions, o.region)
	}

	result := &Result{
		Regions:  regions,
		Detected: len(polygons),
	}

	return result, nil
}
