package detector

import (
	"context"
	"image"
)

// Provider locates text regions in an image and returns their outline
// polygons in reading order.
type Provider interface {
	Detect(ctx context.Context, img image.Image, options *DetectOptions) ([]Polygon, error)
}

type DetectOptions struct {
	Language string
}

type Point struct {
	X int
	Y int
}

type Polygon []Point

// Bounds returns the axis-aligned bounding box of the polygon. The
// maximum edges are exclusive, matching image.Rectangle semantics.
func (p Polygon) Bounds() image.Rectangle {
	if len(p) == 0 {
		return image.Rectangle{}
	}

	result := image.Rectangle{
		Min: image.Point{X: p[0].X, Y: p[0].Y},
		Max: image.Point{X: p[0].X, Y: p[0].Y},
	}

	for _, point := range p[1:] {
		if point.X < result.Min.X {
			result.Min.X = point.X
		}

		if point.Y < result.Min.Y {
			result.Min.Y = point.Y
		}

		if point.X > result.Max.X {
			result.Max.X = point.X
		}

		if point.Y > result.Max.Y {
			result.Max.Y = point.Y
		}
	}

	return result
}

// FromRectangle returns the four corners of a rectangle as a polygon,
// starting top-left and continuing clockwise.
func FromRectangle(r image.Rectangle) Polygon {
	return Polygon{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Max.Y},
	}
}
