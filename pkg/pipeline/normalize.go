package pipeline

import (
	"image"

	"github.com/adrianliechti/lector/pkg/detector"
)

// normalize converts a detected polygon into the rectangle to crop:
// the polygon's bounding box, grown by padding on each side, clamped
// to the image bounds. ok is false if no area remains.
func normalize(polygon detector.Polygon, bounds image.Rectangle, padding int) (image.Rectangle, bool) {
	if len(polygon) == 0 {
		return image.Rectangle{}, false
	}

	rect := polygon.Bounds().Inset(-padding).Intersect(bounds)

	if rect.Empty() {
		return image.Rectangle{}, false
	}

	return rect, true
}
