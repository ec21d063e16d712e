package pipeline

import (
	"image"
	"testing"

	"github.com/adrianliechti/lector/pkg/detector"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	bounds := image.Rect(0, 0, 200, 100)

	tests := []struct {
		name string

		polygon detector.Polygon
		padding int

		rect image.Rectangle
		ok   bool
	}{
		{
			name:    "padded",
			polygon: detector.FromRectangle(image.Rect(10, 20, 100, 50)),
			padding: 4,
			rect:    image.Rect(6, 16, 104, 54),
			ok:      true,
		},
		{
			name:    "no padding",
			polygon: detector.FromRectangle(image.Rect(10, 20, 100, 50)),
			padding: 0,
			rect:    image.Rect(10, 20, 100, 50),
			ok:      true,
		},
		{
			name:    "clamped to image",
			polygon: detector.FromRectangle(image.Rect(190, 90, 220, 120)),
			padding: 4,
			rect:    image.Rect(186, 86, 200, 100),
			ok:      true,
		},
		{
			name:    "skewed quadrilateral",
			polygon: detector.Polygon{{X: 12, Y: 8}, {X: 90, Y: 10}, {X: 88, Y: 30}, {X: 10, Y: 28}},
			padding: 0,
			rect:    image.Rect(10, 8, 90, 30),
			ok:      true,
		},
		{
			name:    "fully outside",
			polygon: detector.FromRectangle(image.Rect(300, 300, 320, 320)),
			padding: 4,
			ok:      false,
		},
		{
			name:    "degenerate point",
			polygon: detector.Polygon{{X: 50, Y: 50}, {X: 50, Y: 50}},
			padding: 0,
			ok:      false,
		},
		{
			name:    "degenerate line",
			polygon: detector.Polygon{{X: 10, Y: 50}, {X: 90, Y: 50}},
			padding: 0,
			ok:      false,
		},
		{
			name:    "line grows with padding",
			polygon: detector.Polygon{{X: 10, Y: 50}, {X: 90, Y: 50}},
			padding: 2,
			rect:    image.Rect(8, 48, 92, 52),
			ok:      true,
		},
		{
			name:    "empty polygon",
			polygon: detector.Polygon{},
			padding: 4,
			ok:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rect, ok := normalize(tt.polygon, bounds, tt.padding)

			require.Equal(t, tt.ok, ok)

			if !ok {
				return
			}

			require.Equal(t, tt.rect, rect)
		})
	}
}
