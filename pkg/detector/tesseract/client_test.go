package tesseract_test

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"os/exec"
	"testing"

	"github.com/adrianliechti/lector/pkg/detector/tesseract"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func TestDetect(t *testing.T) {
	if _, err := exec.LookPath("tesseract"); err != nil {
		t.Skip("tesseract not installed")
	}

	img := image.NewRGBA(image.Rect(0, 0, 200, 100))

	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(10, 30),
	}

	d.DrawString("FIRST LINE")

	d.Dot = fixed.P(10, 70)
	d.DrawString("SECOND LINE")

	c, err := tesseract.New()
	require.NoError(t, err)

	polygons, err := c.Detect(context.Background(), img, nil)
	require.NoError(t, err)

	require.Len(t, polygons, 2)

	first := polygons[0].Bounds()
	second := polygons[1].Bounds()

	require.True(t, first.Max.Y <= second.Min.Y, "expected lines top to bottom, got %v before %v", first, second)

	for _, polygon := range polygons {
		require.True(t, polygon.Bounds().In(img.Bounds()))
	}
}
