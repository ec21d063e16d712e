package tesseract_test

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"os/exec"
	"strings"
	"testing"

	"github.com/adrianliechti/lector/pkg/recognizer/tesseract"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func textImage(text string) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 20+len(text)*7, 40))

	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(10, 25),
	}

	d.DrawString(text)

	return img
}

func TestRecognize(t *testing.T) {
	if _, err := exec.LookPath("tesseract"); err != nil {
		t.Skip("tesseract not installed")
	}

	c, err := tesseract.New()
	require.NoError(t, err)

	result, err := c.Recognize(context.Background(), textImage("HELLO WORLD"), nil)
	require.NoError(t, err)

	require.Contains(t, strings.ToUpper(result.Text), "HELLO")

	require.NotNil(t, result.Confidence)
	require.Greater(t, *result.Confidence, 0.0)
	require.LessOrEqual(t, *result.Confidence, 1.0)
}

func TestRecognizeUpscalesSmallCrops(t *testing.T) {
	if _, err := exec.LookPath("tesseract"); err != nil {
		t.Skip("tesseract not installed")
	}

	// a 13px tall line is below the upscale threshold
	img := image.NewRGBA(image.Rect(0, 0, 100, 13))

	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(2, 11),
	}

	d.DrawString("TEST")

	c, err := tesseract.New()
	require.NoError(t, err)

	result, err := c.Recognize(context.Background(), img, nil)
	require.NoError(t, err)

	require.Contains(t, strings.ToUpper(result.Text), "TEST")
}
