package ocrserver_test

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	"github.com/adrianliechti/lector/pkg/recognizer/ocrserver"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
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
	ctx := context.Background()

	server, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		Started: true,

		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "otiai10/ocrserver:latest",
			ExposedPorts: []string{"8080/tcp"},
		},
	})

	require.NoError(t, err)

	url, err := server.Endpoint(ctx, "")
	require.NoError(t, err)

	c, err := ocrserver.New("http://" + url)
	require.NoError(t, err)

	result, err := c.Recognize(ctx, textImage("HELLO WORLD"), nil)
	require.NoError(t, err)

	require.Contains(t, strings.ToUpper(result.Text), "HELLO")
}
