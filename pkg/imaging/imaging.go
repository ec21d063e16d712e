package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"strings"
	"unicode"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
)

var (
	ErrInvalidImage    = errors.New("invalid image")
	ErrInvalidEncoding = errors.New("invalid encoding")
)

// Decode reads an image in any of the registered formats
// (png, jpeg, gif, bmp, tiff, webp).
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))

	if err != nil {
		return nil, ErrInvalidImage
	}

	return img, nil
}

// DecodeBase64 reads a base64-encoded image. Data URL prefixes
// ("data:image/png;base64,...") are stripped before decoding.
func DecodeBase64(input string) (image.Image, error) {
	data, err := FromBase64(input)

	if err != nil {
		return nil, err
	}

	return Decode(data)
}

// FromBase64 decodes base64 image data to raw bytes. Data URL
// prefixes and embedded whitespace are tolerated.
func FromBase64(input string) ([]byte, error) {
	input = strings.TrimSpace(input)

	if strings.HasPrefix(input, "data:") {
		if _, data, ok := strings.Cut(input, ","); ok {
			input = data
		}
	}

	input = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, input)

	data, err := base64.StdEncoding.DecodeString(input)

	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(input)
	}

	if err != nil {
		return nil, ErrInvalidEncoding
	}

	return data, nil
}

func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer

	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Crop extracts the given region. The rectangle is expected to be
// clamped to the image bounds by the caller.
func Crop(img image.Image, rect image.Rectangle) image.Image {
	return imaging.Crop(img, rect)
}

// Resize scales the image to the given dimensions. A width or height
// of zero preserves the aspect ratio.
func Resize(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}
