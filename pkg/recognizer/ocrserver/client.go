package ocrserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/adrianliechti/lector/pkg/imaging"
	"github.com/adrianliechti/lector/pkg/recognizer"
)

var _ recognizer.Provider = &Client{}

// Client talks to an ocrserver instance (otiai10/ocrserver), a small
// HTTP frontend for Tesseract.
type Client struct {
	client *http.Client

	url string
}

func New(url string, options ...Option) (*Client, error) {
	if url == "" {
		return nil, errors.New("invalid url")
	}

	c := &Client{
		client: http.DefaultClient,

		url: url,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Recognize(ctx context.Context, img image.Image, options *recognizer.RecognizeOptions) (*recognizer.Recognition, error) {
	if options == nil {
		options = new(recognizer.RecognizeOptions)
	}

	data, err := imaging.EncodePNG(img)

	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", multipart.FileContentDisposition("file", "region.png"))
	h.Set("Content-Type", "image/png")

	f, _ := w.CreatePart(h)
	f.Write(data)

	if options.Language != "" {
		w.WriteField("languages", options.Language)
	}

	w.Close()

	u, _ := url.Parse(strings.TrimRight(c.url, "/") + "/file")

	req, _ := http.NewRequestWithContext(ctx, "POST", u.String(), &b)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var result RecognizeResult

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &recognizer.Recognition{
		Text: strings.TrimSpace(result.Result),
	}, nil
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	if len(data) == 0 {
		return errors.New(http.StatusText(resp.StatusCode))
	}

	return errors.New(string(data))
}
