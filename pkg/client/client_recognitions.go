package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/adrianliechti/lector/server/api"
)

type RecognitionService struct {
	Options []RequestOption
}

func NewRecognitionService(opts ...RequestOption) RecognitionService {
	return RecognitionService{
		Options: opts,
	}
}

type Recognition = api.Response
type Region = api.Region

type RecognitionRequest struct {
	Name   string
	Reader io.Reader

	Pipeline string
	Language string
}

func (r *RecognitionService) New(ctx context.Context, input RecognitionRequest, opts ...RequestOption) (*Recognition, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var data bytes.Buffer
	w := multipart.NewWriter(&data)

	file, err := w.CreateFormFile("file", input.Name)

	if err != nil {
		return nil, err
	}

	if _, err := io.Copy(file, input.Reader); err != nil {
		return nil, err
	}

	if input.Pipeline != "" {
		w.WriteField("pipeline", input.Pipeline)
	}

	if input.Language != "" {
		w.WriteField("language", input.Language)
	}

	w.Close()

	req, _ := http.NewRequestWithContext(ctx, "POST", c.URL+"/v1/ocr", &data)
	req.Header.Set("Content-Type", w.FormDataContentType())

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var result Recognition

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

type RecognitionBase64Request struct {
	Image string

	Pipeline string
	Language string
}

func (r *RecognitionService) NewFromBase64(ctx context.Context, input RecognitionBase64Request, opts ...RequestOption) (*Recognition, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	body, err := json.Marshal(api.RecognizeRequest{
		Image:    input.Image,
		Language: input.Language,
	})

	if err != nil {
		return nil, err
	}

	endpoint := c.URL + "/v1/ocr/base64"

	if input.Pipeline != "" {
		endpoint += "?pipeline=" + url.QueryEscape(input.Pipeline)
	}

	req, _ := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var result Recognition

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}
