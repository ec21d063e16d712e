package ocrserver

type RecognizeResult struct {
	Result string `json:"result"`
}
