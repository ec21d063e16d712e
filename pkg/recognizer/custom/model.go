package custom

type RecognizeRequest struct {
	Image    string `json:"image"`
	Language string `json:"language,omitempty"`
	Device   string `json:"device,omitempty"`
}

type RecognizeResponse struct {
	Text       string   `json:"text"`
	Confidence *float64 `json:"confidence"`
}
