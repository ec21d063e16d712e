package paddle

// https://github.com/PaddlePaddle/PaddleOCR/tree/main/deploy/hubserving

type DetectRequest struct {
	Images []string `json:"images"`
}

type DetectResponse struct {
	Status  string `json:"status"`
	Message string `json:"msg"`

	Results [][]DetectResult `json:"results"`
}

type DetectResult struct {
	TextRegion [][2]float64 `json:"text_region"`
}
