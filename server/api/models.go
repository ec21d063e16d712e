package api

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	Results []Region `json:"results"`

	TotalBoxes int `json:"total_boxes"`
}

type Region struct {
	Coordinates [2][2]int `json:"coordinates"` // [[x_min, y_min], [x_max, y_max]]

	Text       string   `json:"text"`
	Confidence *float64 `json:"confidence"`
}

type RecognizeRequest struct {
	Image string `json:"image_base64"`

	Language string `json:"language,omitempty"`
}

type Info struct {
	Message string `json:"message"`
	Status  string `json:"status"`

	Endpoints map[string]string `json:"endpoints"`
}

type Health struct {
	Status string `json:"status"`

	Models map[string]bool `json:"models_loaded"`
}
