package custom

type DetectRequest struct {
	Image    string `json:"image"`
	Language string `json:"language,omitempty"`
	Device   string `json:"device,omitempty"`
}

type DetectResponse struct {
	Polygons [][][2]int `json:"polygons"`
}
