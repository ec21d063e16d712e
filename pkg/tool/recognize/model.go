package recognize

type Result struct {
	Text string `json:"text"`

	Regions []Region `json:"regions"`
}

type Region struct {
	Coordinates [2][2]int `json:"coordinates"`

	Text       string   `json:"text"`
	Confidence *float64 `json:"confidence"`
}
