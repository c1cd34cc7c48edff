package model

type TrackResult struct {
	Track    int          `json:"track"`
	Notes    []string     `json:"notes"`
	Records  []NoteRecord `json:"records"`
	Verdicts []Verdict    `json:"verdicts"`
	Skipped  []int        `json:"insufficient_data"`
}

type AnalyzeResponse struct {
	Format string        `json:"format"`
	Tracks []TrackResult `json:"tracks"`
}

type PitchResponse struct {
	Name  string `json:"name"`
	Pitch uint8  `json:"pitch"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
