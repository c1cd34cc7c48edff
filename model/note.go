package model

// NoteRecord is a paired note-on/note-off. Onset is relative to the first
// onset of the track once records are normalized.
type NoteRecord struct {
	Pitch    uint8  `json:"pitch"`
	Onset    uint64 `json:"onset"`
	Duration uint64 `json:"duration"`
}

type Example struct {
	ID     string
	Track  int
	Input  []string
	Output []string
}
