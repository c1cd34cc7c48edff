package model

type Kind uint8

const (
	Other Kind = iota
	NoteOn
	NoteOff
)

func (k Kind) String() string {
	switch k {
	case NoteOn:
		return "note_on"
	case NoteOff:
		return "note_off"
	default:
		return "other"
	}
}

// IsNote reports whether the message carries a pitch.
func (k Kind) IsNote() bool {
	return k == NoteOn || k == NoteOff
}

// Message is one decoded track event. Delta is relative to the previous
// message in the same track, in the file's ticks.
type Message struct {
	Kind    Kind
	Delta   uint32
	Channel uint8
	Pitch   uint8
}

func On(pitch uint8, delta uint32) Message {
	return Message{Kind: NoteOn, Pitch: pitch, Delta: delta}
}

func Off(pitch uint8, delta uint32) Message {
	return Message{Kind: NoteOff, Pitch: pitch, Delta: delta}
}
