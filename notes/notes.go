package notes

import (
	"fmt"
	"sort"

	"github.com/jsphweid/notegrid/model"
	"github.com/jsphweid/notegrid/pitch"
)

type Clock uint8

const (
	// ClockNoteOnly advances the clock with note-on/note-off deltas only.
	// Deltas of every other message are dropped along with the message.
	ClockNoteOnly Clock = iota
	// ClockAllMessages advances the clock with every message's delta.
	ClockAllMessages
)

func (c Clock) String() string {
	if c == ClockAllMessages {
		return "all"
	}
	return "note"
}

func ParseClock(s string) (Clock, error) {
	switch s {
	case "", "note":
		return ClockNoteOnly, nil
	case "all":
		return ClockAllMessages, nil
	}
	return ClockNoteOnly, fmt.Errorf("unknown clock mode %q (want note or all)", s)
}

type Option func(*pairer)

func WithClock(c Clock) Option {
	return func(p *pairer) {
		p.clockMode = c
	}
}

type pending struct {
	onset uint64
	ok    bool
}

// one pass over one track, nothing is shared between passes
type pairer struct {
	clockMode Clock
	clock     uint64
	sounding  [128]pending
	records   []model.NoteRecord
}

func (p *pairer) noteOn(key uint8) {
	if int(key) >= len(p.sounding) || p.sounding[key].ok {
		return
	}
	p.sounding[key] = pending{onset: p.clock, ok: true}
}

func (p *pairer) noteOff(key uint8) {
	if int(key) >= len(p.sounding) || !p.sounding[key].ok {
		return
	}
	on := p.sounding[key]
	p.records = append(p.records, model.NoteRecord{
		Pitch:    key,
		Onset:    on.onset,
		Duration: p.clock - on.onset,
	})
	p.sounding[key] = pending{}
}

// Pair turns a track's messages into note records sorted by onset, with the
// first onset shifted to 0. Pairing ignores channels. A note-on for a pitch
// that is already sounding is dropped, as is a note-off with nothing to close
// and any note still sounding when the track ends.
func Pair(msgs []model.Message, opts ...Option) []model.NoteRecord {
	p := pairer{records: make([]model.NoteRecord, 0)}
	for _, opt := range opts {
		opt(&p)
	}

	for _, msg := range msgs {
		if !msg.Kind.IsNote() {
			if p.clockMode == ClockAllMessages {
				p.clock += uint64(msg.Delta)
			}
			continue
		}

		p.clock += uint64(msg.Delta)
		switch msg.Kind {
		case model.NoteOn:
			p.noteOn(msg.Pitch)
		case model.NoteOff:
			p.noteOff(msg.Pitch)
		}
	}

	records := p.records
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Onset < records[j].Onset
	})

	if len(records) == 0 {
		return records
	}

	start := records[0].Onset
	for i := range records {
		records[i].Onset -= start
	}
	return records
}

// String formats a record as "<PitchName>-<onset>-<duration>".
func String(r model.NoteRecord) string {
	return fmt.Sprintf("%v-%v-%v", pitch.Name(int(r.Pitch)), r.Onset, r.Duration)
}

func Format(records []model.NoteRecord) []string {
	res := make([]string, 0, len(records))
	for _, r := range records {
		res = append(res, String(r))
	}
	return res
}

func Simplify(msgs []model.Message, opts ...Option) []string {
	return Format(Pair(msgs, opts...))
}
