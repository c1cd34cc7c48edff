package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/notegrid/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
	"gitlab.com/gomidi/quantizer/lib/quantizer"
)

// ReadMidi decodes a standard MIDI file. The decoder can panic on some
// broken files (https://github.com/gomidi/midi/issues/20), that is turned
// into an error too.
func ReadMidi(r io.Reader) (s *smf.SMF, e error) {
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = errors.Errorf("decoder panic: %v", r)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing midi file")
	}
	return res, nil
}

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "reading midi file")
	}
	s, err := ReadMidi(bytes.NewReader(dat))
	return s, errors.WithMessage(err, filepath)
}

// Messages flattens a track into the note messages the analyzers need. Any
// event that is not a note-on or note-off keeps its delta with Kind Other.
func Messages(track smf.Track) []model.Message {
	res := make([]model.Message, 0, len(track))
	for _, event := range track {
		var channel, key, velocity uint8
		msg := model.Message{Delta: event.Delta}
		switch {
		case event.Message.GetNoteOn(&channel, &key, &velocity):
			msg.Kind = model.NoteOn
			msg.Channel = channel
			msg.Pitch = key
		case event.Message.GetNoteOff(&channel, &key, &velocity):
			msg.Kind = model.NoteOff
			msg.Channel = channel
			msg.Pitch = key
		}
		res = append(res, msg)
	}
	return res
}

func TimeFormat(s *smf.SMF) string {
	if s.TimeFormat == nil {
		return ""
	}
	return fmt.Sprint(s.TimeFormat)
}

// Snap writes a copy of the SMF read from r with its notes moved onto a grid.
func Snap(r io.Reader, w io.Writer) error {
	var in bytes.Buffer
	if _, err := io.Copy(&in, r); err != nil {
		return errors.Wrap(err, "reading midi file")
	}
	// reject what the decoder can't read before handing it on
	if _, err := ReadMidi(bytes.NewReader(in.Bytes())); err != nil {
		return err
	}
	return errors.Wrap(quantizer.Quantize(&in, w), "quantizing")
}
