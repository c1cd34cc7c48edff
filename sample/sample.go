package sample

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/jsphweid/notegrid/config"
	"github.com/jsphweid/notegrid/model"
	"github.com/jsphweid/notegrid/util"
)

// Sampler cuts random input/output windows out of a track's note strings.
type Sampler struct {
	w   config.Window
	rnd *rand.Rand
}

func New(w config.Window, rnd *rand.Rand) *Sampler {
	return &Sampler{w: w, rnd: rnd}
}

// between returns a uniform value in [lo, hi]
func (s *Sampler) between(lo, hi int) int {
	return lo + s.rnd.Intn(hi-lo+1)
}

// Create returns the windows for one track, or nothing when the track is
// shorter than the configured minimum. The input length is capped so input
// and output always fit in the track.
func (s *Sampler) Create(trackNum int, notes []string) []model.Example {
	if len(notes) < s.w.MinTrackNotes || len(notes) < s.w.InputMin+s.w.OutputLen {
		return nil
	}

	inputMax := util.Min(s.w.InputMax, len(notes)-s.w.OutputLen)
	res := make([]model.Example, 0, s.w.WindowsPerTrack)
	for i := 0; i < s.w.WindowsPerTrack; i++ {
		inputLen := s.between(s.w.InputMin, inputMax)
		start := s.between(0, len(notes)-(inputLen+s.w.OutputLen))
		split := start + inputLen
		res = append(res, model.Example{
			ID:     uuid.New().String(),
			Track:  trackNum,
			Input:  notes[start:split],
			Output: notes[split : split+s.w.OutputLen],
		})
	}
	return res
}
