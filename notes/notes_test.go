package notes

import (
	"fmt"
	"testing"

	"github.com/jsphweid/notegrid/model"
	"github.com/stretchr/testify/assert"
)

func other(delta uint32) model.Message {
	return model.Message{Kind: model.Other, Delta: delta}
}

func TestPairsSingleNote(t *testing.T) {
	msgs := []model.Message{model.On(60, 0), model.Off(60, 50)}

	assert := assert.New(t)
	assert.Equal([]model.NoteRecord{{Pitch: 60, Onset: 0, Duration: 50}}, Pair(msgs))
}

func TestIgnoresRepeatedNoteOn(t *testing.T) {
	msgs := []model.Message{model.On(60, 0), model.On(60, 10), model.Off(60, 20)}

	assert := assert.New(t)
	assert.Equal([]model.NoteRecord{{Pitch: 60, Onset: 0, Duration: 30}}, Pair(msgs))
}

func TestMismatchedNoteOffProducesNothing(t *testing.T) {
	msgs := []model.Message{model.On(60, 0), model.Off(61, 5)}

	records := Pair(msgs)
	assert := assert.New(t)
	assert.NotNil(records)
	assert.Empty(records)
}

func TestUnterminatedNoteIsDropped(t *testing.T) {
	msgs := []model.Message{model.On(60, 0), model.On(62, 4), model.Off(62, 4)}

	assert := assert.New(t)
	assert.Equal([]model.NoteRecord{{Pitch: 62, Onset: 0, Duration: 4}}, Pair(msgs))
}

func TestStrayNoteOffDoesNotChangeState(t *testing.T) {
	msgs := []model.Message{model.Off(64, 3), model.On(64, 2), model.Off(64, 6)}

	assert := assert.New(t)
	assert.Equal([]model.NoteRecord{{Pitch: 64, Onset: 0, Duration: 6}}, Pair(msgs))
}

func TestSortsAndNormalizesOnsets(t *testing.T) {
	// 60 opens at 10 and closes last, 64 opens at 20 and closes first
	msgs := []model.Message{
		model.On(60, 10),
		model.On(64, 10),
		model.Off(64, 5),
		model.Off(60, 5),
	}

	assert := assert.New(t)
	assert.Equal([]model.NoteRecord{
		{Pitch: 60, Onset: 0, Duration: 20},
		{Pitch: 64, Onset: 10, Duration: 5},
	}, Pair(msgs))
}

func TestPairingIgnoresChannel(t *testing.T) {
	on := model.On(60, 0)
	on.Channel = 1
	off := model.Off(60, 8)
	off.Channel = 9

	assert := assert.New(t)
	assert.Equal([]model.NoteRecord{{Pitch: 60, Onset: 0, Duration: 8}}, Pair([]model.Message{on, off}))
}

func TestClockModes(t *testing.T) {
	msgs := []model.Message{
		other(100),
		model.On(60, 0),
		other(7),
		model.Off(60, 3),
		model.On(62, 1),
		model.Off(62, 2),
	}

	cases := []struct {
		clock Clock
		want  []model.NoteRecord
	}{
		{ClockNoteOnly, []model.NoteRecord{{Pitch: 60, Onset: 0, Duration: 3}, {Pitch: 62, Onset: 4, Duration: 2}}},
		{ClockAllMessages, []model.NoteRecord{{Pitch: 60, Onset: 0, Duration: 10}, {Pitch: 62, Onset: 11, Duration: 2}}},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("clock %v", c.clock), func(t *testing.T) {
			assert.Equal(t, c.want, Pair(msgs, WithClock(c.clock)))
		})
	}
}

func TestOutOfRangePitchStillAdvancesClock(t *testing.T) {
	msgs := []model.Message{
		model.On(60, 0),
		model.On(200, 5),
		model.Off(200, 5),
		model.Off(60, 5),
	}

	assert := assert.New(t)
	assert.Equal([]model.NoteRecord{{Pitch: 60, Onset: 0, Duration: 15}}, Pair(msgs))
}

func TestDurationsMatchClockDifference(t *testing.T) {
	msgs := []model.Message{
		model.On(60, 3), model.On(64, 2), model.On(67, 0),
		model.Off(64, 9), model.Off(60, 1), model.Off(67, 0),
		model.On(60, 4), model.Off(60, 4),
	}

	records := Pair(msgs)
	assert := assert.New(t)
	assert.Len(records, 4)
	assert.Equal(uint64(0), records[0].Onset)
	for i := 1; i < len(records); i++ {
		assert.LessOrEqual(records[i-1].Onset, records[i].Onset)
	}
	assert.Equal([]model.NoteRecord{
		{Pitch: 60, Onset: 0, Duration: 12},
		{Pitch: 64, Onset: 2, Duration: 9},
		{Pitch: 67, Onset: 2, Duration: 10},
		{Pitch: 60, Onset: 16, Duration: 4},
	}, records)
}

func TestSimplifyFormatsRecords(t *testing.T) {
	msgs := []model.Message{
		model.On(60, 96), model.Off(60, 48),
		model.On(61, 0), model.Off(61, 24),
	}

	assert := assert.New(t)
	assert.Equal([]string{"C5-0-48", "C#5-48-24"}, Simplify(msgs))
}

func TestParseClock(t *testing.T) {
	assert := assert.New(t)
	c, err := ParseClock("all")
	assert.NoError(err)
	assert.Equal(ClockAllMessages, c)

	c, err = ParseClock("")
	assert.NoError(err)
	assert.Equal(ClockNoteOnly, c)

	_, err = ParseClock("ticks")
	assert.Error(err)
}
