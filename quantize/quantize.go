package quantize

import (
	"errors"

	"github.com/jsphweid/notegrid/model"
	"github.com/jsphweid/notegrid/util"
)

// ErrInsufficientData marks a channel whose note messages carry no delta
// above 1.
var ErrInsufficientData = errors.New("insufficient data")

// Deltas are not worth analyzing at or below this value.
const NoiseFloor = 1

func groupByChannel(msgs []model.Message) map[uint8][]uint32 {
	res := make(map[uint8][]uint32)
	for _, msg := range msgs {
		if !msg.Kind.IsNote() {
			continue
		}
		res[msg.Channel] = append(res[msg.Channel], msg.Delta)
	}
	return res
}

// TimingSet is the sorted set of distinct deltas above the noise floor.
func TimingSet(deltas []uint32) []uint32 {
	kept := util.Filter(deltas, func(d uint32) bool {
		return d > NoiseFloor
	})
	return util.Unique(kept)
}

func isDivisible(unit uint32, values []uint32) bool {
	for _, v := range values {
		if v%unit != 0 {
			return false
		}
	}
	return true
}

// Diagnose builds the verdict for one channel's timing set. BaseUnit is the
// smallest value rather than the gcd; GCD is reported alongside it.
func Diagnose(channel uint8, set []uint32) model.Verdict {
	v := model.Verdict{Channel: channel, Deltas: set}
	if len(set) == 0 {
		v.Err = ErrInsufficientData
		return v
	}

	v.BaseUnit = set[0]
	v.IsQuantized = isDivisible(v.BaseUnit, set)
	for _, d := range set {
		v.GCD = util.GCD(v.GCD, d)
	}
	return v
}

// Analyze diagnoses every channel that has note messages in the track.
func Analyze(msgs []model.Message) model.ChannelToVerdict {
	res := make(model.ChannelToVerdict)
	for channel, deltas := range groupByChannel(msgs) {
		res[channel] = Diagnose(channel, TimingSet(deltas))
	}
	return res
}

// Sorted returns the verdicts ordered by channel.
func Sorted(m model.ChannelToVerdict) []model.Verdict {
	res := make([]model.Verdict, 0, len(m))
	for _, ch := range util.GetKeysSorted(m) {
		res = append(res, m[ch])
	}
	return res
}
