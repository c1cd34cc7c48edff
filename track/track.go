package track

import (
	"context"
	"sync"

	charmlog "github.com/charmbracelet/log"
	"github.com/jsphweid/notegrid/midi"
	"github.com/jsphweid/notegrid/model"
	"github.com/jsphweid/notegrid/notes"
	"github.com/jsphweid/notegrid/quantize"
	"gitlab.com/gomidi/midi/v2/smf"
)

type Report struct {
	Index    int
	Records  []model.NoteRecord
	Notes    []string
	Verdicts model.ChannelToVerdict
}

// Result projects the report onto its json shape.
func (r Report) Result() model.TrackResult {
	res := model.TrackResult{
		Track:    r.Index,
		Notes:    r.Notes,
		Records:  r.Records,
		Verdicts: make([]model.Verdict, 0, len(r.Verdicts)),
		Skipped:  make([]int, 0),
	}
	for _, v := range quantize.Sorted(r.Verdicts) {
		if v.Err != nil {
			res.Skipped = append(res.Skipped, int(v.Channel))
			continue
		}
		res.Verdicts = append(res.Verdicts, v)
	}
	return res
}

func Analyze(index int, msgs []model.Message, clock notes.Clock) Report {
	records := notes.Pair(msgs, notes.WithClock(clock))
	return Report{
		Index:    index,
		Records:  records,
		Notes:    notes.Format(records),
		Verdicts: quantize.Analyze(msgs),
	}
}

// AnalyzeFile runs both analyzers on every track of s. Tracks run
// concurrently; reports come back in track order.
func AnalyzeFile(ctx context.Context, s *smf.SMF, clock notes.Clock) []Report {
	logger := charmlog.FromContext(ctx)
	res := make([]Report, len(s.Tracks))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for i, tr := range s.Tracks {
		wg.Add(1)
		go func(i int, tr smf.Track) {
			defer wg.Done()
			report := Analyze(i, midi.Messages(tr), clock)
			logger.Debug("analyzed track", "track", i, "events", len(tr),
				"notes", len(report.Records), "channels", len(report.Verdicts))

			mu.Lock()
			res[i] = report
			mu.Unlock()
		}(i, tr)
	}
	wg.Wait()

	return res
}
