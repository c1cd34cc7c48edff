package cmd

import (
	"context"
	"time"

	"github.com/bep/debounce"
	charmlog "github.com/charmbracelet/log"
	"github.com/jsphweid/notegrid/midi"
	"github.com/jsphweid/notegrid/track"
	"gitlab.com/gomidi/midi/v2/smf"
)

type fileFunc = func(path string, s *smf.SMF, reports []track.Report) error

// eachFile analyzes every file in turn. A file that can't be read is logged
// and skipped; an error returned by fn stops the loop. While files keep
// coming quickly no progress is logged, a line shows up only once a file
// holds the loop past the debounce interval. The totals are always logged.
func eachFile(ctx context.Context, paths []string, fn fileFunc) error {
	logger := charmlog.FromContext(ctx)
	slowFile := debounce.New(250 * time.Millisecond)

	var skipped int
	for i, path := range paths {
		n := i + 1
		slowFile(func() {
			logger.Info("processing", "file", n, "of", len(paths))
		})

		s, err := midi.ReadMidiFile(path)
		if err != nil {
			logger.Warn("skipping file", "err", err)
			skipped++
			continue
		}
		if err := fn(path, s, track.AnalyzeFile(ctx, s, clockMode())); err != nil {
			return err
		}
	}

	logger.Info("processed", "files", len(paths)-skipped, "skipped", skipped)
	return nil
}
