package cmd

import (
	"math/rand"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/jsphweid/notegrid/dataset"
	"github.com/jsphweid/notegrid/sample"
	"github.com/jsphweid/notegrid/track"
	"github.com/jsphweid/notegrid/util"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"
)

var (
	datasetOut  string
	datasetMax  int
	datasetSeed int64
)

func init() {
	datasetCmd.Flags().StringVarP(&datasetOut, "output", "o", "midi_dataset.csv", "csv file to write")
	datasetCmd.Flags().IntVar(&datasetMax, "max", 0, "stop after this many midi files (0 for all)")
	datasetCmd.Flags().Int64Var(&datasetSeed, "seed", 0, "random seed (0 uses the config seed, or the clock if unset)")
	rootCmd.AddCommand(datasetCmd)
}

var datasetCmd = &cobra.Command{
	Use:   "dataset <file-or-dir>...",
	Short: "Builds a csv of input/output note windows",
	Long: `Cuts random windows out of every long enough track: an input of
input_min..input_max notes followed by the next output_len notes. Directories
are searched for .mid and .midi files.

Example:
  notegrid dataset -o train.csv --seed 1 ~/midi`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := charmlog.FromContext(cmd.Context())
		if err := cfg.Window.Validate(); err != nil {
			return err
		}

		paths, err := util.GatherAllMidiPaths(args, datasetMax)
		if err != nil {
			return err
		}

		f, err := os.Create(datasetOut)
		if err != nil {
			return err
		}
		defer f.Close()

		w, err := dataset.NewWriter(f)
		if err != nil {
			return err
		}

		sampler := sample.New(cfg.Window, rand.New(rand.NewSource(seed())))
		err = eachFile(cmd.Context(), paths, func(path string, s *smf.SMF, reports []track.Report) error {
			for _, r := range reports {
				examples := sampler.Create(r.Index, r.Notes)
				if len(examples) > 0 {
					logger.Debug("sampled", "file", path, "track", r.Index, "first", examples[0].ID)
				}
				if err := w.Write(examples...); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return err
		}

		logger.Info("wrote dataset", "path", datasetOut, "files", len(paths), "examples", w.Written())
		return nil
	},
}

func seed() int64 {
	switch {
	case datasetSeed != 0:
		return datasetSeed
	case cfg.Seed != 0:
		return cfg.Seed
	}
	return time.Now().UnixNano()
}
