package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/notegrid/constants"
	"github.com/jsphweid/notegrid/model"
	"github.com/jsphweid/notegrid/track"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"
)

var notesJSON bool

func init() {
	notesCmd.Flags().BoolVar(&notesJSON, "json", false, "print note records as json")
	rootCmd.AddCommand(notesCmd)
}

var notesCmd = &cobra.Command{
	Use:   "notes <file.mid>...",
	Short: "Prints the notes of every track",
	Long: `Prints the notes of every track as <Pitch>-<onset>-<duration>, joined
by "|", with onsets relative to the first note of the track.

Examples:
  notegrid notes song.mid
  notegrid notes --clock all --json song.mid`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		return eachFile(cmd.Context(), args, func(path string, s *smf.SMF, reports []track.Report) error {
			return printNotes(out, path, reports)
		})
	},
}

func printNotes(out io.Writer, path string, reports []track.Report) error {
	if notesJSON {
		res := make([]model.TrackResult, 0, len(reports))
		for _, r := range reports {
			res = append(res, r.Result())
		}
		return json.NewEncoder(out).Encode(map[string]any{"file": path, "tracks": res})
	}

	for _, r := range reports {
		if len(r.Notes) == 0 {
			continue
		}
		_, err := fmt.Fprintf(out, "%v\ttrack %v\t%v\n", path, r.Index, strings.Join(r.Notes, constants.Separator))
		if err != nil {
			return err
		}
	}
	return nil
}
