package cmd

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/jsphweid/notegrid/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(snapCmd)
}

var snapCmd = &cobra.Command{
	Use:   "snap <in.mid> <out.mid>",
	Short: "Writes a copy of a midi file with its notes moved onto a grid",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		out, err := os.Create(args[1])
		if err != nil {
			return err
		}
		defer out.Close()

		if err := midi.Snap(in, out); err != nil {
			return err
		}
		charmlog.FromContext(cmd.Context()).Info("snapped", "in", args[0], "out", args[1])
		return nil
	},
}
