package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/notegrid/quantize"
	"github.com/jsphweid/notegrid/track"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"
)

func init() {
	rootCmd.AddCommand(quantizeCmd)
}

var quantizeCmd = &cobra.Command{
	Use:   "quantize <file.mid>...",
	Short: "Reports the timing grid of every channel",
	Long: `Reports, per track and channel, the smallest note delta above 1 tick and
whether every other delta is a multiple of it. The true gcd is printed next
to it. Nothing is rewritten, see snap for that.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		return eachFile(cmd.Context(), args, func(path string, s *smf.SMF, reports []track.Report) error {
			return printVerdicts(out, path, reports)
		})
	},
}

func printVerdicts(out io.Writer, path string, reports []track.Report) error {
	for _, r := range reports {
		for _, v := range quantize.Sorted(r.Verdicts) {
			var err error
			if v.Err != nil {
				_, err = fmt.Fprintf(out, "%v\ttrack %v\tchannel %v\t%v\n", path, r.Index, v.Channel, v.Err)
			} else {
				_, err = fmt.Fprintf(out, "%v\ttrack %v\tchannel %v\tbase unit %v\tquantized %v\tgcd %v\t%v\n",
					path, r.Index, v.Channel, v.BaseUnit, v.IsQuantized, v.GCD, v.Deltas)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
