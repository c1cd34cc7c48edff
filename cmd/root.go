package cmd

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/jsphweid/notegrid/config"
	"github.com/jsphweid/notegrid/constants"
	"github.com/jsphweid/notegrid/notes"
	"github.com/spf13/cobra"
)

var (
	cfg        = config.Default()
	configPath string
	logLevel   string
	clockFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "notegrid",
	Short: "Note extraction and quantization diagnostics for MIDI files",
	Long: `notegrid pairs note-on/note-off events into notes and checks whether
each channel's timing sits on a grid.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := charmlog.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
			Level:  level,
			Prefix: cmd.Name(),
		})
		cmd.SetContext(context.WithValue(cmd.Context(), charmlog.ContextKey, logger))

		// only the default path may be absent
		cfg, err = config.Load(configPath, cmd.Flags().Changed("config"))
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("clock") {
			cfg.Clock = clockFlag
		}
		_, err = cfg.ClockMode()
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", constants.GetConfigPath(), "yaml config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&clockFlag, "clock", notes.ClockNoteOnly.String(),
		"which deltas advance the note clock: note (note messages only) or all")
}

func clockMode() notes.Clock {
	// validated in PersistentPreRunE
	c, _ := cfg.ClockMode()
	return c
}

func Execute() {
	cobra.CheckErr(rootCmd.ExecuteContext(context.Background()))
}
