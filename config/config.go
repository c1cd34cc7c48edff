package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jsphweid/notegrid/constants"
	"github.com/jsphweid/notegrid/notes"
	"gopkg.in/yaml.v3"
)

type Window struct {
	MinTrackNotes   int `yaml:"min_track_notes"`
	WindowsPerTrack int `yaml:"windows_per_track"`
	InputMin        int `yaml:"input_min"`
	InputMax        int `yaml:"input_max"`
	OutputLen       int `yaml:"output_len"`
}

type Config struct {
	Clock  string `yaml:"clock"`
	Addr   string `yaml:"addr"`
	Seed   int64  `yaml:"seed"`
	Window Window `yaml:"window"`
}

func Default() Config {
	return Config{
		Clock: notes.ClockNoteOnly.String(),
		Addr:  constants.GetAddr(),
		Window: Window{
			MinTrackNotes:   constants.MinTrackNotes,
			WindowsPerTrack: constants.WindowsPerTrack,
			InputMin:        constants.InputMin,
			InputMax:        constants.InputMax,
			OutputLen:       constants.OutputLen,
		},
	}
}

func (w Window) Validate() error {
	switch {
	case w.InputMin <= 0 || w.OutputLen <= 0:
		return errors.New("window: input_min and output_len must be positive")
	case w.InputMax < w.InputMin:
		return fmt.Errorf("window: input_max %d is below input_min %d", w.InputMax, w.InputMin)
	case w.MinTrackNotes < w.InputMin+w.OutputLen:
		return fmt.Errorf("window: min_track_notes %d cannot fit %d input and %d output notes",
			w.MinTrackNotes, w.InputMin, w.OutputLen)
	case w.WindowsPerTrack < 0:
		return errors.New("window: windows_per_track must not be negative")
	}
	return nil
}

func (c Config) ClockMode() (notes.Clock, error) {
	return notes.ParseClock(c.Clock)
}

// Load reads the yaml file at path over the defaults. A missing file is only
// an error when mustExist is set; otherwise the defaults are used as they are.
func Load(path string, mustExist bool) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !mustExist {
		return c, nil
	}
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing %s: %w", path, err)
	}
	if _, err := c.ClockMode(); err != nil {
		return c, err
	}
	return c, c.Window.Validate()
}
