package dataset

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/jsphweid/notegrid/constants"
	"github.com/jsphweid/notegrid/model"
)

var Header = []string{"input", "output"}

// Writer writes examples as two-column csv rows, each cell holding note
// strings joined by constants.Separator.
type Writer struct {
	w       *csv.Writer
	written int
}

func NewWriter(w io.Writer) (*Writer, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return nil, err
	}
	return &Writer{w: cw}, nil
}

func (d *Writer) Write(examples ...model.Example) error {
	for _, e := range examples {
		row := []string{
			strings.Join(e.Input, constants.Separator),
			strings.Join(e.Output, constants.Separator),
		}
		if err := d.w.Write(row); err != nil {
			return err
		}
		d.written++
	}
	return nil
}

// Written is the number of example rows, header excluded.
func (d *Writer) Written() int {
	return d.written
}

func (d *Writer) Flush() error {
	d.w.Flush()
	return d.w.Error()
}
