package pitch

import (
	"errors"
	"fmt"
	"strconv"
)

// Invalid is returned by Name for numbers outside the MIDI range.
const Invalid = "Invalid Note"

var (
	ErrEmpty  = errors.New("empty note string")
	ErrFormat = errors.New("invalid note string")
)

var names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Name maps a MIDI note number to a name like "C#4". The octave is n/12, so
// middle C (60) is "C5".
func Name(n int) string {
	if n < 0 || n > 127 {
		return Invalid
	}
	return names[n%12] + strconv.Itoa(n/12)
}

func index(name string) int {
	for i, v := range names {
		if v == name {
			return i
		}
	}
	return -1
}

// Parse is the inverse of Name. The last character must be a single octave
// digit and everything before it a note letter with an optional sharp.
func Parse(s string) (uint8, error) {
	if s == "" {
		return 0, ErrEmpty
	}
	if len(s) < 2 {
		return 0, fmt.Errorf("%w: %q is missing note or octave", ErrFormat, s)
	}

	i := index(s[:len(s)-1])
	octave, err := strconv.Atoi(s[len(s)-1:])
	if i < 0 || err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFormat, s)
	}

	// a single digit octave tops out at B9 (119), always in range
	return uint8(i + octave*12), nil
}
