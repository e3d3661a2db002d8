// melody describes tunes for the beeper backends: notes, sequences of
// notes and the player that performs them.
package melody

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Defaults for notes built from bare frequencies: concert pitch a'
// for 200ms, played once.
const (
	DefaultFrequency uint16 = 440
	DefaultLength           = 200 * time.Millisecond
	DefaultRepeats   uint16 = 1
	DefaultDelay            = 100 * time.Millisecond
)

// Note is a tone of a certain frequency and length that may be
// repeated with a delay between the repeats. Frequency 0 is a rest.
type Note struct {
	Frequency uint16
	Length    time.Duration
	Repeats   uint16
	Delay     time.Duration
}

// DefaultNote returns the note played when nothing else is asked for.
func DefaultNote() Note {
	return Note{
		Frequency: DefaultFrequency,
		Length:    DefaultLength,
		Repeats:   DefaultRepeats,
		Delay:     DefaultDelay,
	}
}

// NewNote builds a note of the given frequency and length that plays
// once, with the default delay should repeats get set later.
func NewNote(frequency uint16, length time.Duration) Note {
	n := DefaultNote()
	n.Frequency = frequency
	n.Length = length
	return n
}

// noteJSON is the stored form, durations are milliseconds.
type noteJSON struct {
	Frequency uint16 `json:"frequency"`
	LengthMS  int64  `json:"length_ms"`
	Repeats   uint16 `json:"repeats"`
	DelayMS   int64  `json:"delay_ms"`
}

func (n Note) MarshalJSON() ([]byte, error) {
	return json.Marshal(noteJSON{
		Frequency: n.Frequency,
		LengthMS:  n.Length.Milliseconds(),
		Repeats:   n.Repeats,
		DelayMS:   n.Delay.Milliseconds(),
	})
}

// UnmarshalJSON accepts the object form and the short
// [frequency, milliseconds] pair form, absent fields get the defaults.
func (n *Note) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		var pair [2]int64
		if err := json.Unmarshal(data, &pair); err != nil {
			return err
		}

		// same limits as the object form, no silent wrapping
		if pair[0] < 0 || pair[0] > math.MaxUint16 {
			return fmt.Errorf("bad frequency %v: out of range", pair[0])
		}
		if pair[1] < 0 {
			return fmt.Errorf("bad length %v: negative", pair[1])
		}

		*n = NewNote(uint16(pair[0]), time.Duration(pair[1])*time.Millisecond)
		return nil
	}

	def := DefaultNote()
	aux := noteJSON{
		Frequency: def.Frequency,
		LengthMS:  def.Length.Milliseconds(),
		Repeats:   def.Repeats,
		DelayMS:   def.Delay.Milliseconds(),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.LengthMS < 0 {
		return fmt.Errorf("bad length %v: negative", aux.LengthMS)
	}
	if aux.DelayMS < 0 {
		return fmt.Errorf("bad delay %v: negative", aux.DelayMS)
	}

	*n = Note{
		Frequency: aux.Frequency,
		Length:    time.Duration(aux.LengthMS) * time.Millisecond,
		Repeats:   aux.Repeats,
		Delay:     time.Duration(aux.DelayMS) * time.Millisecond,
	}
	return nil
}

// ParseNote parses the "frequency[:milliseconds]" command line form.
func ParseNote(s string) (Note, error) {
	fs, ls, hasLength := strings.Cut(s, ":")

	frequency, err := strconv.ParseUint(fs, 10, 16)
	if err != nil {
		return Note{}, fmt.Errorf("bad frequency %q: %v", fs, err)
	}

	n := DefaultNote()
	n.Frequency = uint16(frequency)

	if hasLength {
		ms, err := strconv.ParseUint(ls, 10, 32)
		if err != nil {
			return Note{}, fmt.Errorf("bad length %q: %v", ls, err)
		}
		n.Length = time.Duration(ms) * time.Millisecond
	}

	return n, nil
}
