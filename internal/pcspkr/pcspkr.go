// pcspkr beeps the pc speaker through the linux input event interface
// more info: www.kernel.org/doc/html/latest/input/event-codes.html#ev-snd
package pcspkr

import (
	"io"
	"os"
)

// DefaultPath is where the pcspkr platform device shows up on a stock
// kernel. There is no autodetection, pass a different path to Open
// when the box differs.
const DefaultPath = "/dev/input/by-path/platform-pcspkr-event-spkr"

// Speaker emits sound events on an already open event device.
// It borrows the handle: it never opens, closes or validates it, keeps
// no state between calls and adds no locking. Values go to the driver
// untouched and whatever the driver answers comes back untouched, the
// driver decides what it accepts.
type Speaker struct {
	w io.Writer
}

// New returns a Speaker writing to w. The caller keeps ownership of w.
func New(w io.Writer) *Speaker {
	return &Speaker{w: w}
}

// Beep starts a continuous tone of hz on the speaker. The tone sounds
// until the next call, 0 switches the speaker off.
func (s *Speaker) Beep(hz int32) error {
	return s.Emit(Event{Type: EV_SND, Code: SND_TONE, Value: hz})
}

// Silence switches the speaker off.
func (s *Speaker) Silence() error {
	return s.Beep(0)
}

// Bell rings the fixed-pitch bell of the driver, 1000hz on pcspkr.
func (s *Speaker) Bell(on bool) error {
	var v int32
	if on {
		v = 1
	}

	return s.Emit(Event{Type: EV_SND, Code: SND_BELL, Value: v})
}

// Click emits the key-click sound event.
func (s *Speaker) Click(on bool) error {
	var v int32
	if on {
		v = 1
	}

	return s.Emit(Event{Type: EV_SND, Code: SND_CLICK, Value: v})
}

// Emit writes a single event record to the device. The record has to
// go out whole, the kernel treats event writes as atomic at this size.
func (s *Speaker) Emit(ev Event) error {
	b, err := ev.MarshalBinary()
	if err != nil {
		return err
	}

	n, err := s.w.Write(b)
	if err != nil {
		return err
	}

	if n < len(b) {
		return io.ErrShortWrite
	}

	return nil
}

// Device owns an open speaker device file.
type Device struct {
	*Speaker
	f *os.File
}

// Open opens the event device at path write-only, an empty path means
// DefaultPath. It does not check that the device supports tone events,
// a speaker-less device simply fails on Beep.
func Open(path string) (*Device, error) {
	if path == "" {
		path = DefaultPath
	}

	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return nil, err
	}

	return &Device{Speaker: New(f), f: f}, nil
}

func (d *Device) Close() error {
	return d.f.Close()
}
