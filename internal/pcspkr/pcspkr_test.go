package pcspkr

import (
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// recordingWriter stands in for the device file.
type recordingWriter struct {
	calls  int
	writes [][]byte
	err    error
	short  bool
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	w.calls++
	if w.err != nil {
		return 0, w.err
	}

	w.writes = append(w.writes, append([]byte(nil), p...))

	if w.short {
		return len(p) - 1, nil
	}

	return len(p), nil
}

func (w *recordingWriter) event(t *testing.T, i int) Event {
	t.Helper()

	var ev Event
	if err := ev.UnmarshalBinary(w.writes[i]); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	return ev
}

func TestBeepSingleWrite(t *testing.T) {
	w := &recordingWriter{}
	s := New(w)

	if err := s.Beep(440); err != nil {
		t.Fatalf("beep error: %v", err)
	}

	if w.calls != 1 {
		t.Fatalf("expected 1 write, got %v", w.calls)
	}
	if len(w.writes[0]) != EventSize() {
		t.Errorf("expected %v bytes, got %v", EventSize(), len(w.writes[0]))
	}

	ev := w.event(t, 0)
	if ev.Type != EV_SND || ev.Code != SND_TONE {
		t.Errorf("expected a tone event, got %+v", ev)
	}
	if ev.Value != 440 {
		t.Errorf("expected value 440, got %v", ev.Value)
	}
	if ev.Time.Sec != 0 || ev.Time.Usec != 0 {
		t.Errorf("expected zeroed timestamp, got %+v", ev.Time)
	}
}

func TestBeepValuePassthrough(t *testing.T) {
	// the driver is the authority on ranges, every value goes out
	// untouched, the silly ones included
	values := []int32{0, 1, 440, 880, 20000, -1, -440, math.MaxInt32, math.MinInt32}

	w := &recordingWriter{}
	s := New(w)

	for _, hz := range values {
		if err := s.Beep(hz); err != nil {
			t.Fatalf("beep %v error: %v", hz, err)
		}
	}

	for i, hz := range values {
		ev := w.event(t, i)
		if ev.Value != hz {
			t.Errorf("expected value %v, got %v", hz, ev.Value)
		}
		if ev.Type != EV_SND || ev.Code != SND_TONE {
			t.Errorf("expected a tone event, got %+v", ev)
		}
	}
}

func TestBeepSequence(t *testing.T) {
	w := &recordingWriter{}
	s := New(w)

	for _, hz := range []int32{440, 880, 0} {
		if err := s.Beep(hz); err != nil {
			t.Fatalf("beep %v error: %v", hz, err)
		}
	}

	for i, hz := range []int32{440, 880, 0} {
		if ev := w.event(t, i); ev.Value != hz {
			t.Errorf("expected value %v, got %v", hz, ev.Value)
		}
	}
}

func TestBeepErrorPassthrough(t *testing.T) {
	boom := errors.New("boom")
	w := &recordingWriter{err: boom}
	s := New(w)

	if err := s.Beep(440); err != boom {
		t.Errorf("expected the writer error, got %v", err)
	}

	// failures are reported, never retried
	if w.calls != 1 {
		t.Errorf("expected 1 write attempt, got %v", w.calls)
	}
}

func TestBeepShortWrite(t *testing.T) {
	w := &recordingWriter{short: true}
	s := New(w)

	if err := s.Beep(440); err != io.ErrShortWrite {
		t.Errorf("expected io.ErrShortWrite, got %v", err)
	}
}

func TestSilence(t *testing.T) {
	w := &recordingWriter{}
	s := New(w)

	if err := s.Silence(); err != nil {
		t.Fatalf("silence error: %v", err)
	}

	if ev := w.event(t, 0); ev.Code != SND_TONE || ev.Value != 0 {
		t.Errorf("expected a 0hz tone event, got %+v", ev)
	}
}

func TestOpenClose(t *testing.T) {
	// a plain file stands in for the device node
	path := filepath.Join(t.TempDir(), "dev")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatalf("write error: %v", err)
	}

	d, err := Open(path)
	if err != nil {
		t.Fatalf("open error: %v", err)
	}

	if err := d.Beep(440); err != nil {
		t.Fatalf("beep error: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("close error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if len(data) != EventSize() {
		t.Fatalf("expected %v bytes on the device, got %v", EventSize(), len(data))
	}

	var ev Event
	if err := ev.UnmarshalBinary(data); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if ev.Code != SND_TONE || ev.Value != 440 {
		t.Errorf("expected a 440hz tone event, got %+v", ev)
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected an error for a missing device")
	}
}

func TestClick(t *testing.T) {
	w := &recordingWriter{}
	s := New(w)

	if err := s.Click(true); err != nil {
		t.Fatalf("click error: %v", err)
	}

	if ev := w.event(t, 0); ev.Code != SND_CLICK || ev.Value != 1 {
		t.Errorf("expected click on, got %+v", ev)
	}
}

func TestBell(t *testing.T) {
	w := &recordingWriter{}
	s := New(w)

	if err := s.Bell(true); err != nil {
		t.Fatalf("bell error: %v", err)
	}
	if err := s.Bell(false); err != nil {
		t.Fatalf("bell error: %v", err)
	}

	if on := w.event(t, 0); on.Code != SND_BELL || on.Value != 1 {
		t.Errorf("expected bell on, got %+v", on)
	}
	if off := w.event(t, 1); off.Code != SND_BELL || off.Value != 0 {
		t.Errorf("expected bell off, got %+v", off)
	}
}
