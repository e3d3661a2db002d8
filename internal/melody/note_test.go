package melody

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestNoteJSONForms(t *testing.T) {
	in := []byte(`[[440, 100], {"frequency": 880, "length_ms": 50, "repeats": 2, "delay_ms": 25}, {"frequency": 0, "length_ms": 300}]`)

	var m Melody
	if err := json.Unmarshal(in, &m); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	expected := Melody{
		NewNote(440, 100*time.Millisecond),
		{Frequency: 880, Length: 50 * time.Millisecond, Repeats: 2, Delay: 25 * time.Millisecond},
		{Frequency: 0, Length: 300 * time.Millisecond, Repeats: DefaultRepeats, Delay: DefaultDelay},
	}
	if !reflect.DeepEqual(m, expected) {
		t.Errorf("expected %+v, got %+v", expected, m)
	}
}

func TestNoteJSONRoundTrip(t *testing.T) {
	in := Melody{
		{Frequency: 659, Length: 120 * time.Millisecond, Repeats: 1, Delay: 100 * time.Millisecond},
		{Frequency: 0, Length: 40 * time.Millisecond, Repeats: 3, Delay: 10 * time.Millisecond},
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	var out Melody
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	if !reflect.DeepEqual(out, in) {
		t.Errorf("expected %+v, got %+v", in, out)
	}
}

func TestNoteJSONRange(t *testing.T) {
	for _, bad := range []string{
		`[[70000, 100]]`,
		`[[-100, 50]]`,
		`[[440, -1]]`,
		`[{"frequency": 440, "length_ms": -5}]`,
		`[{"frequency": 440, "delay_ms": -5}]`,
	} {
		var m Melody
		if err := json.Unmarshal([]byte(bad), &m); err == nil {
			t.Errorf("expected an error for %v", bad)
		}
	}

	// the edges of the pair form still work
	var m Melody
	if err := json.Unmarshal([]byte(`[[65535, 0], [0, 100]]`), &m); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if m[0].Frequency != 65535 || m[1].Frequency != 0 {
		t.Errorf("unexpected notes: %+v", m)
	}
}

func TestParseNote(t *testing.T) {
	n, err := ParseNote("440")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if n != DefaultNote() {
		t.Errorf("expected the default note, got %+v", n)
	}

	n, err = ParseNote("880:50")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if n.Frequency != 880 || n.Length != 50*time.Millisecond {
		t.Errorf("expected 880hz for 50ms, got %+v", n)
	}
	if n.Repeats != DefaultRepeats || n.Delay != DefaultDelay {
		t.Errorf("expected default repeats and delay, got %+v", n)
	}

	for _, bad := range []string{"", "x", "440:", "440:x", "-1", "70000", "440:100:2"} {
		if _, err := ParseNote(bad); err == nil {
			t.Errorf("expected an error for %q", bad)
		}
	}
}
