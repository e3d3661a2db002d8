package main

import (
	"os"
	"reflect"
	"testing"

	"pcbeep/internal/pcspkr"
)

// toneRecorder stands in for the device file and keeps the tone values.
type toneRecorder struct {
	tones []int32
}

func (r *toneRecorder) Write(p []byte) (int, error) {
	var ev pcspkr.Event
	if err := ev.UnmarshalBinary(p); err != nil {
		return 0, err
	}

	r.tones = append(r.tones, ev.Value)
	return len(p), nil
}

func TestLoopSilencesOnSignal(t *testing.T) {
	r := &toneRecorder{}
	c := make(chan os.Signal, 1)
	c <- os.Interrupt

	loop(pcspkr.New(r), c)

	// the signal lands while the first tone sounds, a 0 write has to
	// follow before the loop returns
	expected := []int32{440, 0}
	if !reflect.DeepEqual(r.tones, expected) {
		t.Errorf("expected tones %v, got %v", expected, r.tones)
	}
}
