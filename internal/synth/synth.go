// synth approximates the pc speaker on the sound card for boxes that
// have neither a pcspkr device nor a piezo.
package synth

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

type Synth struct {
	mu sync.Mutex
}

// Open initializes the default audio output.
func Open() (*Synth, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second)/10); err != nil {
		return nil, err
	}

	return &Synth{}, nil
}

// Beep replaces whatever sounds with a square tone of hz that plays
// until the next call. Values the pcspkr driver would switch the
// speaker off for do the same here.
func (s *Synth) Beep(hz int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	speaker.Clear()
	if hz <= 0 {
		return nil
	}

	g, err := squareTone(sampleRate, float64(hz))
	if err != nil {
		return err
	}

	speaker.Play(g)
	return nil
}

func (s *Synth) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	speaker.Clear()
	return nil
}

// square is an endless square wave streamer, the closest a sound card
// gets to the pc speaker timbre.
type square struct {
	dt float64
	t  float64
}

func squareTone(sr beep.SampleRate, freq float64) (beep.Streamer, error) {
	dt := freq / float64(sr)
	if dt >= 1.0/2.0 {
		return nil, errors.New("frequency must be below half the sample rate")
	}

	return &square{dt: dt}, nil
}

func (g *square) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := 1.0
		if g.t >= 0.5 {
			v = -1.0
		}
		samples[i][0] = v
		samples[i][1] = v
		_, g.t = math.Modf(g.t + g.dt)
	}

	return len(samples), true
}

func (*square) Err() error {
	return nil
}
