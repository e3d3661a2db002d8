// feedback plays the short canned patterns a device uses to signal
// state changes: startup, success and failure.
package feedback

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"pcbeep/internal/melody"
)

// the classic piezo feedback pitch
const beepFreq = 2068

// BeepDurr is the base duration the patterns derive from.
var BeepDurr = 150 * time.Millisecond

// MinInterval configures the limiter to play at most 1 pattern per MinInterval
var MinInterval = 500 * time.Millisecond

type Feedback struct {
	player  *melody.Player
	limiter *rate.Limiter
}

func New(b melody.Beeper) *Feedback {
	return &Feedback{
		player: melody.NewPlayer(b),
		// limit beep spam to once every MinInterval
		limiter: rate.NewLimiter(rate.Every(MinInterval), 1),
	}
}

// Startup chirps once, shorter than Success.
func (f *Feedback) Startup(ctx context.Context) error {
	return f.play(ctx, melody.Note{Frequency: beepFreq, Length: BeepDurr / 3, Repeats: 1})
}

// Success beeps once.
func (f *Feedback) Success(ctx context.Context) error {
	return f.play(ctx, melody.Note{Frequency: beepFreq, Length: BeepDurr, Repeats: 1})
}

// Fail pulses four times.
func (f *Feedback) Fail(ctx context.Context) error {
	return f.play(ctx, melody.Note{Frequency: beepFreq, Length: BeepDurr / 2, Repeats: 4, Delay: BeepDurr / 2})
}

func (f *Feedback) play(ctx context.Context, n melody.Note) error {
	if err := f.limiter.Wait(ctx); err != nil {
		return err
	}

	return f.player.Note(ctx, n)
}

// Multi fans every beep out to all backends at once, the pc speaker
// and a piezo buzzer together for example. It is a Beeper itself.
type Multi []melody.Beeper

func (m Multi) Beep(hz int32) error {
	g := &errgroup.Group{}
	for _, b := range m {
		b := b
		g.Go(func() error {
			return b.Beep(hz)
		})
	}

	return g.Wait()
}
