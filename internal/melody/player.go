package melody

import (
	"context"
	"time"
)

// Beeper starts or stops a continuous tone, 0 means off. The speaker
// device and the alternative backends all satisfy this.
type Beeper interface {
	Beep(hz int32) error
}

// Player performs notes on a Beeper with wall clock timing. A started
// tone keeps sounding until it is turned off again, so every exit
// path, cancellation included, ends on a 0 write.
type Player struct {
	b Beeper

	// swapped out in tests to cut the waiting
	sleep func(context.Context, time.Duration) error
}

func NewPlayer(b Beeper) *Player {
	return &Player{b: b, sleep: sleepCtx}
}

// Note plays a single note: the tone for Length, then off, and every
// further repeat preceded by Delay of silence. Zero repeats play
// nothing at all.
func (p *Player) Note(ctx context.Context, n Note) error {
	for i := uint16(0); i < n.Repeats; i++ {
		if i > 0 {
			if err := p.sleep(ctx, n.Delay); err != nil {
				return err
			}
		}

		if err := p.b.Beep(int32(n.Frequency)); err != nil {
			return err
		}

		if err := p.sleep(ctx, n.Length); err != nil {
			// cancelled mid-note, shut the tone off before leaving
			_ = p.b.Beep(0)
			return err
		}

		if err := p.b.Beep(0); err != nil {
			return err
		}
	}

	return nil
}

// Play plays the melody note by note.
func (p *Player) Play(ctx context.Context, m Melody) error {
	for _, n := range m {
		if err := p.Note(ctx, n); err != nil {
			return err
		}
	}

	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
