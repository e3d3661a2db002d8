// buzzer drives a piezzo buzzer on a gpio pin for boards whose beeper
// is not a pcspkr device
// more info: blog.oddbit.com/post/2017-09-26-some-notes-on-pwm-on-the-raspberry-pi
package buzzer

import (
	"fmt"
	"sync"

	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/conn/physic"
	"periph.io/x/periph/host"
)

// Buzzer owns a single pwm-capable pin. The mutex serializes pin state
// changes, overlapping callers take turns.
type Buzzer struct {
	mu  sync.Mutex
	pin gpio.PinIO
}

// Open resolves the named gpio pin, names are whatever the board's
// driver registered ("PA20", "GPIO13", "13").
func Open(name string) (*Buzzer, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}

	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("no such pin: %v", name)
	}

	return &Buzzer{pin: p}, nil
}

// Beep drives a square wave of hz on the pin, 0 or less halts it. The
// pin driver rounds the frequency to what the hardware can do and
// rejects what it cannot.
func (b *Buzzer) Beep(hz int32) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if hz <= 0 {
		return b.pin.Halt()
	}

	return b.pin.PWM(gpio.DutyHalf, physic.Frequency(hz)*physic.Hertz)
}

// Close halts the pin and leaves it low so the transistor does not
// drift into its active region and heat up while idle.
func (b *Buzzer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.pin.Halt(); err != nil {
		return err
	}

	return b.pin.Out(gpio.Low)
}
