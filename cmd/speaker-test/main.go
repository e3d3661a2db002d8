package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pcbeep/internal/pcspkr"
)

func main() {
	dev, err := pcspkr.Open("")
	if err != nil {
		fmt.Printf("err: %v\n", err)
		return
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	loop(dev.Speaker, c)
	_ = dev.Close()
}

// loop cycles 440hz - 880hz - silence until a signal arrives. A tone
// keeps sounding after exit unless it is turned off, so the speaker is
// silenced before returning.
func loop(s *pcspkr.Speaker, c <-chan os.Signal) {
	for {
		for _, hz := range []int32{440, 880, 0} {
			if err := s.Beep(hz); err != nil {
				fmt.Printf("beep err: %v\n", err)
			}

			select {
			case <-c:
				_ = s.Silence()
				return
			case <-time.After(500 * time.Millisecond):
			}
		}
	}
}
