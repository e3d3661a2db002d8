package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/juju/loggo"

	"pcbeep/internal/buzzer"
	"pcbeep/internal/config"
	"pcbeep/internal/feedback"
	"pcbeep/internal/logwriter"
	"pcbeep/internal/melody"
	"pcbeep/internal/midi"
	"pcbeep/internal/pcspkr"
	"pcbeep/internal/synth"
)

var logger = loggo.GetLogger("main")

var (
	freq     = flag.Int("f", int(melody.DefaultFrequency), "frequency of the note in hz")
	length   = flag.Int("l", int(melody.DefaultLength/time.Millisecond), "length of the note in milliseconds")
	repeats  = flag.Int("r", int(melody.DefaultRepeats), "how often the note plays")
	delay    = flag.Int("D", int(melody.DefaultDelay/time.Millisecond), "delay between repeats in milliseconds")
	device   = flag.String("d", "", "event device path overriding BEEP_DEVICE")
	backend  = flag.String("b", "", "backend overriding BEEP_BACKEND: pcspkr, buzzer or synth")
	midiFile = flag.String("m", "", "play a standard midi file")
	jsonFile = flag.String("j", "", "play a melody from a json file")
	outFile  = flag.String("o", "", "write the melody as json instead of playing it")
	pattern  = flag.String("p", "", "play a canned feedback pattern: startup, success or fail")
	demo     = flag.Bool("demo", false, "play the demo tune")
)

func main() {
	cfg := config.Get()
	flag.Parse()

	if err := logwriter.Setup(); err != nil {
		panic("logwriter setup failed, impossible")
	}

	if err := logwriter.Configure(cfg.LogSpec); err != nil {
		logger.Criticalf("Invalid BEEP_LOG env var: %v", err)
		os.Exit(1)
	}

	if *pattern != "" {
		playPattern(cfg, *pattern)
		return
	}

	m, err := buildMelody(flag.Args())
	if err != nil {
		logger.Criticalf("%v", err)
		os.Exit(1)
	}

	if *outFile != "" {
		if err := melody.WriteFile(*outFile, m); err != nil {
			logger.Criticalf("failed writing %v: %v", *outFile, err)
			os.Exit(1)
		}
		return
	}

	ctx, exit := context.WithCancel(context.Background())
	handleSignals(exit)

	b, closeBackend := openBackend(cfg)

	err = melody.NewPlayer(b).Play(ctx, m)
	closeBackend()

	if err != nil && ctx.Err() == nil {
		logger.Criticalf("beep error: %v", err)
		os.Exit(1)
	}
}

func handleSignals(exit context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func(c chan os.Signal) {
		s := <-c
		// the player silences the speaker on its way out
		logger.Warningf("Got signal: %s, exiting cleanly", s)
		exit()
	}(c)
}

// playPattern plays one of the canned feedback patterns.
func playPattern(cfg *config.Config, name string) {
	ctx, exit := context.WithCancel(context.Background())
	handleSignals(exit)

	b, closeBackend := openBackend(cfg)
	fb := feedback.New(b)

	var err error
	switch name {
	case "startup":
		err = fb.Startup(ctx)
	case "success":
		err = fb.Success(ctx)
	case "fail":
		err = fb.Fail(ctx)
	default:
		err = fmt.Errorf("unknown pattern: %v", name)
	}
	closeBackend()

	if err != nil && ctx.Err() == nil {
		logger.Criticalf("%v", err)
		os.Exit(1)
	}
}

// buildMelody decides what to play: a midi or json file, the demo
// tune, "frequency[:milliseconds]" arguments, or the single note the
// -f/-l/-r/-D flags describe.
func buildMelody(args []string) (melody.Melody, error) {
	switch {
	case *midiFile != "":
		return midi.Load(*midiFile)
	case *jsonFile != "":
		return melody.ReadFile(*jsonFile)
	case *demo:
		return demoTune, nil
	}

	if len(args) > 0 {
		m := make(melody.Melody, 0, len(args))
		for _, arg := range args {
			n, err := melody.ParseNote(arg)
			if err != nil {
				return nil, err
			}
			m = append(m, n)
		}
		return m, nil
	}

	// the same limits ParseNote imposes, no silent wrapping
	if *freq < 0 || *freq > math.MaxUint16 {
		return nil, fmt.Errorf("bad frequency %v: out of range", *freq)
	}
	if *repeats < 0 || *repeats > math.MaxUint16 {
		return nil, fmt.Errorf("bad repeats %v: out of range", *repeats)
	}
	if *length < 0 {
		return nil, fmt.Errorf("bad length %v: negative", *length)
	}
	if *delay < 0 {
		return nil, fmt.Errorf("bad delay %v: negative", *delay)
	}

	return melody.Melody{{
		Frequency: uint16(*freq),
		Length:    time.Duration(*length) * time.Millisecond,
		Repeats:   uint16(*repeats),
		Delay:     time.Duration(*delay) * time.Millisecond,
	}}, nil
}

// openBackend picks the noise maker, flags beat the environment.
func openBackend(cfg *config.Config) (melody.Beeper, func()) {
	be := cfg.Backend
	if *backend != "" {
		be = *backend
	}
	path := cfg.Device
	if *device != "" {
		path = *device
	}

	switch be {
	case "buzzer":
		b, err := buzzer.Open(cfg.PWMPin)
		if err != nil {
			logger.Criticalf("failed opening the buzzer on pin %v: %v", cfg.PWMPin, err)
			os.Exit(1)
		}
		return b, func() { _ = b.Close() }
	case "synth":
		s, err := synth.Open()
		if err != nil {
			logger.Criticalf("failed opening the audio output: %v", err)
			os.Exit(1)
		}
		return s, func() { _ = s.Close() }
	case "pcspkr":
		d, err := pcspkr.Open(path)
		if err != nil {
			logger.Criticalf("failed opening the speaker device: %v", err)
			os.Exit(1)
		}
		return d, func() {
			_ = d.Silence()
			_ = d.Close()
		}
	default:
		logger.Criticalf("unknown backend: %v", be)
		os.Exit(1)
		return nil, nil
	}
}
