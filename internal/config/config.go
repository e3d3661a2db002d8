package config

import (
	"os"

	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("main.config")

type Config struct {
	// Device is the event device path, empty means the stock pcspkr path.
	Device string
	// Backend picks what makes the noise: pcspkr, buzzer or synth.
	Backend string
	// PWMPin is the gpio pin of the buzzer backend.
	PWMPin string
	// LogSpec is a loggo logger specification like "<root>=DEBUG".
	LogSpec string
}

func Get() *Config {
	Device := os.Getenv("BEEP_DEVICE")

	Backend := os.Getenv("BEEP_BACKEND")
	if Backend == "" {
		Backend = "pcspkr"
	}
	switch Backend {
	case "pcspkr", "buzzer", "synth":
	default:
		logger.Criticalf("Invalid BEEP_BACKEND env var: %v", Backend)
		os.Exit(1)
	}

	PWMPin := os.Getenv("BEEP_PWM_PIN")
	if PWMPin == "" {
		// the usual beeper pin on the allwinner boards
		PWMPin = "PA20"
	}

	return &Config{
		Device:  Device,
		Backend: Backend,
		PWMPin:  PWMPin,
		LogSpec: os.Getenv("BEEP_LOG"),
	}
}
