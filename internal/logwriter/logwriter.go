package logwriter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/juju/loggo"
)

type writer struct{}

// Setup replaces loggo's default writer with the compact stderr format.
func Setup() error {
	_, err := loggo.RemoveWriter("default")
	if err != nil {
		return err
	}

	return loggo.RegisterWriter("default", &writer{})
}

// Configure applies a loggo logger specification, usually the BEEP_LOG
// env var. An empty spec leaves the defaults alone.
func Configure(spec string) error {
	if spec == "" {
		return nil
	}

	return loggo.ConfigureLoggers(spec)
}

func (w *writer) Write(e loggo.Entry) {
	fmt.Fprintln(os.Stderr, formatEntry(e))
}

func formatEntry(e loggo.Entry) string {
	// who can remember the order of the levels right?
	// the letter-number prefix spells it out, T1 for TRACE, D2 for DEBUG, etc
	return fmt.Sprintf(
		"[%v%v|%v:%v:%v] %v",
		string(e.Level.String()[0]),
		int(e.Level),
		e.Module,
		filepath.Base(e.Filename),
		e.Line,
		e.Message,
	)
}
