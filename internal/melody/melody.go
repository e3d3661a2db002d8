package melody

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Melody is a sequence of notes played in order.
type Melody []Note

// FromPairs builds a melody from (frequency, milliseconds) pairs.
func FromPairs(pairs [][2]int) Melody {
	m := make(Melody, 0, len(pairs))
	for _, p := range pairs {
		m = append(m, NewNote(uint16(p[0]), time.Duration(p[1])*time.Millisecond))
	}

	return m
}

// ReadFile loads a melody from a json file. The file holds an array of
// notes, full objects and [frequency, milliseconds] pairs both work:
//
//	[[659, 120], {"frequency": 880, "length_ms": 50, "repeats": 2, "delay_ms": 25}]
func ReadFile(path string) (Melody, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Melody
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	return m, nil
}

// WriteFile stores the melody as json. The file is written next to its
// final place and renamed over it, so a crash cannot leave a
// half-written melody behind.
func WriteFile(path string, m Melody) error {
	data, err := json.MarshalIndent(m, "", "\t")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tf, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path))
	if err != nil {
		return err
	}

	if _, err := tf.Write(data); err != nil {
		_ = tf.Close()
		return err
	}

	if err := tf.Sync(); err != nil {
		_ = tf.Close()
		return err
	}
	_ = tf.Close()

	return os.Rename(tf.Name(), path)
}
