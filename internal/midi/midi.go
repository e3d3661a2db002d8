// midi flattens standard midi files into melodies.
package midi

import (
	"math"
	"sort"
	"time"

	"gitlab.com/gomidi/midi/reader"

	"pcbeep/internal/melody"
)

type noteEvent struct {
	key uint8
	on  bool
	rt  time.Duration
}

type collector struct {
	rd     *reader.Reader
	events []noteEvent
}

// Load parses a standard midi file into a single-voice melody. The pc
// speaker plays one tone at a time, so overlapping notes get
// flattened: a later note-on preempts the sounding note and gaps
// between notes become rests.
func Load(path string) (melody.Melody, error) {
	c := &collector{}
	c.rd = reader.New(reader.NoLogger(),
		reader.NoteOn(c.noteOn),
		reader.NoteOff(c.noteOff),
	)

	if err := reader.ReadSMFFile(c.rd, path); err != nil {
		return nil, err
	}

	return c.flatten(), nil
}

func (c *collector) noteOn(p *reader.Position, channel, key, vel uint8) {
	// a zero velocity note-on is a running status note-off
	if vel == 0 {
		c.noteOff(p, channel, key, vel)
		return
	}

	c.events = append(c.events, noteEvent{key: key, on: true, rt: c.timeAt(p)})
}

func (c *collector) noteOff(p *reader.Position, channel, key, vel uint8) {
	c.events = append(c.events, noteEvent{key: key, on: false, rt: c.timeAt(p)})
}

// timeAt converts absolute ticks to wall clock time through the tempo
// map of the file.
func (c *collector) timeAt(p *reader.Position) time.Duration {
	return *reader.TimeAt(c.rd, p.AbsoluteTicks)
}

func (c *collector) flatten() melody.Melody {
	// tracks arrive one after the other, order the events globally
	sort.SliceStable(c.events, func(i, j int) bool {
		return c.events[i].rt < c.events[j].rt
	})

	var m melody.Melody
	var pos time.Duration // end of the emitted part of the melody
	var key uint8
	var since time.Duration
	sounding := false

	add := func(k uint8, from, to time.Duration) {
		if to <= from {
			return
		}

		if from > pos {
			// silence between notes becomes a rest
			m = append(m, melody.Note{Length: from - pos, Repeats: 1})
		}

		m = append(m, melody.Note{Frequency: KeyToFreq(k), Length: to - from, Repeats: 1})
		pos = to
	}

	for _, e := range c.events {
		if e.on {
			if sounding {
				add(key, since, e.rt)
			}
			key, since, sounding = e.key, e.rt, true
			continue
		}

		if sounding && e.key == key {
			add(key, since, e.rt)
			sounding = false
		}
		// note-offs of already preempted keys mean nothing here
	}

	return m
}

// KeyToFreq converts a midi key number to hertz, key 69 is 440hz.
func KeyToFreq(key uint8) uint16 {
	return uint16(math.Pow(2, float64(key)/12.0) * 8.1758)
}
