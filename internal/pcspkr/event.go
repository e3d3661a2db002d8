package pcspkr

import (
	"bytes"
	"encoding/binary"
	"syscall"
	"unsafe"
)

// Sound event constants from linux/input-event-codes.h.
const (
	EV_SND    uint16 = 0x12
	SND_CLICK uint16 = 0x00
	SND_BELL  uint16 = 0x01
	SND_TONE  uint16 = 0x02
)

// Event mirrors struct input_event from linux/input.h.
// The layout has to match the running kernel exactly: the timestamp is
// a native timeval, the rest is fixed-width, everything native-endian.
type Event struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// EventSize returns the width of the kernel record on this
// architecture, 24 bytes on 64-bit and 16 on 32-bit.
func EventSize() int {
	return int(unsafe.Sizeof(Event{}))
}

// MarshalBinary encodes the event the way the kernel expects it on the
// device file. The struct has no padding on either ABI, so the encoded
// form is exactly EventSize bytes.
func (ev Event) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, EventSize()))
	if err := binary.Write(buf, binary.NativeEndian, ev); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a single kernel input_event record.
func (ev *Event) UnmarshalBinary(data []byte) error {
	return binary.Read(bytes.NewReader(data), binary.NativeEndian, ev)
}
