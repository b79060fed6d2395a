package acquire

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tarm/serial"
)

// SerialSource reads little-endian int16 samples from a live serial line,
// one ADC sample per two bytes, for on-device real-time capture.
type SerialSource struct {
	port *serial.Port
}

// OpenSerial opens device at the given baud rate and returns a SerialSource
// over it.
func OpenSerial(device string, baud int) (*SerialSource, error) {
	c := &serial.Config{Name: device, Baud: baud}
	p, err := serial.OpenPort(c)
	if err != nil {
		return nil, fmt.Errorf("serial open %s: %w", device, err)
	}
	return &SerialSource{port: p}, nil
}

// Next reads the next little-endian int16 sample from the port.
func (s *SerialSource) Next() (int16, bool, error) {
	var buf [2]byte
	if _, err := io.ReadFull(s.port, buf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, false, nil
		}
		return 0, false, err
	}
	return int16(binary.LittleEndian.Uint16(buf[:])), true, nil
}

// Close closes the serial port.
func (s *SerialSource) Close() error {
	if s.port == nil {
		return nil
	}
	return s.port.Close()
}
