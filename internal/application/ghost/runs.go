package ghost

import (
	"encoding/binary"
	"fmt"
)

// run is one (state, length) record of a run-length stream
type run struct {
	state  byte
	length int
}

// readRuns reads count two-byte run records starting at off and returns
// them with the offset just past the last record.
func readRuns(data []byte, off, count int) ([]run, int, error) {
	end := off + 2*count
	if off < 0 || end > len(data) {
		return nil, 0, fmt.Errorf("%w: %d runs at 0x%x overrun %d byte body", ErrMalformedReplay, count, off, len(data))
	}

	runs := make([]run, count)
	for i := range runs {
		runs[i] = run{state: data[off], length: int(data[off+1])}
		off += 2
	}
	return runs, off, nil
}

// expand repeats each run's unpacked state for its length. unpack may
// lengthen a run by returning extra frames.
func expand[T any](runs []run, unpack func(state byte) (value T, extra int)) []T {
	var out []T
	for _, r := range runs {
		v, extra := unpack(r.state)
		for range r.length + extra {
			out = append(out, v)
		}
	}
	return out
}

// stick is the analog stick position of a run
type stick struct {
	horizontal int
	vertical   int
}

// unpackStick splits an analog state: low nibble vertical, high nibble horizontal
func unpackStick(state byte) (stick, int) {
	return stick{
		horizontal: int(state>>4) & 0x0f,
		vertical:   int(state) & 0x0f,
	}, 0
}

func u16be(data []byte, off int) (int, error) {
	if off+2 > len(data) {
		return 0, fmt.Errorf("%w: header at 0x%x beyond %d bytes", ErrMalformedReplay, off, len(data))
	}
	return int(binary.BigEndian.Uint16(data[off:])), nil
}

func u16le(data []byte, off int) (int, error) {
	if off+2 > len(data) {
		return 0, fmt.Errorf("%w: header at 0x%x beyond %d bytes", ErrMalformedReplay, off, len(data))
	}
	return int(binary.LittleEndian.Uint16(data[off:])), nil
}

// checkLengths fails unless every expanded stream has the same length
func checkLengths(names []string, lengths ...int) error {
	for i := 1; i < len(lengths); i++ {
		if lengths[i] != lengths[0] {
			return fmt.Errorf("%w: %s stream has %d frames, %s stream has %d",
				ErrMalformedReplay, names[0], lengths[0], names[i], lengths[i])
		}
	}
	return nil
}
