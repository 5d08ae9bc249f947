package ghost

import (
	"fmt"

	"github.com/younwookim/ghostoverlay/internal/domain/input"
)

// MK7 layout. The input section starts at 0xC0 and is not compressed.
//
//	0x00  button section length in bytes (u16 LE)
//	0x02  analog section length in bytes (u16 LE)
//	0x04  button runs, analog runs (2 bytes each)
//
// The stored lengths count bytes, so a section holds length/2 runs.
const (
	mk7HeaderSize = 0xC0
	mk7RunsStart  = 0x04
	mk7RunSize    = 2
)

// MK7 button bits
const (
	mk7A byte = 1 << iota
	mk7B
	mk7X
	mk7Y
	mk7L
	mk7R
	mk7FirstPerson
)

func unpackMK7Buttons(state byte) (input.FrameRecord, int) {
	return input.FrameRecord{
		A:           state&mk7A != 0,
		B:           state&mk7B != 0,
		X:           state&mk7X != 0,
		Y:           state&mk7Y != 0,
		L:           state&mk7L != 0,
		R:           state&mk7R != 0,
		FirstPerson: state&mk7FirstPerson != 0,
	}, 0
}

func decodeMK7(src []byte) ([]input.FrameRecord, error) {
	if len(src) < mk7HeaderSize {
		return nil, fmt.Errorf("%w: %d byte file is shorter than the 0x%x byte header", ErrMalformedReplay, len(src), mk7HeaderSize)
	}
	data := src[mk7HeaderSize:]

	buttonBytes, err := u16le(data, 0)
	if err != nil {
		return nil, err
	}
	analogBytes, err := u16le(data, 2)
	if err != nil {
		return nil, err
	}

	buttonRuns, off, err := readRuns(data, mk7RunsStart, buttonBytes/mk7RunSize)
	if err != nil {
		return nil, err
	}
	analogRuns, _, err := readRuns(data, off, analogBytes/mk7RunSize)
	if err != nil {
		return nil, err
	}

	records := expand(buttonRuns, unpackMK7Buttons)
	sticks := expand(analogRuns, unpackStick)

	if err := checkLengths([]string{"button", "analog"}, len(records), len(sticks)); err != nil {
		return nil, err
	}

	for i := range records {
		records[i].Horizontal = sticks[i].horizontal
		records[i].Vertical = sticks[i].vertical
	}
	return records, nil
}
