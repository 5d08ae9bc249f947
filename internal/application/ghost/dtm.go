package ghost

import (
	"github.com/younwookim/ghostoverlay/internal/domain/input"
)

// DTM layout: uncompressed 8 byte records from 0x100 to the end of the file.
//
//	0  buttons: START A B X Y Z UP DOWN (LSB first)
//	1  buttons: LEFT RIGHT L R disc reset - -
//	2  L trigger analog
//	3  R trigger analog
//	4  stick x (1..255)
//	5  stick y (1..255)
//	6  C-stick x
//	7  C-stick y
//
// The flag positions follow the community DTM-To-Txt converter and have not
// been checked against Dolphin's own documentation.
const (
	dtmHeaderSize = 0x100
	dtmRecordSize = 8
	dtmStickX     = 4
	dtmStickY     = 5
	dtmStickSpan  = 254
)

// flag indices after unpacking the two button bytes
const (
	dtmFlagA     = 1
	dtmFlagB     = 2
	dtmFlagUp    = 6
	dtmFlagDown  = 7
	dtmFlagLeft  = 8
	dtmFlagRight = 9
	dtmFlagL     = 10
	dtmFlagR     = 11
)

// dtmTricks maps D-pad flags to trick ids; the first one held wins
var dtmTricks = [...]struct {
	flag  int
	trick input.Trick
}{
	{dtmFlagUp, 1},
	{dtmFlagDown, 2},
	{dtmFlagLeft, 3},
	{dtmFlagRight, 4},
}

// unpackBits splits a bitfield into flags, least significant bit first
func unpackBits(b byte) [8]bool {
	var flags [8]bool
	for i := range flags {
		flags[i] = b&1 != 0
		b >>= 1
	}
	return flags
}

// discretize maps a raw stick byte onto 0..14, i.e. floor((b-1) / (254/14))
// computed exactly. 0 is outside the documented range and reads as 0.
func discretize(b byte) int {
	if b == 0 {
		return 0
	}
	return (int(b) - 1) * input.StickMax / dtmStickSpan
}

func decodeDTMRecord(rec []byte) input.FrameRecord {
	var flags [16]bool
	lo, hi := unpackBits(rec[0]), unpackBits(rec[1])
	copy(flags[:8], lo[:])
	copy(flags[8:], hi[:])

	var trick input.Trick
	for _, t := range dtmTricks {
		if flags[t.flag] {
			trick = t.trick
			break
		}
	}

	return input.FrameRecord{
		Accelerate: flags[dtmFlagA],
		Drift:      flags[dtmFlagB] || flags[dtmFlagR],
		Item:       flags[dtmFlagL],
		Horizontal: discretize(rec[dtmStickX]),
		Vertical:   discretize(rec[dtmStickY]),
		Trick:      trick,
	}
}

// decodeDTM reads records until fewer than eight bytes remain. A short
// final record is the end of the movie, not an error.
func decodeDTM(src []byte) []input.FrameRecord {
	var records []input.FrameRecord
	for off := dtmHeaderSize; off+dtmRecordSize <= len(src); off += dtmRecordSize {
		records = append(records, decodeDTMRecord(src[off:off+dtmRecordSize]))
	}
	return records
}
