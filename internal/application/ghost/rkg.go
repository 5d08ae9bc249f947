package ghost

import (
	"fmt"

	"github.com/younwookim/ghostoverlay/internal/domain/input"
)

// RKG layout
//
//	0x00  file header (0x88 bytes) and compressed length (4 bytes)
//	0x8C  input section, Yaz1 compressed
//
// Decompressed input section:
//
//	0x00  button run count  (u16 BE)
//	0x02  analog run count  (u16 BE)
//	0x04  trick run count   (u16 BE)
//	0x06  padding
//	0x08  button runs, analog runs, trick runs (2 bytes each)
const (
	rkgHeaderSize  = 0x8C
	rkgRunsStart   = 0x08
	rkgAccelerate  = 0x01
	rkgDrift       = 0x02
	rkgItem        = 0x04
	rkgTrickMask   = 0x70
	rkgTrickShift  = 4
	rkgExtraFrames = 0x0F
)

type rkgButtons struct {
	accelerate bool
	drift      bool
	item       bool
}

func unpackRKGButtons(state byte) (rkgButtons, int) {
	return rkgButtons{
		accelerate: state&rkgAccelerate != 0,
		drift:      state&rkgDrift != 0,
		item:       state&rkgItem != 0,
	}, 0
}

// unpackTrick returns the trick id and the frames its low nibble adds to the run
func unpackTrick(state byte) (input.Trick, int) {
	return input.Trick((state & rkgTrickMask) >> rkgTrickShift), int(state & rkgExtraFrames)
}

func decodeRKG(src []byte, decompress Decompressor) ([]input.FrameRecord, error) {
	if len(src) < rkgHeaderSize {
		return nil, fmt.Errorf("%w: %d byte file is shorter than the 0x%x byte header", ErrMalformedReplay, len(src), rkgHeaderSize)
	}

	data, err := decompress(src[rkgHeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedReplay, err)
	}

	var counts [3]int
	for i := range counts {
		if counts[i], err = u16be(data, 2*i); err != nil {
			return nil, err
		}
	}

	buttonRuns, off, err := readRuns(data, rkgRunsStart, counts[0])
	if err != nil {
		return nil, err
	}
	analogRuns, off, err := readRuns(data, off, counts[1])
	if err != nil {
		return nil, err
	}
	trickRuns, _, err := readRuns(data, off, counts[2])
	if err != nil {
		return nil, err
	}

	buttons := expand(buttonRuns, unpackRKGButtons)
	sticks := expand(analogRuns, unpackStick)
	tricks := expand(trickRuns, unpackTrick)

	if err := checkLengths([]string{"button", "analog", "trick"}, len(buttons), len(sticks), len(tricks)); err != nil {
		return nil, err
	}

	records := make([]input.FrameRecord, len(buttons))
	for i := range records {
		records[i] = input.FrameRecord{
			Accelerate: buttons[i].accelerate,
			Drift:      buttons[i].drift,
			Item:       buttons[i].item,
			Horizontal: sticks[i].horizontal,
			Vertical:   sticks[i].vertical,
			Trick:      tricks[i],
		}
	}
	return records, nil
}
