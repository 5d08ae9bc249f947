// Package ghost decodes race replay ("ghost") files into per-frame input
// timelines.
//
// Three layouts are supported. RKG (Mario Kart Wii) and MK7 (Mario Kart 7)
// store run-length encoded button and stick streams; DTM (Dolphin movies)
// stores one fixed size record per polled input.
package ghost

import (
	"errors"
	"fmt"
	"os"

	"github.com/younwookim/ghostoverlay/internal/application/replay"
	"github.com/younwookim/ghostoverlay/internal/domain/input"
	"github.com/younwookim/ghostoverlay/internal/infrastructure/yaz"
)

// Frame rates. The ghost formats store game frames; DTM stores polls.
const (
	GhostFrameRate = 59.94
	DTMFrameRate   = 180.0
)

var (
	// ErrMalformedReplay is returned when a ghost is truncated or its
	// streams disagree. No partial timeline is returned with it.
	ErrMalformedReplay = errors.New("malformed replay")

	// ErrUnknownFormat is returned for a format value with no decoder
	ErrUnknownFormat = errors.New("unknown replay format")
)

// Decompressor reverses the compression applied to RKG input sections
type Decompressor func(src []byte) ([]byte, error)

// Decoder turns replay bytes into timelines
type Decoder struct {
	decompress Decompressor
}

// NewDecoder creates a decoder using Yaz decompression for RKG bodies
func NewDecoder() *Decoder {
	return &Decoder{decompress: yaz.Decode}
}

// NewDecoderWith creates a decoder with a custom RKG decompressor
func NewDecoderWith(decompress Decompressor) *Decoder {
	return &Decoder{decompress: decompress}
}

// Decode decodes data in the given layout
func (d *Decoder) Decode(data []byte, format input.Format) (*replay.Timeline, error) {
	var (
		records []input.FrameRecord
		rate    float64
		err     error
	)

	switch format {
	case input.FormatRKG:
		records, err = decodeRKG(data, d.decompress)
		rate = GhostFrameRate
	case input.FormatMK7:
		records, err = decodeMK7(data)
		rate = GhostFrameRate
	case input.FormatDTM:
		records = decodeDTM(data)
		rate = DTMFrameRate
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}

	return replay.NewTimeline(format, rate, records), nil
}

// DecodeBytes decodes an in-memory ghost. Without a file name there is no
// extension to go by, so the data is read as RKG.
func (d *Decoder) DecodeBytes(data []byte) (*replay.Timeline, error) {
	return d.Decode(data, input.FormatRKG)
}

// DecodeFile reads and decodes a ghost file, picking the layout from the
// file extension.
func (d *Decoder) DecodeFile(path string) (*replay.Timeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ghost: %w", err)
	}
	return d.Decode(data, input.FormatFromPath(path))
}

var defaultDecoder = NewDecoder()

// Decode decodes data in the given layout with the default decoder
func Decode(data []byte, format input.Format) (*replay.Timeline, error) {
	return defaultDecoder.Decode(data, format)
}

// DecodeBytes decodes an in-memory RKG ghost with the default decoder
func DecodeBytes(data []byte) (*replay.Timeline, error) {
	return defaultDecoder.DecodeBytes(data)
}

// DecodeFile decodes a ghost file with the default decoder
func DecodeFile(path string) (*replay.Timeline, error) {
	return defaultDecoder.DecodeFile(path)
}
