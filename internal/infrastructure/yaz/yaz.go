// Package yaz decodes the Yaz0/Yaz1 run-length compression used by Nintendo
// file formats, including the input section of compressed RKG ghosts.
//
// A Yaz stream starts with a 16 byte header:
//
//	0x00  magic "Yaz0" or "Yaz1"
//	0x04  uncompressed size (u32 big-endian)
//	0x08  reserved
//
// The body is a sequence of groups. Each group starts with a code byte whose
// bits, most significant first, describe the next eight chunks. A set bit is
// a literal byte. A clear bit is a back-reference of two or three bytes.
package yaz

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

const headerSize = 0x10

var (
	magicYaz0 = []byte("Yaz0")
	magicYaz1 = []byte("Yaz1")
)

// ErrTruncated is returned when the stream ends before the declared size
// has been produced, or a back-reference points before the output start.
var ErrTruncated = errors.New("yaz: truncated stream")

// IsCompressed reports whether src starts with a Yaz header
func IsCompressed(src []byte) bool {
	return bytes.HasPrefix(src, magicYaz0) || bytes.HasPrefix(src, magicYaz1)
}

// Decode decompresses src. Data without a Yaz header is returned unchanged,
// which is how uncompressed ghosts store their input section.
func Decode(src []byte) ([]byte, error) {
	if !IsCompressed(src) {
		return src, nil
	}
	if len(src) < headerSize {
		return nil, fmt.Errorf("header of %d bytes: %w", len(src), ErrTruncated)
	}

	size := int(binary.BigEndian.Uint32(src[4:8]))
	dst := make([]byte, 0, size)
	pos := headerSize

	for len(dst) < size {
		if pos >= len(src) {
			return nil, fmt.Errorf("code byte at 0x%x: %w", pos, ErrTruncated)
		}
		code := src[pos]
		pos++

		for bit := 7; bit >= 0 && len(dst) < size; bit-- {
			if code&(1<<bit) != 0 {
				if pos >= len(src) {
					return nil, fmt.Errorf("literal at 0x%x: %w", pos, ErrTruncated)
				}
				dst = append(dst, src[pos])
				pos++
				continue
			}

			if pos+1 >= len(src) {
				return nil, fmt.Errorf("back-reference at 0x%x: %w", pos, ErrTruncated)
			}
			b1, b2 := int(src[pos]), int(src[pos+1])
			pos += 2

			dist := ((b1&0x0f)<<8 | b2) + 1
			n := b1 >> 4
			if n == 0 {
				if pos >= len(src) {
					return nil, fmt.Errorf("long back-reference at 0x%x: %w", pos, ErrTruncated)
				}
				n = int(src[pos]) + 0x12
				pos++
			} else {
				n += 2
			}

			from := len(dst) - dist
			if from < 0 {
				return nil, fmt.Errorf("back-reference distance %d at output 0x%x: %w", dist, len(dst), ErrTruncated)
			}
			// copies may overlap the bytes being written
			for i := 0; i < n && len(dst) < size; i++ {
				dst = append(dst, dst[from+i])
			}
		}
	}

	return dst, nil
}
