package yaz

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func header(magic string, size int) []byte {
	h := make([]byte, headerSize)
	copy(h, magic)
	binary.BigEndian.PutUint32(h[4:], uint32(size))
	return h
}

func TestDecode_Uncompressed(t *testing.T) {
	src := []byte{0x00, 0x01, 0x02}

	out, err := Decode(src)
	require.NoError(t, err)
	assert.Equal(t, src, out)
	assert.False(t, IsCompressed(src))
}

func TestDecode_Literals(t *testing.T) {
	src := header("Yaz1", 3)
	src = append(src, 0xe0, 'a', 'b', 'c')

	out, err := Decode(src)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)
}

func TestDecode_ShortBackReference(t *testing.T) {
	// "ab" then copy 4 bytes from distance 2 -> "ababab"
	src := header("Yaz0", 6)
	src = append(src, 0xc0, 'a', 'b', 0x20, 0x01)

	out, err := Decode(src)
	require.NoError(t, err)
	assert.Equal(t, []byte("ababab"), out)
}

func TestDecode_LongBackReference(t *testing.T) {
	// "x" then copy 0x12+2 bytes from distance 1
	want := make([]byte, 1+0x14)
	for i := range want {
		want[i] = 'x'
	}
	src := header("Yaz1", len(want))
	src = append(src, 0x80, 'x', 0x00, 0x00, 0x02)

	out, err := Decode(src)
	require.NoError(t, err)
	assert.Equal(t, want, out)
}

func TestDecode_Truncated(t *testing.T) {
	t.Run("short header", func(t *testing.T) {
		_, err := Decode([]byte("Yaz1\x00"))
		assert.True(t, errors.Is(err, ErrTruncated))
	})

	t.Run("missing literal", func(t *testing.T) {
		src := header("Yaz1", 4)
		src = append(src, 0xff, 'a')
		_, err := Decode(src)
		assert.True(t, errors.Is(err, ErrTruncated))
	})

	t.Run("reference before start", func(t *testing.T) {
		src := header("Yaz1", 4)
		src = append(src, 0x00, 0x20, 0x05)
		_, err := Decode(src)
		assert.True(t, errors.Is(err, ErrTruncated))
	})
}
