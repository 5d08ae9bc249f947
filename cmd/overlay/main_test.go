package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/ghostoverlay/internal/application/ghost"
	"github.com/younwookim/ghostoverlay/internal/domain/input"
)

func writeDTM(t *testing.T, name string) string {
	t.Helper()

	data := make([]byte, 0x100+2*8)
	data[0x100] = 0x02 // A
	data[0x100+4] = 128
	data[0x100+5] = 128
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestDecodeGhost(t *testing.T) {
	t.Run("format from extension", func(t *testing.T) {
		tl, err := decodeGhost(writeDTM(t, "run.dtm"), "")
		require.NoError(t, err)
		assert.Equal(t, input.FormatDTM, tl.Format())
		assert.Equal(t, 2, tl.Len())

		rec, ok := tl.Frame(0)
		require.True(t, ok)
		assert.True(t, rec.Accelerate)
		assert.Equal(t, input.StickNeutral, rec.Horizontal)
	})

	t.Run("explicit format overrides extension", func(t *testing.T) {
		tl, err := decodeGhost(writeDTM(t, "run.bin"), "dtm")
		require.NoError(t, err)
		assert.Equal(t, input.FormatDTM, tl.Format())
		assert.Equal(t, ghost.DTMFrameRate, tl.FrameRate())
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := decodeGhost(writeDTM(t, "run.dtm"), "gcm")
		assert.ErrorIs(t, err, ghost.ErrUnknownFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := decodeGhost(filepath.Join(t.TempDir(), "none.dtm"), "dtm")
		assert.Error(t, err)
	})
}

func TestLayoutName(t *testing.T) {
	tests := []struct {
		format input.Format
		flag   string
		want   string
	}{
		{input.FormatMK7, "", "mk7"},
		{input.FormatRKG, "", "rkg"},
		{input.FormatDTM, "", "rkg"},
		{input.FormatMK7, "custom", "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String()+"/"+tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.want, layoutName(tt.format, tt.flag))
		})
	}
}

func TestLoadLayout(t *testing.T) {
	t.Run("bundled fallback", func(t *testing.T) {
		for _, name := range []string{"mk7", "rkg"} {
			layout, err := loadLayout(t.TempDir(), name)
			require.NoError(t, err, name)

			specs, err := layout.Specs()
			require.NoError(t, err, name)
			assert.NotEmpty(t, specs, name)
		}
	})

	t.Run("asset directory wins", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "layouts"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "layouts", "rkg.json"),
			[]byte(`{"name": "mine", "components": []}`), 0o644))

		layout, err := loadLayout(dir, "rkg")
		require.NoError(t, err)
		assert.Equal(t, "mine", layout.Name)
	})

	t.Run("broken layout is not replaced", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "layouts"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "layouts", "rkg.json"), []byte(`{`), 0o644))

		_, err := loadLayout(dir, "rkg")
		assert.Error(t, err)
	})

	t.Run("unknown layout", func(t *testing.T) {
		_, err := loadLayout(t.TempDir(), "nope")
		assert.Error(t, err)
	})
}
