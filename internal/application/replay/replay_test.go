package replay

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/ghostoverlay/internal/domain/input"
)

func createTestTimeline(frames int) *Timeline {
	records := make([]input.FrameRecord, frames)
	for i := range records {
		records[i] = input.FrameRecord{
			Accelerate: true,
			Horizontal: i % 15,
			Vertical:   input.StickNeutral,
		}
	}
	return NewTimeline(input.FormatRKG, 59.94, records)
}

func TestTimeline_Frame(t *testing.T) {
	tl := createTestTimeline(3)

	rec, ok := tl.Frame(2)
	require.True(t, ok)
	assert.Equal(t, 2, rec.Horizontal)

	_, ok = tl.Frame(3)
	assert.False(t, ok)
	_, ok = tl.Frame(-1)
	assert.False(t, ok)

	assert.Equal(t, 3, tl.Len())
	assert.Equal(t, input.FormatRKG, tl.Format())
	assert.Equal(t, 59.94, tl.FrameRate())
}

func TestTimeline_CopiesRecords(t *testing.T) {
	records := []input.FrameRecord{{A: true}}
	tl := NewTimeline(input.FormatMK7, 59.94, records)

	records[0].A = false

	rec, ok := tl.Frame(0)
	require.True(t, ok)
	assert.True(t, rec.A)
}

func TestTimeline_Duration(t *testing.T) {
	tl := NewTimeline(input.FormatDTM, 180, make([]input.FrameRecord, 360))
	assert.Equal(t, 2*time.Second, tl.Duration())

	assert.Equal(t, time.Duration(0), NewTimeline(input.FormatDTM, 0, nil).Duration())
}

func TestReplayer_GetInput(t *testing.T) {
	replayer := NewReplayer(createTestTimeline(3))

	for i := 0; i < 3; i++ {
		rec, ok := replayer.GetInput()
		require.True(t, ok)
		assert.Equal(t, i, rec.Horizontal)
	}

	// End of frames
	_, ok := replayer.GetInput()
	assert.False(t, ok)
	assert.True(t, replayer.Done())
}

func TestReplayer_CurrentFrame(t *testing.T) {
	replayer := NewReplayer(createTestTimeline(5))

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
	assert.Equal(t, 5, replayer.TotalFrames())
}

func TestReplayer_PeekDoesNotAdvance(t *testing.T) {
	replayer := NewReplayer(createTestTimeline(2))

	rec, ok := replayer.Peek()
	require.True(t, ok)
	assert.Equal(t, 0, rec.Horizontal)
	assert.Equal(t, 0, replayer.CurrentFrame())
}

func TestReplayer_Seek(t *testing.T) {
	replayer := NewReplayer(createTestTimeline(10))

	replayer.Seek(4)
	assert.Equal(t, 4, replayer.CurrentFrame())

	replayer.Seek(-3)
	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.Seek(99)
	assert.Equal(t, 10, replayer.CurrentFrame())
	assert.True(t, replayer.Done())
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(createTestTimeline(3))

	// Advance to end
	replayer.GetInput()
	replayer.GetInput()
	replayer.GetInput()
	_, ok := replayer.GetInput()
	assert.False(t, ok)

	// Reset
	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	// Should be able to read again
	rec, ok := replayer.GetInput()
	assert.True(t, ok)
	assert.True(t, rec.Accelerate)
}

func TestSaveLoad(t *testing.T) {
	records := []input.FrameRecord{
		{A: true, L: true, FirstPerson: true, Horizontal: 14, Vertical: 0},
		{B: true, R: true, Horizontal: 7, Vertical: 7},
	}
	tl := NewTimeline(input.FormatMK7, 59.94, records)
	path := filepath.Join(t.TempDir(), "timeline.json")

	require.NoError(t, Save(tl, path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, input.FormatMK7, loaded.Format())
	assert.Equal(t, 59.94, loaded.FrameRate())
	require.Equal(t, 2, loaded.Len())
	for i := range records {
		rec, ok := loaded.Frame(i)
		require.True(t, ok)
		assert.Equal(t, records[i], rec)
	}
}

func TestSave_Empty(t *testing.T) {
	err := Save(NewTimeline(input.FormatRKG, 59.94, nil), filepath.Join(t.TempDir(), "x.json"))
	assert.Error(t, err)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"format":"mp4","frames":[]}`), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	gap := filepath.Join(dir, "gap.json")
	require.NoError(t, os.WriteFile(gap, []byte(`{"format":"rkg","frames":[{"f":1,"h":7,"v":7}]}`), 0o644))
	_, err = Load(gap)
	assert.Error(t, err)
}
