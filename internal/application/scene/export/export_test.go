package export

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/ghostoverlay/internal/application/component"
	"github.com/younwookim/ghostoverlay/internal/application/replay"
	"github.com/younwookim/ghostoverlay/internal/application/scene"
	"github.com/younwookim/ghostoverlay/internal/domain/input"
)

type fakeCanvas struct {
	draws []string
}

func (f *fakeCanvas) LoadImage(string) error         { return nil }
func (f *fakeCanvas) LoadFont(string, float64) error { return nil }
func (f *fakeCanvas) SetTarget(*ebiten.Image)        {}

func (f *fakeCanvas) DrawImage(name string, pos image.Point) error {
	f.draws = append(f.draws, fmt.Sprintf("%s %d,%d", name, pos.X, pos.Y))
	return nil
}

func (f *fakeCanvas) DrawText(string, image.Point, string, float64, component.TextStyle) error {
	return nil
}

type stubScene struct{}

func (stubScene) Update(float64) (scene.Scene, error) { return nil, nil }
func (stubScene) Draw(*ebiten.Image)                  {}
func (stubScene) OnEnter()                            {}
func (stubScene) OnExit()                             {}

func stickTimeline(n int) *replay.Timeline {
	records := make([]input.FrameRecord, n)
	for i := range records {
		records[i] = input.FrameRecord{Horizontal: i % (input.StickMax + 1), Vertical: input.StickNeutral}
	}
	return replay.NewTimeline(input.FormatMK7, 59.94, records)
}

func buildStick(t *testing.T, fc *fakeCanvas) *component.Overlay {
	t.Helper()
	o, err := component.Build([]component.Spec{{
		Kind:     component.KindAnalogOffset,
		Channel:  input.ChannelAnalog,
		Image:    "stick.png",
		Position: image.Pt(100, 100),
		Range:    image.Pt(70, 70),
	}}, fc)
	require.NoError(t, err)
	return o
}

func TestExport_WritesEveryFrame(t *testing.T) {
	fc := &fakeCanvas{}
	var written []int
	e := NewWithWriter(buildStick(t, fc), fc, stickTimeline(10), Options{Transparent: true, Width: 8, Height: 8},
		func(_ *ebiten.Image, frame int) error {
			written = append(written, frame)
			return nil
		})

	next, err := e.Update(1.0 / 60.0)
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, framesPerTick, e.Written())
	assert.False(t, e.Done())

	_, err = e.Update(1.0 / 60.0)
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.True(t, e.Done())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, written)

	// frame 0 is full left, frame 7 is centred
	require.Len(t, fc.draws, 10)
	assert.Equal(t, "stick.png 30,100", fc.draws[0])
	assert.Equal(t, "stick.png 100,100", fc.draws[7])
}

func TestExport_HandsOverToNext(t *testing.T) {
	fc := &fakeCanvas{}
	e := NewWithWriter(buildStick(t, fc), fc, stickTimeline(1), Options{Transparent: true, Width: 8, Height: 8},
		func(*ebiten.Image, int) error { return nil })
	e.Next = stubScene{}

	next, err := e.Update(1.0 / 60.0)
	require.NoError(t, err)
	assert.Equal(t, stubScene{}, next)
}

func TestExport_WriterError(t *testing.T) {
	fc := &fakeCanvas{}
	e := NewWithWriter(buildStick(t, fc), fc, stickTimeline(3), Options{Transparent: true, Width: 8, Height: 8},
		func(*ebiten.Image, int) error { return assert.AnError })

	_, err := e.Update(1.0 / 60.0)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Zero(t, e.Written())
}

func TestNew_BadDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := New(nil, &fakeCanvas{}, stickTimeline(1), filepath.Join(file, "frames"), Options{Width: 8, Height: 8})
	assert.Error(t, err)
}
