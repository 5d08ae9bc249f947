package replay

import (
	"time"

	"github.com/younwookim/ghostoverlay/internal/domain/input"
)

// Timeline is the immutable per-frame input sequence decoded from a ghost
type Timeline struct {
	format    input.Format
	frameRate float64
	frames    []input.FrameRecord
}

// NewTimeline creates a timeline. The records are copied, so later changes
// to the slice do not affect the timeline.
func NewTimeline(format input.Format, frameRate float64, records []input.FrameRecord) *Timeline {
	frames := make([]input.FrameRecord, len(records))
	copy(frames, records)
	return &Timeline{
		format:    format,
		frameRate: frameRate,
		frames:    frames,
	}
}

// Frame returns the record at index i
func (t *Timeline) Frame(i int) (input.FrameRecord, bool) {
	if i < 0 || i >= len(t.frames) {
		return input.FrameRecord{}, false
	}
	return t.frames[i], true
}

// Len returns the total number of frames
func (t *Timeline) Len() int {
	return len(t.frames)
}

// Format returns the layout the timeline was decoded from
func (t *Timeline) Format() input.Format {
	return t.format
}

// FrameRate returns the playback rate in frames per second
func (t *Timeline) FrameRate() float64 {
	return t.frameRate
}

// Duration returns the playback length at the timeline's frame rate
func (t *Timeline) Duration() time.Duration {
	if t.frameRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(t.frames)) / t.frameRate * float64(time.Second))
}
