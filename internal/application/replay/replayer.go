package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/ghostoverlay/internal/domain/input"
)

const dataVersion = "1.0"

// Replayer steps through a timeline frame by frame
type Replayer struct {
	timeline *Timeline
	frame    int
}

// NewReplayer creates a new replayer positioned at the first frame
func NewReplayer(t *Timeline) *Replayer {
	return &Replayer{
		timeline: t,
		frame:    0,
	}
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (input.FrameRecord, bool) {
	rec, ok := r.timeline.Frame(r.frame)
	if !ok {
		return input.FrameRecord{}, false
	}
	r.frame++
	return rec, true
}

// Peek returns the input for the current frame without advancing
func (r *Replayer) Peek() (input.FrameRecord, bool) {
	return r.timeline.Frame(r.frame)
}

// Seek moves the cursor, clamped to [0, TotalFrames]
func (r *Replayer) Seek(frame int) {
	r.frame = max(0, min(frame, r.timeline.Len()))
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return r.timeline.Len()
}

// Done reports whether every frame has been consumed
func (r *Replayer) Done() bool {
	return r.frame >= r.timeline.Len()
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Save writes the timeline to a JSON file
func Save(t *Timeline, filename string) error {
	if t.Len() == 0 {
		return fmt.Errorf("no frames to save")
	}

	data := TimelineData{
		Version:   dataVersion,
		Format:    t.Format().String(),
		FrameRate: t.FrameRate(),
		Frames:    make([]FrameInput, 0, t.Len()),
	}
	for i, rec := range t.frames {
		data.Frames = append(data.Frames, toFrameInput(i, rec))
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode timeline: %w", err)
	}

	return nil
}

// Load reads a timeline written by Save
func Load(filename string) (*Timeline, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data TimelineData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode timeline: %w", err)
	}

	format, ok := input.ParseFormat(data.Format)
	if !ok {
		return nil, fmt.Errorf("unknown timeline format %q", data.Format)
	}

	records := make([]input.FrameRecord, len(data.Frames))
	for i, fi := range data.Frames {
		if fi.F != i {
			return nil, fmt.Errorf("frame %d stored at index %d", fi.F, i)
		}
		records[i] = fi.record()
	}

	return NewTimeline(format, data.FrameRate, records), nil
}
