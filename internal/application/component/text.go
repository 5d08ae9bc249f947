package component

import (
	"fmt"
	"image"

	"github.com/younwookim/ghostoverlay/internal/domain/input"
)

// Text prints the raw stick values
type Text struct {
	canvas   Canvas
	position image.Point
	font     string
	size     float64
	style    TextStyle
}

func newText(spec Spec, canvas Canvas) (*Text, error) {
	if err := canvas.LoadFont(spec.Font, spec.Size); err != nil {
		return nil, fmt.Errorf("text: %w", err)
	}
	return &Text{
		canvas:   canvas,
		position: spec.Position,
		font:     spec.Font,
		size:     spec.Size,
		style:    spec.Style,
	}, nil
}

// Label returns the text shown for a frame
func (t *Text) Label(frame input.FrameRecord, flags DisplayFlags) string {
	h, v := frame.Horizontal, frame.Vertical
	if flags.JoystickRange77 {
		h -= input.StickNeutral
		v -= input.StickNeutral
	}
	return fmt.Sprintf("(%d, %d)", h, v)
}

// Render implements Component
func (t *Text) Render(frame input.FrameRecord, flags DisplayFlags) error {
	if !flags.ShowJoystickValues {
		return nil
	}
	return t.canvas.DrawText(t.Label(frame, flags), t.position, t.font, t.size, t.style)
}
