package component

import (
	"fmt"
	"image"

	"github.com/younwookim/ghostoverlay/internal/domain/input"
)

// Static always draws the same image
type Static struct {
	canvas   Canvas
	image    string
	position image.Point
}

func newStatic(spec Spec, canvas Canvas) (*Static, error) {
	if err := canvas.LoadImage(spec.Image); err != nil {
		return nil, fmt.Errorf("static image: %w", err)
	}
	return &Static{canvas: canvas, image: spec.Image, position: spec.Position}, nil
}

// Render implements Component
func (s *Static) Render(input.FrameRecord, DisplayFlags) error {
	return s.canvas.DrawImage(s.image, s.position)
}
