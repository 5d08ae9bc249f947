package component

import (
	"fmt"
	"image"

	"github.com/younwookim/ghostoverlay/internal/domain/input"
)

// AnalogOffset moves an image away from its base position in proportion
// to the stick deflection. Full deflection moves it by Range.
type AnalogOffset struct {
	canvas   Canvas
	image    string
	position image.Point
	posRange image.Point
}

func newAnalogOffset(spec Spec, canvas Canvas) (*AnalogOffset, error) {
	if err := canvas.LoadImage(spec.Image); err != nil {
		return nil, fmt.Errorf("analog offset: %w", err)
	}
	return &AnalogOffset{
		canvas:   canvas,
		image:    spec.Image,
		position: spec.Position,
		posRange: spec.Range,
	}, nil
}

// Offset returns the displacement for a stick position. Larger vertical
// values move the image up.
func (a *AnalogOffset) Offset(horizontal, vertical int) image.Point {
	return image.Point{
		X: floorDiv((horizontal-input.StickNeutral)*a.posRange.X, input.StickNeutral),
		Y: floorDiv((input.StickNeutral-vertical)*a.posRange.Y, input.StickNeutral),
	}
}

// Render implements Component
func (a *AnalogOffset) Render(frame input.FrameRecord, _ DisplayFlags) error {
	return a.canvas.DrawImage(a.image, a.position.Add(a.Offset(frame.Horizontal, frame.Vertical)))
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
