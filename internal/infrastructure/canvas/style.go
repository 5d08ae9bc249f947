package canvas

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/younwookim/ghostoverlay/internal/application/component"
)

type colorScaler func(*ebiten.ColorScale)

func withColor(c color.RGBA) colorScaler {
	return func(cs *ebiten.ColorScale) {
		cs.ScaleWithColor(c)
	}
}

func align(a component.Align) text.Align {
	switch a {
	case component.AlignCenter:
		return text.AlignCenter
	case component.AlignRight:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}

func direction(d component.Direction) text.Direction {
	switch d {
	case component.DirectionRTL:
		return text.DirectionRightToLeft
	case component.DirectionTTB:
		return text.DirectionTopToBottomAndLeftToRight
	default:
		return text.DirectionLeftToRight
	}
}

// strokeOffsets returns the positions text is redrawn at to outline it,
// every point within width of the origin except the origin itself.
func strokeOffsets(width int) []image.Point {
	if width <= 0 {
		return nil
	}
	var offs []image.Point
	for dy := -width; dy <= width; dy++ {
		for dx := -width; dx <= width; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if dx*dx+dy*dy <= width*width {
				offs = append(offs, image.Pt(dx, dy))
			}
		}
	}
	return offs
}
