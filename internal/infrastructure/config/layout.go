package config

import (
	"fmt"
	"image"
	"image/color"

	"github.com/younwookim/ghostoverlay/internal/application/component"
	"github.com/younwookim/ghostoverlay/internal/domain/input"
)

var defaultFill = color.RGBA{255, 255, 255, 255}

// Specs converts the layout's components into component specs
func (c *LayoutConfig) Specs() ([]component.Spec, error) {
	specs := make([]component.Spec, 0, len(c.Components))
	for i, cc := range c.Components {
		spec, err := cc.Spec()
		if err != nil {
			return nil, fmt.Errorf("layout %s component %d: %w", c.Name, i, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// Spec converts one component declaration
func (cc ComponentConfig) Spec() (component.Spec, error) {
	kind, err := component.ParseKind(cc.Type)
	if err != nil {
		return component.Spec{}, err
	}

	ch := input.Channel(cc.Input)
	spec := component.Spec{
		Kind:    kind,
		Channel: ch,
		Image:   cc.Image,
		Font:    cc.Font,
		Size:    cc.Size,
	}

	if spec.Position, err = point(cc.Position, "position"); err != nil {
		return component.Spec{}, err
	}
	if spec.Range, err = point(cc.PosRange, "pos_range"); err != nil {
		return component.Spec{}, err
	}

	if kind == component.KindCategorical {
		spec.Categories = make(map[input.Value]component.Placement, len(cc.Categories))
		for key, cat := range cc.Categories {
			v, err := input.ParseValue(ch, key)
			if err != nil {
				return component.Spec{}, err
			}
			pos, err := point(cat.Position, "category position")
			if err != nil {
				return component.Spec{}, err
			}
			if _, dup := spec.Categories[v]; dup {
				return component.Spec{}, fmt.Errorf("duplicate category %q", key)
			}
			spec.Categories[v] = component.Placement{Image: cat.Image, Position: pos}
		}
	}

	if kind == component.KindText {
		if spec.Style, err = cc.style(); err != nil {
			return component.Spec{}, err
		}
	}

	return spec, nil
}

func (cc ComponentConfig) style() (component.TextStyle, error) {
	fill, err := rgba(cc.Fill, defaultFill)
	if err != nil {
		return component.TextStyle{}, fmt.Errorf("fill: %w", err)
	}
	stroke, err := rgba(cc.StrokeFill, color.RGBA{A: 255})
	if err != nil {
		return component.TextStyle{}, fmt.Errorf("stroke_fill: %w", err)
	}

	align := component.Align(cc.Align)
	switch align {
	case "":
		align = component.AlignLeft
	case component.AlignLeft, component.AlignCenter, component.AlignRight:
	default:
		return component.TextStyle{}, fmt.Errorf("unknown align %q", cc.Align)
	}

	dir := component.Direction(cc.Direction)
	switch dir {
	case "":
		dir = component.DirectionLTR
	case component.DirectionLTR, component.DirectionRTL, component.DirectionTTB:
	default:
		return component.TextStyle{}, fmt.Errorf("unknown direction %q", cc.Direction)
	}

	return component.TextStyle{
		Fill:        fill,
		Spacing:     cc.Spacing,
		Align:       align,
		Direction:   dir,
		StrokeWidth: cc.StrokeWidth,
		StrokeFill:  stroke,
	}, nil
}

func point(xy []int, field string) (image.Point, error) {
	switch len(xy) {
	case 0:
		return image.Point{}, nil
	case 2:
		return image.Pt(xy[0], xy[1]), nil
	default:
		return image.Point{}, fmt.Errorf("%s needs [x, y], got %d values", field, len(xy))
	}
}

func rgba(c []int, def color.RGBA) (color.RGBA, error) {
	if len(c) == 0 {
		return def, nil
	}
	if len(c) != 3 && len(c) != 4 {
		return color.RGBA{}, fmt.Errorf("colour needs 3 or 4 values, got %d", len(c))
	}
	ch := [4]uint8{3: 255}
	for i, v := range c {
		if v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("colour value %d out of range", v)
		}
		ch[i] = uint8(v)
	}
	return color.RGBA{ch[0], ch[1], ch[2], ch[3]}, nil
}
