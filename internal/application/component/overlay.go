package component

import (
	"fmt"

	"github.com/younwookim/ghostoverlay/internal/application/replay"
	"github.com/younwookim/ghostoverlay/internal/domain/input"
)

// Overlay is a built layout. Building loads every asset before the first
// frame can be rendered.
type Overlay struct {
	components []Component
}

// Build constructs every component of a layout in order, then seals the
// canvas if it supports sealing.
func Build(specs []Spec, canvas Canvas) (*Overlay, error) {
	o := &Overlay{components: make([]Component, 0, len(specs))}
	for i, spec := range specs {
		c, err := New(spec, canvas)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		o.components = append(o.components, c)
	}

	if s, ok := canvas.(Sealer); ok {
		s.Seal()
	}
	return o, nil
}

// Len returns the number of components
func (o *Overlay) Len() int {
	return len(o.components)
}

// Render draws one frame with every component in layout order, stopping
// at the first error.
func (o *Overlay) Render(frame input.FrameRecord, flags DisplayFlags) error {
	for i, c := range o.components {
		if err := c.Render(frame, flags); err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
	}
	return nil
}

// RenderFrame draws frame i of a timeline
func (o *Overlay) RenderFrame(t *replay.Timeline, i int, flags DisplayFlags) error {
	frame, ok := t.Frame(i)
	if !ok {
		return fmt.Errorf("frame %d out of range [0, %d)", i, t.Len())
	}
	if err := o.Render(frame, flags); err != nil {
		return fmt.Errorf("frame %d: %w", i, err)
	}
	return nil
}

// Gap describes a categorical component with missing categories
type Gap struct {
	Index   int
	Channel input.Channel
	Missing []input.Value
}

// Gaps lists the categorical components whose category map does not cover
// every value of their channel. Rendering such a value fails.
func (o *Overlay) Gaps() []Gap {
	var gaps []Gap
	for i, c := range o.components {
		cat, ok := c.(*Categorical)
		if !ok {
			continue
		}
		if missing := cat.Missing(); len(missing) > 0 {
			gaps = append(gaps, Gap{Index: i, Channel: cat.Channel(), Missing: missing})
		}
	}
	return gaps
}
