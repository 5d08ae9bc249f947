package component

import (
	"fmt"
	"maps"
	"slices"

	"github.com/younwookim/ghostoverlay/internal/domain/input"
)

// Categorical draws the image mapped to the channel's current value
type Categorical struct {
	canvas     Canvas
	channel    input.Channel
	categories map[input.Value]Placement
}

func newCategorical(spec Spec, canvas Canvas) (*Categorical, error) {
	c := &Categorical{
		canvas:     canvas,
		channel:    spec.Channel,
		categories: maps.Clone(spec.Categories),
	}

	// load in a fixed order so canvases see the same call sequence every run
	keys := slices.SortedFunc(maps.Keys(c.categories), compareValues)
	for _, k := range keys {
		if err := canvas.LoadImage(c.categories[k].Image); err != nil {
			return nil, fmt.Errorf("categorical %s: %w", c.channel, err)
		}
	}
	return c, nil
}

// Render implements Component
func (c *Categorical) Render(frame input.FrameRecord, flags DisplayFlags) error {
	if c.channel == input.ChannelFirstPerson && !flags.ShowFirstPersonEnabledText {
		return nil
	}

	v := frame.Value(c.channel)
	p, ok := c.categories[v]
	if !ok {
		return fmt.Errorf("%w: %s has no entry for %s", ErrMissingCategory, c.channel, v.Format(c.channel))
	}
	return c.canvas.DrawImage(p.Image, p.Position)
}

// Missing returns the channel values with no category entry
func (c *Categorical) Missing() []input.Value {
	var missing []input.Value
	for _, v := range c.channel.Domain() {
		if _, ok := c.categories[v]; !ok {
			missing = append(missing, v)
		}
	}
	return missing
}

// Channel returns the bound channel
func (c *Categorical) Channel() input.Channel {
	return c.channel
}

func compareValues(a, b input.Value) int {
	if a.Level != b.Level {
		return a.Level - b.Level
	}
	if a.Horizontal != b.Horizontal {
		return a.Horizontal - b.Horizontal
	}
	return a.Vertical - b.Vertical
}
