package input

import "slices"

// Channel names one input a component can be bound to
type Channel string

const (
	ChannelNone        Channel = ""
	ChannelAccelerator Channel = "accelerator"
	ChannelDrift       Channel = "drift"
	ChannelItem        Channel = "item"
	ChannelA           Channel = "a_btn"
	ChannelB           Channel = "b_btn"
	ChannelX           Channel = "x_btn"
	ChannelY           Channel = "y_btn"
	ChannelL           Channel = "l_btn"
	ChannelR           Channel = "r_btn"
	ChannelFirstPerson Channel = "1st_person_enabled"
	ChannelTrick       Channel = "trick"
	ChannelAnalog      Channel = "analog"
)

// Channels lists every bindable channel
var Channels = []Channel{
	ChannelAccelerator, ChannelDrift, ChannelItem,
	ChannelA, ChannelB, ChannelX, ChannelY, ChannelL, ChannelR, ChannelFirstPerson,
	ChannelTrick, ChannelAnalog,
}

// maxTrick is the largest id the three trick bits can hold
const maxTrick = 7

// Known reports whether ch is a bindable channel
func (ch Channel) Known() bool {
	return slices.Contains(Channels, ch)
}

// IsAnalog reports whether ch carries the stick pair
func (ch Channel) IsAnalog() bool {
	return ch == ChannelAnalog
}

// Formats returns the layouts that record this channel
func (ch Channel) Formats() []Format {
	switch ch {
	case ChannelAccelerator, ChannelDrift, ChannelItem, ChannelTrick:
		return []Format{FormatRKG, FormatDTM}
	case ChannelA, ChannelB, ChannelX, ChannelY, ChannelL, ChannelR, ChannelFirstPerson:
		return []Format{FormatMK7}
	case ChannelAnalog:
		return []Format{FormatRKG, FormatMK7, FormatDTM}
	default:
		return nil
	}
}

// Domain returns every value the channel can take
func (ch Channel) Domain() []Value {
	switch {
	case ch == ChannelNone || !ch.Known():
		return nil
	case ch == ChannelTrick:
		vals := make([]Value, 0, maxTrick+1)
		for t := 0; t <= maxTrick; t++ {
			vals = append(vals, Value{Level: t})
		}
		return vals
	case ch.IsAnalog():
		vals := make([]Value, 0, (StickMax+1)*(StickMax+1))
		for h := 0; h <= StickMax; h++ {
			for v := 0; v <= StickMax; v++ {
				vals = append(vals, Stick(h, v))
			}
		}
		return vals
	default:
		return []Value{Level(false), Level(true)}
	}
}
