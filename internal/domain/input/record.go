package input

// Trick is an in-air trick input id (0 = none)
type Trick uint8

// Stick range. Raw horizontal and vertical values run 0..StickMax with
// StickNeutral at rest.
const (
	StickNeutral = 7
	StickMax     = 14
)

// FrameRecord is the decoded controller state for one frame.
// A format only fills the fields it records:
//
//	RKG: Accelerate, Drift, Item, Horizontal, Vertical, Trick
//	MK7: A, B, X, Y, L, R, FirstPerson, Horizontal, Vertical
//	DTM: Accelerate, Drift, Item, Horizontal, Vertical, Trick
type FrameRecord struct {
	Accelerate bool
	Drift      bool
	Item       bool

	A           bool
	B           bool
	X           bool
	Y           bool
	L           bool
	R           bool
	FirstPerson bool

	Horizontal int
	Vertical   int
	Trick      Trick
}

// Value returns the state of a channel on this frame
func (r FrameRecord) Value(ch Channel) Value {
	switch ch {
	case ChannelAccelerator:
		return Level(r.Accelerate)
	case ChannelDrift:
		return Level(r.Drift)
	case ChannelItem:
		return Level(r.Item)
	case ChannelA:
		return Level(r.A)
	case ChannelB:
		return Level(r.B)
	case ChannelX:
		return Level(r.X)
	case ChannelY:
		return Level(r.Y)
	case ChannelL:
		return Level(r.L)
	case ChannelR:
		return Level(r.R)
	case ChannelFirstPerson:
		return Level(r.FirstPerson)
	case ChannelTrick:
		return Value{Level: int(r.Trick)}
	case ChannelAnalog:
		return Stick(r.Horizontal, r.Vertical)
	default:
		return Value{}
	}
}
