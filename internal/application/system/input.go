package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem reads the preview window's keyboard controls
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// ControlState holds the playback commands issued this tick
type ControlState struct {
	TogglePause bool
	StepForward bool
	StepBack    bool
	Restart     bool
	Quit        bool
}

// GetControls reads the current control state
func (s *InputSystem) GetControls() ControlState {
	return ControlState{
		TogglePause: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		StepForward: repeating(ebiten.KeyArrowRight),
		StepBack:    repeating(ebiten.KeyArrowLeft),
		Restart:     inpututil.IsKeyJustPressed(ebiten.KeyR),
		Quit:        inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// keyRepeatDelay and keyRepeatInterval are in ticks
const (
	keyRepeatDelay    = 20
	keyRepeatInterval = 3
)

func repeating(key ebiten.Key) bool {
	return repeats(inpututil.KeyPressDuration(key))
}

// repeats reports whether a key held for d ticks fires this tick: once on
// the first tick, then every keyRepeatInterval ticks after keyRepeatDelay
func repeats(d int) bool {
	if d == 1 {
		return true
	}
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}
