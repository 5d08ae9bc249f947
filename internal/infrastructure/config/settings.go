package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/younwookim/ghostoverlay/internal/application/component"
)

// Settings holds options read from the environment
type Settings struct {
	// Shows if the ghost is currently using first person view (MK7)
	ShowFirstPersonEnabledText bool `env:"SHOW_FIRST_PERSON_ENABLED_TEXT" envDefault:"false"`
	// Shows the raw values of the joystick
	ShowJoystickValues bool `env:"SHOW_JOYSTICK_VALUES" envDefault:"false"`
	// Show joystick values as -7..7 instead of 0..14. Needs SHOW_JOYSTICK_VALUES.
	JoystickRange77 bool `env:"JOYSTICK_RANGE_7_7" envDefault:"false"`

	Transparent bool   `env:"OVERLAY_TRANSPARENT" envDefault:"true"`
	Background  string `env:"OVERLAY_BACKGROUND" envDefault:"#000000"`
	// Overrides the layout's canvas size when set
	Width  int `env:"OVERLAY_WIDTH"`
	Height int `env:"OVERLAY_HEIGHT"`
}

// Canvas size used when neither the environment nor the layout sets one
const (
	DefaultWidth  = 750
	DefaultHeight = 550
)

// LoadSettings reads settings from environment variables
func LoadSettings() (*Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if s.Width < 0 || s.Height < 0 {
		return nil, fmt.Errorf("overlay size %dx%d must not be negative", s.Width, s.Height)
	}
	return &s, nil
}

// Flags returns the display switches passed to components
func (s *Settings) Flags() component.DisplayFlags {
	return component.DisplayFlags{
		ShowJoystickValues:         s.ShowJoystickValues,
		ShowFirstPersonEnabledText: s.ShowFirstPersonEnabledText,
		JoystickRange77:            s.JoystickRange77,
	}
}

// CanvasSize returns the overlay size in pixels. Each dimension comes from
// the environment, else the layout, else the default.
func (s *Settings) CanvasSize(layout *LayoutConfig) (int, int) {
	w, h := DefaultWidth, DefaultHeight
	if layout != nil {
		if layout.Size.Width > 0 {
			w = layout.Size.Width
		}
		if layout.Size.Height > 0 {
			h = layout.Size.Height
		}
	}
	if s.Width > 0 {
		w = s.Width
	}
	if s.Height > 0 {
		h = s.Height
	}
	return w, h
}

// BackgroundColor returns the frame background. Transparent overlays get
// a fully transparent background whatever OVERLAY_BACKGROUND says.
func (s *Settings) BackgroundColor() (color.RGBA, error) {
	if s.Transparent {
		return color.RGBA{}, nil
	}
	return ParseHexColor(s.Background)
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa"
func ParseHexColor(hex string) (color.RGBA, error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", hex)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	if len(h) == 6 {
		n = n<<8 | 0xff
	}
	return color.RGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}
