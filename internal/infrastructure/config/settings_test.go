package config

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/ghostoverlay/internal/application/component"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, component.DisplayFlags{}, s.Flags())
	assert.True(t, s.Transparent)
	assert.Zero(t, s.Width)
	assert.Zero(t, s.Height)

	bg, err := s.BackgroundColor()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{}, bg)
}

func TestLoadSettings_FromEnv(t *testing.T) {
	t.Setenv("SHOW_JOYSTICK_VALUES", "true")
	t.Setenv("SHOW_FIRST_PERSON_ENABLED_TEXT", "1")
	t.Setenv("JOYSTICK_RANGE_7_7", "true")
	t.Setenv("OVERLAY_TRANSPARENT", "false")
	t.Setenv("OVERLAY_BACKGROUND", "#00ff00")
	t.Setenv("OVERLAY_WIDTH", "1920")

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, component.DisplayFlags{
		ShowJoystickValues:         true,
		ShowFirstPersonEnabledText: true,
		JoystickRange77:            true,
	}, s.Flags())
	assert.Equal(t, 1920, s.Width)

	w, h := s.CanvasSize(&LayoutConfig{Size: SizeConfig{Width: 400, Height: 300}})
	assert.Equal(t, 1920, w)
	assert.Equal(t, 300, h)

	bg, err := s.BackgroundColor()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, bg)
}

func TestLoadSettings_Invalid(t *testing.T) {
	t.Run("not a bool", func(t *testing.T) {
		t.Setenv("SHOW_JOYSTICK_VALUES", "maybe")
		_, err := LoadSettings()
		assert.Error(t, err)
	})

	t.Run("negative size", func(t *testing.T) {
		t.Setenv("OVERLAY_HEIGHT", "-1")
		_, err := LoadSettings()
		assert.Error(t, err)
	})
}

func TestSettings_CanvasSize(t *testing.T) {
	s := &Settings{}

	w, h := s.CanvasSize(nil)
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)

	w, h = s.CanvasSize(&LayoutConfig{Size: SizeConfig{Width: 400, Height: 300}})
	assert.Equal(t, 400, w)
	assert.Equal(t, 300, h)

	s.Height = 720
	w, h = s.CanvasSize(&LayoutConfig{})
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, 720, h)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#102030")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 0xff}, c)

	c, err = ParseHexColor("10203040")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 0x40}, c)

	_, err = ParseHexColor("#12345")
	assert.Error(t, err)
	_, err = ParseHexColor("#gggggg")
	assert.Error(t, err)
}
