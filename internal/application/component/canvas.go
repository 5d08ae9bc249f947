package component

import (
	"image"
	"image/color"
)

// Canvas executes drawing calls for components. Every Load call happens
// while components are built; Draw calls happen afterwards, once per frame.
type Canvas interface {
	// LoadImage caches an image under its file name
	LoadImage(name string) error

	// LoadFont caches a font face at the given size
	LoadFont(name string, size float64) error

	// DrawImage draws a loaded image with its top-left corner at pos
	DrawImage(name string, pos image.Point) error

	// DrawText draws text with a loaded font
	DrawText(text string, pos image.Point, font string, size float64, style TextStyle) error
}

// Sealer is implemented by canvases that refuse loads once rendering has
// started. Build seals the canvas after every component is constructed.
type Sealer interface {
	Seal()
}

// Align is the horizontal alignment of multi-line text
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Direction is the writing direction of text
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
	DirectionTTB Direction = "ttb"
)

// TextStyle holds the optional text attributes of a text component
type TextStyle struct {
	Fill        color.RGBA
	Spacing     int // extra pixels between lines
	Align       Align
	Direction   Direction
	StrokeWidth int
	StrokeFill  color.RGBA
}
