// Package canvas implements the overlay drawing surface on top of Ebitengine.
//
// Images and fonts are read from an fs.FS and cached by name while the
// overlay is built. Once sealed, the caches are read-only and every draw call
// goes to the current target image.
package canvas

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png" // layouts ship PNG images
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/younwookim/ghostoverlay/internal/application/component"
)

var (
	// ErrNotLoaded is returned when drawing an image or font that was never loaded
	ErrNotLoaded = errors.New("canvas: asset not loaded")

	// ErrSealed is returned when loading after the canvas was sealed
	ErrSealed = errors.New("canvas: sealed")

	// ErrNoTarget is returned when drawing before a target is set
	ErrNoTarget = errors.New("canvas: no target image")
)

type fontKey struct {
	name string
	size float64
}

// Canvas draws overlay components onto an ebiten image
type Canvas struct {
	fsys    fs.FS
	images  map[string]*ebiten.Image
	sources map[string]*text.GoTextFaceSource
	faces   map[fontKey]*text.GoTextFace
	target  *ebiten.Image
	sealed  bool
}

var _ component.Canvas = (*Canvas)(nil)
var _ component.Sealer = (*Canvas)(nil)

// New creates a canvas reading assets from fsys
func New(fsys fs.FS) *Canvas {
	return &Canvas{
		fsys:    fsys,
		images:  make(map[string]*ebiten.Image),
		sources: make(map[string]*text.GoTextFaceSource),
		faces:   make(map[fontKey]*text.GoTextFace),
	}
}

// LoadImage implements component.Canvas
func (c *Canvas) LoadImage(name string) error {
	if c.sealed {
		return fmt.Errorf("load image %s: %w", name, ErrSealed)
	}
	if _, ok := c.images[name]; ok {
		return nil
	}

	img, _, err := ebitenutil.NewImageFromFileSystem(c.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to load image %s: %w", name, err)
	}
	c.images[name] = img
	return nil
}

// LoadFont implements component.Canvas
func (c *Canvas) LoadFont(name string, size float64) error {
	if c.sealed {
		return fmt.Errorf("load font %s: %w", name, ErrSealed)
	}
	key := fontKey{name: name, size: size}
	if _, ok := c.faces[key]; ok {
		return nil
	}

	src, ok := c.sources[name]
	if !ok {
		data, err := fs.ReadFile(c.fsys, name)
		if err != nil {
			return fmt.Errorf("failed to read font %s: %w", name, err)
		}
		src, err = text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("failed to parse font %s: %w", name, err)
		}
		c.sources[name] = src
	}

	c.faces[key] = &text.GoTextFace{Source: src, Size: size}
	return nil
}

// Seal implements component.Sealer. Later loads fail with ErrSealed.
func (c *Canvas) Seal() {
	c.sealed = true
}

// Sealed reports whether the canvas accepts no more loads
func (c *Canvas) Sealed() bool {
	return c.sealed
}

// SetTarget sets the image subsequent draws go to
func (c *Canvas) SetTarget(dst *ebiten.Image) {
	c.target = dst
}

// DrawImage implements component.Canvas
func (c *Canvas) DrawImage(name string, pos image.Point) error {
	if c.target == nil {
		return ErrNoTarget
	}
	img, ok := c.images[name]
	if !ok {
		return fmt.Errorf("image %s: %w", name, ErrNotLoaded)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(pos.X), float64(pos.Y))
	c.target.DrawImage(img, op)
	return nil
}

// DrawText implements component.Canvas
func (c *Canvas) DrawText(s string, pos image.Point, font string, size float64, style component.TextStyle) error {
	if c.target == nil {
		return ErrNoTarget
	}
	loaded, ok := c.faces[fontKey{name: font, size: size}]
	if !ok {
		return fmt.Errorf("font %s at %g: %w", font, size, ErrNotLoaded)
	}

	face := &text.GoTextFace{
		Source:    loaded.Source,
		Size:      loaded.Size,
		Direction: direction(style.Direction),
	}
	m := face.Metrics()
	lineSpacing := m.HAscent + m.HDescent + m.HLineGap + float64(style.Spacing)

	draw := func(dx, dy int, clr colorScaler) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(pos.X+dx), float64(pos.Y+dy))
		op.LineSpacing = lineSpacing
		op.PrimaryAlign = align(style.Align)
		clr(&op.ColorScale)
		text.Draw(c.target, s, face, op)
	}

	for _, off := range strokeOffsets(style.StrokeWidth) {
		draw(off.X, off.Y, withColor(style.StrokeFill))
	}
	draw(0, 0, withColor(style.Fill))
	return nil
}
