// Package preview provides the interactive playback scene.
package preview

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/ghostoverlay/internal/application/component"
	"github.com/younwookim/ghostoverlay/internal/application/replay"
	"github.com/younwookim/ghostoverlay/internal/application/scene"
	"github.com/younwookim/ghostoverlay/internal/application/state"
	"github.com/younwookim/ghostoverlay/internal/application/system"
)

// Options configures a preview
type Options struct {
	Flags       component.DisplayFlags
	Background  color.RGBA
	Transparent bool
	// ShowStatus prints the playback position in the top-left corner
	ShowStatus bool
}

// Preview plays a timeline through an overlay in real time
type Preview struct {
	overlay  *component.Overlay
	target   scene.Target
	playback *system.PlaybackSystem
	controls func() system.ControlState
	opts     Options

	lastErr string
}

// New creates a preview scene reading controls from the keyboard
func New(o *component.Overlay, target scene.Target, t *replay.Timeline, opts Options) *Preview {
	return NewWithControls(o, target, t, opts, system.NewInputSystem().GetControls)
}

// NewWithControls creates a preview scene with a custom control source
func NewWithControls(o *component.Overlay, target scene.Target, t *replay.Timeline, opts Options, controls func() system.ControlState) *Preview {
	return &Preview{
		overlay:  o,
		target:   target,
		playback: system.NewPlaybackSystem(t),
		controls: controls,
		opts:     opts,
	}
}

// Update advances playback (implements scene.Scene)
func (p *Preview) Update(dt float64) (scene.Scene, error) {
	c := p.controls()
	if c.Quit {
		return nil, ebiten.Termination
	}
	p.playback.Update(c, dt)
	return nil, nil
}

// Draw renders the current frame
func (p *Preview) Draw(screen *ebiten.Image) {
	if !p.opts.Transparent {
		screen.Fill(p.opts.Background)
	}

	rec, idx, ok := p.playback.Frame()
	if ok {
		p.target.SetTarget(screen)
		p.report(p.overlay.Render(rec, p.opts.Flags), idx)
	}

	if p.opts.ShowStatus {
		ebitenutil.DebugPrint(screen, p.Status())
	}
}

// Status describes the playback position
func (p *Preview) Status() string {
	_, idx, ok := p.playback.Frame()
	if !ok {
		return "no frames"
	}
	return fmt.Sprintf("%s %d/%d", p.playback.State(), idx+1, p.playback.TotalFrames())
}

// State returns the playback state
func (p *Preview) State() state.PlaybackState {
	return p.playback.State()
}

// Frame returns the index of the frame currently shown
func (p *Preview) Frame() int {
	_, idx, _ := p.playback.Frame()
	return idx
}

// report logs a render error unless it repeats the previous one.
// Returns whether the error was logged.
func (p *Preview) report(err error, frame int) bool {
	if err == nil {
		p.lastErr = ""
		return false
	}

	msg := err.Error()
	if msg == p.lastErr {
		return false
	}
	p.lastErr = msg
	log.Printf("Render failed at frame %d: %v", frame, err)
	return true
}

// OnEnter is called when entering this scene
func (p *Preview) OnEnter() {
	log.Printf("Preview: %d frames, space pauses, arrows step, R restarts, Esc quits", p.playback.TotalFrames())
}

// OnExit is called when leaving this scene
func (p *Preview) OnExit() {}
