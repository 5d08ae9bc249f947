// Package export provides the scene that renders every frame of a timeline
// to numbered PNG files.
package export

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/ghostoverlay/internal/application/component"
	"github.com/younwookim/ghostoverlay/internal/application/replay"
	"github.com/younwookim/ghostoverlay/internal/application/scene"
	"github.com/younwookim/ghostoverlay/internal/infrastructure/canvas"
)

// framesPerTick bounds how many frames one Update renders
const framesPerTick = 8

// FrameWriter stores a rendered frame
type FrameWriter func(img *ebiten.Image, frame int) error

// PNGWriter writes frames to dir as frame_000000.png, frame_000001.png, ...
func PNGWriter(dir string) FrameWriter {
	return func(img *ebiten.Image, frame int) error {
		return canvas.WritePNG(canvas.Snapshot(img), canvas.FrameFilename(dir, frame))
	}
}

// Options configures an export
type Options struct {
	Flags       component.DisplayFlags
	Background  color.RGBA
	Transparent bool
	Width       int
	Height      int
}

// Export renders a timeline frame by frame
type Export struct {
	overlay   *component.Overlay
	target    scene.Target
	timeline  *replay.Timeline
	write     FrameWriter
	opts      Options
	offscreen *ebiten.Image
	frame     int

	// Next is entered once every frame is written; nil ends the loop
	Next scene.Scene
}

// New creates an export scene writing PNG files to dir, creating it if needed
func New(o *component.Overlay, target scene.Target, t *replay.Timeline, dir string, opts Options) (*Export, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return NewWithWriter(o, target, t, opts, PNGWriter(dir)), nil
}

// NewWithWriter creates an export scene with a custom frame sink
func NewWithWriter(o *component.Overlay, target scene.Target, t *replay.Timeline, opts Options, write FrameWriter) *Export {
	return &Export{
		overlay:   o,
		target:    target,
		timeline:  t,
		write:     write,
		opts:      opts,
		offscreen: ebiten.NewImage(opts.Width, opts.Height),
	}
}

// Update renders the next batch of frames (implements scene.Scene)
func (e *Export) Update(_ float64) (scene.Scene, error) {
	for range framesPerTick {
		if e.Done() {
			break
		}
		if err := e.renderFrame(); err != nil {
			return nil, err
		}
	}

	if !e.Done() {
		return nil, nil
	}
	if e.Next != nil {
		return e.Next, nil
	}
	return nil, ebiten.Termination
}

func (e *Export) renderFrame() error {
	e.offscreen.Clear()
	if !e.opts.Transparent {
		e.offscreen.Fill(e.opts.Background)
	}

	e.target.SetTarget(e.offscreen)
	if err := e.overlay.RenderFrame(e.timeline, e.frame, e.opts.Flags); err != nil {
		return err
	}
	if err := e.write(e.offscreen, e.frame); err != nil {
		return fmt.Errorf("frame %d: %w", e.frame, err)
	}
	e.frame++
	return nil
}

// Done reports whether every frame has been written
func (e *Export) Done() bool {
	return e.frame >= e.timeline.Len()
}

// Written returns the number of frames written so far
func (e *Export) Written() int {
	return e.frame
}

// Draw shows the last rendered frame and the progress
func (e *Export) Draw(screen *ebiten.Image) {
	screen.DrawImage(e.offscreen, nil)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Exporting %d/%d", e.frame, e.timeline.Len()))
}

// OnEnter is called when entering this scene
func (e *Export) OnEnter() {
	log.Printf("Exporting %d frames (%s at %.2f fps)", e.timeline.Len(), e.timeline.Duration(), e.timeline.FrameRate())
}

// OnExit is called when leaving this scene
func (e *Export) OnExit() {
	log.Printf("Exported %d frames", e.frame)
}
