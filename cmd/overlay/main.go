package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/ghostoverlay/internal/application/component"
	"github.com/younwookim/ghostoverlay/internal/application/game"
	"github.com/younwookim/ghostoverlay/internal/application/ghost"
	"github.com/younwookim/ghostoverlay/internal/application/replay"
	"github.com/younwookim/ghostoverlay/internal/application/scene"
	"github.com/younwookim/ghostoverlay/internal/application/scene/export"
	"github.com/younwookim/ghostoverlay/internal/application/scene/preview"
	"github.com/younwookim/ghostoverlay/internal/domain/input"
	"github.com/younwookim/ghostoverlay/internal/infrastructure/canvas"
	"github.com/younwookim/ghostoverlay/internal/infrastructure/config"
)

type options struct {
	ghost   string
	format  string
	assets  string
	layout  string
	out     string
	dump    string
	preview bool
}

func main() {
	var opts options
	flag.StringVar(&opts.ghost, "ghost", "", "Ghost file to render (.rkg, .dat, .dtm)")
	flag.StringVar(&opts.format, "format", "", "Ghost format (rkg, mk7, dtm); guessed from the extension if empty")
	flag.StringVar(&opts.assets, "assets", "assets", "Directory holding layouts, images and fonts")
	flag.StringVar(&opts.layout, "layout", "", "Layout name under <assets>/layouts (default by format)")
	flag.StringVar(&opts.out, "out", "", "Write every frame as PNG to this directory")
	flag.StringVar(&opts.dump, "dump", "", "Write the decoded inputs as JSON to this file")
	flag.BoolVar(&opts.preview, "preview", false, "Open the preview window after an export")
	flag.Parse()

	if opts.ghost == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(opts options) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	background, err := settings.BackgroundColor()
	if err != nil {
		return err
	}

	timeline, err := decodeGhost(opts.ghost, opts.format)
	if err != nil {
		return err
	}
	log.Printf("Decoded %s: %d frames (%s)", opts.ghost, timeline.Len(), timeline.Duration())

	if opts.dump != "" {
		if err := replay.Save(timeline, opts.dump); err != nil {
			return fmt.Errorf("failed to dump inputs: %w", err)
		}
		log.Printf("Inputs written: %s", opts.dump)
	}

	name := layoutName(timeline.Format(), opts.layout)
	layout, err := loadLayout(opts.assets, name)
	if err != nil {
		return err
	}
	specs, err := layout.Specs()
	if err != nil {
		return fmt.Errorf("layout %s: %w", name, err)
	}

	cv := canvas.New(os.DirFS(opts.assets))
	overlay, err := component.Build(specs, cv)
	if err != nil {
		return fmt.Errorf("failed to build layout %s: %w", name, err)
	}
	for _, gap := range overlay.Gaps() {
		log.Printf("Warning: component %d (%s) has no image for %d value(s)", gap.Index, gap.Channel, len(gap.Missing))
	}

	width, height := settings.CanvasSize(layout)
	first, err := firstScene(opts, overlay, cv, timeline, settings, background, width, height)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Ghost Input Overlay - " + layout.Name)
	ebiten.SetTPS(ebiten.DefaultTPS)

	g := game.New(first, width, height)
	err = ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{ScreenTransparent: settings.Transparent})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// firstScene returns the preview, or an export when -out is set
func firstScene(opts options, o *component.Overlay, cv *canvas.Canvas, t *replay.Timeline,
	settings *config.Settings, background color.RGBA, width, height int) (scene.Scene, error) {
	flags := settings.Flags()
	p := preview.New(o, cv, t, preview.Options{
		Flags:       flags,
		Background:  background,
		Transparent: settings.Transparent,
		ShowStatus:  !settings.Transparent,
	})
	if opts.out == "" {
		return p, nil
	}

	e, err := export.New(o, cv, t, opts.out, export.Options{
		Flags:       flags,
		Background:  background,
		Transparent: settings.Transparent,
		Width:       width,
		Height:      height,
	})
	if err != nil {
		return nil, err
	}
	if opts.preview {
		e.Next = p
	}
	return e, nil
}

// decodeGhost reads a ghost file. An empty tag guesses the format from the
// file extension.
func decodeGhost(path, tag string) (*replay.Timeline, error) {
	if tag == "" {
		return ghost.DecodeFile(path)
	}

	format, ok := input.ParseFormat(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ghost.ErrUnknownFormat, tag)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ghost: %w", err)
	}
	return ghost.Decode(data, format)
}

// layoutName picks the layout for a format unless one was given
func layoutName(format input.Format, name string) string {
	if name != "" {
		return name
	}
	if format == input.FormatMK7 {
		return "mk7"
	}
	return "rkg"
}

// loadLayout reads a layout from the asset directory, falling back to the
// bundled layouts
func loadLayout(assets, name string) (*config.LayoutConfig, error) {
	layout, err := config.NewLoader(assets).LoadLayout(name)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return layout, err
	}

	bundled, subErr := fs.Sub(layoutFS, "assets")
	if subErr != nil {
		return nil, fmt.Errorf("failed to get layout subfs: %w", subErr)
	}
	layout, err = config.NewFSLoader(bundled, "assets").LoadLayout(name)
	if err != nil {
		return nil, err
	}
	log.Printf("Using bundled layout %s", name)
	return layout, nil
}
