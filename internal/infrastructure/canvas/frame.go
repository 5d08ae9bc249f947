package canvas

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// FrameFilename returns the file a rendered frame is written to
func FrameFilename(dir string, frame int) string {
	return filepath.Join(dir, fmt.Sprintf("frame_%06d.png", frame))
}

// Snapshot copies the pixels of img. Ebiten pixels are alpha
// premultiplied, the same as image.RGBA.
func Snapshot(img *ebiten.Image) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	img.ReadPixels(rgba.Pix)
	return rgba
}

// WritePNG encodes img to path
func WritePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	return file.Close()
}
