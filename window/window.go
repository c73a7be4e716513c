// Package window presents the gradient in a desktop window, for hosts
// without a framebuffer device.
//
// The window wraps an in-memory BGRA buffer behind the same display
// interface as the hardware targets. Painting happens before the window
// appears; [Window.Run] opens the window and keeps blitting the buffer
// until the user closes it.
package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/BeatGlow/rainbow"
	"github.com/BeatGlow/rainbow/pixel"
)

// Window is a desktop window backed by an in-memory pixel buffer.
type Window struct {
	img     *pixel.BGRAImage
	fb      *ebiten.Image
	scratch []byte
}

var _ rainbow.Display = (*Window)(nil)

// Open creates a window-backed display with the given dimensions. The
// window itself does not appear until [Window.Run] is called.
func Open(width, height int) (*Window, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("window: invalid size %dx%d", width, height)
	}
	return &Window{
		img: pixel.NewBGRAImage(width, height),
	}, nil
}

func (w *Window) String() string {
	size := w.img.Bounds().Size()
	return fmt.Sprintf("window %dx%d", size.X, size.Y)
}

func (w *Window) At(x, y int) color.Color {
	return w.img.At(x, y)
}

func (w *Window) Set(x, y int, c color.Color) {
	w.img.Set(x, y, c)
}

func (w *Window) Bounds() image.Rectangle {
	return w.img.Bounds()
}

func (w *Window) ColorModel() color.Model {
	return w.img.ColorModel()
}

// Refresh is a no-op: the buffer is blitted every frame while the window
// runs.
func (w *Window) Refresh() error {
	return nil
}

func (w *Window) Close() error {
	return nil
}

// Run opens the window and blocks until it is closed. It must be called
// from the main goroutine.
func (w *Window) Run() error {
	size := w.img.Bounds().Size()
	ebiten.SetWindowTitle("Rainbow")
	ebiten.SetWindowSize(size.X, size.Y)
	if err := ebiten.RunGame(&game{w: w}); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

type game struct {
	w *Window
}

func (g *game) Update() error {
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w := g.w
	size := w.img.Bounds().Size()
	if w.fb == nil {
		w.fb = ebiten.NewImage(size.X, size.Y)
		w.scratch = make([]byte, len(w.img.Pix))
	}

	// The buffer is B-G-R-A, ebiten wants R-G-B-A.
	src := w.img.Pix
	dst := w.scratch
	for i := 0; i+3 < len(src); i += 4 {
		dst[i+0] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i+0]
		dst[i+3] = src[i+3]
	}

	w.fb.WritePixels(dst)
	screen.DrawImage(w.fb, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.w.img.Bounds().Size()
	return size.X, size.Y
}
