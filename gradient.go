package rainbow

import (
	"context"
	"image"
	"image/draw"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/BeatGlow/rainbow/pixel"
)

// The gradient is always fully saturated at full brightness.
const (
	saturation = 1.0
	value      = 1.0
)

// Fill paints the rainbow gradient onto img, one hue per column. The hue
// sweeps the full color wheel but never reaches 360° because the rightmost
// column is at width−1.
func Fill(img draw.Image) {
	var (
		r   = img.Bounds()
		set = setter(img)
	)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		fillRow(set, r, y)
	}
}

// FillContext is like [Fill] but paints rows on up to workers goroutines.
// Rows are write-disjoint and the color conversion is pure, so the rows
// share no state. A workers value below 1 uses one goroutine per CPU.
func FillContext(ctx context.Context, img draw.Image, workers int) error {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	var (
		r   = img.Bounds()
		set = setter(img)
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		y := y
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			fillRow(set, r, y)
			return nil
		})
	}
	return g.Wait()
}

func fillRow(set func(x, y int, c pixel.RGB), r image.Rectangle, y int) {
	width := r.Dx()
	for x := r.Min.X; x < r.Max.X; x++ {
		hue := float64(x-r.Min.X) / float64(width) * 360
		set(x, y, pixel.HSV(hue, saturation, value))
	}
}

// setter returns the fastest pixel write path for img. The byte-packed
// images take RGB directly, everything else goes through the color model.
func setter(img draw.Image) func(x, y int, c pixel.RGB) {
	switch img := img.(type) {
	case *pixel.BGRAImage:
		return img.SetRGB
	case *pixel.BGRImage:
		return img.SetRGB
	default:
		return func(x, y int, c pixel.RGB) {
			img.Set(x, y, c)
		}
	}
}
