package rainbow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BeatGlow/rainbow/pixel"
)

func TestFill(t *testing.T) {
	img := pixel.NewBGRAImage(360, 4)
	Fill(img)

	// One hue per column at 360 columns; the well-known stops must be exact.
	testCases := []struct {
		x    int
		want pixel.RGB
	}{
		{0, pixel.RGB{R: 255}},
		{60, pixel.RGB{R: 255, G: 255}},
		{120, pixel.RGB{G: 255}},
		{180, pixel.RGB{G: 255, B: 255}},
		{240, pixel.RGB{B: 255}},
		{300, pixel.RGB{R: 255, B: 255}},
		{359, pixel.RGB{R: 255, B: 4}},
	}
	for _, test := range testCases {
		for y := 0; y < 4; y++ {
			require.Equal(t, test.want, img.At(test.x, y), "column %d row %d", test.x, y)
		}
	}
}

func TestFillBytes(t *testing.T) {
	img := pixel.NewBGRAImage(360, 1)
	Fill(img)

	// Column 0 is pure red in B-G-R-A order.
	require.Equal(t, []byte{0, 0, 255, 255}, img.Pix[:4])
	// Column 180 is cyan.
	n := img.PixOffset(180, 0)
	require.Equal(t, []byte{255, 255, 0, 255}, img.Pix[n:n+4])
}

func TestFillBGR(t *testing.T) {
	img := pixel.NewBGRImage(360, 2)
	Fill(img)

	require.Equal(t, pixel.RGB{R: 255}, img.At(0, 1))
	require.Equal(t, pixel.RGB{G: 255, B: 255}, img.At(180, 0))
}

func TestFillContext(t *testing.T) {
	want := pixel.NewBGRAImage(512, 64)
	Fill(want)

	got := pixel.NewBGRAImage(512, 64)
	err := FillContext(context.Background(), got, 4)
	require.NoError(t, err)
	require.Equal(t, want.Pix, got.Pix)
}

func TestFillContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	img := pixel.NewBGRAImage(16, 16)
	require.Error(t, FillContext(ctx, img, 2))
}

func TestFillGeneric(t *testing.T) {
	// Targets without a byte-packed fast path go through Set.
	img := pixel.NewCRGB16Image(360, 1)
	Fill(img)

	require.Equal(t, pixel.CRGB16{V: 0xf800}, img.At(0, 0))
	require.Equal(t, pixel.CRGB16{V: 0x07ff}, img.At(180, 0))
}
