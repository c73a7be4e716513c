package pixel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHSVPrimaries(t *testing.T) {
	testCases := []struct {
		hue  float64
		want RGB
	}{
		{0, RGB{R: 255}},
		{60, RGB{R: 255, G: 255}},
		{120, RGB{G: 255}},
		{180, RGB{G: 255, B: 255}},
		{240, RGB{B: 255}},
		{300, RGB{R: 255, B: 255}},
	}
	for _, test := range testCases {
		c := HSV(test.hue, 1, 1)
		require.Equal(t, test.want, c, "hue %g°", test.hue)
	}
}

func TestHSVGray(t *testing.T) {
	// Zero saturation washes out the hue entirely.
	for _, hue := range []float64{0, 42, 180, 359} {
		for _, value := range []float64{0, 0.25, 0.5, 1} {
			c := HSV(hue, 0, value)
			want := uint8(value * 255)
			require.Equal(t, RGB{R: want, G: want, B: want}, c, "hue %g° value %g", hue, value)
		}
	}
}

func TestHSVBlack(t *testing.T) {
	for _, hue := range []float64{0, 90, 213, 359.9} {
		for _, saturation := range []float64{0, 0.5, 1} {
			require.Equal(t, RGB{}, HSV(hue, saturation, 0), "hue %g° saturation %g", hue, saturation)
		}
	}
}

func TestHSVTruncates(t *testing.T) {
	// The secondary channel at 30° is exactly 127.5 and must truncate to 127,
	// not round to 128.
	require.Equal(t, RGB{R: 255, G: 127}, HSV(30, 1, 1))
}

func TestHSVNearWrap(t *testing.T) {
	// The last column of a 360 pixel wide gradient is almost back to red.
	require.Equal(t, RGB{R: 255, G: 0, B: 4}, HSV(359, 1, 1))
}

func TestRGB(t *testing.T) {
	r, g, b, a := RGB{R: 0x12, G: 0x34, B: 0x56}.RGBA()
	require.Equal(t, uint32(0x1212), r)
	require.Equal(t, uint32(0x3434), g)
	require.Equal(t, uint32(0x5656), b)
	require.Equal(t, uint32(0xffff), a)
}

func TestRGBModel(t *testing.T) {
	c := RGB{R: 1, G: 2, B: 3}
	require.Equal(t, c, RGBModel.Convert(c))
	require.Equal(t, RGB{R: 0xff, G: 0xff, B: 0xff}, RGBModel.Convert(CRGB16{V: 0xffff}))
}
