package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestBGRAImage(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewBGRAImage(size.X, size.Y)
	}, RGBModel)
}

func TestBGRImage(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewBGRImage(size.X, size.Y)
	}, RGBModel)
}

func TestCRGB16Image(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewCRGB16Image(size.X, size.Y)
	}, CRGB16Model)
}

func TestBGRAImageLayout(t *testing.T) {
	// Two columns with a padded stride of 16 bytes.
	pix := make([]byte, 32)
	img, err := NewImage(pix, 2, 2, 16, 4)
	if err != nil {
		t.Fatal(err)
	}

	p := img.(*BGRAImage)
	p.SetRGB(0, 0, RGB{R: 0xaa, G: 0xbb, B: 0xcc})

	want := []byte{0xcc, 0xbb, 0xaa, 0xff}
	for i, v := range want {
		if pix[i] != v {
			t.Errorf("expected byte %d to be %#02x, got %#02x", i, v, pix[i])
		}
	}
	for i := len(want); i < len(pix); i++ {
		if pix[i] != 0 {
			t.Errorf("expected byte %d to be untouched, got %#02x", i, pix[i])
		}
	}

	// Writing the same pixel again must not change the outcome.
	p.SetRGB(0, 0, RGB{R: 0xaa, G: 0xbb, B: 0xcc})
	for i, v := range want {
		if pix[i] != v {
			t.Errorf("expected byte %d to be %#02x after rewrite, got %#02x", i, v, pix[i])
		}
	}

	if want := 16 + 4; p.PixOffset(1, 1) != want {
		t.Errorf("expected offset %d for (1,1), got %d", want, p.PixOffset(1, 1))
	}
}

func TestBGRImageLayout(t *testing.T) {
	pix := make([]byte, 32)
	img, err := NewImage(pix, 2, 2, 16, 3)
	if err != nil {
		t.Fatal(err)
	}

	p := img.(*BGRImage)
	p.SetRGB(1, 0, RGB{R: 0x11, G: 0x22, B: 0x33})

	want := []byte{0, 0, 0, 0x33, 0x22, 0x11, 0}
	for i, v := range want {
		if pix[i] != v {
			t.Errorf("expected byte %d to be %#02x, got %#02x", i, v, pix[i])
		}
	}

	if want := 16 + 3; p.PixOffset(1, 1) != want {
		t.Errorf("expected offset %d for (1,1), got %d", want, p.PixOffset(1, 1))
	}
}

func TestNewImage(t *testing.T) {
	t.Run("unsupported-depth", func(it *testing.T) {
		for _, bytesPerPixel := range []int{0, 1, 2, 5, 8} {
			if _, err := NewImage(make([]byte, 1024), 4, 4, 4*bytesPerPixel, bytesPerPixel); err == nil {
				it.Errorf("expected an error for %d bytes per pixel", bytesPerPixel)
			}
		}
	})

	t.Run("short-buffer", func(it *testing.T) {
		if _, err := NewImage(make([]byte, 15), 2, 2, 8, 4); err == nil {
			it.Error("expected an error for a short buffer")
		}
	})

	t.Run("bad-stride", func(it *testing.T) {
		if _, err := NewImage(make([]byte, 64), 4, 4, 8, 4); err == nil {
			it.Error("expected an error for a stride below width×depth")
		}
	})
}

func testImage(t *testing.T, f func(image.Point) Image, model color.Model) {
	t.Helper()
	testCases := []image.Point{
		image.Point{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(256, 32),
		image.Pt(256, 64),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := f(test)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != model {
				it.Errorf("expected color model %T, got %T", model, v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
							return
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for y := -test.Y; y < test.Y*2; y++ {
					for x := -test.X; x < test.X*2; x++ {
						i.Set(x, y, testRandomColor())
						if x < 0 || y < 0 {
							if v := i.At(x, y); v != color.Transparent {
								itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
								return
							}
						}
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				c := testRandomColor()
				i.Fill(c)
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.ColorModel().Convert(c); i.At(x, y) != v {
						itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
						return
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					r, g, b, _ := i.At(x, y).RGBA()
					if r|g|b != 0 {
						itt.Fatalf("pixel (%d,%d) is not black", x, y)
					}
				}
			})
		})
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}
