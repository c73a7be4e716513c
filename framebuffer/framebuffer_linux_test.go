package framebuffer

import (
	"testing"

	"github.com/BeatGlow/rainbow/pixel"
)

func testScreenInfo(bits uint32) *varScreenInfo {
	return &varScreenInfo{
		Xres:         4,
		Yres:         4,
		BitsPerPixel: bits,
		Red:          bitField{Offset: 16, Length: 8},
		Green:        bitField{Offset: 8, Length: 8},
		Blue:         bitField{Offset: 0, Length: 8},
	}
}

func TestNewImage(t *testing.T) {
	fix := &fixScreenInfo{LineLength: 16}

	t.Run("bgra", func(it *testing.T) {
		img, err := newImage(testScreenInfo(32), fix, make([]byte, 64))
		if err != nil {
			it.Fatal(err)
		}
		if _, ok := img.(*pixel.BGRAImage); !ok {
			it.Errorf("expected a *pixel.BGRAImage, got %T", img)
		}
	})

	t.Run("bgr", func(it *testing.T) {
		img, err := newImage(testScreenInfo(24), fix, make([]byte, 64))
		if err != nil {
			it.Fatal(err)
		}
		if _, ok := img.(*pixel.BGRImage); !ok {
			it.Errorf("expected a *pixel.BGRImage, got %T", img)
		}
	})

	t.Run("unsupported-depth", func(it *testing.T) {
		for _, bits := range []uint32{1, 8, 15, 16} {
			if _, err := newImage(testScreenInfo(bits), fix, make([]byte, 64)); err == nil {
				it.Errorf("expected an error for %d bits per pixel", bits)
			}
		}
	})

	t.Run("unsupported-order", func(it *testing.T) {
		info := testScreenInfo(32)
		info.Red.Offset, info.Blue.Offset = 0, 16 // RGBA instead of BGRA
		if _, err := newImage(info, fix, make([]byte, 64)); err == nil {
			it.Error("expected an error for red-first channel order")
		}
	})

	t.Run("msb-right", func(it *testing.T) {
		info := testScreenInfo(32)
		info.Green.MsbRight = 1
		if _, err := newImage(info, fix, make([]byte, 64)); err == nil {
			it.Error("expected an error for msb_right channels")
		}
	})
}
