package framebuffer

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/BeatGlow/rainbow/internal/ioctl"
	"github.com/BeatGlow/rainbow/pixel"
)

const (
	// From <linux/fb.h>
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
)

type frameBuffer struct {
	pixel.Image
	f          *os.File
	pix        []byte
	info       fixScreenInfo
	screenInfo varScreenInfo
}

// Open a Linux framebuffer device (fbdev) by name, typically /dev/fb[0..x].
// The pixel format is discovered from the device; only the common 32-bit and
// 24-bit little-endian blue-green-red layouts are supported.
func Open(name string) (Device, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}

	fb := &frameBuffer{f: f}
	if err = ioctl.Do(f.Fd(), fbioGetFScreenInfo, &fb.info); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = ioctl.Do(f.Fd(), fbioGetVScreenInfo, &fb.screenInfo); err != nil {
		_ = f.Close()
		return nil, err
	}

	// Map the video memory.
	if fb.pix, err = unix.Mmap(int(f.Fd()), 0, int(fb.info.SmemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED); err != nil {
		_ = f.Close()
		return nil, err
	}

	if fb.Image, err = newImage(&fb.screenInfo, &fb.info, fb.pix); err != nil {
		_ = unix.Munmap(fb.pix)
		_ = f.Close()
		return nil, err
	}

	return fb, nil
}

// newImage maps the discovered pixel format onto a byte-packed image.
func newImage(v *varScreenInfo, f *fixScreenInfo, pix []byte) (pixel.Image, error) {
	if v.Red.MsbRight|v.Green.MsbRight|v.Blue.MsbRight != 0 {
		return nil, fmt.Errorf("framebuffer: unsupported color model (msb_right)")
	}

	switch v.BitsPerPixel {
	case 24, 32:
		if v.Blue.Offset != 0 || v.Blue.Length != 8 ||
			v.Green.Offset != 8 || v.Green.Length != 8 ||
			v.Red.Offset != 16 || v.Red.Length != 8 {
			break
		}
		return pixel.NewImage(pix,
			int(v.Xres), int(v.Yres),
			int(f.LineLength), int(v.BitsPerPixel)/8,
		)
	}

	return nil, fmt.Errorf("framebuffer: unsupported color model (%d bits per pixel)", v.BitsPerPixel)
}

func (fb *frameBuffer) Info() Info {
	return Info{
		Width:        int(fb.screenInfo.Xres),
		Height:       int(fb.screenInfo.Yres),
		BitsPerPixel: int(fb.screenInfo.BitsPerPixel),
		Stride:       int(fb.info.LineLength),
		Size:         int(fb.info.SmemLen),
	}
}

// Refresh is a no-op: pixel writes land directly in video memory.
func (fb *frameBuffer) Refresh() error {
	return nil
}

// Close unmaps the video memory and closes the framebuffer device.
func (fb *frameBuffer) Close() error {
	if err := unix.Munmap(fb.pix); err != nil {
		return err
	}
	return fb.f.Close()
}

// fixScreenInfo mirrors struct fb_fix_screeninfo from <linux/fb.h>.
type fixScreenInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

// bitField describes one color channel inside a pixel.
type bitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// varScreenInfo mirrors struct fb_var_screeninfo from <linux/fb.h>: device
// independent changeable information about a frame buffer device and a
// specific video mode.
type varScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha bitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}
