// Package framebuffer provides access to the operating system's native
// framebuffer as gradient render target.
//
// This requires framebuffer device support in the operating system. The
// framebuffer can be opened with the [Open] call; pixel writes land directly
// in the memory-mapped video memory, so Refresh is a no-op.
package framebuffer

import "github.com/BeatGlow/rainbow"

// Info describes the geometry and pixel format of an opened framebuffer, as
// discovered from the device at runtime.
type Info struct {
	// Width and Height are the visible resolution in pixels.
	Width, Height int

	// BitsPerPixel is the color depth.
	BitsPerPixel int

	// Stride is the length of a scanline in bytes, which may exceed
	// Width × BitsPerPixel/8 due to padding.
	Stride int

	// Size is the total size of the mapped video memory in bytes.
	Size int
}

// Device is a framebuffer-backed display.
type Device interface {
	rainbow.Display

	// Info reports the geometry and pixel format of the device.
	Info() Info
}
