// Package rainbow paints a horizontal rainbow gradient onto pixel displays.
//
// The gradient derives a hue from the horizontal pixel position and converts
// it to RGB, so the colors run from red on the left edge through green and
// blue almost back to red on the right edge. Render targets are abstracted
// behind the [Display] interface, with implementations for the Linux
// framebuffer, a desktop window, and SPI TFT panels.
package rainbow

import (
	"image"
	"image/color"
)

// Display is a render target for the gradient.
type Display interface {
	// Close the display driver.
	Close() error

	// At returns the color of the pixel at (x, y).
	At(x, y int) color.Color

	// Set the pixel color at (x, y).
	Set(x, y int, c color.Color)

	// Bounds is the display bounding box (dimensions).
	Bounds() image.Rectangle

	// ColorModel used by the display.
	ColorModel() color.Model

	// Refresh presents the buffer on the display.
	Refresh() error
}

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels.
	Width int

	// Height of the display in pixels.
	Height int
}
