// Package pixel implements the color conversion and byte-packed image buffers
// used to paint gradients onto raw display memory.
//
// This module provides additional color models, compatible with Go's native
// [color.Color] and [image.Image] / [draw.Image] interfaces.
package pixel
