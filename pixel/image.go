package pixel

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// ErrPixelFormat is returned for buffers with a bytes-per-pixel value this
// package cannot address.
var ErrPixelFormat = errors.New("pixel: unsupported pixel format")

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is a container that is used by the image
// formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// NewImage maps an externally acquired pixel buffer onto an addressable
// image. The geometry is discovered at runtime by the caller, typically from
// the display system that owns pix.
//
// Buffers with 4 bytes per pixel are addressed as [BGRAImage], buffers with 3
// bytes per pixel as [BGRImage]. Any other depth returns [ErrPixelFormat].
func NewImage(pix []byte, w, h, stride, bytesPerPixel int) (Image, error) {
	if w < 0 || h < 0 || stride < w*bytesPerPixel {
		return nil, fmt.Errorf("pixel: invalid geometry %dx%d with stride %d", w, h, stride)
	}
	if len(pix) < h*stride {
		return nil, fmt.Errorf("pixel: buffer is %d bytes, geometry needs %d", len(pix), h*stride)
	}

	buffer := Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    pix,
		Stride: stride,
	}
	switch bytesPerPixel {
	case 4:
		return &BGRAImage{Buffer: buffer}, nil
	case 3:
		return &BGRImage{Buffer: buffer}, nil
	default:
		return nil, fmt.Errorf("%w: %d bytes per pixel", ErrPixelFormat, bytesPerPixel)
	}
}

// BGRAImage is a 32-bits per pixel image in blue-green-red-alpha channel
// order, the layout of most 32-bit framebuffer and window surfaces on
// little-endian systems. The alpha byte is always written fully opaque.
type BGRAImage struct {
	Buffer
}

func NewBGRAImage(w, h int) *BGRAImage {
	return &BGRAImage{
		Buffer: makeBuffer(w, h, w*4, w*4*h),
	}
}

func (p *BGRAImage) ColorModel() color.Model {
	return RGBModel
}

func (p *BGRAImage) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*4
}

func (p *BGRAImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	pix := p.Pix[p.PixOffset(x, y):]
	return RGB{R: pix[2], G: pix[1], B: pix[0]}
}

func (p *BGRAImage) Set(x, y int, c color.Color) {
	p.SetRGB(x, y, rgbModel(c).(RGB))
}

func (p *BGRAImage) SetRGB(x, y int, c RGB) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	pix := p.Pix[p.PixOffset(x, y):]
	pix[0] = c.B
	pix[1] = c.G
	pix[2] = c.R
	pix[3] = 0xff
}

func (p *BGRAImage) Fill(c color.Color) {
	v := rgbModel(c).(RGB)
	pix := []byte{v.B, v.G, v.R, 0xff}
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		for x := p.Rect.Min.X; x < p.Rect.Max.X; x++ {
			copy(p.Pix[p.PixOffset(x, y):], pix)
		}
	}
}

// BGRImage is a 24-bits per pixel image in blue-green-red channel order.
type BGRImage struct {
	Buffer
}

func NewBGRImage(w, h int) *BGRImage {
	return &BGRImage{
		Buffer: makeBuffer(w, h, w*3, w*3*h),
	}
}

func (p *BGRImage) ColorModel() color.Model {
	return RGBModel
}

func (p *BGRImage) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

func (p *BGRImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	pix := p.Pix[p.PixOffset(x, y):]
	return RGB{R: pix[2], G: pix[1], B: pix[0]}
}

func (p *BGRImage) Set(x, y int, c color.Color) {
	p.SetRGB(x, y, rgbModel(c).(RGB))
}

func (p *BGRImage) SetRGB(x, y int, c RGB) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	n := p.PixOffset(x, y)
	pix := p.Pix[n : n+3 : n+3] // small cap keeps the write from spilling into the next pixel
	pix[0] = c.B
	pix[1] = c.G
	pix[2] = c.R
}

func (p *BGRImage) Fill(c color.Color) {
	v := rgbModel(c).(RGB)
	pix := []byte{v.B, v.G, v.R}
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		for x := p.Rect.Min.X; x < p.Rect.Max.X; x++ {
			copy(p.Pix[p.PixOffset(x, y):], pix)
		}
	}
}

// CRGB16Image is a 16-bits per pixel 5-6-5-bit RGB image, the frame format
// pushed to SPI TFT panels.
type CRGB16Image struct {
	Buffer
	Order binary.ByteOrder
}

func NewCRGB16Image(w, h int) *CRGB16Image {
	return &CRGB16Image{
		Buffer: makeBuffer(w, h, w*2, w*2*h),
		Order:  binary.BigEndian,
	}
}

func (p *CRGB16Image) ColorModel() color.Model {
	return CRGB16Model
}

func (p *CRGB16Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	v := p.Order.Uint16(p.Pix[x*2+y*p.Stride:])
	return CRGB16{v}
}

func (p *CRGB16Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	v := crgb16Model(c).(CRGB16).V
	p.Order.PutUint16(p.Pix[x*2+y*p.Stride:], v)
}

func (p *CRGB16Image) Fill(c color.Color) {
	value := crgb16Model(c).(CRGB16).V
	bytes := make([]byte, 2)
	p.Order.PutUint16(bytes, value)
	for i, l := 0, len(p.Pix); i < l; i += 2 {
		copy(p.Pix[i:], bytes)
	}
}

// Interface checks.
var (
	_ Image = (*BGRAImage)(nil)
	_ Image = (*BGRImage)(nil)
	_ Image = (*CRGB16Image)(nil)
)
