package canvas2d

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/canvas2d/internal/blend"
)

// Pixmap is a rectangular buffer of premultiplied RGBA pixels, laid out
// exactly like image.RGBA with a stride of 4*width.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // premultiplied RGBA, 4 bytes per pixel
}

// NewPixmap creates a transparent pixmap.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw premultiplied pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// ByteSize returns the size of the pixel buffer in bytes.
func (p *Pixmap) ByteSize() int64 {
	return int64(len(p.data))
}

func (p *Pixmap) offset(x, y int) int {
	return (y*p.width + x) * 4
}

func (p *Pixmap) inBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// pixel returns the premultiplied color at (x, y), transparent outside.
func (p *Pixmap) pixel(x, y int) blend.Pixel {
	if !p.inBounds(x, y) {
		return blend.Pixel{}
	}
	i := p.offset(x, y)
	return blend.FromBytes(p.data[i], p.data[i+1], p.data[i+2], p.data[i+3])
}

func (p *Pixmap) setPixel(x, y int, c blend.Pixel) {
	i := p.offset(x, y)
	p.data[i], p.data[i+1], p.data[i+2], p.data[i+3] = c.Bytes()
}

// Clear makes every pixel transparent.
func (p *Pixmap) Clear() {
	clear(p.data)
}

// Clone returns a deep copy of p.
func (p *Pixmap) Clone() *Pixmap {
	return &Pixmap{
		width:  p.width,
		height: p.height,
		data:   append([]uint8(nil), p.data...),
	}
}

// ToImage returns a premultiplied copy of the pixels.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// asRGBA wraps the pixel buffer without copying.
func (p *Pixmap) asRGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// FromImage converts img to a pixmap. Non-premultiplied sources are
// premultiplied with (c*a + 127) / 255.
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	p := NewPixmap(b.Dx(), b.Dy())
	switch src := img.(type) {
	case *image.RGBA:
		for y := 0; y < p.height; y++ {
			copy(p.data[y*p.width*4:(y+1)*p.width*4], src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):])
		}
	case *image.NRGBA:
		for y := 0; y < p.height; y++ {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := 0; x < p.width; x++ {
				s := row[x*4 : x*4+4]
				premultiply(p.data[p.offset(x, y):], s[0], s[1], s[2], s[3])
			}
		}
	case *Pixmap:
		copy(p.data, src.data)
	default:
		draw.Draw(p.asRGBA(), p.asRGBA().Rect, img, b.Min, draw.Src)
	}
	return p
}

func premultiply(dst []uint8, r, g, b, a uint8) {
	switch a {
	case 0:
		dst[0], dst[1], dst[2], dst[3] = 0, 0, 0, 0
	case 255:
		dst[0], dst[1], dst[2], dst[3] = r, g, b, 255
	default:
		m := func(c uint8) uint8 { return uint8((uint32(c)*uint32(a) + 127) / 255) }
		dst[0], dst[1], dst[2], dst[3] = m(r), m(g), m(b), a
	}
}

// unpremultiply reverses premultiply, rounding to nearest.
func unpremultiply(dst []uint8, r, g, b, a uint8) {
	switch a {
	case 0:
		dst[0], dst[1], dst[2], dst[3] = 0, 0, 0, 0
	case 255:
		dst[0], dst[1], dst[2], dst[3] = r, g, b, 255
	default:
		u := func(c uint8) uint8 { return uint8(min((uint32(c)*255+uint32(a)/2)/uint32(a), 255)) }
		dst[0], dst[1], dst[2], dst[3] = u(r), u(g), u(b), a
	}
}

// NRGBA returns the pixels as a non-premultiplied image.
func (p *Pixmap) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for i := 0; i < len(p.data); i += 4 {
		unpremultiply(img.Pix[i:], p.data[i], p.data[i+1], p.data[i+2], p.data[i+3])
	}
	return img
}

// At implements image.Image.
func (p *Pixmap) At(x, y int) color.Color {
	if !p.inBounds(x, y) {
		return color.RGBA{}
	}
	i := p.offset(x, y)
	return color.RGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements image.Image.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements image.Image.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
