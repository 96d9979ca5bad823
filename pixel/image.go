package pixel

import (
	"image"
	"image/color"

	"github.com/BeatGlow/portrait/draw"
)

// Buffer holds the pixel values and is a container that is used by most image formats in this package.
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

// Clear sets every pixel to zero.
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

// Mask is an 8-bit per pixel alpha mask. A zero value pixel is fully
// transparent, 0xff is fully opaque.
type Mask struct {
	Buffer
}

// NewMask returns a fully transparent w×h mask.
func NewMask(w, h int) *Mask {
	return &Mask{
		Buffer: makeBuffer(w, h, w, w*h),
	}
}

func (p *Mask) ColorModel() color.Model {
	return color.AlphaModel
}

func (p *Mask) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}

func (p *Mask) At(x, y int) color.Color {
	return color.Alpha{A: p.AlphaAt(x, y)}
}

// AlphaAt returns the mask value at (x, y), or 0 outside the mask bounds.
func (p *Mask) AlphaAt(x, y int) uint8 {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return 0
	}
	return p.Pix[p.PixOffset(x, y)]
}

func (p *Mask) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = color.AlphaModel.Convert(c).(color.Alpha).A
}

// PutAlpha replaces the alpha channel of dst with the values in mask, leaving the
// color channels untouched. Pixels of dst outside the mask get alpha 0.
func PutAlpha(dst *image.NRGBA, mask *Mask) {
	r := dst.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x, i = x+1, i+4 {
			dst.Pix[i+3] = mask.AlphaAt(x-r.Min.X+mask.Rect.Min.X, y-r.Min.Y+mask.Rect.Min.Y)
		}
	}
}

// Interface checks.
var (
	_ draw.Image = (*Mask)(nil)
)
