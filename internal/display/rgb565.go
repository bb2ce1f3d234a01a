package display

import (
	"fmt"
	"image"
	"image/color"
	"iter"

	"github.com/yuzeguitarist/qrpanel/internal/qrdraw"
)

// RGB565Space maps ink to 0x0000 and paper to 0xffff.
type RGB565Space struct{}

func (RGB565Space) Black() uint16 { return 0x0000 }
func (RGB565Space) White() uint16 { return 0xffff }

// RGB565 is a little-endian RGB565 framebuffer, the layout SPI panels
// such as the ILI9341 take.
type RGB565 struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
	Strict bool
}

func NewRGB565(w, h int) *RGB565 {
	return &RGB565{Buf: make([]byte, w*h*2), Stride: w * 2, W: w, H: h}
}

func (t *RGB565) BoundingBox() image.Rectangle { return image.Rect(0, 0, t.W, t.H) }

func (t *RGB565) DrawIter(seq iter.Seq[qrdraw.Pixel[uint16]]) error {
	for p := range seq {
		x, y := p.Point.X, p.Point.Y
		off := y*t.Stride + x*2
		if x < 0 || y < 0 || x >= t.W || y >= t.H || off+1 >= len(t.Buf) {
			if t.Strict {
				return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, t.W, t.H)
			}
			continue
		}
		t.Buf[off] = byte(p.Color)
		t.Buf[off+1] = byte(p.Color >> 8)
	}
	return nil
}

// At returns the raw RGB565 value at (x, y), or 0 outside the framebuffer.
func (t *RGB565) At(x, y int) uint16 {
	off := y*t.Stride + x*2
	if x < 0 || y < 0 || x >= t.W || y >= t.H || off+1 >= len(t.Buf) {
		return 0
	}
	return uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8
}

// Image converts the framebuffer to an RGBA image.
func (t *RGB565) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, t.W, t.H))
	for y := 0; y < t.H; y++ {
		for x := 0; x < t.W; x++ {
			img.Set(x, y, rgb565To888(t.At(x, y)))
		}
	}
	return img
}

func rgb565To888(p uint16) color.RGBA {
	r := uint8(p>>11) & 0x1f
	g := uint8(p>>5) & 0x3f
	b := uint8(p) & 0x1f
	return color.RGBA{R: r<<3 | r>>2, G: g<<2 | g>>4, B: b<<3 | b>>2, A: 0xff}
}
