package qrdraw

import (
	"fmt"
	"image"
	"image/color"
	"iter"
)

// ColorSpace provides the two colors a canvas is rendered with.
type ColorSpace[C any] interface {
	Black() C
	White() C
}

// Monochrome is the color.Color space of pure black and white.
type Monochrome struct{}

func (Monochrome) Black() color.Color { return color.Black }
func (Monochrome) White() color.Color { return color.White }

// Pixel is a single draw command.
type Pixel[C any] struct {
	Point image.Point
	Color C
}

// Target is a drawing surface that accepts a stream of pixels.
type Target[C any] interface {
	// BoundingBox returns the area the surface covers.
	BoundingBox() image.Rectangle
	// DrawIter draws every pixel of seq. Errors are surface specific.
	DrawIter(seq iter.Seq[Pixel[C]]) error
}

// DefaultCenterDivisor shifts the image right by a quarter of the target's
// center x coordinate, which lines a 240 pixel canvas up on a 320 pixel wide
// panel.
const DefaultCenterDivisor = 4

type drawOptions struct {
	centerDivisor int
}

type Option func(*drawOptions)

// WithCenterDivisor sets the divisor applied to the target's center x
// coordinate to get the horizontal offset. Zero disables the offset.
func WithCenterDivisor(d int) Option {
	return func(o *drawOptions) { o.centerDivisor = d }
}

// Center returns the center of r, rounded towards its top-left corner.
func Center(r image.Rectangle) image.Point {
	w, h := max(r.Dx()-1, 0), max(r.Dy()-1, 0)
	return image.Point{X: r.Min.X + w/2, Y: r.Min.Y + h/2}
}

// Offset is the horizontal shift Draw applies on a target with bounding box r.
func Offset(r image.Rectangle, opts ...Option) int {
	o := drawOptions{centerDivisor: DefaultCenterDivisor}
	for _, opt := range opts {
		opt(&o)
	}
	if o.centerDivisor == 0 {
		return 0
	}
	return Center(r).X / o.centerDivisor
}

// Pixels returns the canvas as a lazy sequence of draw commands, one per
// cell in buffer order, shifted right by dx.
func Pixels[C any](c *Canvas, cs ColorSpace[C], dx int) iter.Seq[Pixel[C]] {
	black, white := cs.Black(), cs.White()
	stride := c.Width
	return func(yield func(Pixel[C]) bool) {
		for i, set := range c.Pix {
			y := i / stride
			x := i - y*stride
			col := white
			if set {
				col = black
			}
			if !yield(Pixel[C]{Point: image.Point{X: x + dx, Y: y}, Color: col}) {
				return
			}
		}
	}
}

// Draw submits every canvas cell to target as a single batch. Background
// cells are drawn too, so the covered region is fully overwritten.
// Errors from the target are returned unchanged.
func Draw[C any](c *Canvas, target Target[C], cs ColorSpace[C], opts ...Option) error {
	if c.Width <= 0 && len(c.Pix) > 0 {
		return fmt.Errorf("qrdraw: canvas has no row width")
	}
	dx := Offset(target.BoundingBox(), opts...)
	return target.DrawIter(Pixels(c, cs, dx))
}
