// Package display provides drawing surfaces for qrdraw: in-memory images,
// RGB565 framebuffers and terminals.
package display

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"iter"

	"github.com/yuzeguitarist/qrpanel/internal/qrdraw"
)

// ErrOutOfBounds is returned by strict surfaces for pixels they cannot hold.
var ErrOutOfBounds = errors.New("display: pixel out of bounds")

// Palette is the two-color palette of a monochrome panel; index 1 is ink.
func Palette() color.Palette {
	return color.Palette{color.White, color.Black}
}

// NewPanel returns a white w×h paletted image. PNG encodes it as a
// 1-bit image.
func NewPanel(w, h int) *image.Paletted {
	return image.NewPaletted(image.Rect(0, 0, w, h), Palette())
}

// ImageTarget draws onto any draw.Image. Pixels outside the image are
// dropped unless Strict is set, in which case drawing stops with
// ErrOutOfBounds.
type ImageTarget struct {
	Img    draw.Image
	Strict bool
}

func (t *ImageTarget) BoundingBox() image.Rectangle { return t.Img.Bounds() }

func (t *ImageTarget) DrawIter(seq iter.Seq[qrdraw.Pixel[color.Color]]) error {
	b := t.Img.Bounds()
	for p := range seq {
		if !p.Point.In(b) {
			if t.Strict {
				return fmt.Errorf("%w: %v outside %v", ErrOutOfBounds, p.Point, b)
			}
			continue
		}
		t.Img.Set(p.Point.X, p.Point.Y, p.Color)
	}
	return nil
}

// IsDark reports whether c is closer to black than to white.
func IsDark(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y < 0x80
}
