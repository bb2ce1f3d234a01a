package qrdraw

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/bits"

	"github.com/yuzeguitarist/qrpanel/internal/qr"
)

// ErrDimensionTooLarge is returned when a canvas width cannot render a grid:
// the width is too large for safe arithmetic, or too small to fit a single
// pixel per module.
var ErrDimensionTooLarge = errors.New("qrdraw: dimension too large")

// marginSize is the quiet zone, in modules, on each side of the grid.
const marginSize = 1

// maxWidth bounds the canvas so that width*width cannot overflow.
const maxWidth = 1 << (bits.UintSize / 2)

// checkWidth rejects widths whose square does not fit in an int.
func checkWidth(width int) error {
	if width < 0 || width >= maxWidth || (width > 0 && width > math.MaxInt/width) {
		return fmt.Errorf("%w: width %d out of range", ErrDimensionTooLarge, width)
	}
	return nil
}

// Geometry is the module-to-pixel mapping chosen for one rasterization.
type Geometry struct {
	ModuleCount int `json:"moduleCount"`
	Width       int `json:"width"`
	PointSize   int `json:"pointSize"`
	Margin      int `json:"margin"`
}

// Layout computes the point size and margin for a grid of moduleCount
// modules on a width×width canvas.
//
// The margin centers the unmargined grid: it is half of what remains after
// subtracting PointSize*ModuleCount from width, so with integer rounding the
// border on each side may differ from exactly one module.
func Layout(moduleCount, width int) (Geometry, error) {
	if err := checkWidth(width); err != nil {
		return Geometry{}, err
	}
	if moduleCount < 1 {
		return Geometry{}, fmt.Errorf("qrdraw: grid has no modules")
	}
	pointSize := width / (moduleCount + 2*marginSize)
	if pointSize == 0 {
		return Geometry{}, fmt.Errorf("%w: width %d cannot fit %d modules plus margin", ErrDimensionTooLarge, width, moduleCount)
	}
	return Geometry{
		ModuleCount: moduleCount,
		Width:       width,
		PointSize:   pointSize,
		Margin:      (width - pointSize*moduleCount) / 2,
	}, nil
}

// Drawable binds a module grid to the canvas it is rasterized into.
type Drawable struct {
	grid   qr.Grid
	canvas *Canvas
}

// New returns a Drawable that rasterizes grid into canvas.
func New(grid qr.Grid, canvas *Canvas) *Drawable {
	return &Drawable{grid: grid, canvas: canvas}
}

// Canvas returns the canvas the Drawable writes to.
func (d *Drawable) Canvas() *Canvas { return d.canvas }

// Prepare rasterizes the grid onto a width×width canvas, setting every pixel
// covered by a dark module. Pixels are only ever set, never cleared.
//
// The canvas must hold at least width*width cells; this is not checked.
// On error the canvas is left untouched.
func (d *Drawable) Prepare(width int) (Geometry, error) {
	g, err := Layout(d.grid.Size(), width)
	if err != nil {
		return Geometry{}, err
	}

	pix := d.canvas.Pix
	n := g.ModuleCount
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !d.grid.Module(i, j) {
				continue
			}
			x := i*g.PointSize + g.Margin
			y := j*g.PointSize + g.Margin
			for yy := y; yy < y+g.PointSize; yy++ {
				row := pix[yy*width:]
				for xx := x; xx < x+g.PointSize; xx++ {
					row[xx] = true
				}
			}
		}
	}
	d.canvas.Width = width
	return g, nil
}

// Draw renders the prepared canvas onto a color.Color target in pure
// black and white. See [Draw] for other color spaces.
func (d *Drawable) Draw(target Target[color.Color], opts ...Option) error {
	return Draw[color.Color](d.canvas, target, Monochrome{}, opts...)
}
