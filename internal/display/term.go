package display

import (
	"image"
	"iter"
	"strings"

	"github.com/yuzeguitarist/qrpanel/internal/qrdraw"
)

// Ink is the bool color space: true is ink.
type Ink struct{}

func (Ink) Black() bool { return true }
func (Ink) White() bool { return false }

// Terminal collects pixels and prints them two rows per line with
// half-block characters, assuming light text on a dark background.
type Terminal struct {
	W, H int
	pix  []bool
}

func NewTerminal(w, h int) *Terminal {
	return &Terminal{W: w, H: h, pix: make([]bool, w*h)}
}

func (t *Terminal) BoundingBox() image.Rectangle { return image.Rect(0, 0, t.W, t.H) }

func (t *Terminal) DrawIter(seq iter.Seq[qrdraw.Pixel[bool]]) error {
	for p := range seq {
		if p.Point.X < 0 || p.Point.Y < 0 || p.Point.X >= t.W || p.Point.Y >= t.H {
			continue
		}
		t.pix[p.Point.Y*t.W+p.Point.X] = p.Color
	}
	return nil
}

func (t *Terminal) ink(x, y int) bool {
	if y >= t.H {
		return false
	}
	return t.pix[y*t.W+x]
}

// Lines returns the rendered rows.
func (t *Terminal) Lines() []string {
	var lines []string
	for y := 0; y < t.H; y += 2 {
		var sb strings.Builder
		for x := 0; x < t.W; x++ {
			upper, lower := t.ink(x, y), t.ink(x, y+1)
			switch {
			case upper && lower:
				sb.WriteString(" ")
			case upper:
				sb.WriteString("▄")
			case lower:
				sb.WriteString("▀")
			default:
				sb.WriteString("█")
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}
