package qrdraw

// Canvas is a square monochrome pixel buffer in row-major order.
// Pix[y*Width+x] is true for foreground (dark) pixels.
type Canvas struct {
	Pix   []bool
	Width int
}

// NewCanvas allocates an all-background canvas of width×width pixels.
// Widths that [Layout] rejects as out of range yield an empty canvas.
func NewCanvas(width int) *Canvas {
	if checkWidth(width) != nil {
		return &Canvas{}
	}
	return &Canvas{Pix: make([]bool, width*width), Width: width}
}

// Height is the number of complete rows in Pix.
func (c *Canvas) Height() int {
	if c.Width <= 0 {
		return 0
	}
	return len(c.Pix) / c.Width
}

// At reports whether the pixel at (x, y) is set. Pixels outside the
// canvas read as background.
func (c *Canvas) At(x, y int) bool {
	if x < 0 || y < 0 || x >= c.Width {
		return false
	}
	i := y*c.Width + x
	if i >= len(c.Pix) {
		return false
	}
	return c.Pix[i]
}

// Reset clears every pixel back to background.
func (c *Canvas) Reset() {
	clear(c.Pix)
}
