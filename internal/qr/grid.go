package qr

// Grid is a square matrix of QR modules as produced by an encoder.
type Grid interface {
	// Size returns the number of modules per side.
	Size() int
	// Module reports whether the module at column x, row y is dark.
	Module(x, y int) bool
}

// Matrix is a precomputed grid indexed as m[y][x].
type Matrix [][]bool

func (m Matrix) Size() int { return len(m) }

func (m Matrix) Module(x, y int) bool {
	if y < 0 || y >= len(m) || x < 0 || x >= len(m[y]) {
		return false
	}
	return m[y][x]
}

// ParseMatrix builds a Matrix from rows of '#' (dark) and any other rune (light).
func ParseMatrix(rows ...string) Matrix {
	m := make(Matrix, len(rows))
	for y, row := range rows {
		m[y] = make([]bool, 0, len(row))
		for _, r := range row {
			m[y] = append(m[y], r == '#')
		}
	}
	return m
}
