package model

// Pos is a cell coordinate. X is the column, Y is the row, (0,0) is the
// top-left corner.
type Pos struct {
	X, Y int
}

// Dirs are the four orthogonal step offsets: up, down, left, right.
var Dirs = [4]Pos{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Grid is a rectangular board of integer cell labels. A Grid is owned by
// exactly one puzzle instance; it is replaced wholesale on level entry
// and never shared between instances.
type Grid struct {
	W, H  int
	Cells [][]int
}

// NewGrid returns a w×h grid with every cell set to label.
func NewGrid(w, h, label int) *Grid {
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		row := make([]int, w)
		for x := 0; x < w; x++ {
			row[x] = label
		}
		cells[y] = row
	}
	return &Grid{W: w, H: h, Cells: cells}
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

func (g *Grid) At(x, y int) int {
	return g.Cells[y][x]
}

func (g *Grid) Set(x, y, label int) {
	g.Cells[y][x] = label
}

// Clone returns a deep copy. Candidate grids are cloned before every
// speculative mutation so a rejected candidate never corrupts other
// attempts.
func (g *Grid) Clone() *Grid {
	cells := make([][]int, g.H)
	for y := 0; y < g.H; y++ {
		row := make([]int, g.W)
		copy(row, g.Cells[y])
		cells[y] = row
	}
	return &Grid{W: g.W, H: g.H, Cells: cells}
}

// Uniform reports whether every cell carries label.
func (g *Grid) Uniform(label int) bool {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Cells[y][x] != label {
				return false
			}
		}
	}
	return true
}

// Count returns how many cells carry label.
func (g *Grid) Count(label int) int {
	n := 0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Cells[y][x] == label {
				n++
			}
		}
	}
	return n
}

// Key returns a fingerprint of the grid contents, usable as a visited-set
// key in configuration-space searches. Labels are assumed to fit a byte.
func (g *Grid) Key() string {
	buf := make([]byte, 0, g.W*g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			buf = append(buf, byte(g.Cells[y][x]))
		}
	}
	return string(buf)
}
