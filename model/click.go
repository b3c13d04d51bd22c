package model

// CycleLabel returns the cyclic successor of label within palette. A
// label not present in the palette is treated as palette index 0 before
// advancing, so foreign labels fold back into the cycle instead of
// breaking it.
func CycleLabel(label int, palette []int) int {
	for i, c := range palette {
		if c == label {
			return palette[(i+1)%len(palette)]
		}
	}
	return palette[0]
}

// ApplyClick advances the cell at (x,y) and its four orthogonal
// in-bounds neighbours one step through the palette cycle. The caller's
// grid is left untouched; a new grid is returned.
func ApplyClick(g *Grid, x, y int, palette []int) *Grid {
	out := g.Clone()
	targets := [5]Pos{{x, y}, {x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}}
	for _, t := range targets {
		if out.InBounds(t.X, t.Y) {
			out.Cells[t.Y][t.X] = CycleLabel(out.Cells[t.Y][t.X], palette)
		}
	}
	return out
}
