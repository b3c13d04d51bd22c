package patterns

import "github.com/zelenka/puzzlebox/model"

// Flood Walker: every cell the cursor walks onto toggles between two
// colors. The level is won when the board is uniform. Walking against
// the boundary keeps the cursor in place and toggles the cell it
// stands on, which is part of the puzzle.

func (g *Game) setupFlood(w, h int) {
	g.toggleA, g.toggleB = Cyan, Orange
	g.grid = model.NewGrid(w, h, g.toggleA)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if g.rng.Float64() < 0.4 {
				g.grid.Set(x, y, g.toggleB)
			}
		}
	}
	g.cursor = model.Pos{X: w / 2, Y: h / 2}
}

func (g *Game) stepFlood(d model.Pos) bool {
	g.save()
	nx := clamp(g.cursor.X+d.X, 0, g.grid.W-1)
	ny := clamp(g.cursor.Y+d.Y, 0, g.grid.H-1)
	g.cursor = model.Pos{X: nx, Y: ny}

	if g.grid.At(nx, ny) == g.toggleA {
		g.grid.Set(nx, ny, g.toggleB)
	} else {
		g.grid.Set(nx, ny, g.toggleA)
	}

	if g.grid.Uniform(g.grid.At(0, 0)) {
		g.advance()
	}
	return true
}
