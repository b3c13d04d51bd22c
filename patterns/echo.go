package patterns

import "github.com/zelenka/puzzlebox/model"

// Color Echo: gray cells copy the color of the cell the cursor just
// left. The level is won when no gray cell remains.

func (g *Game) setupEcho(w, h int) {
	g.grid = model.NewGrid(w, h, Black)
	g.cursor = model.Pos{}

	painted := map[model.Pos]bool{}
	numSources := randRange(g.rng, 8, 12)
	for i := 0; i < numSources; i++ {
		p := model.Pos{X: g.rng.Intn(w), Y: g.rng.Intn(h)}
		if !painted[p] {
			g.grid.Set(p.X, p.Y, sourceColors[g.rng.Intn(len(sourceColors))])
			painted[p] = true
		}
	}

	numTargets := randRange(g.rng, 6, 10)
	for placed, attempts := 0, 0; placed < numTargets && attempts < 200; attempts++ {
		p := model.Pos{X: g.rng.Intn(w), Y: g.rng.Intn(h)}
		if !painted[p] && p != (model.Pos{}) {
			g.grid.Set(p.X, p.Y, LightGray)
			painted[p] = true
			placed++
		}
	}

	g.prevColor = Black
}

func (g *Game) stepEcho(d model.Pos) bool {
	nx := clamp(g.cursor.X+d.X, 0, g.grid.W-1)
	ny := clamp(g.cursor.Y+d.Y, 0, g.grid.H-1)
	if nx == g.cursor.X && ny == g.cursor.Y {
		return false
	}
	g.save()

	leaving := g.grid.At(g.cursor.X, g.cursor.Y)
	if leaving != LightGray && leaving != Black {
		g.prevColor = leaving
	}
	g.cursor = model.Pos{X: nx, Y: ny}

	if g.grid.At(nx, ny) == LightGray && g.prevColor != Black {
		g.grid.Set(nx, ny, g.prevColor)
	}

	if g.grid.Count(LightGray) == 0 {
		g.advance()
	}
	return true
}
