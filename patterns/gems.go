package patterns

import (
	"github.com/zelenka/puzzlebox/model"
	"github.com/zelenka/puzzlebox/reach"
)

// Gem Collector: plain maze walking. Gems only go onto cells the walk
// oracle reports reachable from the start, so the level can always be
// finished.

func (g *Game) setupGems(w, h int) {
	g.grid = model.NewGrid(w, h, Black)
	g.cursor = model.Pos{}
	used := map[model.Pos]bool{{}: true}

	g.placeBars(w, h, used, true)
	g.placeBars(w, h, used, false)

	reachable := reach.Walk(w, h, model.Pos{}, g.blocked)

	candidates := make([]model.Pos, 0)
	for p := range reachable {
		if !used[p] && g.grid.At(p.X, p.Y) == Black {
			candidates = append(candidates, p)
		}
	}
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	numGems := randRange(g.rng, 4, 6)
	placed := 0
	for _, p := range candidates {
		if placed >= numGems {
			break
		}
		g.grid.Set(p.X, p.Y, Yellow)
		used[p] = true
		placed++
	}
	g.gemsLeft = placed
}

// placeBars drops 3-5 short wall segments that carve corridors without
// sealing areas off.
func (g *Game) placeBars(w, h int, used map[model.Pos]bool, horizontal bool) {
	numBars := randRange(g.rng, 3, 5)
	for i := 0; i < numBars; i++ {
		for attempts := 0; attempts < 50; attempts++ {
			barLen := randRange(g.rng, 2, 3)
			var cells []model.Pos
			if horizontal {
				bx := randRange(g.rng, 1, w-3)
				by := randRange(g.rng, 1, h-2)
				for j := 0; j < barLen; j++ {
					cells = append(cells, model.Pos{X: bx + j, Y: by})
				}
			} else {
				bx := randRange(g.rng, 1, w-2)
				by := randRange(g.rng, 1, h-3)
				for j := 0; j < barLen; j++ {
					cells = append(cells, model.Pos{X: bx, Y: by + j})
				}
			}
			if barFits(g.grid, cells, used) {
				for _, c := range cells {
					g.grid.Set(c.X, c.Y, DarkGray)
					g.walls[c] = true
					used[c] = true
				}
				break
			}
		}
	}
}

func barFits(grid *model.Grid, cells []model.Pos, used map[model.Pos]bool) bool {
	for _, c := range cells {
		if !grid.InBounds(c.X, c.Y) || used[c] {
			return false
		}
	}
	return true
}

func (g *Game) stepGems(d model.Pos) bool {
	next := model.Pos{X: g.cursor.X + d.X, Y: g.cursor.Y + d.Y}
	if !g.grid.InBounds(next.X, next.Y) || g.walls[next] {
		return false
	}
	g.save()
	g.cursor = next

	if g.grid.At(next.X, next.Y) == Yellow {
		g.grid.Set(next.X, next.Y, Black)
		g.gemsLeft--
	}

	if g.gemsLeft <= 0 {
		g.advance()
	}
	return true
}
