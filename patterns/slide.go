package patterns

import (
	"github.com/zelenka/puzzlebox/model"
	"github.com/zelenka/puzzlebox/reach"
)

// Ice Slide: a move slides the cursor until a wall or the boundary
// stops it, collecting every gem passed on the way. Gem placement is
// accepted only when the slide oracle reports the gem collectible from
// the start cell.

func (g *Game) setupSlide(w, h int) {
	g.grid = model.NewGrid(w, h, Black)
	g.cursor = model.Pos{}
	used := map[model.Pos]bool{{}: true}

	// Pillars on a loose lattice guarantee stopping points across the
	// board.
	for py := 2; py < h-1; py += 3 {
		for px := 2; px < w-1; px += 3 {
			p := model.Pos{X: px, Y: py}
			if !used[p] && g.rng.Float64() < 0.7 {
				g.grid.Set(px, py, DarkGray)
				g.walls[p] = true
				used[p] = true
			}
		}
	}

	extra := randRange(g.rng, 2, 4)
	for i := 0; i < extra; i++ {
		for attempts := 0; attempts < 50; attempts++ {
			p := model.Pos{X: randRange(g.rng, 1, w-2), Y: randRange(g.rng, 1, h-2)}
			if !used[p] {
				g.grid.Set(p.X, p.Y, DarkGray)
				g.walls[p] = true
				used[p] = true
				break
			}
		}
	}

	placed := 0
	for attempts := 0; placed < 3 && attempts < 300; attempts++ {
		p := model.Pos{X: g.rng.Intn(w), Y: g.rng.Intn(h)}
		if used[p] {
			continue
		}
		if reach.SlideCollectible(w, h, model.Pos{}, p, g.blocked) {
			g.grid.Set(p.X, p.Y, Green)
			used[p] = true
			placed++
		}
	}
	g.gemsLeft = placed
}

func (g *Game) stepSlide(d model.Pos) bool {
	g.save()
	cur := g.cursor
	collected := 0
	for {
		next := model.Pos{X: cur.X + d.X, Y: cur.Y + d.Y}
		if !g.grid.InBounds(next.X, next.Y) || g.walls[next] {
			break
		}
		if g.grid.At(next.X, next.Y) == Green {
			g.grid.Set(next.X, next.Y, Black)
			collected++
		}
		cur = next
	}
	if cur == g.cursor && collected == 0 {
		g.history = g.history[:len(g.history)-1]
		return false
	}
	g.cursor = cur
	g.gemsLeft -= collected

	if g.gemsLeft <= 0 {
		g.advance()
	}
	return true
}
