package patterns

import "github.com/zelenka/puzzlebox/model"

// Sokoban: push-only blocks, one per matching target. Each block is
// placed a few cells away from its target with a clear straight push
// lane so the level stays finishable.

func (g *Game) setupSokoban(w, h int) {
	g.grid = model.NewGrid(w, h, Black)
	used := map[model.Pos]bool{}

	// Gappy border walls for texture without sealing the board.
	for x := 0; x < w; x++ {
		g.maybeWall(model.Pos{X: x, Y: 0}, used)
		g.maybeWall(model.Pos{X: x, Y: h - 1}, used)
	}
	for y := 0; y < h; y++ {
		g.maybeWall(model.Pos{X: 0, Y: y}, used)
		g.maybeWall(model.Pos{X: w - 1, Y: y}, used)
	}

	numWalls := randRange(g.rng, 6, 10)
	for i := 0; i < numWalls; i++ {
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

	start := model.Pos{X: 1, Y: 1}
	g.grid.Set(start.X, start.Y, Black)
	delete(g.walls, start)
	used[start] = true
	g.cursor = start

	pairs := [2][2]int{{Red, Brown}, {Blue, Teal}}
	g.blockColors = map[int]bool{}
	g.targetColors = map[int]bool{}
	g.targets = map[model.Pos]int{}

	for _, pair := range pairs {
		blockColor, targetColor := pair[0], pair[1]
		g.blockColors[blockColor] = true
		g.targetColors[targetColor] = true

		target := model.Pos{}
		for attempts := 0; attempts < 200; attempts++ {
			target = model.Pos{X: randRange(g.rng, 2, w-3), Y: randRange(g.rng, 2, h-3)}
			if !used[target] {
				break
			}
		}
		g.grid.Set(target.X, target.Y, targetColor)
		g.targets[target] = blockColor
		used[target] = true

		g.placeBlock(w, h, target, blockColor, used)
	}
}

func (g *Game) maybeWall(p model.Pos, used map[model.Pos]bool) {
	if g.rng.Float64() < 0.4 {
		g.grid.Set(p.X, p.Y, DarkGray)
		g.walls[p] = true
		used[p] = true
	}
}

// placeBlock puts the block a straight, unobstructed 2-4 cells from its
// target so a push lane exists, falling back to any free interior cell.
func (g *Game) placeBlock(w, h int, target model.Pos, blockColor int, used map[model.Pos]bool) {
	dirs := make([]model.Pos, len(model.Dirs))
	copy(dirs, model.Dirs[:])
	g.rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

	for _, d := range dirs {
		dist := randRange(g.rng, 2, 4)
		b := model.Pos{X: target.X + d.X*dist, Y: target.Y + d.Y*dist}
		if !g.grid.InBounds(b.X, b.Y) || used[b] {
			continue
		}
		clear := true
		for step := 1; step < dist; step++ {
			p := model.Pos{X: target.X + d.X*step, Y: target.Y + d.Y*step}
			if !g.grid.InBounds(p.X, p.Y) || g.walls[p] {
				clear = false
				break
			}
		}
		if clear {
			g.grid.Set(b.X, b.Y, blockColor)
			used[b] = true
			return
		}
	}

	for attempts := 0; attempts < 100; attempts++ {
		b := model.Pos{X: randRange(g.rng, 1, w-2), Y: randRange(g.rng, 1, h-2)}
		if !used[b] {
			g.grid.Set(b.X, b.Y, blockColor)
			used[b] = true
			return
		}
	}
}

func (g *Game) stepSokoban(d model.Pos) bool {
	next := model.Pos{X: g.cursor.X + d.X, Y: g.cursor.Y + d.Y}
	if !g.grid.InBounds(next.X, next.Y) || g.walls[next] {
		return false
	}

	cell := g.grid.At(next.X, next.Y)

	if g.blockColors[cell] {
		push := model.Pos{X: next.X + d.X, Y: next.Y + d.Y}
		if !g.grid.InBounds(push.X, push.Y) || g.walls[push] {
			return false
		}
		dest := g.grid.At(push.X, push.Y)
		if g.blockColors[dest] || dest == DarkGray {
			return false
		}
		g.save()
		// Restore the target marker when the block leaves it.
		if _, isTarget := g.targets[next]; isTarget {
			g.grid.Set(next.X, next.Y, targetColorAt(g.targets[next], g.targetColors))
		} else {
			g.grid.Set(next.X, next.Y, Black)
		}
		g.grid.Set(push.X, push.Y, cell)
		g.cursor = next
	} else if cell == Black || g.targetColors[cell] {
		g.save()
		g.cursor = next
	} else {
		return false
	}

	if g.sokobanSolved() {
		g.advance()
	}
	return true
}

// targetColorAt maps a block color back to its marker color.
func targetColorAt(blockColor int, targetColors map[int]bool) int {
	switch blockColor {
	case Red:
		return Brown
	case Blue:
		return Teal
	}
	for c := range targetColors {
		return c
	}
	return Black
}

func (g *Game) sokobanSolved() bool {
	for t, blockColor := range g.targets {
		if g.grid.At(t.X, t.Y) != blockColor {
			return false
		}
	}
	return true
}
