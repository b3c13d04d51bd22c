package patterns

import (
	log "github.com/sirupsen/logrus"

	"github.com/zelenka/puzzlebox/model"
	"github.com/zelenka/puzzlebox/reach"
)

// Teleport Maze: reach the green exit; stepping onto a warp cell moves
// the cursor to its paired cell. Layouts are regenerated until the
// teleport-walk oracle confirms the exit reachable, with a trivial
// open-board fallback when the attempt budget runs out.

const teleportAttempts = 50

func (g *Game) setupTeleport(w, h int) {
	for attempt := 0; attempt < teleportAttempts; attempt++ {
		if g.tryTeleportLayout(w, h) {
			return
		}
	}

	log.Warnf("patterns: %d teleport layouts rejected, serving open fallback", teleportAttempts)
	g.grid = model.NewGrid(w, h, Black)
	g.cursor = model.Pos{}
	g.walls = make(map[model.Pos]bool)
	g.warps = make(map[model.Pos]model.Pos)
	g.exit = model.Pos{X: w - 1, Y: h - 1}
	g.grid.Set(g.exit.X, g.exit.Y, Green)
}

// tryTeleportLayout is one generation transaction; false means the
// candidate was unsolvable and has been discarded.
func (g *Game) tryTeleportLayout(w, h int) bool {
	g.grid = model.NewGrid(w, h, Black)
	g.cursor = model.Pos{}
	g.walls = make(map[model.Pos]bool)
	g.warps = make(map[model.Pos]model.Pos)
	used := map[model.Pos]bool{{}: true}

	numH := randRange(g.rng, 2, 4)
	for i := 0; i < numH; i++ {
		g.placeMazeBar(w, h, used, true)
	}
	numV := randRange(g.rng, 2, 3)
	for i := 0; i < numV; i++ {
		g.placeMazeBar(w, h, used, false)
	}

	// Exit somewhere in the bottom-right quadrant.
	exit := model.Pos{X: w - 1, Y: h - 1}
	for attempts := 0; attempts < 100; attempts++ {
		p := model.Pos{X: randRange(g.rng, w/2, w-1), Y: randRange(g.rng, h/2, h-1)}
		if !used[p] {
			exit = p
			break
		}
	}
	g.grid.Set(exit.X, exit.Y, Green)
	used[exit] = true
	g.exit = exit

	for _, color := range []int{Red, Blue} {
		var pair []model.Pos
		for i := 0; i < 2; i++ {
			for attempts := 0; attempts < 100; attempts++ {
				p := model.Pos{X: g.rng.Intn(w), Y: g.rng.Intn(h)}
				if !used[p] {
					g.grid.Set(p.X, p.Y, color)
					used[p] = true
					pair = append(pair, p)
					break
				}
			}
		}
		if len(pair) == 2 {
			g.warps[pair[0]] = pair[1]
			g.warps[pair[1]] = pair[0]
		}
	}

	return reach.TeleportPath(w, h, model.Pos{}, exit, g.blocked, g.warps)
}

// placeMazeBar drops one wall segment of length 2-4, clipped to the
// board, requiring at least 2 free cells.
func (g *Game) placeMazeBar(w, h int, used map[model.Pos]bool, horizontal bool) {
	for attempts := 0; attempts < 50; attempts++ {
		barLen := randRange(g.rng, 2, 4)
		var cells []model.Pos
		if horizontal {
			bx := randRange(g.rng, 0, w-2)
			by := randRange(g.rng, 1, h-2)
			for j := 0; j < barLen && bx+j < w; j++ {
				cells = append(cells, model.Pos{X: bx + j, Y: by})
			}
		} else {
			bx := randRange(g.rng, 1, w-2)
			by := randRange(g.rng, 0, h-2)
			for j := 0; j < barLen && by+j < h; j++ {
				cells = append(cells, model.Pos{X: bx, Y: by + j})
			}
		}
		if len(cells) < 2 {
			continue
		}
		free := true
		for _, c := range cells {
			if used[c] {
				free = false
				break
			}
		}
		if !free {
			continue
		}
		for _, c := range cells {
			g.grid.Set(c.X, c.Y, DarkGray)
			g.walls[c] = true
			used[c] = true
		}
		return
	}
}

func (g *Game) stepTeleport(d model.Pos) bool {
	next := model.Pos{X: g.cursor.X + d.X, Y: g.cursor.Y + d.Y}
	if !g.grid.InBounds(next.X, next.Y) || g.walls[next] {
		return false
	}
	g.save()
	g.cursor = next
	if dest, ok := g.warps[next]; ok {
		g.cursor = dest
	}

	if g.cursor == g.exit {
		g.advance()
	}
	return true
}
