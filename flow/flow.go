// Package flow implements the path-connection puzzle: every color's two
// endpoints must be joined by a drawn path and the paths together must
// cover the whole board. Paths may cross only on bridge cells.
package flow

import (
	"github.com/zelenka/puzzlebox/model"
	"github.com/zelenka/puzzlebox/reach"
)

type Game struct {
	level    int
	def      LevelConfig
	puzzle   Puzzle
	grid     *model.Grid
	cursor   model.Pos
	selected int
	paths    map[int][]model.Pos
	steps    int
	status   model.Status
}

func New(seed int64) *Game {
	g := &Game{status: model.Playing}
	g.enterLevel(0)
	return g
}

func (g *Game) enterLevel(level int) {
	g.level = level
	g.def = Levels[level]
	g.puzzle = puzzles[level]

	g.grid = model.NewGrid(g.def.W, g.def.H, 0)
	g.paths = make(map[int][]model.Pos, len(g.puzzle.Endpoints))
	for cid, eps := range g.puzzle.Endpoints {
		g.grid.Set(eps[0].X, eps[0].Y, cid)
		g.grid.Set(eps[1].X, eps[1].Y, cid)
		g.paths[cid] = nil
	}

	g.selected = 0
	g.cursor = g.puzzle.Endpoints[1][0]
	g.steps = 0
}

func (g *Game) Status() model.Status { return g.status }

func (g *Game) Snapshot() model.Snapshot {
	bridges := make([]model.Pos, 0, len(g.puzzle.Bridges))
	for p := range g.puzzle.Bridges {
		bridges = append(bridges, p)
	}
	ends := make(map[int][]model.Pos, len(g.puzzle.Endpoints))
	for cid, eps := range g.puzzle.Endpoints {
		ends[cid] = []model.Pos{eps[0], eps[1]}
	}
	return model.Snapshot{
		Grid:     g.grid.Clone(),
		Cursor:   g.cursor,
		Selected: g.selected,
		Bridges:  bridges,
		Ends:     ends,
		Level:    g.level,
		Steps:    g.def.MaxSteps - g.steps,
	}
}

// Step consumes one unit of the step budget whether or not the action
// has any effect.
func (g *Game) Step(a model.Action) bool {
	if g.status != model.Playing {
		return false
	}
	g.steps++

	changed := false
	if d, ok := a.Dir(); ok {
		if g.selected > 0 {
			changed = g.extendPath(d)
		} else {
			changed = g.moveCursor(d)
		}
	} else if a == model.ActionSelect {
		changed = g.handleSelect()
	} else if a == model.ActionUndo {
		changed = g.handleUndo()
	}

	if g.won() {
		if g.level+1 < len(Levels) {
			g.enterLevel(g.level + 1)
		} else {
			g.status = model.Won
		}
		return true
	}
	if g.steps >= g.def.MaxSteps {
		g.status = model.Lost
		return true
	}
	return changed
}

func (g *Game) moveCursor(d model.Pos) bool {
	n := model.Pos{X: g.cursor.X + d.X, Y: g.cursor.Y + d.Y}
	if !g.grid.InBounds(n.X, n.Y) {
		return false
	}
	g.cursor = n
	return true
}

func (g *Game) handleSelect() bool {
	if g.selected > 0 {
		g.selected = 0
		return true
	}
	for cid, eps := range g.puzzle.Endpoints {
		if g.cursor == eps[0] || g.cursor == eps[1] {
			g.clearPath(cid)
			g.selected = cid
			g.paths[cid] = []model.Pos{g.cursor}
			return true
		}
	}
	return false
}

func (g *Game) handleUndo() bool {
	if g.selected <= 0 {
		return false
	}
	path := g.paths[g.selected]
	if len(path) <= 1 {
		return false
	}
	g.undoLastCell(g.selected)
	if path := g.paths[g.selected]; len(path) > 0 {
		g.cursor = path[len(path)-1]
	}
	return true
}

func (g *Game) extendPath(d model.Pos) bool {
	n := model.Pos{X: g.cursor.X + d.X, Y: g.cursor.Y + d.Y}
	if !g.grid.InBounds(n.X, n.Y) {
		return false
	}
	color := g.selected
	path := g.paths[color]
	if len(path) == 0 {
		return false
	}

	// Stepping back onto the previous cell undoes it.
	if len(path) >= 2 && n == path[len(path)-2] {
		g.undoLastCell(color)
		g.cursor = n
		return true
	}

	if g.onPath(color, n) {
		return false
	}

	eps := g.puzzle.Endpoints[color]
	other := eps[1]
	if path[0] == eps[1] {
		other = eps[0]
	}

	// Destination endpoint completes the color.
	if n == other {
		g.paths[color] = append(path, n)
		g.cursor = n
		g.selected = 0
		return true
	}

	if g.grid.At(n.X, n.Y) == 0 {
		g.paths[color] = append(path, n)
		g.grid.Set(n.X, n.Y, color)
		g.cursor = n
		return true
	}

	// Bridges admit a second color.
	if g.puzzle.Bridges[n] && g.grid.At(n.X, n.Y) != color {
		g.paths[color] = append(path, n)
		g.cursor = n
		return true
	}
	return false
}

func (g *Game) undoLastCell(color int) {
	path := g.paths[color]
	if len(path) == 0 {
		return
	}
	removed := path[len(path)-1]
	g.paths[color] = path[:len(path)-1]

	eps := g.puzzle.Endpoints[color]
	if removed == eps[0] || removed == eps[1] {
		return
	}
	if g.grid.At(removed.X, removed.Y) == color {
		g.grid.Set(removed.X, removed.Y, g.otherOccupant(removed, color))
	}
}

func (g *Game) clearPath(color int) {
	eps := g.puzzle.Endpoints[color]
	for _, p := range g.paths[color] {
		if p == eps[0] || p == eps[1] {
			continue
		}
		if g.grid.At(p.X, p.Y) == color {
			g.grid.Set(p.X, p.Y, g.otherOccupant(p, color))
		}
	}
	g.paths[color] = nil
}

func (g *Game) onPath(color int, p model.Pos) bool {
	for _, q := range g.paths[color] {
		if q == p {
			return true
		}
	}
	return false
}

// otherOccupant reports the color still resident on p after exclude is
// lifted, which is only ever non-zero on a bridge.
func (g *Game) otherOccupant(p model.Pos, exclude int) int {
	for cid, path := range g.paths {
		if cid == exclude {
			continue
		}
		for _, q := range path {
			if q == p {
				return cid
			}
		}
	}
	return 0
}

func (g *Game) won() bool {
	covered := make(map[model.Pos]bool, g.def.W*g.def.H)
	for _, eps := range g.puzzle.Endpoints {
		covered[eps[0]] = true
		covered[eps[1]] = true
	}
	for _, path := range g.paths {
		for _, p := range path {
			covered[p] = true
		}
	}
	if len(covered) < g.def.W*g.def.H {
		return false
	}
	for cid, eps := range g.puzzle.Endpoints {
		cells := make(map[model.Pos]bool, len(g.paths[cid])+2)
		for _, p := range g.paths[cid] {
			cells[p] = true
		}
		cells[eps[0]] = true
		cells[eps[1]] = true
		if !reach.Connected(cells, eps[0], eps[1]) {
			return false
		}
	}
	return true
}
