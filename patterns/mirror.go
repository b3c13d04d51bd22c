package patterns

import (
	log "github.com/sirupsen/logrus"

	"github.com/zelenka/puzzlebox/model"
	"github.com/zelenka/puzzlebox/reach"
)

// Mirror Walk: two agents move at once, the second in the opposite
// direction; an agent whose move is blocked is pinned while the other
// still moves. Both must stand on the red target together.
//
// Levels come from a hand-authored table. The table is validated once
// at load time with the same joint-state search procedural puzzles
// would use; an unsolvable entry is a data-authoring defect and stops
// the program.

type mirrorPuzzle struct {
	main   model.Pos
	mirror model.Pos
	target model.Pos
	walls  []model.Pos
}

var mirrorPuzzles = []mirrorPuzzle{
	// Symmetric tutorial: a walled channel, three moves down.
	{
		main:   model.Pos{X: 3, Y: 0},
		mirror: model.Pos{X: 3, Y: 6},
		target: model.Pos{X: 3, Y: 3},
		walls: []model.Pos{
			{2, 1}, {4, 1}, {2, 2}, {4, 2}, {2, 4}, {4, 4}, {2, 5}, {4, 5},
		},
	},
	// Symmetric arena, four moves.
	{
		main:   model.Pos{X: 1, Y: 1},
		mirror: model.Pos{X: 5, Y: 5},
		target: model.Pos{X: 3, Y: 3},
		walls: []model.Pos{
			{0, 0}, {2, 0}, {0, 2}, {3, 1}, {3, 5}, {6, 6}, {4, 6}, {6, 4}, {0, 4}, {6, 2},
		},
	},
	// Asymmetric starts; unsolvable without wall pinning.
	{
		main:   model.Pos{X: 2, Y: 1},
		mirror: model.Pos{X: 6, Y: 5},
		target: model.Pos{X: 4, Y: 2},
		walls: []model.Pos{
			{0, 0}, {5, 0}, {0, 4}, {3, 1}, {6, 2}, {3, 3}, {4, 4}, {5, 4},
			{0, 6}, {3, 6}, {5, 6}, {6, 6}, {0, 7}, {6, 7},
		},
	},
	// The mirror agent gets pinned twice on the right edge.
	{
		main:   model.Pos{X: 1, Y: 1},
		mirror: model.Pos{X: 5, Y: 5},
		target: model.Pos{X: 4, Y: 3},
		walls: []model.Pos{
			{0, 0}, {1, 0}, {3, 1}, {4, 1}, {4, 4}, {6, 2}, {7, 2}, {6, 3},
			{6, 4}, {7, 4}, {1, 6}, {2, 6}, {0, 7},
		},
	},
	// Heavily walled fortress with repeated pinning on both agents.
	{
		main:   model.Pos{X: 2, Y: 0},
		mirror: model.Pos{X: 6, Y: 5},
		target: model.Pos{X: 2, Y: 4},
		walls: []model.Pos{
			{1, 1}, {1, 6}, {1, 7}, {3, 3}, {3, 4}, {4, 0}, {4, 3}, {5, 1},
			{5, 4}, {5, 7}, {6, 0}, {6, 2}, {6, 4}, {6, 6}, {7, 5}, {7, 7},
		},
	},
}

func init() {
	const w, h = 8, 8
	for i, p := range mirrorPuzzles {
		walls := make(map[model.Pos]bool, len(p.walls))
		for _, wp := range p.walls {
			walls[wp] = true
		}
		if !reach.Joint(w, h, walls, p.main, p.mirror, p.target) {
			log.Panicf("patterns: authored mirror puzzle %d is not solvable", i)
		}
	}
}

func (g *Game) setupMirror(w, h int) {
	p := mirrorPuzzles[g.rng.Intn(len(mirrorPuzzles))]

	g.grid = model.NewGrid(w, h, Black)
	for _, wp := range p.walls {
		if g.grid.InBounds(wp.X, wp.Y) {
			g.grid.Set(wp.X, wp.Y, DarkGray)
			g.walls[wp] = true
		}
	}

	g.cursor = p.main
	g.mirror = p.mirror
	g.target = p.target
	g.grid.Set(p.target.X, p.target.Y, Red)
}

func (g *Game) stepMirror(d model.Pos) bool {
	mn := model.Pos{X: g.cursor.X + d.X, Y: g.cursor.Y + d.Y}
	mr := model.Pos{X: g.mirror.X - d.X, Y: g.mirror.Y - d.Y}

	mainMoves := g.grid.InBounds(mn.X, mn.Y) && !g.walls[mn]
	mirrorMoves := g.grid.InBounds(mr.X, mr.Y) && !g.walls[mr]
	if !mainMoves && !mirrorMoves {
		return false
	}
	g.save()
	if mainMoves {
		g.cursor = mn
	}
	if mirrorMoves {
		g.mirror = mr
	}

	if g.cursor == g.target && g.mirror == g.target {
		g.advance()
	}
	return true
}
