package alchemy

import (
	"math/rand"
	"time"

	"github.com/zelenka/puzzlebox/model"
)

// Game is one playable run through the alchemy levels.
type Game struct {
	seed     int64
	genCount int64

	level   int
	def     LevelDef
	grid    *model.Grid
	cursor  model.Pos
	history []*model.Grid
	status  model.Status
}

// New starts a run at level 0 with a fresh instance.
func New(seed int64) *Game {
	g := &Game{seed: seed}
	g.enterLevel(0)
	return g
}

// enterLevel generates a new instance with fresh entropy, so replaying
// a level after a reset never serves the same board twice.
func (g *Game) enterLevel(level int) {
	g.genCount++
	rng := rand.New(rand.NewSource(g.seed ^ int64(level)<<16 ^ g.genCount<<32 ^ time.Now().UnixNano()))

	g.level = level
	g.def = Levels[level]
	g.grid, _ = Generate(rng, level)
	g.cursor = model.Pos{X: g.def.W / 2, Y: g.def.H / 2}
	g.history = nil
	g.status = model.Playing
}

func (g *Game) Status() model.Status { return g.status }

func (g *Game) Snapshot() model.Snapshot {
	return model.Snapshot{
		Grid:   g.grid.Clone(),
		Cursor: g.cursor,
		Level:  g.level,
		Steps:  -1,
	}
}

// Step applies one action. Invalid input is a silent no-op.
func (g *Game) Step(a model.Action) bool {
	if g.status != model.Playing {
		return false
	}

	if d, ok := a.Dir(); ok {
		nx := clamp(g.cursor.X+d.X, 0, g.def.W-1)
		ny := clamp(g.cursor.Y+d.Y, 0, g.def.H-1)
		if nx == g.cursor.X && ny == g.cursor.Y {
			return false
		}
		g.cursor = model.Pos{X: nx, Y: ny}
		return true
	}

	switch a {
	case model.ActionSelect:
		g.history = append(g.history, g.grid)
		g.grid = model.ApplyClick(g.grid, g.cursor.X, g.cursor.Y, ColorCycle[:g.def.Colors])
		if g.grid.Uniform(TargetColor) {
			g.advance()
		}
		return true
	case model.ActionUndo:
		if len(g.history) == 0 {
			return false
		}
		g.grid = g.history[len(g.history)-1]
		g.history = g.history[:len(g.history)-1]
		return true
	}
	return false
}

func (g *Game) advance() {
	if g.level+1 >= len(Levels) {
		g.status = model.Won
		return
	}
	g.enterLevel(g.level + 1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
