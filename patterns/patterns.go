// Package patterns is a multi-level grid game where every level hides a
// different movement rule: color echo, flood walking, ice sliding, maze
// gem collection, teleport mazes, mirrored two-agent movement and block
// pushing. Generated levels verify every critical placement against the
// matching reachability search before play starts.
package patterns

import (
	"math/rand"
	"time"

	"github.com/zelenka/puzzlebox/model"
)

// Cell labels (shared palette indices with the renderer).
const (
	Black     = 0
	DarkGray  = 1 // walls
	Red       = 2
	Green     = 3
	Blue      = 4
	Yellow    = 5
	Magenta   = 6
	Orange    = 7
	Cyan      = 8
	Brown     = 9
	Teal      = 13
	LightGray = 15 // unpainted echo targets
)

// sourceColors are the labels echo sources are drawn from.
var sourceColors = []int{Red, Green, Blue, Yellow, Magenta, Orange}

const (
	levelEcho = iota
	levelFlood
	levelSlide
	levelGems
	levelTeleport
	levelMirror
	levelSokoban
	levelCount
)

func levelSize(level int) (int, int) {
	if level == levelSokoban {
		return 10, 10
	}
	return 8, 8
}

// Game is one playable run through the seven levels.
type Game struct {
	seed int64
	rng  *rand.Rand

	level  int
	status model.Status
	grid   *model.Grid
	cursor model.Pos

	// per-level auxiliary state; regenerated on level entry
	prevColor    int
	gemsLeft     int
	walls        map[model.Pos]bool
	warps        map[model.Pos]model.Pos
	exit         model.Pos
	mirror       model.Pos
	target       model.Pos
	toggleA      int
	toggleB      int
	blockColors  map[int]bool
	targetColors map[int]bool
	targets      map[model.Pos]int // target cell -> expected block color

	history []snapshot
}

// snapshot is one undo step: the full mutable state of the level.
// Walls, warps and target tables are immutable per level and not saved.
type snapshot struct {
	grid      *model.Grid
	cursor    model.Pos
	mirror    model.Pos
	prevColor int
	gemsLeft  int
}

func New(seed int64) *Game {
	g := &Game{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed ^ time.Now().UnixNano())),
	}
	g.enterLevel(0)
	return g
}

func (g *Game) enterLevel(level int) {
	w, h := levelSize(level)
	g.level = level
	g.status = model.Playing
	g.history = nil
	g.prevColor = Black
	g.gemsLeft = 0
	g.walls = make(map[model.Pos]bool)
	g.warps = make(map[model.Pos]model.Pos)
	g.blockColors = nil
	g.targetColors = nil
	g.targets = nil

	switch level {
	case levelEcho:
		g.setupEcho(w, h)
	case levelFlood:
		g.setupFlood(w, h)
	case levelSlide:
		g.setupSlide(w, h)
	case levelGems:
		g.setupGems(w, h)
	case levelTeleport:
		g.setupTeleport(w, h)
	case levelMirror:
		g.setupMirror(w, h)
	case levelSokoban:
		g.setupSokoban(w, h)
	}
}

func (g *Game) Status() model.Status { return g.status }

func (g *Game) Snapshot() model.Snapshot {
	snap := model.Snapshot{
		Grid:   g.grid.Clone(),
		Cursor: g.cursor,
		Level:  g.level,
		Steps:  -1,
	}
	if g.level == levelMirror {
		m := g.mirror
		snap.Mirror = &m
	}
	return snap
}

// Step applies one action. Only directions and undo do anything; every
// invalid or blocked move is a silent no-op.
func (g *Game) Step(a model.Action) bool {
	if g.status != model.Playing {
		return false
	}
	if a == model.ActionUndo {
		return g.undo()
	}
	d, ok := a.Dir()
	if !ok {
		return false
	}

	switch g.level {
	case levelEcho:
		return g.stepEcho(d)
	case levelFlood:
		return g.stepFlood(d)
	case levelSlide:
		return g.stepSlide(d)
	case levelGems:
		return g.stepGems(d)
	case levelTeleport:
		return g.stepTeleport(d)
	case levelMirror:
		return g.stepMirror(d)
	case levelSokoban:
		return g.stepSokoban(d)
	}
	return false
}

// save pushes the current state onto the undo history. Called just
// before a state-changing move is committed.
func (g *Game) save() {
	g.history = append(g.history, snapshot{
		grid:      g.grid.Clone(),
		cursor:    g.cursor,
		mirror:    g.mirror,
		prevColor: g.prevColor,
		gemsLeft:  g.gemsLeft,
	})
}

func (g *Game) undo() bool {
	if len(g.history) == 0 {
		return false
	}
	s := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.grid = s.grid
	g.cursor = s.cursor
	g.mirror = s.mirror
	g.prevColor = s.prevColor
	g.gemsLeft = s.gemsLeft
	return true
}

func (g *Game) advance() {
	if g.level+1 >= levelCount {
		g.status = model.Won
		return
	}
	g.enterLevel(g.level + 1)
}

func (g *Game) blocked(p model.Pos) bool { return g.walls[p] }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// randRange returns a uniform value in [lo, hi], both ends included.
func randRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
