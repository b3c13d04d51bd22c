package alchemy

import (
	"math/rand"

	log "github.com/sirupsen/logrus"

	"github.com/zelenka/puzzlebox/model"
	"github.com/zelenka/puzzlebox/scramble"
)

const (
	// maxAttempts bounds the scramble-verify retry loop.
	maxAttempts = 500
	// solverMaxDim and solverMaxColors gate the exhaustive shortener:
	// the full configuration space is only searched for tiny boards.
	solverMaxDim    = 4
	solverMaxColors = 2
	solverMaxDepth  = 8
)

// Generate builds a fresh scrambled grid for the given level together
// with a verified solution. It always terminates: after maxAttempts
// failed candidates it degrades to a deterministic single-click
// fallback that is solvable by construction.
func Generate(rng *rand.Rand, level int) (*model.Grid, Solution) {
	def := Levels[level]
	palette := ColorCycle[:def.Colors]

	minClicks := level + 2
	if minClicks < 2 {
		minClicks = 2
	}
	maxClicks := minClicks + 3

	for attempt := 0; attempt < maxAttempts; attempt++ {
		count := minClicks + rng.Intn(maxClicks-minClicks+1)
		strategy := scramble.ForLevel(rng, level)
		grid, solution, ok := tryGenerate(rng, def, palette, strategy, count)
		if !ok {
			continue
		}
		if fitsSolver(def) {
			if shorter := SolveBFS(grid, TargetColor, palette, solverMaxDepth); shorter != nil && len(shorter) < len(solution) {
				solution = shorter
			}
		}
		return grid, solution
	}

	log.Warnf("alchemy: %d generation attempts exhausted for level %d, degrading to single-click fallback", maxAttempts, level)
	return fallback(def, palette)
}

// tryGenerate is one transaction of the retry loop: scramble a solved
// grid, derive the undo-solution, verify by replay. ok=false means the
// candidate was rejected and the caller should try again.
func tryGenerate(rng *rand.Rand, def LevelDef, palette []int, strategy scramble.Strategy, count int) (*model.Grid, Solution, bool) {
	grid := model.NewGrid(def.W, def.H, TargetColor)

	clicks := strategy.Positions(rng, def.W, def.H, count)

	// An immediate repeat cancels itself on a two-color cycle, so it is
	// dropped no matter which strategy produced it.
	filtered := make([]model.Pos, 0, len(clicks))
	prev := model.Pos{X: -1, Y: -1}
	for _, c := range clicks {
		if c == prev {
			continue
		}
		grid = model.ApplyClick(grid, c.X, c.Y, palette)
		filtered = append(filtered, c)
		prev = c
	}

	if grid.Uniform(TargetColor) {
		return nil, nil, false
	}

	// Undoing one scramble click takes len(palette)-1 repeats of the
	// same click; undo in reverse scramble order.
	solution := make(Solution, 0, len(filtered)*(len(palette)-1))
	for i := len(filtered) - 1; i >= 0; i-- {
		for r := 0; r < len(palette)-1; r++ {
			solution = append(solution, filtered[i])
		}
	}

	// Construction and un-scrambling are symmetric but not proven equal;
	// a solution is never trusted without replay.
	if !Verify(grid, solution, TargetColor, palette) {
		return nil, nil, false
	}

	return grid, solution, true
}

// Verify replays solution on a copy of grid and reports whether the
// final board is uniformly the target color.
func Verify(grid *model.Grid, solution Solution, target int, palette []int) bool {
	g := grid
	for _, c := range solution {
		g = model.ApplyClick(g, c.X, c.Y, palette)
	}
	return g.Uniform(target)
}

// SolveBFS searches the full configuration space for a shortest click
// sequence, bounded by maxDepth so the queue cannot grow without limit.
// It returns nil when no solution exists within the bound.
func SolveBFS(grid *model.Grid, target int, palette []int, maxDepth int) Solution {
	if grid.Uniform(target) {
		return Solution{}
	}

	type node struct {
		grid  *model.Grid
		moves Solution
	}
	visited := map[string]bool{grid.Key(): true}
	queue := []node{{grid: grid}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if len(cur.moves) >= maxDepth {
			continue
		}
		for y := 0; y < grid.H; y++ {
			for x := 0; x < grid.W; x++ {
				next := model.ApplyClick(cur.grid, x, y, palette)
				moves := append(append(Solution{}, cur.moves...), model.Pos{X: x, Y: y})
				if next.Uniform(target) {
					return moves
				}
				key := next.Key()
				if !visited[key] {
					visited[key] = true
					queue = append(queue, node{grid: next, moves: moves})
				}
			}
		}
	}
	return nil
}

func fitsSolver(def LevelDef) bool {
	return def.W <= solverMaxDim && def.H <= solverMaxDim && def.Colors <= solverMaxColors
}

// fallback is the degenerate but always-solvable instance: a single
// click at the center, undone by len(palette)-1 center clicks.
func fallback(def LevelDef, palette []int) (*model.Grid, Solution) {
	grid := model.NewGrid(def.W, def.H, TargetColor)
	center := model.Pos{X: def.W / 2, Y: def.H / 2}
	grid = model.ApplyClick(grid, center.X, center.Y, palette)
	solution := make(Solution, 0, len(palette)-1)
	for i := 0; i < len(palette)-1; i++ {
		solution = append(solution, center)
	}
	return grid, solution
}
