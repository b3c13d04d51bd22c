package alchemy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zelenka/puzzlebox/model"
)

func TestGenerateRoundTripAllLevels(t *testing.T) {
	for level := range Levels {
		for seed := int64(0); seed < 10; seed++ {
			rng := rand.New(rand.NewSource(seed))
			grid, solution := Generate(rng, level)
			def := Levels[level]
			palette := ColorCycle[:def.Colors]

			require.Equal(t, def.W, grid.W)
			require.Equal(t, def.H, grid.H)
			assert.False(t, grid.Uniform(TargetColor), "level %d seed %d served a solved board", level, seed)
			assert.True(t, Verify(grid, solution, TargetColor, palette),
				"level %d seed %d solution does not solve its own grid", level, seed)
		}
	}
}

func TestSingleClickScramble(t *testing.T) {
	// A solved 3×3 two-color board scrambled by one click at the center
	// is undone by exactly one more click there.
	palette := ColorCycle[:2]
	grid := model.ApplyClick(model.NewGrid(3, 3, TargetColor), 1, 1, palette)
	solution := Solution{{X: 1, Y: 1}}

	require.False(t, grid.Uniform(TargetColor))
	assert.True(t, Verify(grid, solution, TargetColor, palette))
}

func TestSolveBFSFindsShortest(t *testing.T) {
	palette := ColorCycle[:2]
	grid := model.ApplyClick(model.NewGrid(3, 3, TargetColor), 1, 1, palette)

	got := SolveBFS(grid, TargetColor, palette, solverMaxDepth)
	require.NotNil(t, got)
	assert.Len(t, got, 1)
	assert.Equal(t, model.Pos{X: 1, Y: 1}, got[0])
}

func TestSolveBFSSolvedBoard(t *testing.T) {
	got := SolveBFS(model.NewGrid(3, 3, TargetColor), TargetColor, ColorCycle[:2], solverMaxDepth)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSolveBFSRespectsDepthBound(t *testing.T) {
	// Three separated clicks need three answers; a depth-1 bound must
	// give up rather than loop.
	palette := ColorCycle[:2]
	grid := model.NewGrid(4, 4, TargetColor)
	for _, p := range []model.Pos{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 3}} {
		grid = model.ApplyClick(grid, p.X, p.Y, palette)
	}
	assert.Nil(t, SolveBFS(grid, TargetColor, palette, 1))
}

func TestVerifyRejectsWrongSolution(t *testing.T) {
	palette := ColorCycle[:2]
	grid := model.ApplyClick(model.NewGrid(3, 3, TargetColor), 1, 1, palette)
	assert.False(t, Verify(grid, Solution{{X: 0, Y: 0}}, TargetColor, palette))
}

func TestFallbackIsSolvable(t *testing.T) {
	for level, def := range Levels {
		palette := ColorCycle[:def.Colors]
		grid, solution := fallback(def, palette)
		require.Len(t, solution, len(palette)-1)
		assert.False(t, grid.Uniform(TargetColor))
		assert.True(t, Verify(grid, solution, TargetColor, palette), "fallback level %d", level)
	}
}
