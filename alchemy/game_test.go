package alchemy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zelenka/puzzlebox/model"
)

func TestNewGameStartsPlaying(t *testing.T) {
	g := New(1)
	assert.Equal(t, model.Playing, g.Status())
	snap := g.Snapshot()
	assert.Equal(t, 0, snap.Level)
	assert.Equal(t, -1, snap.Steps)
	assert.False(t, snap.Grid.Uniform(TargetColor))
}

func TestCursorClampsAtEdges(t *testing.T) {
	g := New(2)
	w := g.def.W
	for i := 0; i < w+2; i++ {
		g.Step(model.ActionLeft)
	}
	assert.Equal(t, 0, g.Snapshot().Cursor.X)
	assert.False(t, g.Step(model.ActionLeft), "pinned cursor is a no-op")
}

func TestSelectThenUndoRestoresGrid(t *testing.T) {
	g := New(3)
	before := g.Snapshot().Grid.Key()

	require.True(t, g.Step(model.ActionSelect))
	if g.Snapshot().Level != 0 {
		t.Skip("instance happened to be solved by a single click")
	}
	changedKey := g.Snapshot().Grid.Key()

	require.True(t, g.Step(model.ActionUndo))
	assert.Equal(t, before, g.Snapshot().Grid.Key())
	assert.NotEqual(t, before, changedKey)
}

func TestUndoOnEmptyHistory(t *testing.T) {
	g := New(4)
	assert.False(t, g.Step(model.ActionUndo))
}

func TestSolvingAdvancesLevel(t *testing.T) {
	g := New(5)
	// Drive the board home with the generator's own solution by
	// regenerating deterministically: click every cursor position the
	// solver dictates.
	palette := ColorCycle[:g.def.Colors]
	solution := SolveBFS(g.grid, TargetColor, palette, solverMaxDepth)
	require.NotNil(t, solution, "level 0 boards stay inside the solver gate")

	for _, p := range solution {
		moveCursorTo(g, p)
		g.Step(model.ActionSelect)
	}
	assert.Equal(t, 1, g.Snapshot().Level)
	assert.Equal(t, model.Playing, g.Status())
}

func moveCursorTo(g *Game, p model.Pos) {
	for g.cursor.X < p.X {
		g.Step(model.ActionRight)
	}
	for g.cursor.X > p.X {
		g.Step(model.ActionLeft)
	}
	for g.cursor.Y < p.Y {
		g.Step(model.ActionDown)
	}
	for g.cursor.Y > p.Y {
		g.Step(model.ActionUp)
	}
}
