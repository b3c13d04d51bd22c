package reach

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zelenka/puzzlebox/model"
)

func wallSet(ps ...model.Pos) map[model.Pos]bool {
	m := make(map[model.Pos]bool, len(ps))
	for _, p := range ps {
		m[p] = true
	}
	return m
}

func TestWalkOpenBoard(t *testing.T) {
	got := Walk(3, 3, model.Pos{X: 0, Y: 0}, func(model.Pos) bool { return false })
	assert.Len(t, got, 9)
}

func TestWalkRespectsWalls(t *testing.T) {
	// Vertical wall at x=1 splits a 3×3 board.
	walls := wallSet(model.Pos{X: 1, Y: 0}, model.Pos{X: 1, Y: 1}, model.Pos{X: 1, Y: 2})
	got := Walk(3, 3, model.Pos{X: 0, Y: 0}, func(p model.Pos) bool { return walls[p] })
	assert.Len(t, got, 3)
	assert.False(t, got[model.Pos{X: 2, Y: 0}])
}

func TestSlideCollectiblePassThrough(t *testing.T) {
	// Sliding right from (0,0) on an open 4×4 board rests at (3,0) but
	// passes (2,0) on the way; the pass counts.
	open := func(model.Pos) bool { return false }
	assert.True(t, SlideCollectible(4, 4, model.Pos{X: 0, Y: 0}, model.Pos{X: 2, Y: 0}, open))
}

func TestSlideCollectibleBlockedOff(t *testing.T) {
	// The target sits behind a wall on every slide line.
	walls := wallSet(
		model.Pos{X: 2, Y: 0}, model.Pos{X: 2, Y: 1}, model.Pos{X: 2, Y: 2}, model.Pos{X: 2, Y: 3},
	)
	blocked := func(p model.Pos) bool { return walls[p] }
	assert.False(t, SlideCollectible(4, 4, model.Pos{X: 0, Y: 0}, model.Pos{X: 3, Y: 1}, blocked))
}

// A wall fully separates the halves of a 4×4 board; only a warp pair
// bridges them. The teleport search must succeed where the plain walk
// fails.
func TestTeleportCrossesWhereWalkCannot(t *testing.T) {
	walls := wallSet(
		model.Pos{X: 2, Y: 0}, model.Pos{X: 2, Y: 1}, model.Pos{X: 2, Y: 2}, model.Pos{X: 2, Y: 3},
	)
	blocked := func(p model.Pos) bool { return walls[p] }
	start := model.Pos{X: 0, Y: 0}
	exit := model.Pos{X: 3, Y: 3}
	warps := map[model.Pos]model.Pos{
		{X: 1, Y: 1}: {X: 3, Y: 0},
		{X: 3, Y: 0}: {X: 1, Y: 1},
	}

	require.False(t, Walk(4, 4, start, blocked)[exit], "walk must not cross the wall")
	assert.True(t, TeleportPath(4, 4, start, exit, blocked, warps))
	assert.False(t, TeleportPath(4, 4, start, exit, blocked, nil))
}

func TestConnected(t *testing.T) {
	cells := map[model.Pos]bool{
		{X: 0, Y: 0}: true, {X: 1, Y: 0}: true, {X: 2, Y: 0}: true,
		{X: 2, Y: 1}: true, {X: 2, Y: 2}: true,
	}
	assert.True(t, Connected(cells, model.Pos{X: 0, Y: 0}, model.Pos{X: 2, Y: 2}))

	delete(cells, model.Pos{X: 2, Y: 1})
	assert.False(t, Connected(cells, model.Pos{X: 0, Y: 0}, model.Pos{X: 2, Y: 2}))
}
