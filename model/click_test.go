package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycleLabel(t *testing.T) {
	palette := []int{8, 2, 3}
	assert.Equal(t, 2, CycleLabel(8, palette))
	assert.Equal(t, 3, CycleLabel(2, palette))
	assert.Equal(t, 8, CycleLabel(3, palette))
}

func TestCycleLabelForeign(t *testing.T) {
	// A label outside the palette folds back to the first entry.
	assert.Equal(t, 8, CycleLabel(99, []int{8, 2}))
}

func TestApplyClickCenter(t *testing.T) {
	palette := []int{8, 2}
	g := NewGrid(3, 3, 8)
	out := ApplyClick(g, 1, 1, palette)

	advanced := map[Pos]bool{
		{1, 1}: true, {0, 1}: true, {2, 1}: true, {1, 0}: true, {1, 2}: true,
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := 8
			if advanced[Pos{x, y}] {
				want = 2
			}
			assert.Equal(t, want, out.At(x, y), "cell (%d,%d)", x, y)
		}
	}
}

func TestApplyClickCorner(t *testing.T) {
	palette := []int{8, 2}
	out := ApplyClick(NewGrid(3, 3, 8), 0, 0, palette)
	assert.Equal(t, 3, out.Count(2), "corner click touches 3 in-bounds cells")
	assert.Equal(t, 2, out.At(0, 0))
	assert.Equal(t, 2, out.At(1, 0))
	assert.Equal(t, 2, out.At(0, 1))
}

func TestApplyClickPure(t *testing.T) {
	g := NewGrid(3, 3, 8)
	_ = ApplyClick(g, 1, 1, []int{8, 2})
	require.True(t, g.Uniform(8), "input grid must not be mutated")
}

func TestApplyClickSelfInverseOnTwoColors(t *testing.T) {
	palette := []int{8, 2}
	g := NewGrid(4, 4, 8)
	once := ApplyClick(g, 2, 1, palette)
	twice := ApplyClick(once, 2, 1, palette)
	assert.Equal(t, g.Key(), twice.Key())
}
