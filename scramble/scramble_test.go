package scramble

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zelenka/puzzlebox/model"
)

func newRng(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestStrategiesProduceCountInBounds(t *testing.T) {
	all := append([]Strategy{Random{}}, Advanced...)
	for _, s := range all {
		for seed := int64(0); seed < 5; seed++ {
			got := s.Positions(newRng(seed), 8, 8, 10)
			require.Len(t, got, 10, "strategy %s seed %d", s.Name(), seed)
			for _, p := range got {
				assert.True(t, p.X >= 0 && p.X < 8 && p.Y >= 0 && p.Y < 8,
					"strategy %s emitted out-of-bounds %v", s.Name(), p)
			}
		}
	}
}

func TestRandomNoImmediateRepeat(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		got := Random{}.Positions(newRng(seed), 3, 3, 12)
		for i := 1; i < len(got); i++ {
			assert.NotEqual(t, got[i-1], got[i])
		}
	}
}

func TestCheckerboardSingleParity(t *testing.T) {
	got := Checkerboard{}.Positions(newRng(1), 8, 8, 16)
	require.NotEmpty(t, got)
	parity := (got[0].X + got[0].Y) % 2
	for _, p := range got {
		assert.Equal(t, parity, (p.X+p.Y)%2)
	}
}

func TestCrossStaysOnCenterLines(t *testing.T) {
	got := Cross{}.Positions(newRng(2), 7, 7, 13)
	require.Len(t, got, 13)
	seen := map[model.Pos]bool{}
	for _, p := range got {
		assert.True(t, p.X == 3 || p.Y == 3, "cell %v off the cross", p)
		assert.False(t, seen[p], "cross emits each cell once")
		seen[p] = true
	}
}

func TestRingStartsOnBorder(t *testing.T) {
	// With count equal to the border size, every emitted cell is on the
	// outermost ring.
	border := 8*4 - 4
	got := Ring{}.Positions(newRng(3), 8, 8, border)
	require.Len(t, got, border)
	for _, p := range got {
		onEdge := p.X == 0 || p.Y == 0 || p.X == 7 || p.Y == 7
		assert.True(t, onEdge, "cell %v not on the outer ring", p)
	}
}

func TestStripesCompletesLines(t *testing.T) {
	// One full stripe of an 8-wide board is emitted before any second
	// line is touched.
	got := Stripes{}.Positions(newRng(4), 8, 8, 8)
	require.Len(t, got, 8)
	sameRow, sameCol := true, true
	for _, p := range got {
		sameRow = sameRow && p.Y == got[0].Y
		sameCol = sameCol && p.X == got[0].X
	}
	assert.True(t, sameRow || sameCol)
}

func TestForLevelTiers(t *testing.T) {
	rng := newRng(5)
	for level := 0; level < AdvancedThreshold; level++ {
		assert.Equal(t, "random", ForLevel(rng, level).Name())
	}
	pool := map[string]bool{}
	for _, s := range Advanced {
		pool[s.Name()] = true
	}
	for i := 0; i < 50; i++ {
		s := ForLevel(rng, AdvancedThreshold)
		assert.True(t, pool[s.Name()], "level above threshold picked %s", s.Name())
	}
}
