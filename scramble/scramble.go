// Package scramble generates click sequences used to shuffle a solved
// grid into a puzzle instance. Each strategy has a distinct spatial
// bias, so scrambled boards look different level to level. Strategies
// only ever scramble; they know nothing about solving.
package scramble

import (
	"math/rand"

	"github.com/zelenka/puzzlebox/model"
)

// Strategy produces an ordered sequence of scramble positions.
type Strategy interface {
	Name() string
	Positions(rng *rand.Rand, w, h, count int) []model.Pos
}

// AdvancedThreshold is the level index from which the spatially biased
// strategies start being used. Below it only Random applies.
const AdvancedThreshold = 2

// Advanced is the strategy pool for levels at or above the threshold.
var Advanced = []Strategy{
	Stripes{},
	Diagonal{},
	Ring{},
	Cluster{},
	Checkerboard{},
	Cross{},
}

// ForLevel picks the strategy for one generation attempt. Above the
// threshold a fresh uniform pick is made on every call.
func ForLevel(rng *rand.Rand, level int) Strategy {
	if level < AdvancedThreshold {
		return Random{}
	}
	return Advanced[rng.Intn(len(Advanced))]
}

// Random emits uniform random positions, rejecting an immediate repeat
// of the previous position (a repeat self-cancels for a two-color
// cycle).
type Random struct{}

func (Random) Name() string { return "random" }

func (Random) Positions(rng *rand.Rand, w, h, count int) []model.Pos {
	out := make([]model.Pos, 0, count)
	prev := model.Pos{X: -1, Y: -1}
	for i := 0; i < count*3 && len(out) < count; i++ {
		p := model.Pos{X: rng.Intn(w), Y: rng.Intn(h)}
		if p == prev {
			continue
		}
		out = append(out, p)
		prev = p
	}
	return out
}

// Stripes fills whole rows or whole columns, chosen at random, each
// completely before moving to the next.
type Stripes struct{}

func (Stripes) Name() string { return "stripes" }

func (Stripes) Positions(rng *rand.Rand, w, h, count int) []model.Pos {
	out := make([]model.Pos, 0, count)
	if rng.Intn(2) == 0 {
		rows := rng.Perm(h)
		for _, y := range rows {
			if len(out) >= count {
				break
			}
			for _, x := range rng.Perm(w) {
				if len(out) >= count {
					break
				}
				out = append(out, model.Pos{X: x, Y: y})
			}
		}
	} else {
		cols := rng.Perm(w)
		for _, x := range cols {
			if len(out) >= count {
				break
			}
			for _, y := range rng.Perm(h) {
				if len(out) >= count {
					break
				}
				out = append(out, model.Pos{X: x, Y: y})
			}
		}
	}
	return out
}

// Diagonal enumerates the cells diagonal by diagonal (constant y-x),
// shuffles the enumeration and takes the first count.
type Diagonal struct{}

func (Diagonal) Name() string { return "diagonal" }

func (Diagonal) Positions(rng *rand.Rand, w, h, count int) []model.Pos {
	cells := make([]model.Pos, 0, w*h)
	for d := -(h - 1); d < w; d++ {
		for y := 0; y < h; y++ {
			x := y + d
			if x >= 0 && x < w {
				cells = append(cells, model.Pos{X: x, Y: y})
			}
		}
	}
	rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
	return take(cells, count)
}

// Ring partitions cells into concentric rings by distance to the
// nearest edge and emits outermost to innermost, shuffled within each
// ring.
type Ring struct{}

func (Ring) Name() string { return "ring" }

func (Ring) Positions(rng *rand.Rand, w, h, count int) []model.Pos {
	cells := make([]model.Pos, 0, w*h)
	for layer := 0; layer <= max(w, h)/2; layer++ {
		ring := make([]model.Pos, 0)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dist := min(min(y, x), min(h-1-y, w-1-x))
				if dist == layer {
					ring = append(ring, model.Pos{X: x, Y: y})
				}
			}
		}
		rng.Shuffle(len(ring), func(i, j int) { ring[i], ring[j] = ring[j], ring[i] })
		cells = append(cells, ring...)
	}
	return take(cells, count)
}

// Cluster picks random cluster centers and emits each center with its
// 8-neighbourhood, padding with random cells when short.
type Cluster struct{}

func (Cluster) Name() string { return "cluster" }

var clusterOffsets = [9]model.Pos{
	{0, 0}, {0, -1}, {0, 1}, {-1, 0}, {1, 0}, {-1, -1}, {1, 1}, {1, -1}, {-1, 1},
}

func (Cluster) Positions(rng *rand.Rand, w, h, count int) []model.Pos {
	nClusters := 2
	if count/2 > 2 {
		nClusters += rng.Intn(count/2 - 1)
	}
	out := make([]model.Pos, 0, count)
	used := make(map[model.Pos]bool)
	for i := 0; i < nClusters && len(out) < count; i++ {
		center := model.Pos{X: rng.Intn(w), Y: rng.Intn(h)}
		for _, off := range clusterOffsets {
			p := model.Pos{X: center.X + off.X, Y: center.Y + off.Y}
			if p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h && !used[p] {
				out = append(out, p)
				used[p] = true
			}
			if len(out) >= count {
				break
			}
		}
	}
	for len(out) < count {
		out = append(out, model.Pos{X: rng.Intn(w), Y: rng.Intn(h)})
	}
	return take(out, count)
}

// Checkerboard emits only the cells of one (y+x) parity class, shuffled.
type Checkerboard struct{}

func (Checkerboard) Name() string { return "checkerboard" }

func (Checkerboard) Positions(rng *rand.Rand, w, h, count int) []model.Pos {
	parity := rng.Intn(2)
	cells := make([]model.Pos, 0, (w*h+1)/2)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (y+x)%2 == parity {
				cells = append(cells, model.Pos{X: x, Y: y})
			}
		}
	}
	rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
	return take(cells, count)
}

// Cross emits the full middle row and the full middle column, the
// shared center only once, shuffled.
type Cross struct{}

func (Cross) Name() string { return "cross" }

func (Cross) Positions(rng *rand.Rand, w, h, count int) []model.Pos {
	midY, midX := h/2, w/2
	cells := make([]model.Pos, 0, w+h-1)
	for x := 0; x < w; x++ {
		cells = append(cells, model.Pos{X: x, Y: midY})
	}
	for y := 0; y < h; y++ {
		if y != midY {
			cells = append(cells, model.Pos{X: midX, Y: y})
		}
	}
	rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
	return take(cells, count)
}

func take(cells []model.Pos, count int) []model.Pos {
	if len(cells) > count {
		return cells[:count]
	}
	return cells
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
