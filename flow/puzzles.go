package flow

import "github.com/zelenka/puzzlebox/model"

// LevelConfig sizes one level's board, palette and step budget.
type LevelConfig struct {
	W, H     int
	Colors   int
	MaxSteps int
}

var Levels = []LevelConfig{
	{8, 8, 5, 150},
	{16, 16, 6, 400},
	{8, 8, 7, 300},
	{16, 16, 8, 600},
	{32, 32, 9, 1600},
	{32, 32, 10, 1600},
}

// Puzzle is one authored board: two endpoints per color plus the bridge
// cells where two colors may cross.
type Puzzle struct {
	Endpoints map[int][2]model.Pos
	Bridges   map[model.Pos]bool
}

// puzzles is the static, read-only puzzle table, one entry per level.
// Levels 3+ are block/band layouts: each color fills a rectangular
// region, with bridges on region boundaries.
var puzzles = []Puzzle{
	{
		Endpoints: map[int][2]model.Pos{
			1: {{6, 6}, {0, 4}},
			2: {{0, 3}, {2, 0}},
			3: {{3, 0}, {5, 3}},
			4: {{5, 4}, {3, 4}},
			5: {{3, 5}, {2, 1}},
		},
		Bridges: map[model.Pos]bool{},
	},
	{
		Endpoints: map[int][2]model.Pos{
			1: {{2, 13}, {15, 14}},
			2: {{14, 14}, {14, 12}},
			3: {{14, 11}, {13, 11}},
			4: {{13, 12}, {8, 12}},
			5: {{9, 12}, {10, 3}},
			6: {{9, 3}, {4, 8}},
		},
		Bridges: map[model.Pos]bool{},
	},
	// 2-col × 4-row blocks; bridge where colors 3 and 4 border.
	{
		Endpoints: map[int][2]model.Pos{
			1: {{0, 0}, {1, 3}},
			2: {{0, 4}, {1, 7}},
			3: {{2, 0}, {3, 2}},
			4: {{2, 3}, {3, 7}},
			5: {{4, 0}, {5, 3}},
			6: {{4, 4}, {5, 7}},
			7: {{6, 0}, {7, 7}},
		},
		Bridges: map[model.Pos]bool{{X: 3, Y: 3}: true},
	},
	// 4 horizontal bands × 2 halves, 8×4 blocks.
	{
		Endpoints: map[int][2]model.Pos{
			1: {{0, 0}, {7, 3}},
			2: {{8, 0}, {15, 3}},
			3: {{0, 4}, {7, 7}},
			4: {{8, 4}, {15, 7}},
			5: {{0, 8}, {7, 11}},
			6: {{8, 8}, {15, 11}},
			7: {{0, 12}, {7, 15}},
			8: {{8, 12}, {15, 15}},
		},
		Bridges: map[model.Pos]bool{{X: 7, Y: 4}: true, {X: 8, Y: 11}: true},
	},
	// 9 horizontal bands.
	{
		Endpoints: map[int][2]model.Pos{
			1: {{0, 0}, {31, 3}},
			2: {{0, 4}, {31, 6}},
			3: {{0, 7}, {31, 10}},
			4: {{0, 11}, {31, 13}},
			5: {{0, 14}, {31, 17}},
			6: {{0, 18}, {31, 20}},
			7: {{0, 21}, {31, 23}},
			8: {{0, 24}, {31, 27}},
			9: {{0, 28}, {31, 31}},
		},
		Bridges: map[model.Pos]bool{{X: 15, Y: 6}: true, {X: 16, Y: 21}: true},
	},
	// 10 horizontal bands of 3 rows (color 10 gets 5).
	{
		Endpoints: map[int][2]model.Pos{
			1:  {{0, 0}, {31, 2}},
			2:  {{0, 3}, {31, 5}},
			3:  {{0, 6}, {31, 8}},
			4:  {{0, 9}, {31, 11}},
			5:  {{0, 12}, {31, 14}},
			6:  {{0, 15}, {31, 17}},
			7:  {{0, 18}, {31, 20}},
			8:  {{0, 21}, {31, 23}},
			9:  {{0, 24}, {31, 26}},
			10: {{0, 27}, {31, 31}},
		},
		Bridges: map[model.Pos]bool{
			{X: 10, Y: 3}: true, {X: 21, Y: 3}: true,
			{X: 10, Y: 20}: true, {X: 21, Y: 20}: true,
		},
	},
}
