// Package alchemy is the color-cycle puzzle: a click advances a cell
// and its four neighbours through a fixed color cycle, and the board is
// cleared by making every cell the target color. Instances are
// scrambled from the solved state and verified solvable before play.
package alchemy

import "github.com/zelenka/puzzlebox/model"

// Palette indices, shared with the renderer's color table.
const (
	ColorCyan    = 8
	ColorRed     = 2
	ColorGreen   = 3
	ColorYellow  = 4
	ColorOrange  = 7
	ColorMagenta = 6
)

// ColorCycle is the full ordered palette; a level with n colors cycles
// through the first n entries.
var ColorCycle = []int{ColorCyan, ColorRed, ColorGreen, ColorYellow, ColorOrange, ColorMagenta}

// TargetColor is the uniform label every level must reach.
const TargetColor = ColorRed

// LevelDef sizes one level's board and palette.
type LevelDef struct {
	W, H   int
	Colors int
}

// Levels grows the board and the palette with the level index.
var Levels = []LevelDef{
	{3, 3, 2},
	{4, 4, 2},
	{5, 5, 3},
	{6, 6, 3},
	{7, 7, 4},
	{8, 8, 5},
}

// Solution is an ordered sequence of clicks that returns a grid to the
// uniform target configuration.
type Solution []model.Pos
