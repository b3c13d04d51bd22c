package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"sort"
	"time"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/zelenka/puzzlebox/alchemy"
	"github.com/zelenka/puzzlebox/flow"
	"github.com/zelenka/puzzlebox/model"
	"github.com/zelenka/puzzlebox/patterns"
)

const (
	screenWidth  = 640
	screenHeight = 640
	hudHeight    = 40
)

func HexToF32(u uint32, id int) GameColor {
	b := float64(0xff&u) / 255
	g := float64(0xff&(u>>8)) / 255
	r := float64(0xff&(u>>16)) / 255
	return GameColor{r, g, b, id}
}

type GameColor struct {
	r  float64
	g  float64
	b  float64
	id int
}

// COLORS maps a cell label to its display color. Labels above 15 wrap.
var COLORS = [16]GameColor{
	HexToF32(0x000000, 0),
	HexToF32(0x555555, 1),
	HexToF32(0xfa3636, 2),
	HexToF32(0x0abd38, 3),
	HexToF32(0x321ecc, 4),
	HexToF32(0xedbc1e, 5),
	HexToF32(0xcb18dd, 6),
	HexToF32(0xff8b1e, 7),
	HexToF32(0x34fbf6, 8),
	HexToF32(0x8c5a2d, 9),
	HexToF32(0xff6ea8, 10),
	HexToF32(0x7fdbff, 11),
	HexToF32(0x870c25, 12),
	HexToF32(0x1f8274, 13),
	HexToF32(0x999999, 14),
	HexToF32(0xcccccc, 15),
}

type GameState int

const (
	PLAYING GameState = iota + 1
	FLASHING
	GAME_OVER
)

func (s GameState) Name() string {
	switch s {
	case PLAYING:
		return "PLAYING"
	case FLASHING:
		return "FLASHING"
	case GAME_OVER:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

type keyBinding struct {
	key    ebiten.Key
	action model.Action
	repeat bool
}

var bindings = []keyBinding{
	{ebiten.KeyUp, model.ActionUp, true},
	{ebiten.KeyW, model.ActionUp, true},
	{ebiten.KeyDown, model.ActionDown, true},
	{ebiten.KeyS, model.ActionDown, true},
	{ebiten.KeyLeft, model.ActionLeft, true},
	{ebiten.KeyA, model.ActionLeft, true},
	{ebiten.KeyRight, model.ActionRight, true},
	{ebiten.KeyD, model.ActionRight, true},
	{ebiten.KeySpace, model.ActionSelect, false},
	{ebiten.KeyX, model.ActionSecondary, false},
	{ebiten.KeyZ, model.ActionUndo, true},
	{ebiten.KeyU, model.ActionUndo, true},
}

type Game struct {
	State      GameState
	Name       string
	Factory    func(seed int64) model.Game
	Model      model.Game
	Tweens     map[*gween.Tween]Action
	flashAlpha float64
	flashColor GameColor
	lastLevel  int
}

var theGame *Game

var cellImage *ebiten.Image
var Font font.Face

func init() {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	const dpi = 72
	Font = truetype.NewFace(tt, &truetype.Options{
		Size:    20,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})

	cellImage, _ = ebiten.NewImage(1, 1, ebiten.FilterDefault)
	cellImage.Fill(color.White)
}

var registry = map[string]func(seed int64) model.Game{
	"alchemy":  func(seed int64) model.Game { return alchemy.New(seed) },
	"patterns": func(seed int64) model.Game { return patterns.New(seed) },
	"flow":     func(seed int64) model.Game { return flow.New(seed) },
}

func colorFor(label int) GameColor {
	if label < 0 {
		label = -label
	}
	return COLORS[label%len(COLORS)]
}

// repeating reports a key press with auto-repeat after a short hold.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= 18 && (d-18)%6 == 0
}

func (g *Game) pressedAction() (model.Action, bool) {
	for _, b := range bindings {
		if b.repeat {
			if repeating(b.key) {
				return b.action, true
			}
		} else if inpututil.IsKeyJustPressed(b.key) {
			return b.action, true
		}
	}
	return 0, false
}

func (g *Game) reset() {
	g.Model = g.Factory(time.Now().UnixNano())
	g.State = PLAYING
	g.flashAlpha = 0
	g.lastLevel = 0
}

// flash fades a full-screen tint in and out, then settles the state.
func (g *Game) flash(c GameColor, after GameState) {
	g.State = FLASHING
	g.flashColor = c
	in := gween.New(0, 0.6, 0.35, ease.OutQuad)
	inAction := Action{onChange: func(v float32) { g.flashAlpha = float64(v) }}
	out := gween.New(0.6, 0, 0.35, ease.InQuad)
	next := inAction.next(out)
	next.onChange = func(v float32) { g.flashAlpha = float64(v) }
	next.addOnFinish(func() {
		g.flashAlpha = 0
		g.State = after
	})
	g.Tweens[in] = inAction
}

func (g *Game) update(screen *ebiten.Image) error {
	for t, a := range g.Tweens {
		curr, finished := t.Update(0.02)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			for _, next := range a.nexts {
				next(g)
			}
			delete(g.Tweens, t)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}

	if g.State == PLAYING {
		if a, ok := g.pressedAction(); ok {
			g.Model.Step(a)
		}
		snap := g.Model.Snapshot()
		switch {
		case g.Model.Status() == model.Won:
			g.flash(colorFor(3), GAME_OVER)
		case g.Model.Status() == model.Lost:
			g.flash(colorFor(2), GAME_OVER)
		case snap.Level != g.lastLevel:
			g.lastLevel = snap.Level
			g.flash(colorFor(15), PLAYING)
		}
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	e := screen.Fill(color.RGBA{30, 30, 30, 255})
	if e != nil {
		log.Printf("%v", e)
	}

	snap := g.Model.Snapshot()
	g.drawBoard(screen, snap)
	g.drawHud(screen, snap)

	if g.flashAlpha > 0 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(screenWidth, screenHeight)
		op.ColorM.Scale(g.flashColor.r, g.flashColor.g, g.flashColor.b, g.flashAlpha)
		screen.DrawImage(cellImage, op)
	}

	return nil
}

func (g *Game) drawBoard(screen *ebiten.Image, snap model.Snapshot) {
	grid := snap.Grid
	boardH := screenHeight - hudHeight
	size := screenWidth / grid.W
	if s := boardH / grid.H; s < size {
		size = s
	}
	ox := (screenWidth - size*grid.W) / 2
	oy := hudHeight + (boardH-size*grid.H)/2

	cell := func(x, y int, c GameColor, alpha, shrink float64) {
		op := &ebiten.DrawImageOptions{}
		s := float64(size) * shrink
		pad := (float64(size) - s) / 2
		op.GeoM.Scale(s, s)
		op.GeoM.Translate(float64(ox+x*size)+pad, float64(oy+y*size)+pad)
		op.ColorM.Scale(c.r, c.g, c.b, alpha)
		screen.DrawImage(cellImage, op)
	}

	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			cell(x, y, colorFor(grid.At(x, y)), 1, .92)
		}
	}
	for _, b := range snap.Bridges {
		cell(b.X, b.Y, COLORS[15], .45, .45)
	}
	for _, eps := range snap.Ends {
		for _, p := range eps {
			cell(p.X, p.Y, COLORS[0], .55, .35)
		}
	}
	if snap.Mirror != nil {
		cell(snap.Mirror.X, snap.Mirror.Y, COLORS[8], .45, 1)
	}
	cell(snap.Cursor.X, snap.Cursor.Y, COLORS[15], .5, 1)
}

func (g *Game) drawHud(screen *ebiten.Image, snap model.Snapshot) {
	hud := fmt.Sprintf("%s  L%d", g.Name, snap.Level+1)
	if snap.Steps >= 0 {
		hud += fmt.Sprintf("  steps:%d", snap.Steps)
	}
	if snap.Selected > 0 {
		hud += fmt.Sprintf("  color:%d", snap.Selected)
	}
	if g.Model.Status() != model.Playing {
		hud += "  " + g.Model.Status().Name() + " (R restarts)"
	}
	text.Draw(screen, hud, Font, 10, 28, color.White)
	ebitenutil.DebugPrintAt(screen, g.State.Name(), screenWidth-80, 0)
}

func main() {
	name := flag.String("game", "alchemy", "which puzzle to play")
	seed := flag.Int64("seed", 0, "initial seed, 0 picks from the clock")
	flag.Parse()

	factory, ok := registry[*name]
	if !ok {
		names := make([]string, 0, len(registry))
		for n := range registry {
			names = append(names, n)
		}
		sort.Strings(names)
		log.Fatalf("unknown game %q, have %v", *name, names)
	}
	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	theGame = &Game{
		State:   PLAYING,
		Name:    *name,
		Factory: factory,
		Model:   factory(s),
		Tweens:  make(map[*gween.Tween]Action),
	}

	if err := ebiten.Run(theGame.update, screenWidth, screenHeight, 1, "Puzzlebox"); err != nil {
		log.Fatal(err)
	}
}
