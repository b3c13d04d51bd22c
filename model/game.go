package model

import "fmt"

// Action is the fixed input vocabulary consumed by every game. The
// external driver translates raw input events into these.
type Action int

const (
	ActionUp Action = iota + 1
	ActionDown
	ActionLeft
	ActionRight
	ActionSelect
	ActionSecondary
	ActionUndo
)

func (a Action) Name() string {
	switch a {
	case ActionUp:
		return "UP"
	case ActionDown:
		return "DOWN"
	case ActionLeft:
		return "LEFT"
	case ActionRight:
		return "RIGHT"
	case ActionSelect:
		return "SELECT"
	case ActionSecondary:
		return "SECONDARY"
	case ActionUndo:
		return "UNDO"
	default:
		return fmt.Sprintf("N/A(%d)", a)
	}
}

// Dir returns the step offset for directional actions and ok=false for
// the rest.
func (a Action) Dir() (Pos, bool) {
	switch a {
	case ActionUp:
		return Pos{0, -1}, true
	case ActionDown:
		return Pos{0, 1}, true
	case ActionLeft:
		return Pos{-1, 0}, true
	case ActionRight:
		return Pos{1, 0}, true
	}
	return Pos{}, false
}

// Status is the tri-state win signal queried by the driver after each
// step. The driver alone decides what to do with it.
type Status int

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) Name() string {
	switch s {
	case Playing:
		return "PLAYING"
	case Won:
		return "WON"
	case Lost:
		return "LOST"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// Snapshot is the read-only view handed to renderers. Color-to-pixel
// mapping and scaling are entirely the renderer's business.
type Snapshot struct {
	Grid     *Grid
	Cursor   Pos
	Mirror   *Pos          // second agent, mirror puzzle only
	Selected int           // active path color, 0 when idle
	Bridges  []Pos         // path puzzle overlay
	Ends     map[int][]Pos // path puzzle endpoint dots per color
	Level    int
	Steps    int // steps remaining in the budget, -1 when unbudgeted
}

// Game is one playable puzzle instance. Implementations are purely
// synchronous; Step never blocks and never fails, it just reports
// whether the state changed.
type Game interface {
	Step(a Action) bool
	Snapshot() Snapshot
	Status() Status
}
