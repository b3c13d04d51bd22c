package reach

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zelenka/puzzlebox/model"
)

func TestJointOpenBoardMeets(t *testing.T) {
	// Mirrored agents on an empty 3×3 board can both stand on the center.
	ok := Joint(3, 3, nil,
		model.Pos{X: 0, Y: 0}, model.Pos{X: 2, Y: 2}, model.Pos{X: 1, Y: 1})
	assert.True(t, ok)
}

func TestJointAlreadyOnTarget(t *testing.T) {
	p := model.Pos{X: 1, Y: 1}
	assert.True(t, Joint(3, 3, nil, p, p, p))
}

func TestAdvancePinsBlockedAgentOnly(t *testing.T) {
	// Main steps right freely; the mirror's mirrored step (left) hits a
	// wall and the mirror stays put. The turn still moves the main agent.
	walls := map[model.Pos]bool{{X: 1, Y: 2}: true}
	s := JointState{MainX: 0, MainY: 0, MirrorX: 2, MirrorY: 2}
	next := advance(3, 3, walls, s, model.Pos{X: 1, Y: 0})
	assert.Equal(t, JointState{MainX: 1, MainY: 0, MirrorX: 2, MirrorY: 2}, next)
}

func TestAdvancePinsAtBoundary(t *testing.T) {
	// Main at the left edge cannot move further left; the mirror still
	// takes its mirrored step right.
	s := JointState{MainX: 0, MainY: 1, MirrorX: 1, MirrorY: 1}
	next := advance(3, 3, nil, s, model.Pos{X: -1, Y: 0})
	assert.Equal(t, JointState{MainX: 0, MainY: 1, MirrorX: 2, MirrorY: 1}, next)
}

func TestJointSeparatedByWalls(t *testing.T) {
	// The mirror is boxed into the corner; the pair can never share the
	// target cell.
	walls := map[model.Pos]bool{
		{X: 1, Y: 2}: true,
		{X: 2, Y: 1}: true,
	}
	ok := Joint(3, 3, walls,
		model.Pos{X: 0, Y: 0}, model.Pos{X: 2, Y: 2}, model.Pos{X: 0, Y: 1})
	assert.False(t, ok)
}
