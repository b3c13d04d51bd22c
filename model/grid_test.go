package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGrid(t *testing.T) {
	g := NewGrid(4, 3, 7)
	assert.Equal(t, 4, g.W)
	assert.Equal(t, 3, g.H)
	assert.True(t, g.Uniform(7))
	assert.Equal(t, 12, g.Count(7))
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(3, 3, 0)
	c := g.Clone()
	c.Set(1, 1, 5)
	assert.Equal(t, 0, g.At(1, 1))
	assert.Equal(t, 5, c.At(1, 1))
}

func TestKeyDistinguishesGrids(t *testing.T) {
	a := NewGrid(3, 3, 1)
	b := a.Clone()
	assert.Equal(t, a.Key(), b.Key())
	b.Set(2, 0, 2)
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestActionDir(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		d, ok := a.Dir()
		assert.True(t, ok)
		assert.Equal(t, 1, d.X*d.X+d.Y*d.Y, "directions are unit steps")
	}
	_, ok := ActionSelect.Dir()
	assert.False(t, ok)
}
