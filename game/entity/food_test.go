package entity

import (
	"testing"

	"golang.org/x/exp/rand"

	"wrapsnake/game/types"
)

func TestRelocateAvoidsSnake(t *testing.T) {
	grid := types.Grid{Cols: 4, Rows: 4}
	rng := rand.New(rand.NewSource(1))

	// Snake occupying six of sixteen cells
	s := NewSnake(types.Cell{X: 0, Y: 0}, types.DirRight)
	for i := 0; i < 3; i++ {
		s.Grow()
		s.Move()
	}
	s.ChangeDirection(types.DirDown)
	s.Grow()
	s.Move()
	s.ChangeDirection(types.DirLeft)
	s.Grow()
	s.Move()

	f := NewFood(types.Cell{X: 0, Y: 3})
	for i := 0; i < 100; i++ {
		f.Relocate(s, grid, rng)
		c := f.Cell()
		if s.Occupies(c) {
			t.Fatalf("iteration %d: food %v placed on snake %v", i, c, s.Segments())
		}
		if !grid.Contains(c) {
			t.Fatalf("iteration %d: food %v out of bounds", i, c)
		}
	}
}

func TestRelocateSingleFreeCell(t *testing.T) {
	// Snake on three of four cells of a 2x2 grid: the only legal spot is
	// (0,1), whichever sampling path finds it.
	grid := types.Grid{Cols: 2, Rows: 2}
	rng := rand.New(rand.NewSource(7))

	s := NewSnake(types.Cell{X: 0, Y: 0}, types.DirRight)
	s.Grow()
	s.Move()
	s.ChangeDirection(types.DirDown)
	s.Grow()
	s.Move()

	f := NewFood(types.Cell{X: 0, Y: 0})
	f.Relocate(s, grid, rng)
	if got := f.Cell(); got != (types.Cell{X: 0, Y: 1}) {
		t.Errorf("food = %v, want {0 1}", got)
	}
}

func TestRelocateFullGridLeavesFoodInPlace(t *testing.T) {
	grid := types.Grid{Cols: 2, Rows: 2}
	rng := rand.New(rand.NewSource(7))

	s := NewSnake(types.Cell{X: 0, Y: 0}, types.DirRight)
	s.Grow()
	s.Move()
	s.ChangeDirection(types.DirDown)
	s.Grow()
	s.Move()
	s.ChangeDirection(types.DirLeft)
	s.Grow()
	s.Move()
	if s.Len() != 4 {
		t.Fatalf("setup: length = %d, want 4", s.Len())
	}

	f := NewFood(types.Cell{X: 1, Y: 1})
	f.Relocate(s, grid, rng)
	if got := f.Cell(); got != (types.Cell{X: 1, Y: 1}) {
		t.Errorf("food moved to %v on a fully occupied grid", got)
	}
}
