package entity

import (
	"testing"

	"wrapsnake/game/types"
)

func TestMoveAdvancesHead(t *testing.T) {
	cases := []struct {
		dir  types.Direction
		want types.Cell
	}{
		{types.DirUp, types.Cell{X: 5, Y: 4}},
		{types.DirDown, types.Cell{X: 5, Y: 6}},
		{types.DirLeft, types.Cell{X: 4, Y: 5}},
		{types.DirRight, types.Cell{X: 6, Y: 5}},
	}
	for _, c := range cases {
		s := NewSnake(types.Cell{X: 5, Y: 5}, c.dir)
		s.Move()
		if got := s.Head(); got != c.want {
			t.Errorf("%s: head = %v, want %v", c.dir, got, c.want)
		}
		if s.Len() != 1 {
			t.Errorf("%s: length = %d, want 1", c.dir, s.Len())
		}
	}
}

func TestMoveKeepsSegmentsHeadFirst(t *testing.T) {
	s := NewSnake(types.Cell{X: 5, Y: 5}, types.DirRight)
	s.Grow()
	s.Move()
	s.Grow()
	s.Move()

	want := []types.Cell{{X: 7, Y: 5}, {X: 6, Y: 5}, {X: 5, Y: 5}}
	assertSegments(t, s, want)

	// No pending growth: body shifts, tail drops
	s.Move()
	want = []types.Cell{{X: 8, Y: 5}, {X: 7, Y: 5}, {X: 6, Y: 5}}
	assertSegments(t, s, want)
}

func assertSegments(t *testing.T, s *Snake, want []types.Cell) {
	t.Helper()
	got := s.Segments()
	if len(got) != len(want) {
		t.Fatalf("segments = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("segments = %v, want %v", got, want)
		}
	}
}

func TestGrowThenMoveLengthensByOne(t *testing.T) {
	plain := NewSnake(types.Cell{X: 5, Y: 5}, types.DirRight)
	plain.Move()

	grown := NewSnake(types.Cell{X: 5, Y: 5}, types.DirRight)
	grown.Grow()
	grown.Move()

	if grown.Len() != plain.Len()+1 {
		t.Errorf("grown length = %d, plain length = %d, want difference 1", grown.Len(), plain.Len())
	}
}

func TestChangeDirection(t *testing.T) {
	cases := []struct {
		name    string
		current types.Direction
		request types.Direction
		want    types.Direction
	}{
		{"reversal ignored", types.DirRight, types.DirLeft, types.DirRight},
		{"lateral up", types.DirRight, types.DirUp, types.DirUp},
		{"lateral down", types.DirRight, types.DirDown, types.DirDown},
		{"same direction", types.DirRight, types.DirRight, types.DirRight},
		{"reversal ignored vertical", types.DirUp, types.DirDown, types.DirUp},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewSnake(types.Cell{X: 5, Y: 5}, c.current)
			s.ChangeDirection(c.request)
			if got := s.Direction(); got != c.want {
				t.Errorf("direction = %s, want %s", got, c.want)
			}
		})
	}
}

func TestChangeDirectionBetweenMoves(t *testing.T) {
	// Last accepted request wins
	s := NewSnake(types.Cell{X: 5, Y: 5}, types.DirRight)
	s.ChangeDirection(types.DirUp)
	s.ChangeDirection(types.DirLeft)
	if got := s.Direction(); got != types.DirLeft {
		t.Errorf("direction = %s, want Left", got)
	}

	// A reversal of the latest direction is still rejected, even if it
	// was legal against the direction one call earlier
	s = NewSnake(types.Cell{X: 5, Y: 5}, types.DirRight)
	s.ChangeDirection(types.DirUp)
	s.ChangeDirection(types.DirDown)
	if got := s.Direction(); got != types.DirUp {
		t.Errorf("direction = %s, want Up", got)
	}
}

func TestSelfCollisionOnFoldedSnake(t *testing.T) {
	// Grow to 5 segments while turning a full square: the last move puts
	// the head back on the starting cell, which the tail still occupies.
	s := NewSnake(types.Cell{X: 5, Y: 5}, types.DirRight)
	for i := 0; i < 4; i++ {
		s.Grow()
	}

	steps := []types.Direction{types.DirRight, types.DirDown, types.DirLeft, types.DirUp}
	for i, dir := range steps {
		s.ChangeDirection(dir)
		s.Move()
		collided := s.SelfCollision()
		last := i == len(steps)-1
		if collided != last {
			t.Fatalf("after move %d (%s): SelfCollision = %v, want %v, segments %v",
				i+1, dir, collided, last, s.Segments())
		}
	}
	if s.Len() != 5 {
		t.Errorf("length = %d, want 5", s.Len())
	}
}

func TestWrapIdempotentInBounds(t *testing.T) {
	cases := []types.Cell{
		{X: 0, Y: 0},
		{X: 9, Y: 7},
		{X: 4, Y: 3},
	}
	for _, c := range cases {
		s := NewSnake(c, types.DirRight)
		s.Wrap(10, 8)
		if got := s.Head(); got != c {
			t.Errorf("Wrap moved in-bounds head %v to %v", c, got)
		}
	}
}

func TestWrapOffGridHead(t *testing.T) {
	cases := []struct {
		head types.Cell
		want types.Cell
	}{
		{types.Cell{X: -1, Y: 3}, types.Cell{X: 9, Y: 3}},
		{types.Cell{X: 10, Y: 3}, types.Cell{X: 0, Y: 3}},
		{types.Cell{X: 3, Y: -1}, types.Cell{X: 3, Y: 7}},
		{types.Cell{X: 3, Y: 8}, types.Cell{X: 3, Y: 0}},
	}
	for _, c := range cases {
		s := NewSnake(c.head, types.DirRight)
		s.Wrap(10, 8)
		if got := s.Head(); got != c.want {
			t.Errorf("Wrap(%v) = %v, want %v", c.head, got, c.want)
		}
	}
}

func TestOccupies(t *testing.T) {
	s := NewSnake(types.Cell{X: 5, Y: 5}, types.DirRight)
	s.Grow()
	s.Move()

	if !s.Occupies(types.Cell{X: 5, Y: 5}) {
		t.Error("tail cell not reported as occupied")
	}
	if !s.Occupies(types.Cell{X: 6, Y: 5}) {
		t.Error("head cell not reported as occupied")
	}
	if s.Occupies(types.Cell{X: 7, Y: 5}) {
		t.Error("empty cell reported as occupied")
	}
}
