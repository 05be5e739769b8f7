package entity

import (
	"wrapsnake/game/types"
)

// Snake is the player-controlled body on the grid. Segments are stored
// head first. Length is always at least 1.
type Snake struct {
	segments      []types.Cell
	dir           types.Direction
	pendingGrowth int
}

func NewSnake(start types.Cell, dir types.Direction) *Snake {
	return &Snake{
		segments: []types.Cell{start},
		dir:      dir,
	}
}

// Move advances the head one cell in the current direction without any
// bounds correction; the caller wraps afterwards if needed. If growth is
// pending the tail is kept, otherwise it is dropped.
func (s *Snake) Move() {
	head := s.segments[0]
	off := s.dir.Offset()
	newHead := types.Cell{X: head.X + off.X, Y: head.Y + off.Y}

	s.segments = append(s.segments, types.Cell{})
	copy(s.segments[1:], s.segments)
	s.segments[0] = newHead

	if s.pendingGrowth > 0 {
		s.pendingGrowth--
	} else {
		s.segments = s.segments[:len(s.segments)-1]
	}
}

// Grow defers one length increase to the next move.
func (s *Snake) Grow() {
	s.pendingGrowth++
}

// ChangeDirection requests a turn. A request for the exact opposite of
// the current direction is ignored; between moves the last accepted
// request wins.
func (s *Snake) ChangeDirection(dir types.Direction) {
	if dir == s.dir.Opposite() {
		return
	}
	s.dir = dir
}

// SelfCollision reports whether the head occupies the same cell as any
// other segment. Meaningful right after Move, before Wrap.
func (s *Snake) SelfCollision() bool {
	head := s.segments[0]
	for _, part := range s.segments[1:] {
		if head == part {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment sits on c.
func (s *Snake) Occupies(c types.Cell) bool {
	for _, part := range s.segments {
		if part == c {
			return true
		}
	}
	return false
}

// Wrap folds an off-grid head back onto the torus. Only the head is
// corrected; body segments left the grid through it and re-enter the
// same way on subsequent moves.
func (s *Snake) Wrap(cols, rows int) {
	head := s.segments[0]
	s.segments[0] = types.Cell{X: mod(head.X, cols), Y: mod(head.Y, rows)}
}

func (s *Snake) Head() types.Cell {
	return s.segments[0]
}

func (s *Snake) Direction() types.Direction {
	return s.dir
}

func (s *Snake) Len() int {
	return len(s.segments)
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []types.Cell {
	out := make([]types.Cell, len(s.segments))
	copy(out, s.segments)
	return out
}

// mod is a floored modulo, safe for the negative coordinates a head
// picks up when leaving the grid through the top or left edge.
func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
