package entity

import (
	"torus-snake/game/types"
)

// Snake holds the body head-first and the current heading
type Snake struct {
	Body      []types.Point
	Direction types.Point
}

// NewSnake lays out length segments with the head at head and the body
// trailing behind, opposite to dir.
func NewSnake(head types.Point, dir types.Direction, length int) *Snake {
	if length < 1 {
		length = 1
	}
	step := dir.ToPoint()
	body := make([]types.Point, length)
	for i := range body {
		body[i] = types.Point{X: head.X - step.X*i, Y: head.Y - step.Y*i}
	}
	return &Snake{
		Body:      body,
		Direction: step,
	}
}

// Move prepends the new head
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment sits on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// SetDirection changes heading unless dir is the exact reverse of the
// current one. Returns whether the heading was taken.
func (s *Snake) SetDirection(dir types.Point) bool {
	if types.DirectionOf(dir) == types.NONE {
		return false
	}
	// Prevent 180-degree turns
	if (dir.X != 0 && dir.X == -s.Direction.X) ||
		(dir.Y != 0 && dir.Y == -s.Direction.Y) {
		return false
	}
	s.Direction = dir
	return true
}

// Copy returns a snapshot of the body safe to hand to readers
func (s *Snake) Copy() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
