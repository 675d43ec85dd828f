package entity

import (
	"snake-sim/game/types"
)

// Snake is the ordered body of the creature, head first. All positions
// are distinct and consecutive segments are lattice-adjacent modulo the
// board wrap.
type Snake struct {
	Body []types.Point
}

// NewSnake builds a straight snake of the given length with the head at
// start, trailing away opposite to dir.
func NewSnake(start types.Point, dir types.Direction, length int) *Snake {
	step := dir.Vector()
	body := make([]types.Point, length)
	for i := range body {
		body[i] = types.Point{X: start.X - step.X*i, Y: start.Y - step.Y*i}
	}
	return &Snake{Body: body}
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

func (s *Snake) Tail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether any segment occupies p.
func (s *Snake) Contains(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Advance moves the head to newHead. Unless grow is set, the tail cell
// is released, keeping the length unchanged.
func (s *Snake) Advance(newHead types.Point, grow bool) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
	if !grow {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Cells returns the occupied positions as a set, for spawn exclusion.
func (s *Snake) Cells() map[types.Point]struct{} {
	cells := make(map[types.Point]struct{}, len(s.Body))
	for _, part := range s.Body {
		cells[part] = struct{}{}
	}
	return cells
}
