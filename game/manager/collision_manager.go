package manager

import (
	"snake-sim/game/entity"
	"snake-sim/game/types"
)

// Collision resolves candidate head positions on the toroidal board.
// There are no walls: leaving one edge re-enters on the opposite side,
// so only body segments and obstacles can kill.
type Collision struct {
	grid types.Grid
}

func NewCollision(grid types.Grid) *Collision {
	return &Collision{grid: grid}
}

// NextHead computes the wrapped candidate head one step from head in
// the given direction.
func (cm *Collision) NextHead(head types.Point, dir types.Direction) types.Point {
	return cm.grid.Wrap(head.Add(dir.Vector()))
}

// HitsBody checks pos against the snake that has not moved yet. The
// tail cell is exempt on non-grow ticks: it is vacated in the same step
// the head arrives. On grow ticks the tail stays put and counts.
func (cm *Collision) HitsBody(pos types.Point, snake *entity.Snake, grow bool) bool {
	last := snake.Len()
	if !grow {
		last--
	}
	for i := 0; i < last; i++ {
		if snake.Body[i] == pos {
			return true
		}
	}
	return false
}

// HitsObstacle checks pos against the permanent obstacle set.
func (cm *Collision) HitsObstacle(pos types.Point, obstacles []types.Point) bool {
	for _, o := range obstacles {
		if o == pos {
			return true
		}
	}
	return false
}
