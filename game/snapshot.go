package game

import (
	"snake-sim/game/types"
)

// PowerUpView is a drawable power-up.
type PowerUpView struct {
	Pos       types.Point
	Kind      types.PowerUpKind
	Remaining float64
}

// Snapshot is a read-only projection of the game for renderers. It
// shares nothing with the live state, so a host may hold on to it
// across ticks.
type Snapshot struct {
	GridSize     int
	Snake        []types.Point
	Direction    types.Direction
	Food         types.Point
	Obstacles    []types.Point
	PowerUps     []PowerUpView
	Score        int
	Level        int
	HighScore    int
	StepInterval float64
	Paused       bool
	Over         bool
}

// Snapshot copies the current drawable state.
func (g *Game) Snapshot() Snapshot {
	snake := make([]types.Point, len(g.snake.Body))
	copy(snake, g.snake.Body)

	obstacles := make([]types.Point, len(g.obstacles))
	copy(obstacles, g.obstacles)

	powerUps := make([]PowerUpView, len(g.powerUps))
	for i, pu := range g.powerUps {
		powerUps[i] = PowerUpView{Pos: pu.Pos, Kind: pu.Kind, Remaining: pu.Remaining}
	}

	return Snapshot{
		GridSize:     g.grid.Size,
		Snake:        snake,
		Direction:    g.direction,
		Food:         g.food,
		Obstacles:    obstacles,
		PowerUps:     powerUps,
		Score:        g.score,
		Level:        g.level,
		StepInterval: g.stepInterval,
		Over:         g.over,
	}
}
