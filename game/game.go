package game

import (
	"golang.org/x/exp/rand"

	"snake-sim/game/entity"
	"snake-sim/game/manager"
	"snake-sim/game/types"
)

// TickResult is the outcome of one simulation step. Terminated carries
// the final score; recording it anywhere is the caller's business.
type TickResult struct {
	Terminated bool
	Score      int
}

// Game is the authoritative simulation state. It is not safe for
// concurrent use; the session controller serializes access.
type Game struct {
	grid            types.Grid
	snake           *entity.Snake
	direction       types.Direction
	food            types.Point
	obstacles       []types.Point
	powerUps        []entity.PowerUp
	score           int
	level           int
	stepInterval    float64
	initialInterval float64
	over            bool

	placement *manager.Placement
	collision *manager.Collision
}

// NewGame builds a game on a board of the given size. stepInterval is
// the starting seconds-per-tick; values <= 0 fall back to the default.
func NewGame(size int, stepInterval float64, src rand.Source) *Game {
	if stepInterval <= 0 {
		stepInterval = types.InitialStepInterval
	}
	grid := types.Grid{Size: size}
	g := &Game{
		grid:            grid,
		initialInterval: stepInterval,
		placement:       manager.NewPlacement(grid, src),
		collision:       manager.NewCollision(grid),
	}
	g.Reset()
	return g
}

// Reset restores the fixed starting configuration: a 3-segment snake
// centered at the origin heading right, food one cell ahead. Obstacles,
// power-ups, score and level are cleared; the placement RNG keeps its
// state.
func (g *Game) Reset() {
	g.snake = entity.NewSnake(types.Point{}, types.DirRight, types.InitialLength)
	g.direction = types.DirRight
	g.food = types.Point{X: 1, Y: 0}
	g.obstacles = nil
	g.powerUps = nil
	g.score = 0
	g.level = 1
	g.stepInterval = g.initialInterval
	g.over = false
}

// Tick advances the simulation by one step. intent is the latest
// directional request; reversals and non-cardinal values are ignored.
// elapsed is the real time this step accounts for and only drives the
// power-up countdowns.
func (g *Game) Tick(intent types.Direction, elapsed float64) TickResult {
	if g.over {
		return TickResult{Terminated: true, Score: g.score}
	}

	if intent.Valid() && intent != g.direction.Opposite() {
		g.direction = intent
	}

	newHead := g.collision.NextHead(g.snake.Head(), g.direction)
	grow := newHead == g.food

	// Collision wins over growth: a cell holding both an obstacle and
	// the food kills without eating.
	if g.collision.HitsBody(newHead, g.snake, grow) ||
		g.collision.HitsObstacle(newHead, g.obstacles) {
		g.over = true
		return TickResult{Terminated: true, Score: g.score}
	}

	prevScore := g.score

	g.snake.Advance(newHead, grow)
	if grow {
		g.score += types.FoodScore
		g.respawnFood()
		if g.placement.Chance(types.PowerUpChance) {
			g.spawnPowerUp()
		}
	}

	g.resolvePowerUps(newHead, elapsed)

	// One level and one obstacle per 50-point multiple crossed this
	// tick, however large the jump.
	crossings := g.score/types.LevelStep - prevScore/types.LevelStep
	for i := 0; i < crossings; i++ {
		g.level++
		g.spawnObstacle()
	}

	return TickResult{Score: g.score}
}

// resolvePowerUps consumes every power-up under the new head and ages
// the rest, pruning expired ones.
func (g *Game) resolvePowerUps(head types.Point, elapsed float64) {
	kept := g.powerUps[:0]
	for _, pu := range g.powerUps {
		if pu.Pos == head {
			switch pu.Kind {
			case types.PowerUpPoints:
				g.score += types.PointsBonus
			case types.PowerUpSpeed:
				g.stepInterval *= types.SpeedFactor
				if g.stepInterval < types.MinStepInterval {
					g.stepInterval = types.MinStepInterval
				}
			}
			continue
		}
		pu.Remaining -= elapsed
		if pu.Expired() {
			continue
		}
		kept = append(kept, pu)
	}
	g.powerUps = kept
}

// respawnFood places new food outside the snake. On a full board the
// spawn is skipped and the stale food cell stays.
func (g *Game) respawnFood() {
	pos, err := g.placement.PlaceRandom(g.snake.Cells())
	if err != nil {
		return
	}
	g.food = pos
}

func (g *Game) spawnPowerUp() {
	pos, err := g.placement.PlaceRandom(g.snake.Cells())
	if err != nil {
		return
	}
	g.powerUps = append(g.powerUps, entity.NewPowerUp(pos, g.placement.PickKind()))
}

func (g *Game) spawnObstacle() {
	excluded := g.snake.Cells()
	excluded[g.food] = struct{}{}
	for _, o := range g.obstacles {
		excluded[o] = struct{}{}
	}
	pos, err := g.placement.PlaceRandom(excluded)
	if err != nil {
		return
	}
	g.obstacles = append(g.obstacles, pos)
}

func (g *Game) StepInterval() float64 {
	return g.stepInterval
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Level() int {
	return g.level
}

func (g *Game) Over() bool {
	return g.over
}
