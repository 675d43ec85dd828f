package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"snake-sim/game/entity"
	"snake-sim/game/types"
)

func newTestGame(size int, seed uint64) *Game {
	return NewGame(size, 0, rand.NewSource(seed))
}

// moveFoodAway parks the food where the next ticks cannot reach it.
func moveFoodAway(g *Game) {
	g.food = types.Point{X: g.grid.Size, Y: g.grid.Size}
}

func assertBodyDistinct(t *testing.T, g *Game) {
	t.Helper()
	seen := make(map[types.Point]struct{}, g.snake.Len())
	for _, p := range g.snake.Body {
		_, dup := seen[p]
		require.False(t, dup, "body overlaps itself at %v: %v", p, g.snake.Body)
		seen[p] = struct{}{}
	}
}

func TestInitialConfiguration(t *testing.T) {
	g := newTestGame(20, 1)

	assert.Equal(t, []types.Point{
		{X: 0, Y: 0}, {X: -1, Y: 0}, {X: -2, Y: 0},
	}, g.snake.Body)
	assert.Equal(t, types.DirRight, g.direction)
	assert.Equal(t, types.Point{X: 1, Y: 0}, g.food)
	assert.Equal(t, 0, g.score)
	assert.Equal(t, 1, g.level)
	assert.InDelta(t, types.InitialStepInterval, g.stepInterval, 1e-9)
	assert.False(t, g.over)
}

func TestTickEatsFoodAhead(t *testing.T) {
	g := newTestGame(20, 1)

	res := g.Tick(types.DirNone, 0.2)

	require.False(t, res.Terminated)
	assert.Equal(t, 10, res.Score)
	assert.Equal(t, []types.Point{
		{X: 1, Y: 0}, {X: 0, Y: 0}, {X: -1, Y: 0}, {X: -2, Y: 0},
	}, g.snake.Body)
	assert.False(t, g.snake.Contains(g.food), "respawned food on the snake")
	assert.True(t, g.grid.Contains(g.food))
}

func TestTickWithoutFoodPreservesLength(t *testing.T) {
	g := newTestGame(20, 1)
	moveFoodAway(g)

	res := g.Tick(types.DirNone, 0.2)

	require.False(t, res.Terminated)
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, []types.Point{
		{X: 1, Y: 0}, {X: 0, Y: 0}, {X: -1, Y: 0},
	}, g.snake.Body)
}

func TestReverseIntentIgnored(t *testing.T) {
	g := newTestGame(20, 1)
	moveFoodAway(g)

	// Heading right; a left intent must be dropped, an up intent taken.
	g.Tick(types.DirLeft, 0.2)
	assert.Equal(t, types.DirRight, g.direction)
	assert.Equal(t, types.Point{X: 1, Y: 0}, g.snake.Head())

	g.Tick(types.DirUp, 0.2)
	assert.Equal(t, types.DirUp, g.direction)
	assert.Equal(t, types.Point{X: 1, Y: -1}, g.snake.Head())
}

func TestInvalidIntentKeepsDirection(t *testing.T) {
	g := newTestGame(20, 1)
	moveFoodAway(g)

	g.Tick(types.Direction(42), 0.2)

	assert.Equal(t, types.DirRight, g.direction)
	assert.Equal(t, types.Point{X: 1, Y: 0}, g.snake.Head())
}

func TestHeadWrapsAcrossEdge(t *testing.T) {
	g := newTestGame(20, 1)
	moveFoodAway(g)
	g.snake = &entity.Snake{Body: []types.Point{
		{X: 20, Y: 5}, {X: 19, Y: 5}, {X: 18, Y: 5},
	}}

	res := g.Tick(types.DirRight, 0.2)

	require.False(t, res.Terminated)
	assert.Equal(t, types.Point{X: -20, Y: 5}, g.snake.Head())
}

func TestObstacleCollisionTerminates(t *testing.T) {
	g := newTestGame(20, 1)
	moveFoodAway(g)
	g.obstacles = []types.Point{{X: 1, Y: 0}}

	res := g.Tick(types.DirNone, 0.2)

	assert.True(t, res.Terminated)
	assert.Equal(t, 0, res.Score, "terminal score must be the pre-tick score")
	assert.True(t, g.over)
	assert.Equal(t, 3, g.snake.Len(), "snake must not move into the collision")

	// Further ticks stay terminal.
	res = g.Tick(types.DirUp, 0.2)
	assert.True(t, res.Terminated)
	assert.Equal(t, 0, res.Score)
}

func TestCollisionWinsOverFood(t *testing.T) {
	g := newTestGame(20, 1)
	g.food = types.Point{X: 1, Y: 0}
	g.obstacles = []types.Point{{X: 1, Y: 0}}

	res := g.Tick(types.DirNone, 0.2)

	assert.True(t, res.Terminated)
	assert.Equal(t, 0, res.Score, "food on the collision cell must not be eaten")
	assert.Equal(t, 3, g.snake.Len())
}

func TestVacatedTailIsNotACollision(t *testing.T) {
	g := newTestGame(20, 1)
	moveFoodAway(g)
	// Loop about to close: head (0,0), tail (1,0).
	g.snake = &entity.Snake{Body: []types.Point{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0},
	}}
	g.direction = types.DirRight

	res := g.Tick(types.DirNone, 0.2)

	require.False(t, res.Terminated)
	assert.Equal(t, types.Point{X: 1, Y: 0}, g.snake.Head())
	assertBodyDistinct(t, g)
}

func TestTailCollisionOnGrowTickIsFatal(t *testing.T) {
	g := newTestGame(20, 1)
	// Same loop, but food sits on the tail cell: the tail will not
	// move, so closing the loop kills.
	g.snake = &entity.Snake{Body: []types.Point{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0},
	}}
	g.direction = types.DirRight
	g.food = types.Point{X: 1, Y: 0}

	res := g.Tick(types.DirNone, 0.2)

	assert.True(t, res.Terminated)
	assert.Equal(t, 0, res.Score)
}

func TestSpeedPowerUpShrinksInterval(t *testing.T) {
	g := newTestGame(20, 1)
	moveFoodAway(g)
	g.powerUps = []entity.PowerUp{{
		Pos: types.Point{X: 1, Y: 0}, Kind: types.PowerUpSpeed, Remaining: 5,
	}}

	res := g.Tick(types.DirNone, 0.2)

	require.False(t, res.Terminated)
	assert.InDelta(t, 0.17, g.stepInterval, 1e-9, "0.20 * 0.85")
	assert.Empty(t, g.powerUps)
	assert.Equal(t, 0, g.score)
}

func TestSpeedPowerUpRespectsFloor(t *testing.T) {
	g := newTestGame(20, 1)
	moveFoodAway(g)
	g.stepInterval = 0.021
	g.powerUps = []entity.PowerUp{{
		Pos: types.Point{X: 1, Y: 0}, Kind: types.PowerUpSpeed, Remaining: 5,
	}}

	g.Tick(types.DirNone, 0.2)

	assert.InDelta(t, types.MinStepInterval, g.stepInterval, 1e-9)
}

func TestPointsPowerUpAddsScore(t *testing.T) {
	g := newTestGame(20, 1)
	moveFoodAway(g)
	g.powerUps = []entity.PowerUp{{
		Pos: types.Point{X: 1, Y: 0}, Kind: types.PowerUpPoints, Remaining: 5,
	}}

	res := g.Tick(types.DirNone, 0.2)

	require.False(t, res.Terminated)
	assert.Equal(t, 50, res.Score)
	assert.Empty(t, g.powerUps)
	assert.Equal(t, 2, g.level, "crossing 50 levels up once")
	assert.Len(t, g.obstacles, 1)
}

func TestFoodAndPowerUpOnSameCellBothResolve(t *testing.T) {
	g := newTestGame(20, 1)
	g.score = 40
	g.powerUps = []entity.PowerUp{{
		Pos: types.Point{X: 1, Y: 0}, Kind: types.PowerUpPoints, Remaining: 5,
	}}

	res := g.Tick(types.DirNone, 0.2)

	require.False(t, res.Terminated)
	assert.Equal(t, 100, res.Score, "food +10 and points +50 on top of 40")
	assert.Equal(t, 4, g.snake.Len(), "the food growth still applies")
	// 40 -> 100 crosses both 50 and 100: two levels, two obstacles.
	assert.Equal(t, 3, g.level)
	assert.Len(t, g.obstacles, 2)
}

func TestLevelCrossingSpawnsObstacleOffSnakeAndFood(t *testing.T) {
	g := newTestGame(20, 1)
	g.score = 40

	res := g.Tick(types.DirNone, 0.2)

	require.False(t, res.Terminated)
	assert.Equal(t, 50, res.Score)
	assert.Equal(t, 2, g.level)
	require.Len(t, g.obstacles, 1)
	assert.False(t, g.snake.Contains(g.obstacles[0]))
	assert.NotEqual(t, g.food, g.obstacles[0])
}

func TestScorePlateauDoesNotRelevel(t *testing.T) {
	g := newTestGame(20, 1)
	moveFoodAway(g)
	g.score = 50
	g.level = 2

	g.Tick(types.DirNone, 0.2)

	assert.Equal(t, 2, g.level, "sitting on a multiple is not a crossing")
	assert.Empty(t, g.obstacles)
}

func TestPowerUpCountdownAndPruning(t *testing.T) {
	g := newTestGame(20, 1)
	moveFoodAway(g)
	far := types.Point{X: -5, Y: -5}
	g.powerUps = []entity.PowerUp{{Pos: far, Kind: types.PowerUpPoints, Remaining: 0.3}}

	g.Tick(types.DirNone, 0.2)
	require.Len(t, g.powerUps, 1)
	assert.InDelta(t, 0.1, g.powerUps[0].Remaining, 1e-9)

	g.Tick(types.DirNone, 0.2)
	assert.Empty(t, g.powerUps, "lifetime reached zero, power-up pruned")
	assert.Equal(t, 0, g.score, "expired power-up awards nothing")
}

func TestResetRestoresInitialStateOnly(t *testing.T) {
	g := newTestGame(20, 1)
	g.Tick(types.DirNone, 0.2) // eat the starting food
	g.obstacles = append(g.obstacles, types.Point{X: 4, Y: 4})
	g.powerUps = append(g.powerUps, entity.NewPowerUp(types.Point{X: 5, Y: 5}, types.PowerUpSpeed))
	g.stepInterval = 0.1
	g.over = true

	g.Reset()

	assert.Equal(t, []types.Point{
		{X: 0, Y: 0}, {X: -1, Y: 0}, {X: -2, Y: 0},
	}, g.snake.Body)
	assert.Equal(t, types.DirRight, g.direction)
	assert.Equal(t, types.Point{X: 1, Y: 0}, g.food)
	assert.Empty(t, g.obstacles)
	assert.Empty(t, g.powerUps)
	assert.Equal(t, 0, g.score)
	assert.Equal(t, 1, g.level)
	assert.InDelta(t, types.InitialStepInterval, g.stepInterval, 1e-9)
	assert.False(t, g.over)
}

func TestRandomWalkInvariants(t *testing.T) {
	g := newTestGame(6, 99)
	intents := rand.New(rand.NewSource(7))

	prevScore := 0
	for i := 0; i < 2000; i++ {
		intent := types.Direction(intents.Intn(5)) // includes DirNone
		res := g.Tick(intent, g.stepInterval)
		if res.Terminated {
			assert.GreaterOrEqual(t, res.Score, prevScore)
			g.Reset()
			prevScore = 0
			continue
		}

		assertBodyDistinct(t, g)
		assert.True(t, g.grid.Contains(g.snake.Head()), "head %v off board", g.snake.Head())
		assert.GreaterOrEqual(t, res.Score, prevScore, "score must not decrease")
		assert.GreaterOrEqual(t, g.snake.Len(), 1)
		prevScore = res.Score
	}
}

func TestDeterministicUnderSeed(t *testing.T) {
	g1 := newTestGame(10, 42)
	g2 := newTestGame(10, 42)
	intents := []types.Direction{
		types.DirNone, types.DirUp, types.DirUp, types.DirRight,
		types.DirDown, types.DirNone, types.DirLeft, types.DirDown,
	}

	for i := 0; i < 200; i++ {
		intent := intents[i%len(intents)]
		r1 := g1.Tick(intent, g1.stepInterval)
		r2 := g2.Tick(intent, g2.stepInterval)
		require.Equal(t, r1, r2, "tick %d diverged", i)
		require.Equal(t, g1.Snapshot(), g2.Snapshot(), "state %d diverged", i)
		if r1.Terminated {
			g1.Reset()
			g2.Reset()
		}
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	g := newTestGame(10, 1)
	g.obstacles = []types.Point{{X: 3, Y: 3}}

	snap := g.Snapshot()
	snap.Snake[0] = types.Point{X: 9, Y: 9}
	snap.Obstacles[0] = types.Point{X: 9, Y: 9}

	assert.Equal(t, types.Point{X: 0, Y: 0}, g.snake.Head())
	assert.Equal(t, types.Point{X: 3, Y: 3}, g.obstacles[0])
}
