package manager

import (
	"errors"

	"golang.org/x/exp/rand"

	"snake-sim/game/types"
)

// ErrExhausted is returned when no free cell was found within the retry
// budget. Callers skip the spawn and carry on; the session is not
// affected.
var ErrExhausted = errors.New("placement: no free cell found")

// Placement produces random board positions outside a set of occupied
// cells. All randomness of the engine flows through its single source so
// a seeded session replays deterministically.
type Placement struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewPlacement(grid types.Grid, src rand.Source) *Placement {
	return &Placement{
		grid: grid,
		rng:  rand.New(src),
	}
}

// PlaceRandom samples uniformly over the board until the sample misses
// excluded. The retry budget guards against a (near) full board.
func (pm *Placement) PlaceRandom(excluded map[types.Point]struct{}) (types.Point, error) {
	span := pm.grid.Span()
	for i := 0; i < types.MaxPlaceAttempts; i++ {
		p := types.Point{
			X: pm.rng.Intn(span) - pm.grid.Size,
			Y: pm.rng.Intn(span) - pm.grid.Size,
		}
		if _, taken := excluded[p]; !taken {
			return p, nil
		}
	}
	return types.Point{}, ErrExhausted
}

// Chance reports a random event with probability p.
func (pm *Placement) Chance(p float64) bool {
	return pm.rng.Float64() < p
}

// PickKind chooses a power-up kind uniformly.
func (pm *Placement) PickKind() types.PowerUpKind {
	return types.PowerUpKind(pm.rng.Intn(int(types.PowerUpKindCount)))
}
