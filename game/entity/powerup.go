package entity

import (
	"snake-sim/game/types"
)

// PowerUp is a transient pickup. Remaining counts down in real seconds,
// independent of the tick cadence.
type PowerUp struct {
	Pos       types.Point
	Kind      types.PowerUpKind
	Remaining float64
}

func NewPowerUp(pos types.Point, kind types.PowerUpKind) PowerUp {
	return PowerUp{
		Pos:       pos,
		Kind:      kind,
		Remaining: types.PowerUpLifetime,
	}
}

func (p PowerUp) Expired() bool {
	return p.Remaining <= 0
}
