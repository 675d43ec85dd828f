package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-sim/game/types"
)

// readIntent maps the arrow and WASD keys to a direction intent.
// Returns DirNone when no movement key was pressed this frame; the
// engine itself rejects reversals.
func readIntent() types.Direction {
	switch {
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW):
		return types.DirUp
	case rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD):
		return types.DirRight
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS):
		return types.DirDown
	case rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA):
		return types.DirLeft
	}
	return types.DirNone
}
