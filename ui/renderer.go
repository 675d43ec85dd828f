package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-sim/game"
	"snake-sim/game/types"
)

const (
	borderPadding = 10  // Padding around game area
	panelWidth    = 260 // Right-hand stats panel
	maxBoardRows  = 8   // Scoreboard entries shown in the panel
)

// Renderer draws game snapshots with raylib. It owns no game state; a
// snapshot per frame is all it reads.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	gridSide     int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Draw renders one frame from the snapshot plus the scoreboard history.
func (r *Renderer) Draw(snap game.Snapshot, records []game.ScoreRecord) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	span := int32(2*snap.GridSize + 1)

	availableWidth := r.screenWidth - panelWidth - borderPadding*3
	availableHeight := r.screenHeight - borderPadding*2
	r.cellSize = min32(availableWidth/span, availableHeight/span)
	if r.cellSize < 1 {
		r.cellSize = 1
	}
	r.gridSide = r.cellSize * span
	r.offsetX = borderPadding
	r.offsetY = borderPadding

	// Board background
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.gridSide+2, r.gridSide+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.gridSide, r.gridSide, rl.Color{R: 20, G: 20, B: 20, A: 255})

	for _, o := range snap.Obstacles {
		r.drawCell(o, snap.GridSize, rl.Gray)
	}

	r.drawCell(snap.Food, snap.GridSize, rl.Red)

	for _, pu := range snap.PowerUps {
		color := rl.SkyBlue // Speed
		if pu.Kind == types.PowerUpPoints {
			color = rl.Gold
		}
		r.drawCell(pu.Pos, snap.GridSize, color)
	}

	for i := len(snap.Snake) - 1; i >= 0; i-- {
		color := rl.Green
		if i == 0 {
			color = rl.Lime // head on top, brighter
		}
		r.drawCell(snap.Snake[i], snap.GridSize, color)
	}
	r.drawHeading(snap)

	r.drawPanel(snap, records)

	if snap.Over {
		r.drawBanner("GAME OVER - press R to restart", rl.Red)
	} else if snap.Paused {
		r.drawBanner("PAUSED - press P to resume", rl.Yellow)
	}

	rl.EndDrawing()
}

// drawCell fills one board cell, translating board coordinates
// ([-size, size], origin centered) to screen pixels.
func (r *Renderer) drawCell(p types.Point, size int, color rl.Color) {
	x := r.offsetX + int32(p.X+size)*r.cellSize
	y := r.offsetY + int32(p.Y+size)*r.cellSize
	rl.DrawRectangle(x, y, r.cellSize-1, r.cellSize-1, color)
}

// drawHeading marks the movement direction on the head cell.
func (r *Renderer) drawHeading(snap game.Snapshot) {
	if len(snap.Snake) == 0 || r.cellSize < 4 {
		return
	}
	head := snap.Snake[0]
	v := snap.Direction.Vector()
	cx := r.offsetX + int32(head.X+snap.GridSize)*r.cellSize + r.cellSize/2
	cy := r.offsetY + int32(head.Y+snap.GridSize)*r.cellSize + r.cellSize/2
	tip := r.cellSize / 2
	rl.DrawCircle(cx+int32(v.X)*tip/2, cy+int32(v.Y)*tip/2, float32(r.cellSize)/6, rl.Yellow)
}

func (r *Renderer) drawPanel(snap game.Snapshot, records []game.ScoreRecord) {
	x := r.screenWidth - panelWidth - borderPadding
	y := int32(borderPadding)
	fontSize := int32(20)
	line := fontSize + 6

	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), x, y, fontSize, rl.White)
	y += line
	rl.DrawText(fmt.Sprintf("Level: %d", snap.Level), x, y, fontSize, rl.White)
	y += line
	rl.DrawText(fmt.Sprintf("High score: %d", snap.HighScore), x, y, fontSize, rl.Gold)
	y += line
	rl.DrawText(fmt.Sprintf("Interval: %.3fs", snap.StepInterval), x, y, fontSize, rl.LightGray)
	y += line
	rl.DrawText(fmt.Sprintf("Length: %d", len(snap.Snake)), x, y, fontSize, rl.LightGray)
	y += line * 2

	rl.DrawText("Scoreboard", x, y, fontSize, rl.White)
	y += line
	start := 0
	if len(records) > maxBoardRows {
		start = len(records) - maxBoardRows
	}
	for i := len(records) - 1; i >= start; i-- {
		rec := records[i]
		rl.DrawText(fmt.Sprintf("%s  %d", rec.Name, rec.Score), x, y, fontSize-2, rl.LightGray)
		y += line
	}
}

func (r *Renderer) drawBanner(text string, color rl.Color) {
	fontSize := int32(30)
	width := rl.MeasureText(text, fontSize)
	x := r.offsetX + r.gridSide/2 - width/2
	y := r.offsetY + r.gridSide/2 - fontSize/2
	rl.DrawRectangle(x-10, y-10, width+20, fontSize+20, rl.Color{R: 0, G: 0, B: 0, A: 200})
	rl.DrawText(text, x, y, fontSize, color)
}
