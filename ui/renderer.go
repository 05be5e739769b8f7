package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"wrapsnake/game"
	"wrapsnake/game/types"
)

const borderPadding = 10 // Padding around game area

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	statsPanel      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.statsPanel = r.screenWidth / 4
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func (r *Renderer) Draw(g *game.Game) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	grid := g.Grid()
	fontSize := int32(r.screenHeight / 30)

	// Fit the grid into the area left of the stats panel
	availableWidth := r.screenWidth - r.statsPanel - (borderPadding * 2)
	availableHeight := r.screenHeight - (borderPadding * 2)
	cellW := availableWidth / int32(grid.Cols)
	cellH := availableHeight / int32(grid.Rows)
	r.cellSize = min32(cellW, cellH)

	r.totalGridWidth = r.cellSize * int32(grid.Cols)
	r.totalGridHeight = r.cellSize * int32(grid.Rows)
	r.offsetX = borderPadding
	r.offsetY = borderPadding

	// Grid background
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, rl.Black)

	// Food
	food := g.FoodCell()
	foodX := r.offsetX + int32(food.X)*r.cellSize
	foodY := r.offsetY + int32(food.Y)*r.cellSize
	rl.DrawCircle(foodX+r.cellSize/2, foodY+r.cellSize/2, float32(r.cellSize)/2.5, rl.Red)

	// Snake, head first
	cells := g.Cells()
	for i, c := range cells {
		color := rl.Green
		if i == 0 {
			color = rl.Lime
		}
		rl.DrawRectangle(
			r.offsetX+int32(c.X)*r.cellSize+1,
			r.offsetY+int32(c.Y)*r.cellSize+1,
			r.cellSize-2, r.cellSize-2, color)
	}
	r.drawHeadIndicator(cells[0], g.Dir())

	r.drawStatsPanel(g, fontSize)

	if g.IsGameOver() {
		r.drawGameOver(fontSize)
	}

	rl.EndDrawing()
}

// drawHeadIndicator marks the facing direction with a small triangle on
// the head cell.
func (r *Renderer) drawHeadIndicator(head types.Cell, dir types.Direction) {
	headX := r.offsetX + int32(head.X)*r.cellSize
	headY := r.offsetY + int32(head.Y)*r.cellSize
	halfCell := r.cellSize / 2

	switch dir {
	case types.DirRight:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Yellow)
	case types.DirLeft:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Yellow)
	case types.DirDown:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Yellow)
	case types.DirUp:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	}
}

func (r *Renderer) drawStatsPanel(g *game.Game, fontSize int32) {
	panelX := r.screenWidth - r.statsPanel + borderPadding
	lineHeight := fontSize + fontSize/2
	y := int32(borderPadding)

	stats := g.Stats()
	lines := []string{
		fmt.Sprintf("Score: %d", g.Score()),
		fmt.Sprintf("Speed: %dms", g.MoveDelay()),
		fmt.Sprintf("Length: %d", len(g.Cells())),
		"",
		fmt.Sprintf("High: %d", stats.HighScore()),
		fmt.Sprintf("Games: %d", stats.GamesPlayed()),
		fmt.Sprintf("Avg: %.1f", stats.AverageScore()),
	}
	for _, line := range lines {
		rl.DrawText(line, panelX, y, fontSize, rl.RayWhite)
		y += lineHeight
	}
}

func (r *Renderer) drawGameOver(fontSize int32) {
	bigFont := fontSize * 2
	msg := "GAME OVER"
	hint := "press SPACE to restart"

	msgWidth := rl.MeasureText(msg, bigFont)
	hintWidth := rl.MeasureText(hint, fontSize)
	centerX := r.offsetX + r.totalGridWidth/2
	centerY := r.offsetY + r.totalGridHeight/2

	rl.DrawRectangle(r.offsetX, centerY-bigFont, r.totalGridWidth, bigFont*3, rl.Fade(rl.Black, 0.7))
	rl.DrawText(msg, centerX-msgWidth/2, centerY-bigFont/2, bigFont, rl.Red)
	rl.DrawText(hint, centerX-hintWidth/2, centerY+bigFont, fontSize, rl.RayWhite)
}
