// Terminal front-end for the snake core. Each grid cell is rendered two
// runes wide so the board keeps a roughly square aspect ratio.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"

	"wrapsnake/game"
	"wrapsnake/game/types"
)

const frameInterval = 16 * time.Millisecond

var (
	styleBoard = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleSnake = tcell.StyleDefault.Background(tcell.ColorGreen)
	styleHead  = tcell.StyleDefault.Background(tcell.ColorLightGreen)
	styleFood  = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack)
	styleText  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleOver  = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack).Bold(true)
)

func main() {
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = time-based)")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "snake-term crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(*seed))

	grid := types.Grid{Cols: types.GridCols, Rows: types.GridRows}
	g := game.New(grid, rng)

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case ev := <-events:
			if !handleEvent(g, ev) {
				return
			}
		case <-ticker.C:
			g.Tick(time.Since(start).Milliseconds())
			draw(screen, g)
		}
	}
}

// handleEvent maps a terminal event onto the core's input interface.
// Returns false when the player quits.
func handleEvent(g *game.Game, ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		g.OnDirectionInput(types.DirUp)
	case tcell.KeyDown:
		g.OnDirectionInput(types.DirDown)
	case tcell.KeyLeft:
		g.OnDirectionInput(types.DirLeft)
	case tcell.KeyRight:
		g.OnDirectionInput(types.DirRight)
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q':
			return false
		case 'w':
			g.OnDirectionInput(types.DirUp)
		case 's':
			g.OnDirectionInput(types.DirDown)
		case 'a':
			g.OnDirectionInput(types.DirLeft)
		case 'd':
			g.OnDirectionInput(types.DirRight)
		case 'r', ' ':
			if g.IsGameOver() {
				g.OnRestartInput()
			}
		}
	}
	return true
}

func draw(screen tcell.Screen, g *game.Game) {
	screen.Clear()
	grid := g.Grid()

	// Board background, below a one-line status bar
	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Cols; x++ {
			setCell(screen, x, y, ' ', styleBoard)
		}
	}

	food := g.FoodCell()
	setCell(screen, food.X, food.Y, '●', styleFood)

	for i, c := range g.Cells() {
		style := styleSnake
		if i == 0 {
			style = styleHead
		}
		setCell(screen, c.X, c.Y, ' ', style)
	}

	stats := g.Stats()
	status := fmt.Sprintf(" score %d  high %d  games %d  speed %dms",
		g.Score(), stats.HighScore(), stats.GamesPlayed(), g.MoveDelay())
	drawText(screen, 0, 0, status, styleText)

	if g.IsGameOver() {
		msg := " GAME OVER - press r to restart, q to quit "
		drawText(screen, grid.Cols-len(msg)/2, grid.Rows/2+1, msg, styleOver)
	}

	screen.Show()
}

// setCell paints one grid cell as a two-column block. The board starts
// one row down to leave room for the status bar.
func setCell(screen tcell.Screen, x, y int, r rune, style tcell.Style) {
	screen.SetContent(x*2, y+1, r, nil, style)
	screen.SetContent(x*2+1, y+1, ' ', nil, style)
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
