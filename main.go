package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"

	"wrapsnake/game"
	"wrapsnake/game/types"
	"wrapsnake/ui"
)

const (
	logDir      = "logs"
	logFileName = "snake.log"
)

// setupLogging routes the standard logger to logs/snake.log when debug
// is enabled and discards it otherwise. Returns the open file, or nil.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

func main() {
	fps := flag.Int("fps", 60, "Target frames per second")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = time-based)")
	debug := flag.Bool("debug", false, "Write debug log to logs/snake.log")
	flag.Parse()

	if logFile := setupLogging(*debug); logFile != nil {
		defer logFile.Close()
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(*seed))

	rl.InitWindow(types.GridCols*types.CellSize, types.GridRows*types.CellSize, "wrapsnake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(*fps))

	grid := types.Grid{Cols: types.GridCols, Rows: types.GridRows}
	g := game.New(grid, rng)
	renderer := ui.NewRenderer()
	start := time.Now()

	log.Printf("starting: grid=%dx%d seed=%d", grid.Cols, grid.Rows, *seed)

	for !rl.WindowShouldClose() {
		handleInput(g)
		g.Tick(time.Since(start).Milliseconds())
		renderer.Draw(g)
	}
}

// handleInput maps the keyboard onto the core's input interface. Arrows
// and WASD steer; space restarts after a loss. Unmapped keys are ignored.
func handleInput(g *game.Game) {
	switch {
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW):
		g.OnDirectionInput(types.DirUp)
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS):
		g.OnDirectionInput(types.DirDown)
	case rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA):
		g.OnDirectionInput(types.DirLeft)
	case rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD):
		g.OnDirectionInput(types.DirRight)
	case rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyR):
		if g.IsGameOver() {
			g.OnRestartInput()
		}
	}
}
