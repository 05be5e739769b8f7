package game

import (
	"log"

	"golang.org/x/exp/rand"

	"wrapsnake/game/entity"
	"wrapsnake/game/types"
)

// Game is the simulation core. It owns the snake, the food and the
// score/speed state, and advances them on timed ticks. It renders
// nothing and reads no clocks: time reaches the simulation only through
// the nowMillis argument of Tick, and randomness only through the
// injected rng. The caller serializes all method calls.
type Game struct {
	grid  types.Grid
	snake *entity.Snake
	food  *entity.Food
	rng   *rand.Rand

	score          int
	moveDelay      int64
	gameOver       bool
	lastMoveMillis int64

	stats *SessionStats
}

func New(grid types.Grid, rng *rand.Rand) *Game {
	g := &Game{
		grid:  grid,
		rng:   rng,
		stats: NewSessionStats(),
	}
	g.reset()
	return g
}

func (g *Game) reset() {
	g.snake = entity.NewSnake(g.grid.Center(), types.DirRight)
	g.food = entity.NewFood(g.grid.Center())
	g.food.Relocate(g.snake, g.grid, g.rng)
	g.score = 0
	g.moveDelay = types.InitialMoveDelay
	g.gameOver = false
	g.stats.StartGame()
}

// Tick advances the simulation by one move if the move delay has elapsed
// since the previous move. In the game-over state it does nothing;
// restarting is input-driven.
func (g *Game) Tick(nowMillis int64) {
	if g.gameOver {
		return
	}
	if nowMillis-g.lastMoveMillis < g.moveDelay {
		return
	}

	g.snake.Move()

	// Resolution order matters: eat on the raw head, then self-collision
	// on the still-unwrapped head, then wrap. Wrapping first would move
	// the head before the body comparison.
	if g.snake.Head() == g.food.Cell() {
		g.snake.Grow()
		g.score++
		g.moveDelay = delayForScore(g.score)
		g.food.Relocate(g.snake, g.grid, g.rng)
		log.Printf("ate food: score=%d delay=%dms len=%d", g.score, g.moveDelay, g.snake.Len())
	}

	if g.snake.SelfCollision() {
		g.gameOver = true
		g.stats.EndGame(g.score)
		log.Printf("game over: score=%d len=%d", g.score, g.snake.Len())
		return
	}

	if !g.grid.Contains(g.snake.Head()) {
		g.snake.Wrap(g.grid.Cols, g.grid.Rows)
	}

	g.lastMoveMillis = nowMillis
}

// OnDirectionInput requests a turn. Accepted only while playing; the
// snake itself rejects 180-degree reversals.
func (g *Game) OnDirectionInput(dir types.Direction) {
	if g.gameOver {
		return
	}
	g.snake.ChangeDirection(dir)
}

// OnRestartInput starts a fresh game. Valid only in the game-over state.
func (g *Game) OnRestartInput() {
	if !g.gameOver {
		return
	}
	g.reset()
}

// delayForScore maps the score to the move delay in milliseconds,
// clamped at the floor.
func delayForScore(score int) int64 {
	d := int64(types.InitialMoveDelay - score*types.SpeedupStep)
	if d < types.MinMoveDelay {
		return types.MinMoveDelay
	}
	return d
}

// Cells returns a copy of the snake body, head first.
func (g *Game) Cells() []types.Cell {
	return g.snake.Segments()
}

func (g *Game) FoodCell() types.Cell {
	return g.food.Cell()
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) IsGameOver() bool {
	return g.gameOver
}

func (g *Game) MoveDelay() int64 {
	return g.moveDelay
}

func (g *Game) Dir() types.Direction {
	return g.snake.Direction()
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

func (g *Game) Stats() *SessionStats {
	return g.stats
}
