package entity

import (
	"golang.org/x/exp/rand"

	"wrapsnake/game/types"
)

// Food is the single item the snake is chasing.
type Food struct {
	cell types.Cell
}

func NewFood(cell types.Cell) *Food {
	return &Food{cell: cell}
}

func (f *Food) Cell() types.Cell {
	return f.cell
}

// Relocate moves the food to a uniformly random cell not occupied by the
// snake. It rejection-samples up to one grid's worth of candidates, then
// falls back to picking from the explicit free-cell complement so a dense
// board still terminates. On a fully occupied grid the food stays put.
func (f *Food) Relocate(snake *Snake, grid types.Grid, rng *rand.Rand) {
	for i := 0; i < grid.Cols*grid.Rows; i++ {
		candidate := types.Cell{
			X: rng.Intn(grid.Cols),
			Y: rng.Intn(grid.Rows),
		}
		if !snake.Occupies(candidate) {
			f.cell = candidate
			return
		}
	}

	free := make([]types.Cell, 0, grid.Cols*grid.Rows-snake.Len())
	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Cols; x++ {
			c := types.Cell{X: x, Y: y}
			if !snake.Occupies(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) > 0 {
		f.cell = free[rng.Intn(len(free))]
	}
}
